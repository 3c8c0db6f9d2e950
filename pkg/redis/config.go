package redis

import "time"

// Config describes the Redis connection that serves message templates.
type Config struct {
	ConnectionURL  string        `env:"RULEKIT_REDIS_URL"`                                        // ConnectionURL is the URL of the server, "redis://:password@localhost:6379/0". Empty disables Redis.
	MessagesKey    string        `env:"RULEKIT_REDIS_MESSAGES_KEY" envDefault:"rulekit:messages"` // MessagesKey is the hash holding rule name to template pairs.
	RetryAttempts  int           `env:"RULEKIT_REDIS_RETRY_ATTEMPTS" envDefault:"3"`              // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"RULEKIT_REDIS_RETRY_INTERVAL" envDefault:"2s"`             // RetryInterval is the pause between attempts.
	ConnectTimeout time.Duration `env:"RULEKIT_REDIS_CONNECT_TIMEOUT" envDefault:"10s"`           // ConnectTimeout bounds all attempts together.
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
