package httpserver

import "time"

// Config holds the server settings of the validation service.
type Config struct {
	Addr            string        `env:"RULEKIT_HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"RULEKIT_HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"RULEKIT_HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"RULEKIT_HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"RULEKIT_HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewFromConfig creates a Server from cfg. Zero fields keep the defaults of
// New; opts are applied afterwards.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	fromConfig := func(s *Server) {
		if cfg.Addr != "" {
			s.cfg.Addr = cfg.Addr
		}
		WithTimeouts(cfg.ReadTimeout, cfg.WriteTimeout, cfg.IdleTimeout)(s)
		if cfg.ShutdownTimeout > 0 {
			s.cfg.ShutdownTimeout = cfg.ShutdownTimeout
		}
	}
	return New(append([]Option{fromConfig}, opts...)...)
}
