package main

import (
	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/httpserver"
	"github.com/dmitrymomot/rulekit/pkg/redis"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// appConfig is read from the environment, optionally seeded from a .env file.
type appConfig struct {
	Env      string `env:"RULEKIT_ENV" envDefault:"development"`
	LogLevel string `env:"RULEKIT_LOG_LEVEL" envDefault:"info"`

	Validator validator.Config
	HTTP      httpserver.Config
	Redis     redis.Config
}

func loadConfig(envFile string) (appConfig, error) {
	if envFile != "" {
		if err := config.LoadEnv(envFile); err != nil {
			return appConfig{}, err
		}
	}

	var cfg appConfig
	if err := config.Parse(&cfg); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}
