// Package config fills env-tagged structs such as validator.Config,
// httpserver.Config and redis.Config from the process environment.
//
// LoadEnv copies .env files into the environment without overriding variables
// that are already set. Parse reads the environment with
// github.com/caarlos0/env/v11 and accepts a prefix or an explicit variable
// map. Load does the same once per struct type, loading the default .env file
// first, and serves later calls from a cache:
//
//	var cfg validator.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	v, err := validator.NewFromConfig(ctx, cfg)
//
// Failures are reported as ErrParsingConfig, ErrLoadingEnvFile or
// ErrNilPointer. Tests can call ResetCache between cases.
package config
