package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/httpvalidator"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/messages"
	"github.com/dmitrymomot/rulekit/pkg/redis"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

const serviceName = "rulekit"

var errInvalidRecord = errors.New("record is invalid")

// app carries the state shared by every subcommand.
type app struct {
	envFile      string
	logLevel     string
	messagesFile string

	cfg appConfig
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   serviceName,
		Short: "Validate records against rule schemes",
		Long: `rulekit checks records against schemes written in the rule DSL,
for example "required|email" or "number|between:18,99".
Schemes are loaded from YAML or JSON files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "load environment variables from this file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.messagesFile, "messages", "", "message catalog file (YAML or JSON)")

	cmd.AddCommand(
		newValidateCmd(a),
		newRulesCmd(a),
		newServeCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.envFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(httpvalidator.RequestIDExtractor()),
	)
	return nil
}

// connectRedis returns nil when no Redis URL is configured.
func (a *app) connectRedis(ctx context.Context) (*goredis.Client, error) {
	if !a.cfg.Redis.Enabled() {
		return nil, nil
	}
	return redis.Connect(ctx, a.cfg.Redis)
}

// newValidator builds a validator from the configuration. Templates stored in
// Redis are applied last and win over the catalog file.
func (a *app) newValidator(ctx context.Context, client *goredis.Client) (*validator.Validator, error) {
	cfg := a.cfg.Validator
	if a.messagesFile != "" {
		cfg.MessagesFile = a.messagesFile
	}

	v, err := validator.NewFromConfig(ctx, cfg, validator.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	if client == nil {
		return v, nil
	}

	catalog, err := messages.LoadRedis(ctx, client, a.cfg.Redis.MessagesKey)
	if err != nil {
		return nil, err
	}
	if err := v.SetMessages(catalog); err != nil {
		return nil, fmt.Errorf("redis messages: %w", err)
	}
	a.log.InfoContext(ctx, "messages loaded from redis", logger.Count(len(catalog)))
	return v, nil
}
