package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/httpserver"
	"github.com/dmitrymomot/rulekit/pkg/httpvalidator"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/redis"
	"github.com/dmitrymomot/rulekit/pkg/schemes"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func newServeCmd(a *app) *cobra.Command {
	var addr, dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the schemes of a directory over HTTP",
		Long: `Serve exposes every scheme found in a directory:

  GET  /validate/          scheme names
  GET  /validate/rules     registered rules
  POST /validate/{scheme}  validate the request body
  GET  /healthz            liveness
  GET  /readyz             readiness, checks Redis when configured`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			set, err := schemes.LoadDir(ctx, dir)
			if err != nil {
				return err
			}

			client, err := a.connectRedis(ctx)
			if err != nil {
				return err
			}
			var checks []httpserver.Check
			if client != nil {
				defer client.Close()
				checks = append(checks, redis.Healthcheck(client))
			}

			v, err := a.newValidator(ctx, client)
			if err != nil {
				return err
			}
			a.log.InfoContext(ctx, "schemes loaded", logger.Path(dir), logger.Count(len(set)))

			cfg := a.cfg.HTTP
			if addr != "" {
				cfg.Addr = addr
			}
			srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(a.log))
			return srv.Run(ctx, newHandler(a, v, set, checks...))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides RULEKIT_HTTP_ADDR")
	cmd.Flags().StringVar(&dir, "schemes", "", "directory with scheme files")
	_ = cmd.MarkFlagRequired("schemes")
	return cmd
}

func newHandler(a *app, v *validator.Validator, set schemes.Set, checks ...httpserver.Check) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(a.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(a.log, checks...))
	r.Mount("/validate", httpvalidator.Router(v, set, httpvalidator.WithLogger(a.log)))
	return r
}
