// Package httpserver runs the HTTP side of the validation service.
//
// A Server serves one handler until its context is done, SIGINT or SIGTERM
// arrives, or Shutdown is called, then drains connections within the
// shutdown timeout. Settings come from functional options or from an
// env-tagged Config loaded with pkg/config:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithOnStart(func(addr string) { fmt.Println("listening on", addr) }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run binds its listener before serving, so Addr reports the real port of a
// server started on ":0".
//
// HealthCheckHandler serves liveness and readiness probes. Readiness runs the
// given checks, for example a ping of the Redis server holding message
// templates.
//
// Listen failures are wrapped with ErrStart and failed shutdowns with
// ErrShutdown.
package httpserver
