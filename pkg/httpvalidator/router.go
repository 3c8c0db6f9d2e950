package httpvalidator

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/schemes"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type schemesResponse struct {
	Schemes []string `json:"schemes"`
}

type rulesResponse struct {
	Rules []string `json:"rules"`
}

// Router serves the schemes of set. Path params are never added to the
// validated record, so "scheme" stays free as a field name.
//
// Example:
//
//	set, _ := schemes.LoadDir(ctx, "./schemes")
//
//	r := chi.NewRouter()
//	r.Mount("/validate", httpvalidator.Router(v, set,
//	    httpvalidator.WithLogger(log),
//	))
func Router(v *validator.Validator, set schemes.Set, opts ...Option) chi.Router {
	cfg := newConfig(append(opts[:len(opts):len(opts)], WithoutPathParams()))
	cfg.logger = cfg.logger.With(logger.Component("httpvalidator"))
	names := set.Names()

	r := chi.NewRouter()
	r.Use(RequestID)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, cfg.logger, http.StatusOK, schemesResponse{Schemes: names})
	})

	r.Get("/rules", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, cfg.logger, http.StatusOK, rulesResponse{Rules: v.Registry().Names()})
	})

	r.Post("/{scheme}", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		name := chi.URLParam(r, "scheme")
		scheme, ok := set.Get(name)
		if !ok {
			writeError(w, r, cfg.logger, http.StatusNotFound, "unknown scheme "+name)
			return
		}

		_, res, ok := validate(w, r, cfg, v, scheme, cfg.binderOpts)
		if !ok {
			return
		}

		cfg.logger.InfoContext(r.Context(), "request validated",
			logger.Scheme(name),
			logger.Count(len(res.Fields())),
			logger.Elapsed(start),
		)
		if res.HasError() {
			cfg.invalid(w, r, res)
			return
		}
		writeJSON(w, r, cfg.logger, http.StatusOK, res)
	})

	return r
}
