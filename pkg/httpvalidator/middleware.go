package httpvalidator

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rulekit/pkg/binder"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type resultKey struct{}

type recordKey struct{}

// ResultFromContext returns the result stored by Middleware.
func ResultFromContext(ctx context.Context) (*validator.Result, bool) {
	res, ok := ctx.Value(resultKey{}).(*validator.Result)
	return res, ok
}

// RecordFromContext returns the decoded request data stored by Middleware.
// The request body has already been read when the handler runs.
func RecordFromContext(ctx context.Context) (validator.Record, bool) {
	rec, ok := ctx.Value(recordKey{}).(validator.Record)
	return rec, ok
}

// Middleware validates every request against scheme. Chi URL params are part
// of the validated record unless WithoutPathParams is given.
//
// Undecodable requests get 400, invalid schemes 500 and failed validations
// 422 with the result as JSON.
func Middleware(v *validator.Validator, scheme validator.Declarations, opts ...Option) func(http.Handler) http.Handler {
	cfg := newConfig(opts)
	cfg.logger = cfg.logger.With(logger.Component("httpvalidator"))

	binderOpts := cfg.binderOpts
	if cfg.pathParams {
		binderOpts = append([]binder.Option{binder.WithPathParams(chiParams)}, binderOpts...)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, res, ok := validate(w, r, cfg, v, scheme, binderOpts)
			if !ok {
				return
			}
			if res.HasError() {
				cfg.logger.DebugContext(r.Context(), "request rejected", logger.Count(len(res.Fields())))
				cfg.invalid(w, r, res)
				return
			}

			ctx := context.WithValue(r.Context(), resultKey{}, res)
			ctx = context.WithValue(ctx, recordKey{}, data)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validate decodes and validates the request. It writes an error response
// and reports false when the request could not be validated at all.
func validate(w http.ResponseWriter, r *http.Request, cfg *config, v *validator.Validator, scheme validator.Declarations, binderOpts []binder.Option) (validator.Record, *validator.Result, bool) {
	log := cfg.logger

	data, err := binder.Record(r, binderOpts...)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, binder.ErrUnsupportedMediaType) {
			status = http.StatusUnsupportedMediaType
		}
		log.DebugContext(r.Context(), "failed to decode request", logger.Error(err))
		writeError(w, r, log, status, err.Error())
		return nil, nil, false
	}

	res, err := v.Validate(data, scheme)
	if err != nil {
		log.ErrorContext(r.Context(), "failed to validate request", logger.Error(err))
		writeError(w, r, log, http.StatusInternalServerError, "invalid validation scheme")
		return nil, nil, false
	}

	return data, res, true
}

func (c *config) invalid(w http.ResponseWriter, r *http.Request, res *validator.Result) {
	if c.onInvalid != nil {
		c.onInvalid(w, r, res)
		return
	}
	writeJSON(w, r, c.logger, c.failStatus, res)
}

func chiParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if key == "" || key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}
