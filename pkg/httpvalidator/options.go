package httpvalidator

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rulekit/pkg/binder"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type config struct {
	logger     *slog.Logger
	binderOpts []binder.Option
	failStatus int
	pathParams bool
	onInvalid  func(w http.ResponseWriter, r *http.Request, res *validator.Result)
}

func defaultConfig() *config {
	return &config{
		logger:     logger.Discard(),
		failStatus: http.StatusUnprocessableEntity,
		pathParams: true,
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures Middleware and Router.
type Option func(*config)

// WithLogger sets the logger. If not specified, a discard logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBinderOptions passes options to binder.Record, for example a body size
// limit.
func WithBinderOptions(opts ...binder.Option) Option {
	return func(c *config) {
		c.binderOpts = append(c.binderOpts, opts...)
	}
}

// WithFailureStatus changes the status of failed validations (422).
func WithFailureStatus(status int) Option {
	return func(c *config) {
		if status >= 400 && status < 600 {
			c.failStatus = status
		}
	}
}

// WithoutPathParams keeps chi URL params out of the validated record.
func WithoutPathParams() Option {
	return func(c *config) {
		c.pathParams = false
	}
}

// WithInvalidHandler replaces the JSON response written for failed
// validations.
func WithInvalidHandler(fn func(w http.ResponseWriter, r *http.Request, res *validator.Result)) Option {
	return func(c *config) {
		if fn != nil {
			c.onInvalid = fn
		}
	}
}
