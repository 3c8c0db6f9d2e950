package validator

import (
	"log/slog"

	"github.com/dmitrymomot/rulekit/pkg/messages"
)

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry uses the given registry instead of a fresh copy of the
// built-in rules. The registry may be shared between validators.
func WithRegistry(registry *Registry) Option {
	return func(v *Validator) {
		if registry != nil {
			v.registry = registry
		}
	}
}

// WithMessages uses the given message store instead of the default templates.
func WithMessages(store *messages.Store) Option {
	return func(v *Validator) {
		if store != nil {
			v.messages = store
		}
	}
}

// WithSeparators overrides the string syntax separators. Empty fields keep
// their current value.
func WithSeparators(seps Separators) Option {
	return func(v *Validator) {
		if seps.Rule != "" {
			v.seps.Rule = seps.Rule
		}
		if seps.RuleParam != "" {
			v.seps.RuleParam = seps.RuleParam
		}
		if seps.Params != "" {
			v.seps.Params = seps.Params
		}
	}
}

// WithParseCache sets how many parsed string declarations are kept.
// A size of zero or less disables the cache.
func WithParseCache(size int) Option {
	return func(v *Validator) {
		v.cacheSize = size
	}
}

// WithLogger provides a customizable logger.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithConfig applies separators and the default message from cfg.
// The messages file is loaded by NewFromConfig.
func WithConfig(cfg Config) Option {
	return func(v *Validator) {
		WithSeparators(Separators{
			Rule:      cfg.RuleSeparator,
			RuleParam: cfg.RuleParamSeparator,
			Params:    cfg.ParamsSeparator,
		})(v)
		if cfg.DefaultMessage != "" {
			v.defaultMessage = cfg.DefaultMessage
		}
	}
}

// WithExtraRules registers the opt-in rules (slug, hex, base64, ascii,
// no_whitespace, credit_card, strong_password, not_common_password) and their
// templates. Rules and templates that already exist are kept.
func WithExtraRules() Option {
	return func(v *Validator) {
		v.extraRules = true
	}
}
