package validator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/messages"
)

// Validator validates records against schemes. Each instance owns its rule
// registry, message store and separators, and is safe for concurrent use.
type Validator struct {
	mu             sync.RWMutex
	registry       *Registry
	messages       *messages.Store
	seps           Separators
	defaultMessage string
	cacheSize      int
	cache          *declCache
	extraRules     bool
	logger         *slog.Logger
}

// New creates a Validator with the built-in rules and messages.
func New(opts ...Option) *Validator {
	v := &Validator{
		seps:      DefaultSeparators(),
		cacheSize: DefaultParseCacheSize,
		logger:    logger.Discard(),
	}

	for _, opt := range opts {
		opt(v)
	}

	if v.registry == nil {
		v.registry = NewDefaultRegistry()
	}
	if v.messages == nil {
		v.messages = messages.New(messages.WithLogger(v.logger))
	}
	if v.defaultMessage != "" {
		v.messages.SetDefault(v.defaultMessage)
	}
	if v.extraRules {
		v.registerExtras()
	}
	v.cache = newDeclCache(v.cacheSize)

	return v
}

func (v *Validator) registerExtras() {
	for name, predicate := range extras() {
		if v.registry.Exists(name) {
			continue
		}
		_ = v.registry.Register(name, predicate)
	}
	for rule, text := range extraTemplates {
		if _, ok := v.messages.Get(rule); !ok {
			_ = v.messages.Set(rule, text)
		}
	}
}

// NewFromConfig creates a Validator from cfg and loads cfg.MessagesFile into
// its message store when set.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Validator, error) {
	v := New(append([]Option{WithConfig(cfg)}, opts...)...)
	if cfg.MessagesFile != "" {
		if err := v.LoadMessagesFile(ctx, cfg.MessagesFile); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Validate checks data against scheme. Field failures are reported through
// the Result; the error is only set for unusable data or a malformed scheme.
// Callbacks receive the result before it is returned.
func (v *Validator) Validate(data any, scheme Declarations, callbacks ...func(*Result)) (*Result, error) {
	rec, err := ToRecord(data)
	if err != nil {
		return nil, err
	}

	parsed, err := v.ParseScheme(scheme)
	if err != nil {
		return nil, err
	}

	v.mu.RLock()
	store, log := v.messages, v.logger
	v.mu.RUnlock()

	res := evaluate(rec, parsed, store, log)
	log.Debug("validation finished", slog.Int("fields", parsed.Len()), slog.Int("failed", len(res.fields)))

	for _, cb := range callbacks {
		if cb != nil {
			cb(res)
		}
	}
	return res, nil
}

// ParseScheme resolves a scheme with the current registry and separators.
func (v *Validator) ParseScheme(scheme Declarations) (*ParsedScheme, error) {
	v.mu.RLock()
	registry, seps := v.registry, v.seps
	v.mu.RUnlock()

	return parseScheme(scheme, registry, seps, v.cache)
}

// Extend registers a new rule, optionally with its message template.
func (v *Validator) Extend(name string, predicate Predicate, message ...string) error {
	v.mu.RLock()
	registry, store := v.registry, v.messages
	v.mu.RUnlock()

	if err := registry.Register(name, predicate); err != nil {
		return err
	}
	if len(message) > 0 && message[0] != "" {
		if err := store.Set(name, message[0]); err != nil {
			return err
		}
	}
	v.logger.Debug("rule registered", logger.Rule(name))
	return nil
}

// Empty returns a result without errors.
func (v *Validator) Empty() *Result {
	return newResult()
}

// SetRuleSeparator changes the separator between rules ("|").
func (v *Validator) SetRuleSeparator(sep string) error {
	return v.setSeparator(sep, func(s *Separators) { s.Rule = sep })
}

// SetRuleParamSeparator changes the separator between a rule and its params (":").
func (v *Validator) SetRuleParamSeparator(sep string) error {
	return v.setSeparator(sep, func(s *Separators) { s.RuleParam = sep })
}

// SetParamsSeparator changes the separator between params (",").
func (v *Validator) SetParamsSeparator(sep string) error {
	return v.setSeparator(sep, func(s *Separators) { s.Params = sep })
}

func (v *Validator) setSeparator(sep string, set func(*Separators)) error {
	if sep == "" {
		return fmt.Errorf("%w: separator must not be empty", ErrInvalidArgument)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	set(&v.seps)
	return nil
}

// Separators returns the current separators.
func (v *Validator) Separators() Separators {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.seps
}

// SetMessages adds or replaces several message templates.
func (v *Validator) SetMessages(templates map[string]string) error {
	return v.Messages().SetAll(templates)
}

// SetMessage adds or replaces the message template of a rule.
func (v *Validator) SetMessage(rule, text string) error {
	return v.Messages().Set(rule, text)
}

// SetDefaultMessage replaces the message used for rules without a template.
func (v *Validator) SetDefaultMessage(text string) {
	v.Messages().SetDefault(text)
}

// LoadMessagesFile merges a YAML or JSON message catalog into the store.
func (v *Validator) LoadMessagesFile(ctx context.Context, path string) error {
	catalog, err := messages.LoadFile(ctx, nil, path)
	if err != nil {
		return err
	}
	if err := v.SetMessages(catalog); err != nil {
		return err
	}
	v.logger.InfoContext(ctx, "messages loaded", logger.Path(path), logger.Count(len(catalog)))
	return nil
}

// ParseCacheStats reports how often parsed string declarations were reused.
func (v *Validator) ParseCacheStats() (hits, misses uint64) {
	return v.cache.stats()
}

// Registry returns the rule registry.
func (v *Validator) Registry() *Registry {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.registry
}

// Messages returns the message store.
func (v *Validator) Messages() *messages.Store {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.messages
}
