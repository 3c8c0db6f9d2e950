package messages

import (
	"log/slog"
	"maps"
	"sort"
	"sync"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// DefaultMessage is returned for rules that have no template.
const DefaultMessage = "Incorrect Value"

var defaultTemplates = map[string]string{
	"required":      ":name is required",
	"string":        ":name must be a string",
	"min":           ":name cant be less than :min",
	"max":           ":name cant be greater than :max",
	"between":       ":name must be between :from and :to",
	"checked":       ":name must be checked",
	"array":         ":name must be array",
	"object":        ":name must be object",
	"boolean":       ":name must be boolean",
	"numeric":       ":name can only contain digits",
	"alpha_numeric": ":name can only contain digits and letters",
	"alpha_dash":    ":name can only contain letters and dashes",
	"alpha":         ":name can only contain leters",
	"email":         ":name must be correct mail",
	"phone":         ":name must be a correct phone number",
	"in_array":      ":name is invalid",
	"not_in":        ":name can't be :value",
	"json":          ":name must be valid json",
	"ip":            ":name must be valid ip adress",
	"url":           ":name must be valid url",
	"equals":        ":name must equal to :value",
	"not_equals":    ":name can't be :value",
	"contains_one":  ":name must contain \":value_to_contain\"",
	"contains_all":  ":name must contain \":value_to_contain\"",
	"starts_with":   ":name must start with :prefix",
	"ends_with":     ":name must end with :suffix",
	"date":          ":name must valid date",
	"uuid":          ":name must be a valid UUID",
}

// Defaults returns a copy of the built-in rule templates.
func Defaults() map[string]string {
	return maps.Clone(defaultTemplates)
}

// Store holds message templates keyed by rule name.
// It is safe for concurrent use.
type Store struct {
	mu             sync.RWMutex
	templates      map[string]string
	defaultMessage string
	logger         *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithTemplates merges the given templates over the built-in ones.
// Entries with an empty rule name are ignored.
func WithTemplates(templates map[string]string) Option {
	return func(s *Store) {
		for rule, text := range templates {
			if rule != "" {
				s.templates[rule] = text
			}
		}
	}
}

// WithoutDefaults starts the store with no templates.
func WithoutDefaults() Option {
	return func(s *Store) {
		s.templates = make(map[string]string)
	}
}

// WithDefaultMessage sets the fallback message.
func WithDefaultMessage(text string) Option {
	return func(s *Store) {
		s.defaultMessage = text
	}
}

// WithLogger sets the logger. If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Store pre-populated with the built-in templates.
func New(opts ...Option) *Store {
	s := &Store{
		templates:      Defaults(),
		defaultMessage: DefaultMessage,
		logger:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set adds or replaces the template for a rule.
func (s *Store) Set(rule, text string) error {
	if rule == "" {
		return ErrInvalidRuleName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[rule] = text
	return nil
}

// SetAll adds or replaces several templates at once. Nothing is applied when
// any rule name is empty.
func (s *Store) SetAll(templates map[string]string) error {
	for rule := range templates {
		if rule == "" {
			return ErrInvalidRuleName
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.templates, templates)
	s.logger.Debug("message templates updated", logger.Count(len(templates)))
	return nil
}

// SetDefault replaces the fallback message.
func (s *Store) SetDefault(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultMessage = text
}

// Default returns the fallback message.
func (s *Store) Default() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultMessage
}

// Get returns the template registered for a rule.
func (s *Store) Get(rule string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.templates[rule]
	return text, ok
}

// Template returns the template for a rule or the default message.
func (s *Store) Template(rule string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if text, ok := s.templates[rule]; ok {
		return text
	}
	return s.defaultMessage
}

// Rules returns the rule names that have a template, sorted.
func (s *Store) Rules() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rules := make([]string, 0, len(s.templates))
	for rule := range s.templates {
		rules = append(rules, rule)
	}
	sort.Strings(rules)
	return rules
}

// All returns a copy of every template.
func (s *Store) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.templates)
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &Store{
		templates:      maps.Clone(s.templates),
		defaultMessage: s.defaultMessage,
		logger:         s.logger,
	}
}

// Format renders the message of a failed rule for a field.
// A rule without a template yields the default message as is.
func (s *Store) Format(field, rule string, params map[string]string) string {
	s.mu.RLock()
	text, ok := s.templates[rule]
	def := s.defaultMessage
	s.mu.RUnlock()

	if !ok {
		s.logger.Debug("no message template for rule", logger.Rule(rule), logger.Field(field))
		return def
	}
	return FormatTemplate(text, field, params)
}

// FormatTemplate renders an explicit template for a field.
func (s *Store) FormatTemplate(tmpl, field string, params map[string]string) string {
	return FormatTemplate(tmpl, field, params)
}
