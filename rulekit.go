package rulekit

import (
	"sync/atomic"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type (
	Record        = validator.Record
	Scheme        = validator.Scheme
	OrderedScheme = validator.OrderedScheme
	Field         = validator.Field
	Declarations  = validator.Declarations
	Object        = validator.Object
	Entry         = validator.Entry
	Params        = validator.Params
	Outcome       = validator.Outcome
	Custom        = validator.Custom
	InlineFunc    = validator.InlineFunc
	Predicate     = validator.Predicate
	Result        = validator.Result
)

var defaultValidator atomic.Pointer[validator.Validator]

func init() {
	defaultValidator.Store(validator.New())
}

// Default returns the validator used by the package functions.
func Default() *validator.Validator {
	return defaultValidator.Load()
}

// SetDefault replaces the validator used by the package functions.
// A nil validator is ignored.
func SetDefault(v *validator.Validator) {
	if v != nil {
		defaultValidator.Store(v)
	}
}

// Validate checks data against scheme with the default validator.
// Callbacks receive the result before it is returned.
func Validate(data any, scheme Declarations, callbacks ...func(*Result)) (*Result, error) {
	return Default().Validate(data, scheme, callbacks...)
}

// Extend registers a rule on the default validator, optionally with its
// message template.
func Extend(name string, predicate Predicate, message ...string) error {
	return Default().Extend(name, predicate, message...)
}

// GetEmpty returns a result without errors.
func GetEmpty() *Result {
	return Default().Empty()
}

// SetRuleSeparator changes the separator between rules ("|").
func SetRuleSeparator(sep string) error {
	return Default().SetRuleSeparator(sep)
}

// SetRuleParamSeparator changes the separator between a rule and its params (":").
func SetRuleParamSeparator(sep string) error {
	return Default().SetRuleParamSeparator(sep)
}

// SetParamsSeparator changes the separator between params (",").
func SetParamsSeparator(sep string) error {
	return Default().SetParamsSeparator(sep)
}

// SetMessages adds or replaces several message templates.
func SetMessages(templates map[string]string) error {
	return Default().SetMessages(templates)
}

// SetMessage adds or replaces the message template of a rule.
func SetMessage(rule, text string) error {
	return Default().SetMessage(rule, text)
}

// SetDefaultMessage replaces the message of rules without a template.
func SetDefaultMessage(text string) {
	Default().SetDefaultMessage(text)
}

// Pass reports a passed rule.
func Pass() Outcome { return validator.Pass() }

// Fail reports a failed rule with template params. A string "rule" param
// renames the failed rule.
func Fail(params Params) Outcome { return validator.Fail(params) }

// FailAs reports a failure under another rule name.
func FailAs(rule string, params Params) Outcome { return validator.FailAs(rule, params) }

// FailWithMessage reports a failure with a literal message.
func FailWithMessage(text string) Outcome { return validator.FailWithMessage(text) }

// Check passes when ok and fails with params otherwise.
func Check(ok bool, params Params) Outcome { return validator.Check(ok, params) }
