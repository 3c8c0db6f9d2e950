package validator

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// Result holds the outcome of a validation run.
type Result struct {
	fields []string
	errors map[string][]string
	failed map[string][]string

	// sources holds the rule that produced each message in errors.
	sources map[string][]string
}

func newResult() *Result {
	return &Result{
		errors:  make(map[string][]string),
		failed:  make(map[string][]string),
		sources: make(map[string][]string),
	}
}

// add records a failed rule. Duplicate messages are stored once, while every
// failed rule name is kept.
func (r *Result) add(field, rule, message string) {
	msgs, ok := r.errors[field]
	if !ok {
		r.fields = append(r.fields, field)
	}
	if !slices.Contains(msgs, message) {
		r.errors[field] = append(msgs, message)
		r.sources[field] = append(r.sources[field], rule)
	}
	r.failed[field] = append(r.failed[field], rule)
}

// HasError reports whether any field failed.
func (r *Result) HasError() bool {
	return len(r.errors) > 0
}

// Errors returns the unique messages of every failed field.
func (r *Result) Errors() map[string][]string {
	out := make(map[string][]string, len(r.errors))
	for field, msgs := range r.errors {
		out[field] = slices.Clone(msgs)
	}
	return out
}

// IsError reports whether field failed. With a rule name it reports whether
// that particular rule failed for the field.
func (r *Result) IsError(field string, rule ...string) bool {
	if len(rule) == 0 {
		_, ok := r.errors[field]
		return ok
	}
	return slices.Contains(r.failed[field], rule[0])
}

// GetError returns all messages of field joined with ",", or "".
func (r *Result) GetError(field string) string {
	return strings.Join(r.errors[field], ",")
}

// FirstError returns the first message of field, or "".
func (r *Result) FirstError(field string) string {
	if msgs := r.errors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Fields returns the failed fields in evaluation order.
func (r *Result) Fields() []string {
	return slices.Clone(r.fields)
}

// FailedRules returns the failed rule names of field in evaluation order.
func (r *Result) FailedRules(field string) []string {
	return slices.Clone(r.failed[field])
}

// Err returns the failures as FieldErrors, or nil when valid.
func (r *Result) Err() error {
	if !r.HasError() {
		return nil
	}

	errs := make(FieldErrors, 0, len(r.fields))
	for _, field := range r.fields {
		for i, msg := range r.errors[field] {
			errs = append(errs, FieldError{Field: field, Rule: r.sources[field][i], Message: msg})
		}
	}
	return errs
}

// MarshalJSON renders {"hasError": bool, "errors": {field: [messages]}}.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		HasError bool                `json:"hasError"`
		Errors   map[string][]string `json:"errors"`
	}{
		HasError: r.HasError(),
		Errors:   maps.Clone(r.errors),
	})
}
