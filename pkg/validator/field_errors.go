package validator

import (
	"errors"
	"strings"
)

// FieldError is one failed rule of a field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors is the error form of a failed Result, in evaluation order.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range fe {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Fields returns the failed fields in first-failure order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	seen := make(map[string]struct{}, len(fe))
	for _, e := range fe {
		if _, ok := seen[e.Field]; !ok {
			seen[e.Field] = struct{}{}
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// Messages returns the messages of field.
func (fe FieldErrors) Messages(field string) []string {
	return fe.collect(field, func(e FieldError) string { return e.Message })
}

// Rules returns the failed rule names of field.
func (fe FieldErrors) Rules(field string) []string {
	return fe.collect(field, func(e FieldError) string { return e.Rule })
}

func (fe FieldErrors) collect(field string, pick func(FieldError) string) []string {
	var out []string
	for _, e := range fe {
		if e.Field == field {
			out = append(out, pick(e))
		}
	}
	return out
}

// AsFieldErrors unwraps FieldErrors from err.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if err == nil || !errors.As(err, &fe) {
		return nil, false
	}
	return fe, true
}
