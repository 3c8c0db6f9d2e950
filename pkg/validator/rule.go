package validator

import (
	"slices"
	"sort"
)

// Modifier rule names. They change how a field is evaluated instead of
// checking its value.
const (
	ModifierRequired = "required"
	ModifierNullable = "nullable"
	ModifierString   = "string"
	ModifierNumber   = "number"
)

// IsModifier reports whether name is one of the reserved modifier rules.
func IsModifier(name string) bool {
	switch name {
	case ModifierRequired, ModifierNullable, ModifierString, ModifierNumber:
		return true
	}
	return false
}

// Predicate is a named check. Params are the rule parameters; they are strings
// when declared with the string syntax.
type Predicate func(value any, params ...any) Outcome

// InlineFunc is an anonymous check that also sees the whole record.
type InlineFunc func(value any, data Record) Outcome

// Custom declares an inline rule with an explicit name and message template.
type Custom struct {
	Name      string
	Validator InlineFunc
	Message   string
}

// Declarations is a set of field rule declarations. Scheme and OrderedScheme
// implement it.
type Declarations interface {
	// Declarations returns the fields in evaluation order.
	Declarations() []Field
}

// Scheme maps field names to rule declarations. A declaration is a string
// ("required|min:3"), a slice of strings and functions, an Object or
// map[string]any, an InlineFunc, or a Custom. Fields are evaluated in name
// order; use OrderedScheme to keep the authoring order.
type Scheme map[string]any

// Declarations returns the fields sorted by name.
func (s Scheme) Declarations() []Field {
	fields := make([]Field, 0, len(s))
	for name, rules := range s {
		fields = append(fields, Field{Name: name, Rules: rules})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
	return fields
}

// Field is one field declaration of an OrderedScheme.
type Field struct {
	Name  string
	Rules any
}

// OrderedScheme is a scheme evaluated in declaration order. A field declared
// twice keeps its first position and its last rules.
type OrderedScheme []Field

// Declarations returns the fields as declared.
func (s OrderedScheme) Declarations() []Field {
	return s
}

// Get returns the rule declaration of a field.
func (s OrderedScheme) Get(name string) (any, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Name == name {
			return s[i].Rules, true
		}
	}
	return nil, false
}

// Names returns the field names in declaration order.
func (s OrderedScheme) Names() []string {
	names := make([]string, 0, len(s))
	for _, f := range s {
		if !slices.Contains(names, f.Name) {
			names = append(names, f.Name)
		}
	}
	return names
}

// Entry is one rule of an Object declaration.
type Entry struct {
	Rule  string
	Value any
}

// Object is the ordered object form of a rule declaration.
type Object []Entry

// Rule is a single parsed rule of a field.
type Rule struct {
	Name    string
	Inline  bool
	Params  []any
	Message string

	predicate Predicate
	inline    InlineFunc
}

func (r *Rule) run(value any, data Record) Outcome {
	if r.Inline {
		if r.inline == nil {
			return Pass()
		}
		return r.inline(value, data)
	}
	if r.predicate == nil {
		return Pass()
	}
	return r.predicate(value, r.Params...)
}

// FieldRules is the parsed rule set of one field.
type FieldRules struct {
	Field    string
	Rules    []*Rule
	Required bool
	Nullable bool
	String   bool
	Number   bool
}

// RuleNames returns the names of the checking rules in evaluation order.
func (f *FieldRules) RuleNames() []string {
	names := make([]string, 0, len(f.Rules))
	for _, r := range f.Rules {
		names = append(names, r.Name)
	}
	return names
}

// ParsedScheme is a scheme resolved against a registry, in evaluation order.
type ParsedScheme struct {
	fields []*FieldRules
}

// Fields returns the field names in evaluation order.
func (p *ParsedScheme) Fields() []string {
	names := make([]string, 0, len(p.fields))
	for _, f := range p.fields {
		names = append(names, f.Field)
	}
	return names
}

// Field returns the parsed rules of a field.
func (p *ParsedScheme) Field(name string) (*FieldRules, bool) {
	i := slices.IndexFunc(p.fields, func(f *FieldRules) bool { return f.Field == name })
	if i < 0 {
		return nil, false
	}
	return p.fields[i], true
}

// Len returns the number of fields.
func (p *ParsedScheme) Len() int {
	return len(p.fields)
}
