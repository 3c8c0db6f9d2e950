package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"
)

// Separators are the tokens of the string rule syntax.
type Separators struct {
	Rule      string // between rules: "required|min:3"
	RuleParam string // between a rule name and its params: "min:3"
	Params    string // between params: "between:1,10"
}

// DefaultSeparators returns "|", ":" and ",".
func DefaultSeparators() Separators {
	return Separators{Rule: "|", RuleParam: ":", Params: ","}
}

// firstAnonymousKey is the key of the first unnamed inline rule in a scheme.
const firstAnonymousKey = 100

// ruleSet keeps rules keyed by name in first-seen order; later writes replace
// the rule but keep its position.
type ruleSet struct {
	keys  []string
	rules map[string]*Rule
}

func newRuleSet() *ruleSet {
	return &ruleSet{rules: make(map[string]*Rule)}
}

func (s *ruleSet) put(r *Rule) {
	if _, ok := s.rules[r.Name]; !ok {
		s.keys = append(s.keys, r.Name)
	}
	s.rules[r.Name] = r
}

func (s *ruleSet) merge(other *ruleSet) {
	for _, k := range other.keys {
		s.put(other.rules[k])
	}
}

// normalizer turns rule declarations into rule sets. One normalizer serves a
// single scheme parse, so anonymous keys restart at 100 for every parse.
type normalizer struct {
	registry *Registry
	seps     Separators
	anon     int
}

func newNormalizer(registry *Registry, seps Separators) *normalizer {
	return &normalizer{registry: registry, seps: seps, anon: firstAnonymousKey}
}

func (n *normalizer) normalize(decl any) (*ruleSet, error) {
	set := newRuleSet()

	switch d := decl.(type) {
	case string:
		if err := n.parseString(set, d); err != nil {
			return nil, err
		}
	case []string:
		for _, s := range d {
			if err := n.parseString(set, s); err != nil {
				return nil, err
			}
		}
	case []any:
		if err := n.parseArray(set, d); err != nil {
			return nil, err
		}
	case Object:
		if err := n.parseObject(set, d); err != nil {
			return nil, err
		}
	case map[string]any:
		if err := n.parseObject(set, objectFromMap(d)); err != nil {
			return nil, err
		}
	default:
		r, ok, err := n.inlineElement(decl)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidRuleDeclaration, decl)
		}
		set.put(r)
	}

	return set, nil
}

func objectFromMap(m map[string]any) Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	obj := make(Object, 0, len(keys))
	for _, k := range keys {
		obj = append(obj, Entry{Rule: k, Value: m[k]})
	}
	return obj
}

// parseString handles "required|min:3|in_array:a,b".
func (n *normalizer) parseString(set *ruleSet, decl string) error {
	for _, segment := range splitEscaped(decl, n.seps.Rule) {
		rawName, rawParams, hasParams := cutEscaped(segment, n.seps.RuleParam)
		name := strings.TrimSpace(n.unescape(rawName))
		if name == "" {
			if hasParams {
				return fmt.Errorf("%w: rule without a name in %q", ErrInvalidRuleDeclaration, segment)
			}
			continue
		}

		params := []any{}
		if hasParams && rawParams != "" {
			for _, p := range splitEscaped(rawParams, n.seps.Params) {
				params = append(params, n.unescape(p))
			}
		}

		r, err := n.namedRule(name, params)
		if err != nil {
			return err
		}
		set.put(r)
	}
	return nil
}

// parseArray handles ["required", "min:3", isEven, Custom{...}].
func (n *normalizer) parseArray(set *ruleSet, decl []any) error {
	for _, el := range decl {
		switch v := el.(type) {
		case nil:
			continue
		case string:
			if err := n.parseString(set, v); err != nil {
				return err
			}
			continue
		}

		r, ok, err := n.inlineElement(el)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: unsupported array element %T", ErrInvalidRuleDeclaration, el)
		}
		set.put(r)
	}
	return nil
}

// parseObject handles {required: true, between: [1, 10], custom: fn}.
func (n *normalizer) parseObject(set *ruleSet, decl Object) error {
	for _, entry := range decl {
		name := strings.TrimSpace(entry.Rule)
		if name == "" {
			return fmt.Errorf("%w: empty rule name in object", ErrInvalidRuleDeclaration)
		}

		if IsModifier(name) {
			set.put(&Rule{Name: name})
			continue
		}

		if fn, ok := asInline(entry.Value); ok {
			if fn == nil {
				return fmt.Errorf("%w: nil function for rule %q", ErrInvalidRuleDeclaration, name)
			}
			set.put(&Rule{Name: name, Inline: true, inline: fn})
			continue
		}
		if c, ok := asCustom(entry.Value); ok {
			if c.Validator == nil {
				return fmt.Errorf("%w: custom rule %q has no validator", ErrInvalidRuleDeclaration, name)
			}
			set.put(&Rule{Name: name, Inline: true, inline: c.Validator, Message: c.Message})
			continue
		}

		r, err := n.namedRule(name, objectParams(entry.Value))
		if err != nil {
			return err
		}
		set.put(r)
	}
	return nil
}

// objectParams uses a slice or array value as the params and wraps anything
// else. Byte slices are a single value.
func objectParams(value any) []any {
	switch v := value.(type) {
	case []any:
		return v
	case []byte:
		return []any{v}
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{value}
	}
	params := make([]any, rv.Len())
	for i := range params {
		params[i] = rv.Index(i).Interface()
	}
	return params
}

// inlineElement builds a rule from a function or Custom declaration. The key is
// the Custom name, else the function's declared name, else a counter.
func (n *normalizer) inlineElement(el any) (*Rule, bool, error) {
	if fn, ok := asInline(el); ok {
		if fn == nil {
			return nil, true, fmt.Errorf("%w: nil function", ErrInvalidRuleDeclaration)
		}
		return &Rule{Name: n.inlineKey("", el), Inline: true, inline: fn}, true, nil
	}
	if c, ok := asCustom(el); ok {
		if c.Validator == nil {
			return nil, true, fmt.Errorf("%w: custom rule %q has no validator", ErrInvalidRuleDeclaration, c.Name)
		}
		return &Rule{
			Name:    n.inlineKey(strings.TrimSpace(c.Name), c.Validator),
			Inline:  true,
			inline:  c.Validator,
			Message: c.Message,
		}, true, nil
	}
	return nil, false, nil
}

func (n *normalizer) inlineKey(name string, fn any) string {
	if name != "" {
		return name
	}
	if name = funcName(fn); name != "" {
		return name
	}
	key := strconv.Itoa(n.anon)
	n.anon++
	return key
}

func (n *normalizer) namedRule(name string, params []any) (*Rule, error) {
	if IsModifier(name) {
		return &Rule{Name: name, Params: params}, nil
	}
	predicate, err := n.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	return &Rule{Name: name, Params: params, predicate: predicate}, nil
}

func asInline(v any) (InlineFunc, bool) {
	switch fn := v.(type) {
	case InlineFunc:
		return fn, true
	case func(any, Record) Outcome:
		return fn, true
	}
	return nil, false
}

func asCustom(v any) (Custom, bool) {
	switch c := v.(type) {
	case Custom:
		return c, true
	case *Custom:
		if c != nil {
			return *c, true
		}
	}
	return Custom{}, false
}

var anonymousFunc = regexp.MustCompile(`^(func)?\d+$`)

// funcName returns the declared name of a function, or "" for closures.
func funcName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return ""
	}

	name := strings.TrimSuffix(f.Name(), "-fm")
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if anonymousFunc.MatchString(name) {
		return ""
	}
	return name
}

// splitEscaped splits s on sep, skipping separators preceded by a backslash.
// Escapes are kept in the parts.
func splitEscaped(s, sep string) []string {
	if sep == "" {
		return []string{s}
	}

	var parts []string
	var b strings.Builder
	for i := 0; i < len(s); {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			b.WriteString(s[i : i+2])
			i += 2
		case strings.HasPrefix(s[i:], sep):
			parts = append(parts, b.String())
			b.Reset()
			i += len(sep)
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return append(parts, b.String())
}

// cutEscaped cuts s around the first unescaped sep.
func cutEscaped(s, sep string) (before, after string, found bool) {
	if sep == "" {
		return s, "", false
	}
	for i := 0; i < len(s); {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			i += 2
		case strings.HasPrefix(s[i:], sep):
			return s[:i], s[i+len(sep):], true
		default:
			i++
		}
	}
	return s, "", false
}

// unescape drops the backslash in front of a separator or another backslash.
// Other backslashes are literal.
func (n *normalizer) unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && n.escapable(s[i+1:]) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func (n *normalizer) escapable(rest string) bool {
	if rest[0] == '\\' {
		return true
	}
	for _, sep := range []string{n.seps.Rule, n.seps.RuleParam, n.seps.Params} {
		if sep != "" && strings.HasPrefix(rest, sep) {
			return true
		}
	}
	return false
}
