package schemes

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Set maps scheme names to validation schemes. Fields keep the order in
// which the file declares them.
type Set map[string]validator.OrderedScheme

// Names returns the scheme names, sorted.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the scheme registered under name.
func (s Set) Get(name string) (validator.OrderedScheme, bool) {
	scheme, ok := s[name]
	return scheme, ok
}

// Parse decodes YAML or JSON content of the form
//
//	signup:
//	  email: required|email
//	  age: [required, number, "between:18,99"]
//	  role:
//	    required: true
//	    in_array: [admin, user]
//
// String declarations stay strings, sequences become []any and mappings become
// a validator.Object in declaration order.
func Parse(ctx context.Context, content []byte) (Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Set{}, nil
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must map scheme names to schemes", ErrInvalidStructure)
	}

	set := make(Set, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		if _, ok := set[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateScheme, name)
		}
		scheme, err := parseScheme(resolve(root.Content[i+1]))
		if err != nil {
			return nil, fmt.Errorf("scheme %q: %w", name, err)
		}
		set[name] = scheme
	}
	return set, nil
}

func parseScheme(node *yaml.Node) (validator.OrderedScheme, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: scheme must map fields to rules (line %d)", ErrInvalidStructure, node.Line)
	}

	scheme := make(validator.OrderedScheme, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		field := node.Content[i].Value
		decl, err := declaration(resolve(node.Content[i+1]))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		scheme = append(scheme, validator.Field{Name: field, Rules: decl})
	}
	return scheme, nil
}

func declaration(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return "", nil
		}
		return node.Value, nil

	case yaml.SequenceNode:
		rules := make([]any, 0, len(node.Content))
		for _, el := range node.Content {
			el = resolve(el)
			if el.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: array rules must be strings (line %d)", ErrInvalidStructure, el.Line)
			}
			rules = append(rules, el.Value)
		}
		return rules, nil

	case yaml.MappingNode:
		obj := make(validator.Object, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var value any
			if err := resolve(node.Content[i+1]).Decode(&value); err != nil {
				return nil, errors.Join(ErrFailedToParseYAML, err)
			}
			obj = append(obj, validator.Entry{Rule: node.Content[i].Value, Value: value})
		}
		return obj, nil
	}

	return nil, fmt.Errorf("%w: unsupported rule declaration (line %d)", ErrInvalidStructure, node.Line)
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
