package validator

import (
	"fmt"
	"slices"
)

// parseScheme resolves every field declaration of a scheme in the order the
// scheme reports them. A repeated field replaces the earlier one in place.
func parseScheme(scheme Declarations, registry *Registry, seps Separators, cache *declCache) (*ParsedScheme, error) {
	if scheme == nil {
		return &ParsedScheme{}, nil
	}
	decls := scheme.Declarations()

	n := newNormalizer(registry, seps)
	parsed := &ParsedScheme{fields: make([]*FieldRules, 0, len(decls))}
	index := make(map[string]int, len(decls))

	for _, decl := range decls {
		set, err := normalizeCached(n, decl.Rules, cache)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidScheme, decl.Name, err)
		}
		fr := fieldRules(decl.Name, set)
		if i, ok := index[decl.Name]; ok {
			parsed.fields[i] = fr
			continue
		}
		index[decl.Name] = len(parsed.fields)
		parsed.fields = append(parsed.fields, fr)
	}

	return parsed, nil
}

// normalizeCached reuses the parse of plain string declarations. Other forms
// may hold functions and are always normalized.
func normalizeCached(n *normalizer, decl any, cache *declCache) (*ruleSet, error) {
	s, ok := decl.(string)
	if !ok || cache == nil {
		return n.normalize(decl)
	}

	key := declKey(n.seps, s)
	if set, ok := cache.get(key); ok {
		return set, nil
	}
	set, err := n.normalize(s)
	if err != nil {
		return nil, err
	}
	cache.put(key, set)
	return set, nil
}

func fieldRules(field string, set *ruleSet) *FieldRules {
	fr := &FieldRules{Field: field, Rules: make([]*Rule, 0, len(set.keys))}
	for _, key := range set.keys {
		switch key {
		case ModifierRequired:
			fr.Required = true
		case ModifierNullable:
			fr.Nullable = true
		case ModifierString:
			fr.String = true
		case ModifierNumber:
			fr.Number = true
		default:
			// Cached sets are shared between parses.
			r := *set.rules[key]
			r.Params = slices.Clone(r.Params)
			fr.Rules = append(fr.Rules, &r)
		}
	}
	return fr
}
