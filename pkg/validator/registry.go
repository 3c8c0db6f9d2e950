package validator

import (
	"fmt"
	"maps"
	"sort"
	"sync"
)

// Registry maps rule names to predicates. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Predicate
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Predicate)}
}

// NewDefaultRegistry creates a registry with every built-in rule.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	maps.Copy(r.rules, builtins())
	return r
}

// Register adds a predicate under name. Names are never overwritten.
func (r *Registry) Register(name string, predicate Predicate) error {
	if name == "" {
		return fmt.Errorf("%w: empty rule name", ErrInvalidArgument)
	}
	if predicate == nil {
		return fmt.Errorf("%w: %q", ErrInvalidPredicate, name)
	}
	if IsModifier(name) {
		return fmt.Errorf("%w: %q is a reserved modifier", ErrDuplicateRule, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rules[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRule, name)
	}
	r.rules[name] = predicate
	return nil
}

// Lookup returns the predicate registered under name.
func (r *Registry) Lookup(name string) (Predicate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return p, nil
}

// Exists reports whether name is registered.
func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rules[name]
	return ok
}

// Names returns the registered rule names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Registry{rules: maps.Clone(r.rules)}
}
