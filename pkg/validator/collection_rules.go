package validator

import (
	"reflect"
	"strings"
)

// IsArray passes for slices and arrays.
func IsArray(value any, _ ...any) Outcome {
	return Check(isList(value), Params{})
}

// IsObject passes for maps, structs and lists, or pointers to them.
func IsObject(value any, _ ...any) Outcome {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return Pass()
	}
	return Fail(Params{"value": value})
}

// ContainsAll passes when the value contains every param. Lists are searched
// for elements, anything else is searched as a string.
func ContainsAll(value any, params ...any) Outcome {
	contains := containsFunc(value)
	for _, p := range params {
		if !contains(toString(p)) {
			return Fail(Params{"value_to_contain": p})
		}
	}
	return Pass()
}

// ContainsOne passes when the value contains at least one param.
func ContainsOne(value any, params ...any) Outcome {
	contains := containsFunc(value)
	for _, p := range params {
		if contains(toString(p)) {
			return Pass()
		}
	}
	return Fail(Params{"value_to_contain": joinParams(params)})
}

func isList(value any) bool {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func containsFunc(value any) func(string) bool {
	if _, ok := value.([]byte); !ok && isList(value) {
		rv := reflect.ValueOf(value)
		elems := make(map[string]struct{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elems[toString(rv.Index(i).Interface())] = struct{}{}
		}
		return func(s string) bool {
			_, ok := elems[s]
			return ok
		}
	}

	s := toString(value)
	return func(sub string) bool {
		return strings.Contains(s, sub)
	}
}
