package validator

import "strings"

// InArray passes when the value equals one of the params. Values are compared
// as strings.
func InArray(value any, params ...any) Outcome {
	s := toString(value)
	for _, p := range params {
		if toString(p) == s {
			return Pass()
		}
	}
	return Fail(Params{"value": joinParams(params)})
}

// NotIn passes when the value equals none of the params.
func NotIn(value any, params ...any) Outcome {
	s := toString(value)
	for _, p := range params {
		if toString(p) == s {
			return Fail(Params{"value": value})
		}
	}
	return Pass()
}

// Equals passes when the value equals the first param.
func Equals(value any, params ...any) Outcome {
	expected := param(params, 0)
	return Check(toString(value) == toString(expected), Params{"value": expected})
}

// NotEquals passes when the value differs from the first param.
func NotEquals(value any, params ...any) Outcome {
	forbidden := param(params, 0)
	return Check(toString(value) != toString(forbidden), Params{"value": forbidden})
}

func joinParams(params []any) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = toString(p)
	}
	return strings.Join(parts, ",")
}
