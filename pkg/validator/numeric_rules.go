package validator

import "regexp"

// Numeric string regex
var numericStringRegex = regexp.MustCompile(`^[0-9]+$`)

// Min compares the size of the value with the first param: rune count for
// strings, length for lists and maps, the number itself otherwise.
func Min(value any, params ...any) Outcome {
	limit := param(params, 0)
	return Check(size(value) >= toNumber(limit), Params{"min": limit})
}

// Max is the upper bound counterpart of Min.
func Max(value any, params ...any) Outcome {
	limit := param(params, 0)
	return Check(size(value) <= toNumber(limit), Params{"max": limit})
}

// Between passes when the size of the value lies within the two params,
// bounds included.
func Between(value any, params ...any) Outcome {
	from, to := param(params, 0), param(params, 1)
	s := size(value)
	return Check(s >= toNumber(from) && s <= toNumber(to), Params{"from": from, "to": to, "value": value})
}

// Numeric passes when the value consists of digits only.
func Numeric(value any, _ ...any) Outcome {
	return Check(numericStringRegex.MatchString(toString(value)), Params{"value": value})
}
