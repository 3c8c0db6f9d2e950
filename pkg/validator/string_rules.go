package validator

import (
	"regexp"
	"strings"
)

var (
	// Alpha regex
	alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

	// Letters and dashes
	alphaDashRegex = regexp.MustCompile(`^[a-zA-Z\-]+$`)

	// Alphanumeric regex
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Alpha passes when the value contains ASCII letters only.
func Alpha(value any, _ ...any) Outcome {
	return Check(alphaRegex.MatchString(toString(value)), Params{"value": value})
}

// AlphaDash passes when the value contains ASCII letters and dashes only.
func AlphaDash(value any, _ ...any) Outcome {
	return Check(alphaDashRegex.MatchString(toString(value)), Params{"value": value})
}

// AlphaNumeric passes when the value contains ASCII letters and digits only.
func AlphaNumeric(value any, _ ...any) Outcome {
	return Check(alphanumericRegex.MatchString(toString(value)), Params{"value": value})
}

// StartsWith passes when the value starts with the first param.
func StartsWith(value any, params ...any) Outcome {
	prefix := toString(param(params, 0))
	return Check(strings.HasPrefix(toString(value), prefix), Params{"prefix": prefix})
}

// EndsWith passes when the value ends with the first param.
func EndsWith(value any, params ...any) Outcome {
	suffix := toString(param(params, 0))
	return Check(strings.HasSuffix(toString(value), suffix), Params{"suffix": suffix})
}
