package validator

import (
	"maps"
	"regexp"
	"strings"
	"unicode"
)

var (
	slugRegex      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	hexStringRegex = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
	base64Regex    = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)
	digitsRegex    = regexp.MustCompile(`^\d+$`)

	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)

	commonPasswords = map[string]bool{
		"password":    true,
		"123456":      true,
		"12345678":    true,
		"123456789":   true,
		"password123": true,
		"admin":       true,
		"qwerty":      true,
		"qwerty123":   true,
		"abc123":      true,
		"letmein":     true,
		"welcome":     true,
		"monkey":      true,
		"1234567890":  true,
		"dragon":      true,
		"sunshine":    true,
		"iloveyou":    true,
		"football":    true,
		"baseball":    true,
		"master":      true,
		"trustno1":    true,
	}
)

const defaultPasswordLength = 8

var extraTemplates = map[string]string{
	"slug":                ":name must be a valid slug",
	"hex":                 ":name must be a hexadecimal string",
	"base64":              ":name must be base64 encoded",
	"ascii":               ":name can only contain ASCII characters",
	"no_whitespace":       ":name must not contain whitespace",
	"credit_card":         ":name must be a valid card number",
	"strong_password":     ":name must have at least :min characters and 3 of: uppercase, lowercase, digits, symbols",
	"not_common_password": ":name is too common",
}

// extras returns the opt-in predicates enabled by WithExtraRules.
func extras() map[string]Predicate {
	return map[string]Predicate{
		"slug":                Slug,
		"hex":                 Hex,
		"base64":              Base64,
		"ascii":               ASCII,
		"no_whitespace":       NoWhitespace,
		"credit_card":         CreditCard,
		"strong_password":     StrongPassword,
		"not_common_password": NotCommonPassword,
	}
}

// ExtraTemplates returns the message templates of the opt-in rules.
func ExtraTemplates() map[string]string {
	return maps.Clone(extraTemplates)
}

// Slug passes for lowercase words joined by single hyphens.
func Slug(value any, _ ...any) Outcome {
	return Check(slugRegex.MatchString(toString(value)), Params{"value": value})
}

// Hex passes for hexadecimal strings. An optional param fixes the length.
func Hex(value any, params ...any) Outcome {
	s := toString(value)
	ok := hexStringRegex.MatchString(s)
	if n := toNumber(param(params, 0)); ok && n > 0 {
		ok = float64(len(s)) == n
	}
	return Check(ok, Params{"value": value, "length": param(params, 0)})
}

// Base64 passes for padded standard base64.
func Base64(value any, _ ...any) Outcome {
	s := toString(value)
	return Check(s != "" && len(s)%4 == 0 && base64Regex.MatchString(s), Params{"value": value})
}

// ASCII passes when every character is in the ASCII range.
func ASCII(value any, _ ...any) Outcome {
	for _, r := range toString(value) {
		if r > unicode.MaxASCII {
			return Fail(Params{"value": value})
		}
	}
	return Pass()
}

// NoWhitespace fails when the value contains any whitespace.
func NoWhitespace(value any, _ ...any) Outcome {
	if strings.IndexFunc(toString(value), unicode.IsSpace) >= 0 {
		return Fail(Params{"value": value})
	}
	return Pass()
}

// CreditCard passes for 13 to 19 digits with a valid Luhn checksum.
// Spaces and dashes are ignored.
func CreditCard(value any, _ ...any) Outcome {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(toString(value))
	if !digitsRegex.MatchString(cleaned) || len(cleaned) < 13 || len(cleaned) > 19 {
		return Fail(nil)
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return Check(sum%10 == 0, nil)
}

// StrongPassword requires a minimum length (the first param, 8 by default)
// and at least three character classes out of four.
func StrongPassword(value any, params ...any) Outcome {
	minLen := defaultPasswordLength
	if n := int(toNumber(param(params, 0))); n > 0 {
		minLen = n
	}

	s := toString(value)
	classes := 0
	for _, re := range []*regexp.Regexp{uppercaseRegex, lowercaseRegex, digitRegex, specialCharRegex} {
		if re.MatchString(s) {
			classes++
		}
	}
	return Check(len([]rune(s)) >= minLen && classes >= 3, Params{"min": minLen})
}

// NotCommonPassword fails for well known weak passwords, ignoring case.
func NotCommonPassword(value any, _ ...any) Outcome {
	return Check(!commonPasswords[strings.ToLower(toString(value))], nil)
}
