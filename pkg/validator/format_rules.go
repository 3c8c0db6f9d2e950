package validator

import (
	"encoding/json"
	"net"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strings"
)

// Phone number regex - international format with optional country code
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// Email passes for a plain address such as "user@example.com".
func Email(value any, _ ...any) Outcome {
	return Check(validEmail(toString(value)), Params{"value": value})
}

func validEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	// Parse with Go's mail parser first
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	// Display names ("Jane <jane@example.com>") are not plain addresses
	email := addr.Address
	if email != value {
		return false
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}

	localPart := parts[0]
	domain := parts[1]

	// Local part cannot be empty
	if localPart == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	// Domain parts cannot be empty
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// URL passes for absolute URLs with a scheme and a host.
func URL(value any, _ ...any) Outcome {
	s := toString(value)
	ok := false
	if strings.TrimSpace(s) != "" {
		u, err := url.ParseRequestURI(s)
		// Must have a scheme and host
		ok = err == nil && u.Scheme != "" && u.Host != ""
	}
	return Check(ok, Params{"value": value})
}

// IP passes for IPv4 and IPv6 addresses.
func IP(value any, _ ...any) Outcome {
	return Check(net.ParseIP(strings.TrimSpace(toString(value))) != nil, Params{"value": value})
}

// JSON passes when the string form of the value is valid JSON.
func JSON(value any, _ ...any) Outcome {
	return Check(json.Valid([]byte(toString(value))), Params{})
}

// Phone passes for international numbers like +1234567890. Spaces and dashes
// are ignored.
func Phone(value any, _ ...any) Outcome {
	s := toString(value)
	cleaned := strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "-", "")
	// Must be at least 7 digits (minimum valid phone number)
	ok := len(cleaned) >= 7 && phoneRegex.MatchString(cleaned)
	return Check(ok, Params{"value": value})
}

// Boolean passes for bool values.
func Boolean(value any, _ ...any) Outcome {
	return Check(reflect.ValueOf(value).Kind() == reflect.Bool, Params{})
}

// Checked passes for true, "true", "on" and the number 1.
func Checked(value any, _ ...any) Outcome {
	ok := false
	switch v := value.(type) {
	case bool:
		ok = v
	case string:
		ok = v == "on" || v == "true"
	case nil:
	default:
		switch reflect.ValueOf(value).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			ok = toNumber(value) == 1
		}
	}
	return Check(ok, Params{})
}
