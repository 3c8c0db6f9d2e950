package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// ToRecord converts supported inputs into a Record:
// Record and map[string]any as is, map[string]string, url.Values and
// map[string][]string (first value per key), a JSON object as []byte or
// json.RawMessage, and structs or pointers to structs (keyed by json tag).
func ToRecord(data any) (Record, error) {
	switch d := data.(type) {
	case Record:
		if d == nil {
			return Record{}, nil
		}
		return d, nil
	case map[string]any:
		if d == nil {
			return Record{}, nil
		}
		return Record(d), nil
	case map[string]string:
		rec := make(Record, len(d))
		for k, v := range d {
			rec[k] = v
		}
		return rec, nil
	case url.Values:
		return firstValues(d), nil
	case map[string][]string:
		return firstValues(d), nil
	case json.RawMessage:
		return decodeRecord(d)
	case []byte:
		return decodeRecord(d)
	case nil:
		return nil, fmt.Errorf("%w: data must be a record, got nil", ErrInvalidArgument)
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: data must be a record, got %T", ErrInvalidArgument, data)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return decodeRecord(raw)
}

func firstValues(values map[string][]string) Record {
	rec := make(Record, len(values))
	for k, v := range values {
		if len(v) > 0 {
			rec[k] = v[0]
		} else {
			rec[k] = ""
		}
	}
	return rec
}

func decodeRecord(raw []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: data must be a JSON object", ErrInvalidArgument)
	}
	return rec, nil
}

// isEmpty reports whether a value counts as missing: nil or "".
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// toString renders a value the way string coercion does: nil is "", floats use
// the shortest representation, and lists are joined with commas.
func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatFloat(v)
	case float32:
		return formatFloat(float64(v))
	case json.Number:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float())
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = toString(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
		return toString(rv.Elem().Interface())
	}
	return fmt.Sprint(value)
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var numberPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// toNumber converts a value to float64 like parseFloat: numbers convert
// directly, strings parse their longest numeric prefix, anything else is NaN.
func toNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		return parseNumber(v.String())
	case string:
		return parseNumber(v)
	case nil, bool:
		return math.NaN()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return parseNumber(rv.String())
	case reflect.Slice, reflect.Array:
		return parseNumber(toString(value))
	case reflect.Pointer:
		if !rv.IsNil() {
			return toNumber(rv.Elem().Interface())
		}
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	m := numberPrefix.FindString(strings.TrimLeft(s, " \t\n\r\v\f"))
	if m == "" {
		return math.NaN()
	}
	if strings.HasSuffix(m, "Infinity") {
		if strings.HasPrefix(m, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	// Out of range exponents still yield ±Inf or 0 alongside the error.
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// size returns the rune count of strings, the length of lists and maps, and
// the numeric value of anything else.
func size(value any) float64 {
	if s, ok := value.(string); ok {
		return float64(utf8.RuneCountInString(s))
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return float64(rv.Len())
	case reflect.String:
		return float64(utf8.RuneCountInString(rv.String()))
	}
	return toNumber(value)
}

// param returns the i-th rule parameter or nil.
func param(params []any, i int) any {
	if i < len(params) {
		return params[i]
	}
	return nil
}

// stringParams renders failure params for message formatting.
func stringParams(params Params) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = toString(v)
	}
	return out
}
