package validator_test

import (
	"encoding/json"
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestToRecord(t *testing.T) {
	t.Parallel()

	t.Run("maps", func(t *testing.T) {
		rec, err := validator.ToRecord(map[string]any{"a": 1})
		require.NoError(t, err)
		assert.Equal(t, validator.Record{"a": 1}, rec)

		rec, err = validator.ToRecord(map[string]string{"a": "x"})
		require.NoError(t, err)
		assert.Equal(t, validator.Record{"a": "x"}, rec)

		rec, err = validator.ToRecord(validator.Record(nil))
		require.NoError(t, err)
		assert.NotNil(t, rec)
	})

	t.Run("form values use first value", func(t *testing.T) {
		rec, err := validator.ToRecord(url.Values{"a": {"1", "2"}, "b": {}})
		require.NoError(t, err)
		assert.Equal(t, validator.Record{"a": "1", "b": ""}, rec)
	})

	t.Run("json object", func(t *testing.T) {
		rec, err := validator.ToRecord([]byte(`{"name":"Bo","age":40}`))
		require.NoError(t, err)
		assert.Equal(t, validator.Record{"name": "Bo", "age": 40.0}, rec)

		_, err = validator.ToRecord(json.RawMessage(`[1,2]`))
		assert.ErrorIs(t, err, validator.ErrInvalidArgument)

		_, err = validator.ToRecord([]byte(`null`))
		assert.ErrorIs(t, err, validator.ErrInvalidArgument)
	})

	t.Run("structs use json tags", func(t *testing.T) {
		type signup struct {
			Email string `json:"email"`
			Age   int    `json:"age,omitempty"`
			skip  string
		}

		rec, err := validator.ToRecord(&signup{Email: "a@b.co", skip: "x"})
		require.NoError(t, err)
		assert.Equal(t, validator.Record{"email": "a@b.co"}, rec)
	})

	t.Run("unsupported", func(t *testing.T) {
		for _, data := range []any{nil, 42, "str", []any{1}} {
			_, err := validator.ToRecord(data)
			assert.ErrorIs(t, err, validator.ErrInvalidArgument, "data %v", data)
		}
	})
}

func TestToString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"abc", "abc"},
		{true, "true"},
		{42, "42"},
		{int8(-3), "-3"},
		{uint(7), "7"},
		{1.5, "1.5"},
		{100.0, "100"},
		{1e21, "1000000000000000000000"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
		{[]any{1, "a", nil}, "1,a,"},
		{[]string{"x", "y"}, "x,y"},
		{json.Number("12.0"), "12.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.ToString(tt.in), "input %#v", tt.in)
	}
}

func TestToNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want float64
	}{
		{42, 42},
		{uint16(3), 3},
		{float32(1.5), 1.5},
		{"12", 12},
		{"  12.5px", 12.5},
		{"-3e2", -300},
		{".5", 0.5},
		{"1e", 1},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{[]any{7}, 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.ToNumber(tt.in), "input %#v", tt.in)
	}

	for _, in := range []any{nil, true, "abc", "", map[string]any{}, []any{}} {
		assert.True(t, math.IsNaN(validator.ToNumber(in)), "input %#v", in)
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var nilPtr *string
	assert.True(t, validator.IsEmpty(nil))
	assert.True(t, validator.IsEmpty(""))
	assert.True(t, validator.IsEmpty(nilPtr))
	assert.False(t, validator.IsEmpty(" "))
	assert.False(t, validator.IsEmpty(0))
	assert.False(t, validator.IsEmpty(false))
	assert.False(t, validator.IsEmpty([]any{}))
	assert.False(t, validator.IsEmpty(map[string]any{}))
}
