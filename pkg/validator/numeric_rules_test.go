package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestMin(t *testing.T) {
	tests := []struct {
		name  string
		value any
		min   any
		want  bool
	}{
		{"number above", 10, "5", true},
		{"number equal", 5.0, "5", true},
		{"number below", 4, 5, false},
		{"string length", "abcd", "4", true},
		{"string too short", "abc", "4", false},
		{"runes not bytes", "héllo", "5", true},
		{"slice length", []any{1, 2}, 2, true},
		{"map length", map[string]any{"a": 1}, 2, false},
		{"numeric string param with spaces", 10, " 5", true},
		{"NaN fails", math.NaN(), 0, false},
		{"bool is not a number", true, 0, false},
		{"missing param", 10, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.Min(tt.value, tt.min).Passed())
		})
	}

	t.Run("reports the limit", func(t *testing.T) {
		assert.Equal(t, validator.Params{"min": "5"}, validator.Min(1, "5").Params())
	})
}

func TestMax(t *testing.T) {
	assert.True(t, validator.Max(5, "5").Passed())
	assert.True(t, validator.Max("abc", 3).Passed())
	assert.False(t, validator.Max("abcd", 3).Passed())
	assert.False(t, validator.Max(6.5, "6").Passed())
	assert.Equal(t, validator.Params{"max": 3}, validator.Max("abcd", 3).Params())
}

func TestBetween(t *testing.T) {
	assert.True(t, validator.Between(5, "1", "10").Passed())
	assert.True(t, validator.Between(1, 1, 10).Passed())
	assert.True(t, validator.Between(10, 1, 10).Passed())
	assert.True(t, validator.Between("abc", 1, 3).Passed())
	assert.False(t, validator.Between(0, 1, 10).Passed())
	assert.False(t, validator.Between("abcd", 1, 3).Passed())
	assert.False(t, validator.Between(5, 1).Passed())

	out := validator.Between(11, "1", "10")
	assert.Equal(t, validator.Params{"from": "1", "to": "10", "value": 11}, out.Params())
}

func TestNumeric(t *testing.T) {
	for _, v := range []any{"123", 42, uint8(7), 3.0} {
		assert.True(t, validator.Numeric(v).Passed(), "value %v", v)
	}
	for _, v := range []any{"12.5", "-1", "1e3", "", nil, "١٢"} {
		assert.False(t, validator.Numeric(v).Passed(), "value %v", v)
	}
}
