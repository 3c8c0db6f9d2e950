package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestAlpha(t *testing.T) {
	t.Run("passes for letters", func(t *testing.T) {
		assert.True(t, validator.Alpha("Hello").Passed())
	})

	t.Run("fails for other characters", func(t *testing.T) {
		for _, v := range []any{"hello1", "hé", "", nil, "a b"} {
			assert.False(t, validator.Alpha(v).Passed(), "value %v", v)
		}
	})

	t.Run("reports the value", func(t *testing.T) {
		assert.Equal(t, validator.Params{"value": "a1"}, validator.Alpha("a1").Params())
	})
}

func TestAlphaDash(t *testing.T) {
	assert.True(t, validator.AlphaDash("first-name").Passed())
	assert.True(t, validator.AlphaDash("-").Passed())
	assert.False(t, validator.AlphaDash("first_name").Passed())
	assert.False(t, validator.AlphaDash("abc1").Passed())
}

func TestAlphaNumeric(t *testing.T) {
	assert.True(t, validator.AlphaNumeric("abc123").Passed())
	assert.True(t, validator.AlphaNumeric(42).Passed())
	assert.False(t, validator.AlphaNumeric("abc-123").Passed())
	assert.False(t, validator.AlphaNumeric(1.5).Passed())
}

func TestStartsWith(t *testing.T) {
	t.Run("passes when prefix is at position zero", func(t *testing.T) {
		assert.True(t, validator.StartsWith("https://example.com", "https").Passed())
	})

	t.Run("fails when prefix is elsewhere", func(t *testing.T) {
		out := validator.StartsWith("xhttps", "https")
		assert.False(t, out.Passed())
		assert.Equal(t, validator.Params{"prefix": "https"}, out.Params())
	})

	t.Run("compares string forms", func(t *testing.T) {
		assert.True(t, validator.StartsWith(12345, 12).Passed())
	})
}

func TestEndsWith(t *testing.T) {
	assert.True(t, validator.EndsWith("photo.png", ".png").Passed())
	assert.True(t, validator.EndsWith("abc", "").Passed())

	out := validator.EndsWith("photo.jpg", ".png")
	assert.False(t, out.Passed())
	assert.Equal(t, validator.Params{"suffix": ".png"}, out.Params())
}
