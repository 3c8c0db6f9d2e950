package schemes_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/schemes"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

const signupYAML = `
signup:
  email: required|email
  age: [required, number, "between:18,99"]
  role:
    required: true
    in_array: [admin, user]
    min: 3
  nickname:
login:
  email: required
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("yaml declarations", func(t *testing.T) {
		set, err := schemes.Parse(context.Background(), []byte(signupYAML))
		require.NoError(t, err)
		assert.Equal(t, []string{"login", "signup"}, set.Names())

		signup, ok := set.Get("signup")
		require.True(t, ok)
		assert.Equal(t, validator.OrderedScheme{
			{Name: "email", Rules: "required|email"},
			{Name: "age", Rules: []any{"required", "number", "between:18,99"}},
			{Name: "role", Rules: validator.Object{
				{Rule: "required", Value: true},
				{Rule: "in_array", Value: []any{"admin", "user"}},
				{Rule: "min", Value: 3},
			}},
			{Name: "nickname", Rules: ""},
		}, signup)
	})

	t.Run("json content", func(t *testing.T) {
		set, err := schemes.Parse(context.Background(), []byte(`{"contact":{"phone":"required|phone","tags":{"max":3,"array":true}}}`))
		require.NoError(t, err)

		contact, ok := set.Get("contact")
		require.True(t, ok)
		phone, ok := contact.Get("phone")
		require.True(t, ok)
		assert.Equal(t, "required|phone", phone)
		tags, ok := contact.Get("tags")
		require.True(t, ok)
		assert.Equal(t, validator.Object{{Rule: "max", Value: 3}, {Rule: "array", Value: true}}, tags)
	})

	t.Run("order is preserved through validation", func(t *testing.T) {
		set, err := schemes.Parse(context.Background(), []byte("s:\n  name:\n    min: 10\n    alpha: true\n"))
		require.NoError(t, err)

		res, err := validator.New().Validate(validator.Record{"name": "b1"}, set["s"])
		require.NoError(t, err)
		assert.Equal(t, []string{"min", "alpha"}, res.FailedRules("name"))
	})

	t.Run("fields are reported in file order", func(t *testing.T) {
		set, err := schemes.Parse(context.Background(), []byte("s:\n  zip: required\n  city: required\n  address: required\n"))
		require.NoError(t, err)

		res, err := validator.New().Validate(validator.Record{}, set["s"])
		require.NoError(t, err)
		assert.Equal(t, []string{"zip", "city", "address"}, res.Fields())
	})

	t.Run("anchors", func(t *testing.T) {
		content := "base: &base\n  email: required|email\ncopy: *base\n"
		set, err := schemes.Parse(context.Background(), []byte(content))
		require.NoError(t, err)
		assert.Equal(t, set["base"], set["copy"])
	})

	t.Run("empty content", func(t *testing.T) {
		set, err := schemes.Parse(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, set)
	})

	t.Run("invalid structure", func(t *testing.T) {
		for _, content := range []string{
			"- a\n- b\n",
			"s: required\n",
			"s:\n  f: [[required]]\n",
		} {
			_, err := schemes.Parse(context.Background(), []byte(content))
			assert.ErrorIs(t, err, schemes.ErrInvalidStructure, "content %q", content)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := schemes.Parse(context.Background(), []byte("s: ["))
		assert.ErrorIs(t, err, schemes.ErrFailedToParseYAML)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := schemes.Parse(ctx, []byte(signupYAML))
		assert.ErrorIs(t, err, schemes.ErrParsingCancelled)
	})
}
