package messages_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/messages"
)

func TestStoreDefaults(t *testing.T) {
	t.Parallel()

	store := messages.New()

	text, ok := store.Get("required")
	require.True(t, ok)
	assert.Equal(t, ":name is required", text)

	assert.Equal(t, messages.DefaultMessage, store.Default())
	assert.Equal(t, messages.DefaultMessage, store.Template("no_such_rule"))
	assert.Contains(t, store.Rules(), "uuid")
	assert.Contains(t, store.Rules(), "string")
}

func TestStoreSet(t *testing.T) {
	t.Parallel()

	t.Run("overrides existing template", func(t *testing.T) {
		store := messages.New()
		require.NoError(t, store.Set("min", ":name is too small"))
		assert.Equal(t, "age is too small", store.Format("age", "min", map[string]string{"min": "3"}))
	})

	t.Run("rejects empty rule name", func(t *testing.T) {
		store := messages.New()
		assert.ErrorIs(t, store.Set("", "x"), messages.ErrInvalidRuleName)
	})

	t.Run("set all is atomic", func(t *testing.T) {
		store := messages.New()
		err := store.SetAll(map[string]string{"alpha": "letters only", "": "bad"})
		require.ErrorIs(t, err, messages.ErrInvalidRuleName)
		assert.Equal(t, ":name can only contain leters", store.Template("alpha"))

		require.NoError(t, store.SetAll(map[string]string{"alpha": "letters only", "custom": "custom :name"}))
		assert.Equal(t, "letters only", store.Template("alpha"))
		assert.Equal(t, "custom x", store.Format("x", "custom", nil))
	})

	t.Run("default message is not formatted", func(t *testing.T) {
		store := messages.New()
		store.SetDefault("Bad :name")
		assert.Equal(t, "Bad :name", store.Format("email", "unknown", nil))
	})
}

func TestStoreOptions(t *testing.T) {
	t.Parallel()

	store := messages.New(
		messages.WithoutDefaults(),
		messages.WithTemplates(map[string]string{"min": "min :min", "": "ignored"}),
		messages.WithDefaultMessage("nope"),
	)

	assert.Equal(t, []string{"min"}, store.Rules())
	assert.Equal(t, "nope", store.Template("required"))
}

func TestStoreClone(t *testing.T) {
	t.Parallel()

	original := messages.New()
	clone := original.Clone()

	require.NoError(t, clone.Set("required", "needed"))
	clone.SetDefault("other")

	assert.Equal(t, ":name is required", original.Template("required"))
	assert.Equal(t, messages.DefaultMessage, original.Default())
	assert.Equal(t, "needed", clone.Template("required"))
}

func TestStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := messages.New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("custom", "value")
		}()
		go func() {
			defer wg.Done()
			_ = store.Format("field", "required", nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, "value", store.Template("custom"))
}
