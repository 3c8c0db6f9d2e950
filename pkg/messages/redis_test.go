package messages_test

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/messages"
)

type hashStub struct {
	data map[string]map[string]string
	err  error
	key  string
}

func (h *hashStub) HGetAll(_ context.Context, key string) *redis.MapStringStringCmd {
	h.key = key
	if h.err != nil {
		return redis.NewMapStringStringResult(nil, h.err)
	}
	values, ok := h.data[key]
	if !ok {
		values = map[string]string{}
	}
	return redis.NewMapStringStringResult(values, nil)
}

func TestLoadRedis(t *testing.T) {
	t.Parallel()

	t.Run("reads hash", func(t *testing.T) {
		stub := &hashStub{data: map[string]map[string]string{
			"tenant:1:messages": {"required": ":label is mandatory"},
		}}

		catalog, err := messages.LoadRedis(context.Background(), stub, "tenant:1:messages")
		require.NoError(t, err)
		assert.Equal(t, "tenant:1:messages", stub.key)

		store := messages.New()
		require.NoError(t, store.SetAll(catalog))
		assert.Equal(t, "First Name is mandatory", store.Format("first_name", "required", nil))
	})

	t.Run("missing key gives empty catalog", func(t *testing.T) {
		catalog, err := messages.LoadRedis(context.Background(), &hashStub{}, "none")
		require.NoError(t, err)
		assert.Empty(t, catalog)
	})

	t.Run("client error", func(t *testing.T) {
		boom := errors.New("connection refused")
		_, err := messages.LoadRedis(context.Background(), &hashStub{err: boom}, "k")
		assert.ErrorIs(t, err, messages.ErrFailedToLoadRedis)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("argument checks", func(t *testing.T) {
		_, err := messages.LoadRedis(context.Background(), nil, "k")
		assert.ErrorIs(t, err, messages.ErrRedisClientIsNil)

		_, err = messages.LoadRedis(context.Background(), &hashStub{}, "")
		assert.ErrorIs(t, err, messages.ErrRedisKeyIsEmpty)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := messages.LoadRedis(ctx, &hashStub{}, "k")
		assert.ErrorIs(t, err, messages.ErrRedisLoadCancelled)
	})
}
