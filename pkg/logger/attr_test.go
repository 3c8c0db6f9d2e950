package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

func TestErrorAttrs(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, logger.KeyError, attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	attr = logger.Errors(errors.New("first"), nil, errors.New("second"))
	require.Equal(t, logger.KeyErrors, attr.Key)
	assert.Equal(t, []string{"first", "second"}, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value any
	}{
		{"field", logger.Field("email"), "field", "email"},
		{"rule", logger.Rule("between"), "rule", "between"},
		{"scheme", logger.Scheme("signup"), "scheme", "signup"},
		{"path", logger.Path("messages.yaml"), "path", "messages.yaml"},
		{"count", logger.Count(3), "count", int64(3)},
		{"request id", logger.RequestID("abc"), "request_id", "abc"},
		{"component", logger.Component("httpvalidator"), "component", "httpvalidator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.Any())
		})
	}
}

func TestElapsed(t *testing.T) {
	attr := logger.Elapsed(time.Now().Add(-time.Second))
	require.Equal(t, logger.KeyElapsed, attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), time.Second)
}

func TestEmptyAttrs(t *testing.T) {
	assert.True(t, logger.Scheme("").Equal(slog.Attr{}))
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}
