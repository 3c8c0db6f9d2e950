package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/httpserver"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/schemes"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

const testSchemes = `
signup:
  email: required|email
  age: [number, "between:18,99"]
login:
  email: required
`

type output struct {
	HasError bool                `json:"hasError"`
	Errors   map[string][]string `json:"errors"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RULEKIT_REDIS_URL", "")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestValidateCommand(t *testing.T) {
	schemeFile := writeFile(t, "schemes.yaml", testSchemes)

	t.Run("valid record", func(t *testing.T) {
		data := writeFile(t, "user.json", `{"email":"bo@example.com","age":30}`)
		out, err := execute(t, "", "validate", "--scheme", schemeFile, "--name", "signup", "--data", data)
		require.NoError(t, err)

		var res output
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.False(t, res.HasError)
		assert.Empty(t, res.Errors)
	})

	t.Run("invalid record", func(t *testing.T) {
		data := writeFile(t, "user.yaml", "email: bad\nage: 12\n")
		out, err := execute(t, "", "validate", "--scheme", schemeFile, "--name", "signup", "--data", data)
		assert.ErrorIs(t, err, errInvalidRecord)

		var res output
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.True(t, res.HasError)
		assert.Equal(t, []string{"email must be correct mail"}, res.Errors["email"])
		assert.Equal(t, []string{"age must be between 18 and 99"}, res.Errors["age"])
	})

	t.Run("record from stdin", func(t *testing.T) {
		out, err := execute(t, `{"email":""}`, "validate", "--scheme", schemeFile, "--name", "login")
		assert.ErrorIs(t, err, errInvalidRecord)
		assert.Contains(t, out, "email is required")
	})

	t.Run("messages file", func(t *testing.T) {
		messagesFile := writeFile(t, "messages.yaml", "required: \":label cannot be blank\"\n")
		out, err := execute(t, "{}", "validate", "--scheme", schemeFile, "--name", "login", "--messages", messagesFile)
		assert.ErrorIs(t, err, errInvalidRecord)
		assert.Contains(t, out, "Email cannot be blank")
	})

	t.Run("scheme name required with several schemes", func(t *testing.T) {
		_, err := execute(t, "{}", "validate", "--scheme", schemeFile)
		require.Error(t, err)
		assert.False(t, errors.Is(err, errInvalidRecord))
		assert.Contains(t, err.Error(), "--name is required")
	})

	t.Run("single scheme picked by default", func(t *testing.T) {
		single := writeFile(t, "login.yaml", "login:\n  email: required\n")
		_, err := execute(t, `{"email":"a"}`, "validate", "--scheme", single)
		assert.NoError(t, err)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := execute(t, "{}", "validate", "--scheme", schemeFile, "--name", "missing")
		assert.ErrorContains(t, err, `unknown scheme "missing"`)
	})

	t.Run("malformed record", func(t *testing.T) {
		data := writeFile(t, "user.json", `{"email":`)
		_, err := execute(t, "", "validate", "--scheme", schemeFile, "--name", "login", "--data", data)
		assert.ErrorContains(t, err, "decode record")
	})

	t.Run("missing scheme flag", func(t *testing.T) {
		_, err := execute(t, "{}", "validate")
		assert.Error(t, err)
	})
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, "", "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "email")
	assert.Contains(t, out, ":name must be correct mail")
	assert.Contains(t, out, "between")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "", "--log-level", "loud", "rules")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestEnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", "RULEKIT_RULE_SEPARATOR=;\n")
	t.Cleanup(func() { os.Unsetenv("RULEKIT_RULE_SEPARATOR") })

	schemeFile := writeFile(t, "schemes.yaml", "s:\n  email: required;email\n")
	out, err := execute(t, `{"email":"bad"}`, "--env-file", envFile, "validate", "--scheme", schemeFile)
	assert.ErrorIs(t, err, errInvalidRecord)
	assert.Contains(t, out, "email must be correct mail")
}

func TestHandler(t *testing.T) {
	set, err := schemes.Parse(context.Background(), []byte(testSchemes))
	require.NoError(t, err)

	a := &app{log: logger.Discard()}
	failing := func(context.Context) error { return errors.New("down") }

	t.Run("routes", func(t *testing.T) {
		h := newHandler(a, validator.New(), set)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())

		rec = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/validate/signup", strings.NewReader(`{"email":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var res output
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, []string{"email must be correct mail"}, res.Errors["email"])
	})

	t.Run("readiness", func(t *testing.T) {
		h := newHandler(a, validator.New(), set, failing)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		h = newHandler(a, validator.New(), set, httpserver.Check(func(context.Context) error { return nil }))
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, "READY", rec.Body.String())
	})
}
