package binder_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/binder"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	return req
}

func TestRecordJSON(t *testing.T) {
	t.Parallel()

	t.Run("object body", func(t *testing.T) {
		t.Parallel()
		rec, err := binder.Record(jsonRequest(`{"email":"a@b.co","age":21,"tags":["x","y"]}`))
		require.NoError(t, err)
		assert.Equal(t, validator.Record{
			"email": "a@b.co",
			"age":   float64(21),
			"tags":  []any{"x", "y"},
		}, rec)
	})

	t.Run("empty body is an error", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(" "))
		req.Header.Set("Content-Type", "application/json")
		_, err := binder.Record(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("rejects non-object bodies", func(t *testing.T) {
		t.Parallel()
		for _, body := range []string{`[1,2]`, `"text"`, `{"a":`, `{"a":1} {"b":2}`} {
			_, err := binder.Record(jsonRequest(body))
			assert.ErrorIs(t, err, binder.ErrFailedToParseJSON, "body %s", body)
		}
	})

	t.Run("body size limit", func(t *testing.T) {
		t.Parallel()
		_, err := binder.Record(jsonRequest(`{"name":"`+strings.Repeat("a", 64)+`"}`), binder.WithMaxBodySize(32))
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("query merged on request", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/?ref=mail&email=ignored", strings.NewReader(`{"email":"a@b.co"}`))
		req.Header.Set("Content-Type", "application/json")

		rec, err := binder.Record(req, binder.WithQuery())
		require.NoError(t, err)
		assert.Equal(t, "a@b.co", rec["email"])
		assert.Equal(t, "mail", rec["ref"])
	})
}

func TestRecordContentType(t *testing.T) {
	t.Parallel()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		_, err := binder.Record(req)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`<a/>`))
		req.Header.Set("Content-Type", "application/xml")
		_, err := binder.Record(req)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})
}

func TestRecordForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/?page=2", strings.NewReader("name=John&roles=admin&roles=user&ids[]=7"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec, err := binder.Record(req)
		require.NoError(t, err)
		assert.Equal(t, validator.Record{
			"name":  "John",
			"roles": []any{"admin", "user"},
			"ids":   []any{"7"},
		}, rec)
	})

	t.Run("multipart with files", func(t *testing.T) {
		t.Parallel()
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		require.NoError(t, w.WriteField("title", "Report"))
		part, err := w.CreateFormFile("document", "../../etc/passwd")
		require.NoError(t, err)
		_, err = part.Write([]byte("content"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/upload", &body)
		req.Header.Set("Content-Type", w.FormDataContentType())

		rec, err := binder.Record(req)
		require.NoError(t, err)
		assert.Equal(t, "Report", rec["title"])

		fh, ok := rec["document"].(*multipart.FileHeader)
		require.True(t, ok)
		assert.Equal(t, "passwd", fh.Filename)
	})

	t.Run("multipart without boundary", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("x"))
		req.Header.Set("Content-Type", "multipart/form-data")
		_, err := binder.Record(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})
}

func TestRecordQueryAndPath(t *testing.T) {
	t.Parallel()

	t.Run("query for requests without body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/search?q=go&tag=a&tag=b", nil)
		rec, err := binder.Record(req)
		require.NoError(t, err)
		assert.Equal(t, validator.Record{"q": "go", "tag": []any{"a", "b"}}, rec)
	})

	t.Run("invalid query", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/search", nil)
		req.URL.RawQuery = "q=%zz"
		_, err := binder.Record(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
	})

	t.Run("path params take precedence", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/users/42?id=7", nil)
		rec, err := binder.Record(req, binder.WithPathParams(func(*http.Request) map[string]string {
			return map[string]string{"id": "42"}
		}))
		require.NoError(t, err)
		assert.Equal(t, "42", rec["id"])
	})

	t.Run("cancelled request", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
		_, err := binder.Record(req)
		assert.ErrorIs(t, err, binder.ErrRequestCancelled)
	})
}
