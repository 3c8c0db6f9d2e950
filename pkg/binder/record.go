package binder

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// PathExtractor returns the path parameters of a request, for example the
// URL params of a chi route.
type PathExtractor func(r *http.Request) map[string]string

type options struct {
	maxBodySize int64
	maxMemory   int64
	path        PathExtractor
	query       bool
}

// Option configures Record.
type Option func(*options)

// WithMaxBodySize limits the size of JSON bodies.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodySize = n
		}
	}
}

// WithMaxMemory sets the memory used for parsing multipart forms.
func WithMaxMemory(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMemory = n
		}
	}
}

// WithPathParams adds path parameters to the record.
func WithPathParams(extractor PathExtractor) Option {
	return func(o *options) {
		o.path = extractor
	}
}

// WithQuery merges query parameters into records decoded from a body.
// Body values win over query values with the same key.
func WithQuery() Option {
	return func(o *options) {
		o.query = true
	}
}

// Record decodes the request into a record ready for validation.
func Record(r *http.Request, opts ...Option) (validator.Record, error) {
	o := options{
		maxBodySize: DefaultMaxJSONSize,
		maxMemory:   DefaultMaxMemory,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := r.Context().Err(); err != nil {
		return nil, errors.Join(ErrRequestCancelled, err)
	}

	rec := validator.Record{}
	withBody := hasBody(r)

	if withBody {
		if err := decodeBody(r, rec, o); err != nil {
			return nil, err
		}
	}

	if !withBody || o.query {
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseQuery, err)
		}
		mergeValues(rec, values, false)
	}

	if o.path != nil {
		for key, value := range o.path(r) {
			rec[key] = value
		}
	}

	return rec, nil
}

func hasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
		return false
	}
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}

func decodeBody(r *http.Request, rec validator.Record, o options) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json, application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
	}

	// Extract media type without parameters
	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	mediaType = strings.ToLower(mediaType)

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		return decodeJSON(r, rec, o.maxBodySize)
	case mediaType == "application/x-www-form-urlencoded":
		return decodeURLEncoded(r, rec)
	case mediaType == "multipart/form-data":
		return decodeMultipart(r, rec, contentType, o.maxMemory)
	}

	return fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
}

// mergeValues copies form or query values into rec. Keys ending in "[]" are
// always arrays.
func mergeValues(rec validator.Record, values map[string][]string, overwrite bool) {
	for key, vals := range values {
		forceArray := strings.HasSuffix(key, "[]")
		key = strings.TrimSuffix(key, "[]")
		if key == "" || len(vals) == 0 {
			continue
		}
		if _, exists := rec[key]; exists && !overwrite {
			continue
		}

		if len(vals) == 1 && !forceArray {
			rec[key] = vals[0]
			continue
		}
		list := make([]any, len(vals))
		for i, v := range vals {
			list[i] = v
		}
		rec[key] = list
	}
}
