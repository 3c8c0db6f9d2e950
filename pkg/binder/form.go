package binder

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

func decodeURLEncoded(r *http.Request, rec validator.Record) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
	}
	// PostForm holds body values only; the query is merged separately.
	mergeValues(rec, r.PostForm, true)
	return nil
}

func decodeMultipart(r *http.Request, rec validator.Record, contentType string, maxMemory int64) error {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: malformed content type with boundary", ErrFailedToParseForm)
	}
	if boundary, ok := params["boundary"]; !ok || !validBoundary(boundary) {
		return fmt.Errorf("%w: missing or invalid boundary in content type", ErrFailedToParseForm)
	}

	// Note: Request size limits should be handled at server/middleware level
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
	}
	if r.MultipartForm == nil {
		return nil
	}

	mergeValues(rec, r.MultipartForm.Value, true)

	for key, headers := range r.MultipartForm.File {
		forceArray := strings.HasSuffix(key, "[]")
		key = strings.TrimSuffix(key, "[]")
		if key == "" || len(headers) == 0 {
			continue
		}
		for _, fh := range headers {
			fh.Filename = sanitizeFilename(fh.Filename)
		}

		if len(headers) == 1 && !forceArray {
			rec[key] = headers[0]
			continue
		}
		list := make([]any, len(headers))
		for i, fh := range headers {
			list[i] = fh
		}
		rec[key] = list
	}

	return nil
}

// validBoundary follows RFC 2046: 1 to 70 characters from a restricted set.
func validBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > 70 {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return !strings.HasSuffix(boundary, " ")
}

// sanitizeFilename removes any path components and dangerous characters from a filename
// to prevent path traversal attacks and other security issues.
func sanitizeFilename(filename string) string {
	// Replace backslashes with forward slashes to normalize paths
	filename = strings.ReplaceAll(filename, "\\", "/")

	// Remove any directory components
	filename = filepath.Base(filename)

	// Remove null bytes
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}
