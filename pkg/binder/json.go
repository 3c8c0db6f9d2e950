package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

func decodeJSON(r *http.Request, rec validator.Record, maxSize int64) error {
	// Read the entire body with size limit
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSize+1))
	if err != nil {
		return fmt.Errorf("%w: failed to read request body: %w", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > maxSize {
		return fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, maxSize)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))

	var obj map[string]any
	if err := decoder.Decode(&obj); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}

	// Ensure entire body was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}

	for key, value := range obj {
		rec[key] = value
	}
	return nil
}
