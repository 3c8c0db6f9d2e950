package messages

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes a message catalog: a flat mapping of rule names to templates.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]string, error)

	// SupportsFileExtension reports whether the parser handles the extension.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

func toCatalog(data map[string]any) (map[string]string, error) {
	catalog := make(map[string]string, len(data))
	for rule, val := range data {
		text, ok := val.(string)
		if !ok || rule == "" {
			return nil, ErrInvalidCatalog
		}
		catalog[rule] = text
	}
	return catalog, nil
}
