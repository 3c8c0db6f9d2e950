package messages

import "errors"

// Loader errors wrap the underlying cause with errors.Join so callers can match
// either the sentinel or the original error.
var (
	ErrInvalidRuleName = errors.New("invalid rule name")

	// Parsing
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrInvalidCatalog       = errors.New("message catalog must map rule names to strings")

	// Files
	ErrLoadingFileCancelled = errors.New("loading message file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read message file")
	ErrFailedToParseFile    = errors.New("failed to parse message file")
	ErrEmptyFile            = errors.New("message file is empty")
	ErrUnsupportedFile      = errors.New("unsupported message file extension")

	// Redis
	ErrRedisLoadCancelled = errors.New("loading messages from redis cancelled")
	ErrFailedToLoadRedis  = errors.New("failed to load messages from redis")
	ErrRedisClientIsNil   = errors.New("redis client is nil")
	ErrRedisKeyIsEmpty    = errors.New("redis key is empty")
)
