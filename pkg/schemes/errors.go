package schemes

import "errors"

var (
	ErrParsingCancelled  = errors.New("scheme parsing cancelled")
	ErrFailedToParseYAML = errors.New("failed to parse scheme content")
	ErrInvalidStructure  = errors.New("invalid scheme structure")
	ErrDuplicateScheme   = errors.New("duplicate scheme name")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading scheme file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read scheme file")
	ErrEmptyFile            = errors.New("scheme file is empty")

	// Directory operations
	ErrFailedToAccessDirectory   = errors.New("failed to access directory")
	ErrLoadingDirectoryCancelled = errors.New("loading from directory cancelled")
	ErrFailedToReadDirectory     = errors.New("failed to read directory")
	ErrNoSchemeFiles             = errors.New("no scheme files found")
)
