package httpserver

import "errors"

var (
	// ErrStart is returned when the server cannot listen or stops serving
	// unexpectedly.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrAlreadyRunning is joined with ErrStart when Run is called twice.
	ErrAlreadyRunning = errors.New("HTTP server is already running")
	// ErrShutdown is returned when graceful shutdown fails.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)
