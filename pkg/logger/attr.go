package logger

import (
	"log/slog"
	"time"
)

// Attribute keys shared by every package of the module.
const (
	KeyError     = "error"
	KeyErrors    = "errors"
	KeyField     = "field"
	KeyRule      = "rule"
	KeyScheme    = "scheme"
	KeyPath      = "path"
	KeyCount     = "count"
	KeyRequestID = "request_id"
	KeyElapsed   = "elapsed"
	KeyComponent = "component"
)

// Error logs err under "error". A nil error gives an empty attribute, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(KeyError, err)
}

// Errors logs the messages of the non-nil errors as a list under "errors".
func Errors(errs ...error) slog.Attr {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	if len(msgs) == 0 {
		return slog.Attr{}
	}
	return slog.Any(KeyErrors, msgs)
}

func Field(name string) slog.Attr { return slog.String(KeyField, name) }

func Rule(name string) slog.Attr { return slog.String(KeyRule, name) }

// Scheme is empty for an empty name, so anonymous schemes log nothing.
func Scheme(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String(KeyScheme, name)
}

func Path(p string) slog.Attr { return slog.String(KeyPath, p) }

func Count(n int) slog.Attr { return slog.Int(KeyCount, n) }

// RequestID is empty for an empty id.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String(KeyRequestID, id)
}

// Elapsed logs the time since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration(KeyElapsed, time.Since(start))
}

func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }
