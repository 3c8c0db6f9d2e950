package httpserver

import (
	"log/slog"
	"time"
)

// Option configures a Server. Options that receive an unusable value panic,
// so a misconfigured service fails at startup.
type Option func(*Server)

// WithAddr sets the listen address. ":0" picks a free port, see Addr.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty address")
	}
	return func(s *Server) { s.cfg.Addr = addr }
}

// WithTimeouts sets the read, write and idle timeouts. Zero values leave the
// current setting unchanged.
func WithTimeouts(read, write, idle time.Duration) Option {
	if read < 0 || write < 0 || idle < 0 {
		panic("httpserver: negative timeout")
	}
	return func(s *Server) {
		if read > 0 {
			s.cfg.ReadTimeout = read
		}
		if write > 0 {
			s.cfg.WriteTimeout = write
		}
		if idle > 0 {
			s.cfg.IdleTimeout = idle
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: shutdown timeout must be positive")
	}
	return func(s *Server) { s.cfg.ShutdownTimeout = d }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithOnStart registers a callback that receives the bound address once the
// server accepts connections.
func WithOnStart(fn func(addr string)) Option {
	if fn == nil {
		panic("httpserver: nil start callback")
	}
	return func(s *Server) { s.onStart = append(s.onStart, fn) }
}

// WithOnStop registers a callback that runs after shutdown.
func WithOnStop(fn func()) Option {
	if fn == nil {
		panic("httpserver: nil stop callback")
	}
	return func(s *Server) { s.onStop = append(s.onStop, fn) }
}
