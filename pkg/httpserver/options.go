package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures the server. Options validate their arguments at
// construction and panic on values that can never be right.
type Option func(*settings)

func mustPositive(what string, d time.Duration) {
	if d <= 0 {
		panic("httpserver: " + what + " must be positive")
	}
}

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty listen address")
	}
	return func(s *settings) { s.addr = addr }
}

// WithReadTimeout bounds reading the entire request.
func WithReadTimeout(d time.Duration) Option {
	mustPositive("read timeout", d)
	return func(s *settings) { s.readTimeout = d }
}

// WithWriteTimeout bounds writing the response, handler time included.
func WithWriteTimeout(d time.Duration) Option {
	mustPositive("write timeout", d)
	return func(s *settings) { s.writeTimeout = d }
}

// WithIdleTimeout bounds how long keep-alive connections may sit idle.
func WithIdleTimeout(d time.Duration) Option {
	mustPositive("idle timeout", d)
	return func(s *settings) { s.idleTimeout = d }
}

// WithShutdownTimeout sets the drain window for graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("shutdown timeout", d)
	return func(s *settings) { s.shutdownTimeout = d }
}

// WithServer uses the provided http.Server instance. Fields already set on
// it take precedence over package defaults.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic("httpserver: nil server")
	}
	return func(s *settings) { s.server = srv }
}

// WithLogger supplies a logger for lifecycle messages. Logs are discarded
// when nil.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithStartHook registers a callback to run as the server begins listening.
// Hooks accumulate and run in registration order.
func WithStartHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver: nil start hook")
	}
	return func(s *settings) {
		s.startHooks = append(s.startHooks, h)
	}
}

// WithStopHook registers a callback to run once the server has drained.
// Hooks accumulate and run in registration order.
func WithStopHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver: nil stop hook")
	}
	return func(s *settings) {
		s.stopHooks = append(s.stopHooks, h)
	}
}
