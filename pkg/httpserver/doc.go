// Package httpserver wraps http.Server with graceful shutdown, functional
// options, and start/stop hooks.
//
// Run blocks until the context is canceled or the listener fails; shutdown
// drains in-flight requests within the configured timeout. Signal handling
// belongs to the caller, typically via signal.NotifyContext in main.
// HealthCheckHandler builds the /health endpoint from dependency ping
// functions.
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
