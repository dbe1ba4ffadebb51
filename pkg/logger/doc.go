// Package logger builds configured slog.Logger instances with consistent
// defaults across the service.
//
// The factory applies functional options on top of production-safe defaults
// (JSON output, info level) and wraps the final handler in a decorator that
// injects request-scoped attributes from context on every log call.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, "hrkit"),
//		logger.WithContextValue("request_id", requestIDKey),
//	)
//	logger.SetAsDefault(log)
//
// Attribute helpers keep key names consistent across the codebase:
//
//	log.InfoContext(ctx, "document stored",
//		logger.DocumentID(id),
//		logger.Duration(time.Since(start)),
//	)
package logger
