package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/hrkit/pkg/logger"
)

// HealthCheckHandler returns a handler serving both probe flavors.
//
// With no dependency functions it is a liveness probe answering 200 "ALIVE".
// With dependency functions it is a readiness probe: all must succeed for
// 200 "READY", any failure answers 500 "NOT_READY".
func HealthCheckHandler(ctx context.Context, log *slog.Logger, funcs ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, body := http.StatusOK, "READY"
		if len(funcs) == 0 {
			body = "ALIVE"
		}

		for _, probe := range funcs {
			if err := probe(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				status, body = http.StatusInternalServerError, "NOT_READY"
				break
			}
		}

		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}
