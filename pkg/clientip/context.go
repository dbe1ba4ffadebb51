package clientip

import "context"

type contextKey struct{}

// SetIPToContext stores the resolved client IP on the context.
func SetIPToContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// GetIPFromContext returns the client IP stored by Middleware, or "" when
// none was recorded.
func GetIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}
