// Package clientip resolves the originating client address of an
// *http.Request behind one or more reverse proxies.
//
// GetIP checks CDN headers first, then walks the X-Forwarded-For chain,
// then X-Real-IP, and falls back to the TCP peer address. Invalid values
// are skipped rather than trusted. It never returns an error; an empty
// string means no valid address was found.
//
// Middleware stores the resolved address on the request context so
// downstream handlers and rate limit keys can fetch it with
// GetIPFromContext instead of repeating the resolution.
package clientip
