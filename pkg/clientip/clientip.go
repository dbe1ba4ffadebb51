package clientip

import (
	"net"
	"net/http"
	"strings"
)

// cdnHeaders carry a single client address set by the edge, checked before
// the proxy chain headers.
var cdnHeaders = []string{"CF-Connecting-IP", "True-Client-IP"}

// GetIP returns the client's IP address for the request, or "" when no
// valid address can be resolved.
func GetIP(r *http.Request) string {
	for _, header := range cdnHeaders {
		if ip := parseIP(r.Header.Get(header)); ip != "" {
			return ip
		}
	}

	// X-Forwarded-For holds the whole proxy chain, client first.
	for part := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
		if ip := parseIP(part); ip != "" {
			return ip
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr may already be a bare IP.
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an address, returning "" when invalid.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}

	return ip.String()
}
