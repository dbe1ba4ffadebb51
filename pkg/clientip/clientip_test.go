package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/hrkit/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	newRequest := func(remoteAddr string, headers map[string]string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = remoteAddr
		for k, v := range headers {
			r.Header.Set(k, v)
		}
		return r
	}

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr without proxy headers",
			remoteAddr: "203.0.113.7:51234",
			want:       "203.0.113.7",
		},
		{
			name:       "remote addr already a bare ip",
			remoteAddr: "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "cloudflare header wins over the chain",
			remoteAddr: "10.0.0.1:80",
			headers: map[string]string{
				"CF-Connecting-IP": "198.51.100.4",
				"X-Forwarded-For":  "192.0.2.9",
			},
			want: "198.51.100.4",
		},
		{
			name:       "true client ip is honored",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"True-Client-IP": "198.51.100.4"},
			want:       "198.51.100.4",
		},
		{
			name:       "first valid forwarded entry is used",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "192.0.2.9, 10.0.0.2, 10.0.0.3"},
			want:       "192.0.2.9",
		},
		{
			name:       "garbage forwarded entries are skipped",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip, , 192.0.2.9"},
			want:       "192.0.2.9",
		},
		{
			name:       "invalid cdn header falls through to the chain",
			remoteAddr: "10.0.0.1:80",
			headers: map[string]string{
				"CF-Connecting-IP": "spoofed\r\nvalue",
				"X-Forwarded-For":  "192.0.2.9",
			},
			want: "192.0.2.9",
		},
		{
			name:       "real ip header as last proxy resort",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Real-IP": "192.0.2.9"},
			want:       "192.0.2.9",
		},
		{
			name:       "ipv6 addresses are normalized",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "2001:0db8:0000:0000:0000:0000:0000:0001"},
			want:       "2001:db8::1",
		},
		{
			name:       "ipv6 remote addr keeps its host part",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "nothing valid anywhere",
			remoteAddr: "garbage",
			headers:    map[string]string{"X-Forwarded-For": "also-garbage"},
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, clientip.GetIP(newRequest(tt.remoteAddr, tt.headers)))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("stores the resolved ip on the context", func(t *testing.T) {
		t.Parallel()

		var seen string
		handler := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = clientip.GetIPFromContext(r.Context())
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "203.0.113.7:51234"
		handler.ServeHTTP(httptest.NewRecorder(), r)

		assert.Equal(t, "203.0.113.7", seen)
	})

	t.Run("context without ip reads as empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, clientip.GetIPFromContext(t.Context()))
	})
}
