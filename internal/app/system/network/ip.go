// internal/app/system/network/ip.go
package network

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the address of the browser that sent r.
//
// Behind the reverse proxy the first X-Forwarded-For entry wins, then
// X-Real-IP. Otherwise RemoteAddr is used with its port removed.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
