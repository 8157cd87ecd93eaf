package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Common proxy headers. None of them is trusted unless passed to FromRequest
// or Middleware: any client can send them.
const (
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRealIP         = "X-Real-IP"
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderDOConnectingIP = "DO-Connecting-IP"
)

// FromRequest returns the client IP of r.
//
// trustedHeaders are checked in order; the first one holding a valid IP wins.
// Comma-separated values (X-Forwarded-For) yield their first valid IP.
// Without a match the host of r.RemoteAddr is used. The result is "" when
// nothing parses as an IP.
func FromRequest(r *http.Request, trustedHeaders ...string) string {
	for _, h := range trustedHeaders {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP returns the normalized form of s, or "" if s is not an IP.
func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
