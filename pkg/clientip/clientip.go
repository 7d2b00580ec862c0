package clientip

import (
	"net"
	"net/http"
	"strings"
)

// DefaultHeaders are checked in order before falling back to RemoteAddr.
var DefaultHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// FromRequest resolves the client address using DefaultHeaders.
func FromRequest(r *http.Request) string {
	return resolve(r, DefaultHeaders)
}

// resolve returns the first valid IP from headers, then from RemoteAddr.
// X-Forwarded-For may hold a list; its first valid entry wins.
func resolve(r *http.Request, headers []string) string {
	for _, h := range headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for candidate := range strings.SplitSeq(v, ",") {
			if ip := normalize(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
