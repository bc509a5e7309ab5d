package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

type window struct {
	count int
	reset time.Time
}

// RateLimit caps requests per client IP inside a fixed window. Generation is
// expensive upstream, so skygend applies this to /gen only.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	var mu sync.Mutex
	windows := make(map[string]*window)

	allow := func(ip string) bool {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()
		w, ok := windows[ip]
		if !ok || now.After(w.reset) {
			w = &window{reset: now.Add(per)}
			windows[ip] = w
		}
		if w.count >= limit {
			return false
		}
		w.count++
		return true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allow(clientIP(r)) {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			if ip := strings.TrimSpace(part); net.ParseIP(ip) != nil {
				return ip
			}
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
