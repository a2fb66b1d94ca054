package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimitEnforcesLimitPerClient(t *testing.T) {
	handler := RateLimit(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := do("198.51.100.10:1234"); got != http.StatusOK {
		t.Fatalf("first request: %d", got)
	}
	if got := do("198.51.100.10:1234"); got != http.StatusOK {
		t.Fatalf("second request: %d", got)
	}
	if got := do("198.51.100.10:1234"); got != http.StatusTooManyRequests {
		t.Fatalf("third request: %d, want 429", got)
	}
	// A different client is unaffected.
	if got := do("198.51.100.20:1234"); got != http.StatusOK {
		t.Fatalf("other client: %d", got)
	}
}

func TestRateLimitWindowResets(t *testing.T) {
	handler := RateLimit(1, 10*time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.RemoteAddr = "198.51.100.10:1234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing")
	}

	time.Sleep(20 * time.Millisecond)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("request after window reset: %d", rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		remoteAddr string
		want       string
	}{
		{"single forwarded ip", "203.0.113.1", "198.51.100.10:1234", "203.0.113.1"},
		{"first of multiple", " 203.0.113.1 , 198.51.100.2 ", "198.51.100.10:1234", "203.0.113.1"},
		{"invalid forwarded falls back", "invalid", "198.51.100.10:1234", "198.51.100.10"},
		{"no header uses remote host", "", "198.51.100.10:1234", "198.51.100.10"},
		{"ipv6 forwarded", "2001:db8::1", net.JoinHostPort("2001:db8::2", "443"), "2001:db8::1"},
		{"ipv6 remote fallback", "invalid", net.JoinHostPort("2001:db8::2", "443"), "2001:db8::2"},
		{"remote without port", "invalid", "203.0.113.1", "203.0.113.1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.header != "" {
				req.Header.Set("X-Forwarded-For", tc.header)
			}
			if got := clientIP(req); got != tc.want {
				t.Fatalf("clientIP() = %q, want %q", got, tc.want)
			}
		})
	}
}
