package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitEnforcesWindow(t *testing.T) {
	handler := RateLimit(2, time.Minute, ClientIPKey)(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third request: status %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on limited response")
	}
}

func TestRateLimitSeparatesClients(t *testing.T) {
	handler := RateLimit(1, time.Minute, ClientIPKey)(okHandler())

	first := httptest.NewRecorder()
	reqA := httptest.NewRequest(http.MethodGet, "/", nil)
	reqA.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(first, reqA)

	second := httptest.NewRecorder()
	reqB := httptest.NewRequest(http.MethodGet, "/", nil)
	reqB.RemoteAddr = "10.0.0.2:1234"
	handler.ServeHTTP(second, reqB)

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Errorf("distinct clients should not share a bucket: %d, %d", first.Code, second.Code)
	}
}

func TestRateLimitReturnsRetryMetadata(t *testing.T) {
	handler := RateLimit(1, time.Minute, ClientIPKey)(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-RateLimit-Limit") != "1" {
		t.Errorf("X-RateLimit-Limit = %q", rec.Header().Get("X-RateLimit-Limit"))
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("X-RateLimit-Remaining = %q", rec.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestUsernameOrIPKeyReadsBody(t *testing.T) {
	keyFn := UsernameOrIPKey("username")

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"Admin","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	if got := keyFn(req); got != "user:admin" {
		t.Errorf("key = %q, want user:admin", got)
	}

	// The body must remain readable for the handler behind the limiter.
	buf := make([]byte, 4)
	if _, err := req.Body.Read(buf); err != nil {
		t.Fatalf("body not replayable: %v", err)
	}
}

func TestUsernameOrIPKeyFallsBackToIP(t *testing.T) {
	keyFn := UsernameOrIPKey("username")

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.9:4321"
	if got := keyFn(req); got != "10.0.0.9" {
		t.Errorf("key = %q, want 10.0.0.9", got)
	}
}

func TestClientIPKeyPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := ClientIPKey(req); got != "203.0.113.7" {
		t.Errorf("key = %q, want 203.0.113.7", got)
	}
}
