package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type observed struct {
	method, route string
	status        int
}

type recordingObserver struct {
	calls []observed
}

func (o *recordingObserver) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	o.calls = append(o.calls, observed{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	obs := &recordingObserver{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(obs))
	r.HandleFunc("/reservations/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/reservations/42", nil))

	require.Len(t, obs.calls, 1)
	assert.Equal(t, observed{method: http.MethodDelete, route: "/reservations/{id}", status: http.StatusNoContent}, obs.calls[0])
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", seen)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2, false, logger.NewNop())
	h := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/reservations", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.2"), "limits are per client")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:4321"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	direct := NewRateLimiter(1, 1, false, logger.NewNop())
	assert.Equal(t, "10.0.0.9", direct.clientIP(req), "header ignored without a trusted proxy")

	proxied := NewRateLimiter(1, 1, true, logger.NewNop())
	assert.Equal(t, "203.0.113.7", proxied.clientIP(req))

	req.Header.Del("X-Forwarded-For")
	assert.Equal(t, "10.0.0.9", proxied.clientIP(req))
}

func TestRateLimiter_ForwardedHeaderDoesNotResetBucket(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, false, logger.NewNop())
	h := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/reservations", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, do("198.51.100.3"))
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(0.001, 1, false, logger.NewNop())
	rl.now = func() time.Time { return now }

	first := rl.limiter("10.0.0.1")
	require.True(t, first.Allow())
	rl.limiter("10.0.0.2")
	assert.Len(t, rl.limiters, 2)

	now = now.Add(limiterIdleTTL / 2)
	assert.Same(t, first, rl.limiter("10.0.0.1"), "active client keeps its bucket")

	now = now.Add(limiterIdleTTL/2 + time.Second)
	rl.limiter("10.0.0.3")
	assert.Len(t, rl.limiters, 2, "idle client evicted")
	assert.NotContains(t, rl.limiters, "10.0.0.2")
	assert.Contains(t, rl.limiters, "10.0.0.1")
}
