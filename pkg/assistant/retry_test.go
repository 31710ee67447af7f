package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig() *RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.InitialDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	return cfg
}

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(Response{Response: "recovered"})
	}))
	defer server.Close()

	rc := NewRetryClient(NewClient(server.URL, "k"), fastRetryConfig())

	text, err := rc.Respond(context.Background(), Request{Message: "test"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestRetryGivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	rc := NewRetryClient(NewClient(server.URL, "k"), fastRetryConfig())

	_, err := rc.Respond(context.Background(), Request{Message: "test"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max retries exceeded")
	// Initial attempt plus MaxRetries.
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestRetryDoesNotRetryRateLimit(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	rc := NewRetryClient(NewClient(server.URL, "k"), fastRetryConfig())

	_, err := rc.Respond(context.Background(), Request{Message: "test"})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, MessageRateLimited, FallbackMessage(err))
}

func TestRetryDoesNotRetryBadRequest(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	rc := NewRetryClient(NewClient(server.URL, "k"), fastRetryConfig())

	_, err := rc.Respond(context.Background(), Request{Message: "test"})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRetryHonorsContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cfg := fastRetryConfig()
	cfg.InitialDelay = time.Second

	rc := NewRetryClient(NewClient(server.URL, "k"), cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := rc.Respond(ctx, Request{Message: "test"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type stubResponder struct {
	text  string
	err   error
	calls int
}

func (s *stubResponder) Respond(ctx context.Context, req Request) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestCircuitBreakerOpensAfterThreshold(t *testing.T) {
	stub := &stubResponder{err: &BackendError{Code: ErrorCodeUnavailable, Message: "down"}}
	cb := NewCircuitBreaker(stub, 2, time.Hour)

	_, err := cb.Respond(context.Background(), Request{Message: "a"})
	require.Error(t, err)
	_, err = cb.Respond(context.Background(), Request{Message: "b"})
	require.Error(t, err)

	// Threshold reached: further calls short-circuit without touching the
	// backend.
	_, err = cb.Respond(context.Background(), Request{Message: "c"})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 2, stub.calls)
}

func TestCircuitBreakerRecovers(t *testing.T) {
	stub := &stubResponder{err: &BackendError{Code: ErrorCodeUnavailable, Message: "down"}}
	cb := NewCircuitBreaker(stub, 1, 10*time.Millisecond)

	_, err := cb.Respond(context.Background(), Request{Message: "a"})
	require.Error(t, err)
	_, err = cb.Respond(context.Background(), Request{Message: "b"})
	assert.ErrorIs(t, err, ErrCircuitOpen)

	time.Sleep(15 * time.Millisecond)
	stub.err = nil
	stub.text = "back online"

	text, err := cb.Respond(context.Background(), Request{Message: "c"})
	require.NoError(t, err)
	assert.Equal(t, "back online", text)

	// Closed again after the half-open success.
	_, err = cb.Respond(context.Background(), Request{Message: "d"})
	assert.NoError(t, err)
}
