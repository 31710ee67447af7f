package assistant

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// RetryConfig represents retry configuration
type RetryConfig struct {
	MaxRetries     int
	InitialDelay   time.Duration
	MaxDelay       time.Duration
	BackoffFactor  float64
	JitterFactor   float64
	RetryableCodes map[ErrorCode]bool
}

// DefaultRetryConfig returns default retry configuration. Rate-limit
// responses are deliberately not retried: they map to their own canned
// user message instead of hammering the backend.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:    2,
		InitialDelay:  500 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
		JitterFactor:  0.1,
		RetryableCodes: map[ErrorCode]bool{
			ErrorCodeTimeout:     true,
			ErrorCodeUpstream:    true,
			ErrorCodeUnavailable: true,
		},
	}
}

// RetryClient wraps a client with retry logic
type RetryClient struct {
	*Client
	config *RetryConfig
}

// NewRetryClient creates a new retry client
func NewRetryClient(client *Client, retryConfig *RetryConfig) *RetryClient {
	if retryConfig == nil {
		retryConfig = DefaultRetryConfig()
	}

	return &RetryClient{
		Client: client,
		config: retryConfig,
	}
}

// Respond sends one exchange with retry on transient backend failures.
func (r *RetryClient) Respond(ctx context.Context, req Request) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := r.calculateDelay(attempt)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		text, err := r.Client.Respond(ctx, req)
		if err == nil {
			return text, nil
		}

		lastErr = err

		if !r.isRetryable(err) {
			return "", err
		}

		if attempt < r.config.MaxRetries {
			r.log.Warn().
				Int("attempt", attempt+1).
				Int("max", r.config.MaxRetries).
				Err(err).
				Msg("retrying backend request")
		}
	}

	return "", fmt.Errorf("max retries exceeded: %w", lastErr)
}

// calculateDelay calculates the delay for a given attempt
func (r *RetryClient) calculateDelay(attempt int) time.Duration {
	// Exponential backoff
	delay := float64(r.config.InitialDelay) * math.Pow(r.config.BackoffFactor, float64(attempt-1))

	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	// Apply jitter
	jitter := delay * r.config.JitterFactor * (2*rand.Float64() - 1)
	delay += jitter

	return time.Duration(delay)
}

// isRetryable checks if an error is retryable
func (r *RetryClient) isRetryable(err error) bool {
	var be *BackendError
	if !errors.As(err, &be) {
		return false
	}

	return r.config.RetryableCodes[be.Code]
}

// CircuitBreaker stops calling a failing backend for a cooldown period so
// every send does not wait out a full timeout while the backend is down.
type CircuitBreaker struct {
	backend          Responder
	failureThreshold int
	resetTimeout     time.Duration

	mu          sync.Mutex
	failures    int
	lastFailure time.Time
	state       CircuitState
}

// CircuitState represents the state of a circuit breaker
type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

// ErrCircuitOpen is returned while the breaker is cooling down.
var ErrCircuitOpen = errors.New("backend circuit breaker is open")

// NewCircuitBreaker creates a new circuit breaker around a backend.
func NewCircuitBreaker(backend Responder, failureThreshold int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		backend:          backend,
		failureThreshold: failureThreshold,
		resetTimeout:     resetTimeout,
		state:            CircuitClosed,
	}
}

// Respond forwards to the wrapped backend while the circuit allows it.
func (cb *CircuitBreaker) Respond(ctx context.Context, req Request) (string, error) {
	if err := cb.checkState(); err != nil {
		return "", err
	}

	text, err := cb.backend.Respond(ctx, req)
	cb.recordResult(err)

	return text, err
}

// checkState checks if the circuit allows requests
func (cb *CircuitBreaker) checkState() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == CircuitOpen {
		if time.Since(cb.lastFailure) > cb.resetTimeout {
			cb.state = CircuitHalfOpen
			cb.failures = 0
		} else {
			return ErrCircuitOpen
		}
	}
	return nil
}

// recordResult records the result of a request
func (cb *CircuitBreaker) recordResult(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err == nil {
		if cb.state == CircuitHalfOpen {
			cb.state = CircuitClosed
		}
		cb.failures = 0
		return
	}

	cb.failures++
	cb.lastFailure = time.Now()

	if cb.failures >= cb.failureThreshold {
		cb.state = CircuitOpen
	}
}
