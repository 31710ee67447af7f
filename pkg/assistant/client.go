// Package assistant is the boundary to the AI chat backend. The backend has
// been swapped across vendors before, so the contract here is deliberately
// small: history plus the current message (and an optional photo) in,
// response text out. Every failure path resolves to a canned user-facing
// reply instead of surfacing raw errors.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/svavnc/concierge/pkg/message"
)

const (
	// DefaultTimeout bounds one backend round trip. The UI shows a loading
	// indicator during the wait; past this we fall back to a canned reply
	// rather than hang.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "concierge/1.0.0"
)

// Canned user-facing replies for the three failure classes. Each one offers
// the human support line so no failure strands the customer.
const (
	MessageNotConfigured = "Technical assistant initialization in progress. Please wait a moment or call our support line at 704-696-2792."

	MessageRateLimited = "We've reached our request limit for the moment. Please try again shortly or call our support line at 704-696-2792."

	MessageConnectionIssue = "I'm having a brief connection issue. Please try again in a moment or call our support line directly at 704-696-2792."
)

// Turn is one prior exchange sent as context. The synthetic welcome turn is
// excluded before the history reaches this type.
type Turn struct {
	Role message.Role `json:"role"`
	Text string       `json:"text"`
}

// Request is one troubleshooting exchange sent to the backend.
type Request struct {
	SessionID string         `json:"sessionId"`
	Message   string         `json:"message"`
	History   []Turn         `json:"history,omitempty"`
	Media     *message.Media `json:"media,omitempty"`
}

// Response is the backend's reply envelope.
type Response struct {
	Response string `json:"response"`
	Error    bool   `json:"error,omitempty"`
}

// Responder is the minimal surface the chat layer needs from the backend.
type Responder interface {
	Respond(ctx context.Context, req Request) (string, error)
}

// Client talks to the chat backend over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	userAgent  string
	log        zerolog.Logger
}

// Option is a function that configures the client
type Option func(*Client)

// NewClient creates a backend client. baseURL may be empty when the
// deployment is not configured yet; calls then fail with ErrNotConfigured.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets a custom timeout for backend calls
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets a custom user agent for requests
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// Respond sends one exchange to the backend and returns the assistant text.
func (c *Client) Respond(ctx context.Context, req Request) (string, error) {
	if c.baseURL == "" {
		return "", ErrNotConfigured
	}

	if req.Media != nil {
		// The upload arrives as a data URL; the backend wants bare base64.
		req.Media = &message.Media{
			MimeType: req.Media.MimeType,
			Data:     req.Media.Payload(),
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error().Err(err).Str("session", req.SessionID).Msg("backend request failed")
		return "", fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.parseError(resp, req.SessionID)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Response == "" {
		return "", &BackendError{Code: ErrorCodeUpstream, Message: "empty response text"}
	}

	return out.Response, nil
}

// parseError turns a non-2xx status into a BackendError.
func (c *Client) parseError(resp *http.Response, sessionID string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	msg := strings.TrimSpace(string(body))
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		msg = envelope.Error.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	be := &BackendError{Code: ErrorCode(resp.StatusCode), Message: msg}
	c.log.Error().Int("status", resp.StatusCode).Str("session", sessionID).Msg("backend returned error")
	return be
}
