package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svavnc/concierge/pkg/message"
)

func TestRespond(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sess-1", req.SessionID)
		assert.Equal(t, "my internet is down", req.Message)
		require.Len(t, req.History, 2)
		assert.Equal(t, message.RoleUser, req.History[0].Role)

		json.NewEncoder(w).Encode(Response{Response: "Let's power cycle the modem first."})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	text, err := client.Respond(context.Background(), Request{
		SessionID: "sess-1",
		Message:   "my internet is down",
		History: []Turn{
			{Role: message.RoleUser, Text: "hello"},
			{Role: message.RoleAssistant, Text: "hi, what can I help with?"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Let's power cycle the modem first.", text)
}

func TestRespondStripsDataURLPrefix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Media)
		assert.Equal(t, "image/png", req.Media.MimeType)
		assert.Equal(t, "iVBORw0KGgo=", req.Media.Data)

		json.NewEncoder(w).Encode(Response{Response: "That light is amber, which means trouble."})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	_, err := client.Respond(context.Background(), Request{
		SessionID: "sess-1",
		Message:   "Check this photo for me.",
		Media:     &message.Media{MimeType: "image/png", Data: "data:image/png;base64,iVBORw0KGgo="},
	})
	require.NoError(t, err)
}

func TestRespondNotConfigured(t *testing.T) {
	client := NewClient("", "")

	_, err := client.Respond(context.Background(), Request{Message: "hello there"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestRespondErrorStatuses(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    ErrorCode
		rateLimited bool
	}{
		{"rate limited", http.StatusTooManyRequests, `{"error":{"message":"Rate limit exceeded"}}`, ErrorCodeRateLimited, true},
		{"bad gateway", http.StatusBadGateway, `upstream vendor failed`, ErrorCodeUpstream, false},
		{"unavailable empty body", http.StatusServiceUnavailable, ``, ErrorCodeUnavailable, false},
		{"bad request", http.StatusBadRequest, `{"error":{"message":"missing message"}}`, ErrorCodeBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "k")
			_, err := client.Respond(context.Background(), Request{Message: "test"})
			require.Error(t, err)

			var be *BackendError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tt.wantCode, be.Code)
			assert.Equal(t, tt.rateLimited, be.IsRateLimited())
		})
	}
}

func TestRespondEmptyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{Response: ""})
	}))
	defer server.Close()

	client := NewClient(server.URL, "k")
	_, err := client.Respond(context.Background(), Request{Message: "test"})

	var be *BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, ErrorCodeUpstream, be.Code)
}

func TestRespondTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(Response{Response: "too late"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", WithTimeout(20*time.Millisecond))
	_, err := client.Respond(context.Background(), Request{Message: "test"})
	require.Error(t, err)

	// Transport failures stay generic; only HTTP statuses become
	// BackendErrors.
	var be *BackendError
	assert.False(t, errors.As(err, &be))
}

func TestClientOptions(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	client := NewClient("http://backend/", "k",
		WithHTTPClient(hc),
		WithUserAgent("sv-app/2.0"),
	)

	assert.Same(t, hc, client.httpClient)
	assert.Equal(t, "sv-app/2.0", client.userAgent)
	// Trailing slash is normalized away.
	assert.Equal(t, "http://backend", client.baseURL)
}

func TestFallbackMessage(t *testing.T) {
	assert.Equal(t, MessageNotConfigured, FallbackMessage(ErrNotConfigured))
	assert.Equal(t, MessageRateLimited, FallbackMessage(&BackendError{Code: ErrorCodeRateLimited}))
	assert.Equal(t, MessageConnectionIssue, FallbackMessage(&BackendError{Code: ErrorCodeUpstream}))
	assert.Equal(t, MessageConnectionIssue, FallbackMessage(errors.New("dial tcp: connection refused")))

	// Every fallback keeps the human support line reachable.
	for _, msg := range []string{MessageNotConfigured, MessageRateLimited, MessageConnectionIssue} {
		assert.Contains(t, msg, "704-696-2792")
	}
}
