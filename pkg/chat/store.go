// Package chat orchestrates the support conversation: it owns the history
// store, seeds the welcome turn, runs the scope check, dispatches to the AI
// backend, and converts every failure into a canned assistant reply.
package chat

import (
	"context"
	"sync"

	"github.com/svavnc/concierge/pkg/message"
)

// Store persists per-session chat history. History is append-only; the
// only other mutation is a full clear.
type Store interface {
	// History returns the session's messages in append order.
	History(ctx context.Context, sessionID string) ([]message.ChatMessage, error)

	// Append adds one message to the end of the session's history.
	Append(ctx context.Context, sessionID string, msg message.ChatMessage) error

	// Clear removes the session's entire history.
	Clear(ctx context.Context, sessionID string) error
}

// MemoryStore is an in-memory Store for tests and single-process use.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]message.ChatMessage
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]message.ChatMessage)}
}

// History implements Store.
func (s *MemoryStore) History(ctx context.Context, sessionID string) ([]message.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.sessions[sessionID]
	out := make([]message.ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

// Append implements Store.
func (s *MemoryStore) Append(ctx context.Context, sessionID string, msg message.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = append(s.sessions[sessionID], msg)
	return nil
}

// Clear implements Store.
func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
