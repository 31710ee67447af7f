package server

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/svavnc/concierge/pkg/assistant"
	"github.com/svavnc/concierge/pkg/chat"
)

// SessionManager hands out chat sessions keyed by session id. Sessions share
// one store and one backend; the manager only tracks the in-flight guard each
// session carries.
type SessionManager struct {
	store   chat.Store
	backend assistant.Responder
	log     zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*chat.Session
}

// NewSessionManager creates an empty manager over the shared store and backend.
func NewSessionManager(store chat.Store, backend assistant.Responder, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		store:    store,
		backend:  backend,
		log:      log,
		sessions: make(map[string]*chat.Session),
	}
}

// Get returns the session for id, creating it on first use. An empty id
// creates a fresh session with a generated id.
func (m *SessionManager) Get(id string) *chat.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if s, ok := m.sessions[id]; ok {
			return s
		}
	}
	s := chat.NewSession(id, m.store, m.backend, chat.WithLogger(m.log))
	m.sessions[s.ID()] = s
	return s
}
