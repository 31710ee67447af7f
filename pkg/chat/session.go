package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/svavnc/concierge/pkg/assistant"
	"github.com/svavnc/concierge/pkg/message"
	"github.com/svavnc/concierge/pkg/scope"
)

// WelcomeText is the synthetic first assistant turn of every session.
const WelcomeText = "Welcome to SoundVision Concierge. I'm your technical assistant. What system are you having trouble with?"

// welcomeMessageID marks the synthetic welcome turn so it can be excluded
// from the history sent to the backend.
const welcomeMessageID = "1"

// DefaultSuggestions are the quick-start chips offered before the customer
// has typed anything.
var DefaultSuggestions = []string{"Fix my Internet", "TV No Signal", "Music is not playing"}

// fallbackPhotoPrompt stands in for the message text when the customer
// sends a photo with no words.
const fallbackPhotoPrompt = "Check this photo for me."

var (
	// ErrEmptyMessage means there was neither text nor a photo to send.
	ErrEmptyMessage = errors.New("nothing to send")

	// ErrBusy means a send is already in flight for this session;
	// duplicate submission is rejected rather than queued.
	ErrBusy = errors.New("a send is already in progress")
)

// Session drives one customer's conversation.
type Session struct {
	id      string
	store   Store
	backend assistant.Responder
	log     zerolog.Logger

	mu       sync.Mutex
	inFlight bool
}

// SessionOption configures a session.
type SessionOption func(*Session)

// WithLogger sets the logger used for diagnostics.
func WithLogger(log zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.log = log
	}
}

// NewSession creates a session bound to a store and a backend. An empty id
// gets a fresh identifier, valid for the lifetime of the browsing session.
func NewSession(id string, store Store, backend assistant.Responder, opts ...SessionOption) *Session {
	if id == "" {
		id = uuid.NewString()
	}
	s := &Session{
		id:      id,
		store:   store,
		backend: backend,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// History returns the session's messages, seeding the welcome turn on
// first access.
func (s *Session) History(ctx context.Context) ([]message.ChatMessage, error) {
	msgs, err := s.store.History(ctx, s.id)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		welcome := message.ChatMessage{
			ID:   welcomeMessageID,
			Role: message.RoleAssistant,
			Text: WelcomeText,
		}
		if err := s.store.Append(ctx, s.id, welcome); err != nil {
			return nil, err
		}
		msgs = []message.ChatMessage{welcome}
	}
	return msgs, nil
}

// Suggestions returns the quick-start chips, shown only while the history
// is still just the welcome turn.
func (s *Session) Suggestions(ctx context.Context) ([]string, error) {
	msgs, err := s.History(ctx)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 1 {
		return DefaultSuggestions, nil
	}
	return nil, nil
}

// Send runs one exchange: scope check, backend dispatch, fallback mapping.
// It appends the user turn and the assistant turn to the history and
// returns the assistant turn. A backend failure never returns an error to
// the caller; it becomes a canned assistant reply flagged IsError.
func (s *Session) Send(ctx context.Context, text string, media *message.Media) (message.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" && media == nil {
		return message.ChatMessage{}, ErrEmptyMessage
	}

	if err := s.begin(); err != nil {
		return message.ChatMessage{}, err
	}
	defer s.end()

	history, err := s.History(ctx)
	if err != nil {
		return message.ChatMessage{}, err
	}

	userText := text
	if userText == "" {
		userText = fallbackPhotoPrompt
	}
	userMsg := message.ChatMessage{
		ID:    uuid.NewString(),
		Role:  message.RoleUser,
		Text:  userText,
		Media: media,
	}

	// Photo submissions always reach the backend: the scope keywords say
	// nothing about what is in the image.
	if media == nil {
		if result := scope.Validate(text); !result.IsValid {
			s.log.Info().Str("session", s.id).Str("reason", string(result.Reason)).Msg("query rejected by scope check")
			return s.appendExchange(ctx, userMsg, message.ChatMessage{
				ID:   uuid.NewString(),
				Role: message.RoleAssistant,
				Text: result.SuggestedResponse,
			})
		}
	}

	reply, err := s.backend.Respond(ctx, assistant.Request{
		SessionID: s.id,
		Message:   userText,
		History:   backendTurns(history),
		Media:     media,
	})

	assistantMsg := message.ChatMessage{
		ID:   uuid.NewString(),
		Role: message.RoleAssistant,
		Text: reply,
	}
	if err != nil {
		s.log.Error().Err(err).Str("session", s.id).Msg("backend call failed")
		assistantMsg.Text = assistant.FallbackMessage(err)
		assistantMsg.IsError = true
	}

	return s.appendExchange(ctx, userMsg, assistantMsg)
}

// Clear wipes the history and reseeds the welcome turn.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx, s.id); err != nil {
		return err
	}
	_, err := s.History(ctx)
	return err
}

func (s *Session) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrBusy
	}
	s.inFlight = true
	return nil
}

func (s *Session) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

func (s *Session) appendExchange(ctx context.Context, user, reply message.ChatMessage) (message.ChatMessage, error) {
	if err := s.store.Append(ctx, s.id, user); err != nil {
		return message.ChatMessage{}, err
	}
	if err := s.store.Append(ctx, s.id, reply); err != nil {
		return message.ChatMessage{}, err
	}
	return reply, nil
}

// backendTurns converts stored history into backend context, dropping the
// synthetic welcome turn.
func backendTurns(history []message.ChatMessage) []assistant.Turn {
	turns := make([]assistant.Turn, 0, len(history))
	for _, m := range history {
		if m.ID == welcomeMessageID {
			continue
		}
		turns = append(turns, assistant.Turn{Role: m.Role, Text: m.Text})
	}
	return turns
}
