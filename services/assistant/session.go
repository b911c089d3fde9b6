package assistant

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"serenityspa-backend/models"
)

// DefaultTypingDelay mimics the concierge "typing" pause before a reply.
const DefaultTypingDelay = 1200 * time.Millisecond

const defaultIdleTTL = 30 * time.Minute

var ErrSessionNotFound = errors.New("chat session not found")

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry in a session's ordered log. Turns live in memory only and
// die with the session.
type Turn struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text,omitempty"`
	Reply     *Reply    `json:"reply,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Session struct {
	ID string

	// askMu serializes Ask calls so a message submitted while a reply is
	// pending queues behind the typing delay.
	askMu sync.Mutex

	mu       sync.Mutex
	turns    []Turn
	lastSeen time.Time
}

func (s *Session) appendTurn(t Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, t)
	s.lastSeen = time.Now()
}

// Turns returns a copy of the session's ordered turn log.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Manager owns all live chat sessions and evicts idle ones in the background.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	typingDelay time.Duration
	idleTTL     time.Duration

	stopOnce sync.Once
	stop     chan struct{}
}

func NewManager(typingDelay time.Duration) *Manager {
	if typingDelay < 0 {
		typingDelay = 0
	}
	m := &Manager{
		sessions:    make(map[string]*Session),
		typingDelay: typingDelay,
		idleTTL:     defaultIdleTTL,
	}
	m.stop = make(chan struct{})
	go m.janitor()
	return m
}

// Close stops the eviction goroutine.
func (m *Manager) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *Manager) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.evictIdle()
		}
	}
}

func (m *Manager) evictIdle() {
	cutoff := time.Now().Add(-m.idleTTL)
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}

// Create opens a new session seeded with a greeting turn.
func (m *Manager) Create() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		lastSeen: time.Now(),
	}
	s.turns = append(s.turns, Turn{
		ID:   uuid.NewString(),
		Role: RoleAssistant,
		Reply: &Reply{
			Intent: IntentGreeting,
			Text:   "Hello! Welcome to Serenity Spa. How can I help you today?",
		},
		Timestamp: time.Now(),
	})

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Ask appends the user's turn, waits out the typing delay, then classifies
// against the catalog snapshot and appends the assistant's turn. The delay is
// cancelable: on ctx cancellation the user turn stays but no reply is added.
func (m *Manager) Ask(ctx context.Context, s *Session, text string, catalog []models.Service) (Turn, error) {
	s.askMu.Lock()
	defer s.askMu.Unlock()

	s.appendTurn(Turn{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Text:      text,
		Timestamp: time.Now(),
	})

	if m.typingDelay > 0 {
		timer := time.NewTimer(m.typingDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Turn{}, ctx.Err()
		case <-timer.C:
		}
	}

	reply := Classify(text, catalog)
	turn := Turn{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Reply:     &reply,
		Timestamp: time.Now(),
	}
	s.appendTurn(turn)
	return turn, nil
}
