package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kny8493/2025-todolist/internal/store"
)

// Session pairs one task store with the mutex that serializes access to
// it. The store itself is single-owner and lock-free; holding the mutex
// for the duration of a request is how the host honors that contract.
type Session struct {
	mu       sync.Mutex
	ID       string
	Store    *store.TaskStore
	lastSeen time.Time
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Manager owns the session id to session mapping. Each browser session
// gets its own task store; sessions idle for longer than the TTL are
// dropped by the sweeper.
type Manager struct {
	logger zerolog.Logger
	ttl    time.Duration

	mu       sync.Mutex
	sessions map[string]*Session

	done chan struct{}
	once sync.Once
}

func NewManager(logger zerolog.Logger, ttl time.Duration) *Manager {
	return &Manager{
		logger:   logger,
		ttl:      ttl,
		sessions: make(map[string]*Session),
		done:     make(chan struct{}),
	}
}

// Get returns the session with the given id, refreshing its idle
// deadline, or nil if the id is unknown or expired.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil
	}

	session.lastSeen = time.Now()
	return session
}

// Create registers a fresh session with an empty task store and a new
// unique id.
func (m *Manager) Create() *Session {
	session := &Session{
		ID:       uuid.NewString(),
		Store:    store.New(),
		lastSeen: time.Now(),
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	m.logger.Debug().
		Str("session_id", session.ID).
		Msg("created session")
	return session
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep runs until Close, dropping sessions idle for longer than the
// TTL. Meant to be started on its own goroutine.
func (m *Manager) Sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.expire(time.Now())
		}
	}
}

func (m *Manager) expire(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, session := range m.sessions {
		if now.Sub(session.lastSeen) > m.ttl {
			delete(m.sessions, id)
			m.logger.Debug().
				Str("session_id", id).
				Msg("expired idle session")
		}
	}
}

// Close stops the sweeper. Safe to call more than once.
func (m *Manager) Close() {
	m.once.Do(func() {
		close(m.done)
	})
}
