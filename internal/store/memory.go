// internal/store/memory.go
//
// In-memory registry of solver sessions.
// Each session owns one *game.Game; the HTTP layer looks sessions up by ID.
//
// Characteristics:
//   - Concurrency-safe via RWMutex on the map, plus a per-session mutex
//     serializing access to the game itself (With).
//   - Sessions idle longer than the TTL are removed by Sweep.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle-solver/internal/game"
)

// ErrNotFound is returned by Get for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

// Session is one solving session.
type Session struct {
	ID      string
	Created time.Time

	mu      sync.Mutex
	touched time.Time
	game    *game.Game
}

// NewSession wraps g with a fresh random ID.
func NewSession(g *game.Game) *Session {
	now := time.Now()
	return &Session{ID: genID(), Created: now, touched: now, game: g}
}

// With runs fn with exclusive access to the session's game.
func (s *Session) With(fn func(g *game.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = time.Now()
	return fn(s.game)
}

// LastUsed reports when the session was last accessed through With.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched
}

// Store defines the persistence interface for sessions.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Sweep drops sessions idle since before cutoff and returns how many.
	Sweep(ctx context.Context, cutoff time.Time) int
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.LastUsed().Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
