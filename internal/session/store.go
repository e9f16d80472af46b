// Package session keeps pipeline state between turns, keyed by session id.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/opsdesk/support-agent-pipeline/internal/coordinator"
)

// ErrNotFound is returned when no state exists for a session id.
var ErrNotFound = errors.New("session not found")

// Store persists per-session pipeline state between turns. Implementations
// must be safe for concurrent use; callers serialize turns within one session
// themselves.
type Store interface {
	Get(ctx context.Context, sessionID string) (*coordinator.State, error)
	Save(ctx context.Context, state *coordinator.State) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore is the default in-process store. Session state lives and dies
// with the process.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*coordinator.State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*coordinator.State)}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*coordinator.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return state, nil
}

func (s *MemoryStore) Save(ctx context.Context, state *coordinator.State) error {
	if state.SessionID == "" {
		return errors.New("session id cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.SessionID] = state
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Len reports how many sessions are held. Used by health reporting.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
