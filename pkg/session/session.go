// Package session holds the single authenticated user of an SDK instance.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peydey/sdk-go/pkg/domain/user"
)

// Session is a point-in-time view of the store's state. Callers check
// Authenticated; there is no error path.
type Session struct {
	ID            string       `json:"sessionId"`
	Authenticated bool         `json:"isAuthenticated"`
	User          *user.Record `json:"userData"`
}

// Store owns at most one authenticated user record. Access is serialized so
// a logout cannot race a concurrent query. Each SDK instance owns its own
// Store; there is no process-wide session.
type Store struct {
	mu      sync.Mutex
	current Session
}

// NewStore returns an empty, unauthenticated store.
func NewStore() *Store {
	return &Store{}
}

// Create starts a session for the given record and returns the new session
// id. Any prior session is overwritten, not merged.
func (s *Store) Create(r *user.Record) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Session{
		ID:            newSessionID(),
		Authenticated: true,
		User:          r,
	}
	return s.current.ID
}

// Get returns the current session state.
func (s *Store) Get() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Clear resets the store to unauthenticated, dropping the user record and
// session id. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Session{}
}

func newSessionID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
