package services

import (
	"sync"

	"railbook/internal/domain"

	"github.com/google/uuid"
)

// SessionStore keeps booking sessions in memory. Sessions carry only
// ephemeral view state and are lost on restart; that matches the single-user
// demo semantics of the flow.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]*Session{}}
}

func (s *SessionStore) Create() *Session {
	sess := &Session{
		ID:   uuid.NewString(),
		Step: StepSearch,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.NotFoundError{Resource: "booking session"}
	}
	return sess, nil
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
