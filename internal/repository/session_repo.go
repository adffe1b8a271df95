package repository

import (
	"sync"
	"time"
)

// Session is the logged-in user record handed back on login.
type Session struct {
	ID        string
	Username  string
	Email     string
	LoginTime time.Time
}

// SessionRepository is the opaque key-value store for current sessions.
// Logout deletes the record, which invalidates the matching token even
// before it expires.
type SessionRepository interface {
	Save(session *Session) error
	Get(id string) (*Session, error)
	Delete(id string) error
}

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{sessions: make(map[string]*Session)}
}

func (r *sessionRepository) Save(session *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *sessionRepository) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (r *sessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
