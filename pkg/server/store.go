package server

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ajxudir/cascade/pkg/filtering"
)

// entry guards one session; a Session itself is not safe for concurrent use.
type entry struct {
	mu       sync.Mutex
	session  *filtering.Session
	lastUsed atomic.Int64
}

// Store keeps the live sessions of the service keyed by UUID.
//
// Sessions stay until they are deleted or, when the server runs with a
// session TTL, until Expire drops them for being idle.
type Store struct {
	engine   *filtering.Engine
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

// NewStore creates an empty store whose sessions evaluate against engine.
func NewStore(engine *filtering.Engine) *Store {
	return &Store{engine: engine, sessions: make(map[string]*entry), now: time.Now}
}

// Create starts a session with the fully unset state.
//
// Returns:
//   - string: The new session ID
func (s *Store) Create() string {
	id := uuid.NewString()
	e := &entry{session: filtering.NewSession(s.engine)}
	e.lastUsed.Store(s.now().UnixNano())
	s.mu.Lock()
	s.sessions[id] = e
	s.mu.Unlock()
	return id
}

// With runs fn while holding the lock of session id and marks the session
// as used.
//
// Returns:
//   - bool: false when no session has that ID; fn is not called
func (s *Store) With(id string, fn func(*filtering.Session)) bool {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastUsed.Store(s.now().UnixNano())
	fn(e.session)
	return true
}

// Delete removes a session and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Expire drops every session not used for longer than maxIdle.
//
// Returns:
//   - int: Number of sessions dropped
func (s *Store) Expire(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle).UnixNano()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.sessions {
		if e.lastUsed.Load() < cutoff {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
