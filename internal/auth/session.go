package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrSessionNotFound = errors.New("session not found")
)

type State int

const (
	Locked State = iota
	Unlocked
)

func (s State) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

// Session is one admin panel's lock state. It starts locked.
type Session struct {
	mu    sync.Mutex
	gate  *Gate
	state State
}

func NewSession(gate *Gate) *Session {
	return &Session{gate: gate}
}

// Unlock moves to Unlocked when password matches the gate.
// A wrong password leaves the session locked. The password is not retained.
func (s *Session) Unlock(password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gate.Check(password) {
		s.state = Unlocked
		return true
	}
	return false
}

// Lock returns to Locked; the session must be unlocked again with the password
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Locked
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Sessions tracks unlocked admin sessions by token for the life of the process
type Sessions struct {
	mu       sync.RWMutex
	gate     *Gate
	sessions map[string]*Session
}

func NewSessions(gate *Gate) *Sessions {
	return &Sessions{
		gate:     gate,
		sessions: make(map[string]*Session),
	}
}

// Login unlocks a new session and returns its token
func (s *Sessions) Login(password string) (string, error) {
	session := NewSession(s.gate)
	if !session.Unlock(password) {
		return "", ErrInvalidPassword
	}

	token := uuid.New().String()

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return token, nil
}

// Get returns the session for token
func (s *Sessions) Get(token string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Logout locks the session and forgets its token
func (s *Sessions) Logout(token string) error {
	s.mu.Lock()
	session, ok := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	session.Lock()
	return nil
}
