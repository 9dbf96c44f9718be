// Package session holds per-user bookmark state. Nothing here is persisted.
package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/google/uuid"

	"github.com/NiceTry3675/news-summarizer/internal/metrics"
	"github.com/NiceTry3675/news-summarizer/internal/model"
)

var (
	// ErrNotFound is returned for an unknown or ended session
	ErrNotFound = errors.New("session not found")
	// ErrIndexOutOfRange is returned when removing a bookmark that does not exist
	ErrIndexOutOfRange = errors.New("bookmark index out of range")
)

// Session owns one user's bookmark list
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	bookmarks  []model.Bookmark
	lastActive time.Time
	now        func() time.Time
}

// Add appends a bookmark and returns the new count
func (s *Session) Add(b model.Bookmark) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.bookmarks = append(s.bookmarks, b)
	return len(s.bookmarks)
}

// Remove deletes the bookmark at index
func (s *Session) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if index < 0 || index >= len(s.bookmarks) {
		return ErrIndexOutOfRange
	}
	s.bookmarks = append(s.bookmarks[:index], s.bookmarks[index+1:]...)
	return nil
}

// List returns a copy of the bookmarks in insertion order
func (s *Session) List() []model.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	out := make([]model.Bookmark, len(s.bookmarks))
	copy(out, s.bookmarks)
	return out
}

// Clear drops every bookmark
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.bookmarks = nil
}

func (s *Session) touch() {
	s.lastActive = s.now()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Store tracks open sessions
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create starts a new empty session
func (st *Store) Create() *Session {
	now := st.now()
	s := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		lastActive: now,
		now:        st.now,
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	count := len(st.sessions)
	st.mu.Unlock()

	metrics.ActiveSessions.Set(float64(count))
	return s
}

// Get returns an open session
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// End clears and forgets a session
func (st *Store) End(id string) error {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	count := len(st.sessions)
	st.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	s.Clear()
	metrics.ActiveSessions.Set(float64(count))
	return nil
}

// Len returns the number of open sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep ends sessions idle for longer than maxIdle and returns how many were ended
func (st *Store) Sweep(ctx context.Context, maxIdle time.Duration) int {
	cutoff := st.now().Add(-maxIdle)

	st.mu.Lock()
	var expired []*Session
	for id, s := range st.sessions {
		if s.idleSince().Before(cutoff) {
			expired = append(expired, s)
			delete(st.sessions, id)
		}
	}
	count := len(st.sessions)
	st.mu.Unlock()

	for _, s := range expired {
		s.Clear()
	}
	metrics.ActiveSessions.Set(float64(count))

	if len(expired) > 0 {
		logger := log.New(funcframework.LogWriter(ctx), "", 0)
		logger.Printf("sessions_swept ended=%d remaining=%d", len(expired), count)
	}
	return len(expired)
}
