package store

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultHistorySize is how many recent passwords are kept when New is
// given a non-positive capacity.
const DefaultHistorySize = 5

// State is a point-in-time copy of the session state.
type State struct {
	// GeneratedCount is the number of passwords generated since startup.
	GeneratedCount int

	// History holds the most recent passwords, newest first.
	History []string

	// UpdatedAt is when the last password was recorded; zero if none yet.
	UpdatedAt time.Time
}

// Store is the thread-safe session state: a generation counter and a bounded
// history. All mutation goes through RecordGeneration, which performs the
// increment, insertion and trim under a single lock.
type Store struct {
	mu        sync.RWMutex
	count     int
	history   []string
	capacity  int
	updatedAt time.Time
	now       func() time.Time // injectable for deterministic tests
}

// New creates an empty Store that keeps at most capacity passwords.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &Store{
		history:  make([]string, 0, capacity+1),
		capacity: capacity,
		now:      time.Now,
	}
}

// RecordGeneration counts one more generated password and pushes pw to the
// front of the history, dropping the oldest entry once the history exceeds
// its capacity. It returns the new count and a copy of the new history.
func (s *Store) RecordGeneration(pw string) (int, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
	s.history = append(s.history, "")
	copy(s.history[1:], s.history)
	s.history[0] = pw
	if len(s.history) > s.capacity {
		s.history[len(s.history)-1] = ""
		s.history = s.history[:s.capacity]
	}
	s.updatedAt = s.now()

	slog.Debug("store: generation recorded", "count", s.count, "history_len", len(s.history))
	return s.count, s.historyLocked()
}

// Snapshot returns the current state without modifying it.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		GeneratedCount: s.count,
		History:        s.historyLocked(),
		UpdatedAt:      s.updatedAt,
	}
}

// Count returns the number of passwords generated so far.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// Capacity returns the maximum history length.
func (s *Store) Capacity() int {
	return s.capacity
}

// historyLocked returns a copy of the history. Callers must hold s.mu.
func (s *Store) historyLocked() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}
