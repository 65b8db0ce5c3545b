package lockout

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	failures    int
	lockedUntil time.Time
}

// MemoryStore tracks failed logins per email and locks the account out
// after too many attempts. In-memory, so it only covers a single
// instance; multi-instance deployments need a shared store.
type MemoryStore struct {
	mu       sync.RWMutex
	data     map[string]*entry
	max      int
	cooldown time.Duration
}

// NewMemoryStore returns a lockout store with the given max attempts and
// cooldown. maxAttempts 0 disables lockout entirely.
func NewMemoryStore(maxAttempts int, cooldown time.Duration) *MemoryStore {
	if cooldown <= 0 {
		cooldown = 15 * time.Minute
	}
	return &MemoryStore{
		data:     make(map[string]*entry),
		max:      maxAttempts,
		cooldown: cooldown,
	}
}

// IsLocked reports whether the email is currently locked out and, if so,
// how many seconds remain.
func (s *MemoryStore) IsLocked(email string) (locked bool, retryAfterSeconds int) {
	if s.max <= 0 {
		return false, 0
	}
	s.mu.RLock()
	e, ok := s.data[key(email)]
	s.mu.RUnlock()
	if !ok || e == nil {
		return false, 0
	}
	if time.Now().Before(e.lockedUntil) {
		secs := int(time.Until(e.lockedUntil).Seconds())
		if secs < 1 {
			secs = 1
		}
		return true, secs
	}
	return false, 0
}

// RecordFailure counts a failed attempt, starting a lockout once the
// limit is reached. An expired lockout resets the counter first.
func (s *MemoryStore) RecordFailure(email string) {
	if s.max <= 0 {
		return
	}
	k := key(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.data[k]
	if e == nil {
		e = &entry{}
		s.data[k] = e
	}
	now := time.Now()
	if now.After(e.lockedUntil) && !e.lockedUntil.IsZero() {
		e.failures = 0
		e.lockedUntil = time.Time{}
	}
	e.failures++
	if e.failures >= s.max {
		e.lockedUntil = now.Add(s.cooldown)
	}
}

// RecordSuccess clears the failure history for the email.
func (s *MemoryStore) RecordSuccess(email string) {
	if s.max <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key(email))
}

func key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
