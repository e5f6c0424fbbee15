package session

import (
	"sync"
	"time"

	"restroom-finder/internal/types"
)

// DefaultTTL bounds how long a user's last shared location is remembered.
const DefaultTTL = 30 * time.Minute

type entry struct {
	point     types.Point
	expiresAt time.Time
}

// Store remembers each user's last shared location for a bounded time. It is
// safe for concurrent use. Expired entries are dropped on read and swept on
// write, so the map never grows past the set of users active within one TTL.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// SetLocation records the user's latest location, refreshing its TTL.
func (s *Store) SetLocation(userID string, p types.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.entries[userID] = entry{
		point:     p,
		expiresAt: s.now().Add(s.ttl),
	}
}

// LastLocation returns the user's last known location, if it has not expired.
func (s *Store) LastLocation(userID string) (types.Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		return types.Point{}, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, userID)
		return types.Point{}, false
	}
	return e.point, true
}

// Len reports the number of live entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	return len(s.entries)
}

func (s *Store) sweepLocked() {
	now := s.now()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
