package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"voiceform/models"

	"go.uber.org/zap"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. The mutex guards the map
// itself; it does not serialize read-modify-write cycles of callers.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a store whose entries live ttl after their last Put.
// A non-positive ttl disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) expired(e memoryEntry, at time.Time) bool {
	return !e.expiresAt.IsZero() && !at.Before(e.expiresAt)
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.FormSession, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok || s.expired(e, s.now()) {
		return nil, ErrSessionNotFound
	}
	// Sessions are stored encoded so callers never share a mutable copy.
	var fs models.FormSession
	if err := json.Unmarshal(e.data, &fs); err != nil {
		return nil, err
	}
	return &fs, nil
}

func (s *MemoryStore) Put(_ context.Context, fs *models.FormSession) error {
	data, err := json.Marshal(fs)
	if err != nil {
		return err
	}
	e := memoryEntry{data: data}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.entries[fs.SessionID] = e
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

// Len returns the number of entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep evicts expired entries and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	at := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.entries {
		if s.expired(e, at) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

// StartSweeper evicts expired entries every interval until ctx is done.
func (s *MemoryStore) StartSweeper(ctx context.Context, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 || s.ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					logger.Debug("evicted expired sessions", zap.Int("count", n))
				}
			}
		}
	}()
}
