package session

import (
	"context"
	"sync"
	"time"

	"loanguard/models"
	"loanguard/utils"
)

type memoryEntry struct {
	state     models.AppState
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Entries expire ttl after their last
// write; a background sweeper drops them until Close is called.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time

	stop      chan struct{}
	closeOnce sync.Once
}

func NewMemoryStore(ttl, sweepEvery time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = utils.DefaultSessionTTL
	}
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	if sweepEvery > 0 {
		go s.sweepLoop(sweepEvery)
	}
	return s
}

func (s *MemoryStore) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}

// current must be called with mu held.
func (s *MemoryStore) current(id string) models.AppState {
	e, ok := s.entries[id]
	if !ok || !s.now().Before(e.expiresAt) {
		return models.NewAppState()
	}
	return e.state
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current(id), nil
}

func (s *MemoryStore) Update(_ context.Context, id string, fn UpdateFunc) (models.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(s.current(id))
	s.entries[id] = memoryEntry{state: next, expiresAt: s.now().Add(s.ttl)}
	return next, nil
}

func (s *MemoryStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close stops the sweeper. It is safe to call more than once.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() { close(s.stop) })
	return nil
}
