package store

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used in tests and in deployments that
// run without Redis. Expiry is evaluated lazily on access.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]memoryItem
	lists map[string]memoryList
	now   func() time.Time
}

type memoryItem struct {
	value     string
	expiresAt time.Time // zero = no expiry
}

type memoryList struct {
	values    []string
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryItem),
		lists: make(map[string]memoryList),
		now:   time.Now,
	}
}

// SetClock overrides the store's clock. Tests use it to simulate TTL expiry
// without sleeping.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *MemoryStore) expired(at time.Time) bool {
	return !at.IsZero() && !s.now().Before(at)
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[key]
	if !ok {
		return "", false, nil
	}
	if s.expired(item.expiresAt) {
		delete(s.items, key)
		return "", false, nil
	}
	return item.value, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = memoryItem{value: value, expiresAt: s.expiry(ttl)}
	return nil
}

func (s *MemoryStore) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[key]
	if ok && !s.expired(item.expiresAt) {
		return false, nil
	}
	s.items[key] = memoryItem{value: value, expiresAt: s.expiry(ttl)}
	return true, nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

func (s *MemoryStore) ListPush(ctx context.Context, key, value string, maxLen int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[key]
	if !ok || s.expired(list.expiresAt) {
		list = memoryList{}
	}

	list.values = append([]string{value}, list.values...)
	if maxLen > 0 && int64(len(list.values)) > maxLen {
		list.values = list.values[:maxLen]
	}
	list.expiresAt = s.expiry(ttl)
	s.lists[key] = list
	return nil
}

func (s *MemoryStore) ListRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[key]
	if !ok || s.expired(list.expiresAt) {
		return nil, nil
	}

	n := int64(len(list.values))
	if start < 0 {
		start = n + start
	}
	if stop < 0 {
		stop = n + stop
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || start >= n {
		return nil, nil
	}

	out := make([]string, stop-start+1)
	copy(out, list.values[start:stop+1])
	return out, nil
}

func (s *MemoryStore) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(ttl)
}
