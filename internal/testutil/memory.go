package testutil

import (
	"context"
	"math/rand"
	"sort"
	"sync"

	"vocabot/internal/domain"
	"vocabot/internal/repository"
)

// MemoryStore is an in-memory repository.Store honoring the handle lifecycle
type MemoryStore struct {
	mu       sync.Mutex
	users    map[int64]struct{}
	words    map[int64][]domain.WordPair
	schedule map[int64]map[domain.TimeOfDay]struct{}
	failures map[int64]error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[int64]struct{}),
		words:    make(map[int64][]domain.WordPair),
		schedule: make(map[int64]map[domain.TimeOfDay]struct{}),
		failures: make(map[int64]error),
	}
}

// FailFor makes every per-user operation for userID return err. A nil err clears it.
func (s *MemoryStore) FailFor(userID int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		delete(s.failures, userID)
		return
	}
	s.failures[userID] = err
}

func (s *MemoryStore) Conn() repository.Conn {
	return &memoryConn{store: s}
}

type memoryConn struct {
	store     *MemoryStore
	connected bool
}

func (c *memoryConn) Connect(_ context.Context) error {
	if c.connected {
		return repository.ErrAlreadyConnected
	}
	c.connected = true
	return nil
}

func (c *memoryConn) Disconnect() error {
	if !c.connected {
		return repository.ErrAlreadyDisconnected
	}
	c.connected = false
	return nil
}

// begin locks the store for a single operation on userID
func (c *memoryConn) begin(userID int64) (func(), error) {
	if !c.connected {
		return nil, repository.ErrStorageUnavailable
	}
	c.store.mu.Lock()
	if err, ok := c.store.failures[userID]; ok {
		c.store.mu.Unlock()
		return nil, err
	}
	return c.store.mu.Unlock, nil
}

func (c *memoryConn) Register(_ context.Context, userID int64) (bool, error) {
	unlock, err := c.begin(userID)
	if err != nil {
		return false, err
	}
	defer unlock()

	if _, ok := c.store.users[userID]; ok {
		return false, nil
	}
	c.store.users[userID] = struct{}{}
	return true, nil
}

func (c *memoryConn) IsRegistered(_ context.Context, userID int64) (bool, error) {
	unlock, err := c.begin(userID)
	if err != nil {
		return false, err
	}
	defer unlock()

	_, ok := c.store.users[userID]
	return ok, nil
}

func (c *memoryConn) ListUserIDs(_ context.Context) ([]int64, error) {
	if !c.connected {
		return nil, repository.ErrStorageUnavailable
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	ids := make([]int64, 0, len(c.store.users))
	for id := range c.store.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (c *memoryConn) AddWords(_ context.Context, userID int64, words []domain.WordPair) error {
	unlock, err := c.begin(userID)
	if err != nil {
		return err
	}
	defer unlock()

	c.store.words[userID] = append(c.store.words[userID], words...)
	return nil
}

func (c *memoryConn) ListWords(_ context.Context, userID int64) ([]domain.WordPair, error) {
	unlock, err := c.begin(userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return append([]domain.WordPair(nil), c.store.words[userID]...), nil
}

func (c *memoryConn) RandomWord(_ context.Context, userID int64) (domain.WordPair, bool, error) {
	unlock, err := c.begin(userID)
	if err != nil {
		return domain.WordPair{}, false, err
	}
	defer unlock()

	words := c.store.words[userID]
	if len(words) == 0 {
		return domain.WordPair{}, false, nil
	}
	return words[rand.Intn(len(words))], true, nil
}

func (c *memoryConn) AddScheduleEntry(_ context.Context, userID int64, at domain.TimeOfDay) error {
	unlock, err := c.begin(userID)
	if err != nil {
		return err
	}
	defer unlock()

	if c.store.schedule[userID] == nil {
		c.store.schedule[userID] = make(map[domain.TimeOfDay]struct{})
	}
	c.store.schedule[userID][at] = struct{}{}
	return nil
}

func (c *memoryConn) DeleteScheduleEntry(_ context.Context, userID int64, at domain.TimeOfDay) (int64, error) {
	unlock, err := c.begin(userID)
	if err != nil {
		return 0, err
	}
	defer unlock()

	if _, ok := c.store.schedule[userID][at]; !ok {
		return 0, nil
	}
	delete(c.store.schedule[userID], at)
	return 1, nil
}

func (c *memoryConn) ListSchedule(_ context.Context, userID int64) ([]domain.TimeOfDay, error) {
	unlock, err := c.begin(userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return c.store.sortedSchedule(userID), nil
}

func (c *memoryConn) NextScheduleEntryAfter(_ context.Context, userID int64, at domain.TimeOfDay) (domain.TimeOfDay, bool, error) {
	unlock, err := c.begin(userID)
	if err != nil {
		return 0, false, err
	}
	defer unlock()

	for _, t := range c.store.sortedSchedule(userID) {
		if t > at {
			return t, true, nil
		}
	}
	return 0, false, nil
}

func (c *memoryConn) Stats(_ context.Context) (domain.Stats, error) {
	if !c.connected {
		return domain.Stats{}, repository.ErrStorageUnavailable
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	stats := domain.Stats{Users: len(c.store.users)}
	for _, words := range c.store.words {
		stats.Words += len(words)
	}
	for _, entries := range c.store.schedule {
		stats.ScheduleEntries += len(entries)
	}
	return stats, nil
}

func (s *MemoryStore) sortedSchedule(userID int64) []domain.TimeOfDay {
	times := make([]domain.TimeOfDay, 0, len(s.schedule[userID]))
	for t := range s.schedule[userID] {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	return times
}
