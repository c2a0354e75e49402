package state

import "sync"

// Users caches ids of registered users so the registration gate
// never touches the store.
type Users struct {
	mu  sync.RWMutex
	ids map[int64]struct{}
}

func NewUsers() *Users {
	return &Users{ids: make(map[int64]struct{})}
}

func (u *Users) Add(userID int64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.ids[userID] = struct{}{}
}

// Load adds all ids to the cache
func (u *Users) Load(ids []int64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, id := range ids {
		u.ids[id] = struct{}{}
	}
}

func (u *Users) Contains(userID int64) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()

	_, ok := u.ids[userID]
	return ok
}

func (u *Users) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return len(u.ids)
}
