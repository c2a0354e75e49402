package state

import (
	"sync"

	"vocabot/internal/domain"
)

// Modes tracks what the next free-text message of each user means
type Modes struct {
	mu    sync.RWMutex
	modes map[int64]domain.Mode
}

func NewModes() *Modes {
	return &Modes{modes: make(map[int64]domain.Mode)}
}

func (m *Modes) Get(userID int64) (domain.Mode, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mode, ok := m.modes[userID]
	return mode, ok
}

func (m *Modes) Set(userID int64, mode domain.Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.modes[userID] = mode
}

// Init sets mode only if the user has none yet
func (m *Modes) Init(userID int64, mode domain.Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.modes[userID]; !ok {
		m.modes[userID] = mode
	}
}
