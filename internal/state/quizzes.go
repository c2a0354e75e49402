package state

import (
	"sync"

	"vocabot/internal/domain"
)

// Quizzes holds at most one pending quiz per user
type Quizzes struct {
	mu      sync.RWMutex
	pending map[int64]domain.PendingQuiz
}

func NewQuizzes() *Quizzes {
	return &Quizzes{pending: make(map[int64]domain.PendingQuiz)}
}

// Get returns the pending quiz of the user
func (q *Quizzes) Get(userID int64) (domain.PendingQuiz, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	quiz, ok := q.pending[userID]
	return quiz, ok
}

// SetIfAbsent stores quiz unless the user already has one.
// Returns true when quiz was stored.
func (q *Quizzes) SetIfAbsent(userID int64, quiz domain.PendingQuiz) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.pending[userID]; ok {
		return false
	}
	q.pending[userID] = quiz
	return true
}

// Remove clears the pending quiz of the user, if any
func (q *Quizzes) Remove(userID int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	delete(q.pending, userID)
}

func (q *Quizzes) Contains(userID int64) bool {
	_, ok := q.Get(userID)
	return ok
}
