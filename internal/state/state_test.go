package state

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"vocabot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestQuizzes_FirstWriteWins(t *testing.T) {
	q := NewQuizzes()
	first := domain.PendingQuiz{Prompt: "dog", Answer: "собака"}
	second := domain.PendingQuiz{Prompt: "cat", Answer: "кошка"}

	assert.True(t, q.SetIfAbsent(1, first))
	assert.False(t, q.SetIfAbsent(1, second))

	got, ok := q.Get(1)
	assert.True(t, ok)
	assert.Equal(t, first, got)

	q.Remove(1)
	assert.False(t, q.Contains(1))

	assert.True(t, q.SetIfAbsent(1, second))
	got, _ = q.Get(1)
	assert.Equal(t, second, got)
}

func TestQuizzes_RemoveMissing(t *testing.T) {
	q := NewQuizzes()

	q.Remove(42)

	_, ok := q.Get(42)
	assert.False(t, ok)
}

func TestQuizzes_ConcurrentSetIfAbsent(t *testing.T) {
	q := NewQuizzes()

	var wg sync.WaitGroup
	var stored int32
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			quiz := domain.PendingQuiz{Prompt: fmt.Sprintf("word %d", i)}
			if q.SetIfAbsent(7, quiz) {
				atomic.AddInt32(&stored, 1)
			}
		}(i)
	}
	wg.Wait()

	// exactly one writer wins
	assert.Equal(t, int32(1), stored)
	assert.True(t, q.Contains(7))
}

func TestModes(t *testing.T) {
	m := NewModes()

	_, ok := m.Get(1)
	assert.False(t, ok)

	m.Init(1, domain.ModeAwaitingAnswer)
	m.Init(1, domain.ModeIdle)
	mode, ok := m.Get(1)
	assert.True(t, ok)
	assert.Equal(t, domain.ModeAwaitingAnswer, mode)

	m.Set(1, domain.ModeAwaitingUpload)
	mode, _ = m.Get(1)
	assert.Equal(t, domain.ModeAwaitingUpload, mode)
}

func TestUsers(t *testing.T) {
	u := NewUsers()

	assert.False(t, u.Contains(5))

	u.Load([]int64{5, 6, 6})
	u.Add(7)

	assert.True(t, u.Contains(5))
	assert.True(t, u.Contains(7))
	assert.Equal(t, 3, u.Len())
}

func TestNew(t *testing.T) {
	s := New()

	assert.NotNil(t, s.Quizzes)
	assert.NotNil(t, s.Modes)
	assert.NotNil(t, s.Users)
}
