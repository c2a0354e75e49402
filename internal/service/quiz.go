package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vocabot/internal/domain"
	"vocabot/internal/repository"
	"vocabot/internal/state"

	"go.uber.org/zap"
)

// ErrNoWords is returned when a user asks for a word before uploading any
var ErrNoWords = errors.New("no words uploaded yet")

// Notifier delivers quizzes to users
type Notifier interface {
	Notify(ctx context.Context, userIDs []int64, words map[int64]domain.WordPair) error
}

// QuizService handles answers and on-demand quizzes
type QuizService struct {
	store    repository.Store
	quizzes  *state.Quizzes
	notifier Notifier
	logger   *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(store repository.Store, quizzes *state.Quizzes, notifier Notifier, logger *zap.Logger) *QuizService {
	return &QuizService{
		store:    store,
		quizzes:  quizzes,
		notifier: notifier,
		logger:   logger,
	}
}

// CheckAnswer reports whether input answers the user's pending quiz.
// The match ignores case and surrounding whitespace and accepts any part
// of the expected answer. A correct answer clears the quiz.
func (s *QuizService) CheckAnswer(userID int64, input string) bool {
	quiz, ok := s.quizzes.Get(userID)
	if !ok {
		return false
	}

	guess := strings.ToLower(strings.TrimSpace(input))
	if guess == "" || !strings.Contains(strings.ToLower(quiz.Answer), guess) {
		return false
	}

	s.quizzes.Remove(userID)
	return true
}

// NextWord replaces the pending quiz with a random word and sends it the
// same way scheduled quizzes are sent. Fails with ErrNoWords if the user has
// no words, in which case the pending quiz is kept.
func (s *QuizService) NextWord(ctx context.Context, userID int64) error {
	var (
		word  domain.WordPair
		found bool
	)
	err := repository.WithConn(ctx, s.store, func(conn repository.Conn) error {
		var err error
		word, found, err = conn.RandomWord(ctx, userID)
		return err
	})
	if err != nil {
		return fmt.Errorf("draw word: %w", err)
	}
	if !found {
		return ErrNoWords
	}

	s.quizzes.Remove(userID)
	return s.notifier.Notify(ctx, []int64{userID}, map[int64]domain.WordPair{userID: word})
}

// Reveal returns the pending quiz without clearing it
func (s *QuizService) Reveal(userID int64) (domain.PendingQuiz, bool) {
	return s.quizzes.Get(userID)
}
