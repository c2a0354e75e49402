// Package notifier delivers quiz prompts to users.
package notifier

import (
	"context"
	"fmt"

	"vocabot/internal/domain"
	"vocabot/internal/state"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Sender delivers a text message to a user
type Sender interface {
	Send(ctx context.Context, userID int64, text string) error
}

// Notifier buffers quizzes with first-write-wins semantics and sends
// every pending prompt to the requested users.
type Notifier struct {
	sender  Sender
	quizzes *state.Quizzes
	limiter *rate.Limiter
	logger  *zap.Logger
}

// New creates a notifier sending at most perSecond messages per second
func New(sender Sender, quizzes *state.Quizzes, perSecond float64, logger *zap.Logger) *Notifier {
	return &Notifier{
		sender:  sender,
		quizzes: quizzes,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		logger:  logger,
	}
}

// Prompt is the message text asking for the translation of a quiz
func Prompt(quiz domain.PendingQuiz) string {
	return fmt.Sprintf("Translation for: %s", quiz.Prompt)
}

// Notify stores a quiz for every entry of words unless the user already has
// one, then asks every user in userIDs their pending quiz. Users without a
// pending quiz are skipped. Delivery errors are logged and never stop the batch.
func (n *Notifier) Notify(ctx context.Context, userIDs []int64, words map[int64]domain.WordPair) error {
	for userID, word := range words {
		if !n.quizzes.SetIfAbsent(userID, domain.QuizFor(word)) {
			n.logger.Debug("Quiz already pending, keeping it", zap.Int64("user_id", userID))
		}
	}

	for _, userID := range userIDs {
		quiz, ok := n.quizzes.Get(userID)
		if !ok {
			continue
		}

		if err := n.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait for send slot: %w", err)
		}

		if err := n.sender.Send(ctx, userID, Prompt(quiz)); err != nil {
			n.logger.Error("Failed to send quiz",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			continue
		}

		n.logger.Info("Quiz sent",
			zap.Int64("user_id", userID),
			zap.String("prompt", quiz.Prompt),
		)
	}

	return nil
}
