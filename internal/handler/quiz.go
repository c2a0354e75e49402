package handler

import (
	"errors"

	"vocabot/internal/domain"
	"vocabot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleNextWord replaces the pending quiz with a fresh random word
func (h *Handler) handleNextWord(c tele.Context) error {
	userID := c.Sender().ID

	err := h.quiz.NextWord(h.ctx, userID)
	if errors.Is(err, service.ErrNoWords) {
		return c.Send(msgNoWordsAdded)
	}
	if err != nil {
		return h.sendFailure(c, "Failed to send next word", err)
	}

	h.state.Modes.Set(userID, domain.ModeAwaitingAnswer)
	return nil
}

// handleReveal shows the pending quiz with its answer. The quiz stays pending.
func (h *Handler) handleReveal(c tele.Context) error {
	quiz, ok := h.quiz.Reveal(c.Sender().ID)
	if !ok {
		return c.Send(msgNothingPending)
	}

	return c.Send(formatPair(domain.WordPair{Source: quiz.Prompt, Target: quiz.Answer}))
}

// handleAnswer checks a translation attempt
func (h *Handler) handleAnswer(c tele.Context, text string) error {
	userID := c.Sender().ID

	if h.quiz.CheckAnswer(userID, text) {
		h.logger.Info("Correct answer", zap.Int64("user_id", userID))
		return c.Send(msgCorrect)
	}

	if !h.state.Quizzes.Contains(userID) {
		return c.Send(msgIncorrect)
	}
	return c.Send(msgIncorrect, quizMarkup())
}
