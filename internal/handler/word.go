package handler

import (
	"strings"

	"vocabot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAddWords switches the user to upload mode
func (h *Handler) handleAddWords(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User is uploading words", zap.Int64("user_id", userID))
	h.state.Modes.Set(userID, domain.ModeAwaitingUpload)

	return c.Send(msgUploadPrompt, cancelUploadMarkup())
}

// handleUpload stores the notes sent in upload mode. The user goes back to
// answering quizzes whatever the outcome.
func (h *Handler) handleUpload(c tele.Context, text string) error {
	userID := c.Sender().ID
	h.state.Modes.Set(userID, domain.ModeAwaitingAnswer)

	if strings.EqualFold(strings.TrimSpace(text), "break") {
		h.logger.Info("User abandoned upload", zap.Int64("user_id", userID))
		return c.Send(msgUploadAbandon)
	}

	result, err := h.words.Upload(h.ctx, userID, text)
	if err != nil {
		return h.sendFailure(c, "Failed to upload words", err)
	}

	return c.Send(formatUpload(result))
}

// handleShowWords lists every uploaded word of the user
func (h *Handler) handleShowWords(c tele.Context) error {
	words, err := h.words.ListWords(h.ctx, c.Sender().ID)
	if err != nil {
		return h.sendFailure(c, "Failed to list words", err)
	}

	if len(words) == 0 {
		return c.Send(msgNoWordsListed)
	}
	return c.Send(formatWords(words))
}
