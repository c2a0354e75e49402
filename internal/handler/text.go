package handler

import (
	"strings"

	"vocabot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// handleText routes free text by the user's conversation mode
func (h *Handler) handleText(c tele.Context) error {
	text := c.Text()

	// Ignore unknown commands
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	mode, ok := h.state.Modes.Get(c.Sender().ID)
	if !ok {
		mode = domain.ModeAwaitingAnswer
	}

	switch mode {
	case domain.ModeAwaitingUpload:
		return h.handleUpload(c, text)
	case domain.ModeAwaitingAnswer:
		return h.handleAnswer(c, text)
	default:
		return c.Send(msgIdle)
	}
}
