package handler

import (
	"strings"
	"unicode"

	"vocabot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Inline keyboard buttons
var (
	btnCancelUpload = tele.Btn{
		Unique: "cancel_upload",
		Text:   "❌ Cancel",
	}
	btnReveal = tele.Btn{
		Unique: "reveal",
		Text:   "👀 Reveal",
	}
	btnNextWord = tele.Btn{
		Unique: "next_word",
		Text:   "🎲 Next word",
	}
)

func cancelUploadMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnCancelUpload))
	return menu
}

func quizMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnReveal, btnNextWord))
	return menu
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	unique := callback.Unique
	if unique == "" {
		// buttons built elsewhere may carry the id in Data only
		unique = cleanCallbackData(callback.Data)
	}

	// Always acknowledge so the client stops the spinner
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	switch unique {
	case btnCancelUpload.Unique:
		return h.handleCancelUpload(c)
	case btnReveal.Unique:
		return h.handleReveal(c)
	case btnNextWord.Unique:
		return h.handleNextWord(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("unique", unique),
		zap.Int64("user_id", c.Sender().ID),
	)
	return nil
}

// handleCancelUpload is the button version of typing BREAK
func (h *Handler) handleCancelUpload(c tele.Context) error {
	userID := c.Sender().ID

	mode, _ := h.state.Modes.Get(userID)
	if mode != domain.ModeAwaitingUpload {
		return nil
	}

	h.state.Modes.Set(userID, domain.ModeAwaitingAnswer)
	return c.Send(msgUploadAbandon)
}
