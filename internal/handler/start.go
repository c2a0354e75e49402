package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	created, err := h.users.Register(h.ctx, userID)
	if err != nil {
		return h.sendFailure(c, "Failed to register user", err)
	}

	if !created {
		return c.Send(msgKnownUser)
	}
	return c.Send(msgGreeting)
}

func (h *Handler) handleInfo(c tele.Context) error {
	return c.Send(infoText())
}

func (h *Handler) handleUploadInfo(c tele.Context) error {
	return c.Send(msgUploadInfo)
}
