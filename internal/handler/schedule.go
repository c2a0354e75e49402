package handler

import (
	"errors"
	"fmt"

	"vocabot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAddTime handles /add_time HH:MM:SS
func (h *Handler) handleAddTime(c tele.Context) error {
	userID := c.Sender().ID
	raw := c.Message().Payload

	h.logger.Info("User is adding schedule time",
		zap.Int64("user_id", userID),
		zap.String("input", raw),
	)

	at, err := h.schedule.AddTime(h.ctx, userID, raw)
	if errors.Is(err, domain.ErrInvalidTimeFormat) {
		return c.Send(msgInvalidTime)
	}
	if err != nil {
		return h.sendFailure(c, "Failed to add schedule time", err)
	}

	return c.Send(fmt.Sprintf("Time %s added in schedule", at))
}

// handleDeleteTime handles /delete_time HH:MM:SS
func (h *Handler) handleDeleteTime(c tele.Context) error {
	userID := c.Sender().ID

	at, removed, err := h.schedule.DeleteTime(h.ctx, userID, c.Message().Payload)
	if errors.Is(err, domain.ErrInvalidTimeFormat) {
		return c.Send(msgInvalidTime)
	}
	if err != nil {
		return h.sendFailure(c, "Failed to delete schedule time", err)
	}

	if !removed {
		return c.Send(fmt.Sprintf("Time %s is not in your schedule", at))
	}
	return c.Send(fmt.Sprintf("Time %s removed from schedule", at))
}

// handleSchedule lists the user's schedule
func (h *Handler) handleSchedule(c tele.Context) error {
	times, err := h.schedule.ListSchedule(h.ctx, c.Sender().ID)
	if err != nil {
		return h.sendFailure(c, "Failed to list schedule", err)
	}

	if len(times) == 0 {
		return c.Send(msgNoSchedule)
	}
	return c.Send(formatSchedule(times))
}
