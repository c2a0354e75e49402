package notifier

import (
	"context"

	tele "gopkg.in/telebot.v3"
)

// botSender is the part of *tele.Bot used for delivery
type botSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// TelegramSender sends plain text messages through a telebot bot
type TelegramSender struct {
	bot botSender
}

func NewTelegramSender(bot botSender) *TelegramSender {
	return &TelegramSender{bot: bot}
}

// Send delivers text to the private chat of the user
func (s *TelegramSender) Send(_ context.Context, userID int64, text string) error {
	_, err := s.bot.Send(tele.ChatID(userID), text)
	return err
}
