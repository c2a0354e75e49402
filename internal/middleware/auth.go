package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// NotRegisteredMessage is sent to users who did not /start the bot yet
const NotRegisteredMessage = "You are not registered. Type /start to begin"

// Registry reports whether a user finished registration
type Registry interface {
	IsRegistered(userID int64) bool
}

// RegisteredOnly creates registration gate middleware. It only consults the
// in-memory registry, never the store.
func RegisteredOnly(registry Registry, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			if !registry.IsRegistered(sender.ID) {
				logger.Info("Unregistered user attempted to use the bot",
					zap.Int64("user_id", sender.ID),
					zap.String("username", sender.Username),
				)
				return c.Send(NotRegisteredMessage)
			}

			return next(c)
		}
	}
}
