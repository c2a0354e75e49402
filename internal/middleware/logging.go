package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging logs every handled update and the error it produced, if any
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			fields := updateFields(c)
			logger.Debug("Handling update", fields...)

			start := time.Now()
			err := next(c)

			fields = append(fields, zap.Duration("took", time.Since(start)))
			if err != nil {
				logger.Error("Handler failed", append(fields, zap.Error(err))...)
				return err
			}

			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}

func updateFields(c tele.Context) []zap.Field {
	var fields []zap.Field
	if sender := c.Sender(); sender != nil {
		fields = append(fields,
			zap.Int64("user_id", sender.ID),
			zap.String("username", sender.Username),
		)
	}
	if cb := c.Callback(); cb != nil {
		fields = append(fields, zap.String("callback", cb.Unique))
	} else if text := c.Text(); text != "" {
		fields = append(fields, zap.Int("text_len", len(text)))
	}
	return fields
}
