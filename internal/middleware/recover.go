package middleware

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover turns a panicking handler into an error so one bad update
// never takes down the poller.
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Handler panicked", zap.Any("panic", r), zap.Stack("stack"))
					err = fmt.Errorf("handler panic: %v", r)
				}
			}()

			return next(c)
		}
	}
}
