// Package middleware holds bot-wide telebot middleware.
package middleware

import (
	"github.com/dmalofieiev/birthday-reminder-pro/internal/locales"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Auth upserts the sending user and stashes the profile in the context,
// so handlers can rely on c.Get("user") always holding a *domain.User.
func Auth(users *service.UserService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				logger.Warn("Update without sender dropped")
				return nil
			}

			user, err := users.EnsureUser(service.Profile{
				TelegramID:   sender.ID,
				FirstName:    sender.FirstName,
				LastName:     sender.LastName,
				Username:     sender.Username,
				LanguageCode: sender.LanguageCode,
			})
			if err != nil {
				logger.Error("Failed to ensure user in middleware",
					zap.Error(err),
					zap.Int64("telegram_id", sender.ID),
				)
				return c.Send(locales.T(locales.Detect(sender.LanguageCode), "common.error"))
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
