package handler

import (
	"fmt"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/session"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/validate"

	tele "gopkg.in/telebot.v3"
)

func (h *Handler) showSettings(c tele.Context, user *domain.User) error {
	return h.reply(c, user, h.t(user, "settings.title"), h.settingsMarkup(user))
}

func (h *Handler) showLanguages(c tele.Context, user *domain.User) error {
	return h.reply(c, user, h.t(user, "settings.chooseLanguage"), h.languageMarkup(user))
}

func (h *Handler) setLanguage(c tele.Context, user *domain.User, lang string) error {
	if err := h.users.SetLanguage(user.TelegramID, lang); err != nil {
		return h.fail(c, user, err, "Failed to set language")
	}
	// Render the confirmation in the language just chosen
	user.Language = lang
	return h.reply(c, user, h.t(user, "settings.languageChanged"), h.settingsMarkup(user))
}

func (h *Handler) showNotifications(c tele.Context, user *domain.User) error {
	status := h.t(user, "settings.notificationsOff")
	if user.NotificationsEnabled {
		status = h.t(user, "settings.notificationsOn")
	}
	text := h.t(user, "settings.notifications") + ": " + status
	return h.reply(c, user, text, h.notificationToggleMarkup(user, user.NotificationsEnabled))
}

func (h *Handler) toggleNotifications(c tele.Context, user *domain.User, enabled bool) error {
	if err := h.users.SetNotificationsEnabled(user.TelegramID, enabled); err != nil {
		return h.fail(c, user, err, "Failed to toggle notifications")
	}
	user.NotificationsEnabled = enabled
	return h.showNotifications(c, user)
}

func (h *Handler) showTimeSelection(c tele.Context, user *domain.User) error {
	text := fmt.Sprintf(h.t(user, "settings.currentTime"), user.NotificationTime)
	return h.reply(c, user, text, h.timeSelectionMarkup(user))
}

func (h *Handler) setNotificationTime(c tele.Context, user *domain.User, raw string) error {
	normalized, err := validate.Time(raw)
	if err != nil {
		return h.validationReply(c, user, err)
	}
	if err := h.users.SetNotificationTime(user.TelegramID, normalized); err != nil {
		return h.fail(c, user, err, "Failed to set notification time")
	}
	user.NotificationTime = normalized
	text := fmt.Sprintf(h.t(user, "settings.timeChanged"), normalized)
	return h.reply(c, user, text, h.backToSettingsMarkup(user))
}

func (h *Handler) startCustomTime(c tele.Context, user *domain.User) error {
	h.sessions.ClearState(user.TelegramID)
	h.sessions.SetState(user.TelegramID, session.StateSettingCustomTime, nil)
	return h.reply(c, user, h.t(user, "settings.enterCustomTime"), h.cancelMarkup(user))
}

func (h *Handler) textCustomTime(c tele.Context, user *domain.User, text string) error {
	normalized, err := validate.Time(text)
	if err != nil {
		return h.validationReply(c, user, err)
	}
	if err := h.users.SetNotificationTime(user.TelegramID, normalized); err != nil {
		return h.fail(c, user, err, "Failed to set notification time")
	}
	user.NotificationTime = normalized
	h.sessions.ClearState(user.TelegramID)
	return c.Send(fmt.Sprintf(h.t(user, "settings.timeChanged"), normalized), h.backToSettingsMarkup(user))
}

func (h *Handler) confirmDeleteProfile(c tele.Context, user *domain.User) error {
	return h.reply(c, user, h.t(user, "settings.deleteWarning"), h.deleteProfileConfirmMarkup(user))
}

func (h *Handler) deleteProfile(c tele.Context, user *domain.User) error {
	if err := h.users.DeleteProfile(user.TelegramID); err != nil {
		return h.fail(c, user, err, "Failed to delete profile")
	}
	h.sessions.ClearState(user.TelegramID)
	return h.reply(c, user, h.t(user, "settings.profileDeleted"), nil)
}
