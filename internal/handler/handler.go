// Package handler wires Telegram updates to the birthday services.
package handler

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/locales"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/service"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const upcomingWindowDays = 30

// Handler processes bot commands, text messages and inline button callbacks
type Handler struct {
	bot       *tele.Bot
	users     *service.UserService
	birthdays *service.BirthdayService
	sessions  session.Store
	logger    *zap.Logger

	textHandlers map[session.State]func(tele.Context, *domain.User, string) error
}

// NewHandler creates a handler with all dependencies injected
func NewHandler(bot *tele.Bot, users *service.UserService, birthdays *service.BirthdayService, sessions session.Store, logger *zap.Logger) *Handler {
	h := &Handler{
		bot:       bot,
		users:     users,
		birthdays: birthdays,
		sessions:  sessions,
		logger:    logger,
	}
	h.textHandlers = map[session.State]func(tele.Context, *domain.User, string) error{
		session.StateAddingBirthdayName:  h.textAddName,
		session.StateAddingBirthdayDate:  h.textAddDate,
		session.StateAddingBirthdayNotes: h.textAddNotes,
		session.StateEditingName:         h.textEditName,
		session.StateEditingDate:         h.textEditDate,
		session.StateEditingNotes:        h.textEditNotes,
		session.StateSettingCustomTime:   h.textCustomTime,
	}
	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/menu", h.handleMenu)
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnDocument, h.handleDocument)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// ctxUser returns the user stashed by the auth middleware
func ctxUser(c tele.Context) *domain.User {
	user, _ := c.Get("user").(*domain.User)
	return user
}

func (h *Handler) t(user *domain.User, key string) string {
	return locales.T(user.Language, key)
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

// editOrSend edits the callback message in place, falling back to a new
// message when editing fails. "message is not modified" is acknowledged
// silently: another callback already rendered the same screen.
func (h *Handler) editOrSend(c tele.Context, user *domain.User, text string, markup *tele.ReplyMarkup) error {
	var err error
	if markup != nil {
		err = c.Edit(text, markup)
	} else {
		err = c.Edit(text)
	}
	if err == nil {
		return c.Respond()
	}
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date",
			zap.Int64("telegram_id", user.TelegramID),
		)
		return c.Respond()
	}
	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("telegram_id", user.TelegramID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return h.send(c, text, markup)
}

func (h *Handler) send(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if markup != nil {
		return c.Send(text, markup)
	}
	return c.Send(text)
}

// reply renders a screen: edits in place for callbacks, sends for messages
func (h *Handler) reply(c tele.Context, user *domain.User, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		return h.editOrSend(c, user, text, markup)
	}
	return h.send(c, text, markup)
}

// fail logs an internal error and shows the user a generic message
func (h *Handler) fail(c tele.Context, user *domain.User, err error, msg string) error {
	h.logger.Error(msg,
		zap.Error(err),
		zap.Int64("telegram_id", user.TelegramID),
	)
	return h.reply(c, user, h.t(user, "common.error"), h.backToMainMarkup(user))
}

// birthdayLine formats a single list entry: name, date and proximity
func (h *Handler) birthdayLine(user *domain.User, b domain.Birthday, now time.Time) string {
	days := b.DaysUntil(now)
	var when string
	switch days {
	case 0:
		when = h.t(user, "birthday.today")
	case 1:
		when = h.t(user, "birthday.tomorrow")
	default:
		when = fmt.Sprintf(h.t(user, "birthday.inDays"), days)
	}
	return fmt.Sprintf("%s — %s (%s)", b.Name, b.BirthDate.Format("02.01"), when)
}

// birthdayDetails formats the full card shown on birthday:view
func (h *Handler) birthdayDetails(user *domain.User, b *domain.Birthday) string {
	now := time.Now()
	var sb strings.Builder
	fmt.Fprintf(&sb, "👤 %s\n", b.Name)
	fmt.Fprintf(&sb, "📅 %s (%s: %d)\n", b.DisplayDate(), h.t(user, "birthday.age"), b.Age(now))
	fmt.Fprintf(&sb, "📂 %s\n", h.t(user, b.Category.LocaleKey()))
	if b.Notes != "" {
		fmt.Fprintf(&sb, "📝 %s\n", b.Notes)
	}
	sb.WriteString("\n" + h.birthdayLine(user, *b, now))
	return sb.String()
}
