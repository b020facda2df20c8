package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/session"

	tele "gopkg.in/telebot.v3"
)

// handleStart greets the user and resets any conversation in progress
func (h *Handler) handleStart(c tele.Context) error {
	user := ctxUser(c)
	if user == nil {
		return nil
	}
	h.sessions.ClearState(user.TelegramID)

	text := h.t(user, "welcome.title") + "\n\n" + h.t(user, "welcome.description")
	return c.Send(text, h.mainMenuMarkup(user))
}

func (h *Handler) handleMenu(c tele.Context) error {
	user := ctxUser(c)
	if user == nil {
		return nil
	}
	h.sessions.ClearState(user.TelegramID)
	return h.showMainMenu(c, user)
}

func (h *Handler) showMainMenu(c tele.Context, user *domain.User) error {
	return h.reply(c, user, h.t(user, "menu.main"), h.mainMenuMarkup(user))
}

func (h *Handler) showMyBirthdays(c tele.Context, user *domain.User, page int) error {
	birthdays, err := h.birthdays.List(user.ID)
	if err != nil {
		return h.fail(c, user, err, "Failed to list birthdays")
	}
	if len(birthdays) == 0 {
		markup := inline(
			[]tele.InlineButton{btn(h.t(user, "menu.addBirthday"), "menu:add_birthday")},
			[]tele.InlineButton{btn(h.t(user, "common.back"), "menu:main")},
		)
		return h.reply(c, user, h.t(user, "birthday.listEmpty"), markup)
	}
	return h.reply(c, user, h.t(user, "menu.myBirthdays"), h.birthdayListMarkup(user, birthdays, page))
}

func (h *Handler) startAddingBirthday(c tele.Context, user *domain.User) error {
	h.sessions.ClearState(user.TelegramID)
	h.sessions.SetState(user.TelegramID, session.StateAddingBirthdayName, nil)
	return h.reply(c, user, h.t(user, "birthday.enterName"), h.cancelMarkup(user))
}

func (h *Handler) showUpcoming(c tele.Context, user *domain.User) error {
	birthdays, err := h.birthdays.Upcoming(user.ID, upcomingWindowDays)
	if err != nil {
		return h.fail(c, user, err, "Failed to load upcoming birthdays")
	}
	if len(birthdays) == 0 {
		return h.reply(c, user, h.t(user, "upcoming.empty"), h.backToMainMarkup(user))
	}

	const maxLines = 10
	now := time.Now()
	var sb strings.Builder
	sb.WriteString(h.t(user, "upcoming.title") + "\n\n")
	for i, b := range birthdays {
		if i == maxLines {
			fmt.Fprintf(&sb, h.t(user, "upcoming.more"), len(birthdays)-maxLines)
			sb.WriteString("\n")
			break
		}
		sb.WriteString("🎂 " + h.birthdayLine(user, b, now) + "\n")
	}
	return h.reply(c, user, sb.String(), h.backToMainMarkup(user))
}
