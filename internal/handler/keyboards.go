package handler

import (
	"fmt"
	"time"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/locales"

	tele "gopkg.in/telebot.v3"
)

const birthdaysPerPage = 5

func btn(text, data string) tele.InlineButton {
	return tele.InlineButton{Text: text, Data: data}
}

func inline(rows ...[]tele.InlineButton) *tele.ReplyMarkup {
	return &tele.ReplyMarkup{InlineKeyboard: rows}
}

func (h *Handler) mainMenuMarkup(user *domain.User) *tele.ReplyMarkup {
	return inline(
		[]tele.InlineButton{
			btn(h.t(user, "menu.myBirthdays"), "menu:my_birthdays"),
			btn(h.t(user, "menu.addBirthday"), "menu:add_birthday"),
		},
		[]tele.InlineButton{btn(h.t(user, "menu.upcoming30Days"), "menu:upcoming")},
		[]tele.InlineButton{btn(h.t(user, "menu.settings"), "menu:settings")},
	)
}

func (h *Handler) cancelMarkup(user *domain.User) *tele.ReplyMarkup {
	return inline([]tele.InlineButton{btn(h.t(user, "common.cancel"), "menu:main")})
}

func (h *Handler) backToMainMarkup(user *domain.User) *tele.ReplyMarkup {
	return inline([]tele.InlineButton{btn(h.t(user, "common.back"), "menu:main")})
}

func (h *Handler) backToSettingsMarkup(user *domain.User) *tele.ReplyMarkup {
	return inline([]tele.InlineButton{btn(h.t(user, "common.back"), "menu:settings")})
}

func (h *Handler) categoryMarkup(user *domain.User) *tele.ReplyMarkup {
	return inline(
		[]tele.InlineButton{
			btn(h.t(user, domain.CategoryFamily.LocaleKey()), "category:family"),
			btn(h.t(user, domain.CategoryFriends.LocaleKey()), "category:friends"),
		},
		[]tele.InlineButton{
			btn(h.t(user, domain.CategoryColleagues.LocaleKey()), "category:colleagues"),
			btn(h.t(user, domain.CategoryOther.LocaleKey()), "category:other"),
		},
		[]tele.InlineButton{btn(h.t(user, "common.cancel"), "menu:main")},
	)
}

func (h *Handler) notesMarkup(user *domain.User) *tele.ReplyMarkup {
	return inline(
		[]tele.InlineButton{btn(h.t(user, "common.skip"), "birthday:skip_notes")},
		[]tele.InlineButton{btn(h.t(user, "common.cancel"), "menu:main")},
	)
}

func (h *Handler) birthdayListMarkup(user *domain.User, birthdays []domain.Birthday, page int) *tele.ReplyMarkup {
	totalPages := (len(birthdays) + birthdaysPerPage - 1) / birthdaysPerPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * birthdaysPerPage
	end := start + birthdaysPerPage
	if end > len(birthdays) {
		end = len(birthdays)
	}

	var rows [][]tele.InlineButton
	now := time.Now()
	for _, b := range birthdays[start:end] {
		rows = append(rows, []tele.InlineButton{
			btn(h.birthdayLine(user, b, now), fmt.Sprintf("birthday:view:%d", b.ID)),
		})
	}

	if totalPages > 1 {
		var nav []tele.InlineButton
		if page > 1 {
			nav = append(nav, btn("⬅️", fmt.Sprintf("birthdays:page:%d", page-1)))
		}
		nav = append(nav, btn(fmt.Sprintf("%d/%d", page, totalPages), "noop"))
		if page < totalPages {
			nav = append(nav, btn("➡️", fmt.Sprintf("birthdays:page:%d", page+1)))
		}
		rows = append(rows, nav)
	}

	rows = append(rows, []tele.InlineButton{btn(h.t(user, "menu.addBirthday"), "menu:add_birthday")})
	rows = append(rows, []tele.InlineButton{btn(h.t(user, "common.back"), "menu:main")})

	return inline(rows...)
}

func (h *Handler) birthdayActionsMarkup(user *domain.User, id int64) *tele.ReplyMarkup {
	return inline(
		[]tele.InlineButton{
			btn(h.t(user, "common.edit"), fmt.Sprintf("birthday:edit:%d", id)),
			btn(h.t(user, "common.delete"), fmt.Sprintf("birthday:delete:%d", id)),
		},
		[]tele.InlineButton{btn(h.t(user, "common.back"), "menu:my_birthdays")},
	)
}

func (h *Handler) editBirthdayMarkup(user *domain.User, id int64) *tele.ReplyMarkup {
	return inline(
		[]tele.InlineButton{
			btn("👤 "+h.t(user, "birthday.fieldName"), fmt.Sprintf("edit:name:%d", id)),
			btn("📅 "+h.t(user, "birthday.fieldDate"), fmt.Sprintf("edit:date:%d", id)),
		},
		[]tele.InlineButton{
			btn("📂 "+h.t(user, "birthday.fieldCategory"), fmt.Sprintf("edit:category:%d", id)),
			btn("📝 "+h.t(user, "birthday.fieldNotes"), fmt.Sprintf("edit:notes:%d", id)),
		},
		[]tele.InlineButton{btn(h.t(user, "common.back"), fmt.Sprintf("birthday:view:%d", id))},
	)
}

func (h *Handler) deleteConfirmMarkup(user *domain.User, id int64) *tele.ReplyMarkup {
	return inline(
		[]tele.InlineButton{
			btn(h.t(user, "common.yes"), fmt.Sprintf("birthday:confirm_delete:%d", id)),
			btn(h.t(user, "common.no"), fmt.Sprintf("birthday:view:%d", id)),
		},
	)
}

func (h *Handler) settingsMarkup(user *domain.User) *tele.ReplyMarkup {
	return inline(
		[]tele.InlineButton{
			btn(h.t(user, "settings.language"), "settings:language"),
			btn(h.t(user, "settings.notificationTime"), "settings:notification_time"),
		},
		[]tele.InlineButton{btn(h.t(user, "settings.notifications"), "settings:notifications")},
		[]tele.InlineButton{
			btn(h.t(user, "settings.exportData"), "settings:export"),
			btn(h.t(user, "settings.importCSV"), "settings:import"),
		},
		[]tele.InlineButton{btn(h.t(user, "settings.deleteProfile"), "settings:delete_profile")},
		[]tele.InlineButton{btn(h.t(user, "common.back"), "menu:main")},
	)
}

func (h *Handler) languageMarkup(user *domain.User) *tele.ReplyMarkup {
	var rows [][]tele.InlineButton
	for _, code := range locales.SupportedLanguages {
		label := locales.Flags[code] + " " + locales.Names[code]
		if code == user.Language {
			label += " ✅"
		}
		rows = append(rows, []tele.InlineButton{
			btn(label, "settings:set_language:"+code),
		})
	}
	rows = append(rows, []tele.InlineButton{btn(h.t(user, "common.back"), "menu:settings")})
	return inline(rows...)
}

func (h *Handler) notificationToggleMarkup(user *domain.User, enabled bool) *tele.ReplyMarkup {
	label := h.t(user, "settings.notificationsOff")
	if enabled {
		label = h.t(user, "settings.notificationsOn")
	}
	return inline(
		[]tele.InlineButton{
			btn(label, fmt.Sprintf("settings:toggle_notifications:%t", !enabled)),
		},
		[]tele.InlineButton{btn(h.t(user, "common.back"), "menu:settings")},
	)
}

func (h *Handler) timeSelectionMarkup(user *domain.User) *tele.ReplyMarkup {
	var rows [][]tele.InlineButton
	var row []tele.InlineButton
	for hour := 8; hour <= 22; hour++ {
		slot := fmt.Sprintf("%02d:00", hour)
		row = append(row, btn(slot, "settings:set_time:"+slot))
		if len(row) == 4 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, []tele.InlineButton{btn(h.t(user, "settings.customTime"), "settings:custom_time")})
	rows = append(rows, []tele.InlineButton{btn(h.t(user, "common.back"), "menu:settings")})
	return inline(rows...)
}

func (h *Handler) deleteProfileConfirmMarkup(user *domain.User) *tele.ReplyMarkup {
	return inline(
		[]tele.InlineButton{btn(h.t(user, "settings.deleteConfirm"), "settings:confirm_delete_profile")},
		[]tele.InlineButton{btn(h.t(user, "common.cancel"), "menu:settings")},
	)
}

func (h *Handler) exportMarkup(user *domain.User) *tele.ReplyMarkup {
	return inline(
		[]tele.InlineButton{
			btn("📄 CSV", "export:csv"),
			btn("📊 JSON", "export:json"),
		},
		[]tele.InlineButton{btn(h.t(user, "common.back"), "menu:settings")},
	)
}
