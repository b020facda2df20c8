package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/locales"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/service"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/session"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/validate"

	tele "gopkg.in/telebot.v3"
)

// validationReply shows a validation failure and keeps the conversation
// state untouched so the user can simply try again.
func (h *Handler) validationReply(c tele.Context, user *domain.User, err error) error {
	key := validate.Key(err)
	if key == "" {
		key = "common.error"
	}
	return c.Send(locales.T(user.Language, key))
}

// --- add flow -------------------------------------------------------------

func (h *Handler) textAddName(c tele.Context, user *domain.User, text string) error {
	name, err := validate.Name(text)
	if err != nil {
		return h.validationReply(c, user, err)
	}
	h.sessions.SetState(user.TelegramID, session.StateAddingBirthdayDate, map[string]interface{}{
		session.KeyName: name,
	})
	return c.Send(h.t(user, "birthday.enterDate"), h.cancelMarkup(user))
}

func (h *Handler) textAddDate(c tele.Context, user *domain.User, text string) error {
	date, err := validate.Date(text)
	if err != nil {
		return h.validationReply(c, user, err)
	}
	// Category comes from a button, so the state stays on the date step
	// until one is picked.
	h.sessions.SetData(user.TelegramID, session.KeyBirthDate, date)
	return c.Send(h.t(user, "birthday.selectCategory"), h.categoryMarkup(user))
}

func (h *Handler) selectCategory(c tele.Context, user *domain.User, raw string) error {
	category, err := validate.Category(raw)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: locales.T(user.Language, validate.Key(err))})
	}

	// A pending birthdayId means the button came from the edit screen
	if v, ok := h.sessions.GetValue(user.TelegramID, session.KeyBirthdayID); ok {
		id, _ := v.(int64)
		if err := h.birthdays.UpdateCategory(user.ID, id, category); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return h.editOrSend(c, user, h.t(user, "birthday.notFound"), h.backToMainMarkup(user))
			}
			return h.fail(c, user, err, "Failed to update category")
		}
		h.sessions.ClearState(user.TelegramID)
		return h.editOrSend(c, user, h.t(user, "birthday.categoryUpdated"), h.birthdayActionsMarkup(user, id))
	}

	h.sessions.SetState(user.TelegramID, session.StateAddingBirthdayNotes, map[string]interface{}{
		session.KeyCategory: category,
	})
	return h.editOrSend(c, user, h.t(user, "birthday.enterNotes"), h.notesMarkup(user))
}

// Notes are the last step: entering them (or skipping) saves immediately
func (h *Handler) textAddNotes(c tele.Context, user *domain.User, text string) error {
	h.sessions.SetData(user.TelegramID, session.KeyNotes, strings.TrimSpace(text))
	return h.saveBirthday(c, user)
}

func (h *Handler) skipNotes(c tele.Context, user *domain.User) error {
	h.sessions.SetData(user.TelegramID, session.KeyNotes, "")
	return h.saveBirthday(c, user)
}

// pendingBirthday collects the scratch data gathered by the add flow
func (h *Handler) pendingBirthday(user *domain.User) (name string, date time.Time, category domain.Category, notes string, ok bool) {
	data := h.sessions.GetData(user.TelegramID)
	name, nameOK := data[session.KeyName].(string)
	date, dateOK := data[session.KeyBirthDate].(time.Time)
	category, catOK := data[session.KeyCategory].(domain.Category)
	notes, _ = data[session.KeyNotes].(string)
	ok = nameOK && dateOK && catOK && name != ""
	return
}

// saveBirthday persists the gathered birthday. Incomplete scratch data
// aborts with a visible error and leaves the session untouched.
func (h *Handler) saveBirthday(c tele.Context, user *domain.User) error {
	name, date, category, notes, ok := h.pendingBirthday(user)
	if !ok {
		return h.reply(c, user, h.t(user, "birthday.missingData"), h.backToMainMarkup(user))
	}

	created, err := h.birthdays.Create(user.ID, name, date, category, notes)
	if err != nil {
		return h.fail(c, user, err, "Failed to create birthday")
	}
	h.sessions.ClearState(user.TelegramID)
	text := h.t(user, "birthday.saved") + "\n\n🎂 " + h.birthdayLine(user, *created, time.Now())
	return h.reply(c, user, text, h.mainMenuMarkup(user))
}

// --- view / edit / delete -------------------------------------------------

func (h *Handler) viewBirthday(c tele.Context, user *domain.User, id int64) error {
	birthday, err := h.birthdays.Get(user.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return h.reply(c, user, h.t(user, "birthday.notFound"), h.backToMainMarkup(user))
		}
		return h.fail(c, user, err, "Failed to load birthday")
	}
	return h.reply(c, user, h.birthdayDetails(user, birthday), h.birthdayActionsMarkup(user, id))
}

func (h *Handler) showEditMenu(c tele.Context, user *domain.User, id int64) error {
	if _, err := h.birthdays.Get(user.ID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return h.reply(c, user, h.t(user, "birthday.notFound"), h.backToMainMarkup(user))
		}
		return h.fail(c, user, err, "Failed to load birthday")
	}
	return h.reply(c, user, h.t(user, "birthday.editPrompt"), h.editBirthdayMarkup(user, id))
}

func (h *Handler) startEditingField(c tele.Context, user *domain.User, field string, id int64) error {
	h.sessions.ClearState(user.TelegramID)

	if field == "category" {
		h.sessions.SetData(user.TelegramID, session.KeyBirthdayID, id)
		return h.reply(c, user, h.t(user, "birthday.selectCategory"), h.categoryMarkup(user))
	}

	states := map[string]session.State{
		"name":  session.StateEditingName,
		"date":  session.StateEditingDate,
		"notes": session.StateEditingNotes,
	}
	prompts := map[string]string{
		"name":  "birthday.editName",
		"date":  "birthday.editDate",
		"notes": "birthday.editNotes",
	}

	h.sessions.SetState(user.TelegramID, states[field], map[string]interface{}{
		session.KeyBirthdayID: id,
	})
	return h.reply(c, user, h.t(user, prompts[field]), h.cancelMarkup(user))
}

// editingBirthdayID reads the record id stashed by startEditingField
func (h *Handler) editingBirthdayID(user *domain.User) (int64, bool) {
	v, ok := h.sessions.GetValue(user.TelegramID, session.KeyBirthdayID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func (h *Handler) finishEdit(c tele.Context, user *domain.User, id int64, err error, doneKey string) error {
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.sessions.ClearState(user.TelegramID)
			return c.Send(h.t(user, "birthday.notFound"), h.backToMainMarkup(user))
		}
		return h.fail(c, user, err, "Failed to update birthday")
	}
	h.sessions.ClearState(user.TelegramID)
	return c.Send(h.t(user, doneKey), h.birthdayActionsMarkup(user, id))
}

func (h *Handler) textEditName(c tele.Context, user *domain.User, text string) error {
	id, ok := h.editingBirthdayID(user)
	if !ok {
		h.sessions.ClearState(user.TelegramID)
		return c.Send(h.t(user, "common.error"), h.backToMainMarkup(user))
	}
	name, err := validate.Name(text)
	if err != nil {
		return h.validationReply(c, user, err)
	}
	return h.finishEdit(c, user, id, h.birthdays.UpdateName(user.ID, id, name), "birthday.nameUpdated")
}

func (h *Handler) textEditDate(c tele.Context, user *domain.User, text string) error {
	id, ok := h.editingBirthdayID(user)
	if !ok {
		h.sessions.ClearState(user.TelegramID)
		return c.Send(h.t(user, "common.error"), h.backToMainMarkup(user))
	}
	date, err := validate.Date(text)
	if err != nil {
		return h.validationReply(c, user, err)
	}
	return h.finishEdit(c, user, id, h.birthdays.UpdateDate(user.ID, id, date), "birthday.dateUpdated")
}

func (h *Handler) textEditNotes(c tele.Context, user *domain.User, text string) error {
	id, ok := h.editingBirthdayID(user)
	if !ok {
		h.sessions.ClearState(user.TelegramID)
		return c.Send(h.t(user, "common.error"), h.backToMainMarkup(user))
	}
	return h.finishEdit(c, user, id, h.birthdays.UpdateNotes(user.ID, id, strings.TrimSpace(text)), "birthday.notesUpdated")
}

func (h *Handler) confirmDeleteBirthday(c tele.Context, user *domain.User, id int64) error {
	return h.reply(c, user, h.t(user, "birthday.deleteConfirm"), h.deleteConfirmMarkup(user, id))
}

func (h *Handler) deleteBirthday(c tele.Context, user *domain.User, id int64) error {
	if err := h.birthdays.Delete(user.ID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return h.reply(c, user, h.t(user, "birthday.notFound"), h.backToMainMarkup(user))
		}
		return h.fail(c, user, err, "Failed to delete birthday")
	}
	markup := inline(
		[]tele.InlineButton{btn(h.t(user, "menu.myBirthdays"), "menu:my_birthdays")},
		[]tele.InlineButton{btn(h.t(user, "common.back"), "menu:main")},
	)
	return h.reply(c, user, h.t(user, "birthday.deleted"), markup)
}
