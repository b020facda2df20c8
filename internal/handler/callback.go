package handler

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// actionType enumerates everything an inline button can ask for
type actionType int

const (
	actionUnknown actionType = iota
	actionNoop

	actionMainMenu
	actionMyBirthdays
	actionAddBirthday
	actionUpcoming
	actionSettings

	actionCategorySelect
	actionSkipNotes
	actionSaveBirthday
	actionViewBirthday
	actionEditBirthday
	actionDeleteBirthday
	actionConfirmDelete
	actionEditField
	actionBirthdaysPage

	actionSettingsLanguage
	actionSetLanguage
	actionSettingsNotifications
	actionToggleNotifications
	actionNotificationTime
	actionSetTime
	actionCustomTime
	actionExportMenu
	actionExport
	actionImport
	actionDeleteProfile
	actionConfirmDeleteProfile
)

// callbackAction is a decoded callback payload. Decoding happens exactly once,
// in parseCallback; handlers never re-split the raw string.
type callbackAction struct {
	typ actionType
	arg string // category, field, language, time or format, depending on typ
	id  int64  // record id or page number, depending on typ
}

var exactActions = map[string]actionType{
	"noop":                            actionNoop,
	"menu:main":                       actionMainMenu,
	"menu:my_birthdays":               actionMyBirthdays,
	"menu:add_birthday":               actionAddBirthday,
	"menu:upcoming":                   actionUpcoming,
	"menu:settings":                   actionSettings,
	"birthday:skip_notes":             actionSkipNotes,
	"birthday:save":                   actionSaveBirthday,
	"settings:language":               actionSettingsLanguage,
	"settings:notifications":          actionSettingsNotifications,
	"settings:notification_time":      actionNotificationTime,
	"settings:custom_time":            actionCustomTime,
	"settings:export":                 actionExportMenu,
	"settings:import":                 actionImport,
	"settings:delete_profile":         actionDeleteProfile,
	"settings:confirm_delete_profile": actionConfirmDeleteProfile,
	"export:csv":                      actionExport,
	"export:json":                     actionExport,
}

// parseCallback decodes raw callback data into a structured action.
// Unrecognized data yields actionUnknown rather than an error: stale
// buttons from old messages should never crash a handler.
func parseCallback(data string) callbackAction {
	if typ, ok := exactActions[data]; ok {
		action := callbackAction{typ: typ}
		if typ == actionExport {
			action.arg = strings.TrimPrefix(data, "export:")
		}
		return action
	}

	parts := strings.Split(data, ":")

	withID := func(typ actionType, raw string) callbackAction {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return callbackAction{typ: actionUnknown}
		}
		return callbackAction{typ: typ, id: id}
	}

	switch {
	case len(parts) == 2 && parts[0] == "category":
		return callbackAction{typ: actionCategorySelect, arg: parts[1]}
	case len(parts) == 2 && parts[0] == "lang":
		return callbackAction{typ: actionSetLanguage, arg: parts[1]}
	case len(parts) == 3 && parts[0] == "birthday":
		switch parts[1] {
		case "view":
			return withID(actionViewBirthday, parts[2])
		case "edit":
			return withID(actionEditBirthday, parts[2])
		case "delete":
			return withID(actionDeleteBirthday, parts[2])
		case "confirm_delete":
			return withID(actionConfirmDelete, parts[2])
		}
	case len(parts) == 3 && parts[0] == "edit":
		switch parts[1] {
		case "name", "date", "category", "notes":
			action := withID(actionEditField, parts[2])
			if action.typ == actionEditField {
				action.arg = parts[1]
			}
			return action
		}
	case len(parts) == 3 && parts[0] == "birthdays" && parts[1] == "page":
		return withID(actionBirthdaysPage, parts[2])
	case len(parts) == 3 && parts[0] == "settings":
		switch parts[1] {
		case "set_language":
			return callbackAction{typ: actionSetLanguage, arg: parts[2]}
		case "toggle_notifications":
			return callbackAction{typ: actionToggleNotifications, arg: parts[2]}
		}
	case len(parts) == 4 && parts[0] == "settings" && parts[1] == "set_time":
		// set_time data contains a colon itself: settings:set_time:09:00
		return callbackAction{typ: actionSetTime, arg: parts[2] + ":" + parts[3]}
	}

	return callbackAction{typ: actionUnknown}
}

// handleCallback routes every inline button press
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("Callback update without callback payload")
		return nil
	}
	user := ctxUser(c)
	if user == nil {
		return c.Respond()
	}

	data := cleanCallbackData(callback.Data)
	action := parseCallback(data)

	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.Int64("telegram_id", user.TelegramID),
	)

	switch action.typ {
	case actionNoop:
		return c.Respond()

	case actionMainMenu:
		h.sessions.ClearState(user.TelegramID)
		return h.showMainMenu(c, user)
	case actionMyBirthdays:
		return h.showMyBirthdays(c, user, 1)
	case actionBirthdaysPage:
		return h.showMyBirthdays(c, user, int(action.id))
	case actionAddBirthday:
		return h.startAddingBirthday(c, user)
	case actionUpcoming:
		return h.showUpcoming(c, user)
	case actionSettings:
		return h.showSettings(c, user)

	case actionCategorySelect:
		return h.selectCategory(c, user, action.arg)
	case actionSkipNotes:
		return h.skipNotes(c, user)
	case actionSaveBirthday:
		return h.saveBirthday(c, user)
	case actionViewBirthday:
		return h.viewBirthday(c, user, action.id)
	case actionEditBirthday:
		return h.showEditMenu(c, user, action.id)
	case actionEditField:
		return h.startEditingField(c, user, action.arg, action.id)
	case actionDeleteBirthday:
		return h.confirmDeleteBirthday(c, user, action.id)
	case actionConfirmDelete:
		return h.deleteBirthday(c, user, action.id)

	case actionSettingsLanguage:
		return h.showLanguages(c, user)
	case actionSetLanguage:
		return h.setLanguage(c, user, action.arg)
	case actionSettingsNotifications:
		return h.showNotifications(c, user)
	case actionToggleNotifications:
		return h.toggleNotifications(c, user, action.arg == "true")
	case actionNotificationTime:
		return h.showTimeSelection(c, user)
	case actionSetTime:
		return h.setNotificationTime(c, user, action.arg)
	case actionCustomTime:
		return h.startCustomTime(c, user)
	case actionExportMenu:
		return h.showExportMenu(c, user)
	case actionExport:
		return h.exportBirthdays(c, user, action.arg)
	case actionImport:
		return h.startImport(c, user)
	case actionDeleteProfile:
		return h.confirmDeleteProfile(c, user)
	case actionConfirmDeleteProfile:
		return h.deleteProfile(c, user)
	}

	h.logger.Warn("Unknown callback data",
		zap.String("data", data),
		zap.Int64("telegram_id", user.TelegramID),
	)
	return c.Respond()
}
