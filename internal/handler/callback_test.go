package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain data", input: "menu:main", expected: "menu:main"},
		{name: "unique prefix stripped", input: "\fmenu:main", expected: "menu:main"},
		{name: "surrounding whitespace", input: "  birthday:view:5\n", expected: "birthday:view:5"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

func TestParseCallback(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected callbackAction
	}{
		{name: "noop", data: "noop", expected: callbackAction{typ: actionNoop}},
		{name: "main menu", data: "menu:main", expected: callbackAction{typ: actionMainMenu}},
		{name: "my birthdays", data: "menu:my_birthdays", expected: callbackAction{typ: actionMyBirthdays}},
		{name: "add birthday", data: "menu:add_birthday", expected: callbackAction{typ: actionAddBirthday}},
		{name: "upcoming", data: "menu:upcoming", expected: callbackAction{typ: actionUpcoming}},
		{name: "settings", data: "menu:settings", expected: callbackAction{typ: actionSettings}},

		{name: "category", data: "category:friends", expected: callbackAction{typ: actionCategorySelect, arg: "friends"}},
		{name: "skip notes", data: "birthday:skip_notes", expected: callbackAction{typ: actionSkipNotes}},
		{name: "save", data: "birthday:save", expected: callbackAction{typ: actionSaveBirthday}},
		{name: "view", data: "birthday:view:42", expected: callbackAction{typ: actionViewBirthday, id: 42}},
		{name: "edit", data: "birthday:edit:42", expected: callbackAction{typ: actionEditBirthday, id: 42}},
		{name: "delete", data: "birthday:delete:42", expected: callbackAction{typ: actionDeleteBirthday, id: 42}},
		{name: "confirm delete", data: "birthday:confirm_delete:42", expected: callbackAction{typ: actionConfirmDelete, id: 42}},
		{name: "edit name field", data: "edit:name:42", expected: callbackAction{typ: actionEditField, arg: "name", id: 42}},
		{name: "edit category field", data: "edit:category:42", expected: callbackAction{typ: actionEditField, arg: "category", id: 42}},
		{name: "page", data: "birthdays:page:3", expected: callbackAction{typ: actionBirthdaysPage, id: 3}},

		{name: "language menu", data: "settings:language", expected: callbackAction{typ: actionSettingsLanguage}},
		{name: "set language", data: "settings:set_language:ru", expected: callbackAction{typ: actionSetLanguage, arg: "ru"}},
		{name: "legacy language shortcut", data: "lang:es", expected: callbackAction{typ: actionSetLanguage, arg: "es"}},
		{name: "notifications", data: "settings:notifications", expected: callbackAction{typ: actionSettingsNotifications}},
		{name: "toggle on", data: "settings:toggle_notifications:true", expected: callbackAction{typ: actionToggleNotifications, arg: "true"}},
		{name: "toggle off", data: "settings:toggle_notifications:false", expected: callbackAction{typ: actionToggleNotifications, arg: "false"}},
		{name: "time menu", data: "settings:notification_time", expected: callbackAction{typ: actionNotificationTime}},
		{name: "set time keeps its colon", data: "settings:set_time:09:00", expected: callbackAction{typ: actionSetTime, arg: "09:00"}},
		{name: "custom time", data: "settings:custom_time", expected: callbackAction{typ: actionCustomTime}},
		{name: "export menu", data: "settings:export", expected: callbackAction{typ: actionExportMenu}},
		{name: "export csv", data: "export:csv", expected: callbackAction{typ: actionExport, arg: "csv"}},
		{name: "export json", data: "export:json", expected: callbackAction{typ: actionExport, arg: "json"}},
		{name: "import", data: "settings:import", expected: callbackAction{typ: actionImport}},
		{name: "delete profile", data: "settings:delete_profile", expected: callbackAction{typ: actionDeleteProfile}},
		{name: "confirm delete profile", data: "settings:confirm_delete_profile", expected: callbackAction{typ: actionConfirmDeleteProfile}},

		{name: "empty data", data: "", expected: callbackAction{typ: actionUnknown}},
		{name: "garbage", data: "whatever", expected: callbackAction{typ: actionUnknown}},
		{name: "non-numeric id", data: "birthday:view:abc", expected: callbackAction{typ: actionUnknown}},
		{name: "unknown edit field", data: "edit:owner:42", expected: callbackAction{typ: actionUnknown}},
		{name: "stale prefix only", data: "birthday:", expected: callbackAction{typ: actionUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseCallback(tt.data))
		})
	}
}
