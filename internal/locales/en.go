package locales

var en = map[string]string{
	"welcome.title":       "🎂 Birthday Reminder Pro",
	"welcome.description": "I remember birthdays so you don't have to. Add the people you care about and I will remind you in time.",

	"menu.main":           "🏠 Main menu",
	"menu.myBirthdays":    "👥 My birthdays",
	"menu.addBirthday":    "➕ Add birthday",
	"menu.upcoming30Days": "📅 Next 30 days",
	"menu.settings":       "⚙️ Settings",

	"birthday.enterName":      "👤 Enter the person's name:",
	"birthday.enterDate":      "📅 Enter the birth date (DD.MM.YYYY):",
	"birthday.selectCategory": "📂 Pick a category:",
	"birthday.enterNotes":     "📝 Add notes (or skip):",
	"birthday.saved":          "✅ Birthday added!",
	"birthday.deleted":        "✅ Birthday deleted",
	"birthday.notFound":       "❌ Birthday not found",
	"birthday.missingData":    "❌ Not enough data to save, please start over",
	"birthday.age":            "Age",
	"birthday.editPrompt":     "✏️ What do you want to change?",
	"birthday.fieldName":      "Name",
	"birthday.fieldDate":      "Date",
	"birthday.fieldCategory":  "Category",
	"birthday.fieldNotes":     "Notes",
	"birthday.editName":       "👤 Enter the new name:",
	"birthday.editDate":       "📅 Enter the new date (DD.MM.YYYY):",
	"birthday.editNotes":      "📝 Enter the new notes:",
	"birthday.nameUpdated":    "✅ Name updated",
	"birthday.dateUpdated":    "✅ Date updated",
	"birthday.notesUpdated":   "✅ Notes updated",
	"birthday.categoryUpdated": "✅ Category updated",
	"birthday.deleteConfirm":  "⚠️ Delete this birthday?",
	"birthday.listEmpty":      "📝 You have no birthdays saved yet",
	"birthday.today":          "🎉 today!",
	"birthday.inDays":         "in %d days",
	"birthday.tomorrow":       "tomorrow",

	"birthday.categories.family":     "👨‍👩‍👧 Family",
	"birthday.categories.friends":    "🤝 Friends",
	"birthday.categories.colleagues": "💼 Colleagues",
	"birthday.categories.other":      "📁 Other",

	"upcoming.title": "📅 Birthdays in the next 30 days:",
	"upcoming.empty": "📅 No birthdays in the next 30 days",
	"upcoming.more":  "... and %d more",

	"settings.title":            "⚙️ Settings",
	"settings.language":         "🌐 Language",
	"settings.chooseLanguage":   "🌐 Choose a language:",
	"settings.languageChanged":  "✅ Language changed",
	"settings.notifications":    "🔔 Notifications",
	"settings.notificationsOn":  "🔔 Enabled",
	"settings.notificationsOff": "🔕 Disabled",
	"settings.notificationTime": "⏰ Notification time",
	"settings.currentTime":      "⏰ Current notification time: %s\n\nPick a new time:",
	"settings.customTime":       "⌚ Custom time",
	"settings.enterCustomTime":  "⌚ Enter a time as HH:MM (for example, 09:30):",
	"settings.timeChanged":      "✅ Notification time set to %s",
	"settings.exportData":       "📤 Export data",
	"settings.chooseExport":     "📤 Choose an export format:",
	"settings.importCSV":        "📥 Import CSV",
	"settings.importPrompt":     "📥 Send a CSV file with birthdays.\n\nFormat: Name,Date,Category,Notes\nExample: John Smith,15.03.1990,friends,Best friend",
	"settings.importDone":       "📥 Import finished: %d added, %d skipped",
	"settings.deleteProfile":    "🗑 Delete profile",
	"settings.deleteWarning":    "⚠️ WARNING!\n\nThis will delete ALL your data:\n• every birthday\n• your settings\n\nThis cannot be undone!",
	"settings.deleteConfirm":    "⚠️ Yes, delete everything",
	"settings.profileDeleted":   "✅ Profile deleted\n\nAll your data has been removed.\nSend /start to begin again.",
	"settings.exportEmpty":      "📤 Nothing to export yet",

	"notifications.today":       "🎂 Birthdays today:",
	"notifications.noBirthdays": "You have no saved birthdays",

	"validation.invalidDateFormat": "Invalid date format. Use DD.MM.YYYY",
	"validation.invalidDate":       "That date does not exist",
	"validation.leapYearError":     "February 29 only exists in leap years",
	"validation.invalidTimeFormat": "Invalid time format. Use HH:MM",
	"validation.nameRequired":      "Name cannot be empty",
	"validation.nameTooLong":       "Name is too long (100 characters max)",
	"validation.invalidCategory":   "Unknown category",

	"common.back":   "⬅️ Back",
	"common.cancel": "❌ Cancel",
	"common.skip":   "⏭️ Skip",
	"common.yes":    "✅ Yes",
	"common.no":     "❌ No",
	"common.edit":   "✏️ Edit",
	"common.delete": "🗑 Delete",
	"common.view":   "👁 View",
	"common.error":  "❌ Something went wrong. Please try again.",
}
