package locales

var ru = map[string]string{
	"welcome.title":       "🎂 Birthday Reminder Pro",
	"welcome.description": "Я помню дни рождения, чтобы вам не пришлось. Добавьте близких людей, и я напомню вовремя.",

	"menu.main":           "🏠 Главное меню",
	"menu.myBirthdays":    "👥 Мои дни рождения",
	"menu.addBirthday":    "➕ Добавить день рождения",
	"menu.upcoming30Days": "📅 Ближайшие 30 дней",
	"menu.settings":       "⚙️ Настройки",

	"birthday.enterName":      "👤 Введите имя:",
	"birthday.enterDate":      "📅 Введите дату рождения (ДД.ММ.ГГГГ):",
	"birthday.selectCategory": "📂 Выберите категорию:",
	"birthday.enterNotes":     "📝 Добавьте заметки (или пропустите):",
	"birthday.saved":          "✅ День рождения добавлен!",
	"birthday.deleted":        "✅ День рождения удалён",
	"birthday.notFound":       "❌ День рождения не найден",
	"birthday.missingData":    "❌ Не хватает данных для сохранения, начните заново",
	"birthday.age":            "Возраст",
	"birthday.editPrompt":     "✏️ Что хотите изменить?",
	"birthday.fieldName":      "Имя",
	"birthday.fieldDate":      "Дата",
	"birthday.fieldCategory":  "Категория",
	"birthday.fieldNotes":     "Заметки",
	"birthday.editName":       "👤 Введите новое имя:",
	"birthday.editDate":       "📅 Введите новую дату (ДД.ММ.ГГГГ):",
	"birthday.editNotes":      "📝 Введите новые заметки:",
	"birthday.nameUpdated":    "✅ Имя обновлено",
	"birthday.dateUpdated":    "✅ Дата обновлена",
	"birthday.notesUpdated":   "✅ Заметки обновлены",
	"birthday.categoryUpdated": "✅ Категория обновлена",
	"birthday.deleteConfirm":  "⚠️ Удалить день рождения?",
	"birthday.listEmpty":      "📝 У вас пока нет сохранённых дней рождения",
	"birthday.today":          "🎉 сегодня!",
	"birthday.inDays":         "через %d дн.",
	"birthday.tomorrow":       "завтра",

	"birthday.categories.family":     "👨‍👩‍👧 Семья",
	"birthday.categories.friends":    "🤝 Друзья",
	"birthday.categories.colleagues": "💼 Коллеги",
	"birthday.categories.other":      "📁 Другое",

	"upcoming.title": "📅 Дни рождения в ближайшие 30 дней:",
	"upcoming.empty": "📅 Нет дней рождения в ближайшие 30 дней",
	"upcoming.more":  "... и ещё %d",

	"settings.title":            "⚙️ Настройки",
	"settings.language":         "🌐 Язык",
	"settings.chooseLanguage":   "🌐 Выберите язык:",
	"settings.languageChanged":  "✅ Язык изменён",
	"settings.notifications":    "🔔 Уведомления",
	"settings.notificationsOn":  "🔔 Включены",
	"settings.notificationsOff": "🔕 Отключены",
	"settings.notificationTime": "⏰ Время уведомлений",
	"settings.currentTime":      "⏰ Текущее время уведомлений: %s\n\nВыберите новое время:",
	"settings.customTime":       "⌚ Своё время",
	"settings.enterCustomTime":  "⌚ Введите время в формате ЧЧ:ММ (например, 09:30):",
	"settings.timeChanged":      "✅ Время уведомлений изменено на %s",
	"settings.exportData":       "📤 Экспорт данных",
	"settings.chooseExport":     "📤 Выберите формат экспорта:",
	"settings.importCSV":        "📥 Импорт CSV",
	"settings.importPrompt":     "📥 Отправьте CSV файл с днями рождения.\n\nФормат: Имя,Дата,Категория,Заметки\nПример: Иван Петров,15.03.1990,friends,Лучший друг",
	"settings.importDone":       "📥 Импорт завершён: добавлено %d, пропущено %d",
	"settings.deleteProfile":    "🗑 Удалить профиль",
	"settings.deleteWarning":    "⚠️ ВНИМАНИЕ!\n\nЭто действие удалит ВСЕ ваши данные:\n• все дни рождения\n• настройки\n\nДанные нельзя будет восстановить!",
	"settings.deleteConfirm":    "⚠️ Да, удалить все данные",
	"settings.profileDeleted":   "✅ Профиль удалён\n\nВсе ваши данные удалены.\nОтправьте /start, чтобы начать заново.",
	"settings.exportEmpty":      "📤 Пока нечего экспортировать",

	"notifications.today":       "🎂 Дни рождения сегодня:",
	"notifications.noBirthdays": "У вас нет сохранённых дней рождения",

	"validation.invalidDateFormat": "Неверный формат даты. Используйте ДД.ММ.ГГГГ",
	"validation.invalidDate":       "Такой даты не существует",
	"validation.leapYearError":     "29 февраля бывает только в високосный год",
	"validation.invalidTimeFormat": "Неверный формат времени. Используйте ЧЧ:ММ",
	"validation.nameRequired":      "Имя не может быть пустым",
	"validation.nameTooLong":       "Имя слишком длинное (максимум 100 символов)",
	"validation.invalidCategory":   "Неизвестная категория",

	"common.back":   "⬅️ Назад",
	"common.cancel": "❌ Отмена",
	"common.skip":   "⏭️ Пропустить",
	"common.yes":    "✅ Да",
	"common.no":     "❌ Нет",
	"common.edit":   "✏️ Изменить",
	"common.delete": "🗑 Удалить",
	"common.view":   "👁 Просмотр",
	"common.error":  "❌ Произошла ошибка. Попробуйте ещё раз.",
}
