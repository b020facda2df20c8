package locales

var es = map[string]string{
	"welcome.title":       "🎂 Birthday Reminder Pro",
	"welcome.description": "Recuerdo los cumpleaños para que tú no tengas que hacerlo. Añade a tus seres queridos y te avisaré a tiempo.",

	"menu.main":           "🏠 Menú principal",
	"menu.myBirthdays":    "👥 Mis cumpleaños",
	"menu.addBirthday":    "➕ Añadir cumpleaños",
	"menu.upcoming30Days": "📅 Próximos 30 días",
	"menu.settings":       "⚙️ Ajustes",

	"birthday.enterName":      "👤 Escribe el nombre:",
	"birthday.enterDate":      "📅 Escribe la fecha de nacimiento (DD.MM.AAAA):",
	"birthday.selectCategory": "📂 Elige una categoría:",
	"birthday.enterNotes":     "📝 Añade notas (u omite):",
	"birthday.saved":          "✅ ¡Cumpleaños añadido!",
	"birthday.deleted":        "✅ Cumpleaños eliminado",
	"birthday.notFound":       "❌ Cumpleaños no encontrado",
	"birthday.missingData":    "❌ Faltan datos para guardar, empieza de nuevo",
	"birthday.age":            "Edad",
	"birthday.editPrompt":     "✏️ ¿Qué quieres cambiar?",
	"birthday.fieldName":      "Nombre",
	"birthday.fieldDate":      "Fecha",
	"birthday.fieldCategory":  "Categoría",
	"birthday.fieldNotes":     "Notas",
	"birthday.editName":       "👤 Escribe el nuevo nombre:",
	"birthday.editDate":       "📅 Escribe la nueva fecha (DD.MM.AAAA):",
	"birthday.editNotes":      "📝 Escribe las nuevas notas:",
	"birthday.nameUpdated":    "✅ Nombre actualizado",
	"birthday.dateUpdated":    "✅ Fecha actualizada",
	"birthday.notesUpdated":   "✅ Notas actualizadas",
	"birthday.categoryUpdated": "✅ Categoría actualizada",
	"birthday.deleteConfirm":  "⚠️ ¿Eliminar este cumpleaños?",
	"birthday.listEmpty":      "📝 Aún no tienes cumpleaños guardados",
	"birthday.today":          "🎉 ¡hoy!",
	"birthday.inDays":         "en %d días",
	"birthday.tomorrow":       "mañana",

	"birthday.categories.family":     "👨‍👩‍👧 Familia",
	"birthday.categories.friends":    "🤝 Amigos",
	"birthday.categories.colleagues": "💼 Colegas",
	"birthday.categories.other":      "📁 Otros",

	"upcoming.title": "📅 Cumpleaños en los próximos 30 días:",
	"upcoming.empty": "📅 No hay cumpleaños en los próximos 30 días",
	"upcoming.more":  "... y %d más",

	"settings.title":            "⚙️ Ajustes",
	"settings.language":         "🌐 Idioma",
	"settings.chooseLanguage":   "🌐 Elige un idioma:",
	"settings.languageChanged":  "✅ Idioma cambiado",
	"settings.notifications":    "🔔 Notificaciones",
	"settings.notificationsOn":  "🔔 Activadas",
	"settings.notificationsOff": "🔕 Desactivadas",
	"settings.notificationTime": "⏰ Hora de notificación",
	"settings.currentTime":      "⏰ Hora de notificación actual: %s\n\nElige una nueva hora:",
	"settings.customTime":       "⌚ Hora personalizada",
	"settings.enterCustomTime":  "⌚ Escribe una hora como HH:MM (por ejemplo, 09:30):",
	"settings.timeChanged":      "✅ Hora de notificación cambiada a %s",
	"settings.exportData":       "📤 Exportar datos",
	"settings.chooseExport":     "📤 Elige un formato de exportación:",
	"settings.importCSV":        "📥 Importar CSV",
	"settings.importPrompt":     "📥 Envía un archivo CSV con cumpleaños.\n\nFormato: Nombre,Fecha,Categoría,Notas\nEjemplo: Juan Pérez,15.03.1990,friends,Mejor amigo",
	"settings.importDone":       "📥 Importación terminada: %d añadidos, %d omitidos",
	"settings.deleteProfile":    "🗑 Eliminar perfil",
	"settings.deleteWarning":    "⚠️ ¡ATENCIÓN!\n\nEsto eliminará TODOS tus datos:\n• todos los cumpleaños\n• tus ajustes\n\n¡No se puede deshacer!",
	"settings.deleteConfirm":    "⚠️ Sí, eliminar todo",
	"settings.profileDeleted":   "✅ Perfil eliminado\n\nTodos tus datos han sido borrados.\nEnvía /start para empezar de nuevo.",
	"settings.exportEmpty":      "📤 Aún no hay nada que exportar",

	"notifications.today":       "🎂 Cumpleaños de hoy:",
	"notifications.noBirthdays": "No tienes cumpleaños guardados",

	"validation.invalidDateFormat": "Formato de fecha no válido. Usa DD.MM.AAAA",
	"validation.invalidDate":       "Esa fecha no existe",
	"validation.leapYearError":     "El 29 de febrero solo existe en años bisiestos",
	"validation.invalidTimeFormat": "Formato de hora no válido. Usa HH:MM",
	"validation.nameRequired":      "El nombre no puede estar vacío",
	"validation.nameTooLong":       "El nombre es demasiado largo (máximo 100 caracteres)",
	"validation.invalidCategory":   "Categoría desconocida",

	"common.back":   "⬅️ Atrás",
	"common.cancel": "❌ Cancelar",
	"common.skip":   "⏭️ Omitir",
	"common.yes":    "✅ Sí",
	"common.no":     "❌ No",
	"common.edit":   "✏️ Editar",
	"common.delete": "🗑 Eliminar",
	"common.view":   "👁 Ver",
	"common.error":  "❌ Algo salió mal. Inténtalo de nuevo.",
}
