package locales

import "strings"

// DefaultLanguage is used when detection fails or a table is missing
const DefaultLanguage = "en"

// SupportedLanguages lists the language codes with a string table
var SupportedLanguages = []string{"en", "ru", "es"}

// Flags maps language codes to flag emoji for keyboards
var Flags = map[string]string{
	"en": "🇺🇸",
	"ru": "🇷🇺",
	"es": "🇪🇸",
}

// Names maps language codes to native language names
var Names = map[string]string{
	"en": "English",
	"ru": "Русский",
	"es": "Español",
}

var tables = map[string]map[string]string{
	"en": en,
	"ru": ru,
	"es": es,
}

// T resolves a dotted key in the table for the given language. Unknown
// languages fall back to the default table; an unresolvable key falls back to
// the key itself.
func T(language, key string) string {
	table, ok := tables[language]
	if !ok {
		table = tables[DefaultLanguage]
	}
	if value, ok := table[key]; ok {
		return value
	}
	if value, ok := tables[DefaultLanguage][key]; ok {
		return value
	}
	return key
}

// Detect maps a Telegram language hint (e.g. "ru-RU") to a supported language
func Detect(telegramLanguageCode string) string {
	if telegramLanguageCode == "" {
		return DefaultLanguage
	}

	code := strings.ToLower(telegramLanguageCode)
	if idx := strings.Index(code, "-"); idx >= 0 {
		code = code[:idx]
	}

	switch code {
	case "ru":
		return "ru"
	case "es":
		return "es"
	default:
		return DefaultLanguage
	}
}

// IsSupported reports whether a string table exists for the language
func IsSupported(language string) bool {
	_, ok := tables[language]
	return ok
}
