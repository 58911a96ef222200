package i18n

import "hsemanager/internal/model"

// Language is one of the UI languages supported by the catalogue.
type Language string

const (
	French  Language = "fr"
	English Language = "en"
)

// Parse maps a language code to a supported Language, defaulting to French.
func Parse(code string) Language {
	switch code {
	case "en":
		return English
	default:
		return French
	}
}

// Localize resolves a bilingual text for the requested language with the
// fallback chain requested -> fr -> "".
func Localize(t model.LocalizedText, lang Language) string {
	if lang == English && t.EN != "" {
		return t.EN
	}
	return t.FR
}
