package domain

// Language is a supported display language code. It is sent verbatim as
// the `language` field on document submission.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

// Toggle flips between the two supported languages.
func (l Language) Toggle() Language {
	if l == LanguageEnglish {
		return LanguageHindi
	}
	return LanguageEnglish
}

// Label is the human-readable name shown on the language switch.
func (l Language) Label() string {
	if l == LanguageHindi {
		return "हिंदी"
	}
	return "English"
}
