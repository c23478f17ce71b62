package tilmash

// LanguageNames maps supported target language codes to human-readable names
// for CLI output and logs.
var LanguageNames = map[string]string{
	LangKazakh:  "Kazakh",
	LangRussian: "Russian",
	LangChinese: "Chinese (Simplified)",
}

// GetLanguageName returns the human-readable name for a language code.
// Falls back to the code itself if not found.
func GetLanguageName(code string) string {
	if name, ok := LanguageNames[code]; ok {
		return name
	}
	return code
}

// IsSupportedLang reports whether code has an explicit language directive.
// Unsupported codes are still accepted by the composer; they fall through to
// the Simplified Chinese directive.
func IsSupportedLang(code string) bool {
	_, ok := LanguageNames[code]
	return ok
}
