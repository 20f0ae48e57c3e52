package chatbot

// LanguageOption describes one entry of the language picker.
type LanguageOption struct {
	Code Language `json:"code"`
	Name string   `json:"name"`
	Flag string   `json:"flag"`
}

var supportedLanguages = []LanguageOption{
	{Code: LanguageAuto, Name: "Auto Detect", Flag: "🌐"},
	{Code: LanguageEnglish, Name: "English", Flag: "🇺🇸"},
	{Code: LanguageHindi, Name: "हिंदी", Flag: "🇮🇳"},
	{Code: LanguageKannada, Name: "ಕನ್ನಡ", Flag: "🇮🇳"},
	{Code: LanguageTamil, Name: "தமிழ்", Flag: "🇮🇳"},
	{Code: LanguageTelugu, Name: "తెలుగు", Flag: "🇮🇳"},
	{Code: LanguageMarathi, Name: "मराठी", Flag: "🇮🇳"},
}

// SupportedLanguages returns the picker entries in display order. The slice is a copy.
func SupportedLanguages() []LanguageOption {
	out := make([]LanguageOption, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}
