package chatbot

import "strings"

// Language is a reply-language code. Values outside the supported set are
// carried through unchanged and resolve to the English instruction.
type Language string

const (
	LanguageAuto    Language = "auto"
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageKannada Language = "kn"
	LanguageTamil   Language = "ta"
	LanguageTelugu  Language = "te"
	LanguageMarathi Language = "mr"
)

type scriptRange struct {
	lang Language
	low  rune
	high rune
}

// Checked in order; the first script present in the text wins.
var scriptRanges = []scriptRange{
	{lang: LanguageHindi, low: 0x0900, high: 0x097F}, // Devanagari
	{lang: LanguageKannada, low: 0x0C80, high: 0x0CFF},
	{lang: LanguageTamil, low: 0x0B80, high: 0x0BFF},
	{lang: LanguageTelugu, low: 0x0C00, high: 0x0C7F},
}

// Devanagari words that mark text as Marathi rather than Hindi. Matched as substrings.
var marathiMarkers = []string{"आहे", "आहेत", "होते", "होती", "ते", "ती"}

var instructions = map[Language]string{
	LanguageEnglish: "Reply in clear, professional English.",
	LanguageHindi:   "Reply in Hindi using Devanagari script. Keep the language natural and easy to understand.",
	LanguageKannada: "Reply in Kannada using Kannada script. Keep the language natural and easy to understand.",
	LanguageTamil:   "Reply in Tamil using Tamil script. Keep the language natural and easy to understand.",
	LanguageTelugu:  "Reply in Telugu using Telugu script. Keep the language natural and easy to understand.",
	LanguageMarathi: "Reply in Marathi using Devanagari script. Keep the language natural and easy to understand.",
}

// DetectLanguage guesses the language of text from its script, falling back to English.
func DetectLanguage(text string) Language {
	for _, sr := range scriptRanges {
		if !containsRange(text, sr.low, sr.high) {
			continue
		}
		if sr.lang == LanguageHindi && hasMarathiMarker(text) {
			return LanguageMarathi
		}
		return sr.lang
	}
	return LanguageEnglish
}

// InstructionFor returns the reply directive for code, or the English one for unknown codes.
func InstructionFor(code Language) string {
	if instruction, ok := instructions[code]; ok {
		return instruction
	}
	return instructions[LanguageEnglish]
}

// ResolveLanguage returns the caller's code verbatim unless it is "auto".
func ResolveLanguage(requested string, message string) Language {
	if Language(requested) == LanguageAuto {
		return DetectLanguage(message)
	}
	return Language(requested)
}

func containsRange(text string, low, high rune) bool {
	return strings.IndexFunc(text, func(r rune) bool {
		return r >= low && r <= high
	}) >= 0
}

func hasMarathiMarker(text string) bool {
	for _, marker := range marathiMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
