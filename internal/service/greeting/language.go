package greeting

import (
	"slices"
	"strings"
)

// DefaultLanguage is assumed when the caller sends no language.
const DefaultLanguage = "en"

// DefaultWord is the greeting for the default language and for every unknown code.
const DefaultWord = "Hello"

// words maps normalized language codes to greeting words. Codes not listed fall back to DefaultWord.
var words = map[string]string{
	"es": "Hola",
	"fr": "Bonjour",
}

// NormalizeLanguage lower-cases lang, or returns DefaultLanguage when lang is absent.
// No trimming or region stripping is applied: "es-MX" and " es" are unknown codes.
func NormalizeLanguage(lang *string) string {
	if lang == nil {
		return DefaultLanguage
	}
	return strings.ToLower(*lang)
}

// Word returns the greeting word for a normalized language code.
func Word(lang string) string {
	if w, ok := words[lang]; ok {
		return w
	}
	return DefaultWord
}

// Languages lists the codes with a dedicated greeting word, default language first.
func Languages() []string {
	codes := make([]string, 0, len(words)+1)
	for code := range words {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return append([]string{DefaultLanguage}, codes...)
}
