// Package i18n resolves English and Urdu UI strings.
package i18n

import (
	"golang.org/x/text/language"
)

type Language string

const (
	English Language = "en"
	Urdu    Language = "ur"
)

var supported = []language.Tag{
	language.English,
	language.Urdu,
}

var matcher = language.NewMatcher(supported)

// T returns the text for key in lang. A key missing from the table, or
// missing for lang, is returned verbatim.
func T(key string, lang Language) string {
	entry, ok := translations[key]
	if !ok {
		return key
	}
	var text string
	switch lang {
	case Urdu:
		text = entry.ur
	default:
		text = entry.en
	}
	if text == "" {
		return key
	}
	return text
}

// IsRTL reports whether lang is written right to left
func IsRTL(lang Language) bool {
	return lang == Urdu
}

// Parse returns the supported language for raw, if any
func Parse(raw string) (Language, bool) {
	switch Language(raw) {
	case English, Urdu:
		return Language(raw), true
	}
	return "", false
}

// Negotiate picks the best supported language for an Accept-Language header,
// falling back to def when nothing matches.
func Negotiate(acceptLanguage string, def Language) Language {
	if acceptLanguage == "" {
		return def
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}
	return Language(supported[idx].String())
}

// Table returns every key translated into lang
func Table(lang Language) map[string]string {
	out := make(map[string]string, len(translations))
	for key := range translations {
		out[key] = T(key, lang)
	}
	return out
}

// Has reports whether key exists in the table
func Has(key string) bool {
	_, ok := translations[key]
	return ok
}
