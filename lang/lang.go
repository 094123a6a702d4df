// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package lang holds the month-name tables used to format and parse dates.
package lang

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// NumMonths is the number of entries in each month table
	NumMonths = 12
)

// Language is a month-name table for one locale. Month indices are
// zero-based, 0 being January.
type Language struct {
	name       string
	nameEn     string
	tag        language.Tag
	hasAccents bool
	short      [NumMonths]string
	long       [NumMonths]string
}

var (
	english = &Language{
		name:   "English",
		nameEn: "English",
		tag:    language.English,
		short: [NumMonths]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		long: [NumMonths]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
	}

	german = &Language{
		name:       "Deutsch",
		nameEn:     "German",
		tag:        language.German,
		hasAccents: true,
		short: [NumMonths]string{
			"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
			"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez.",
		},
		long: [NumMonths]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
	}

	french = &Language{
		name:       "Français",
		nameEn:     "French",
		tag:        language.French,
		hasAccents: true,
		short: [NumMonths]string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc.",
		},
		long: [NumMonths]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
	}

	// languages contains all supported languages; the first is the fallback
	languages = []*Language{english, german, french}

	matcher = language.NewMatcher(tags())
)

func tags() []language.Tag {
	t := make([]language.Tag, len(languages))
	for i, l := range languages {
		t[i] = l.tag
	}
	return t
}

// GetNumLangs returns the number of supported languages
func GetNumLangs() int {
	return len(languages)
}

// GetLang returns a language by its index
func GetLang(i int) *Language {
	if i < 0 || i >= len(languages) {
		return nil
	}
	return languages[i]
}

// Default returns the English table
func Default() *Language {
	return english
}

// Match returns the supported language closest to tag, falling back to
// English when nothing matches
func Match(tag language.Tag) *Language {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(languages) {
		return english
	}
	return languages[idx]
}

// GetLangName returns the native name of a language
func (l *Language) GetLangName() string {
	return l.name
}

// GetLangNameEn returns the English name of a language
func (l *Language) GetLangNameEn() string {
	return l.nameEn
}

// Tag returns the BCP 47 tag of a language
func (l *Language) Tag() language.Tag {
	return l.tag
}

// ShortName returns the abbreviated name of the zero-based month
func (l *Language) ShortName(month int) string {
	return l.short[month]
}

// LongName returns the full name of the zero-based month
func (l *Language) LongName(month int) string {
	return l.long[month]
}

// ShortNames builds the abbreviated-name table, mapping each name to its
// zero-based month index
func (l *Language) ShortNames() map[string]int {
	names := make(map[string]int, NumMonths)
	for i, name := range l.short {
		names[name] = i
	}
	return names
}

// compareStr compares two strings
func compareStr(key, elm string) int {
	return strings.Compare(key, elm)
}

// foldName lower-cases name and drops a trailing abbreviation dot
func foldName(name string) string {
	return strings.TrimSuffix(cases.Fold().String(name), ".")
}

// removeAccents strips combining marks after canonical decomposition
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// compareFold compares strings ignoring case and a trailing dot
func compareFold(key, elm string) int {
	return strings.Compare(foldName(key), foldName(elm))
}

// compareFoldNoAccent compares strings ignoring case, trailing dot and accents
func compareFoldNoAccent(key, elm string) int {
	return strings.Compare(removeAccents(foldName(key)), removeAccents(foldName(elm)))
}

// monthSearch searches both month tables of a language with cmp
func monthSearch(l *Language, name string, cmp func(string, string) int) int {
	for i := 0; i < NumMonths; i++ {
		if cmp(name, l.short[i]) == 0 {
			return i
		}
	}
	for i := 0; i < NumMonths; i++ {
		if cmp(name, l.long[i]) == 0 {
			return i
		}
	}
	return -1
}

// FindMonth returns the zero-based index of the named month, or -1. Exact
// matches win; otherwise case and a trailing dot are ignored, and for
// languages with accents so are diacritics.
func (l *Language) FindMonth(name string) int {
	name = norm.NFC.String(name)
	if idx := monthSearch(l, name, compareStr); idx >= 0 {
		return idx
	}
	if idx := monthSearch(l, name, compareFold); idx >= 0 {
		return idx
	}
	if l.hasAccents {
		return monthSearch(l, name, compareFoldNoAccent)
	}
	return -1
}

