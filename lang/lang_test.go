// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package lang

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFindMonth(t *testing.T) {
	tests := []struct {
		name     string
		lang     *Language
		month    string
		expected int
	}{
		{"english short", english, "Jan", 0},
		{"english long", english, "December", 11},
		{"english folded", english, "SEP", 8},
		{"english unknown", english, "Sept", -1},
		{"english no accent folding", english, "Mär", -1},
		{"german short with dot", german, "Okt.", 9},
		{"german short without dot", german, "Okt", 9},
		{"german umlaut", german, "März", 2},
		{"german umlaut dropped", german, "Marz", 2},
		{"german long", german, "Dezember", 11},
		{"french short", french, "déc.", 11},
		{"french accent dropped", french, "aout", 7},
		{"french upper case", french, "FÉVRIER", 1},
		{"french english name", french, "Feb", -1},
		{"empty", english, "", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lang.FindMonth(tt.month); got != tt.expected {
				t.Errorf("FindMonth(%q) = %d, expected %d", tt.month, got, tt.expected)
			}
		})
	}
}

func TestFindMonthDecomposed(t *testing.T) {
	// "März" with a combining diaeresis
	if got := german.FindMonth("Ma\u0308rz"); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		tag      language.Tag
		expected *Language
	}{
		{language.English, english},
		{language.BritishEnglish, english},
		{language.German, german},
		{language.MustParse("de-AT"), german},
		{language.MustParse("fr-CH"), french},
		{language.Japanese, english},
		{language.Und, english},
	}

	for _, tt := range tests {
		if got := Match(tt.tag); got != tt.expected {
			t.Errorf("Match(%s) = %s, expected %s", tt.tag, got.GetLangNameEn(), tt.expected.GetLangNameEn())
		}
	}
}

func TestTables(t *testing.T) {
	if GetNumLangs() != len(languages) {
		t.Fatalf("expected %d languages, got %d", len(languages), GetNumLangs())
	}
	if GetLang(-1) != nil || GetLang(GetNumLangs()) != nil {
		t.Error("out of range index should give nil")
	}
	if Default() != GetLang(0) {
		t.Error("English should be the first language")
	}

	for i := 0; i < GetNumLangs(); i++ {
		l := GetLang(i)
		names := l.ShortNames()
		if len(names) != NumMonths {
			t.Errorf("%s: %d distinct short names, expected %d", l.GetLangNameEn(), len(names), NumMonths)
		}
		for month := 0; month < NumMonths; month++ {
			if got := l.FindMonth(l.ShortName(month)); got != month {
				t.Errorf("%s: short name %q found at %d, expected %d", l.GetLangNameEn(), l.ShortName(month), got, month)
			}
			if got := l.FindMonth(l.LongName(month)); got != month {
				t.Errorf("%s: long name %q found at %d, expected %d", l.GetLangNameEn(), l.LongName(month), got, month)
			}
		}
	}
}
