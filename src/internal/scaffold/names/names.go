// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package names

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInput is returned when a raw name cannot be turned into name forms.
var ErrInput = errors.New("invalid input")

// Placeholder keys used by the templates.
const (
	KeyName            = "name"
	KeyNamePlural      = "namePlural"
	KeyUpperName       = "Name"
	KeyUpperNamePlural = "NamePlural"
)

// Forms holds the four derived variants of an entity name.
type Forms struct {
	// Name is the singular with an upper-case first character ("Task").
	Name string
	// NamePlural is the plural with an upper-case first character ("Tasks").
	NamePlural string
	// Lower is the singular with a lower-case first character ("task").
	Lower string
	// LowerPlural is the plural with a lower-case first character ("tasks").
	LowerPlural string
}

// Derive builds the name forms from the raw singular and plural spellings.
// Both must be non-empty; their content is otherwise taken as is.
func Derive(rawSingular, rawPlural string) (Forms, error) {
	if rawSingular == "" {
		return Forms{}, fmt.Errorf("%w: singular name must not be empty", ErrInput)
	}
	if rawPlural == "" {
		return Forms{}, fmt.Errorf("%w: plural name must not be empty", ErrInput)
	}

	return Forms{
		Name:        UpperFirst(rawSingular),
		NamePlural:  UpperFirst(rawPlural),
		Lower:       LowerFirst(rawSingular),
		LowerPlural: LowerFirst(rawPlural),
	}, nil
}

// Placeholders returns the forms keyed by the placeholder names the
// templates reference.
func (f Forms) Placeholders() map[string]string {
	return map[string]string{
		KeyName:            f.Lower,
		KeyNamePlural:      f.LowerPlural,
		KeyUpperName:       f.Name,
		KeyUpperNamePlural: f.NamePlural,
	}
}

// UpperFirst upper-cases the first character of s and leaves the rest unchanged.
func UpperFirst(s string) string {
	return mapFirst(s, cases.Upper(language.Und), unicode.ToUpper)
}

// LowerFirst lower-cases the first character of s and leaves the rest unchanged.
func LowerFirst(s string) string {
	return mapFirst(s, cases.Lower(language.Und), unicode.ToLower)
}

// mapFirst applies caser to the first rune of s. Special casings that expand
// to several runes (ß -> SS) fall back to the simple one-to-one mapping so
// the first character stays a single character.
func mapFirst(s string, caser cases.Caser, simple func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}

	first := caser.String(s[:size])
	if utf8.RuneCountInString(first) != 1 {
		first = string(simple(r))
	}
	return first + s[size:]
}

// SuggestPlural returns the English plural the inflection rules would produce
// for singular. It is only used to hint at a possible typo; the plural the
// caller supplied is always the one that gets used.
func SuggestPlural(singular string) string {
	return inflection.Plural(singular)
}
