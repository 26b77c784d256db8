package schema

import (
	"strings"
	"time"
	"unicode"
)

// titleWord upper-cases the first rune of a word, using runes for Unicode safety.
func titleWord(word string) string {
	rr := []rune(word)
	if len(rr) == 0 {
		return word
	}
	rr[0] = unicode.ToUpper(rr[0])
	return string(rr)
}

// DisplayLabel formats a season and subtype pair as "Summer Cool".
func DisplayLabel(season Season, subtype Subtype) string {
	return titleWord(string(season)) + " " + titleWord(string(subtype))
}

// NormalizeHex canonicalizes a hex color code: upper-case with a leading "#".
// Whitespace is trimmed; an empty input stays empty.
func NormalizeHex(hex string) string {
	hex = strings.ToUpper(strings.TrimSpace(hex))
	if hex == "" {
		return hex
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return hex
}

// WeekStart returns Monday 00:00:00 UTC of the week containing t.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}

// DateOnly truncates t to UTC midnight.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
