package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		season  Season
		subtype Subtype
		want    string
	}{
		{SummerSeason, CoolSubtype, "Summer Cool"},
		{SpringSeason, LightSubtype, "Spring Light"},
		{AutumnSeason, DeepSubtype, "Autumn Deep"},
		{WinterSeason, ClearSubtype, "Winter Clear"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayLabel(tt.season, tt.subtype))
		})
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want string
	}{
		{"already canonical", "#E6E6FA", "#E6E6FA"},
		{"lower case", "#e6e6fa", "#E6E6FA"},
		{"missing prefix", "e6e6fa", "#E6E6FA"},
		{"whitespace", "  87ceeb ", "#87CEEB"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHex(tt.hex))
		})
	}
}

func TestWeekStart(t *testing.T) {
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday midnight stays", monday, monday},
		{"monday afternoon truncates", time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC), monday},
		{"wednesday rolls back", time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC), monday},
		{"sunday belongs to prior monday", time.Date(2025, 6, 8, 23, 59, 59, 0, time.UTC), monday},
		{"next monday starts new week", time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), monday.AddDate(0, 0, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in))
		})
	}
}

func TestWeekStartNonUTC(t *testing.T) {
	// 01:00 KST on Monday is still Sunday in UTC.
	seoul := time.FixedZone("KST", 9*3600)
	in := time.Date(2025, 6, 2, 1, 0, 0, 0, seoul)
	want := time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, WeekStart(in))
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2025, 6, 4, 18, 45, 12, 999, time.UTC)
	want := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, DateOnly(in))
}
