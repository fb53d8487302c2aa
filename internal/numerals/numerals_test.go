package numerals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-shamsi/internal/numerals"
)

func TestToLatinDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"all persian", "۱۴۰۳", "1403"},
		{"full date", "۱۴۰۳/۰۱/۰۱", "1403/01/01"},
		{"mixed digits", "14۰3", "1403"},
		{"no digits", "فروردین", "فروردین"},
		{"latin passthrough", "1403/01/01", "1403/01/01"},
		{"empty", "", ""},
		{"arabic forms untouched", "١٤٠٣", "١٤٠٣"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, numerals.ToLatinDigits(tt.input))
		})
	}
}

func TestToPersianDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"all latin", "1403", "۱۴۰۳"},
		{"full date", "1403/01/01", "۱۴۰۳/۰۱/۰۱"},
		{"text with number", "day 31", "day ۳۱"},
		{"no digits", "yalda", "yalda"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, numerals.ToPersianDigits(tt.input))
		})
	}
}

// TestRoundTrip covers the inversion law: any string whose digits are ASCII
// survives a Persian round trip byte for byte.
func TestRoundTrip(t *testing.T) {
	samples := []string{
		"",
		"1403/01/01",
		"0123456789",
		"year 1399, month 12, day 30",
		"no digits at all",
		"تولد 1375",
	}

	for _, s := range samples {
		assert.Equal(t, s, numerals.ToLatinDigits(numerals.ToPersianDigits(s)), "round trip failed for %q", s)
	}
}

func TestHasForeignDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"arabic-indic", "١٤٠٣/٠١/٠١", true},
		{"single arabic digit", "140٣", true},
		{"persian only", "۱۴۰۳/۰۱/۰۱", false},
		{"latin only", "1403/01/01", false},
		{"mixed persian latin", "14۰3", false},
		{"no digits", "اسفند", false},
		{"thai digit", "๓", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, numerals.HasForeignDigits(tt.input))
		})
	}
}

func TestIsDigitRune(t *testing.T) {
	assert.True(t, numerals.IsDigitRune('0'))
	assert.True(t, numerals.IsDigitRune('9'))
	assert.True(t, numerals.IsDigitRune('۰'))
	assert.True(t, numerals.IsDigitRune('۹'))
	assert.False(t, numerals.IsDigitRune('/'))
	assert.False(t, numerals.IsDigitRune('a'))
	assert.False(t, numerals.IsDigitRune('٣'), "Arabic-Indic digits are rejected at entry")
}
