// Package numerals converts between the Persian digit glyphs and ASCII
// digits. The mapping is one-to-one over the ten digits and leaves every
// other rune untouched, so the two directions invert each other.
package numerals

import (
	"strings"
	"unicode"
)

// Persian digits: ۰۱۲۳۴۵۶۷۸۹ (U+06F0 .. U+06F9)
// Latin digits:   0123456789

var persianToLatin = map[rune]rune{
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
}

var latinToPersian = map[rune]rune{
	'0': '۰', '1': '۱', '2': '۲', '3': '۳', '4': '۴',
	'5': '۵', '6': '۶', '7': '۷', '8': '۸', '9': '۹',
}

// ToLatinDigits rewrites every Persian digit as its ASCII counterpart.
func ToLatinDigits(input string) string {
	var result strings.Builder
	for _, char := range input {
		if latinDigit, found := persianToLatin[char]; found {
			result.WriteRune(latinDigit)
		} else {
			result.WriteRune(char)
		}
	}

	return result.String()
}

// ToPersianDigits rewrites every ASCII digit as its Persian counterpart.
// It is the exact inverse of ToLatinDigits.
func ToPersianDigits(input string) string {
	var result strings.Builder
	for _, char := range input {
		if persianDigit, found := latinToPersian[char]; found {
			result.WriteRune(persianDigit)
		} else {
			result.WriteRune(char)
		}
	}

	return result.String()
}

// HasForeignDigits reports whether the string carries decimal digits from any
// script other than Persian or ASCII, the Arabic-Indic forms ٠..٩ being the
// usual offenders on Persian keyboards.
func HasForeignDigits(input string) bool {
	for _, char := range input {
		if !unicode.IsDigit(char) {
			continue
		}
		if char >= '0' && char <= '9' {
			continue
		}
		if _, persian := persianToLatin[char]; persian {
			continue
		}
		return true
	}

	return false
}

// IsDigitRune reports whether the rune is an acceptable digit for date entry,
// meaning Persian or ASCII. Used by input widgets to filter keystrokes.
func IsDigitRune(char rune) bool {
	if char >= '0' && char <= '9' {
		return true
	}
	_, persian := persianToLatin[char]
	return persian
}
