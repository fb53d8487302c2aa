package engine

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/tartampluch/go-shamsi/internal/config"
	"github.com/tartampluch/go-shamsi/internal/numerals"
)

// Reason classifies why free-text input was rejected. The tags are stable:
// shells key their localized messages on them.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonMalformedText
	ReasonInvalidMonth
	ReasonNonExistentDay
	ReasonOutOfRange
	ReasonUnsupportedNumeral
)

// String returns the stable snake_case tag for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonMalformedText:
		return "malformed_text"
	case ReasonInvalidMonth:
		return "invalid_month"
	case ReasonNonExistentDay:
		return "nonexistent_day"
	case ReasonOutOfRange:
		return "out_of_range"
	case ReasonUnsupportedNumeral:
		return "unsupported_numeral"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// ValidationResult is the tagged outcome of Parse: either a date or the
// reason the text was rejected. Parsing never fails with an error; malformed
// input is a normal result.
type ValidationResult struct {
	Valid  bool
	Date   JalaliDate
	Reason Reason
}

func validResult(d JalaliDate) ValidationResult {
	return ValidationResult{Valid: true, Date: d}
}

func invalidResult(reason Reason) ValidationResult {
	return ValidationResult{Reason: reason}
}

var dateInputRE = regexp.MustCompile(config.DateInputPattern)

// Parse interprets free-text input as a Jalali date inside [min, max].
// Persian digits are accepted and normalized; digits from other scripts are
// rejected. The checks run in a fixed order so the reported reason is
// deterministic: numerals, pattern, month, year bounds, day, range.
func (c *Calendar) Parse(raw string, min, max JalaliDate) ValidationResult {
	text := numerals.ToLatinDigits(strings.TrimSpace(raw))
	if numerals.HasForeignDigits(text) {
		return c.reject(raw, ReasonUnsupportedNumeral)
	}

	match := dateInputRE.FindStringSubmatch(text)
	if match == nil {
		return c.reject(raw, ReasonMalformedText)
	}

	// The pattern caps every field at four digits; Atoi cannot fail here.
	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	day, _ := strconv.Atoi(match[3])

	if month < 1 || month > config.MonthsPerYear {
		return c.reject(raw, ReasonInvalidMonth)
	}
	if year < config.MinYear || year > config.MaxYear {
		return c.reject(raw, ReasonOutOfRange)
	}
	if day < 1 || day > c.monthDays(year, month) {
		return c.reject(raw, ReasonNonExistentDay)
	}

	date := JalaliDate{Year: year, Month: month, Day: day}
	if !IsWithinRange(date, min, max) {
		return c.reject(raw, ReasonOutOfRange)
	}
	return validResult(date)
}

func (c *Calendar) reject(raw string, reason Reason) ValidationResult {
	slog.Debug(config.MsgInputReject,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyText, raw,
		config.LogKeyReason, reason.String())
	return invalidResult(reason)
}
