package engine

import (
	"fmt"
	"strconv"

	"github.com/tartampluch/go-shamsi/internal/config"
	"github.com/tartampluch/go-shamsi/internal/numerals"
)

// Persian month names, Farvardin first.
var monthNames = [...]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// Persian weekday names and their single-letter column headers, Saturday
// first to match the Weekday enum.
var weekdayNames = [...]string{
	"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنج‌شنبه", "جمعه",
}

var weekdayShort = [...]string{"ش", "ی", "د", "س", "چ", "پ", "ج"}

// MonthName returns the Persian month name (1 = فروردین).
func MonthName(month int) (string, error) {
	if month < 1 || month > config.MonthsPerYear {
		return "", fmt.Errorf("%w: month %d", ErrInvalidMonth, month)
	}
	return monthNames[month-1], nil
}

// WeekdayName returns the Persian weekday name, or an empty string for a
// value outside the enum.
func WeekdayName(w Weekday) string {
	if w < Saturday || w > Friday {
		return ""
	}
	return weekdayNames[w]
}

// WeekdayShort returns the single-letter header shells print above a grid
// column.
func WeekdayShort(w Weekday) string {
	if w < Saturday || w > Friday {
		return ""
	}
	return weekdayShort[w]
}

// FormatDatePersian renders the canonical year/month/day form with Persian
// digits.
func FormatDatePersian(d JalaliDate) string {
	return numerals.ToPersianDigits(d.String())
}

// DateInfo is the display payload assembled for a resolved date, in both
// digit systems, ready for a shell to show without further calendar calls.
type DateInfo struct {
	Date             JalaliDate
	Formatted        string // 1403/01/01
	FormattedPersian string // ۱۴۰۳/۰۱/۰۱
	DayName          string // سه‌شنبه
	MonthName        string // فروردین
	Display          string // weekday and month on one line, day beneath
}

// Info assembles the DateInfo for d.
func (c *Calendar) Info(d JalaliDate) (DateInfo, error) {
	weekday, err := c.DayOfWeek(d)
	if err != nil {
		return DateInfo{}, err
	}

	// d passed validation above, so the month index is in range.
	month := monthNames[d.Month-1]
	dayName := WeekdayName(weekday)

	return DateInfo{
		Date:             d,
		Formatted:        d.String(),
		FormattedPersian: FormatDatePersian(d),
		DayName:          dayName,
		MonthName:        month,
		Display: fmt.Sprintf(config.FormatDisplay,
			dayName, month, numerals.ToPersianDigits(strconv.Itoa(d.Day))),
	}, nil
}
