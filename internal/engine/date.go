package engine

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-shamsi/internal/config"
)

// Sentinel errors for the calendar taxonomy. Callers discriminate with
// errors.Is; the messages live in the config catalog.
var (
	ErrInvalidMonth   = errors.New(config.ErrMonthRange)
	ErrNonExistentDay = errors.New(config.ErrDayRange)
	ErrDateOutOfRange = errors.New(config.ErrYearBounds)
)

// JalaliDate is an immutable Jalali (Shamsi) calendar date. Build values
// through NewJalaliDate so a structurally impossible date never circulates;
// the zero value is not a valid date.
type JalaliDate struct {
	Year  int
	Month int
	Day   int
}

// NewJalaliDate validates the triple against the supported year bounds, the
// twelve-month year, and the month's actual length (leap-aware for Esfand).
func NewJalaliDate(year, month, day int) (JalaliDate, error) {
	if year < config.MinYear || year > config.MaxYear {
		return JalaliDate{}, fmt.Errorf("%w: year %d", ErrDateOutOfRange, year)
	}
	if month < 1 || month > config.MonthsPerYear {
		return JalaliDate{}, fmt.Errorf("%w: month %d", ErrInvalidMonth, month)
	}
	if day < 1 || day > monthLength(year, month) {
		return JalaliDate{}, fmt.Errorf("%w: %d/%d/%d", ErrNonExistentDay, year, month, day)
	}
	return JalaliDate{Year: year, Month: month, Day: day}, nil
}

// String renders the date in the canonical year/month/day form.
func (d JalaliDate) String() string {
	return fmt.Sprintf(config.FormatDate, d.Year, d.Month, d.Day)
}

// Before reports whether d is strictly earlier than other.
func (d JalaliDate) Before(other JalaliDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d JalaliDate) After(other JalaliDate) bool {
	return other.Before(d)
}

// Equal reports whether the two dates name the same day.
func (d JalaliDate) Equal(other JalaliDate) bool {
	return d == other
}

// IsZero reports whether d is the unconstructed zero value.
func (d JalaliDate) IsZero() bool {
	return d == JalaliDate{}
}

// GregorianDate is the conversion counterpart of JalaliDate. It exists only
// as the engine's conversion source/target and follows the same value
// semantics.
type GregorianDate struct {
	Year  int
	Month int
	Day   int
}

// NewGregorianDate validates the triple structurally (Gregorian month
// lengths, leap Februaries). Range against the Jalali bounds is checked at
// conversion time, where the corresponding Jalali year is known.
func NewGregorianDate(year, month, day int) (GregorianDate, error) {
	if month < 1 || month > 12 {
		return GregorianDate{}, fmt.Errorf("%w: month %d", ErrInvalidMonth, month)
	}
	if day < 1 || day > gregorianMonthLength(year, month) {
		return GregorianDate{}, fmt.Errorf("%w: %d-%d-%d", ErrNonExistentDay, year, month, day)
	}
	return GregorianDate{Year: year, Month: month, Day: day}, nil
}

// String renders the date in ISO order.
func (g GregorianDate) String() string {
	return fmt.Sprintf(config.FormatGregorian, g.Year, g.Month, g.Day)
}

// Weekday numbers the days of the Persian week, starting at Saturday.
type Weekday int

const (
	Saturday Weekday = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
)

var weekdayEnglish = [...]string{
	"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
}

// String returns the English weekday name, mainly for logs and debugging.
// Persian display names come from WeekdayName.
func (w Weekday) String() string {
	if w < Saturday || w > Friday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayEnglish[w]
}
