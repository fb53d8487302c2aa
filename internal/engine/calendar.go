package engine

import (
	"fmt"

	"github.com/tartampluch/go-shamsi/internal/cache"
	"github.com/tartampluch/go-shamsi/internal/config"
)

// Operation tags for memo keys. One tag per cached computation so results
// for the same date fields never collide.
const (
	opLeap        = "leap"
	opMonthDays   = "month_days"
	opDayNumber   = "day_number"
	opFromDay     = "from_day_number"
	opToGregorian = "to_gregorian"
	opToJalali    = "to_jalali"
	opWeekday     = "weekday"
	opGrid        = "month_grid"
)

// Direction selects the orientation of a week step.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// minDayNumber and maxDayNumber delimit the engine's day-number scale, the
// shared linear count both calendars convert through.
var (
	minDayNumber = jalaliDayNumber(config.MinYear, 1, 1)
	maxDayNumber = jalaliDayNumber(config.MaxYear, config.MonthEsfand, monthLength(config.MaxYear, config.MonthEsfand))
)

// -----------------------------------------------------------------------------
// Pure arithmetic
// -----------------------------------------------------------------------------

// isLeapYear implements the 33-year intercalation cycle. The +1595 offset
// aligns the cycle with the day-number formulas below; the two must always
// agree on which Esfand has 30 days.
func isLeapYear(year int) bool {
	r := (year + 1595) % 33
	return r%4 == 0 && r != 32
}

// monthLength assumes a valid month and an in-bounds year.
func monthLength(year, month int) int {
	switch {
	case month <= config.FirstHalfMonths:
		return config.LongMonthDays
	case month < config.MonthEsfand:
		return config.ShortMonthDays
	case isLeapYear(year):
		return config.ShortMonthDays
	default:
		return config.EsfandShortDays
	}
}

func gregorianLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

var gregorianDaysBefore = [...]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

func gregorianMonthLength(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if gregorianLeap(year) {
			return 29
		}
		return 28
	}
}

// jalaliDayNumber maps a Jalali date onto the linear day-number scale.
func jalaliDayNumber(year, month, day int) int {
	jy := year + 1595
	x := -355668 + 365*jy + (jy/33)*8 + (jy%33+3)/4 + day
	if month < 7 {
		x += (month - 1) * config.LongMonthDays
	} else {
		x += (month-7)*config.ShortMonthDays + config.FirstHalfDays
	}
	return x
}

// dayNumberToJalali inverts jalaliDayNumber.
func dayNumberToJalali(x int) (year, month, day int) {
	n := x + 355667
	year = -1595 + 33*(n/12053)
	n %= 12053
	year += 4 * (n / 1461)
	n %= 1461
	if n > 365 {
		year += (n - 1) / 365
		n = (n - 1) % 365
	}
	if n < config.FirstHalfDays {
		month = 1 + n/config.LongMonthDays
		day = 1 + n%config.LongMonthDays
	} else {
		n -= config.FirstHalfDays
		month = 7 + n/config.ShortMonthDays
		day = 1 + n%config.ShortMonthDays
	}
	return year, month, day
}

// gregorianDayNumber maps a Gregorian date onto the same scale.
func gregorianDayNumber(year, month, day int) int {
	leapRef := year
	if month > 2 {
		leapRef = year + 1
	}
	return -1 + 365*year + (leapRef+3)/4 - (leapRef+99)/100 + (leapRef+399)/400 +
		day + gregorianDaysBefore[month-1]
}

// dayNumberToGregorian inverts gregorianDayNumber, peeling off 400-, 100-
// and 4-year blocks before walking the months.
func dayNumberToGregorian(x int) (year, month, day int) {
	year = 400 * (x / 146097)
	x %= 146097
	if x > 36524 {
		x--
		year += 100 * (x / 36524)
		x %= 36524
		if x >= 365 {
			x++
		}
	}
	year += 4 * (x / 1461)
	x %= 1461
	if x > 365 {
		year += (x - 1) / 365
		x = (x - 1) % 365
	}
	day = x + 1
	for month = 1; month <= 12 && day > gregorianMonthLength(year, month); month++ {
		day -= gregorianMonthLength(year, month)
	}
	return year, month, day
}

// IsWithinRange reports whether d lies inside the inclusive [min, max] span.
func IsWithinRange(d, min, max JalaliDate) bool {
	return !d.Before(min) && !d.After(max)
}

// -----------------------------------------------------------------------------
// Calendar facade
// -----------------------------------------------------------------------------

// Calendar performs the date arithmetic behind the picker, memoizing the
// per-date computations through an injected LRU memo. The memo is strictly
// an optimization: a disabled memo yields identical results.
type Calendar struct {
	Clock Clock // Interface for time mocking.

	memo *cache.Memo
}

// NewCalendar builds a calendar with a memo of the given capacity. Zero or
// negative capacity disables memoization.
func NewCalendar(capacity int) *Calendar {
	return &Calendar{
		Clock: RealClock{},
		memo:  cache.New(capacity),
	}
}

// check rejects structurally invalid or out-of-bounds input dates before any
// arithmetic runs on them.
func (c *Calendar) check(d JalaliDate) error {
	_, err := NewJalaliDate(d.Year, d.Month, d.Day)
	return err
}

func (c *Calendar) dayNumber(d JalaliDate) int {
	v := c.memo.Get(cache.Key{Op: opDayNumber, Year: d.Year, Month: d.Month, Day: d.Day}, func() any {
		return jalaliDayNumber(d.Year, d.Month, d.Day)
	})
	return v.(int)
}

func (c *Calendar) fromDayNumber(x int) JalaliDate {
	v := c.memo.Get(cache.Key{Op: opFromDay, Arg: x}, func() any {
		year, month, day := dayNumberToJalali(x)
		return JalaliDate{Year: year, Month: month, Day: day}
	})
	return v.(JalaliDate)
}

func (c *Calendar) monthDays(year, month int) int {
	v := c.memo.Get(cache.Key{Op: opMonthDays, Year: year, Month: month}, func() any {
		return monthLength(year, month)
	})
	return v.(int)
}

// IsLeapYear reports whether the Jalali year has a 30-day Esfand.
func (c *Calendar) IsLeapYear(year int) (bool, error) {
	if year < config.MinYear || year > config.MaxYear {
		return false, fmt.Errorf("%w: year %d", ErrDateOutOfRange, year)
	}
	v := c.memo.Get(cache.Key{Op: opLeap, Year: year}, func() any {
		return isLeapYear(year)
	})
	return v.(bool), nil
}

// DaysInMonth returns the month's length: 31 for Farvardin through
// Shahrivar, 30 for Mehr through Bahman, and 29 or 30 for Esfand.
func (c *Calendar) DaysInMonth(year, month int) (int, error) {
	if year < config.MinYear || year > config.MaxYear {
		return 0, fmt.Errorf("%w: year %d", ErrDateOutOfRange, year)
	}
	if month < 1 || month > config.MonthsPerYear {
		return 0, fmt.Errorf("%w: month %d", ErrInvalidMonth, month)
	}
	return c.monthDays(year, month), nil
}

// ToGregorian converts a Jalali date to its Gregorian equivalent.
func (c *Calendar) ToGregorian(d JalaliDate) (GregorianDate, error) {
	if err := c.check(d); err != nil {
		return GregorianDate{}, err
	}
	v := c.memo.Get(cache.Key{Op: opToGregorian, Year: d.Year, Month: d.Month, Day: d.Day}, func() any {
		year, month, day := dayNumberToGregorian(jalaliDayNumber(d.Year, d.Month, d.Day))
		return GregorianDate{Year: year, Month: month, Day: day}
	})
	return v.(GregorianDate), nil
}

// ToJalali converts a Gregorian date to its Jalali equivalent. Round-trip
// identity with ToGregorian holds across the whole supported range.
func (c *Calendar) ToJalali(g GregorianDate) (JalaliDate, error) {
	if _, err := NewGregorianDate(g.Year, g.Month, g.Day); err != nil {
		return JalaliDate{}, err
	}
	x := gregorianDayNumber(g.Year, g.Month, g.Day)
	if x < minDayNumber || x > maxDayNumber {
		return JalaliDate{}, fmt.Errorf("%w: %s", ErrDateOutOfRange, g)
	}
	v := c.memo.Get(cache.Key{Op: opToJalali, Year: g.Year, Month: g.Month, Day: g.Day}, func() any {
		return c.fromDayNumber(x)
	})
	return v.(JalaliDate), nil
}

// DayOfWeek returns the Saturday-first weekday of a Jalali date.
func (c *Calendar) DayOfWeek(d JalaliDate) (Weekday, error) {
	if err := c.check(d); err != nil {
		return 0, err
	}
	v := c.memo.Get(cache.Key{Op: opWeekday, Year: d.Year, Month: d.Month, Day: d.Day}, func() any {
		return Weekday(jalaliDayNumber(d.Year, d.Month, d.Day) % config.DaysPerWeek)
	})
	return v.(Weekday), nil
}

// AddDays steps n calendar days (n may be negative), rolling over month and
// year boundaries, leap lengths included.
func (c *Calendar) AddDays(d JalaliDate, n int) (JalaliDate, error) {
	if err := c.check(d); err != nil {
		return JalaliDate{}, err
	}
	target := c.dayNumber(d) + n
	if target < minDayNumber || target > maxDayNumber {
		return JalaliDate{}, fmt.Errorf("%w: %s %+d days", ErrDateOutOfRange, d, n)
	}
	return c.fromDayNumber(target), nil
}

// StepWeek steps seven days but never leaves the current month: a step that
// would cross the month boundary clamps to day 1 going backward or the last
// day going forward. The contrast with AddDays is deliberate, so vertical
// navigation stays inside the visible month grid.
func (c *Calendar) StepWeek(d JalaliDate, dir Direction) (JalaliDate, error) {
	if err := c.check(d); err != nil {
		return JalaliDate{}, err
	}

	step := 1
	if dir < 0 {
		step = -1
	}

	length := c.monthDays(d.Year, d.Month)
	target := d.Day + step*config.DaysPerWeek
	if target < 1 {
		target = 1
	} else if target > length {
		target = length
	}
	return JalaliDate{Year: d.Year, Month: d.Month, Day: target}, nil
}

// AddMonths steps n months with year rollover, clamping the day to the
// target month's length (Shahrivar 31st plus one month lands on Mehr 30th).
func (c *Calendar) AddMonths(d JalaliDate, n int) (JalaliDate, error) {
	if err := c.check(d); err != nil {
		return JalaliDate{}, err
	}

	total := d.Year*config.MonthsPerYear + (d.Month - 1) + n
	if total < 0 {
		return JalaliDate{}, fmt.Errorf("%w: %s %+d months", ErrDateOutOfRange, d, n)
	}
	year := total / config.MonthsPerYear
	month := total%config.MonthsPerYear + 1
	if year < config.MinYear || year > config.MaxYear {
		return JalaliDate{}, fmt.Errorf("%w: %s %+d months", ErrDateOutOfRange, d, n)
	}

	day := d.Day
	if length := c.monthDays(year, month); day > length {
		day = length
	}
	return JalaliDate{Year: year, Month: month, Day: day}, nil
}

// MonthLayout is the month grid handed to rendering shells: six rows of
// seven cells, Saturday first, day numbers with zero marking a blank cell.
type MonthLayout struct {
	Year    int
	Month   int
	Leading int // blank cells before day 1, equal to its weekday index
	Days    int
	Weeks   [config.GridWeekRows][config.DaysPerWeek]int
}

// MonthGrid lays out a month for display. Pure data; painting it is the
// shell's business.
func (c *Calendar) MonthGrid(year, month int) (MonthLayout, error) {
	days, err := c.DaysInMonth(year, month)
	if err != nil {
		return MonthLayout{}, err
	}

	v := c.memo.Get(cache.Key{Op: opGrid, Year: year, Month: month}, func() any {
		leading := int(Weekday(jalaliDayNumber(year, month, 1) % config.DaysPerWeek))
		layout := MonthLayout{Year: year, Month: month, Leading: leading, Days: days}
		for day := 1; day <= days; day++ {
			cell := leading + day - 1
			layout.Weeks[cell/config.DaysPerWeek][cell%config.DaysPerWeek] = day
		}
		return layout
	})
	return v.(MonthLayout), nil
}

// Today resolves the clock's current instant to a Jalali date.
func (c *Calendar) Today() (JalaliDate, error) {
	return FromTime(c.Clock.Now())
}

// PurgeCache drops every memoized computation. Results are unaffected.
func (c *Calendar) PurgeCache() {
	c.memo.Purge()
}

// CacheStats returns the memo's hit and miss counters.
func (c *Calendar) CacheStats() (hits, misses uint64) {
	return c.memo.Stats()
}
