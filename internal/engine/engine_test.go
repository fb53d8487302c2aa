package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-shamsi/internal/engine"
	ptime "github.com/yaa110/go-persian-calendar"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestCalendar_ToGregorian_KnownDates(t *testing.T) {
	cal := engine.NewCalendar(0)

	tests := []struct {
		name     string
		in       engine.JalaliDate
		expected engine.GregorianDate
	}{
		{"Nowruz 1403", engine.JalaliDate{Year: 1403, Month: 1, Day: 1}, engine.GregorianDate{Year: 2024, Month: 3, Day: 20}},
		{"leap Esfand end", engine.JalaliDate{Year: 1403, Month: 12, Day: 30}, engine.GregorianDate{Year: 2025, Month: 3, Day: 20}},
		{"mid Mehr", engine.JalaliDate{Year: 1403, Month: 7, Day: 15}, engine.GregorianDate{Year: 2024, Month: 10, Day: 6}},
		{"century-rule year", engine.JalaliDate{Year: 1303, Month: 1, Day: 1}, engine.GregorianDate{Year: 1924, Month: 3, Day: 21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.ToGregorian(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			// And back again.
			back, err := cal.ToJalali(got)
			require.NoError(t, err)
			assert.Equal(t, tt.in, back, "conversion must round-trip")
		})
	}
}

func TestCalendar_ToGregorian_RejectsBadDates(t *testing.T) {
	cal := engine.NewCalendar(0)

	_, err := cal.ToGregorian(engine.JalaliDate{Year: 1402, Month: 12, Day: 30})
	assert.ErrorIs(t, err, engine.ErrNonExistentDay, "1402 has a 29-day Esfand")

	_, err = cal.ToGregorian(engine.JalaliDate{Year: 1403, Month: 13, Day: 1})
	assert.ErrorIs(t, err, engine.ErrInvalidMonth)

	_, err = cal.ToGregorian(engine.JalaliDate{Year: 1199, Month: 1, Day: 1})
	assert.ErrorIs(t, err, engine.ErrDateOutOfRange)

	_, err = cal.ToGregorian(engine.JalaliDate{})
	assert.Error(t, err, "the zero value is not a date")
}

// TestCalendar_Conversions_AgreeWithPtime cross-checks both directions
// against the go-persian-calendar library over a broad sample of Gregorian
// dates. Noon local time keeps the civil date unambiguous.
func TestCalendar_Conversions_AgreeWithPtime(t *testing.T) {
	cal := engine.NewCalendar(512)
	iran := ptime.Iran()

	days := []struct{ month, day int }{
		{1, 15}, {3, 20}, {3, 21}, {3, 22}, {8, 1}, {12, 31},
	}

	for gy := 1830; gy <= 2210; gy += 7 {
		for _, d := range days {
			pt := ptime.New(time.Date(gy, time.Month(d.month), d.day, 12, 0, 0, 0, iran))

			got, err := cal.ToJalali(engine.GregorianDate{Year: gy, Month: d.month, Day: d.day})
			require.NoError(t, err, "gregorian %04d-%02d-%02d", gy, d.month, d.day)

			want := engine.JalaliDate{Year: pt.Year(), Month: int(pt.Month()), Day: pt.Day()}
			require.Equal(t, want, got, "disagreement at %04d-%02d-%02d", gy, d.month, d.day)

			back, err := cal.ToGregorian(got)
			require.NoError(t, err)
			require.Equal(t, engine.GregorianDate{Year: gy, Month: d.month, Day: d.day}, back)
		}
	}
}

func TestCalendar_IsLeapYear(t *testing.T) {
	cal := engine.NewCalendar(0)

	leap, err := cal.IsLeapYear(1403)
	require.NoError(t, err)
	assert.True(t, leap)

	leap, err = cal.IsLeapYear(1404)
	require.NoError(t, err)
	assert.False(t, leap)

	_, err = cal.IsLeapYear(1601)
	assert.ErrorIs(t, err, engine.ErrDateOutOfRange)

	// A year is leap exactly when its Esfand has 30 days.
	for _, year := range []int{1399, 1400, 1401, 1402, 1403, 1404, 1405, 1408} {
		leap, err := cal.IsLeapYear(year)
		require.NoError(t, err)
		days, err := cal.DaysInMonth(year, 12)
		require.NoError(t, err)
		if leap {
			assert.Equal(t, 30, days, "year %d", year)
		} else {
			assert.Equal(t, 29, days, "year %d", year)
		}
	}
}

func TestCalendar_AddDays(t *testing.T) {
	cal := engine.NewCalendar(64)

	tests := []struct {
		name     string
		start    engine.JalaliDate
		n        int
		expected engine.JalaliDate
	}{
		{
			name:     "leap Esfand rolls into Nowruz",
			start:    engine.JalaliDate{Year: 1403, Month: 12, Day: 30},
			n:        1,
			expected: engine.JalaliDate{Year: 1404, Month: 1, Day: 1},
		},
		{
			name:     "common Esfand rolls into Nowruz",
			start:    engine.JalaliDate{Year: 1401, Month: 12, Day: 29},
			n:        1,
			expected: engine.JalaliDate{Year: 1402, Month: 1, Day: 1},
		},
		{
			name:     "back across Nowruz lands on leap day",
			start:    engine.JalaliDate{Year: 1404, Month: 1, Day: 1},
			n:        -1,
			expected: engine.JalaliDate{Year: 1403, Month: 12, Day: 30},
		},
		{
			name:     "month boundary mid-year",
			start:    engine.JalaliDate{Year: 1403, Month: 6, Day: 31},
			n:        1,
			expected: engine.JalaliDate{Year: 1403, Month: 7, Day: 1},
		},
		{
			name:     "full leap year forward",
			start:    engine.JalaliDate{Year: 1403, Month: 1, Day: 1},
			n:        366,
			expected: engine.JalaliDate{Year: 1404, Month: 1, Day: 1},
		},
		{
			name:     "zero is identity",
			start:    engine.JalaliDate{Year: 1403, Month: 5, Day: 12},
			n:        0,
			expected: engine.JalaliDate{Year: 1403, Month: 5, Day: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.AddDays(tt.start, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			// Stepping back the same distance restores the start.
			back, err := cal.AddDays(got, -tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.start, back)
		})
	}
}

func TestCalendar_AddDays_RangeLimits(t *testing.T) {
	cal := engine.NewCalendar(0)

	_, err := cal.AddDays(engine.JalaliDate{Year: 1600, Month: 12, Day: 29}, 1)
	assert.ErrorIs(t, err, engine.ErrDateOutOfRange, "stepping past the upper bound")

	_, err = cal.AddDays(engine.JalaliDate{Year: 1200, Month: 1, Day: 1}, -1)
	assert.ErrorIs(t, err, engine.ErrDateOutOfRange, "stepping past the lower bound")

	// The bounds themselves stay reachable.
	got, err := cal.AddDays(engine.JalaliDate{Year: 1600, Month: 12, Day: 28}, 1)
	require.NoError(t, err)
	assert.Equal(t, engine.JalaliDate{Year: 1600, Month: 12, Day: 29}, got)
}

func TestCalendar_StepWeek(t *testing.T) {
	cal := engine.NewCalendar(64)

	tests := []struct {
		name     string
		start    engine.JalaliDate
		dir      engine.Direction
		expected engine.JalaliDate
	}{
		{
			name:     "backward clamps to the first of the month",
			start:    engine.JalaliDate{Year: 1403, Month: 1, Day: 3},
			dir:      engine.Backward,
			expected: engine.JalaliDate{Year: 1403, Month: 1, Day: 1},
		},
		{
			name:     "backward from the first stays put",
			start:    engine.JalaliDate{Year: 1403, Month: 1, Day: 1},
			dir:      engine.Backward,
			expected: engine.JalaliDate{Year: 1403, Month: 1, Day: 1},
		},
		{
			name:     "plain week forward",
			start:    engine.JalaliDate{Year: 1403, Month: 1, Day: 15},
			dir:      engine.Forward,
			expected: engine.JalaliDate{Year: 1403, Month: 1, Day: 22},
		},
		{
			name:     "forward clamps to the last day",
			start:    engine.JalaliDate{Year: 1403, Month: 1, Day: 27},
			dir:      engine.Forward,
			expected: engine.JalaliDate{Year: 1403, Month: 1, Day: 31},
		},
		{
			name:     "forward clamp honours a short Esfand",
			start:    engine.JalaliDate{Year: 1404, Month: 12, Day: 25},
			dir:      engine.Forward,
			expected: engine.JalaliDate{Year: 1404, Month: 12, Day: 29},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.StepWeek(tt.start, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.start.Year, got.Year, "week steps never leave the year")
			assert.Equal(t, tt.start.Month, got.Month, "week steps never leave the month")
		})
	}
}

func TestCalendar_StepWeek_NeverLeavesMonth(t *testing.T) {
	cal := engine.NewCalendar(64)

	// Exhaustive sweep over one leap and one common month.
	months := []struct{ year, month int }{{1403, 12}, {1404, 12}}

	for _, m := range months {
		days, err := cal.DaysInMonth(m.year, m.month)
		require.NoError(t, err)

		for day := 1; day <= days; day++ {
			start := engine.JalaliDate{Year: m.year, Month: m.month, Day: day}
			for _, dir := range []engine.Direction{engine.Backward, engine.Forward} {
				got, err := cal.StepWeek(start, dir)
				require.NoError(t, err)
				assert.Equal(t, m.year, got.Year)
				assert.Equal(t, m.month, got.Month)
				assert.GreaterOrEqual(t, got.Day, 1)
				assert.LessOrEqual(t, got.Day, days)
			}
		}
	}
}

func TestCalendar_AddMonths(t *testing.T) {
	cal := engine.NewCalendar(64)

	tests := []struct {
		name     string
		start    engine.JalaliDate
		n        int
		expected engine.JalaliDate
	}{
		{
			name:     "long month into short month clamps the day",
			start:    engine.JalaliDate{Year: 1403, Month: 6, Day: 31},
			n:        1,
			expected: engine.JalaliDate{Year: 1403, Month: 7, Day: 30},
		},
		{
			name:     "leap Esfand into common Esfand clamps",
			start:    engine.JalaliDate{Year: 1403, Month: 12, Day: 30},
			n:        12,
			expected: engine.JalaliDate{Year: 1404, Month: 12, Day: 29},
		},
		{
			name:     "into a leap Esfand keeps day 30 intact",
			start:    engine.JalaliDate{Year: 1403, Month: 11, Day: 30},
			n:        1,
			expected: engine.JalaliDate{Year: 1403, Month: 12, Day: 30},
		},
		{
			name:     "across the year boundary",
			start:    engine.JalaliDate{Year: 1403, Month: 12, Day: 15},
			n:        1,
			expected: engine.JalaliDate{Year: 1404, Month: 1, Day: 15},
		},
		{
			name:     "backward across the year boundary",
			start:    engine.JalaliDate{Year: 1403, Month: 1, Day: 15},
			n:        -1,
			expected: engine.JalaliDate{Year: 1402, Month: 12, Day: 15},
		},
		{
			name:     "a full year forward",
			start:    engine.JalaliDate{Year: 1403, Month: 4, Day: 10},
			n:        12,
			expected: engine.JalaliDate{Year: 1404, Month: 4, Day: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.AddMonths(tt.start, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCalendar_AddMonths_RangeLimits(t *testing.T) {
	cal := engine.NewCalendar(0)

	_, err := cal.AddMonths(engine.JalaliDate{Year: 1600, Month: 12, Day: 1}, 1)
	assert.ErrorIs(t, err, engine.ErrDateOutOfRange)

	_, err = cal.AddMonths(engine.JalaliDate{Year: 1200, Month: 1, Day: 1}, -1)
	assert.ErrorIs(t, err, engine.ErrDateOutOfRange)
}

func TestCalendar_Today_UsesInjectedClock(t *testing.T) {
	// Noon UTC on 2024-03-20 is mid-afternoon in Tehran, still Nowruz 1403.
	cal := engine.NewCalendar(0)
	cal.Clock = MockClock{CurrentTime: time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)}

	today, err := cal.Today()
	require.NoError(t, err)
	assert.Equal(t, engine.JalaliDate{Year: 1403, Month: 1, Day: 1}, today)

	// 21:00 UTC is already past midnight in Tehran (UTC+3:30).
	cal.Clock = MockClock{CurrentTime: time.Date(2024, 3, 20, 21, 0, 0, 0, time.UTC)}
	today, err = cal.Today()
	require.NoError(t, err)
	assert.Equal(t, engine.JalaliDate{Year: 1403, Month: 1, Day: 2}, today)
}

func TestFromTime_TimeRoundTrip(t *testing.T) {
	dates := []engine.JalaliDate{
		{Year: 1403, Month: 1, Day: 1},
		{Year: 1403, Month: 12, Day: 30},
		{Year: 1404, Month: 12, Day: 29},
		{Year: 1350, Month: 7, Day: 8},
	}

	for _, d := range dates {
		got, err := engine.FromTime(d.Time())
		require.NoError(t, err)
		assert.Equal(t, d, got, "midnight Tehran of %s must map back to the same date", d)
	}
}

func TestIsWithinRange(t *testing.T) {
	min := engine.JalaliDate{Year: 1300, Month: 1, Day: 1}
	max := engine.JalaliDate{Year: 1410, Month: 12, Day: 29}

	tests := []struct {
		name     string
		date     engine.JalaliDate
		expected bool
	}{
		{"well inside", engine.JalaliDate{Year: 1403, Month: 5, Day: 12}, true},
		{"lower bound inclusive", min, true},
		{"upper bound inclusive", max, true},
		{"one day below", engine.JalaliDate{Year: 1299, Month: 12, Day: 29}, false},
		{"one day above", engine.JalaliDate{Year: 1411, Month: 1, Day: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.IsWithinRange(tt.date, min, max))
		})
	}
}

func TestWeekday_String(t *testing.T) {
	assert.Equal(t, "Saturday", engine.Saturday.String())
	assert.Equal(t, "Wednesday", engine.Wednesday.String())
	assert.Equal(t, "Friday", engine.Friday.String())
}

func TestCalendar_Info(t *testing.T) {
	cal := engine.NewCalendar(0)

	info, err := cal.Info(engine.JalaliDate{Year: 1403, Month: 1, Day: 1})
	require.NoError(t, err)

	assert.Equal(t, "1403/01/01", info.Formatted)
	assert.Equal(t, "۱۴۰۳/۰۱/۰۱", info.FormattedPersian)
	assert.Equal(t, "چهارشنبه", info.DayName, "Nowruz 1403 was a Wednesday")
	assert.Equal(t, "فروردین", info.MonthName)
	assert.Contains(t, info.Display, "چهارشنبه")
	assert.Contains(t, info.Display, "فروردین")
	assert.Contains(t, info.Display, "۱")
}

func TestMonthName(t *testing.T) {
	first, err := engine.MonthName(1)
	require.NoError(t, err)
	assert.Equal(t, "فروردین", first)

	last, err := engine.MonthName(12)
	require.NoError(t, err)
	assert.Equal(t, "اسفند", last)

	_, err = engine.MonthName(13)
	assert.ErrorIs(t, err, engine.ErrInvalidMonth)

	_, err = engine.MonthName(0)
	assert.ErrorIs(t, err, engine.ErrInvalidMonth)
}

func TestFormatDatePersian(t *testing.T) {
	got := engine.FormatDatePersian(engine.JalaliDate{Year: 1403, Month: 7, Day: 8})
	assert.Equal(t, "۱۴۰۳/۰۷/۰۸", got)
}
