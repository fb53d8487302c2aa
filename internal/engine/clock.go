package engine

import (
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Clock abstracts time.Now() to allow deterministic testing.
// It is used by the Calendar to resolve "today" and the default year window.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FromTime resolves an instant to the Jalali date it falls on in Iran
// standard time, which is the calendar's reference zone.
func FromTime(t time.Time) (JalaliDate, error) {
	pt := ptime.New(t.In(ptime.Iran()))
	return NewJalaliDate(pt.Year(), int(pt.Month()), pt.Day())
}

// Time returns the instant at midnight Iran time on d.
func (d JalaliDate) Time() time.Time {
	pt := ptime.Date(d.Year, ptime.Month(d.Month), d.Day, 0, 0, 0, 0, ptime.Iran())
	return pt.Time()
}
