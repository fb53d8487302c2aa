// Package picker holds the interaction state machine of the date picker:
// which view is active, which day has focus, and what happens on each
// navigation command. It owns no widgets; shells render State snapshots and
// feed keys and text back in.
package picker

import (
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-shamsi/internal/config"
	"github.com/tartampluch/go-shamsi/internal/engine"
)

// Mode identifies the active picker view.
type Mode int

const (
	// ModeCalendar is the month grid with a focused day. All keyboard
	// navigation happens here.
	ModeCalendar Mode = iota
	// ModeYear is the year browser reached from the header.
	ModeYear
	// ModeInput is the free-text entry view.
	ModeInput
)

// String returns the stable lowercase tag for the mode.
func (m Mode) String() string {
	switch m {
	case ModeCalendar:
		return "calendar"
	case ModeYear:
		return "year"
	case ModeInput:
		return "input"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Options configures a Picker. The zero value of every field selects a
// sensible default, so Options{} is a working configuration.
type Options struct {
	// DefaultDate receives initial focus when the picker opens without a
	// remembered selection. Zero means today.
	DefaultDate engine.JalaliDate

	// MinDate and MaxDate bound the selectable window. Zero values default
	// to the first of 1300 and to the end of Esfand five years from today.
	MinDate engine.JalaliDate
	MaxDate engine.JalaliDate

	// RememberLast reopens the picker on the previously confirmed date
	// instead of DefaultDate.
	RememberLast bool

	// CacheCapacity sizes the calendar memo. Zero picks the default
	// capacity; a negative value disables caching.
	CacheCapacity int

	// Clock supplies "now". Nil means the system clock.
	Clock engine.Clock
}

// State is a point-in-time snapshot of the picker, safe for a shell to keep
// across the next mutation.
type State struct {
	Open        bool
	Mode        Mode
	Focused     engine.JalaliDate
	Selected    engine.JalaliDate // zero until a selection is confirmed
	InputDraft  string
	InputReason engine.Reason // why the last submitted text was rejected
}

// Picker is the date picker state machine. Methods are not safe for
// concurrent use; drive a Picker from a single goroutine, as event loops do.
type Picker struct {
	cal *engine.Calendar

	minDate     engine.JalaliDate
	maxDate     engine.JalaliDate
	defaultDate engine.JalaliDate
	remember    bool

	open        bool
	mode        Mode
	focused     engine.JalaliDate
	selected    engine.JalaliDate
	lastPick    engine.JalaliDate
	draft       string
	inputReason engine.Reason

	onSelect func(engine.JalaliDate)
	onCancel func()
}

// New resolves the options against the calendar and returns a closed picker.
func New(opts Options) (*Picker, error) {
	capacity := opts.CacheCapacity
	switch {
	case capacity == 0:
		capacity = config.DefaultCacheCapacity
	case capacity < 0:
		capacity = 0
	}

	cal := engine.NewCalendar(capacity)
	if opts.Clock != nil {
		cal.Clock = opts.Clock
	}

	today, err := cal.Today()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrOptionDate, err)
	}

	minDate := opts.MinDate
	if minDate.IsZero() {
		minDate = engine.JalaliDate{Year: config.DefaultFirstYear, Month: 1, Day: 1}
	} else if err := revalidate(minDate); err != nil {
		return nil, err
	}

	maxDate := opts.MaxDate
	if maxDate.IsZero() {
		year := today.Year + config.DefaultYearsAhead
		if year > config.MaxYear {
			year = config.MaxYear
		}
		days, err := cal.DaysInMonth(year, config.MonthEsfand)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrOptionDate, err)
		}
		maxDate = engine.JalaliDate{Year: year, Month: config.MonthEsfand, Day: days}
	} else if err := revalidate(maxDate); err != nil {
		return nil, err
	}

	if maxDate.Before(minDate) {
		return nil, fmt.Errorf("%s: %s > %s", config.ErrRangeInverted, minDate, maxDate)
	}

	defaultDate := opts.DefaultDate
	if defaultDate.IsZero() {
		defaultDate = today
	} else if err := revalidate(defaultDate); err != nil {
		return nil, err
	}
	defaultDate = clamp(defaultDate, minDate, maxDate)

	return &Picker{
		cal:         cal,
		minDate:     minDate,
		maxDate:     maxDate,
		defaultDate: defaultDate,
		remember:    opts.RememberLast,
	}, nil
}

// revalidate re-checks a caller-supplied date through the constructor so a
// hand-built struct literal cannot smuggle in an impossible date.
func revalidate(d engine.JalaliDate) error {
	if _, err := engine.NewJalaliDate(d.Year, d.Month, d.Day); err != nil {
		return fmt.Errorf("%s: %w", config.ErrOptionDate, err)
	}
	return nil
}

func clamp(d, min, max engine.JalaliDate) engine.JalaliDate {
	if d.Before(min) {
		return min
	}
	if d.After(max) {
		return max
	}
	return d
}

// Open shows the picker in calendar mode. Focus lands on the remembered
// selection when that is enabled, otherwise on the default date. Opening an
// already open picker resets it the same way.
func (p *Picker) Open() {
	log := slog.With(config.LogKeyComponent, config.CompPicker)

	focus := p.defaultDate
	if p.remember && !p.lastPick.IsZero() {
		focus = clamp(p.lastPick, p.minDate, p.maxDate)
	}

	p.open = true
	p.mode = ModeCalendar
	p.focused = focus
	p.selected = engine.JalaliDate{}
	p.draft = ""
	p.inputReason = engine.ReasonNone

	log.Info(config.MsgPickerOpen, config.LogKeyDate, focus.String())
}

// Close hides the picker without touching the remembered selection.
func (p *Picker) Close() {
	if !p.open {
		return
	}
	p.open = false
	p.draft = ""
	p.inputReason = engine.ReasonNone

	slog.With(config.LogKeyComponent, config.CompPicker).
		Info(config.MsgPickerClose, config.LogKeyDate, p.focused.String())
}

// Cancel dismisses the picker without a selection and notifies OnCancel.
func (p *Picker) Cancel() {
	if !p.open {
		return
	}
	slog.With(config.LogKeyComponent, config.CompPicker).
		Info(config.MsgSelectionCancel, config.LogKeyDate, p.focused.String())

	p.Close()
	if p.onCancel != nil {
		p.onCancel()
	}
}

// confirm commits the focused date, closes the picker and notifies OnSelect.
func (p *Picker) confirm() {
	date := p.focused
	p.selected = date
	p.lastPick = date

	slog.With(config.LogKeyComponent, config.CompPicker).
		Info(config.MsgDateConfirm, config.LogKeyDate, date.String())

	p.Close()
	if p.onSelect != nil {
		p.onSelect(date)
	}
}

// OnSelect registers the callback fired with the confirmed date.
func (p *Picker) OnSelect(fn func(engine.JalaliDate)) {
	p.onSelect = fn
}

// OnCancel registers the callback fired when selection is abandoned.
func (p *Picker) OnCancel(fn func()) {
	p.onCancel = fn
}

// GetState snapshots the picker.
func (p *Picker) GetState() State {
	return State{
		Open:        p.open,
		Mode:        p.mode,
		Focused:     p.focused,
		Selected:    p.selected,
		InputDraft:  p.draft,
		InputReason: p.inputReason,
	}
}

// Calendar exposes the underlying calendar for display helpers.
func (p *Picker) Calendar() *engine.Calendar {
	return p.cal
}

// Range returns the selectable window.
func (p *Picker) Range() (min, max engine.JalaliDate) {
	return p.minDate, p.maxDate
}

// YearRange returns the first and last year offered by the year browser.
func (p *Picker) YearRange() (from, to int) {
	return p.minDate.Year, p.maxDate.Year
}

// MonthGrid lays out the month containing the focused day.
func (p *Picker) MonthGrid() (engine.MonthLayout, error) {
	return p.cal.MonthGrid(p.focused.Year, p.focused.Month)
}
