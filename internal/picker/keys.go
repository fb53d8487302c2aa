package picker

import (
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-shamsi/internal/config"
	"github.com/tartampluch/go-shamsi/internal/engine"
)

// Key is a navigation command. The names follow the physical WASD cluster:
// the grid runs right to left, so A advances a day while D steps back.
type Key int

const (
	KeyUnknown Key = iota
	KeyW           // a week up
	KeyA           // next day
	KeyS           // a week down
	KeyD           // previous day
	KeyEnter
	KeyEscape
)

// String returns the key label used in logs.
func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// calendarActions dispatches keys while the month grid is active. Absent
// keys are ignored.
var calendarActions = map[Key]func(*Picker){
	KeyW:      func(p *Picker) { p.moveWeek(engine.Backward) },
	KeyA:      func(p *Picker) { p.moveDay(engine.Forward) },
	KeyS:      func(p *Picker) { p.moveWeek(engine.Forward) },
	KeyD:      func(p *Picker) { p.moveDay(engine.Backward) },
	KeyEnter:  (*Picker).confirm,
	KeyEscape: (*Picker).Cancel,
}

// HandleKey feeds one key to the state machine and reports whether it was
// consumed. Keys act only while the picker is open in calendar mode, so a
// host application keeps its own shortcuts everywhere else.
func (p *Picker) HandleKey(k Key) bool {
	if !p.open || p.mode != ModeCalendar {
		return false
	}
	action, ok := calendarActions[k]
	if !ok {
		return false
	}
	action(p)
	return true
}

// moveDay shifts focus one day, stopping at the window edges.
func (p *Picker) moveDay(dir engine.Direction) {
	next, err := p.cal.AddDays(p.focused, int(dir))
	if err != nil {
		return
	}
	p.focusTo(next)
}

// moveWeek shifts focus one row within the current month.
func (p *Picker) moveWeek(dir engine.Direction) {
	next, err := p.cal.StepWeek(p.focused, dir)
	if err != nil {
		return
	}
	p.focusTo(next)
}

// focusTo clamps the target into the selectable window and records the move.
func (p *Picker) focusTo(next engine.JalaliDate) {
	next = clamp(next, p.minDate, p.maxDate)
	if next.Equal(p.focused) {
		return
	}

	slog.With(config.LogKeyComponent, config.CompPicker).
		Debug(config.MsgFocusMove,
			config.LogKeyFrom, p.focused.String(),
			config.LogKeyTo, next.String())
	p.focused = next
}

// SwitchMode changes the active view. Entering input mode pre-fills the
// draft with the focused date; leaving it discards the draft. Use
// SubmitInput to leave input mode with a parsed date.
func (p *Picker) SwitchMode(m Mode) {
	if !p.open || m == p.mode {
		return
	}
	if m != ModeCalendar && m != ModeYear && m != ModeInput {
		return
	}

	slog.With(config.LogKeyComponent, config.CompPicker).
		Debug(config.MsgModeSwitch,
			config.LogKeyFrom, p.mode.String(),
			config.LogKeyTo, m.String())

	if p.mode == ModeInput {
		p.draft = ""
		p.inputReason = engine.ReasonNone
	}
	p.mode = m
	if m == ModeInput {
		p.draft = p.focused.String()
	}
}

// SubmitInput validates free text from the input view. On success focus
// moves to the parsed date and the picker returns to the calendar; on
// rejection the picker stays in input mode with the draft and reason kept
// for display. Outside input mode the call is inert and reports invalid.
func (p *Picker) SubmitInput(text string) engine.ValidationResult {
	if !p.open || p.mode != ModeInput {
		return engine.ValidationResult{}
	}

	result := p.cal.Parse(text, p.minDate, p.maxDate)
	if !result.Valid {
		p.draft = text
		p.inputReason = result.Reason
		return result
	}

	p.draft = ""
	p.inputReason = engine.ReasonNone
	p.mode = ModeCalendar
	p.focusTo(result.Date)
	return result
}

// CancelInput abandons the input view and returns to the calendar.
func (p *Picker) CancelInput() {
	if !p.open || p.mode != ModeInput {
		return
	}
	p.draft = ""
	p.inputReason = engine.ReasonNone
	p.mode = ModeCalendar
}

// Today moves focus to the current date and shows the calendar view.
func (p *Picker) Today() {
	if !p.open {
		return
	}
	today, err := p.cal.Today()
	if err != nil {
		return
	}
	p.mode = ModeCalendar
	p.focusTo(today)
}

// StepMonth moves the calendar view n months, keeping the day when the
// target month has it and clamping to the last day otherwise.
func (p *Picker) StepMonth(n int) {
	if !p.open || p.mode != ModeCalendar {
		return
	}
	next, err := p.cal.AddMonths(p.focused, n)
	if err != nil {
		return
	}
	p.focusTo(next)
}

// SelectYear jumps the focused date to the chosen year and returns to the
// calendar view. Years outside the window clamp to its edge.
func (p *Picker) SelectYear(year int) {
	if !p.open || p.mode != ModeYear {
		return
	}

	from, to := p.YearRange()
	switch {
	case year < from:
		year = from
	case year > to:
		year = to
	}

	days, err := p.cal.DaysInMonth(year, p.focused.Month)
	if err != nil {
		return
	}
	day := p.focused.Day
	if day > days {
		day = days
	}

	p.mode = ModeCalendar
	p.focusTo(engine.JalaliDate{Year: year, Month: p.focused.Month, Day: day})
}
