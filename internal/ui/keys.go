package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/tartampluch/go-shamsi/internal/config"
	"github.com/tartampluch/go-shamsi/internal/picker"
)

// keyNames maps Fyne key events to picker commands. Return and the numpad
// Enter behave the same.
var keyNames = map[fyne.KeyName]picker.Key{
	fyne.KeyW:      picker.KeyW,
	fyne.KeyA:      picker.KeyA,
	fyne.KeyS:      picker.KeyS,
	fyne.KeyD:      picker.KeyD,
	fyne.KeyReturn: picker.KeyEnter,
	fyne.KeyEnter:  picker.KeyEnter,
	fyne.KeyEscape: picker.KeyEscape,
}

// KeyBinding routes canvas key events into a Picker while it is open. The
// previous canvas handler is kept and restored on release, and any event the
// picker does not consume falls through to it, so host shortcuts keep
// working outside the calendar view.
type KeyBinding struct {
	canvas fyne.Canvas
	pick   *picker.Picker
	prev   func(*fyne.KeyEvent)
	bound  bool
}

// BindKeys installs the key handler on the canvas. Callers that close the
// picker programmatically should call Release; the binding also releases
// itself when a consumed key closes the picker, and on the first event after
// it notices the picker is closed.
func BindKeys(canvas fyne.Canvas, p *picker.Picker) *KeyBinding {
	kb := &KeyBinding{
		canvas: canvas,
		pick:   p,
		prev:   canvas.OnTypedKey(),
		bound:  true,
	}
	canvas.SetOnTypedKey(kb.handle)

	slog.Debug(config.MsgKeysBound, config.LogKeyComponent, config.CompUI)
	return kb
}

func (kb *KeyBinding) handle(ev *fyne.KeyEvent) {
	if !kb.pick.GetState().Open {
		prev := kb.prev
		kb.Release()
		if prev != nil {
			prev(ev)
		}
		return
	}

	k, consumed := keyNames[ev.Name]
	if consumed {
		consumed = kb.pick.HandleKey(k)
	}
	if !consumed {
		if kb.prev != nil {
			kb.prev(ev)
		}
		return
	}

	slog.Debug(config.MsgKeyConsumed,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyKeyName, k.String())

	// Enter and Escape close the picker from calendar mode.
	if !kb.pick.GetState().Open {
		kb.Release()
	}
}

// Release restores the previous canvas handler. Releasing twice is safe.
func (kb *KeyBinding) Release() {
	if !kb.bound {
		return
	}
	kb.bound = false
	kb.canvas.SetOnTypedKey(kb.prev)
	kb.prev = nil

	slog.Debug(config.MsgKeysReleased, config.LogKeyComponent, config.CompUI)
}

// Bound reports whether the binding currently owns the canvas handler.
func (kb *KeyBinding) Bound() bool {
	return kb.bound
}
