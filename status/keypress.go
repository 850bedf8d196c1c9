package status

import (
	"strconv"
	"time"

	"github.com/kestrelkb/keyhud/event"
	"github.com/kestrelkb/keyhud/keylabel"
)

// keypressRenderInterval rate-limits key-triggered redraws. Key repeat and
// switch bounce fire far faster than the display can usefully refresh.
const keypressRenderInterval = 100 * time.Millisecond

// keypressReducer owns LastKey and ShowLastKey and redraws the top zone.
// It also owns the process-wide debounce timestamp: the rate limit is
// bound to the display refresh, not to any one widget.
type keypressReducer struct {
	e   *Engine
	dec keylabel.Decoder

	now  func() time.Time
	last time.Time
	seen bool
}

func (r *keypressReducer) notify(ev event.Event) {
	// Releases never update the label; the last pressed key stays shown.
	// A nil event (initial seeding) carries no press either.
	var label string
	switch k := ev.(type) {
	case event.KeycodeStateChanged:
		if !k.Pressed {
			return
		}
		if !r.debounce() {
			return
		}
		l, ok := keylabel.DecodeUsage(keylabel.Usage{
			Page:              k.UsagePage,
			ID:                k.Keycode,
			ImplicitModifiers: k.ImplicitModifiers,
			ExplicitModifiers: k.ExplicitModifiers,
		})
		if !ok {
			l = "KEY"
		}
		label = l
	case event.PositionStateChanged:
		if !k.Pressed {
			return
		}
		if !r.debounce() {
			return
		}
		l, ok := r.dec.DecodePosition(k.Position)
		if !ok {
			l = "K" + strconv.FormatUint(uint64(k.Position), 10)
		}
		label = l
	default:
		return
	}

	r.e.log.Debug("key pressed", "label", label)
	r.e.reg.each(func(w *Widget) { r.apply(w, label) })
}

// debounce reports whether this press may render, and if so advances the
// shared timestamp. Rejected presses are dropped without touching state.
func (r *keypressReducer) debounce() bool {
	now := r.now()
	if r.seen && now.Sub(r.last) < keypressRenderInterval {
		return false
	}
	r.last = now
	r.seen = true
	return true
}

func (r *keypressReducer) apply(w *Widget, label string) {
	w.state.setLastKey(label)
	w.state.ShowLastKey = true
	w.redrawTop()
}
