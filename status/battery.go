package status

import "github.com/kestrelkb/keyhud/event"

type batteryState struct {
	level    int
	charging bool
}

// batteryReducer owns BatteryLevel and Charging and redraws the top zone.
type batteryReducer struct {
	e *Engine
}

// state builds the reducer state. A battery event carries the new state of
// charge; any other trigger (USB connection change, initial seeding) reads
// the getter. The charge source is always read live.
func (r *batteryReducer) state(ev event.Event) batteryState {
	st := batteryState{charging: r.e.dev.USBPowered()}
	if b, ok := ev.(event.BatteryStateChanged); ok {
		st.level = b.StateOfCharge
	} else {
		st.level = r.e.dev.BatteryStateOfCharge()
	}
	return st
}

func (r *batteryReducer) notify(ev event.Event) {
	st := r.state(ev)
	r.e.log.Debug("battery state", "level", st.level, "charging", st.charging)
	r.e.reg.each(func(w *Widget) { r.apply(w, st) })
}

func (r *batteryReducer) apply(w *Widget, st batteryState) {
	w.state.BatteryLevel = st.level
	w.state.Charging = st.charging
	w.redrawTop()
}
