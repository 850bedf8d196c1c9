package status

import (
	"github.com/kestrelkb/keyhud/devstate"
	"github.com/kestrelkb/keyhud/event"
)

type endpointState struct {
	transport devstate.Transport
	profile   int
	connected bool
	bonded    bool
}

// endpointReducer owns the transport and BLE profile fields. It redraws
// the top zone (connection symbol) and the middle zone (profile selector).
type endpointReducer struct {
	e *Engine
}

// state always reads the getters; endpoint events signal that something
// changed but the getters are the source of truth for what is now active.
func (r *endpointReducer) state(event.Event) endpointState {
	return endpointState{
		transport: r.e.dev.SelectedTransport(),
		profile:   r.e.dev.BLEActiveProfileIndex(),
		connected: r.e.dev.BLEProfileConnected(),
		bonded:    !r.e.dev.BLEProfileOpen(),
	}
}

func (r *endpointReducer) notify(ev event.Event) {
	st := r.state(ev)
	r.e.log.Debug("endpoint state",
		"transport", st.transport.String(),
		"profile", st.profile,
		"connected", st.connected,
		"bonded", st.bonded)
	r.e.reg.each(func(w *Widget) { r.apply(w, st) })
}

func (r *endpointReducer) apply(w *Widget, st endpointState) {
	w.state.Transport = st.transport
	w.state.ActiveProfileIndex = st.profile
	w.state.ActiveProfileConnected = st.connected
	w.state.ActiveProfileBonded = st.bonded
	w.redrawTop()
	w.redrawMiddle()
}
