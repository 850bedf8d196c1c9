package status

import "github.com/kestrelkb/keyhud/event"

type layerState struct {
	index int
	label string
}

// layerReducer owns the layer fields and redraws the bottom zone.
type layerReducer struct {
	e *Engine
}

func (r *layerReducer) state(event.Event) layerState {
	index, label := r.e.dev.HighestActiveLayer()
	return layerState{index: index, label: label}
}

func (r *layerReducer) notify(ev event.Event) {
	st := r.state(ev)
	r.e.log.Debug("layer state", "index", st.index, "label", st.label)
	r.e.reg.each(func(w *Widget) { r.apply(w, st) })
}

func (r *layerReducer) apply(w *Widget, st layerState) {
	w.state.LayerIndex = st.index
	w.state.LayerLabel = st.label
	w.redrawBottom()
}
