package status

import "github.com/kestrelkb/keyhud/render"

// Widget pairs one snapshot with the renderer that displays it. A widget
// is created at registration and lives for the display's lifetime; the
// registry holds only a non-owning reference.
type Widget struct {
	state Snapshot
	out   render.Renderer
}

// Snapshot returns a copy of the widget's current state.
func (w *Widget) Snapshot() Snapshot { return w.state }

func (w *Widget) redrawTop()    { w.out.DrawTop(w.state.top()) }
func (w *Widget) redrawMiddle() { w.out.DrawMiddle(w.state.middle()) }
func (w *Widget) redrawBottom() { w.out.DrawBottom(w.state.bottom()) }

// registry is the ordered collection of registered widgets. Iteration
// order is registration order, always.
type registry struct {
	widgets []*Widget
}

func (r *registry) add(w *Widget) { r.widgets = append(r.widgets, w) }

func (r *registry) each(f func(*Widget)) {
	for _, w := range r.widgets {
		f(w)
	}
}
