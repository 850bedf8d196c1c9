package status

import (
	"log/slog"
	"time"

	"github.com/kestrelkb/keyhud/devstate"
	"github.com/kestrelkb/keyhud/event"
	"github.com/kestrelkb/keyhud/eventbus"
	"github.com/kestrelkb/keyhud/keylabel"
	"github.com/kestrelkb/keyhud/render"
)

// Engine owns the widget registry and the four state reducers. All entry
// points (AddWidget and bus-delivered events) must run on the same
// goroutine; the engine holds no locks.
type Engine struct {
	dev devstate.Device
	log *slog.Logger
	reg registry

	battery  batteryReducer
	endpoint endpointReducer
	layer    layerReducer
	keypress keypressReducer
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.log = logger }
}

// WithClock overrides the monotonic clock used for keypress debouncing.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.keypress.now = now }
}

// WithPositionLabels replaces the built-in positional label table.
func WithPositionLabels(labels []string) Option {
	return func(e *Engine) { e.keypress.dec = keylabel.Decoder{Positions: labels} }
}

// New creates an engine reading current state from dev.
func New(dev devstate.Device, opts ...Option) *Engine {
	e := &Engine{
		dev: dev,
		log: slog.New(slog.DiscardHandler),
	}
	e.battery.e = e
	e.endpoint.e = e
	e.layer.e = e
	e.keypress.e = e
	e.keypress.now = time.Now
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddWidget registers a new widget and seeds its zones from current device
// state, the same path an event would take but with no event attached. The
// keypress reducer has nothing to seed: with no event there is no press.
func (e *Engine) AddWidget(out render.Renderer) *Widget {
	w := &Widget{out: out}
	e.reg.add(w)
	e.battery.notify(nil)
	e.endpoint.notify(nil)
	e.layer.notify(nil)
	return w
}

// Widgets returns the registered widgets in registration order.
func (e *Engine) Widgets() []*Widget {
	out := make([]*Widget, len(e.reg.widgets))
	copy(out, e.reg.widgets)
	return out
}

// Attach subscribes the reducers to the event kinds they own. USB
// connection changes feed both the battery reducer (charge source) and
// the endpoint reducer (selected endpoint may flip).
func (e *Engine) Attach(bus *eventbus.Bus) {
	bus.Subscribe(event.KindBatteryStateChanged, e.battery.notify)
	bus.Subscribe(event.KindUSBConnStateChanged, e.battery.notify)

	bus.Subscribe(event.KindEndpointChanged, e.endpoint.notify)
	bus.Subscribe(event.KindUSBConnStateChanged, e.endpoint.notify)
	bus.Subscribe(event.KindBLEActiveProfileChanged, e.endpoint.notify)

	bus.Subscribe(event.KindLayerStateChanged, e.layer.notify)

	bus.Subscribe(event.KindKeycodeStateChanged, e.keypress.notify)
	bus.Subscribe(event.KindPositionStateChanged, e.keypress.notify)
}
