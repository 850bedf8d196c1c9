package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/kestrelkb/keyhud/event"
	"github.com/kestrelkb/keyhud/eventbus"
	"github.com/kestrelkb/keyhud/internal/config"
	"github.com/kestrelkb/keyhud/internal/sim"
	"github.com/kestrelkb/keyhud/internal/tui"
	"github.com/kestrelkb/keyhud/keylabel"
	"github.com/kestrelkb/keyhud/render"
	"github.com/kestrelkb/keyhud/status"
)

// defaultLayerNames name the simulated keymap layers. The simulator cycles
// one index past the named layers to show the "LAYER N" fallback.
var defaultLayerNames = []string{"BASE", "LOWER", "RAISE"}

// Demo runs a simulated keyboard behind the status engine, rendering into
// a terminal UI. Typed keys become key events; control chords mutate the
// simulated device and publish the matching domain event.
type Demo struct {
	Widgets    int           `help:"Number of widget instances to register" default:"1"`
	Positional bool          `help:"Emit positional key events instead of HID usage events"`
	Layout     string        `help:"Path to a YAML layout file" type:"existingfile" optional:""`
	Flip       bool          `help:"Flip the zone stacking order (rotated display)"`
	DrainEvery time.Duration `help:"Simulated battery drain interval" default:"15s"`
}

// Run is called by kong when the demo command executes.
func (c *Demo) Run(logger *slog.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the demo needs a terminal on stdout")
	}
	if c.Widgets < 1 {
		return fmt.Errorf("at least one widget is required, got %d", c.Widgets)
	}

	layerNames := defaultLayerNames
	var layout *config.Layout
	if c.Layout != "" {
		var err error
		layout, err = config.LoadLayout(c.Layout)
		if err != nil {
			return err
		}
		if len(layout.LayerNames) > 0 {
			layerNames = layout.LayerNames
		}
	}

	dev := sim.New(layerNames)
	bus := eventbus.New(logger)

	opts := []status.Option{status.WithLogger(logger)}
	if layout != nil && len(layout.PositionLabels) > 0 {
		opts = append(opts, status.WithPositionLabels(layout.PositionLabels))
	}
	engine := status.New(dev, opts...)

	// All engine and bus access funnels through one goroutine; UI
	// callbacks enqueue work instead of touching the bus directly.
	work := make(chan func(), 64)
	enqueue := func(f func()) {
		select {
		case work <- f:
		default:
			logger.Warn("dropping input, event queue saturated")
		}
	}

	ui := tui.New(tui.Options{
		Flipped: c.Flip,
		OnKey: func(k tui.KeyInput) {
			enqueue(func() { c.publishKey(bus, k) })
		},
		OnAction: func(a tui.Action) {
			enqueue(func() { applyAction(bus, dev, a) })
		},
	})

	stop := make(chan struct{})
	go func() {
		ui.WaitReady()
		engine.AddWidget(ui.Renderer())
		for i := 1; i < c.Widgets; i++ {
			engine.AddWidget(render.NewLogging(logger, fmt.Sprintf("widget-%d", i)))
		}
		engine.Attach(bus)

		drain := time.NewTicker(c.DrainEvery)
		defer drain.Stop()
		for {
			select {
			case f := <-work:
				f()
			case <-drain.C:
				if !dev.USBPowered() {
					bus.Publish(event.BatteryStateChanged{StateOfCharge: dev.Drain(1)})
				}
			case <-stop:
				return
			}
		}
	}()

	err := ui.Run()
	close(stop)
	return err
}

// publishKey turns a UI keystroke into a press/release event pair in the
// configured event form.
func (c *Demo) publishKey(bus *eventbus.Bus, k tui.KeyInput) {
	if c.Positional {
		pos := positionFor(k)
		bus.Publish(event.PositionStateChanged{Position: pos, Pressed: true})
		bus.Publish(event.PositionStateChanged{Position: pos, Pressed: false})
		return
	}

	u, ok := usageFor(k)
	if !ok {
		return
	}
	press := event.KeycodeStateChanged{
		UsagePage:         u.Page,
		Keycode:           u.ID,
		ImplicitModifiers: u.ImplicitModifiers,
		ExplicitModifiers: u.ExplicitModifiers,
		Pressed:           true,
	}
	bus.Publish(press)
	press.Pressed = false
	bus.Publish(press)
}

// specialUsages maps special keys to keyboard-page usage IDs.
var specialUsages = map[tui.Special]uint32{
	tui.SpecialEnter:     0x28,
	tui.SpecialEsc:       0x29,
	tui.SpecialBackspace: 0x2A,
	tui.SpecialTab:       0x2B,
	tui.SpecialRight:     0x4F,
	tui.SpecialLeft:      0x50,
	tui.SpecialDown:      0x51,
	tui.SpecialUp:        0x52,
}

func usageFor(k tui.KeyInput) (keylabel.Usage, bool) {
	if k.Special != tui.SpecialNone {
		id, ok := specialUsages[k.Special]
		if !ok {
			return keylabel.Usage{}, false
		}
		return keylabel.Usage{Page: keylabel.PageKeyboard, ID: id}, true
	}
	return sim.UsageFromRune(k.Rune)
}

// specialLabels maps special keys to their positional table labels.
var specialLabels = map[tui.Special]string{
	tui.SpecialEnter:     "ENTER",
	tui.SpecialEsc:       "ESC",
	tui.SpecialBackspace: "BSPC",
	tui.SpecialTab:       "TAB",
}

// positionFor locates a keystroke in the positional label table. Keys with
// no position deliberately map past the table so the "K<position>"
// placeholder path is visible in the demo.
func positionFor(k tui.KeyInput) uint32 {
	label, ok := specialLabels[k.Special]
	if !ok {
		label = strings.ToUpper(string(k.Rune))
	}
	if k.Rune == ' ' {
		label = "SPACE"
	}
	for i, l := range keylabel.DefaultPositions() {
		if l == label {
			return uint32(i)
		}
	}
	return uint32(len(keylabel.DefaultPositions()) + 53)
}

// applyAction mutates the simulated device, then publishes the event a
// real device would emit for that change.
func applyAction(bus *eventbus.Bus, dev *sim.Device, a tui.Action) {
	switch a {
	case tui.ActionToggleTransport:
		bus.Publish(event.EndpointChanged{Transport: dev.ToggleTransport()})
	case tui.ActionCycleProfile:
		bus.Publish(event.BLEActiveProfileChanged{Index: dev.CycleProfile()})
	case tui.ActionCycleLayer:
		bus.Publish(event.LayerStateChanged{Layer: dev.CycleLayer(), Active: true})
	case tui.ActionToggleCharger:
		bus.Publish(event.USBConnStateChanged{Connected: dev.ToggleUSBPower()})
	case tui.ActionDrainBattery:
		bus.Publish(event.BatteryStateChanged{StateOfCharge: dev.Drain(5)})
	}
}
