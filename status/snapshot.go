// Package status maintains the composite display state for keyboard
// status widgets. Four reducers each own a disjoint slice of a per-widget
// snapshot; every reducer firing merges its state into all registered
// widgets and redraws only the zones it owns.
package status

import (
	"strconv"

	"github.com/kestrelkb/keyhud/devstate"
	"github.com/kestrelkb/keyhud/render"
)

// MaxKeyLabel is the visible-glyph capacity of the last-key box. Longer
// labels are truncated on write.
const MaxKeyLabel = 9

// Snapshot is the full display state of one widget. Each field is written
// by exactly one reducer; zone builders read it as a whole.
type Snapshot struct {
	BatteryLevel int
	Charging     bool

	Transport              devstate.Transport
	ActiveProfileIndex     int
	ActiveProfileConnected bool
	ActiveProfileBonded    bool

	LayerIndex int
	LayerLabel string

	LastKey     string
	ShowLastKey bool
}

// top builds the top-zone render state: battery, connection symbol and the
// last-key box.
func (s *Snapshot) top() render.TopZone {
	return render.TopZone{
		BatteryLevel: s.BatteryLevel,
		Charging:     s.Charging,
		Connection:   s.connectionSymbol(),
		LastKey:      s.LastKey,
		ShowLastKey:  s.ShowLastKey,
	}
}

func (s *Snapshot) connectionSymbol() string {
	switch s.Transport {
	case devstate.TransportUSB:
		return render.SymbolUSB
	case devstate.TransportBLE:
		if !s.ActiveProfileBonded {
			return render.SymbolBLEOpen
		}
		if s.ActiveProfileConnected {
			return render.SymbolBLEConnected
		}
		return render.SymbolBLEDisconnected
	default:
		return ""
	}
}

// middle builds the profile selector state. Slots are labeled 1..5; the
// slot matching the active profile index is selected. An out-of-range
// index selects nothing rather than faulting.
func (s *Snapshot) middle() render.MiddleZone {
	var z render.MiddleZone
	for i := range z.Slots {
		z.Slots[i] = render.Slot{
			Label:    strconv.Itoa(i + 1),
			Selected: i == s.ActiveProfileIndex,
		}
	}
	return z
}

// bottom builds the layer indicator state, synthesizing "LAYER N" when the
// layer has no explicit label.
func (s *Snapshot) bottom() render.BottomZone {
	if s.LayerLabel == "" {
		return render.BottomZone{Text: "LAYER " + strconv.Itoa(s.LayerIndex)}
	}
	return render.BottomZone{Text: s.LayerLabel}
}

// setLastKey writes the last-key label, truncated to MaxKeyLabel glyphs.
func (s *Snapshot) setLastKey(label string) {
	if len(label) > MaxKeyLabel {
		label = label[:MaxKeyLabel]
	}
	s.LastKey = label
}
