// Package render defines the contract between the status engine and a
// display backend. The engine hands a backend finished per-zone values;
// how they become pixels (or terminal cells) is the backend's business.
package render

import "github.com/kestrelkb/keyhud/devstate"

// Connection symbols shown in the top zone. A graphics backend may map
// these to icon glyphs; text backends show them as-is.
const (
	SymbolUSB             = "USB" // USB endpoint selected
	SymbolBLEConnected    = "BT"  // bonded profile with live connection
	SymbolBLEDisconnected = "X"   // bonded profile, no connection
	SymbolBLEOpen         = "ADV" // unbonded profile, advertising for pairing
)

// TopZone is the rendered state of the top zone: battery, connection
// status and the last-key box.
type TopZone struct {
	BatteryLevel int
	Charging     bool
	Connection   string
	LastKey      string
	ShowLastKey  bool
}

// Slot is one BLE profile position in the middle zone.
type Slot struct {
	Label    string
	Selected bool
}

// MiddleZone is the rendered state of the profile selector: a fixed set of
// slots, exactly one selected.
type MiddleZone struct {
	Slots [devstate.ProfileSlots]Slot
}

// BottomZone is the rendered state of the layer indicator.
type BottomZone struct {
	Text string
}

// Renderer redraws one zone from its finished state. Implementations must
// not feed back into the status snapshot; draws are assumed idempotent.
type Renderer interface {
	DrawTop(TopZone)
	DrawMiddle(MiddleZone)
	DrawBottom(BottomZone)
}
