// Package devstate defines the read-only device-state contract the status
// engine queries when it needs current values rather than event payloads.
package devstate

// Transport identifies the active communication endpoint.
type Transport int

const (
	TransportUSB Transport = iota
	TransportBLE
)

func (t Transport) String() string {
	switch t {
	case TransportUSB:
		return "USB"
	case TransportBLE:
		return "BLE"
	default:
		return "unknown"
	}
}

// ProfileSlots is the fixed number of BLE profile slots.
const ProfileSlots = 5

// Device exposes the current device state. All methods are synchronous,
// non-blocking and side-effect free from the caller's perspective.
type Device interface {
	// BatteryStateOfCharge returns the battery percentage, 0..100.
	BatteryStateOfCharge() int
	// USBPowered reports whether USB power is present (charge source).
	USBPowered() bool
	// SelectedTransport returns the currently selected endpoint transport.
	SelectedTransport() Transport
	// BLEActiveProfileIndex returns the active profile slot, 0..ProfileSlots-1.
	BLEActiveProfileIndex() int
	// BLEProfileConnected reports whether the active profile has a live
	// connection.
	BLEProfileConnected() bool
	// BLEProfileOpen reports whether the active profile is open for
	// pairing, i.e. not bonded to a host.
	BLEProfileOpen() bool
	// HighestActiveLayer returns the index of the highest-priority active
	// keymap layer and its display name. An empty name means the layer has
	// no explicit label.
	HighestActiveLayer() (index int, label string)
}
