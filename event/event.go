// Package event defines the typed domain events delivered to the status
// engine. Payloads mirror what the firmware-side producers report; where a
// reducer prefers live getters over the payload, the payload is minimal.
package event

import "github.com/kestrelkb/keyhud/devstate"

// Kind discriminates event types for subscription routing.
type Kind int

const (
	KindBatteryStateChanged Kind = iota
	KindUSBConnStateChanged
	KindEndpointChanged
	KindBLEActiveProfileChanged
	KindLayerStateChanged
	KindKeycodeStateChanged
	KindPositionStateChanged
)

func (k Kind) String() string {
	switch k {
	case KindBatteryStateChanged:
		return "battery-state-changed"
	case KindUSBConnStateChanged:
		return "usb-conn-state-changed"
	case KindEndpointChanged:
		return "endpoint-changed"
	case KindBLEActiveProfileChanged:
		return "ble-active-profile-changed"
	case KindLayerStateChanged:
		return "layer-state-changed"
	case KindKeycodeStateChanged:
		return "keycode-state-changed"
	case KindPositionStateChanged:
		return "position-state-changed"
	default:
		return "unknown"
	}
}

// Event is implemented by every domain event.
type Event interface {
	EventKind() Kind
}

// BatteryStateChanged reports a new battery state of charge.
type BatteryStateChanged struct {
	StateOfCharge int
}

func (BatteryStateChanged) EventKind() Kind { return KindBatteryStateChanged }

// USBConnStateChanged reports a USB connection state transition.
type USBConnStateChanged struct {
	Connected bool
}

func (USBConnStateChanged) EventKind() Kind { return KindUSBConnStateChanged }

// EndpointChanged reports that the selected endpoint transport changed.
type EndpointChanged struct {
	Transport devstate.Transport
}

func (EndpointChanged) EventKind() Kind { return KindEndpointChanged }

// BLEActiveProfileChanged reports a BLE profile selection or state change.
type BLEActiveProfileChanged struct {
	Index int
}

func (BLEActiveProfileChanged) EventKind() Kind { return KindBLEActiveProfileChanged }

// LayerStateChanged reports a keymap layer activation change.
type LayerStateChanged struct {
	Layer  int
	Active bool
}

func (LayerStateChanged) EventKind() Kind { return KindLayerStateChanged }

// KeycodeStateChanged is the rich key event form: a HID usage code with
// modifier state.
type KeycodeStateChanged struct {
	UsagePage         uint8
	Keycode           uint32
	ImplicitModifiers uint8
	ExplicitModifiers uint8
	Pressed           bool
}

func (KeycodeStateChanged) EventKind() Kind { return KindKeycodeStateChanged }

// PositionStateChanged is the fallback key event form, carrying only the
// physical key position.
type PositionStateChanged struct {
	Position uint32
	Pressed  bool
}

func (PositionStateChanged) EventKind() Kind { return KindPositionStateChanged }
