// Package sim provides a mutable in-process implementation of the device
// state contract, used by the demo host and by tests. It stands in for
// the firmware-side battery, endpoint, BLE and keymap subsystems.
package sim

import (
	"sync"

	"github.com/kestrelkb/keyhud/devstate"
)

// Device is a simulated keyboard. Getters satisfy devstate.Device;
// mutators change the simulated hardware state. Safe for concurrent use.
type Device struct {
	mu sync.Mutex

	battery    int
	usbPowered bool

	transport        devstate.Transport
	profileIndex     int
	profileConnected [devstate.ProfileSlots]bool
	profileBonded    [devstate.ProfileSlots]bool

	layer      int
	layerNames []string
}

// New creates a simulated device in a freshly-powered-on state: full
// battery on USB power, profile 0 bonded and connected, base layer.
func New(layerNames []string) *Device {
	d := &Device{
		battery:    100,
		usbPowered: true,
		transport:  devstate.TransportUSB,
		layerNames: layerNames,
	}
	d.profileBonded[0] = true
	d.profileConnected[0] = true
	return d
}

func (d *Device) BatteryStateOfCharge() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.battery
}

func (d *Device) USBPowered() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.usbPowered
}

func (d *Device) SelectedTransport() devstate.Transport {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.transport
}

func (d *Device) BLEActiveProfileIndex() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.profileIndex
}

func (d *Device) BLEProfileConnected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.profileConnected[d.profileIndex]
}

func (d *Device) BLEProfileOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.profileBonded[d.profileIndex]
}

func (d *Device) HighestActiveLayer() (int, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.layer >= 0 && d.layer < len(d.layerNames) {
		return d.layer, d.layerNames[d.layer]
	}
	return d.layer, ""
}

// Drain lowers the battery by pct, clamped at zero, and returns the new
// state of charge.
func (d *Device) Drain(pct int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.battery -= pct
	if d.battery < 0 {
		d.battery = 0
	}
	return d.battery
}

// ToggleUSBPower flips the charge source and returns the new state.
func (d *Device) ToggleUSBPower() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.usbPowered = !d.usbPowered
	return d.usbPowered
}

// ToggleTransport switches between USB and BLE and returns the selection.
func (d *Device) ToggleTransport() devstate.Transport {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.transport == devstate.TransportUSB {
		d.transport = devstate.TransportBLE
	} else {
		d.transport = devstate.TransportUSB
	}
	return d.transport
}

// CycleProfile advances to the next BLE profile slot and returns its
// index. Odd-numbered slots are left unbonded so the pairing symbol is
// reachable in the demo; bonded slots alternate connected state.
func (d *Device) CycleProfile() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profileIndex = (d.profileIndex + 1) % devstate.ProfileSlots
	switch {
	case d.profileIndex%2 == 1:
		d.profileBonded[d.profileIndex] = false
		d.profileConnected[d.profileIndex] = false
	default:
		d.profileBonded[d.profileIndex] = true
		d.profileConnected[d.profileIndex] = d.profileIndex%4 == 0
	}
	return d.profileIndex
}

// CycleLayer advances to the next layer, wrapping after the named layers
// plus one unnamed layer (to exercise the "LAYER N" fallback).
func (d *Device) CycleLayer() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.layer = (d.layer + 1) % (len(d.layerNames) + 1)
	return d.layer
}
