package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelkb/keyhud/devstate"
	"github.com/kestrelkb/keyhud/internal/sim"
	"github.com/kestrelkb/keyhud/keylabel"
)

func TestNewDeviceDefaults(t *testing.T) {
	d := sim.New([]string{"BASE", "LOWER"})

	assert.Equal(t, 100, d.BatteryStateOfCharge())
	assert.True(t, d.USBPowered())
	assert.Equal(t, devstate.TransportUSB, d.SelectedTransport())
	assert.Equal(t, 0, d.BLEActiveProfileIndex())
	assert.True(t, d.BLEProfileConnected())
	assert.False(t, d.BLEProfileOpen())

	index, label := d.HighestActiveLayer()
	assert.Equal(t, 0, index)
	assert.Equal(t, "BASE", label)
}

func TestDrainClampsAtZero(t *testing.T) {
	d := sim.New(nil)
	assert.Equal(t, 40, d.Drain(60))
	assert.Equal(t, 0, d.Drain(60))
	assert.Equal(t, 0, d.Drain(5))
}

func TestCycleProfileStaysInRange(t *testing.T) {
	d := sim.New(nil)
	seen := map[int]bool{}
	for i := 0; i < devstate.ProfileSlots*2; i++ {
		idx := d.CycleProfile()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, devstate.ProfileSlots)
		seen[idx] = true
	}
	assert.Len(t, seen, devstate.ProfileSlots)
}

func TestCycleLayerWrapsPastNamedLayers(t *testing.T) {
	d := sim.New([]string{"BASE", "LOWER"})

	assert.Equal(t, 1, d.CycleLayer())
	_, label := d.HighestActiveLayer()
	assert.Equal(t, "LOWER", label)

	// One unnamed layer past the named ones exercises the fallback text.
	assert.Equal(t, 2, d.CycleLayer())
	_, label = d.HighestActiveLayer()
	assert.Empty(t, label)

	assert.Equal(t, 0, d.CycleLayer())
}

func TestToggleTransport(t *testing.T) {
	d := sim.New(nil)
	assert.Equal(t, devstate.TransportBLE, d.ToggleTransport())
	assert.Equal(t, devstate.TransportUSB, d.ToggleTransport())
}

func TestUsageFromRune(t *testing.T) {
	tests := []struct {
		name    string
		r       rune
		id      uint32
		shifted bool
		ok      bool
	}{
		{"lowercase letter", 'a', 0x04, false, true},
		{"uppercase letter", 'Z', 0x1D, true, true},
		{"digit", '5', 0x22, false, true},
		{"shifted digit symbol", '!', 0x1E, true, true},
		{"space", ' ', 0x2C, false, true},
		{"shifted punctuation", '?', 0x38, true, true},
		{"unmapped rune", 'ä', 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := sim.UsageFromRune(tt.r)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, uint8(keylabel.PageKeyboard), u.Page)
			assert.Equal(t, tt.id, u.ID)
			assert.Equal(t, tt.shifted, u.Shifted())
		})
	}
}
