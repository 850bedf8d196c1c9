package keylabel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelkb/keyhud/keylabel"
)

func kbd(id uint32) keylabel.Usage {
	return keylabel.Usage{Page: keylabel.PageKeyboard, ID: id}
}

func TestDecodeUsageLetters(t *testing.T) {
	tests := []struct {
		id   uint32
		want string
	}{
		{0x04, "A"},
		{0x0D, "J"},
		{0x14, "Q"},
		{0x1D, "Z"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, ok := keylabel.DecodeUsage(kbd(tt.id))
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUsageShiftSelection(t *testing.T) {
	tests := []struct {
		name     string
		usage    keylabel.Usage
		want     string
	}{
		{
			name:  "digit unshifted",
			usage: kbd(0x1E),
			want:  "1",
		},
		{
			name: "digit explicit left shift",
			usage: keylabel.Usage{
				Page: keylabel.PageKeyboard, ID: 0x1E,
				ExplicitModifiers: keylabel.ModLeftShift,
			},
			want: "!",
		},
		{
			name: "digit implicit right shift",
			usage: keylabel.Usage{
				Page: keylabel.PageKeyboard, ID: 0x27,
				ImplicitModifiers: keylabel.ModRightShift,
			},
			want: ")",
		},
		{
			name: "shift bit split across modifier bytes",
			usage: keylabel.Usage{
				Page: keylabel.PageKeyboard, ID: 0x38,
				ImplicitModifiers: keylabel.ModLeftCtrl,
				ExplicitModifiers: keylabel.ModLeftShift,
			},
			want: "?",
		},
		{
			name: "non-shift modifiers do not shift",
			usage: keylabel.Usage{
				Page: keylabel.PageKeyboard, ID: 0x34,
				ImplicitModifiers: keylabel.ModLeftAlt,
				ExplicitModifiers: keylabel.ModRightGUI,
			},
			want: "'",
		},
		{
			name: "punctuation shifted",
			usage: keylabel.Usage{
				Page: keylabel.PageKeyboard, ID: 0x33,
				ExplicitModifiers: keylabel.ModRightShift,
			},
			want: ":",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keylabel.DecodeUsage(tt.usage)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUsageKeyboardTable(t *testing.T) {
	tests := []struct {
		id   uint32
		want string
	}{
		{0x28, "ENTER"},
		{0x29, "ESC"},
		{0x2C, "SPACE"},
		{0x3A, "F1"},
		{0x45, "F12"},
		{0x4B, "PGUP"},
		{0x52, "UP"},
		{0xE0, "LCTRL"},
		{0xE7, "RGUI"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, ok := keylabel.DecodeUsage(kbd(tt.id))
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUsageKeyboardUnmatched(t *testing.T) {
	// IDs with no table entry: non-US hash, caps lock, app key.
	for _, id := range []uint32{0x32, 0x39, 0x65, 0xFFFF} {
		got, ok := keylabel.DecodeUsage(kbd(id))
		assert.False(t, ok, "id 0x%X should be unmatched", id)
		assert.Empty(t, got)
	}
}

func TestDecodeUsageConsumer(t *testing.T) {
	tests := []struct {
		id   uint32
		want string
	}{
		{0xE2, "MUTE"},
		{0xE9, "VOL+"},
		{0xEA, "VOL-"},
		{0xB5, "NEXT"},
		{0xB6, "PREV"},
		{0xCD, "PLAY"},
		// Everything else on the consumer page still matches.
		{0x30, "MEDIA"},
		{0x94, "MEDIA"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, ok := keylabel.DecodeUsage(keylabel.Usage{Page: keylabel.PageConsumer, ID: tt.id})
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUsageUnknownPage(t *testing.T) {
	got, ok := keylabel.DecodeUsage(keylabel.Usage{Page: 0x01, ID: 0x04})
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestDecodePosition(t *testing.T) {
	var d keylabel.Decoder
	tests := []struct {
		pos     uint32
		want    string
		matched bool
	}{
		{0, "TAB", true},
		{6, "MUTE", true},
		{13, "BSPC", true},
		{43, "SPACE", true},
		{45, "GUI", true},
		{46, "", false},
		{999, "", false},
	}
	for _, tt := range tests {
		got, ok := d.DecodePosition(tt.pos)
		assert.Equal(t, tt.matched, ok, "position %d", tt.pos)
		assert.Equal(t, tt.want, got, "position %d", tt.pos)
	}
}

func TestDecodePositionCustomTable(t *testing.T) {
	d := keylabel.Decoder{Positions: []string{"FOO", "BAR"}}

	got, ok := d.DecodePosition(1)
	assert.True(t, ok)
	assert.Equal(t, "BAR", got)

	_, ok = d.DecodePosition(2)
	assert.False(t, ok)
}

func TestDecodeUsageDeterministic(t *testing.T) {
	var d keylabel.Decoder
	for page := uint8(0x06); page <= 0x0D; page++ {
		for id := uint32(0); id <= 0x100; id++ {
			u := keylabel.Usage{Page: page, ID: id, ExplicitModifiers: keylabel.ModLeftShift}
			l1, ok1 := keylabel.DecodeUsage(u)
			l2, ok2 := keylabel.DecodeUsage(u)
			assert.Equal(t, l1, l2)
			assert.Equal(t, ok1, ok2)
		}
	}
	for pos := uint32(0); pos < 50; pos++ {
		l1, ok1 := d.DecodePosition(pos)
		l2, ok2 := d.DecodePosition(pos)
		assert.Equal(t, l1, l2)
		assert.Equal(t, ok1, ok2)
	}
}
