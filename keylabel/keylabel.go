// Package keylabel resolves key events to short display labels.
//
// Two event forms exist: the rich form carries a HID usage page, usage ID
// and modifier bytes; the positional fallback form carries only a key
// position. A host uses exactly one form, selected by its input source,
// but both decoders are plain functions so both stay testable.
package keylabel

// HID usage pages handled by the rich-form decoder.
const (
	PageKeyboard = 0x07 // Keyboard/Keypad usage page
	PageConsumer = 0x0C // Consumer Control usage page
)

// Modifier bitmasks, conventional HID modifier byte layout.
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftGUI    = 0x08
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightGUI   = 0x80
)

// Usage is the rich-form decoder input: a usage page/ID pair plus the two
// modifier bytes a keymap reports. Implicit modifiers come from the keymap
// binding itself, explicit modifiers from held modifier keys; shift
// detection must OR the two together.
type Usage struct {
	Page              uint8
	ID                uint32
	ImplicitModifiers uint8
	ExplicitModifiers uint8
}

// Shifted reports whether either shift bit is set across the combined
// implicit and explicit modifier bytes.
func (u Usage) Shifted() bool {
	return (u.ImplicitModifiers|u.ExplicitModifiers)&(ModLeftShift|ModRightShift) != 0
}

// DecodeUsage translates a rich-form key event into a display label.
//
// On the keyboard page, usage IDs 0x04..0x1D map to the letters A..Z,
// shiftable keys select between their two labels via Shifted, and other
// table entries map to literal labels. IDs without a table entry are
// unmatched. On the consumer page every ID matches: a handful of media
// keys get specific labels and everything else decodes to "MEDIA". Any
// other page is unmatched. Callers substitute their own placeholder for
// unmatched IDs; DecodeUsage never invents a label.
func DecodeUsage(u Usage) (string, bool) {
	switch u.Page {
	case PageKeyboard:
		if u.ID >= keyA && u.ID <= keyZ {
			return string(rune('A' + (u.ID - keyA))), true
		}
		if pair, ok := shiftedLabels[u.ID]; ok {
			if u.Shifted() {
				return pair[1], true
			}
			return pair[0], true
		}
		if label, ok := keyboardLabels[u.ID]; ok {
			return label, true
		}
		return "", false
	case PageConsumer:
		if label, ok := consumerLabels[u.ID]; ok {
			return label, true
		}
		return "MEDIA", true
	default:
		return "", false
	}
}

// Decoder resolves positional-form key events against a label table. The
// zero value uses the built-in table; hosts with a different physical
// layout supply their own.
type Decoder struct {
	Positions []string
}

// DefaultPositions returns a copy of the built-in positional label table.
func DefaultPositions() []string {
	out := make([]string, len(defaultPositions))
	copy(out, defaultPositions[:])
	return out
}

// DecodePosition returns the label for a key position. Out-of-range
// positions are unmatched, never an index fault.
func (d Decoder) DecodePosition(pos uint32) (string, bool) {
	table := d.Positions
	if table == nil {
		table = defaultPositions[:]
	}
	if pos >= uint32(len(table)) {
		return "", false
	}
	return table[pos], true
}
