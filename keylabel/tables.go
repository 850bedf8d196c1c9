package keylabel

// Letter range on the keyboard page.
const (
	keyA = 0x04
	keyZ = 0x1D
)

// shiftedLabels maps keyboard-page usage IDs with two faces to their
// [unshifted, shifted] labels.
var shiftedLabels = map[uint32][2]string{
	0x1E: {"1", "!"},
	0x1F: {"2", "@"},
	0x20: {"3", "#"},
	0x21: {"4", "$"},
	0x22: {"5", "%"},
	0x23: {"6", "^"},
	0x24: {"7", "&"},
	0x25: {"8", "*"},
	0x26: {"9", "("},
	0x27: {"0", ")"},
	0x2D: {"-", "_"},
	0x2E: {"=", "+"},
	0x2F: {"[", "{"},
	0x30: {"]", "}"},
	0x31: {"\\", "|"},
	0x33: {";", ":"},
	0x34: {"'", "\""},
	0x35: {"`", "~"},
	0x36: {",", "<"},
	0x37: {".", ">"},
	0x38: {"/", "?"},
}

// keyboardLabels maps the remaining keyboard-page usage IDs to fixed labels.
var keyboardLabels = map[uint32]string{
	0x28: "ENTER",
	0x29: "ESC",
	0x2A: "BSPC",
	0x2B: "TAB",
	0x2C: "SPACE",

	// Function row
	0x3A: "F1",
	0x3B: "F2",
	0x3C: "F3",
	0x3D: "F4",
	0x3E: "F5",
	0x3F: "F6",
	0x40: "F7",
	0x41: "F8",
	0x42: "F9",
	0x43: "F10",
	0x44: "F11",
	0x45: "F12",

	// Navigation
	0x4A: "HOME",
	0x4B: "PGUP",
	0x4C: "DEL",
	0x4D: "END",
	0x4E: "PGDN",
	0x4F: "RIGHT",
	0x50: "LEFT",
	0x51: "DOWN",
	0x52: "UP",

	// Modifiers
	0xE0: "LCTRL",
	0xE1: "LSHFT",
	0xE2: "LALT",
	0xE3: "LGUI",
	0xE4: "RCTRL",
	0xE5: "RSHFT",
	0xE6: "RALT",
	0xE7: "RGUI",
}

// consumerLabels maps consumer-page usage IDs to media key labels. IDs not
// listed here decode to the generic "MEDIA" label.
var consumerLabels = map[uint32]string{
	0xE2: "MUTE",
	0xE9: "VOL+",
	0xEA: "VOL-",
	0xB5: "NEXT",
	0xB6: "PREV",
	0xCD: "PLAY",
}

// defaultPositions is the built-in positional label table, ordered by key
// position on a 46-key split layout.
var defaultPositions = [...]string{
	"TAB", "Q", "W", "E", "R", "T", "MUTE", "PP", "Y", "U", "I", "O", "P", "BSPC",
	"ESC", "A", "S", "D", "F", "G", "LALT", "RALT", "H", "J", "K", "L", ";", "'",
	"LSHFT", "Z", "X", "C", "V", "B", "N", "M", ",", ".", "/", "ENTER",
	"ALT", "LOWER", "LCTRL", "SPACE", "RAISE", "GUI",
}
