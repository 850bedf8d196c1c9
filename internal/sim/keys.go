package sim

import "github.com/kestrelkb/keyhud/keylabel"

// charToUsage maps typeable ASCII characters to keyboard-page usage IDs.
// Shifted characters map to the same ID as their base key.
var charToUsage = map[rune]uint32{
	'a': 0x04, 'b': 0x05, 'c': 0x06, 'd': 0x07, 'e': 0x08, 'f': 0x09,
	'g': 0x0A, 'h': 0x0B, 'i': 0x0C, 'j': 0x0D, 'k': 0x0E, 'l': 0x0F,
	'm': 0x10, 'n': 0x11, 'o': 0x12, 'p': 0x13, 'q': 0x14, 'r': 0x15,
	's': 0x16, 't': 0x17, 'u': 0x18, 'v': 0x19, 'w': 0x1A, 'x': 0x1B,
	'y': 0x1C, 'z': 0x1D,

	'1': 0x1E, '2': 0x1F, '3': 0x20, '4': 0x21, '5': 0x22,
	'6': 0x23, '7': 0x24, '8': 0x25, '9': 0x26, '0': 0x27,

	'!': 0x1E, '@': 0x1F, '#': 0x20, '$': 0x21, '%': 0x22,
	'^': 0x23, '&': 0x24, '*': 0x25, '(': 0x26, ')': 0x27,

	' ': 0x2C,
	'-': 0x2D, '=': 0x2E, '[': 0x2F, ']': 0x30, '\\': 0x31,
	';': 0x33, '\'': 0x34, '`': 0x35, ',': 0x36, '.': 0x37, '/': 0x38,

	'_': 0x2D, '+': 0x2E, '{': 0x2F, '}': 0x30, '|': 0x31,
	':': 0x33, '"': 0x34, '~': 0x35, '<': 0x36, '>': 0x37, '?': 0x38,
}

// shiftedChars are the characters that require a shift modifier.
var shiftedChars = map[rune]bool{
	'!': true, '@': true, '#': true, '$': true, '%': true,
	'^': true, '&': true, '*': true, '(': true, ')': true,
	'_': true, '+': true, '{': true, '}': true, '|': true,
	':': true, '"': true, '~': true, '<': true, '>': true, '?': true,
}

// UsageFromRune translates a typed character into the rich key event
// form. Uppercase letters and shifted symbols carry the left-shift bit as
// an explicit modifier.
func UsageFromRune(r rune) (keylabel.Usage, bool) {
	shifted := shiftedChars[r]
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
		shifted = true
	}
	id, ok := charToUsage[r]
	if !ok {
		return keylabel.Usage{}, false
	}
	u := keylabel.Usage{Page: keylabel.PageKeyboard, ID: id}
	if shifted {
		u.ExplicitModifiers = keylabel.ModLeftShift
	}
	return u, true
}
