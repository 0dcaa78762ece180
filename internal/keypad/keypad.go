package keypad

import (
	"fmt"
	"strings"
	"unicode"
)

const KEYS = 16

// Layout maps host characters onto the hex keypad
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
type Layout map[rune]uint8

var (
	Qwerty = Layout{
		'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
		'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
		'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
		'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
	}
	Dvorak = Layout{
		'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
		'\'': 0x4, ',': 0x5, '.': 0x6, 'p': 0xD,
		'a': 0x7, 'o': 0x8, 'e': 0x9, 'u': 0xE,
		';': 0xA, 'q': 0x0, 'j': 0xB, 'k': 0xF,
	}
	Colemak = Layout{
		'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
		'q': 0x4, 'w': 0x5, 'f': 0x6, 'p': 0xD,
		'a': 0x7, 'r': 0x8, 's': 0x9, 't': 0xE,
		'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
	}

	layouts = map[string]Layout{
		"qwerty":  Qwerty,
		"dvorak":  Dvorak,
		"colemak": Colemak,
	}
)

// ParseLayout looks up a layout by name, ignoring case
func ParseLayout(name string) (Layout, error) {
	layout, ok := layouts[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown keyboard layout %q", name)
	}
	return layout, nil
}

// KeySetter receives key state, implemented by the emulator
type KeySetter interface {
	SetKey(k uint8, pressed bool)
}

// Keypad turns key presses into held keys. Terminals only report key
// presses, never releases, so a press keeps the key down for a number
// of frames.
type Keypad struct {
	layout     Layout
	holdFrames int
	held       [KEYS]int
}

func Create(layout Layout, holdFrames int) *Keypad {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &Keypad{
		layout:     layout,
		holdFrames: holdFrames,
	}
}

func (kp *Keypad) Layout() Layout {
	return kp.layout
}

// Lookup returns the hex key for r
func (kp *Keypad) Lookup(r rune) (uint8, bool) {
	k, ok := kp.layout[unicode.ToLower(r)]
	return k, ok
}

// Press holds the key mapped to r, reports false if r is not mapped
func (kp *Keypad) Press(r rune) bool {
	k, ok := kp.Lookup(r)
	if !ok {
		return false
	}
	kp.held[k] = kp.holdFrames
	return true
}

// Apply writes the held keys to m and ages them by one frame
func (kp *Keypad) Apply(m KeySetter) {
	for k := range kp.held {
		m.SetKey(uint8(k), kp.held[k] > 0)
		if kp.held[k] > 0 {
			kp.held[k]--
		}
	}
}

func (kp *Keypad) Clear() {
	kp.held = [KEYS]int{}
}
