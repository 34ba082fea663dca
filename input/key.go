// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

package input

import "strconv"

// Key identifies a physical key independent of the window backend.
type Key uint16

// Keys understood by every backend. Backends report KeyUnknown for
// anything they cannot map.
const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyMinus
	KeyEqual
	KeyComma
	KeyPeriod
	KeySlash

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyShift
	KeyControl
	KeyAlt
	KeySuper

	keyCount
)

var keyNames = [...]string{
	KeyUnknown:    "Unknown",
	KeySpace:      "Space",
	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyDelete:     "Delete",
	KeyArrowLeft:  "Left",
	KeyArrowRight: "Right",
	KeyArrowUp:    "Up",
	KeyArrowDown:  "Down",
	KeyMinus:      "Minus",
	KeyEqual:      "Equal",
	KeyComma:      "Comma",
	KeyPeriod:     "Period",
	KeySlash:      "Slash",
	KeyShift:      "Shift",
	KeyControl:    "Control",
	KeyAlt:        "Alt",
	KeySuper:      "Super",
	keyCount:      "",
}

// String returns a readable name such as "A", "7", "F5" or "Escape".
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	case k < keyCount:
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the declared keys other than KeyUnknown.
func (k Key) Valid() bool {
	return k > KeyUnknown && k < keyCount
}

// ParseKey returns the key whose String form equals name.
// Matching is exact; single letters must be upper case.
func ParseKey(name string) (Key, bool) {
	for k := KeyUnknown + 1; k < keyCount; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return KeyUnknown, false
}

// LetterKey maps 'a'..'z' and 'A'..'Z' to KeyA..KeyZ.
func LetterKey(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	}
	return KeyUnknown
}

// DigitKey maps '0'..'9' to Key0..Key9.
func DigitKey(r rune) Key {
	if r >= '0' && r <= '9' {
		return Key0 + Key(r-'0')
	}
	return KeyUnknown
}

// Mods is a set of modifier keys held while an event was generated.
type Mods uint8

// Modifier flags.
const (
	ModShift Mods = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Has reports whether all modifiers in m2 are set in m.
func (m Mods) Has(m2 Mods) bool {
	return m&m2 == m2
}

func (m Mods) String() string {
	if m == 0 {
		return "None"
	}
	s := ""
	for _, f := range []struct {
		mod  Mods
		name string
	}{
		{ModControl, "Control"},
		{ModAlt, "Alt"},
		{ModShift, "Shift"},
		{ModSuper, "Super"},
	} {
		if m&f.mod == 0 {
			continue
		}
		if s != "" {
			s += "+"
		}
		s += f.name
	}
	return s
}
