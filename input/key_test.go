// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

package input

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyA, "A"},
		{KeyZ, "Z"},
		{Key0, "0"},
		{Key9, "9"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeySpace, "Space"},
		{KeyEscape, "Escape"},
		{KeySuper, "Super"},
		{KeyUnknown, "Unknown"},
		{Key(999), "Key(999)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	for k := KeyUnknown + 1; k < keyCount; k++ {
		got, ok := ParseKey(k.String())
		if !ok {
			t.Errorf("ParseKey(%q) failed", k.String())
			continue
		}
		if got != k {
			t.Errorf("ParseKey(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, ok := ParseKey("nope"); ok {
		t.Error("ParseKey(\"nope\") succeeded, want failure")
	}
}

func TestLetterAndDigitKey(t *testing.T) {
	if got := LetterKey('s'); got != KeyS {
		t.Errorf("LetterKey('s') = %v, want S", got)
	}
	if got := LetterKey('Q'); got != KeyQ {
		t.Errorf("LetterKey('Q') = %v, want Q", got)
	}
	if got := LetterKey('1'); got != KeyUnknown {
		t.Errorf("LetterKey('1') = %v, want Unknown", got)
	}
	if got := DigitKey('7'); got != Key7 {
		t.Errorf("DigitKey('7') = %v, want 7", got)
	}
	if got := DigitKey('x'); got != KeyUnknown {
		t.Errorf("DigitKey('x') = %v, want Unknown", got)
	}
}

func TestKeyValid(t *testing.T) {
	if KeyUnknown.Valid() {
		t.Error("KeyUnknown.Valid() = true")
	}
	if !KeySuper.Valid() {
		t.Error("KeySuper.Valid() = false")
	}
	if keyCount.Valid() {
		t.Error("keyCount.Valid() = true")
	}
}

func TestModsString(t *testing.T) {
	tests := []struct {
		mods Mods
		want string
	}{
		{0, "None"},
		{ModShift, "Shift"},
		{ModSuper, "Super"},
		{ModControl | ModShift, "Control+Shift"},
		{ModControl | ModAlt | ModShift | ModSuper, "Control+Alt+Shift+Super"},
	}
	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("Mods(%d).String() = %q, want %q", tt.mods, got, tt.want)
		}
	}
	if !(ModSuper | ModShift).Has(ModSuper) {
		t.Error("Has(ModSuper) = false")
	}
	if ModShift.Has(ModShift | ModSuper) {
		t.Error("ModShift.Has(ModShift|ModSuper) = true")
	}
}

func TestMouseButtonString(t *testing.T) {
	if got := MouseLeft.String(); got != "Left" {
		t.Errorf("MouseLeft.String() = %q", got)
	}
	if got := MouseAny.String(); got != "Any" {
		t.Errorf("MouseAny.String() = %q", got)
	}
	if got := MouseButton(9).String(); got != "MouseButton(9)" {
		t.Errorf("MouseButton(9).String() = %q", got)
	}
}
