// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

package input

import "strconv"

// MouseButton identifies a mouse button.
type MouseButton uint8

// Mouse buttons. MouseAny is only meaningful when registering handlers:
// it matches every button.
const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseAny MouseButton = 255
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	case MouseAny:
		return "Any"
	}
	return "MouseButton(" + strconv.Itoa(int(b)) + ")"
}

// Event is an input event drained from a window backend.
// The concrete types are KeyDown, KeyUp, MouseMove, MouseDown, MouseUp,
// CursorEnter and CursorLeave.
type Event interface {
	event()
}

// KeyDown reports a key press. Repeat is set for auto-repeat events
// generated while the key stays down.
type KeyDown struct {
	Key    Key
	Mods   Mods
	Repeat bool
}

// KeyUp reports a key release.
type KeyUp struct {
	Key  Key
	Mods Mods
}

// MouseMove reports the cursor position in window coordinates,
// origin top-left.
type MouseMove struct {
	X, Y float64
}

// MouseDown reports a mouse button press at the given position.
type MouseDown struct {
	Button MouseButton
	X, Y   float64
}

// MouseUp reports a mouse button release at the given position.
type MouseUp struct {
	Button MouseButton
	X, Y   float64
}

// CursorEnter reports the cursor entering the window.
type CursorEnter struct{}

// CursorLeave reports the cursor leaving the window.
type CursorLeave struct{}

func (KeyDown) event()     {}
func (KeyUp) event()       {}
func (MouseMove) event()   {}
func (MouseDown) event()   {}
func (MouseUp) event()     {}
func (CursorEnter) event() {}
func (CursorLeave) event() {}
