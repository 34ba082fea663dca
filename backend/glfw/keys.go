// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/artimate/artimate/input"
)

func mapKey(k glfw.Key) input.Key {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return input.KeyA + input.Key(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return input.Key0 + input.Key(k-glfw.Key0)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return input.KeyF1 + input.Key(k-glfw.KeyF1)
	}
	switch k {
	case glfw.KeySpace:
		return input.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return input.KeyEnter
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeyTab:
		return input.KeyTab
	case glfw.KeyBackspace:
		return input.KeyBackspace
	case glfw.KeyDelete:
		return input.KeyDelete
	case glfw.KeyLeft:
		return input.KeyArrowLeft
	case glfw.KeyRight:
		return input.KeyArrowRight
	case glfw.KeyUp:
		return input.KeyArrowUp
	case glfw.KeyDown:
		return input.KeyArrowDown
	case glfw.KeyMinus:
		return input.KeyMinus
	case glfw.KeyEqual:
		return input.KeyEqual
	case glfw.KeyComma:
		return input.KeyComma
	case glfw.KeyPeriod:
		return input.KeyPeriod
	case glfw.KeySlash:
		return input.KeySlash
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return input.KeyShift
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return input.KeyControl
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return input.KeyAlt
	case glfw.KeyLeftSuper, glfw.KeyRightSuper:
		return input.KeySuper
	}
	return input.KeyUnknown
}

func mapMods(mod glfw.ModifierKey) input.Mods {
	var m input.Mods
	if mod&glfw.ModShift != 0 {
		m |= input.ModShift
	}
	if mod&glfw.ModControl != 0 {
		m |= input.ModControl
	}
	if mod&glfw.ModAlt != 0 {
		m |= input.ModAlt
	}
	if mod&glfw.ModSuper != 0 {
		m |= input.ModSuper
	}
	return m
}

func mapButton(b glfw.MouseButton) input.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return input.MouseLeft
	case glfw.MouseButtonRight:
		return input.MouseRight
	case glfw.MouseButtonMiddle:
		return input.MouseMiddle
	}
	return input.MouseButton(b)
}

// keyEvent converts a key callback. Unknown keys yield nil.
func keyEvent(k glfw.Key, action glfw.Action, mod glfw.ModifierKey) input.Event {
	key := mapKey(k)
	if key == input.KeyUnknown {
		return nil
	}
	switch action {
	case glfw.Press:
		return input.KeyDown{Key: key, Mods: mapMods(mod)}
	case glfw.Repeat:
		return input.KeyDown{Key: key, Mods: mapMods(mod), Repeat: true}
	case glfw.Release:
		return input.KeyUp{Key: key, Mods: mapMods(mod)}
	}
	return nil
}

func enterEvent(entered bool) input.Event {
	if entered {
		return input.CursorEnter{}
	}
	return input.CursorLeave{}
}
