// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"github.com/gogpu/gpucontext"

	"github.com/artimate/artimate/input"
)

var keyTable = map[gpucontext.Key]input.Key{
	gpucontext.KeyA: input.KeyA, gpucontext.KeyB: input.KeyB, gpucontext.KeyC: input.KeyC,
	gpucontext.KeyD: input.KeyD, gpucontext.KeyE: input.KeyE, gpucontext.KeyF: input.KeyF,
	gpucontext.KeyG: input.KeyG, gpucontext.KeyH: input.KeyH, gpucontext.KeyI: input.KeyI,
	gpucontext.KeyJ: input.KeyJ, gpucontext.KeyK: input.KeyK, gpucontext.KeyL: input.KeyL,
	gpucontext.KeyM: input.KeyM, gpucontext.KeyN: input.KeyN, gpucontext.KeyO: input.KeyO,
	gpucontext.KeyP: input.KeyP, gpucontext.KeyQ: input.KeyQ, gpucontext.KeyR: input.KeyR,
	gpucontext.KeyS: input.KeyS, gpucontext.KeyT: input.KeyT, gpucontext.KeyU: input.KeyU,
	gpucontext.KeyV: input.KeyV, gpucontext.KeyW: input.KeyW, gpucontext.KeyX: input.KeyX,
	gpucontext.KeyY: input.KeyY, gpucontext.KeyZ: input.KeyZ,

	gpucontext.Key0: input.Key0, gpucontext.Key1: input.Key1, gpucontext.Key2: input.Key2,
	gpucontext.Key3: input.Key3, gpucontext.Key4: input.Key4, gpucontext.Key5: input.Key5,
	gpucontext.Key6: input.Key6, gpucontext.Key7: input.Key7, gpucontext.Key8: input.Key8,
	gpucontext.Key9: input.Key9,

	gpucontext.KeySpace:     input.KeySpace,
	gpucontext.KeyEnter:     input.KeyEnter,
	gpucontext.KeyEscape:    input.KeyEscape,
	gpucontext.KeyTab:       input.KeyTab,
	gpucontext.KeyBackspace: input.KeyBackspace,
	gpucontext.KeyDelete:    input.KeyDelete,
	gpucontext.KeyLeft:      input.KeyArrowLeft,
	gpucontext.KeyRight:     input.KeyArrowRight,
	gpucontext.KeyUp:        input.KeyArrowUp,
	gpucontext.KeyDown:      input.KeyArrowDown,

	gpucontext.KeyF1: input.KeyF1, gpucontext.KeyF2: input.KeyF2, gpucontext.KeyF3: input.KeyF3,
	gpucontext.KeyF4: input.KeyF4, gpucontext.KeyF5: input.KeyF5, gpucontext.KeyF6: input.KeyF6,
	gpucontext.KeyF7: input.KeyF7, gpucontext.KeyF8: input.KeyF8, gpucontext.KeyF9: input.KeyF9,
	gpucontext.KeyF10: input.KeyF10, gpucontext.KeyF11: input.KeyF11, gpucontext.KeyF12: input.KeyF12,
}

func mapKey(k gpucontext.Key) input.Key {
	if key, ok := keyTable[k]; ok {
		return key
	}
	return input.KeyUnknown
}

func mapMods(m gpucontext.Modifiers) input.Mods {
	var mods input.Mods
	if m&gpucontext.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&gpucontext.ModControl != 0 {
		mods |= input.ModControl
	}
	if m&gpucontext.ModAlt != 0 {
		mods |= input.ModAlt
	}
	if m&gpucontext.ModSuper != 0 {
		mods |= input.ModSuper
	}
	return mods
}

func mapButton(b gpucontext.MouseButton) input.MouseButton {
	switch b {
	case gpucontext.MouseButtonLeft:
		return input.MouseLeft
	case gpucontext.MouseButtonRight:
		return input.MouseRight
	case gpucontext.MouseButtonMiddle:
		return input.MouseMiddle
	}
	return input.MouseButton(b)
}
