// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

// Package input defines the backend-neutral keyboard and mouse vocabulary
// shared by window backends and the artimate driver.
//
// Backends translate their native codes into Key, Mods and MouseButton
// values and deliver them as Event values once per tick:
//
//	KeyDown{Key: input.KeyS, Mods: input.ModSuper}
//	MouseMove{X: 120, Y: 48}
//	MouseDown{Button: input.MouseLeft, X: 120, Y: 48}
//
// Sketches use the same constants when registering handlers:
//
//	app.OnKeyHeld(input.KeyArrowLeft, func(c *artimate.Context) { ... })
package input
