// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

// Package surface provides the window abstraction artimate draws into.
//
// A Surface owns a native window (or no window at all, see Headless) and
// its event loop. The driver hands it a TickFunc; the surface calls it once
// per frame with the input events drained since the previous frame and a
// PresentFunc that copies an RGBA buffer to the screen.
//
// # Registry
//
// Backends register themselves when their package is imported:
//
//	import _ "github.com/artimate/artimate/backend/glfw"
//
// The registry picks the highest priority available backend, or a named
// one:
//
//	s, err := surface.Open(surface.Options{Width: 800, Height: 600})
//	s, err := surface.OpenByName("ebiten", opts)
//
// Standard priorities:
//   - 100: GPU backends (gogpu)
//   - 50: OpenGL backends (glfw)
//   - 40: game-loop backends (ebiten)
//   - 0: headless
//
// # Threading
//
// Surfaces are NOT thread-safe. Run must be called from the goroutine that
// owns the native event loop, which for most desktop backends means the
// main OS thread.
package surface
