// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"

	"github.com/artimate/artimate/input"
)

// ErrStop is returned by a TickFunc to end Surface.Run without error.
var ErrStop = errors.New("surface: stop requested")

// PresentFunc copies a row-major RGBA buffer of exactly
// Width*Height*4 bytes to the surface, row 0 at the top.
type PresentFunc func(pix []byte) error

// TickFunc runs one frame. events holds every input event drained since
// the previous call, in arrival order.
type TickFunc func(events []input.Event, present PresentFunc) error

// Options describe the window a backend should open.
type Options struct {
	// Width and Height are the pixel buffer dimensions and the initial
	// logical window size.
	Width  int
	Height int

	// Title is the window title.
	Title string

	// CursorVisible controls whether the cursor is shown over the window.
	CursorVisible bool
}

// Surface is a window (or windowless target) driven by a frame loop.
//
// Run blocks until the window is closed, tick returns ErrStop (both
// yield nil) or tick returns any other error (returned unchanged).
// Window creation failures are returned before tick is ever called.
type Surface interface {
	Run(tick TickFunc) error

	// Close releases resources. Close is idempotent.
	Close() error
}

// Named is an optional interface for surfaces that report their backend.
type Named interface {
	Surface
	Name() string
}
