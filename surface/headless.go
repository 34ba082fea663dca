// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"

	"github.com/artimate/artimate/input"
)

// HeadlessName is the registry name of the headless surface.
const HeadlessName = "headless"

// ErrSurfaceClosed is returned by Run on a closed surface.
var ErrSurfaceClosed = errors.New("surface: closed")

// Headless is a Surface without a window. It replays a script of input
// events, one slice per tick, and keeps the presented pixels in memory.
//
// It is used for offline rendering (combine with a frame limit and frame
// saving) and for driving the frame loop in tests:
//
//	h := surface.NewHeadless(opts,
//	    []input.Event{input.KeyDown{Key: input.KeyA}}, // tick 0
//	    nil,                                          // tick 1
//	    []input.Event{input.KeyUp{Key: input.KeyA}},  // tick 2
//	)
//	h.CloseAfterScript = true
type Headless struct {
	// MaxTicks ends Run after that many ticks (0 = unlimited).
	MaxTicks int

	// CloseAfterScript ends Run, as a window close would, once every
	// scripted tick has run.
	CloseAfterScript bool

	// KeepFrames retains a copy of every presented buffer.
	KeepFrames bool

	opts      Options
	script    [][]input.Event
	ticks     int
	presented int
	last      []byte
	frames    [][]byte
	closed    bool
}

// NewHeadless creates a headless surface. script[i] is delivered on tick i;
// ticks past the end of the script receive no events.
func NewHeadless(opts Options, script ...[]input.Event) *Headless {
	return &Headless{
		opts:   opts,
		script: script,
	}
}

// Name returns HeadlessName.
func (h *Headless) Name() string {
	return HeadlessName
}

// Run calls tick until it stops the loop, MaxTicks is reached or the
// script is exhausted with CloseAfterScript set.
func (h *Headless) Run(tick TickFunc) error {
	if h.closed {
		return ErrSurfaceClosed
	}
	for i := 0; ; i++ {
		if h.MaxTicks > 0 && h.ticks >= h.MaxTicks {
			return nil
		}
		if h.CloseAfterScript && i >= len(h.script) {
			return nil
		}
		var events []input.Event
		if i < len(h.script) {
			events = h.script[i]
		}
		err := tick(events, h.present)
		h.ticks++
		if errors.Is(err, ErrStop) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (h *Headless) present(pix []byte) error {
	want := h.opts.Width * h.opts.Height * 4
	if len(pix) != want {
		return fmt.Errorf("surface: headless present: buffer is %d bytes, want %d", len(pix), want)
	}
	if h.last == nil {
		h.last = make([]byte, want)
	}
	copy(h.last, pix)
	h.presented++
	if h.KeepFrames {
		h.frames = append(h.frames, append([]byte(nil), pix...))
	}
	return nil
}

// Ticks returns how many times tick has been called.
func (h *Headless) Ticks() int {
	return h.ticks
}

// Presented returns how many buffers have been presented.
func (h *Headless) Presented() int {
	return h.presented
}

// LastFrame returns the most recently presented buffer, or nil.
func (h *Headless) LastFrame() []byte {
	return h.last
}

// Frames returns every presented buffer when KeepFrames is set.
func (h *Headless) Frames() [][]byte {
	return h.frames
}

// Snapshot returns the last presented buffer as an image.
// The returned image is a copy.
func (h *Headless) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, h.opts.Width, h.opts.Height))
	copy(img.Pix, h.last)
	return img
}

// Close releases the retained buffers. Close is idempotent.
func (h *Headless) Close() error {
	h.closed = true
	h.frames = nil
	return nil
}
