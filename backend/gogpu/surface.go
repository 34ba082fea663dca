// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"errors"
	"sync"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/artimate/artimate"
	"github.com/artimate/artimate/input"
	"github.com/artimate/artimate/surface"
)

// Name is the registry name of the gogpu surface.
const Name = "gogpu"

// Priority is the registry priority of the gogpu surface.
const Priority = 100

// ErrInvalidDimensions is returned when width or height is invalid.
var ErrInvalidDimensions = errors.New("gogpu: invalid dimensions")

func init() {
	surface.Register(Name, Priority, func(opts surface.Options) (surface.Surface, error) {
		return New(opts)
	}, nil)
}

// Surface is a gogpu window. Create it with New; Run must be called from
// the main goroutine.
type Surface struct {
	app  *gogpu.App
	opts surface.Options
	pres *presenter

	mu      sync.Mutex
	pending []input.Event

	stopped bool
	err     error
}

// New creates the gogpu application for a window of the given options.
// The window appears when Run is called.
func New(opts surface.Options) (*Surface, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(opts.Title).
		WithSize(opts.Width, opts.Height).
		WithContinuousRender(true))

	s := &Surface{
		app:  app,
		opts: opts,
		pres: newPresenter(opts.Width, opts.Height),
	}
	s.listen(app.EventSource())

	if !opts.CursorVisible {
		artimate.Logger().Debug("gogpu: hiding the cursor is not supported, ignored")
	}
	return s, nil
}

// Name returns the registry name.
func (s *Surface) Name() string {
	return Name
}

func (s *Surface) listen(es gpucontext.EventSource) {
	es.OnKeyPress(func(k gpucontext.Key, m gpucontext.Modifiers) {
		if key := mapKey(k); key != input.KeyUnknown {
			s.queue(input.KeyDown{Key: key, Mods: mapMods(m)})
		}
	})
	es.OnKeyRelease(func(k gpucontext.Key, m gpucontext.Modifiers) {
		if key := mapKey(k); key != input.KeyUnknown {
			s.queue(input.KeyUp{Key: key, Mods: mapMods(m)})
		}
	})
	es.OnMouseMove(func(x, y float64) {
		s.queue(input.MouseMove{X: x, Y: y})
	})
	es.OnMousePress(func(b gpucontext.MouseButton, x, y float64) {
		s.queue(input.MouseDown{Button: mapButton(b), X: x, Y: y})
	})
	es.OnMouseRelease(func(b gpucontext.MouseButton, x, y float64) {
		s.queue(input.MouseUp{Button: mapButton(b), X: x, Y: y})
	})
}

func (s *Surface) queue(ev input.Event) {
	s.mu.Lock()
	s.pending = append(s.pending, ev)
	s.mu.Unlock()
}

func (s *Surface) drain() []input.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.pending
	s.pending = nil
	return events
}

// Run shows the window and calls tick once per redraw until the window is
// closed or tick stops the loop.
func (s *Surface) Run(tick surface.TickFunc) error {
	s.app.OnDraw(func(dc *gogpu.Context) {
		if s.stopped {
			return
		}
		drawer := dc.AsTextureDrawer()
		err := tick(s.drain(), func(pix []byte) error {
			return s.pres.present(drawer, pix)
		})
		if err == nil {
			return
		}
		s.stopped = true
		if !errors.Is(err, surface.ErrStop) {
			s.err = err
		}
		s.app.Quit()
	})
	s.app.OnClose(func() {
		s.pres.Close()
	})

	if err := s.app.Run(); err != nil {
		return err
	}
	return s.err
}

// Close releases the GPU texture. Close is idempotent.
func (s *Surface) Close() error {
	s.pres.Close()
	return nil
}
