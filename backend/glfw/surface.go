// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

package glfw

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/artimate/artimate"
	"github.com/artimate/artimate/input"
	"github.com/artimate/artimate/surface"
)

// Name is the registry name of the GLFW surface.
const Name = "glfw"

// Priority is the registry priority of the GLFW surface.
const Priority = 50

// ErrInvalidDimensions is returned when width or height is invalid.
var ErrInvalidDimensions = errors.New("glfw: invalid dimensions")

func init() {
	// GLFW calls must come from the main thread.
	runtime.LockOSThread()

	surface.Register(Name, Priority, func(opts surface.Options) (surface.Surface, error) {
		return New(opts)
	}, nil)
}

// Surface is a GLFW window with an OpenGL 2.1 context. Frames are blitted
// with glDrawPixels, scaled to the framebuffer size.
type Surface struct {
	win       *glfw.Window
	crosshair *glfw.Cursor
	opts      surface.Options
	pending   []input.Event
	closed    bool
}

// New initializes GLFW and opens a window. It must be called from the
// main goroutine.
func New(opts surface.Options) (*Surface, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw: init: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw: create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("glfw: gl init: %w", err)
	}

	s := &Surface{win: win, opts: opts}
	s.listen()
	if opts.CursorVisible {
		s.crosshair = glfw.CreateStandardCursor(glfw.CrosshairCursor)
	} else {
		win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}
	artimate.Logger().Debug("glfw: window created", "gl", gl.GoStr(gl.GetString(gl.VERSION)))
	return s, nil
}

// Name returns the registry name.
func (s *Surface) Name() string {
	return Name
}

// listen installs the callbacks. They run inside PollEvents on the main
// thread, so pending needs no lock.
func (s *Surface) listen() {
	s.win.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, action glfw.Action, mod glfw.ModifierKey) {
		if ev := keyEvent(k, action, mod); ev != nil {
			s.pending = append(s.pending, ev)
		}
	})
	s.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		s.pending = append(s.pending, input.MouseMove{X: x, Y: y})
	})
	s.win.SetMouseButtonCallback(func(w *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.GetCursorPos()
		switch action {
		case glfw.Press:
			s.pending = append(s.pending, input.MouseDown{Button: mapButton(b), X: x, Y: y})
		case glfw.Release:
			s.pending = append(s.pending, input.MouseUp{Button: mapButton(b), X: x, Y: y})
		}
	})
	// A visible cursor turns into a crosshair over the canvas.
	s.win.SetCursorEnterCallback(func(w *glfw.Window, entered bool) {
		if s.crosshair != nil {
			if entered {
				w.SetCursor(s.crosshair)
			} else {
				w.SetCursor(nil)
			}
		}
		s.pending = append(s.pending, enterEvent(entered))
	})
}

// Run polls events and calls tick until the window is closed or tick
// stops the loop.
func (s *Surface) Run(tick surface.TickFunc) error {
	if s.closed {
		return surface.ErrSurfaceClosed
	}
	for !s.win.ShouldClose() {
		glfw.PollEvents()
		events := s.pending
		s.pending = nil

		err := tick(events, s.present)
		if errors.Is(err, surface.ErrStop) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Surface) present(pix []byte) error {
	if want := s.opts.Width * s.opts.Height * 4; len(pix) != want {
		return fmt.Errorf("glfw: buffer is %d bytes, want %d", len(pix), want)
	}
	fbw, fbh := s.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// Row 0 is the top: start at the upper-left corner and draw downwards.
	gl.RasterPos2d(-1, 1)
	gl.PixelZoom(float32(fbw)/float32(s.opts.Width), -float32(fbh)/float32(s.opts.Height))
	gl.DrawPixels(int32(s.opts.Width), int32(s.opts.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	s.win.SwapBuffers()
	return nil
}

// Close destroys the window and terminates GLFW. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.crosshair != nil {
		s.crosshair.Destroy()
	}
	s.win.Destroy()
	glfw.Terminate()
	return nil
}
