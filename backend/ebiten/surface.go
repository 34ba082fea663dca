// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

package ebiten

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/artimate/artimate"
	"github.com/artimate/artimate/input"
	"github.com/artimate/artimate/surface"
)

// Name is the registry name of the Ebitengine surface.
const Name = "ebiten"

// Priority is the registry priority of the Ebitengine surface.
const Priority = 40

// ErrInvalidDimensions is returned when width or height is invalid.
var ErrInvalidDimensions = errors.New("ebiten: invalid dimensions")

func init() {
	surface.Register(Name, Priority, func(opts surface.Options) (surface.Surface, error) {
		return New(opts)
	}, nil)
}

// Surface is an Ebitengine window. It implements ebiten.Game.
type Surface struct {
	opts  surface.Options
	frame *ebiten.Image
	tick  surface.TickFunc

	keys           []ebiten.Key
	mouseX, mouseY int
	mouseKnown     bool
	closed         bool
}

// New configures the Ebitengine window. The window opens when Run is
// called.
func New(opts surface.Options) (*Surface, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetVsyncEnabled(true)
	if !opts.CursorVisible {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	return &Surface{opts: opts}, nil
}

// Name returns the registry name.
func (s *Surface) Name() string {
	return Name
}

// Run opens the window and calls tick from Update until the window is
// closed or tick stops the loop.
func (s *Surface) Run(tick surface.TickFunc) error {
	if s.closed {
		return surface.ErrSurfaceClosed
	}
	s.tick = tick
	artimate.Logger().Debug("ebiten: running game", "tps", ebiten.TPS())
	return ebiten.RunGame(s)
}

// Update implements ebiten.Game.
func (s *Surface) Update() error {
	err := s.tick(s.poll(), s.present)
	if errors.Is(err, surface.ErrStop) {
		return ebiten.Termination
	}
	return err
}

// poll collects the input events since the previous Update.
func (s *Surface) poll() []input.Event {
	var events []input.Event

	x, y := ebiten.CursorPosition()
	if !s.mouseKnown || x != s.mouseX || y != s.mouseY {
		s.mouseX, s.mouseY, s.mouseKnown = x, y, true
		events = append(events, input.MouseMove{X: float64(x), Y: float64(y)})
	}

	mods := currentMods()
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key := mapKey(k); key != input.KeyUnknown {
			events = append(events, input.KeyDown{Key: key, Mods: mods})
		}
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key := mapKey(k); key != input.KeyUnknown {
			events = append(events, input.KeyUp{Key: key, Mods: mods})
		}
	}

	fx, fy := float64(x), float64(y)
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.native) {
			events = append(events, input.MouseDown{Button: b.button, X: fx, Y: fy})
		}
		if inpututil.IsMouseButtonJustReleased(b.native) {
			events = append(events, input.MouseUp{Button: b.button, X: fx, Y: fy})
		}
	}
	return events
}

func (s *Surface) present(pix []byte) error {
	if want := s.opts.Width * s.opts.Height * 4; len(pix) != want {
		return fmt.Errorf("ebiten: buffer is %d bytes, want %d", len(pix), want)
	}
	if s.frame == nil {
		s.frame = ebiten.NewImage(s.opts.Width, s.opts.Height)
	}
	// WritePixels expects premultiplied alpha.
	s.frame.WritePixels(premultiply(pix))
	return nil
}

// premultiply returns pix with color channels scaled by alpha. Opaque
// buffers are returned unchanged.
func premultiply(pix []byte) []byte {
	opaque := true
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0xff {
			opaque = false
			break
		}
	}
	if opaque {
		return pix
	}
	out := make([]byte, len(pix))
	for i := 0; i < len(pix); i += 4 {
		a := uint32(pix[i+3])
		out[i+0] = uint8(uint32(pix[i+0]) * a / 0xff)
		out[i+1] = uint8(uint32(pix[i+1]) * a / 0xff)
		out[i+2] = uint8(uint32(pix[i+2]) * a / 0xff)
		out[i+3] = pix[i+3]
	}
	return out
}

// Draw implements ebiten.Game.
func (s *Surface) Draw(screen *ebiten.Image) {
	if s.frame != nil {
		screen.DrawImage(s.frame, nil)
	}
}

// Layout implements ebiten.Game. The logical screen is always the frame
// size; Ebitengine scales it to the window.
func (s *Surface) Layout(_, _ int) (int, int) {
	return s.opts.Width, s.opts.Height
}

// Close releases the offscreen image. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.frame != nil {
		s.frame.Deallocate()
		s.frame = nil
	}
	return nil
}
