package artimate

import (
	"slices"
	"time"

	"github.com/artimate/artimate/input"
)

// Context is the read-only view of the running loop handed to every
// callback: configuration, input state and frame timing.
//
// A Context is only valid during the callback it was passed to and must not
// be retained or shared with other goroutines.
type Context struct {
	cfg Config

	mouseX, mouseY float64
	outside        bool
	held           []input.Key
	mods           input.Mods

	frame int
	start time.Time
	now   time.Time
}

// MouseInside reports whether the cursor is over the window. It is true
// until the backend reports the cursor leaving.
func (c *Context) MouseInside() bool {
	return !c.outside
}

// Config returns the configuration the loop is running with.
func (c *Context) Config() Config {
	return c.cfg
}

// Width returns the frame width in pixels.
func (c *Context) Width() int {
	return c.cfg.Width
}

// Height returns the frame height in pixels.
func (c *Context) Height() int {
	return c.cfg.Height
}

// Size returns the frame dimensions.
func (c *Context) Size() (int, int) {
	return c.cfg.Size()
}

// SizeF returns the frame dimensions as float64.
func (c *Context) SizeF() (float64, float64) {
	return c.cfg.SizeF()
}

// Mouse returns the last known cursor position in window coordinates.
func (c *Context) Mouse() (float64, float64) {
	return c.mouseX, c.mouseY
}

// MouseX returns the cursor x coordinate.
func (c *Context) MouseX() float64 {
	return c.mouseX
}

// MouseY returns the cursor y coordinate.
func (c *Context) MouseY() float64 {
	return c.mouseY
}

// KeyHeld reports whether k is currently held down.
func (c *Context) KeyHeld(k input.Key) bool {
	return slices.Contains(c.held, k)
}

// HeldKeys returns the held keys in the order they were pressed.
func (c *Context) HeldKeys() []input.Key {
	return slices.Clone(c.held)
}

// Mods returns the modifier state of the most recent key event.
func (c *Context) Mods() input.Mods {
	return c.mods
}

// Frame returns the zero-based index of the frame being produced.
func (c *Context) Frame() int {
	return c.frame
}

// Time returns the seconds elapsed since the loop started, sampled once at
// the start of the tick.
func (c *Context) Time() float64 {
	return c.Elapsed().Seconds()
}

// Elapsed returns the time elapsed since the loop started, sampled once at
// the start of the tick.
func (c *Context) Elapsed() time.Duration {
	return c.now.Sub(c.start)
}

// NewFrame returns a transparent frame of the configured size.
func (c *Context) NewFrame() *Frame {
	return NewFrame(c.cfg.Width, c.cfg.Height)
}

// press adds k to the held set. It reports false if k was already held.
func (c *Context) press(k input.Key) bool {
	if slices.Contains(c.held, k) {
		return false
	}
	c.held = append(c.held, k)
	return true
}

// release removes k from the held set. It reports false if k was not held.
func (c *Context) release(k input.Key) bool {
	i := slices.Index(c.held, k)
	if i < 0 {
		return false
	}
	c.held = slices.Delete(c.held, i, i+1)
	return true
}
