package artimate

import (
	"github.com/artimate/artimate/input"
)

// Handler reacts to an input event. It runs on the loop goroutine during
// the poll step of a tick.
type Handler func(c *Context)

// handlers holds the callback tables. Entries are append-only and fire in
// registration order.
type handlers struct {
	keyPress   map[input.Key][]Handler
	keyRelease map[input.Key][]Handler
	keyHeld    map[input.Key][]Handler
	mousePress map[input.MouseButton][]Handler
}

func newHandlers() handlers {
	return handlers{
		keyPress:   make(map[input.Key][]Handler),
		keyRelease: make(map[input.Key][]Handler),
		keyHeld:    make(map[input.Key][]Handler),
		mousePress: make(map[input.MouseButton][]Handler),
	}
}

func fire(c *Context, hs []Handler) {
	for _, h := range hs {
		h(c)
	}
}

// dispatch applies one event to the input state and fires the edge
// handlers it triggers.
func (h *handlers) dispatch(c *Context, ev input.Event) {
	switch e := ev.(type) {
	case input.MouseMove:
		c.mouseX, c.mouseY = e.X, e.Y
	case input.KeyDown:
		c.mods = e.Mods
		if e.Repeat || !c.press(e.Key) {
			return
		}
		fire(c, h.keyPress[e.Key])
	case input.KeyUp:
		c.mods = e.Mods
		if !c.release(e.Key) {
			return
		}
		fire(c, h.keyRelease[e.Key])
	case input.MouseDown:
		c.mouseX, c.mouseY = e.X, e.Y
		fire(c, h.mousePress[e.Button])
		if e.Button != input.MouseAny {
			fire(c, h.mousePress[input.MouseAny])
		}
	case input.MouseUp:
		c.mouseX, c.mouseY = e.X, e.Y
	case input.CursorEnter:
		c.outside = false
	case input.CursorLeave:
		c.outside = true
	}
}

// fireHeld runs the level handlers of every held key, in press order.
func (h *handlers) fireHeld(c *Context) {
	for _, k := range c.HeldKeys() {
		fire(c, h.keyHeld[k])
	}
}
