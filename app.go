package artimate

import (
	"errors"
	"fmt"

	"github.com/artimate/artimate/input"
	"github.com/artimate/artimate/surface"
)

// UpdateFunc computes the next model from the current one. It runs once
// per tick, after input handlers and before draw.
type UpdateFunc[M any] func(c *Context, m M) M

// DrawFunc returns the pixels of the current frame: exactly
// Width*Height*4 bytes, straight-alpha RGBA, row-major, row 0 at the top.
// m is a copy of the model; changes to it are not kept.
type DrawFunc[M any] func(c *Context, m M) []byte

type runState uint8

const (
	stateUninitialized runState = iota
	stateRunning
	stateStopped
)

// App drives a stateful sketch: a model of type M is threaded through
// update and draw on every tick.
//
// An App runs once. Register input handlers before calling Run.
type App[M any] struct {
	cfg    Config
	model  M
	update UpdateFunc[M]
	draw   DrawFunc[M]
	hs     handlers
	opts   appOptions

	state runState
	ctx   Context
	exp   *exporter
	stats Stats
}

// NewApp creates an App that starts from model. update may be nil, in
// which case the model never changes.
func NewApp[M any](cfg Config, model M, update UpdateFunc[M], draw DrawFunc[M], opts ...Option) *App[M] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &App[M]{
		cfg:    cfg,
		model:  model,
		update: update,
		draw:   draw,
		hs:     newHandlers(),
		opts:   o,
	}
}

// Config returns the configuration the app was created with.
func (a *App[M]) Config() Config {
	return a.cfg
}

// Model returns the current model. After Run returns it is the model
// produced by the last update.
func (a *App[M]) Model() M {
	return a.model
}

// Stats returns the statistics of the finished run.
func (a *App[M]) Stats() Stats {
	return a.stats
}

// OnKeyPress registers fn to run when k goes down. Key repeats do not
// fire it again.
func (a *App[M]) OnKeyPress(k input.Key, fn Handler) {
	if a.registrationClosed("OnKeyPress") {
		return
	}
	a.hs.keyPress[k] = append(a.hs.keyPress[k], fn)
}

// OnKeyRelease registers fn to run when k goes up.
func (a *App[M]) OnKeyRelease(k input.Key, fn Handler) {
	if a.registrationClosed("OnKeyRelease") {
		return
	}
	a.hs.keyRelease[k] = append(a.hs.keyRelease[k], fn)
}

// OnKeyHeld registers fn to run once per tick for as long as k is held,
// including the tick it was pressed on.
func (a *App[M]) OnKeyHeld(k input.Key, fn Handler) {
	if a.registrationClosed("OnKeyHeld") {
		return
	}
	a.hs.keyHeld[k] = append(a.hs.keyHeld[k], fn)
}

// OnMousePress registers fn to run when button goes down. Handlers for
// input.MouseAny run for every button, after the button's own handlers.
func (a *App[M]) OnMousePress(button input.MouseButton, fn Handler) {
	if a.registrationClosed("OnMousePress") {
		return
	}
	a.hs.mousePress[button] = append(a.hs.mousePress[button], fn)
}

func (a *App[M]) registrationClosed(method string) bool {
	if a.state == stateUninitialized {
		return false
	}
	Logger().Warn("artimate: handler registered after Run, ignored", "method", method)
	return true
}

// Run opens a surface and runs the loop until the window is closed or the
// frame budget is spent. The surface is the one passed with WithSurface,
// the backend named in Config.Backend, or the best available backend.
//
// Run returns nil on a normal stop and a *RunError otherwise.
func (a *App[M]) Run() error {
	if a.state != stateUninitialized {
		return ErrAlreadyRun
	}
	a.state = stateRunning
	defer func() { a.state = stateStopped }()

	if err := a.cfg.Validate(); err != nil {
		return &RunError{Stage: StageStartup, Err: err}
	}
	if s := a.opts.surface; s != nil {
		return a.loop(s)
	}

	s, err := a.openSurface()
	if err != nil {
		return &RunError{Stage: StageStartup, Err: err}
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			Logger().Warn("artimate: close surface", "err", cerr)
		}
	}()
	return a.loop(s)
}

// RunOn runs the loop on s. The caller keeps ownership of s.
func (a *App[M]) RunOn(s surface.Surface) error {
	if a.state != stateUninitialized {
		return ErrAlreadyRun
	}
	a.state = stateRunning
	defer func() { a.state = stateStopped }()

	if err := a.cfg.Validate(); err != nil {
		return &RunError{Stage: StageStartup, Err: err}
	}
	return a.loop(s)
}

func (a *App[M]) openSurface() (surface.Surface, error) {
	opts := surface.Options{
		Width:         a.cfg.Width,
		Height:        a.cfg.Height,
		Title:         a.cfg.Title,
		CursorVisible: a.cfg.CursorVisible,
	}
	var (
		s   surface.Surface
		err error
	)
	if a.cfg.Backend != "" {
		s, err = surface.OpenByName(a.cfg.Backend, opts)
	} else {
		s, err = surface.Open(opts)
	}
	if err != nil {
		return nil, err
	}

	name := surfaceName(s)
	if name == surface.HeadlessName && !a.cfg.NoLoop && a.cfg.Frames == 0 {
		_ = s.Close()
		return nil, errors.New("headless surface needs a frame limit or NoLoop")
	}
	Logger().Info("artimate: surface opened", "backend", name,
		"width", a.cfg.Width, "height", a.cfg.Height)
	return s, nil
}

func surfaceName(s surface.Surface) string {
	if n, ok := s.(surface.Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", s)
}

func (a *App[M]) loop(s surface.Surface) error {
	now := a.opts.clock()
	a.ctx = Context{cfg: a.cfg, start: now, now: now}
	a.exp = newExporter(a.cfg)

	Logger().Info("artimate: run started", "title", a.cfg.Title,
		"width", a.cfg.Width, "height", a.cfg.Height)

	err := s.Run(a.tick)

	a.stats = newStats(a.ctx.frame, a.opts.clock().Sub(a.ctx.start))
	Logger().Info("artimate: run stopped", "frames", a.stats.Frames,
		"elapsed", a.stats.Elapsed, "fps", a.stats.FPS)
	if werr := a.stats.write(a.opts.out); werr != nil {
		Logger().Warn("artimate: write summary", "err", werr)
	}

	if err == nil {
		return nil
	}
	var re *RunError
	if errors.As(err, &re) {
		return err
	}
	// Errors raised by the surface itself: before the first frame they
	// mean the window never came up.
	stage := StagePresent
	if a.ctx.frame == 0 {
		stage = StageStartup
	}
	return &RunError{Stage: stage, Frame: a.ctx.frame, Err: err}
}

// tick runs one poll, update, draw, present, save, advance cycle.
func (a *App[M]) tick(events []input.Event, present surface.PresentFunc) error {
	c := &a.ctx
	c.now = a.opts.clock()
	frame := c.frame

	// Poll.
	snapshot := false
	for _, ev := range events {
		if a.isSnapshot(ev) {
			snapshot = true
		}
		a.hs.dispatch(c, ev)
	}
	a.hs.fireHeld(c)

	// Update.
	if a.update != nil {
		a.model = a.update(c, a.model)
	}

	// Draw.
	buf := a.draw(c, a.model)
	if want := a.cfg.BufferLen(); len(buf) != want {
		return &RunError{Stage: StageDraw, Frame: frame, Err: &BufferSizeError{Want: want, Got: len(buf)}}
	}

	// Present.
	if err := present(buf); err != nil {
		return &RunError{Stage: StagePresent, Frame: frame, Err: err}
	}

	// Save.
	if frame < a.cfg.FramesToSave {
		path, err := a.exp.saveFrame(buf, frame)
		if err != nil {
			return &RunError{Stage: StageSave, Frame: frame, Err: err}
		}
		Logger().Debug("artimate: frame saved", "frame", frame, "path", path)
	}
	if snapshot {
		path, err := a.exp.saveSnapshot(buf, c.now, frame)
		if err != nil {
			return &RunError{Stage: StageSave, Frame: frame, Err: err}
		}
		Logger().Info("artimate: snapshot saved", "frame", frame, "path", path)
	}

	// Advance.
	c.frame++
	if a.cfg.NoLoop || (a.cfg.Frames > 0 && c.frame >= a.cfg.Frames) {
		return surface.ErrStop
	}
	return nil
}

func (a *App[M]) isSnapshot(ev input.Event) bool {
	kd, ok := ev.(input.KeyDown)
	if !ok || kd.Repeat || a.cfg.SnapshotKey == input.KeyUnknown {
		return false
	}
	return kd.Key == a.cfg.SnapshotKey && kd.Mods&a.cfg.SnapshotMods == a.cfg.SnapshotMods
}
