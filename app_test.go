package artimate

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/artimate/artimate/input"
	"github.com/artimate/artimate/surface"
)

// testConfig returns a small valid config that saves nothing.
func testConfig(w, h int) Config {
	return WithDims(w, h).SetOutputDir("").SetSnapshotKey(input.KeyUnknown, 0).Config()
}

// headless returns a surface that stops after n ticks.
func headless(cfg Config, n int, script ...[]input.Event) *surface.Headless {
	h := surface.NewHeadless(surface.Options{Width: cfg.Width, Height: cfg.Height}, script...)
	h.MaxTicks = n
	return h
}

// fakeClock advances by step on every call.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func solidBuffer(cfg Config, v byte) []byte {
	return bytes.Repeat([]byte{v}, cfg.BufferLen())
}

// TestSketchAcceptsCorrectBuffer tests that a buffer of width*height*4 bytes
// is presented for a range of sizes.
func TestSketchAcceptsCorrectBuffer(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {3, 2}, {16, 9}, {64, 1}}
	for _, sz := range sizes {
		cfg := testConfig(sz.w, sz.h)
		h := headless(cfg, 3)
		s := NewSketch(cfg, func(c *Context) []byte {
			return solidBuffer(c.Config(), 7)
		}, WithOutput(io.Discard))

		if err := s.RunOn(h); err != nil {
			t.Fatalf("%dx%d: RunOn() = %v", sz.w, sz.h, err)
		}
		if h.Presented() != 3 {
			t.Errorf("%dx%d: Presented() = %d, want 3", sz.w, sz.h, h.Presented())
		}
		if got := h.LastFrame()[0]; got != 7 {
			t.Errorf("%dx%d: last frame byte = %d, want 7", sz.w, sz.h, got)
		}
	}
}

// TestDrawWrongLength tests that a short or long buffer stops the run with a
// draw-stage error naming both lengths, before anything is presented.
func TestDrawWrongLength(t *testing.T) {
	cfg := testConfig(4, 4)
	for _, n := range []int{0, 63, 65, 4 * 4 * 3} {
		h := headless(cfg, 5)
		s := NewSketch(cfg, func(*Context) []byte { return make([]byte, n) }, WithOutput(io.Discard))

		err := s.RunOn(h)
		var re *RunError
		if !errors.As(err, &re) {
			t.Fatalf("len %d: RunOn() = %v, want *RunError", n, err)
		}
		if re.Stage != StageDraw || re.Frame != 0 {
			t.Errorf("len %d: stage/frame = %v/%d, want draw/0", n, re.Stage, re.Frame)
		}
		var bse *BufferSizeError
		if !errors.As(err, &bse) {
			t.Fatalf("len %d: error %v does not wrap *BufferSizeError", n, err)
		}
		if bse.Want != 64 || bse.Got != n {
			t.Errorf("len %d: BufferSizeError = %+v, want {64 %d}", n, *bse, n)
		}
		if h.Presented() != 0 {
			t.Errorf("len %d: Presented() = %d, want 0", n, h.Presented())
		}
	}
}

// TestAppUpdateThenDraw tests that update and draw each run once per tick
// and that draw sees the model the preceding update returned.
func TestAppUpdateThenDraw(t *testing.T) {
	const ticks = 10
	cfg := testConfig(2, 2)

	var updates, draws int
	var seen []int
	app := NewApp(cfg, 0,
		func(_ *Context, m int) int {
			updates++
			return m + 1
		},
		func(c *Context, m int) []byte {
			draws++
			seen = append(seen, m)
			return solidBuffer(c.Config(), byte(m))
		},
		WithOutput(io.Discard))

	if err := app.RunOn(headless(cfg, ticks)); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}
	if updates != ticks || draws != ticks {
		t.Errorf("updates/draws = %d/%d, want %d/%d", updates, draws, ticks, ticks)
	}
	for i, m := range seen {
		if m != i+1 {
			t.Errorf("draw %d saw model %d, want %d", i, m, i+1)
		}
	}
	if app.Model() != ticks {
		t.Errorf("Model() = %d, want %d", app.Model(), ticks)
	}
}

// TestSketchHasNoUpdate tests that a sketch draws once per tick with no model.
func TestSketchHasNoUpdate(t *testing.T) {
	cfg := testConfig(1, 1)
	draws := 0
	s := NewSketch(cfg, func(c *Context) []byte {
		draws++
		return solidBuffer(c.Config(), 0)
	}, WithOutput(io.Discard))

	if err := s.RunOn(headless(cfg, 4)); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}
	if draws != 4 {
		t.Errorf("draws = %d, want 4", draws)
	}
	if s.update != nil {
		t.Error("sketch has an update function")
	}
}

// TestFramesToSave tests that exactly K frames are written with indices
// 0..K-1 and that each decodes to the buffer drawn on that tick.
func TestFramesToSave(t *testing.T) {
	const k, m = 3, 6
	dir := t.TempDir()
	cfg := WithDims(5, 3).
		SetFramesToSave(k).
		SetOutputDir(dir).
		SetFramePrefix("test").
		MustBuild()

	var drawn [][]byte
	s := NewSketch(cfg, func(c *Context) []byte {
		f := c.NewFrame()
		for y := range c.Height() {
			for x := range c.Width() {
				// Vary alpha so straight alpha must survive the round trip.
				f.SetRGBA(x, y, uint8(x*40), uint8(y*60), uint8(c.Frame()*30), uint8(100+c.Frame()*20))
			}
		}
		drawn = append(drawn, append([]byte(nil), f.Pix()...))
		return f.Pix()
	}, WithOutput(io.Discard))

	if err := s.RunOn(headless(cfg, m)); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != k {
		t.Fatalf("saved %d files, want %d", len(entries), k)
	}
	for i := range k {
		path := filepath.Join(dir, FramePath("", "test", i))
		file, err := os.Open(path)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		f, err := DecodePNG(file)
		_ = file.Close()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if !bytes.Equal(f.Pix(), drawn[i]) {
			t.Errorf("frame %d: decoded pixels differ from drawn buffer", i)
		}
	}
}

// TestNoLoopRunsOnce tests that NoLoop stops after one tick even when the
// surface would keep going.
func TestNoLoopRunsOnce(t *testing.T) {
	cfg := testConfig(2, 2)
	cfg.NoLoop = true

	var out bytes.Buffer
	draws := 0
	s := NewSketch(cfg, func(c *Context) []byte {
		draws++
		return solidBuffer(c.Config(), 1)
	}, WithOutput(&out))

	h := surface.NewHeadless(surface.Options{Width: 2, Height: 2}, nil, nil, nil, nil)
	if err := s.RunOn(h); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}
	if draws != 1 || h.Ticks() != 1 {
		t.Errorf("draws/ticks = %d/%d, want 1/1", draws, h.Ticks())
	}
	if s.Stats().Frames != 1 {
		t.Errorf("Stats().Frames = %d, want 1", s.Stats().Frames)
	}
	if !strings.Contains(out.String(), "frames: 1 ") {
		t.Errorf("summary = %q, want frames: 1", out.String())
	}
}

// TestFrameLimit tests that Frames stops the run after that many ticks.
func TestFrameLimit(t *testing.T) {
	cfg := testConfig(1, 1)
	cfg.Frames = 7
	s := NewSketch(cfg, func(c *Context) []byte { return solidBuffer(c.Config(), 0) }, WithOutput(io.Discard))

	h := headless(cfg, 100)
	if err := s.RunOn(h); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}
	if h.Ticks() != 7 {
		t.Errorf("Ticks() = %d, want 7", h.Ticks())
	}
}

// TestKeyEdgesAndLevels tests that holding a key for 5 ticks fires press
// once, release once and held on every one of the 5 ticks.
func TestKeyEdgesAndLevels(t *testing.T) {
	cfg := testConfig(1, 1)
	script := [][]input.Event{
		{input.KeyDown{Key: input.KeyA}},
		nil,
		{input.KeyDown{Key: input.KeyA, Repeat: true}},
		nil,
		nil,
		{input.KeyUp{Key: input.KeyA}},
		nil,
	}

	var pressed, released int
	var heldTicks []int
	s := NewSketch(cfg, func(c *Context) []byte { return solidBuffer(c.Config(), 0) }, WithOutput(io.Discard))
	s.OnKeyPress(input.KeyA, func(*Context) { pressed++ })
	s.OnKeyRelease(input.KeyA, func(*Context) { released++ })
	s.OnKeyHeld(input.KeyA, func(c *Context) { heldTicks = append(heldTicks, c.Frame()) })

	h := headless(cfg, 0, script...)
	h.CloseAfterScript = true
	if err := s.RunOn(h); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}
	if pressed != 1 || released != 1 {
		t.Errorf("pressed/released = %d/%d, want 1/1", pressed, released)
	}
	want := []int{0, 1, 2, 3, 4}
	if len(heldTicks) != len(want) {
		t.Fatalf("held fired on ticks %v, want %v", heldTicks, want)
	}
	for i := range want {
		if heldTicks[i] != want[i] {
			t.Errorf("held fired on ticks %v, want %v", heldTicks, want)
			break
		}
	}
}

// TestHandlerOrder tests that handlers for the same key fire in
// registration order and MouseAny handlers fire after button handlers.
func TestHandlerOrder(t *testing.T) {
	cfg := testConfig(1, 1)
	var calls []string
	s := NewSketch(cfg, func(c *Context) []byte { return solidBuffer(c.Config(), 0) }, WithOutput(io.Discard))
	s.OnKeyPress(input.KeySpace, func(*Context) { calls = append(calls, "space1") })
	s.OnKeyPress(input.KeySpace, func(*Context) { calls = append(calls, "space2") })
	s.OnMousePress(input.MouseAny, func(*Context) { calls = append(calls, "any") })
	s.OnMousePress(input.MouseLeft, func(*Context) { calls = append(calls, "left") })

	h := headless(cfg, 1, []input.Event{
		input.KeyDown{Key: input.KeySpace},
		input.MouseDown{Button: input.MouseLeft, X: 1, Y: 2},
		input.MouseDown{Button: input.MouseRight},
	})
	if err := s.RunOn(h); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}
	want := "space1,space2,left,any,any"
	if got := strings.Join(calls, ","); got != want {
		t.Errorf("calls = %s, want %s", got, want)
	}
}

// TestInputStateVisibleToCallbacks tests that update and draw see the mouse
// position and held keys applied during the poll step.
func TestInputStateVisibleToCallbacks(t *testing.T) {
	cfg := testConfig(1, 1)
	type seen struct {
		x, y float64
		held bool
		mods input.Mods
	}
	var got []seen
	app := NewApp(cfg, struct{}{}, nil, func(c *Context, _ struct{}) []byte {
		got = append(got, seen{c.MouseX(), c.MouseY(), c.KeyHeld(input.KeyShift), c.Mods()})
		return solidBuffer(c.Config(), 0)
	}, WithOutput(io.Discard))

	h := headless(cfg, 3,
		[]input.Event{input.MouseMove{X: 10, Y: 20}, input.KeyDown{Key: input.KeyShift, Mods: input.ModShift}},
		nil,
		[]input.Event{input.KeyUp{Key: input.KeyShift}, input.MouseMove{X: 5, Y: 6}},
	)
	if err := app.RunOn(h); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}
	want := []seen{
		{10, 20, true, input.ModShift},
		{10, 20, true, input.ModShift},
		{5, 6, false, 0},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tick %d: saw %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestLateRegistrationIgnored tests that handlers added while running are
// ignored.
func TestLateRegistrationIgnored(t *testing.T) {
	cfg := testConfig(1, 1)
	late := 0
	var s *Sketch
	s = NewSketch(cfg, func(c *Context) []byte {
		if c.Frame() == 0 {
			s.OnKeyPress(input.KeyB, func(*Context) { late++ })
		}
		return solidBuffer(c.Config(), 0)
	}, WithOutput(io.Discard))

	h := headless(cfg, 2, nil, []input.Event{input.KeyDown{Key: input.KeyB}})
	if err := s.RunOn(h); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}
	if late != 0 {
		t.Errorf("late handler fired %d times, want 0", late)
	}
}

// TestRunTwice tests the Uninitialized, Running, Stopped lifecycle.
func TestRunTwice(t *testing.T) {
	cfg := testConfig(1, 1)
	s := NewSketch(cfg, func(c *Context) []byte { return solidBuffer(c.Config(), 0) }, WithOutput(io.Discard))
	if err := s.RunOn(headless(cfg, 1)); err != nil {
		t.Fatalf("first RunOn() = %v", err)
	}
	if err := s.RunOn(headless(cfg, 1)); !errors.Is(err, ErrAlreadyRun) {
		t.Errorf("second RunOn() = %v, want ErrAlreadyRun", err)
	}
	if err := s.Run(); !errors.Is(err, ErrAlreadyRun) {
		t.Errorf("Run() after RunOn = %v, want ErrAlreadyRun", err)
	}
}

// TestInvalidConfigIsStartupError tests that a bad config fails before any
// tick.
func TestInvalidConfigIsStartupError(t *testing.T) {
	cfg := testConfig(1, 1)
	cfg.Width = 0
	h := headless(Config{Width: 1, Height: 1}, 1)
	s := NewSketch(cfg, func(*Context) []byte { return nil }, WithOutput(io.Discard))

	err := s.RunOn(h)
	var re *RunError
	if !errors.As(err, &re) || re.Stage != StageStartup {
		t.Fatalf("RunOn() = %v, want startup *RunError", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error %v does not wrap ErrInvalidConfig", err)
	}
	if h.Ticks() != 0 {
		t.Errorf("Ticks() = %d, want 0", h.Ticks())
	}
}

// TestPresentError tests that a surface that rejects a frame stops the run
// with a present-stage error.
func TestPresentError(t *testing.T) {
	cfg := testConfig(2, 2)
	// The surface is smaller than the config, so it rejects every buffer.
	h := surface.NewHeadless(surface.Options{Width: 1, Height: 1})
	h.MaxTicks = 3
	s := NewSketch(cfg, func(c *Context) []byte { return solidBuffer(c.Config(), 0) }, WithOutput(io.Discard))

	err := s.RunOn(h)
	var re *RunError
	if !errors.As(err, &re) || re.Stage != StagePresent {
		t.Fatalf("RunOn() = %v, want present *RunError", err)
	}
}

// TestSaveErrorStopsRun tests that an unwritable output directory stops the
// run with a save-stage error.
func TestSaveErrorStopsRun(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := WithDims(1, 1).SetFramesToSave(2).SetOutputDir(filepath.Join(blocker, "frames")).MustBuild()
	s := NewSketch(cfg, func(c *Context) []byte { return solidBuffer(c.Config(), 0) }, WithOutput(io.Discard))

	h := headless(cfg, 5)
	err := s.RunOn(h)
	var re *RunError
	if !errors.As(err, &re) || re.Stage != StageSave || re.Frame != 0 {
		t.Fatalf("RunOn() = %v, want save *RunError at frame 0", err)
	}
	if h.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", h.Ticks())
	}
}

// TestSnapshotShortcut tests that Super+S writes one snapshot file.
func TestSnapshotShortcut(t *testing.T) {
	dir := t.TempDir()
	cfg := WithDims(2, 1).SetOutputDir(dir).MustBuild()
	clock := &fakeClock{now: time.Unix(1700000000, 0), step: time.Millisecond}
	s := NewSketch(cfg, func(c *Context) []byte { return solidBuffer(c.Config(), 9) },
		WithOutput(io.Discard), WithClock(clock.Now))

	h := headless(cfg, 3,
		[]input.Event{input.KeyDown{Key: input.KeyS}},
		[]input.Event{input.KeyUp{Key: input.KeyS}, input.KeyDown{Key: input.KeyS, Mods: input.ModSuper}},
	)
	if err := s.RunOn(h); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("files = %d, want 1 snapshot", len(entries))
	}
	if name, want := entries[0].Name(), "frame_snapshot_1700000000_0001.png"; name != want {
		t.Errorf("snapshot name = %q, want %q", name, want)
	}
}

// TestSnapshotsSameSecond tests that snapshots taken within one second on
// different frames land in different files.
func TestSnapshotsSameSecond(t *testing.T) {
	dir := t.TempDir()
	cfg := WithDims(2, 1).SetOutputDir(dir).MustBuild()
	clock := &fakeClock{now: time.Unix(1700000000, 0), step: time.Millisecond}
	s := NewSketch(cfg, func(c *Context) []byte { return solidBuffer(c.Config(), byte(c.Frame())) },
		WithOutput(io.Discard), WithClock(clock.Now))

	press := []input.Event{input.KeyDown{Key: input.KeyS, Mods: input.ModSuper}}
	release := []input.Event{input.KeyUp{Key: input.KeyS, Mods: input.ModSuper}}
	if err := s.RunOn(headless(cfg, 3, press, release, press)); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("files = %d, want 2 snapshots", len(entries))
	}
}

// TestEmptyFramePrefix tests that a config built without the builder still
// gets named frame files.
func TestEmptyFramePrefix(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{Width: 2, Height: 2, FramesToSave: 1, OutputDir: dir}
	s := NewSketch(cfg, func(c *Context) []byte { return solidBuffer(c.Config(), 1) }, WithOutput(io.Discard))
	if err := s.RunOn(headless(cfg, 1)); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}
	if _, err := os.Stat(FramePath(dir, DefaultFramePrefix, 0)); err != nil {
		t.Errorf("frame 0 not saved under the default prefix: %v", err)
	}
}

// TestCursorEnterLeave tests that MouseInside follows the backend's
// enter and leave events.
func TestCursorEnterLeave(t *testing.T) {
	cfg := testConfig(1, 1)
	var inside []bool
	s := NewSketch(cfg, func(c *Context) []byte {
		inside = append(inside, c.MouseInside())
		return solidBuffer(c.Config(), 0)
	}, WithOutput(io.Discard))

	h := headless(cfg, 3,
		nil,
		[]input.Event{input.CursorLeave{}},
		[]input.Event{input.CursorEnter{}},
	)
	if err := s.RunOn(h); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}
	want := []bool{true, false, true}
	if !slices.Equal(inside, want) {
		t.Errorf("MouseInside() per frame = %v, want %v", inside, want)
	}
}

// TestContextTiming tests that Time and Frame follow the injected clock.
func TestContextTiming(t *testing.T) {
	cfg := testConfig(1, 1)
	clock := &fakeClock{now: time.Unix(0, 0), step: 500 * time.Millisecond}
	var times []float64
	s := NewSketch(cfg, func(c *Context) []byte {
		times = append(times, c.Time())
		return solidBuffer(c.Config(), 0)
	}, WithOutput(io.Discard), WithClock(clock.Now))

	if err := s.RunOn(headless(cfg, 3)); err != nil {
		t.Fatalf("RunOn() = %v", err)
	}
	// The clock is read once at start and once per tick.
	want := []float64{0.5, 1, 1.5}
	for i := range want {
		if times[i] != want[i] {
			t.Errorf("Time() on tick %d = %v, want %v", i, times[i], want[i])
		}
	}
	if st := s.Stats(); st.Frames != 3 || st.Elapsed != 2*time.Second || st.FPS != 1.5 {
		t.Errorf("Stats() = %+v, want 3 frames in 2s at 1.5 fps", st)
	}
}

// TestRunWithSurfaceOption tests that Run uses the surface given with
// WithSurface and leaves it open.
func TestRunWithSurfaceOption(t *testing.T) {
	cfg := testConfig(1, 1)
	h := headless(cfg, 2)
	s := NewSketch(cfg, func(c *Context) []byte { return solidBuffer(c.Config(), 0) },
		WithOutput(io.Discard), WithSurface(h))
	if err := s.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if h.Ticks() != 2 {
		t.Errorf("Ticks() = %d, want 2", h.Ticks())
	}
	if err := h.Run(func([]input.Event, surface.PresentFunc) error { return surface.ErrStop }); err != nil {
		t.Errorf("surface was closed by Run: %v", err)
	}
}

// TestRunHeadlessNeedsLimit tests that Run refuses an unbounded headless
// run and accepts a bounded one.
func TestRunHeadlessNeedsLimit(t *testing.T) {
	cfg := testConfig(1, 1)
	cfg.Backend = surface.HeadlessName

	s := NewSketch(cfg, func(c *Context) []byte { return solidBuffer(c.Config(), 0) }, WithOutput(io.Discard))
	err := s.Run()
	var re *RunError
	if !errors.As(err, &re) || re.Stage != StageStartup {
		t.Fatalf("Run() = %v, want startup *RunError", err)
	}

	cfg.Frames = 2
	s = NewSketch(cfg, func(c *Context) []byte { return solidBuffer(c.Config(), 0) }, WithOutput(io.Discard))
	if err := s.Run(); err != nil {
		t.Fatalf("Run() with frame limit = %v", err)
	}
	if s.Stats().Frames != 2 {
		t.Errorf("Stats().Frames = %d, want 2", s.Stats().Frames)
	}
}

// TestRunUnknownBackend tests that an unregistered backend is a startup
// error wrapping the registry error.
func TestRunUnknownBackend(t *testing.T) {
	cfg := testConfig(1, 1)
	cfg.Backend = "nope"
	s := NewSketch(cfg, func(*Context) []byte { return nil }, WithOutput(io.Discard))

	err := s.Run()
	var nf *surface.BackendNotFoundError
	if !errors.As(err, &nf) || nf.Name != "nope" {
		t.Errorf("Run() = %v, want BackendNotFoundError", err)
	}
}
