package artimate

import (
	"fmt"

	"github.com/artimate/artimate/input"
)

// Defaults used by Defaults and WithDims.
const (
	DefaultWidth       = 1080
	DefaultHeight      = 700
	DefaultTitle       = "Artimate"
	DefaultOutputDir   = "~/Downloads/frames"
	DefaultFramePrefix = "frame"
)

// Config describes the window and loop behavior of a sketch.
//
// A Config can be written as a literal or assembled with a Builder; either
// way it is validated again when Run starts. The driver keeps its own copy,
// so changing a Config after NewApp has no effect.
type Config struct {
	// Width and Height of the pixel buffer and window, in pixels.
	Width  int
	Height int

	// Title of the window.
	Title string

	// NoLoop renders exactly one frame, then stops.
	NoLoop bool

	// Frames stops the loop after that many frames (0 = until the window
	// is closed).
	Frames int

	// FramesToSave writes the first N frames as PNG files to OutputDir.
	FramesToSave int

	// CursorVisible shows the cursor over the window.
	CursorVisible bool

	// OutputDir receives saved frames and snapshots. A leading "~" is
	// expanded to the user's home directory.
	OutputDir string

	// FramePrefix starts every saved file name.
	FramePrefix string

	// Backend selects a registered surface by name; "" picks the best
	// available one.
	Backend string

	// SnapshotKey with SnapshotMods held saves the current frame to
	// OutputDir. KeyUnknown disables the shortcut.
	SnapshotKey  input.Key
	SnapshotMods input.Mods
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames must not be negative, got %d", ErrInvalidConfig, c.Frames)
	case c.FramesToSave < 0:
		return fmt.Errorf("%w: frames to save must not be negative, got %d", ErrInvalidConfig, c.FramesToSave)
	case c.FramesToSave > 0 && c.OutputDir == "":
		return fmt.Errorf("%w: output directory required to save frames", ErrInvalidConfig)
	}
	return nil
}

// Size returns the width and height.
func (c Config) Size() (int, int) {
	return c.Width, c.Height
}

// SizeF returns the width and height as float64.
func (c Config) SizeF() (float64, float64) {
	return float64(c.Width), float64(c.Height)
}

// BufferLen returns the byte length every draw function must return.
func (c Config) BufferLen() int {
	return c.Width * c.Height * 4
}

// Builder assembles a Config from chained setters.
// Every setter returns a modified copy:
//
//	cfg, err := artimate.WithDims(800, 600).
//	    SetTitle("Blues").
//	    SetFramesToSave(10).
//	    Build()
type Builder struct {
	cfg Config
}

// Defaults returns a Builder with every field at its default:
// 1080x700, looping, cursor visible, nothing saved, Super+S snapshots.
func Defaults() Builder {
	return Builder{cfg: Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Title:         DefaultTitle,
		CursorVisible: true,
		OutputDir:     DefaultOutputDir,
		FramePrefix:   DefaultFramePrefix,
		SnapshotKey:   input.KeyS,
		SnapshotMods:  input.ModSuper,
	}}
}

// WithDims returns a default Builder with the given dimensions.
func WithDims(width, height int) Builder {
	b := Defaults()
	b.cfg.Width = width
	b.cfg.Height = height
	return b
}

// SetDims sets the width and height.
func (b Builder) SetDims(width, height int) Builder {
	b.cfg.Width = width
	b.cfg.Height = height
	return b
}

// SetTitle sets the window title.
func (b Builder) SetTitle(title string) Builder {
	b.cfg.Title = title
	return b
}

// SetFramesToSave sets how many leading frames are written as PNG files.
func (b Builder) SetFramesToSave(n int) Builder {
	b.cfg.FramesToSave = n
	return b
}

// SetCursorVisibility shows or hides the cursor over the window.
func (b Builder) SetCursorVisibility(visible bool) Builder {
	b.cfg.CursorVisible = visible
	return b
}

// NoLoop renders a single frame.
func (b Builder) NoLoop() Builder {
	b.cfg.NoLoop = true
	return b
}

// SetFrames limits the run to n frames.
func (b Builder) SetFrames(n int) Builder {
	b.cfg.Frames = n
	return b
}

// SetOutputDir sets where frames and snapshots are written.
func (b Builder) SetOutputDir(dir string) Builder {
	b.cfg.OutputDir = dir
	return b
}

// SetFramePrefix sets the file name prefix of saved frames.
func (b Builder) SetFramePrefix(prefix string) Builder {
	b.cfg.FramePrefix = prefix
	return b
}

// SetBackend selects a surface backend by registry name.
func (b Builder) SetBackend(name string) Builder {
	b.cfg.Backend = name
	return b
}

// SetSnapshotKey sets the snapshot shortcut. Use input.KeyUnknown to
// disable it.
func (b Builder) SetSnapshotKey(key input.Key, mods input.Mods) Builder {
	b.cfg.SnapshotKey = key
	b.cfg.SnapshotMods = mods
	return b
}

// Config returns the Config assembled so far without validating it.
func (b Builder) Config() Config {
	return b.cfg
}

// Build validates and returns the Config.
func (b Builder) Build() (Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return Config{}, err
	}
	return b.cfg, nil
}

// MustBuild is like Build but panics on error.
// Use only when the values are constants.
func (b Builder) MustBuild() Config {
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}
