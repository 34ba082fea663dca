package artimate

import (
	"io"
	"os"
	"time"

	"github.com/artimate/artimate/surface"
)

// Option configures an App or Sketch during creation.
//
// Example:
//
//	// Default: best available backend, summary on stdout
//	app := artimate.NewSketch(cfg, draw)
//
//	// Explicit surface, summary discarded
//	app := artimate.NewSketch(cfg, draw,
//	    artimate.WithSurface(surface.NewHeadless(opts)),
//	    artimate.WithOutput(io.Discard))
type Option func(*appOptions)

// appOptions holds optional configuration for a driver.
type appOptions struct {
	out     io.Writer
	surface surface.Surface
	clock   func() time.Time
}

// defaultOptions returns the default driver options.
func defaultOptions() appOptions {
	return appOptions{
		out:   os.Stdout,
		clock: time.Now,
	}
}

// WithOutput sets where the run summary line is written. Pass io.Discard
// to suppress it.
func WithOutput(w io.Writer) Option {
	return func(o *appOptions) {
		if w == nil {
			w = io.Discard
		}
		o.out = w
	}
}

// WithSurface runs on s instead of opening a backend from the registry.
// The caller keeps ownership of s; Run does not close it.
func WithSurface(s surface.Surface) Option {
	return func(o *appOptions) {
		o.surface = s
	}
}

// WithClock replaces time.Now for frame timing and run statistics.
func WithClock(now func() time.Time) Option {
	return func(o *appOptions) {
		if now != nil {
			o.clock = now
		}
	}
}
