// Package artimate runs creative-coding sketches: you supply a function
// that returns an RGBA pixel buffer, artimate owns the window, the frame
// loop, input and optional PNG export.
//
// # Quick Start
//
//	import (
//	    "github.com/artimate/artimate"
//	    _ "github.com/artimate/artimate/backend/gogpu"
//	)
//
//	cfg := artimate.WithDims(800, 600).SetTitle("Gradient").MustBuild()
//	sketch := artimate.NewSketch(cfg, func(c *artimate.Context) []byte {
//	    f := c.NewFrame()
//	    for y := range c.Height() {
//	        for x := range c.Width() {
//	            f.SetRGBA(x, y, uint8(x), uint8(y), 128, 255)
//	        }
//	    }
//	    return f.Pix()
//	})
//	if err := sketch.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Frame.Shade does the same per-pixel work across all CPUs when the
// function is safe to call concurrently.
//
// # Sketches and Apps
//
// A Sketch has only a draw function. An App threads a model of any type
// through an update function and a draw function:
//
//	app := artimate.NewApp(cfg, Ball{X: 10},
//	    func(c *artimate.Context, b Ball) Ball { b.X++; return b },
//	    func(c *artimate.Context, b Ball) []byte { return render(c, b) })
//
// # Frame Loop
//
// Each tick runs, in order: poll (input state and handlers), update (App
// only), draw, present, save, advance. A draw function must return exactly
// Width*Height*4 bytes; anything else stops the run with a *RunError
// wrapping a *BufferSizeError. Saving failures stop the run too.
//
// # Input
//
// Handlers registered with OnKeyPress, OnKeyRelease and OnMousePress fire
// once per transition. OnKeyHeld handlers fire on every tick the key is
// down. The Context passed to every callback exposes the mouse position,
// the held keys and frame timing.
//
// # Backends
//
// Windows come from the surface registry. Import one or more backends for
// their side effect:
//   - backend/gogpu: GPU window via gogpu
//   - backend/glfw: OpenGL window via GLFW
//   - backend/ebiten: Ebitengine window
//
// Without a windowed backend the headless surface is used, which needs a
// frame limit (SetFrames or NoLoop).
//
// # Saving Frames
//
// SetFramesToSave(n) writes the first n frames to OutputDir as
// <prefix>_0000.png, <prefix>_0001.png, and so on. The snapshot shortcut
// (Super+S by default) saves the current frame at any time.
package artimate
