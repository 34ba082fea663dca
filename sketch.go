package artimate

// SketchFunc returns the pixels of the current frame. See DrawFunc for the
// buffer layout.
type SketchFunc func(c *Context) []byte

// Sketch drives a stateless sketch: draw is the only user function and no
// model is kept between ticks.
//
//	cfg := artimate.WithDims(800, 600).SetTitle("Gradient").MustBuild()
//	err := artimate.NewSketch(cfg, func(c *artimate.Context) []byte {
//	    f := c.NewFrame()
//	    // paint f
//	    return f.Pix()
//	}).Run()
type Sketch struct {
	*App[struct{}]
}

// NewSketch creates a Sketch.
func NewSketch(cfg Config, draw SketchFunc, opts ...Option) *Sketch {
	return &Sketch{
		App: NewApp(cfg, struct{}{}, nil, func(c *Context, _ struct{}) []byte {
			return draw(c)
		}, opts...),
	}
}
