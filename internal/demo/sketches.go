package demo

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"

	"github.com/artimate/artimate"
	"github.com/artimate/artimate/input"
)

func init() {
	register(Demo{
		Name:        "gradient",
		Description: "per-pixel gradient that drifts with time and follows the mouse",
		New: func(cfg artimate.Config, opts ...artimate.Option) Runner {
			return artimate.NewSketch(cfg, gradient, opts...)
		},
	})
	register(Demo{
		Name:        "blues",
		Description: "grid of blue tones, saturation follows the mouse x position",
		Configure: func(b artimate.Builder) artimate.Builder {
			return b.SetDims(750, 750).SetTitle("Blues")
		},
		New: func(cfg artimate.Config, opts ...artimate.Option) Runner {
			return artimate.NewSketch(cfg, blues, opts...)
		},
	})
	register(Demo{
		Name:        "boxy",
		Description: "non-overlapping ellipses drawn once",
		Configure: func(b artimate.Builder) artimate.Builder {
			return b.SetDims(1200, 900).SetTitle("Boxy").NoLoop()
		},
		New: func(cfg artimate.Config, opts ...artimate.Option) Runner {
			return artimate.NewSketch(cfg, boxy(1), opts...)
		},
	})
	register(Demo{
		Name:        "rose",
		Description: "rotating rhodonea curve, press 1-9 to change the petal count",
		Configure: func(b artimate.Builder) artimate.Builder {
			return b.SetDims(800, 800).SetTitle("Rose")
		},
		New: newRose,
	})
	register(Demo{
		Name:        "mover",
		Description: "arrow keys move a dot, click teleports it, space resets",
		New:         newMover,
	})
}

func gradient(c *artimate.Context) []byte {
	f := c.NewFrame()
	w, h := c.Width(), c.Height()
	shift := c.Time() * 40
	blue := uint8(255 * clamp01(c.MouseX()/float64(w)))
	f.Shade(func(x, y int) color.NRGBA {
		return color.NRGBA{
			R: uint8(int(float64(x*255/w)+shift) % 256),
			G: uint8(y * 255 / h),
			B: blue,
			A: 255,
		}
	})
	return f.Pix()
}

const bluesCells = 75

func blues(c *artimate.Context) []byte {
	return artimate.Paint(c, func(dc *gg.Context) {
		dc.ClearWithColor(gg.Black)
		w, h := c.SizeF()
		cw, ch := w/bluesCells, h/bluesCells
		s := clamp01(c.MouseX() / w)
		for i := range bluesCells {
			hue := 200 + float64(i)*45/bluesCells
			for j := range bluesCells {
				l := float64(j) / bluesCells
				dc.DrawRectangle(float64(i)*cw, float64(j)*ch, cw, ch)
				dc.SetColor(gg.HSL(hue, s, l).Color())
				_ = dc.FillPreserve()
				dc.SetRGB(1, 1, 1)
				dc.SetLineWidth(0.25)
				_ = dc.Stroke()
			}
		}
	})
}

type ellipse struct {
	x, y, rx, ry float64
}

func (e ellipse) overlaps(o ellipse) bool {
	return !(e.x+e.rx < o.x-o.rx || o.x+o.rx < e.x-e.rx ||
		e.y+e.ry < o.y-o.ry || o.y+o.ry < e.y-e.ry)
}

const (
	boxyMax      = 5000
	boxyAttempts = 20000
	boxySize     = 95.0
)

// boxy places ellipses at random until boxyMax fit or boxyAttempts run out.
// The radii follow a smooth field over the canvas so neighbours look alike.
func boxy(seed uint64) artimate.SketchFunc {
	return func(c *artimate.Context) []byte {
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		w, h := c.SizeF()
		placed := make([]ellipse, 0, 256)

		return artimate.Paint(c, func(dc *gg.Context) {
			dc.ClearWithColor(gg.RGB(0.2, 0.2, 0.2))
			for attempt := 0; attempt < boxyAttempts && len(placed) < boxyMax; attempt++ {
				x, y := rng.Float64()*w, rng.Float64()*h
				r := boxySize / 2 * field(x/w, y/h)
				e := ellipse{x, y, r, r * 0.8}
				if e.rx < 1 || overlapsAny(e, placed) {
					continue
				}
				placed = append(placed, e)
				dc.DrawEllipse(e.x, e.y, e.rx, e.ry)
				dc.SetRGBA(0.5, 0, 0, 0.75)
				_ = dc.FillPreserve()
				dc.SetRGB(1, 0.08, 0.58)
				dc.SetLineWidth(3)
				_ = dc.Stroke()
			}
		})
	}
}

func overlapsAny(e ellipse, placed []ellipse) bool {
	for _, p := range placed {
		if e.overlaps(p) {
			return true
		}
	}
	return false
}

// field is a smooth value in [0, 1] over the unit square.
func field(u, v float64) float64 {
	return (math.Sin(u*2*math.Pi*2)*math.Cos(v*2*math.Pi*2) + 1) / 2
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

type roseModel struct {
	petals int
	angle  float64
}

func newRose(cfg artimate.Config, opts ...artimate.Option) Runner {
	next := 0
	app := artimate.NewApp(cfg, roseModel{petals: 5},
		func(c *artimate.Context, m roseModel) roseModel {
			if next > 0 {
				m.petals, next = next, 0
			}
			m.angle = c.Time() * 0.5
			return m
		},
		drawRose, opts...)
	for k := input.Key1; k <= input.Key9; k++ {
		n := int(k-input.Key1) + 1
		app.OnKeyPress(k, func(*artimate.Context) { next = n })
	}
	return app
}

const roseSteps = 720

func drawRose(c *artimate.Context, m roseModel) []byte {
	return artimate.Paint(c, func(dc *gg.Context) {
		dc.ClearWithColor(gg.RGB(0.05, 0.05, 0.1))
		w, h := c.SizeF()
		cx, cy := w/2, h/2
		radius := math.Min(w, h) * 0.45
		k := float64(m.petals)
		// Even petal counts need a full 2π, odd ones close after π.
		span := math.Pi
		if m.petals%2 == 0 {
			span = 2 * math.Pi
		}
		for i := 0; i <= roseSteps; i++ {
			t := span * float64(i) / roseSteps
			r := radius * math.Cos(k*t)
			x := cx + r*math.Cos(t+m.angle)
			y := cy + r*math.Sin(t+m.angle)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.SetColor(gg.HSL(330, 0.7, 0.6).Color())
		dc.SetLineWidth(2)
		_ = dc.Stroke()
	})
}

type moverModel struct {
	X, Y float64
}

const moverStep = 4

func newMover(cfg artimate.Config, opts ...artimate.Option) Runner {
	home := moverModel{X: float64(cfg.Width) / 2, Y: float64(cfg.Height) / 2}
	var (
		reset    bool
		teleport *moverModel
	)
	app := artimate.NewApp(cfg, home, func(c *artimate.Context, m moverModel) moverModel {
		switch {
		case reset:
			m, reset = home, false
		case teleport != nil:
			m, teleport = *teleport, nil
		}
		return moveHeld(c, m)
	}, drawMover, opts...)

	app.OnKeyPress(input.KeySpace, func(*artimate.Context) { reset = true })
	app.OnMousePress(input.MouseLeft, func(c *artimate.Context) {
		x, y := c.Mouse()
		teleport = &moverModel{X: x, Y: y}
	})
	return app
}

func moveHeld(c *artimate.Context, m moverModel) moverModel {
	if c.KeyHeld(input.KeyArrowLeft) {
		m.X -= moverStep
	}
	if c.KeyHeld(input.KeyArrowRight) {
		m.X += moverStep
	}
	if c.KeyHeld(input.KeyArrowUp) {
		m.Y -= moverStep
	}
	if c.KeyHeld(input.KeyArrowDown) {
		m.Y += moverStep
	}
	w, h := c.SizeF()
	m.X = math.Max(0, math.Min(w, m.X))
	m.Y = math.Max(0, math.Min(h, m.Y))
	return m
}

func drawMover(c *artimate.Context, m moverModel) []byte {
	return artimate.Paint(c, func(dc *gg.Context) {
		dc.ClearWithColor(gg.White)
		dc.SetRGB(0.1, 0.3, 0.9)
		dc.DrawCircle(m.X, m.Y, 12)
		_ = dc.Fill()
	})
}
