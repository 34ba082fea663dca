package artimate

import (
	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Paint draws with a gg context of the configured size and returns the
// result as a straight-alpha buffer ready to return from a draw function:
//
//	func draw(c *artimate.Context) []byte {
//	    return artimate.Paint(c, func(dc *gg.Context) {
//	        dc.ClearWithColor(gg.White)
//	        dc.SetRGB(0, 0, 1)
//	        dc.DrawCircle(c.MouseX(), c.MouseY(), 40)
//	        _ = dc.Fill()
//	    })
//	}
func Paint(c *Context, fn func(dc *gg.Context)) []byte {
	return PaintFrame(c, fn).Pix()
}

// PaintFrame is like Paint but returns a Frame.
func PaintFrame(c *Context, fn func(dc *gg.Context)) *Frame {
	dc := gg.NewContext(c.Width(), c.Height())
	defer func() { _ = dc.Close() }()

	fn(dc)
	if err := dc.FlushGPU(); err != nil {
		Logger().Warn("artimate: gg flush", "err", err)
	}

	// gg keeps premultiplied pixels; frames are straight alpha.
	f := c.NewFrame()
	img := dc.Image()
	draw.Draw(f.view(), f.Bounds(), img, img.Bounds().Min, draw.Src)
	return f
}
