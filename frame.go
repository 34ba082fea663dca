package artimate

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/artimate/artimate/internal/parallel"
)

// Frame is a straight-alpha RGBA pixel buffer in the layout draw functions
// return: row-major, row 0 at the top, 4 bytes per pixel.
//
// Frame implements draw.Image, so the image/draw and golang.org/x/image
// packages can paint into it directly.
type Frame struct {
	width  int
	height int
	pix    []uint8
}

// NewFrame creates a transparent frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the width of the frame.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame.
func (f *Frame) Height() int {
	return f.height
}

// Pix returns the underlying buffer. Returning it from a draw function
// hands the frame to the driver.
func (f *Frame) Pix() []uint8 {
	return f.pix
}

// SetRGBA sets a single pixel. Out-of-range coordinates are ignored.
func (f *Frame) SetRGBA(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.pix[i+0] = r
	f.pix[i+1] = g
	f.pix[i+2] = b
	f.pix[i+3] = a
}

// Set implements draw.Image.
func (f *Frame) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	f.SetRGBA(x, y, n.R, n.G, n.B, n.A)
}

// NRGBAAt returns the pixel at (x, y), or transparent black when out of range.
func (f *Frame) NRGBAAt(x, y int) color.NRGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.NRGBA{}
	}
	i := (y*f.width + x) * 4
	return color.NRGBA{R: f.pix[i+0], G: f.pix[i+1], B: f.pix[i+2], A: f.pix[i+3]}
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.NRGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.NRGBAModel
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i+0] = n.R
		f.pix[i+1] = n.G
		f.pix[i+2] = n.B
		f.pix[i+3] = n.A
	}
}

// ShadeFunc returns the color of the pixel at x, y.
type ShadeFunc func(x, y int) color.NRGBA

// Shade sets every pixel to fn(x, y). Rows are shaded in parallel bands,
// so fn must be safe to call from several goroutines at once.
func (f *Frame) Shade(fn ShadeFunc) {
	parallel.Shared().Rows(f.height, func(y0, y1 int) {
		i := y0 * f.width * 4
		for y := y0; y < y1; y++ {
			for x := range f.width {
				c := fn(x, y)
				f.pix[i+0] = c.R
				f.pix[i+1] = c.G
				f.pix[i+2] = c.B
				f.pix[i+3] = c.A
				i += 4
			}
		}
	})
}

// Clear sets every pixel to transparent black.
func (f *Frame) Clear() {
	clear(f.pix)
}

// view returns an *image.NRGBA sharing the frame's buffer.
func (f *Frame) view() *image.NRGBA {
	return &image.NRGBA{Pix: f.pix, Stride: f.width * 4, Rect: f.Bounds()}
}

// ToImage returns a copy of the frame as an *image.NRGBA.
func (f *Frame) ToImage() *image.NRGBA {
	img := image.NewNRGBA(f.Bounds())
	copy(img.Pix, f.pix)
	return img
}

// FrameFromImage creates a frame from any image, converting to straight
// alpha. The frame origin is the image's Bounds().Min.
func FrameFromImage(img image.Image) *Frame {
	b := img.Bounds()
	f := NewFrame(b.Dx(), b.Dy())
	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < f.height; y++ {
			src := n.Pix[n.PixOffset(b.Min.X, b.Min.Y+y):]
			copy(f.pix[y*f.width*4:(y+1)*f.width*4], src[:f.width*4])
		}
		return f
	}
	draw.Draw(f.view(), f.Bounds(), img, b.Min, draw.Src)
	return f
}

// FrameFromPix wraps an existing buffer. It reports an error when the
// length is not width*height*4.
func FrameFromPix(width, height int, pix []byte) (*Frame, error) {
	if want := width * height * 4; len(pix) != want {
		return nil, &BufferSizeError{Want: want, Got: len(pix)}
	}
	return &Frame{width: width, height: height, pix: pix}, nil
}

// DrawString draws s with its baseline at (x, y) using a 7x13 bitmap font.
// It is meant for labels and debug overlays.
func (f *Frame) DrawString(x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  f.view(),
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// EncodePNG writes the frame as an 8-bit RGBA PNG.
func (f *Frame) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.view())
}

// SavePNG writes the frame to a PNG file at path.
func (f *Frame) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is built from the configured output dir
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(file)
	if err := f.EncodePNG(bw); err != nil {
		_ = file.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// DecodePNG reads a PNG into a frame.
func DecodePNG(r io.Reader) (*Frame, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("artimate: decode png: %w", err)
	}
	return FrameFromImage(img), nil
}
