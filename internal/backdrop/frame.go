package backdrop

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register decoders
	_ "image/png"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/vovakirdan/skyraid/internal/core"
)

// quantMask drops the low bits of each channel so neighbouring cells
// share styles more often.
const quantMask = 0xf8

// Frame is a decoded image converted to one background color per cell.
type Frame struct {
	ID    string
	W, H  int
	Cells []core.RGB // row-major, W*H
}

// At returns the color of cell (x, y).
func (f *Frame) At(x, y int) (core.RGB, bool) {
	if f == nil || x < 0 || y < 0 || x >= f.W || y >= f.H {
		return core.RGB{}, false
	}
	return f.Cells[y*f.W+x], true
}

// FrameOptions controls how images are turned into frames.
type FrameOptions struct {
	Dim  float64 // brightness multiplier in (0, 1]
	Fill colorful.Color
}

// ParseFill parses a #rrggbb letterbox color.
func ParseFill(hex string) (colorful.Color, error) {
	if hex == "" {
		return colorful.Color{}, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("backdrop: fill %q: %w", hex, err)
	}
	return c, nil
}

// Decode decodes JPEG, PNG or WebP bytes.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &FetchError{Kind: KindMalformed, Op: "decode", Err: err}
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, &FetchError{Kind: KindMalformed, Op: "decode", Err: fmt.Errorf("empty image %v", b)}
	}
	return img, nil
}

// FitRect returns the largest rectangle with the source aspect ratio
// that fits in w x h, centred. Images are never scaled up.
func FitRect(src image.Rectangle, w, h int) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	scale := min(float64(w)/float64(sw), float64(h)/float64(sh), 1)
	nw := max(int(float64(sw)*scale), 1)
	nh := max(int(float64(sh)*scale), 1)
	x := (w - nw) / 2
	y := (h - nh) / 2
	return image.Rect(x, y, x+nw, y+nh)
}

// NewFrame scales img into a w x h cell frame. Each cell covers two
// pixel rows so the picture keeps its aspect on terminal cells.
func NewFrame(id string, img image.Image, w, h int, opts FrameOptions) Frame {
	f := Frame{ID: id, W: w, H: h, Cells: make([]core.RGB, w*h)}
	if w <= 0 || h <= 0 {
		return f
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h*2))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Fill), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(canvas, FitRect(img.Bounds(), w, h*2), img, img.Bounds(), draw.Over, nil)

	dim := opts.Dim
	if dim <= 0 || dim > 1 {
		dim = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top := toColorful(canvas.RGBAAt(x, y*2))
			bottom := toColorful(canvas.RGBAAt(x, y*2+1))
			f.Cells[y*w+x] = shade(top.BlendRgb(bottom, 0.5), dim)
		}
	}
	return f
}

func toColorful(c color.RGBA) colorful.Color {
	cc, _ := colorful.MakeColor(c)
	return cc
}

func shade(c colorful.Color, dim float64) core.RGB {
	h, s, v := c.Hsv()
	r, g, b := colorful.Hsv(h, s, v*dim).Clamped().RGB255()
	return core.RGB{R: r & quantMask, G: g & quantMask, B: b & quantMask}
}
