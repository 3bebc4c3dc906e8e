package pigment

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Pixmap is a rectangular RGBA8 pixel buffer, 4 bytes per pixel, row-major
// with no padding. It is the rasterizer's output format.
type Pixmap struct {
	width  int32
	height int32
	data   []uint8
}

// NewPixmap creates a pixmap with the given dimensions. Non-positive
// dimensions yield an empty pixmap.
func NewPixmap(width, height int32) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, int(width)*int(height)*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int32 {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int32 {
	return p.height
}

// Data returns the raw pixel data (RGBA, row-major).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Set writes a color at (x, y) using the truncating byte conversion.
// Out-of-range coordinates are ignored.
func (p *Pixmap) Set(x, y int32, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (int(y)*int(p.width) + int(x)) * 4
	b := c.Bytes()
	copy(p.data[i:i+4], b[:])
}

// At returns the color at (x, y), or the zero Color outside the buffer.
func (p *Pixmap) At(x, y int32) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Color{}
	}
	i := (int(y)*int(p.width) + int(x)) * 4
	return ColorFromBytes(p.data[i], p.data[i+1], p.data[i+2], p.data[i+3])
}

// Image returns the pixmap as a *image.NRGBA sharing the same backing
// array. Mutating one mutates the other.
func (p *Pixmap) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: int(p.width) * 4,
		Rect:   image.Rect(0, 0, int(p.width), int(p.height)),
	}
}

// SavePNG saves the pixmap as a PNG file. The imageio package covers other
// formats.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.Image()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
