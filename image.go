package pigment

import (
	"errors"
	"image"
)

// Image errors.
var (
	// ErrUnsupportedFormat is returned when a decoded image uses a pixel
	// layout the engine does not recognize. Callers can recover by
	// converting upstream; see the imageio package.
	ErrUnsupportedFormat = errors.New("pigment: unsupported image format")

	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("pigment: invalid image dimensions")

	// ErrDataTooSmall is returned when a pixel buffer is smaller than the
	// dimensions and format require.
	ErrDataTooSmall = errors.New("pigment: pixel data too small")
)

// Format is the channel layout of an Image's backing grid.
type Format uint8

const (
	// FormatGray8 is 1 byte per pixel: gray, implicitly opaque.
	FormatGray8 Format = iota

	// FormatGrayAlpha8 is 2 bytes per pixel: gray then alpha.
	FormatGrayAlpha8

	// FormatRGB8 is 3 bytes per pixel: RGB, implicitly opaque.
	FormatRGB8

	// FormatRGBA8 is 4 bytes per pixel: RGBA, non-premultiplied.
	FormatRGBA8
)

// BytesPerPixel returns the storage size of one pixel in the format.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatGray8:
		return 1
	case FormatGrayAlpha8:
		return 2
	case FormatRGB8:
		return 3
	default:
		return 4
	}
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatGrayAlpha8:
		return "GrayAlpha8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}

// Image is a sampled image: an immutable decoded pixel grid behind the
// Source contract. Whatever the backing layout, reads normalize to an RGBA
// Color; gray replicates into the color channels and layouts without alpha
// read as opaque.
//
// The grid must not be mutated after construction. Combinators and the
// rasterizer only borrow the Image, so one grid can back many trees.
type Image struct {
	data   []byte
	width  int32
	height int32
	format Format
}

// NewImage wraps raw pixel data, row-major with no padding, in an Image.
// The data is referenced, not copied; the caller must not modify it
// afterwards. Returns ErrDataTooSmall when data cannot hold
// width*height pixels of the format.
func NewImage(width, height int32, format Format, data []byte) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	need := int(width) * int(height) * format.BytesPerPixel()
	if len(data) < need {
		return nil, ErrDataTooSmall
	}
	return &Image{data: data, width: width, height: height, format: format}, nil
}

// FromImage converts a standard library image into an Image. Only layouts
// with a direct grid equivalent are accepted: *image.Gray becomes Gray8 and
// *image.NRGBA becomes RGBA8. Anything else (premultiplied, paletted,
// YCbCr, 16-bit) returns ErrUnsupportedFormat; imageio.Decode converts
// those upstream.
func FromImage(im image.Image) (*Image, error) {
	switch im := im.(type) {
	case *image.Gray:
		return fromStride(im.Pix, im.Bounds(), im.Stride, FormatGray8)
	case *image.NRGBA:
		return fromStride(im.Pix, im.Bounds(), im.Stride, FormatRGBA8)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// fromStride repacks a possibly-padded pixel slice into a dense grid.
func fromStride(pix []byte, bounds image.Rectangle, stride int, format Format) (*Image, error) {
	w, h := bounds.Dx(), bounds.Dy()
	bpp := format.BytesPerPixel()
	row := w * bpp

	if stride == row {
		return NewImage(int32(w), int32(h), format, pix[:h*row])
	}

	data := make([]byte, h*row)
	for y := 0; y < h; y++ {
		copy(data[y*row:(y+1)*row], pix[y*stride:y*stride+row])
	}
	return NewImage(int32(w), int32(h), format, data)
}

// Size returns the grid dimensions.
func (im *Image) Size() (width, height int32) {
	return im.width, im.height
}

// Format returns the backing grid's channel layout.
func (im *Image) Format() Format {
	return im.format
}

// At returns the color at (x, y), normalized to RGBA, and whether the
// coordinate lies inside the grid.
func (im *Image) At(x, y int32) (Color, bool) {
	if x < 0 || y < 0 || x >= im.width || y >= im.height {
		return Color{}, false
	}

	bpp := im.format.BytesPerPixel()
	i := (int(y)*int(im.width) + int(x)) * bpp

	switch im.format {
	case FormatGray8:
		v := im.data[i]
		return ColorFromBytes(v, v, v, 255), true
	case FormatGrayAlpha8:
		v, a := im.data[i], im.data[i+1]
		return ColorFromBytes(v, v, v, a), true
	case FormatRGB8:
		return ColorFromBytes(im.data[i], im.data[i+1], im.data[i+2], 255), true
	default:
		return ColorFromBytes(im.data[i], im.data[i+1], im.data[i+2], im.data[i+3]), true
	}
}

// Sample implements Source: out-of-grid coordinates read as the zero
// (fully transparent) Color.
func (im *Image) Sample(x, y int32) Color {
	c, _ := im.At(x, y)
	return c
}

// Borders implements Source and is always present: the grid's full
// rectangle, degenerating to (0,0)-(0,0) for empty images.
func (im *Image) Borders() (Borders, bool) {
	x1 := im.width - 1
	if x1 < 0 {
		x1 = 0
	}
	y1 := im.height - 1
	if y1 < 0 {
		y1 = 0
	}
	return Borders{X0: 0, X1: x1, Y0: 0, Y1: y1}, true
}
