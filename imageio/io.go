// Package imageio is the codec glue between the pigment core and image
// files. The core consumes and produces pixel grids; decoding bytes into
// grids and encoding pixmaps back out lives here, outside the sampling
// contract.
//
// Supported formats: PNG, JPEG, GIF, BMP, TIFF and WebP for decoding;
// PNG, JPEG, BMP and TIFF for encoding.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	_ "golang.org/x/image/webp" // registered for content sniffing only

	"github.com/pigment/pigment"
)

// I/O errors.
var (
	// ErrUnknownExtension is returned when a file extension does not map
	// to a supported format.
	ErrUnknownExtension = errors.New("imageio: unknown file extension")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Load reads an image file into a pigment.Image, auto-detecting the format
// from the extension or, failing that, the content.
func Load(path string) (*pigment.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return DecodePNG(f)
	case ".jpg", ".jpeg":
		return DecodeJPEG(f)
	case ".bmp":
		return DecodeBMP(f)
	case ".tif", ".tiff":
		return DecodeTIFF(f)
	default:
		return Decode(f)
	}
}

// LoadBytes decodes an image from a byte slice, auto-detecting the format.
func LoadBytes(data []byte) (*pigment.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*pigment.Image, error) {
	im, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return normalize(im)
}

// DecodePNG decodes a PNG image from the given reader.
func DecodePNG(r io.Reader) (*pigment.Image, error) {
	im, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode PNG: %w", err)
	}
	return normalize(im)
}

// DecodeJPEG decodes a JPEG image from the given reader.
func DecodeJPEG(r io.Reader) (*pigment.Image, error) {
	im, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode JPEG: %w", err)
	}
	return normalize(im)
}

// DecodeBMP decodes a BMP image from the given reader.
func DecodeBMP(r io.Reader) (*pigment.Image, error) {
	im, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode BMP: %w", err)
	}
	return normalize(im)
}

// DecodeTIFF decodes a TIFF image from the given reader.
func DecodeTIFF(r io.Reader) (*pigment.Image, error) {
	im, err := tiff.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode TIFF: %w", err)
	}
	return normalize(im)
}

// DecodeGIF decodes the first frame of a GIF from the given reader.
func DecodeGIF(r io.Reader) (*pigment.Image, error) {
	im, err := gif.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode GIF: %w", err)
	}
	return normalize(im)
}

// normalize hands the decoded image to the core, converting layouts the
// core rejects (paletted, premultiplied, YCbCr, 16-bit) into NRGBA first.
func normalize(im image.Image) (*pigment.Image, error) {
	out, err := pigment.FromImage(im)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, pigment.ErrUnsupportedFormat) {
		return nil, err
	}

	pigment.Logger().Warn("imageio: converting unsupported layout",
		"type", fmt.Sprintf("%T", im))

	b := im.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, im, b, xdraw.Src, nil)
	return pigment.FromImage(dst)
}

// Save writes a pixmap to a file in the format implied by the extension.
// PNG, JPEG, BMP and TIFF are supported.
func Save(path string, pm *pigment.Pixmap) error {
	// Resolve the encoder before touching the filesystem so a bad
	// extension does not leave an empty file behind.
	var encode func(io.Writer, *pigment.Pixmap) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = EncodePNG
	case ".jpg", ".jpeg":
		encode = func(w io.Writer, pm *pigment.Pixmap) error {
			return EncodeJPEG(w, pm, 90)
		}
	case ".bmp":
		encode = EncodeBMP
	case ".tif", ".tiff":
		encode = EncodeTIFF
	default:
		return fmt.Errorf("%w: %q", ErrUnknownExtension, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := encode(f, pm); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodePNG writes the pixmap to w as PNG.
func EncodePNG(w io.Writer, pm *pigment.Pixmap) error {
	if err := png.Encode(w, pm.Image()); err != nil {
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG writes the pixmap to w as JPEG with the given quality (1-100).
// JPEG has no alpha channel; transparency is lost.
func EncodeJPEG(w io.Writer, pm *pigment.Pixmap, quality int) error {
	if err := jpeg.Encode(w, pm.Image(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("imageio: encode JPEG: %w", err)
	}
	return nil
}

// EncodeBMP writes the pixmap to w as BMP.
func EncodeBMP(w io.Writer, pm *pigment.Pixmap) error {
	if err := bmp.Encode(w, pm.Image()); err != nil {
		return fmt.Errorf("imageio: encode BMP: %w", err)
	}
	return nil
}

// EncodeTIFF writes the pixmap to w as an uncompressed TIFF.
func EncodeTIFF(w io.Writer, pm *pigment.Pixmap) error {
	if err := tiff.Encode(w, pm.Image(), nil); err != nil {
		return fmt.Errorf("imageio: encode TIFF: %w", err)
	}
	return nil
}
