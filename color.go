package pigment

// Color is a 4-channel RGBA color with float64 components.
// Components are conventionally in [0, 1] but arithmetic never clamps;
// callers that need bytes get the raw truncated conversion from Bytes.
type Color struct {
	R, G, B, A float64
}

// epsilon is the smallest alpha considered visible.
const epsilon = 1e-7

// ColorFromUint32 unpacks a 0xRRGGBBAA value into a Color.
func ColorFromUint32(v uint32) Color {
	return ColorFromBytes(
		uint8(v>>24&0xFF),
		uint8(v>>16&0xFF),
		uint8(v>>8&0xFF),
		uint8(v&0xFF),
	)
}

// ColorFromBytes builds a Color from 8-bit channels, mapping 255 to 1.0.
func ColorFromBytes(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// ColorFromFloats builds a Color from float channels without validation.
func ColorFromFloats(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Bytes converts each channel to an 8-bit value by multiplying by 255 and
// truncating. There is no rounding and no clamping: channels outside [0, 1]
// produce implementation-defined bytes.
func (c Color) Bytes() [4]uint8 {
	return [4]uint8{
		uint8(c.R * 255),
		uint8(c.G * 255),
		uint8(c.B * 255),
		uint8(c.A * 255),
	}
}

// IsVisible reports whether the color has any alpha at all.
func (c Color) IsVisible() bool {
	return c.A > epsilon
}

// IsTransparent reports whether the color is not fully opaque.
// Despite the name it does not mean "invisible"; Stack uses it to decide
// whether deeper layers can still contribute.
func (c Color) IsTransparent() bool {
	return c.A < 1
}

// Overlay composites top over c. The RGB channels interpolate toward top by
// top's alpha and the result alpha is the maximum of the two alphas. This is
// deliberately not Porter-Duff "over"; the max-alpha rule is part of the
// engine's compositing contract.
func (c Color) Overlay(top Color) Color {
	return Color{
		R: lerp(c.R, top.R, top.A),
		G: lerp(c.G, top.G, top.A),
		B: lerp(c.B, top.B, top.A),
		A: maxFloat(c.A, top.A),
	}
}

// Lerp interpolates per channel between c (t=0) and other (t=1).
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: lerp(c.R, other.R, t),
		G: lerp(c.G, other.G, t),
		B: lerp(c.B, other.B, t),
		A: lerp(c.A, other.A, t),
	}
}

// Add returns the channel-wise sum. Blur uses it to accumulate samples.
func (c Color) Add(other Color) Color {
	return Color{
		R: c.R + other.R,
		G: c.G + other.G,
		B: c.B + other.B,
		A: c.A + other.A,
	}
}

// Mul returns the channel-wise product.
func (c Color) Mul(other Color) Color {
	return Color{
		R: c.R * other.R,
		G: c.G * other.G,
		B: c.B * other.B,
		A: c.A * other.A,
	}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Sample implements Source: a Color is a constant field.
func (c Color) Sample(x, y int32) Color {
	return c
}

// Borders implements Source; a constant field is unbounded.
func (c Color) Borders() (Borders, bool) {
	return Borders{}, false
}

func lerp(x, y, t float64) float64 {
	return x + t*(y-x)
}

func maxFloat(x, y float64) float64 {
	if x > y {
		return x
	}
	return y
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{A: 1}
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = Color{}
)
