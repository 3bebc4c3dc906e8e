package pigment

// Source is the sampling contract every node of a compositing tree
// implements: produce a Color for any integer coordinate. Sampling is a
// total function; coordinates outside a source's meaningful region yield
// the zero (fully transparent) Color, never an error.
//
// Coordinates are int32 on purpose: combinators translate and expand them
// with ordinary two's-complement arithmetic, so overflow wraps modulo 2^32
// instead of faulting, and borders re-normalize under the same convention.
//
// Implementations must be safe for concurrent use after construction; the
// rasterizer samples from many goroutines at once.
type Source interface {
	// Sample returns the color at (x, y).
	Sample(x, y int32) Color

	// Borders reports the rectangle within which the source has meaningful
	// data, if it has one. The rectangle is a hint for early-outs, not a
	// guarantee: queries outside it are valid and return the zero Color.
	Borders() (Borders, bool)
}

// Borders is an inclusive integer rectangle attached to a bounded Source.
type Borders struct {
	X0, X1 int32
	Y0, Y1 int32
}

// Contains reports whether (x, y) lies inside the rectangle.
func (b Borders) Contains(x, y int32) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Stack is an ordered sequence of sources composited front-to-back: the
// first element is the topmost layer. Each layer contributes its color
// weighted by its own alpha and by the coverage the layers above left
// over, and the result alpha is the running maximum of the layer alphas.
// Sampling stops as soon as the accumulator is fully opaque, so layers
// behind an opaque one are never queried. Expensive sources that are
// likely to be occluded belong toward the end.
type Stack []Source

// Sample implements Source.
func (s Stack) Sample(x, y int32) Color {
	var res Color
	w := 1.0
	for _, layer := range s {
		c := layer.Sample(x, y)
		res.R += w * c.A * c.R
		res.G += w * c.A * c.G
		res.B += w * c.A * c.B
		res.A = maxFloat(res.A, c.A)
		if !res.IsTransparent() {
			break
		}
		w *= 1 - c.A
	}
	return res
}

// Borders implements Source. A stack never reports borders: aggregating the
// layers' rectangles is not defined, so combinators above a Stack cannot
// rely on bounding-rectangle early-outs through it. This is a policy, not
// an oversight.
func (s Stack) Borders() (Borders, bool) {
	return Borders{}, false
}
