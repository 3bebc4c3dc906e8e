package pigment

// Blur averages a child source over a disc of the given radius. The mask is
// the open disc dx*dx+dy*dy < r*r with dx, dy ranging over [-r, r), and the
// result is the plain mean of the contributing samples.
//
// When the blur has borders, sampling outside them short-circuits to the
// zero Color without touching the child. Pixels just outside the blurred
// region are therefore all-or-nothing, never partially blurred.
type Blur struct {
	src    Source
	radius int32
}

// maxBlurRadius bounds the disc radius so the squared-distance mask stays
// within int32 range.
const maxBlurRadius = 255

// NewBlur wraps src with a disc blur of the given radius. A negative
// radius is treated as zero; radii above 255 are clamped to 255.
func NewBlur(src Source, radius int32) *Blur {
	switch {
	case radius < 0:
		radius = 0
	case radius > maxBlurRadius:
		radius = maxBlurRadius
	}
	return &Blur{src: src, radius: radius}
}

// Sample implements Source. A radius of zero admits no samples and yields
// the zero Color everywhere.
func (b *Blur) Sample(x, y int32) Color {
	var col Color

	if borders, ok := b.Borders(); ok && !borders.Contains(x, y) {
		return col
	}

	r := b.radius
	rsqr := r * r
	var n int32
	for dy := -r; dy < r; dy++ {
		for dx := -r; dx < r; dx++ {
			if dx*dx+dy*dy < rsqr {
				col = col.Add(b.src.Sample(x+dx, y+dy))
				n++
			}
		}
	}

	if n > 0 {
		col = col.Scale(1 / float64(n))
	}
	return col
}

// Borders implements Source, expanding the child's rectangle by the radius
// on every side.
func (b *Blur) Borders() (Borders, bool) {
	cb, ok := b.src.Borders()
	if !ok {
		return Borders{}, false
	}
	return Borders{
		X0: cb.X0 - b.radius,
		X1: cb.X1 + b.radius,
		Y0: cb.Y0 - b.radius,
		Y1: cb.Y1 + b.radius,
	}, true
}
