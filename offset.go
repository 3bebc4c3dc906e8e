package pigment

// Offset translates a child source by an integer vector. Sampling at (x, y)
// queries the child at (x-dx, y-dy); subtraction wraps modulo 2^32, the same
// convention under which borders are translated, so the two stay consistent.
type Offset struct {
	src    Source
	dx, dy int32
}

// NewOffset wraps src, translating it by (dx, dy).
func NewOffset(src Source, dx, dy int32) *Offset {
	return &Offset{src: src, dx: dx, dy: dy}
}

// Sample implements Source.
func (o *Offset) Sample(x, y int32) Color {
	return o.src.Sample(x-o.dx, y-o.dy)
}

// Borders implements Source, translating the child's rectangle by the
// offset vector.
func (o *Offset) Borders() (Borders, bool) {
	b, ok := o.src.Borders()
	if !ok {
		return Borders{}, false
	}
	return Borders{
		X0: b.X0 + o.dx,
		X1: b.X1 + o.dx,
		Y0: b.Y0 + o.dy,
		Y1: b.Y1 + o.dy,
	}, true
}
