package pigment

import (
	"errors"
	"math"
)

// ErrInvalidScaleFactor is returned when a Scale is constructed with a
// factor that is zero, negative, or too small to invert.
var ErrInvalidScaleFactor = errors.New("pigment: scale factor must be positive")

// Filter selects the resampling filter used by Scale.
type Filter uint8

const (
	// FilterNearest truncates the mapped coordinate and samples directly.
	FilterNearest Filter = iota

	// FilterLinear interpolates between the two nearest sample points per
	// axis, using the pixel-center convention described at Scale.
	FilterLinear
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}

// Scale resamples a child source by a positive factor. An output coordinate
// maps to child space as childCoord = outputCoord/factor; the reciprocal is
// precomputed so sampling multiplies instead of divides.
//
// The linear filter is a pixel-center scheme, not the naive floor/floor+1
// one: for fractional part f of |childCoord|, f < 0.5 pairs the truncated
// point with its predecessor at weight 0.5-f, f > 0.5 with its successor at
// weight f-0.5, and f == 0.5 collapses to a single direct sample.
type Scale struct {
	src    Source
	recip  float64
	filter Filter
}

// NewScale wraps src, scaling it by factor with the given filter.
// Returns ErrInvalidScaleFactor if factor is not strictly positive.
func NewScale(src Source, factor float64, filter Filter) (*Scale, error) {
	if factor <= epsilon {
		return nil, ErrInvalidScaleFactor
	}
	return &Scale{src: src, recip: 1 / factor, filter: filter}, nil
}

// MustScale is like NewScale but panics on an invalid factor. Intended for
// construction from constants.
func MustScale(src Source, factor float64, filter Filter) *Scale {
	s, err := NewScale(src, factor, filter)
	if err != nil {
		panic(err)
	}
	return s
}

// truncInt32 truncates v toward zero, saturating at the int32 limits.
// Go leaves out-of-range float-to-int conversion implementation-specific;
// saturating keeps coordinate mapping identical on every architecture.
func truncInt32(v float64) int32 {
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	if v <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// linearPoints returns the two sample points bracketing v and the weight of
// the second, per the pixel-center convention. The points coincide exactly
// at f == 0.5.
func linearPoints(v float64) (a, b int32, t float64) {
	a = truncInt32(v)
	f := math.Abs(v) - math.Trunc(math.Abs(v))
	switch {
	case f < 0.5:
		return a, a - 1, 0.5 - f
	case f == 0.5:
		return a, a, 0
	default:
		return a, a + 1, f - 0.5
	}
}

// Sample implements Source.
func (s *Scale) Sample(x, y int32) Color {
	cx := s.recip * float64(x)
	cy := s.recip * float64(y)

	if s.filter == FilterNearest {
		return s.src.Sample(truncInt32(cx), truncInt32(cy))
	}

	x0, x1, xt := linearPoints(cx)
	y0, y1, yt := linearPoints(cy)

	switch {
	case x0 == x1 && y0 == y1:
		return s.src.Sample(x0, y0)
	case y0 == y1:
		a := s.src.Sample(x0, y0)
		b := s.src.Sample(x1, y0)
		return a.Lerp(b, xt)
	case x0 == x1:
		a := s.src.Sample(x0, y0)
		b := s.src.Sample(x0, y1)
		return a.Lerp(b, yt)
	default:
		c0 := s.src.Sample(x0, y0).Lerp(s.src.Sample(x1, y0), xt)
		c1 := s.src.Sample(x0, y1).Lerp(s.src.Sample(x1, y1), xt)
		return c0.Lerp(c1, yt)
	}
}

// Borders implements Source, scaling the child's rectangle by the factor
// and truncating each bound toward zero, saturating at the int32 limits.
// Extreme factors can degenerate or invert the rectangle; nothing guards
// against that, callers tolerate an empty hint.
func (s *Scale) Borders() (Borders, bool) {
	b, ok := s.src.Borders()
	if !ok {
		return Borders{}, false
	}
	return Borders{
		X0: truncInt32(float64(b.X0) / s.recip),
		X1: truncInt32(float64(b.X1) / s.recip),
		Y0: truncInt32(float64(b.Y0) / s.recip),
		Y1: truncInt32(float64(b.Y1) / s.recip),
	}, true
}
