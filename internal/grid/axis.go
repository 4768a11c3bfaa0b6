package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrAxisTooShort indicates an axis with fewer than three points.
	ErrAxisTooShort = errors.New("grid: axis needs at least 3 points")

	// ErrNonUniformAxis indicates an axis whose spacing is not constant.
	ErrNonUniformAxis = errors.New("grid: axis spacing is not uniform")
)

// Axis is a uniformly spaced, strictly increasing coordinate axis.
// Delta is stored at construction; all padding and wavenumber formulas
// derive from it rather than re-differencing the points.
type Axis struct {
	Points []float64
	Delta  float64
}

const uniformTol = 1e-9

// NewAxis wraps an existing point slice, validating length and uniformity.
func NewAxis(points []float64) (*Axis, error) {
	if len(points) < 3 {
		return nil, ErrAxisTooShort
	}
	delta := points[1] - points[0]
	if delta <= 0 {
		return nil, fmt.Errorf("%w: spacing %g", ErrNonUniformAxis, delta)
	}
	for i := 1; i < len(points); i++ {
		d := points[i] - points[i-1]
		if math.Abs(d-delta) > uniformTol*math.Max(1, math.Abs(delta)) {
			return nil, fmt.Errorf("%w: spacing %g at index %d, expected %g", ErrNonUniformAxis, d, i, delta)
		}
	}
	return &Axis{Points: points, Delta: delta}, nil
}

// Linspace builds an axis of n points from lo to hi. With includeEnd the last
// point is hi; without it the axis covers a periodic domain of length hi-lo
// and stops one spacing short, matching an endpoint-excluded linspace.
func Linspace(lo, hi float64, n int, includeEnd bool) (*Axis, error) {
	if n < 3 {
		return nil, ErrAxisTooShort
	}
	if hi <= lo {
		return nil, fmt.Errorf("%w: range [%g, %g]", ErrNonUniformAxis, lo, hi)
	}
	pts := make([]float64, n)
	if includeEnd {
		floats.Span(pts, lo, hi)
	} else {
		step := (hi - lo) / float64(n)
		floats.Span(pts, lo, hi-step)
	}
	return &Axis{Points: pts, Delta: pts[1] - pts[0]}, nil
}

func (a *Axis) Len() int { return len(a.Points) }

// Frequencies returns the FFT-ordered sample frequencies of the axis in
// cycles per unit length: 0, 1/(N·Δ), ... up to the Nyquist fold, then the
// negative frequencies descending toward -1/(2Δ).
func (a *Axis) Frequencies() []float64 {
	n := len(a.Points)
	k := make([]float64, n)
	d := 1.0 / (float64(n) * a.Delta)
	half := (n - 1) / 2
	for i := 0; i <= half; i++ {
		k[i] = float64(i) * d
	}
	for i := half + 1; i < n; i++ {
		k[i] = float64(i-n) * d
	}
	return k
}
