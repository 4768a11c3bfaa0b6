// Package interp implements the cubic-spline interpolators used by the
// semi-Lagrangian advection steppers.
//
//   - [Spline]: 1D natural cubic spline over fixed abscissae
//   - [Bicubic]: tensor-product cubic spline on a rectilinear grid
//
// Both interpolators reuse internal coefficient and scratch buffers across
// Fit calls, so they are not safe for concurrent use.
package interp

import (
	"fmt"
	"sort"
)

// Spline is a natural cubic spline with fixed, strictly increasing
// abscissae. Fit may be called repeatedly with new ordinates; coefficient
// storage is reused.
type Spline struct {
	xs []float64
	ys []float64
	y2 []float64
	u  []float64
}

// NewSpline fixes the abscissae of the spline. The slice is retained, not
// copied; callers must not reorder it afterwards.
func NewSpline(xs []float64) *Spline {
	n := len(xs)
	return &Spline{
		xs: xs,
		ys: make([]float64, n),
		y2: make([]float64, n),
		u:  make([]float64, n),
	}
}

// Fit computes spline coefficients for the ordinates ys. Natural end
// conditions: zero second derivative at both ends.
func (s *Spline) Fit(ys []float64) error {
	n := len(s.xs)
	if len(ys) != n {
		return fmt.Errorf("interp: spline ordinate length %d, want %d", len(ys), n)
	}
	copy(s.ys, ys)

	x, y, y2, u := s.xs, s.ys, s.y2, s.u
	y2[0], u[0] = 0, 0
	for i := 1; i < n-1; i++ {
		sig := (x[i] - x[i-1]) / (x[i+1] - x[i-1])
		p := sig*y2[i-1] + 2
		y2[i] = (sig - 1) / p
		du := (y[i+1]-y[i])/(x[i+1]-x[i]) - (y[i]-y[i-1])/(x[i]-x[i-1])
		u[i] = (6*du/(x[i+1]-x[i-1]) - sig*u[i-1]) / p
	}
	y2[n-1] = 0
	for k := n - 2; k >= 0; k-- {
		y2[k] = y2[k]*y2[k+1] + u[k]
	}
	return nil
}

// Eval evaluates the spline at x. Points outside the abscissae range are
// evaluated on the end segment's cubic; the steppers' ghost padding keeps
// real queries interior.
func (s *Spline) Eval(x float64) float64 {
	n := len(s.xs)
	khi := sort.SearchFloat64s(s.xs, x)
	if khi < 1 {
		khi = 1
	} else if khi > n-1 {
		khi = n - 1
	}
	klo := khi - 1

	h := s.xs[khi] - s.xs[klo]
	a := (s.xs[khi] - x) / h
	b := (x - s.xs[klo]) / h
	return a*s.ys[klo] + b*s.ys[khi] +
		((a*a*a-a)*s.y2[klo]+(b*b*b-b)*s.y2[khi])*(h*h)/6
}

// EvalAll evaluates the spline at every point of xs into out, which must
// have the same length. It returns out.
func (s *Spline) EvalAll(xs, out []float64) []float64 {
	for i, x := range xs {
		out[i] = s.Eval(x)
	}
	return out
}
