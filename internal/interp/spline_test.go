package interp

import (
	"math"
	"testing"
)

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	return xs
}

func TestSplineReproducesNodes(t *testing.T) {
	xs := linspace(0, 2*math.Pi, 17)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(x) + 0.3*math.Cos(2*x)
	}

	s := NewSpline(xs)
	if err := s.Fit(ys); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, x := range xs {
		if math.Abs(s.Eval(x)-ys[i]) > 1e-12 {
			t.Errorf("node %d: expected %f, got %f", i, ys[i], s.Eval(x))
		}
	}
}

func TestSplineExactForLinear(t *testing.T) {
	xs := linspace(-1, 3, 9)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2*x - 0.5
	}

	s := NewSpline(xs)
	s.Fit(ys)

	for _, x := range []float64{-0.7, 0.13, 1.9, 2.99} {
		want := 2*x - 0.5
		if math.Abs(s.Eval(x)-want) > 1e-12 {
			t.Errorf("at %f: expected %f, got %f", x, want, s.Eval(x))
		}
	}
}

func TestSplineAccuracyOnSine(t *testing.T) {
	xs := linspace(0, 2*math.Pi, 33)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(x)
	}

	s := NewSpline(xs)
	s.Fit(ys)

	maxErr := 0.0
	for _, x := range linspace(0.1, 2*math.Pi-0.1, 200) {
		err := math.Abs(s.Eval(x) - math.Sin(x))
		if err > maxErr {
			maxErr = err
		}
	}
	if maxErr > 1e-3 {
		t.Errorf("spline error too large: %e", maxErr)
	}
}

func TestSplineEvalAll(t *testing.T) {
	xs := linspace(0, 1, 11)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x * x
	}

	s := NewSpline(xs)
	s.Fit(ys)

	q := []float64{0.05, 0.5, 0.95}
	out := s.EvalAll(q, make([]float64, len(q)))
	for i, x := range q {
		if math.Abs(out[i]-s.Eval(x)) > 1e-15 {
			t.Errorf("EvalAll disagrees with Eval at %f", x)
		}
	}
}

func TestSplineFitLengthMismatch(t *testing.T) {
	s := NewSpline(linspace(0, 1, 5))
	if err := s.Fit(make([]float64, 4)); err == nil {
		t.Error("expected error for mismatched ordinate length")
	}
}
