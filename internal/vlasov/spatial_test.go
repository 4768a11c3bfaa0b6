package vlasov

import (
	"math"
	"testing"

	"github.com/san-kum/vlasim/internal/grid"
)

func testMetadata(t *testing.T, nx, nv int) *Metadata {
	t.Helper()
	x, err := grid.Linspace(0, 2*math.Pi, nx, false)
	if err != nil {
		t.Fatalf("x axis: %v", err)
	}
	v, err := grid.Linspace(-6, 6, nv, true)
	if err != nil {
		t.Fatalf("v axis: %v", err)
	}
	return NewMetadata(x, v)
}

// perturbedMaxwellian is the standard 32x32 test case: a unit Maxwellian
// with a 1% sinusoidal density perturbation at mode 1.
func perturbedMaxwellian(meta *Metadata, amp float64) *grid.Dist {
	nx, nv := meta.X.Len(), meta.V.Len()
	f := grid.NewDist(nx, nv)
	norm := 1 / math.Sqrt(2*math.Pi)
	for i, xi := range meta.X.Points {
		mod := 1 + amp*math.Cos(xi)
		for j, vj := range meta.V.Points {
			f.Set(i, j, norm*math.Exp(-0.5*vj*vj)*mod)
		}
	}
	return f
}

func TestSpectralSpatialExactShift(t *testing.T) {
	// Integer velocities and dt equal to the grid spacing make every
	// column's displacement an exact whole number of cells.
	x, _ := grid.Linspace(0, 1, 16, false)
	v, _ := grid.NewAxis([]float64{-2, -1, 0, 1, 2})
	meta := NewMetadata(x, v)

	f := grid.NewDist(16, 5)
	for i, xi := range x.Points {
		val := math.Sin(2*math.Pi*xi) + 0.5*math.Cos(4*math.Pi*xi)
		for j := 0; j < 5; j++ {
			f.Set(i, j, val+float64(j))
		}
	}

	stepper, err := NewSpatial(meta, Exponential)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := stepper.Step(f, x.Delta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for j, vj := range v.Points {
		shift := int(vj) // cells moved in one step
		for i := 0; i < 16; i++ {
			src := ((i-shift)%16 + 16) % 16
			if math.Abs(out.At(i, j)-f.At(src, j)) > 1e-9 {
				t.Fatalf("column %d point %d: expected %f, got %f",
					j, i, f.At(src, j), out.At(i, j))
			}
		}
	}
}

func TestSpectralSpatialMatchesAnalyticSolution(t *testing.T) {
	meta := testMetadata(t, 32, 32)
	f := perturbedMaxwellian(meta, 0.01)

	stepper, _ := NewSpatial(meta, Exponential)
	dt := 0.01
	steps := 100

	cur := f
	var err error
	for s := 0; s < steps; s++ {
		cur, err = stepper.Step(cur, dt)
		if err != nil {
			t.Fatalf("step %d: %v", s, err)
		}
	}

	// Exact free streaming: f(x, v, T) = g(v)(1 + 0.01 cos(x - vT)).
	// Mode 1 is band-limited, so the spectral stepper should track the
	// analytic solution to near machine precision across all steps.
	T := dt * float64(steps)
	norm := 1 / math.Sqrt(2*math.Pi)
	for i, xi := range meta.X.Points {
		for j, vj := range meta.V.Points {
			want := norm * math.Exp(-0.5*vj*vj) * (1 + 0.01*math.Cos(xi-vj*T))
			if math.Abs(cur.At(i, j)-want) > 1e-9 {
				t.Fatalf("(%d, %d): expected %g, got %g", i, j, want, cur.At(i, j))
			}
		}
	}
}

func TestSpatialMassConservation(t *testing.T) {
	meta := testMetadata(t, 32, 32)
	f := perturbedMaxwellian(meta, 0.01)
	mass := f.Mass(meta.X.Delta, meta.Dv)

	cases := []struct {
		scheme Scheme
		tol    float64
	}{
		{Exponential, 1e-10},
		{SemiLagrangian, 1e-3},
	}
	for _, tc := range cases {
		stepper, err := NewSpatial(meta, tc.scheme)
		if err != nil {
			t.Fatalf("%s: %v", tc.scheme, err)
		}
		out, err := stepper.Step(f, 0.01)
		if err != nil {
			t.Fatalf("%s: %v", tc.scheme, err)
		}
		drift := math.Abs(out.Mass(meta.X.Delta, meta.Dv)-mass) / mass
		if drift > tc.tol {
			t.Errorf("%s: mass drift %e exceeds %e", tc.scheme, drift, tc.tol)
		}
	}
}

func TestSpatialIdentityAtZeroStep(t *testing.T) {
	meta := testMetadata(t, 16, 17)
	f := perturbedMaxwellian(meta, 0.05)

	for _, scheme := range []Scheme{Exponential, SemiLagrangian} {
		stepper, err := NewSpatial(meta, scheme)
		if err != nil {
			t.Fatalf("%s: %v", scheme, err)
		}
		out, err := stepper.Step(f, 0)
		if err != nil {
			t.Fatalf("%s: %v", scheme, err)
		}
		for i := range f.Data {
			if math.Abs(out.Data[i]-f.Data[i]) > 1e-12 {
				t.Fatalf("%s: dt=0 changed cell %d by %e", scheme, i, out.Data[i]-f.Data[i])
			}
		}
	}
}

func TestSpatialPreservesConstant(t *testing.T) {
	meta := testMetadata(t, 16, 9)
	f := grid.NewDist(16, 9)
	for i := range f.Data {
		f.Data[i] = 3.5
	}

	for _, scheme := range []Scheme{Exponential, SemiLagrangian} {
		stepper, _ := NewSpatial(meta, scheme)
		out, err := stepper.Step(f, 0.2)
		if err != nil {
			t.Fatalf("%s: %v", scheme, err)
		}
		for i := range out.Data {
			if math.Abs(out.Data[i]-3.5) > 1e-10 {
				t.Fatalf("%s: constant not preserved, cell %d = %f", scheme, i, out.Data[i])
			}
		}
	}
}

func TestSLSpatialTracksPeriodicTranslation(t *testing.T) {
	x, _ := grid.Linspace(0, 2*math.Pi, 64, false)
	v, _ := grid.Linspace(-1, 1, 9, true)
	meta := NewMetadata(x, v)

	f := grid.NewDist(64, 9)
	for i, xi := range x.Points {
		for j := 0; j < 9; j++ {
			f.Set(i, j, 1+0.5*math.Sin(xi))
		}
	}

	stepper, _ := NewSpatial(meta, SemiLagrangian)
	dt := 0.05
	out, err := stepper.Step(f, dt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, xi := range x.Points {
		for j, vj := range v.Points {
			want := 1 + 0.5*math.Sin(xi-vj*dt)
			if math.Abs(out.At(i, j)-want) > 1e-3 {
				t.Fatalf("(%d, %d): expected %f, got %f", i, j, want, out.At(i, j))
			}
		}
	}
}

func TestSpectralSpatialFullPeriodReturn(t *testing.T) {
	// Integer velocities: after T = 2π every column has crossed the
	// periodic domain a whole number of times and f returns to f0.
	x, _ := grid.Linspace(0, 2*math.Pi, 32, false)
	v, _ := grid.Linspace(-6, 6, 13, true)
	meta := NewMetadata(x, v)
	f := perturbedMaxwellian(meta, 0.01)

	stepper, _ := NewSpatial(meta, Exponential)
	steps := 256
	dt := 2 * math.Pi / float64(steps)

	cur := f
	var err error
	for s := 0; s < steps; s++ {
		cur, err = stepper.Step(cur, dt)
		if err != nil {
			t.Fatalf("step %d: %v", s, err)
		}
	}

	for i := range f.Data {
		if math.Abs(cur.Data[i]-f.Data[i]) > 1e-8 {
			t.Fatalf("cell %d: drift %e after full period", i, cur.Data[i]-f.Data[i])
		}
	}
}

func TestScenarioOneStepMassBound(t *testing.T) {
	// The reference scenario: 32x32, perturbed Maxwellian, dt = 0.01,
	// one exponential vdfdx step must hold total mass to 1e-8 relative.
	meta := testMetadata(t, 32, 32)
	f := perturbedMaxwellian(meta, 0.01)
	mass := f.Mass(meta.X.Delta, meta.Dv)

	stepper, _ := NewSpatial(meta, Exponential)
	out, err := stepper.Step(f, 0.01)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	drift := math.Abs(out.Mass(meta.X.Delta, meta.Dv)-mass) / mass
	if drift > 1e-8 {
		t.Errorf("mass drift %e exceeds 1e-8", drift)
	}
}
