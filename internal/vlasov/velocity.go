package vlasov

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/vlasim/internal/grid"
	"github.com/san-kum/vlasim/internal/interp"
)

// VelocityStepper advances df/dt = e·df/dv over one timestep, with the
// field e sampled on the spatial grid. Step returns a new distribution.
//
// All variants treat the velocity axis as periodic during padding and
// transforms, matching the spatial axis. The truncated velocity domain is
// not physically periodic; whether an absorbing or zero-gradient edge would
// serve better is an open question upstream, and the wrap is kept as-is.
type VelocityStepper interface {
	Step(f *grid.Dist, e []float64, dt float64) (*grid.Dist, error)
}

// spectralVelocity shifts each velocity Fourier mode by exp(-2πi·kv·e·dt),
// per spatial row.
type spectralVelocity struct {
	meta *Metadata
}

func newSpectralVelocity(meta *Metadata) *spectralVelocity {
	return &spectralVelocity{meta: meta}
}

func (s *spectralVelocity) Step(f *grid.Dist, e []float64, dt float64) (*grid.Dist, error) {
	if err := s.meta.checkDist(f); err != nil {
		return nil, err
	}
	if err := s.meta.checkField(e); err != nil {
		return nil, err
	}
	out := grid.NewDist(f.Nx, f.Nv)
	for i := 0; i < f.Nx; i++ {
		spec := fft.FFTReal(f.Row(i))
		for m, k := range s.meta.Kv {
			theta := -2 * math.Pi * k * e[i] * dt
			spec[m] *= complex(math.Cos(theta), math.Sin(theta))
		}
		back := fft.IFFT(spec)
		row := out.Row(i)
		for j := range back {
			row[j] = real(back[j])
		}
	}
	return out, nil
}

// cd2Velocity computes f - dt·e·∂f/∂v with second-order centered
// differences, one-sided second-order at the two velocity edges.
// Conditionally stable; the caller owns the dt·e/dv bound.
type cd2Velocity struct {
	meta *Metadata
}

func newCD2Velocity(meta *Metadata) *cd2Velocity {
	return &cd2Velocity{meta: meta}
}

func (s *cd2Velocity) Step(f *grid.Dist, e []float64, dt float64) (*grid.Dist, error) {
	if err := s.meta.checkDist(f); err != nil {
		return nil, err
	}
	if err := s.meta.checkField(e); err != nil {
		return nil, err
	}
	out := grid.NewDist(f.Nx, f.Nv)
	nv := f.Nv
	twoDv := 2 * s.meta.Dv
	for i := 0; i < f.Nx; i++ {
		row := f.Row(i)
		dst := out.Row(i)
		c := dt * e[i]

		dst[0] = row[0] - c*(-3*row[0]+4*row[1]-row[2])/twoDv
		for j := 1; j < nv-1; j++ {
			dst[j] = row[j] - c*(row[j+1]-row[j-1])/twoDv
		}
		dst[nv-1] = row[nv-1] - c*(3*row[nv-1]-4*row[nv-2]+row[nv-3])/twoDv
	}
	return out, nil
}

// slVelocity traces characteristics backward in velocity, v - e(x)·dt,
// with e first fit by a 1D cubic spline over x, then evaluates f with a
// bicubic spline over a v-padded copy of the grid (periodic wrap in v,
// ghost coordinates from the stored spacing).
//
// Scratch buffers are reused across calls; not safe for concurrent use.
type slVelocity struct {
	meta  *Metadata
	fresh bool

	vpad []float64
	fpad []float64
	vq   []float64
	vals []float64
	em   []float64
	efit *interp.Spline
	bic  *interp.Bicubic
}

func newSLVelocity(meta *Metadata, fresh bool) *slVelocity {
	s := &slVelocity{meta: meta, fresh: fresh}
	if !fresh {
		s.vpad, s.fpad, s.vq, s.vals, s.em, s.efit, s.bic = makeVelocityScratch(meta)
	}
	return s
}

func makeVelocityScratch(meta *Metadata) ([]float64, []float64, []float64, []float64, []float64, *interp.Spline, *interp.Bicubic) {
	nx, nv := meta.X.Len(), meta.V.Len()
	vpad := make([]float64, nv+2)
	copy(vpad[1:nv+1], meta.V.Points)
	vpad[0] = meta.V.Points[0] - meta.V.Delta
	vpad[nv+1] = meta.V.Points[nv-1] + meta.V.Delta

	fpad := make([]float64, nx*(nv+2))
	vq := make([]float64, nv)
	vals := make([]float64, nv)
	em := make([]float64, nx)
	efit := interp.NewSpline(meta.X.Points)
	bic := interp.NewBicubic(meta.X.Points, vpad)
	return vpad, fpad, vq, vals, em, efit, bic
}

func (s *slVelocity) Step(f *grid.Dist, e []float64, dt float64) (*grid.Dist, error) {
	if err := s.meta.checkDist(f); err != nil {
		return nil, err
	}
	if err := s.meta.checkField(e); err != nil {
		return nil, err
	}
	fpad, vq, vals, em, efit, bic := s.fpad, s.vq, s.vals, s.em, s.efit, s.bic
	if s.fresh {
		_, fpad, vq, vals, em, efit, bic = makeVelocityScratch(s.meta)
	}

	nx, nv := f.Nx, f.Nv
	for i := 0; i < nx; i++ {
		row := f.Row(i)
		pad := fpad[i*(nv+2) : (i+1)*(nv+2)]
		copy(pad[1:nv+1], row)
		pad[0] = row[nv-1]
		pad[nv+1] = row[0]
	}
	if err := bic.Fit(fpad); err != nil {
		return nil, err
	}
	if err := efit.Fit(e); err != nil {
		return nil, err
	}
	efit.EvalAll(s.meta.X.Points, em)

	out := grid.NewDist(nx, nv)
	for i, xi := range s.meta.X.Points {
		for j, vj := range s.meta.V.Points {
			vq[j] = vj - em[i]*dt
		}
		bic.EvalFixedX(xi, vq, vals)
		copy(out.Row(i), vals)
	}
	return out, nil
}
