package vlasov

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/vlasim/internal/grid"
	"github.com/san-kum/vlasim/internal/interp"
)

// SpatialStepper advances df/dt = v·df/dx over one timestep, periodic in x.
// Step returns a new distribution; the input is not modified.
type SpatialStepper interface {
	Step(f *grid.Dist, dt float64) (*grid.Dist, error)
}

// spectralSpatial shifts each spatial Fourier mode by the exact phase
// exp(-2πi·kx·v·dt), per velocity column. Exact for band-limited periodic f.
type spectralSpatial struct {
	meta *Metadata
	col  []float64
}

func newSpectralSpatial(meta *Metadata) *spectralSpatial {
	return &spectralSpatial{meta: meta, col: make([]float64, meta.X.Len())}
}

func (s *spectralSpatial) Step(f *grid.Dist, dt float64) (*grid.Dist, error) {
	if err := s.meta.checkDist(f); err != nil {
		return nil, err
	}
	out := grid.NewDist(f.Nx, f.Nv)
	for j, vj := range s.meta.V.Points {
		spec := fft.FFTReal(f.Col(j, s.col))
		for m, k := range s.meta.Kx {
			theta := -2 * math.Pi * k * vj * dt
			spec[m] *= complex(math.Cos(theta), math.Sin(theta))
		}
		back := fft.IFFT(spec)
		for i := range back {
			out.Set(i, j, real(back[i]))
		}
	}
	return out, nil
}

// slSpatial traces each grid point backward along its characteristic,
// x - v·dt, and evaluates f there with a bicubic spline over an x-padded
// copy of the grid. One ghost point on each side wraps f periodically; the
// ghost coordinates come from the axis's stored spacing.
//
// The padded buffers and the spline are reused across calls, so a given
// stepper must not be invoked concurrently. NewSpatialFresh builds a
// reentrant variant that allocates per call.
type slSpatial struct {
	meta  *Metadata
	fresh bool

	xpad []float64
	fpad []float64
	xq   []float64
	vals []float64
	bic  *interp.Bicubic
}

func newSLSpatial(meta *Metadata, fresh bool) *slSpatial {
	s := &slSpatial{meta: meta, fresh: fresh}
	if !fresh {
		s.xpad, s.fpad, s.xq, s.vals, s.bic = makeSpatialScratch(meta)
	}
	return s
}

func makeSpatialScratch(meta *Metadata) ([]float64, []float64, []float64, []float64, *interp.Bicubic) {
	nx, nv := meta.X.Len(), meta.V.Len()
	xpad := make([]float64, nx+2)
	copy(xpad[1:nx+1], meta.X.Points)
	xpad[0] = meta.X.Points[0] - meta.X.Delta
	xpad[nx+1] = meta.X.Points[nx-1] + meta.X.Delta

	fpad := make([]float64, (nx+2)*nv)
	xq := make([]float64, nx)
	vals := make([]float64, nx)
	return xpad, fpad, xq, vals, interp.NewBicubic(xpad, meta.V.Points)
}

func (s *slSpatial) Step(f *grid.Dist, dt float64) (*grid.Dist, error) {
	if err := s.meta.checkDist(f); err != nil {
		return nil, err
	}
	fpad, xq, vals, bic := s.fpad, s.xq, s.vals, s.bic
	if s.fresh {
		_, fpad, xq, vals, bic = makeSpatialScratch(s.meta)
	}

	nx, nv := f.Nx, f.Nv
	copy(fpad[nv:(nx+1)*nv], f.Data)
	copy(fpad[:nv], f.Row(nx-1))
	copy(fpad[(nx+1)*nv:], f.Row(0))
	if err := bic.Fit(fpad); err != nil {
		return nil, err
	}

	out := grid.NewDist(nx, nv)
	for j, vj := range s.meta.V.Points {
		for i, xi := range s.meta.X.Points {
			xq[i] = xi - vj*dt
		}
		bic.EvalFixedY(vj, xq, vals)
		for i := range vals {
			out.Set(i, j, vals[i])
		}
	}
	return out, nil
}
