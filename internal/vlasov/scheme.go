package vlasov

import (
	"fmt"

	"github.com/san-kum/vlasim/internal/grid"
)

// Scheme selects an advection stepper implementation.
type Scheme int

const (
	// Exponential advances each Fourier mode by an exact complex phase.
	Exponential Scheme = iota
	// SemiLagrangian traces characteristics backward and interpolates with
	// a bicubic spline over a ghost-padded grid.
	SemiLagrangian
	// CenterDiff applies second-order centered differencing; velocity
	// advection only, and subject to a CFL-like bound the caller owns.
	CenterDiff
)

func (s Scheme) String() string {
	switch s {
	case Exponential:
		return "exponential"
	case SemiLagrangian:
		return "sl"
	case CenterDiff:
		return "cd2"
	}
	return fmt.Sprintf("scheme(%d)", int(s))
}

// ParseScheme maps a configuration keyword to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "exponential":
		return Exponential, nil
	case "sl":
		return SemiLagrangian, nil
	case "cd2":
		return CenterDiff, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedScheme, name)
}

// Metadata carries the grid quantities the steppers close over: the spatial
// and velocity axes, their FFT frequency axes, and the velocity spacing.
// Built once per simulation and read-only afterwards; safe to share across
// stepper instances.
type Metadata struct {
	X, V   *grid.Axis
	Kx, Kv []float64
	Dv     float64
}

func NewMetadata(x, v *grid.Axis) *Metadata {
	return &Metadata{
		X:  x,
		V:  v,
		Kx: x.Frequencies(),
		Kv: v.Frequencies(),
		Dv: v.Delta,
	}
}

func (m *Metadata) checkDist(f *grid.Dist) error {
	if f.Nx != m.X.Len() || f.Nv != m.V.Len() {
		return fmt.Errorf("%w: distribution (%d, %d), grid (%d, %d)",
			ErrDimensionMismatch, f.Nx, f.Nv, m.X.Len(), m.V.Len())
	}
	return nil
}

func (m *Metadata) checkField(e []float64) error {
	if len(e) != m.X.Len() {
		return fmt.Errorf("%w: field length %d, grid %d",
			ErrDimensionMismatch, len(e), m.X.Len())
	}
	return nil
}
