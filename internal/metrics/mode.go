package metrics

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/vlasim/internal/grid"
)

// ModeAmplitude tracks the amplitude of one spatial Fourier mode of the
// velocity-integrated density, n(x) = Σf·Δv. Mode 1 of a perturbed
// Maxwellian is the quantity the split-step loop transports.
type ModeAmplitude struct {
	tracker
	mode    int
	dv      float64
	density []float64
}

func NewModeAmplitude(mode int, dv float64) *ModeAmplitude {
	return &ModeAmplitude{tracker: tracker{name: "mode_amplitude"}, mode: mode, dv: dv}
}

func (m *ModeAmplitude) Observe(f *grid.Dist, t float64) {
	if len(m.density) != f.Nx {
		m.density = make([]float64, f.Nx)
	}
	for i := 0; i < f.Nx; i++ {
		sum := 0.0
		for _, v := range f.Row(i) {
			sum += v
		}
		m.density[i] = sum * m.dv
	}
	spec := fft.FFTReal(m.density)
	m.record(2 * cmplx.Abs(spec[m.mode]) / float64(f.Nx))
}
