// Package metrics provides phase-space invariant observers for monitoring
// conservation across advection steps. Non-finite output or runaway drift
// is the caller-visible symptom of numerical instability; the steppers
// themselves never police it.
package metrics

import (
	"github.com/san-kum/vlasim/internal/grid"
)

// Metric observes a distribution once per step and tracks drift relative
// to its first observation.
type Metric interface {
	Name() string
	Observe(f *grid.Dist, t float64)
	Value() float64
	Drift() float64
	Reset()
}

type tracker struct {
	name    string
	first   float64
	current float64
	samples int
}

func (t *tracker) Name() string { return t.name }

func (t *tracker) record(v float64) {
	if t.samples == 0 {
		t.first = v
	}
	t.current = v
	t.samples++
}

func (t *tracker) Value() float64 { return t.current }

// Drift returns the relative change since the first observation.
func (t *tracker) Drift() float64 {
	if t.samples == 0 || t.first == 0 {
		return 0
	}
	return (t.current - t.first) / t.first
}

func (t *tracker) Reset() {
	t.first, t.current, t.samples = 0, 0, 0
}

// Mass tracks the phase-space integral Σf·Δx·Δv.
type Mass struct {
	tracker
	dx, dv float64
}

func NewMass(dx, dv float64) *Mass {
	return &Mass{tracker: tracker{name: "mass"}, dx: dx, dv: dv}
}

func (m *Mass) Observe(f *grid.Dist, t float64) {
	m.record(f.Mass(m.dx, m.dv))
}

// Momentum tracks Σf·v·Δx·Δv.
type Momentum struct {
	tracker
	v      []float64
	dx, dv float64
}

func NewMomentum(v []float64, dx, dv float64) *Momentum {
	return &Momentum{tracker: tracker{name: "momentum"}, v: v, dx: dx, dv: dv}
}

func (m *Momentum) Observe(f *grid.Dist, t float64) {
	sum := 0.0
	for i := 0; i < f.Nx; i++ {
		row := f.Row(i)
		for j, vj := range m.v {
			sum += row[j] * vj
		}
	}
	m.record(sum * m.dx * m.dv)
}

// KineticEnergy tracks ½Σf·v²·Δx·Δv.
type KineticEnergy struct {
	tracker
	v      []float64
	dx, dv float64
}

func NewKineticEnergy(v []float64, dx, dv float64) *KineticEnergy {
	return &KineticEnergy{tracker: tracker{name: "kinetic_energy"}, v: v, dx: dx, dv: dv}
}

func (m *KineticEnergy) Observe(f *grid.Dist, t float64) {
	sum := 0.0
	for i := 0; i < f.Nx; i++ {
		row := f.Row(i)
		for j, vj := range m.v {
			sum += row[j] * vj * vj
		}
	}
	m.record(0.5 * sum * m.dx * m.dv)
}

// L2Norm tracks Σf²·Δx·Δv, conserved by exact advection and damped by
// interpolation-based steppers.
type L2Norm struct {
	tracker
	dx, dv float64
}

func NewL2Norm(dx, dv float64) *L2Norm {
	return &L2Norm{tracker: tracker{name: "l2_norm"}, dx: dx, dv: dv}
}

func (m *L2Norm) Observe(f *grid.Dist, t float64) {
	sum := 0.0
	for _, v := range f.Data {
		sum += v * v
	}
	m.record(sum * m.dx * m.dv)
}
