package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/vlasim/internal/grid"
	"github.com/san-kum/vlasim/internal/metrics"
	"github.com/san-kum/vlasim/internal/vlasov"
)

// Field supplies the electric field on the spatial grid at time t. The
// field is prescribed, not solved; coupling a field solver to f stays
// outside this package.
type Field func(t float64) []float64

// ZeroField returns a Field of nx zeros, for free-streaming runs.
func ZeroField(nx int) Field {
	e := make([]float64, nx)
	return func(t float64) []float64 { return e }
}

type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

type Result struct {
	Times      []float64
	History    map[string][]float64
	Metrics    map[string]float64
	Final      *grid.Dist
	StepsTaken int
	Errors     []error
}

// Simulator advances a distribution with fixed Strang splitting: a half
// spatial step, a full velocity step, a half spatial step.
type Simulator struct {
	spatial  vlasov.SpatialStepper
	velocity vlasov.VelocityStepper
	field    Field
	metrics  []metrics.Metric
}

func New(spatial vlasov.SpatialStepper, velocity vlasov.VelocityStepper, field Field) *Simulator {
	return &Simulator{spatial: spatial, velocity: velocity, field: field}
}

func (s *Simulator) AddMetric(m metrics.Metric) { s.metrics = append(s.metrics, m) }

func (s *Simulator) Run(ctx context.Context, f0 *grid.Dist, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("sim: dt must be positive, got %g", cfg.Dt)
	}
	steps := int(cfg.Duration / cfg.Dt)

	result := &Result{
		Times:   make([]float64, 0, steps+1),
		History: make(map[string][]float64, len(s.metrics)),
		Metrics: make(map[string]float64, len(s.metrics)),
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	f := f0.Clone()
	t := 0.0
	s.observe(result, f, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			result.Final = f
			return result, ctx.Err()
		default:
		}

		next, err := s.step(f, t, cfg.Dt)
		if err != nil {
			result.Errors = append(result.Errors, err)
			break
		}
		if cfg.ValidateState && !next.IsFinite() {
			result.Errors = append(result.Errors,
				fmt.Errorf("sim: non-finite distribution at step %d (t=%.4f)", i, t))
			break
		}

		f = next
		t += cfg.Dt
		result.StepsTaken++
		s.observe(result, f, t)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Final = f
	return result, nil
}

func (s *Simulator) step(f *grid.Dist, t, dt float64) (*grid.Dist, error) {
	half, err := s.spatial.Step(f, dt/2)
	if err != nil {
		return nil, err
	}
	kicked, err := s.velocity.Step(half, s.field(t), dt)
	if err != nil {
		return nil, err
	}
	return s.spatial.Step(kicked, dt/2)
}

func (s *Simulator) observe(result *Result, f *grid.Dist, t float64) {
	result.Times = append(result.Times, t)
	for _, m := range s.metrics {
		m.Observe(f, t)
		result.History[m.Name()] = append(result.History[m.Name()], m.Value())
	}
}

// PerturbedMaxwellian builds the standard test distribution
// exp(-v²/2)/√(2π) · (1 + amp·cos(mode·2πx/L)) on the metadata's grid.
func PerturbedMaxwellian(meta *vlasov.Metadata, amp float64, mode int) *grid.Dist {
	nx, nv := meta.X.Len(), meta.V.Len()
	length := float64(nx) * meta.X.Delta
	k := float64(mode) * 2 * math.Pi / length

	f := grid.NewDist(nx, nv)
	norm := 1 / math.Sqrt(2*math.Pi)
	for i, xi := range meta.X.Points {
		mod := 1 + amp*math.Cos(k*xi)
		row := f.Row(i)
		for j, vj := range meta.V.Points {
			row[j] = norm * math.Exp(-0.5*vj*vj) * mod
		}
	}
	return f
}
