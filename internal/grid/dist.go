package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dist is a phase-space distribution function on an (Nx, Nv) grid,
// stored row-major: index i walks the spatial axis, j the velocity axis.
type Dist struct {
	Nx, Nv int
	Data   []float64
}

func NewDist(nx, nv int) *Dist {
	return &Dist{Nx: nx, Nv: nv, Data: make([]float64, nx*nv)}
}

func (d *Dist) At(i, j int) float64     { return d.Data[i*d.Nv+j] }
func (d *Dist) Set(i, j int, v float64) { d.Data[i*d.Nv+j] = v }

// Row returns the velocity profile at spatial index i as a view into Data.
func (d *Dist) Row(i int) []float64 {
	return d.Data[i*d.Nv : (i+1)*d.Nv]
}

// Col copies the spatial profile at velocity index j into dst, which must
// have length Nx. Columns are strided, so a copy is unavoidable.
func (d *Dist) Col(j int, dst []float64) []float64 {
	for i := 0; i < d.Nx; i++ {
		dst[i] = d.Data[i*d.Nv+j]
	}
	return dst
}

func (d *Dist) Clone() *Dist {
	c := NewDist(d.Nx, d.Nv)
	copy(c.Data, d.Data)
	return c
}

// IsFinite reports whether every cell is free of NaN and Inf.
func (d *Dist) IsFinite() bool {
	for _, v := range d.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (d *Dist) Sum() float64 { return floats.Sum(d.Data) }

// Mass returns the phase-space integral of the distribution, Σf·Δx·Δv.
func (d *Dist) Mass(dx, dv float64) float64 {
	return d.Sum() * dx * dv
}
