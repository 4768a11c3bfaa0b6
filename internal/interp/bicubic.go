package interp

import "fmt"

// Bicubic is a tensor-product cubic spline on a rectilinear (xs, ys) grid.
// Fit builds one spline per grid row and per grid column; evaluation at a
// scattered point splines the row values across the transverse axis.
//
// The batched EvalFixedY/EvalFixedX forms match the access pattern of
// semi-Lagrangian advection, where departure points share one coordinate
// per grid line. A Bicubic reuses its cross-spline scratch and is not safe
// for concurrent use.
type Bicubic struct {
	xs, ys []float64

	rows []*Spline // one per x node, over ys
	cols []*Spline // one per y node, over xs

	crossX *Spline // over xs, refit per fixed-y line
	crossY *Spline // over ys, refit per fixed-x line
	gx     []float64
	gy     []float64
	colBuf []float64
}

// NewBicubic fixes the grid abscissae. Both slices are retained.
func NewBicubic(xs, ys []float64) *Bicubic {
	nx, ny := len(xs), len(ys)
	b := &Bicubic{
		xs:     xs,
		ys:     ys,
		rows:   make([]*Spline, nx),
		cols:   make([]*Spline, ny),
		crossX: NewSpline(xs),
		crossY: NewSpline(ys),
		gx:     make([]float64, nx),
		gy:     make([]float64, ny),
		colBuf: make([]float64, nx),
	}
	for i := range b.rows {
		b.rows[i] = NewSpline(ys)
	}
	for j := range b.cols {
		b.cols[j] = NewSpline(xs)
	}
	return b
}

// Fit builds the row and column splines from f, a row-major grid of shape
// (len(xs), len(ys)).
func (b *Bicubic) Fit(f []float64) error {
	nx, ny := len(b.xs), len(b.ys)
	if len(f) != nx*ny {
		return fmt.Errorf("interp: bicubic grid length %d, want %d", len(f), nx*ny)
	}
	for i := 0; i < nx; i++ {
		if err := b.rows[i].Fit(f[i*ny : (i+1)*ny]); err != nil {
			return err
		}
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			b.colBuf[i] = f[i*ny+j]
		}
		if err := b.cols[j].Fit(b.colBuf); err != nil {
			return err
		}
	}
	return nil
}

// EvalFixedY evaluates the surface at the points (xq[i], y) into out.
func (b *Bicubic) EvalFixedY(y float64, xq, out []float64) []float64 {
	for i, row := range b.rows {
		b.gx[i] = row.Eval(y)
	}
	b.crossX.Fit(b.gx)
	return b.crossX.EvalAll(xq, out)
}

// EvalFixedX evaluates the surface at the points (x, yq[j]) into out.
func (b *Bicubic) EvalFixedX(x float64, yq, out []float64) []float64 {
	for j, col := range b.cols {
		b.gy[j] = col.Eval(x)
	}
	b.crossY.Fit(b.gy)
	return b.crossY.EvalAll(yq, out)
}

// Eval evaluates the surface at a single point.
func (b *Bicubic) Eval(x, y float64) float64 {
	var v [1]float64
	b.EvalFixedY(y, []float64{x}, v[:])
	return v[0]
}
