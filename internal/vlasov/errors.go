package vlasov

import "errors"

// Domain errors for stepper construction and stepping.
var (
	// ErrUnsupportedScheme indicates a stepper scheme outside the supported
	// set for the requested advection family. Fatal at setup; fix the
	// configuration rather than retrying.
	ErrUnsupportedScheme = errors.New("vlasov: unsupported stepper scheme")

	// ErrDimensionMismatch indicates a distribution or field whose shape
	// does not match the grid metadata the stepper was built with.
	ErrDimensionMismatch = errors.New("vlasov: dimension mismatch with grid metadata")
)
