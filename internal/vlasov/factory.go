package vlasov

import "fmt"

// NewSpatial returns a spatial advection stepper bound to the grid
// metadata. Supported schemes: Exponential, SemiLagrangian. Validation
// happens here, never at call time.
func NewSpatial(meta *Metadata, scheme Scheme) (SpatialStepper, error) {
	return newSpatial(meta, scheme, false)
}

// NewSpatialFresh is NewSpatial with per-call scratch allocation, safe for
// concurrent stepping at the cost of allocating every call.
func NewSpatialFresh(meta *Metadata, scheme Scheme) (SpatialStepper, error) {
	return newSpatial(meta, scheme, true)
}

func newSpatial(meta *Metadata, scheme Scheme, fresh bool) (SpatialStepper, error) {
	switch scheme {
	case Exponential:
		return newSpectralSpatial(meta), nil
	case SemiLagrangian:
		return newSLSpatial(meta, fresh), nil
	}
	return nil, fmt.Errorf("%w: %s for spatial advection", ErrUnsupportedScheme, scheme)
}

// NewVelocity returns a velocity advection stepper bound to the grid
// metadata. Supported schemes: Exponential, CenterDiff, SemiLagrangian.
func NewVelocity(meta *Metadata, scheme Scheme) (VelocityStepper, error) {
	return newVelocity(meta, scheme, false)
}

// NewVelocityFresh is NewVelocity with per-call scratch allocation.
func NewVelocityFresh(meta *Metadata, scheme Scheme) (VelocityStepper, error) {
	return newVelocity(meta, scheme, true)
}

func newVelocity(meta *Metadata, scheme Scheme, fresh bool) (VelocityStepper, error) {
	switch scheme {
	case Exponential:
		return newSpectralVelocity(meta), nil
	case CenterDiff:
		return newCD2Velocity(meta), nil
	case SemiLagrangian:
		return newSLVelocity(meta, fresh), nil
	}
	return nil, fmt.Errorf("%w: %s for velocity advection", ErrUnsupportedScheme, scheme)
}
