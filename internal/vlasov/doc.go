// Package vlasov implements one split advection step of the 1D-1V Vlasov
// equation, df/dt + v·df/dx + E·df/dv = 0, as two families of
// interchangeable steppers:
//
//   - [SpatialStepper]: df/dt = v·df/dx, periodic in x
//   - [VelocityStepper]: df/dt = E·df/dv
//
// Each family offers a spectral phase-shift variant, a semi-Lagrangian
// bicubic-spline variant, and (velocity only) a centered-difference
// variant, selected by [Scheme] at construction:
//
//	meta := vlasov.NewMetadata(x, v)
//	vdfdx, _ := vlasov.NewSpatial(meta, vlasov.Exponential)
//	edfdv, _ := vlasov.NewVelocity(meta, vlasov.SemiLagrangian)
//	f, err = vdfdx.Step(f, dt)
//	f, err = edfdv.Step(f, e, dt)
//
// Operator splitting, field solves, and diagnostics belong to the caller's
// time loop.
//
// # Thread Safety
//
// Metadata is read-only after construction and may be shared. Semi-
// Lagrangian steppers reuse padded scratch buffers and must be owned by one
// goroutine; the Fresh constructors trade allocation per call for
// reentrancy.
package vlasov
