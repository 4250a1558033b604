// Package motor defines the actuator capability consumed by the positioner:
// a device that accepts a raw demand in one of a closed set of control modes
// and reports its applied current.
package motor

import "context"

// A Motor accepts raw demands. Implementations own all hardware-level
// validation and retry behavior; callers of Set are responsible for bounding
// their own demands.
type Motor interface {
	// Set applies the given demand using the given control mode.
	Set(ctx context.Context, mode ControlMode, demand float64) error

	// SetWithFeedforward applies the given demand plus an additive
	// feedforward term compensating for known system behavior.
	SetWithFeedforward(ctx context.Context, mode ControlMode, demand, feedforward float64) error

	// AppliedCurrent returns the current the motor is drawing, in amps.
	AppliedCurrent(ctx context.Context) (float64, error)

	// Stop removes all demand and puts the motor in its safe mode.
	Stop(ctx context.Context) error
}
