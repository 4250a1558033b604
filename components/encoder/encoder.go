// Package encoder defines the sensor capability consumed by the positioner:
// a device reporting the actuator's position and velocity as unit-carrying
// measures.
package encoder

import (
	"context"

	"go.viam.com/actuator/units"
)

// An Encoder turns a physical position into a measure. Readings are passed
// through to the control layer unvalidated; implementations are responsible
// for their own fault handling.
type Encoder interface {
	// Position returns the current position.
	Position(ctx context.Context) (units.Angle, error)

	// Velocity returns the current angular velocity.
	Velocity(ctx context.Context) (units.AngularVelocity, error)

	// SetPosition overwrites the encoder's notion of where it is, for
	// homing and zeroing.
	SetPosition(ctx context.Context, position units.Angle) error
}
