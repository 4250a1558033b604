// Package fake implements a settable fake encoder.
package fake

import (
	"context"
	"sync"

	"go.viam.com/actuator/components/encoder"
	"go.viam.com/actuator/units"
)

// Encoder reports whatever position and velocity it was last given. The zero
// value reads as zero rotations at rest.
type Encoder struct {
	mu       sync.Mutex
	position units.Angle
	velocity units.AngularVelocity

	// PositionErr, when non-nil, is returned by Position.
	PositionErr error
}

var _ encoder.Encoder = (*Encoder)(nil)

// Position returns the last set position.
func (e *Encoder) Position(ctx context.Context) (units.Angle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.PositionErr != nil {
		return units.Angle{}, e.PositionErr
	}
	return e.position, nil
}

// Velocity returns the last set velocity.
func (e *Encoder) Velocity(ctx context.Context) (units.AngularVelocity, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.velocity, nil
}

// SetPosition overwrites the reported position.
func (e *Encoder) SetPosition(ctx context.Context, position units.Angle) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.position = position
	return nil
}

// SetVelocity overwrites the reported velocity.
func (e *Encoder) SetVelocity(ctx context.Context, velocity units.AngularVelocity) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.velocity = velocity
	return nil
}
