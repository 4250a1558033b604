// Package sim provides a deterministic single-axis plant for exercising the
// positioner without hardware. The plant implements both the motor and
// encoder capabilities: demands written to the motor side move the position
// read back on the encoder side.
package sim

import (
	"context"
	"math"
	"sync"
	"time"

	"go.viam.com/actuator/components/encoder"
	"go.viam.com/actuator/components/motor"
	"go.viam.com/actuator/units"
)

// PlantConfig describes the simulated dynamics.
type PlantConfig struct {
	// Unit is the unit positions are reported in.
	Unit units.AngleUnit `yaml:"unit,omitempty"`

	// VelocityGain is the steady-state speed, in Unit per second, reached
	// per unit of demand.
	VelocityGain float64 `yaml:"velocity_gain"`

	// TimeConstant is the first-order lag, in seconds, of the velocity
	// response. Zero means the velocity follows the demand instantly.
	TimeConstant float64 `yaml:"time_constant,omitempty"`

	// StallCurrent scales the simulated applied current: amps per unit of
	// demand.
	StallCurrent float64 `yaml:"stall_current,omitempty"`
}

// A Plant integrates demand into velocity and position. Step advances the
// simulation; everything else reads or writes its state.
type Plant struct {
	mu  sync.Mutex
	cfg PlantConfig

	demand   float64
	velocity float64 // Unit per second
	position float64 // Unit
}

var (
	_ motor.Motor     = (*Plant)(nil)
	_ encoder.Encoder = (*Plant)(nil)
)

// NewPlant returns a plant at rest at position zero.
func NewPlant(cfg PlantConfig) *Plant {
	return &Plant{cfg: cfg}
}

// Step advances the simulation by dt.
func (p *Plant) Step(dt time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	dtS := dt.Seconds()
	target := p.demand * p.cfg.VelocityGain
	if p.cfg.TimeConstant > 0 {
		p.velocity += (target - p.velocity) * (1 - math.Exp(-dtS/p.cfg.TimeConstant))
	} else {
		p.velocity = target
	}
	p.position += p.velocity * dtS
}

// Set stores the demand. The control mode only matters to real hardware; the
// plant treats every non-positional demand as a velocity command.
func (p *Plant) Set(ctx context.Context, mode motor.ControlMode, demand float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.demand = demand
	return nil
}

// SetWithFeedforward stores the demand plus the feedforward term.
func (p *Plant) SetWithFeedforward(ctx context.Context, mode motor.ControlMode, demand, feedforward float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.demand = demand + feedforward
	return nil
}

// AppliedCurrent reports a current proportional to the demand magnitude.
func (p *Plant) AppliedCurrent(ctx context.Context) (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return math.Abs(p.demand) * p.cfg.StallCurrent, nil
}

// Stop zeroes the demand.
func (p *Plant) Stop(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.demand = 0
	return nil
}

// Position returns the integrated position.
func (p *Plant) Position(ctx context.Context) (units.Angle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return units.NewAngle(p.position, p.cfg.Unit), nil
}

// Velocity returns the current velocity.
func (p *Plant) Velocity(ctx context.Context) (units.AngularVelocity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return units.NewAngularVelocity(p.velocity, p.cfg.Unit.PerSecond()), nil
}

// SetPosition overwrites the integrated position, for homing.
func (p *Plant) SetPosition(ctx context.Context, position units.Angle) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.position = position.In(p.cfg.Unit)
	return nil
}
