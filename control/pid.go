// Package control implements the setpoint-tracking pieces of the actuator
// control layer: a discrete PID controller, settling tolerances, and output
// clamps.
package control

import (
	"math"

	"github.com/pkg/errors"

	"go.viam.com/actuator/units"
)

// Gains holds the proportional, integral, and derivative coefficients of a
// PID controller.
type Gains struct {
	P float64 `yaml:"p"`
	I float64 `yaml:"i"`
	D float64 `yaml:"d"`
}

// Validate returns an error if any gain is NaN.
func (g Gains) Validate() error {
	if math.IsNaN(g.P) || math.IsNaN(g.I) || math.IsNaN(g.D) {
		return errors.New("pid gains must not be NaN")
	}
	return nil
}

// Tolerance defines when a controller considers itself settled. Position is
// the maximum allowed setpoint error in the controller's working unit.
// Velocity, when positive, additionally bounds the measured speed; zero
// disables the velocity check.
type Tolerance struct {
	Position float64 `yaml:"position"`
	Velocity float64 `yaml:"velocity,omitempty"`
}

// DefaultTolerance is used when a configuration does not specify one.
var DefaultTolerance = Tolerance{Position: 0.05}

// Validate returns an error if the position tolerance is negative or either
// field is NaN.
func (t Tolerance) Validate() error {
	if math.IsNaN(t.Position) || math.IsNaN(t.Velocity) {
		return errors.New("tolerance must not be NaN")
	}
	if t.Position < 0 {
		return errors.Errorf("position tolerance must be non-negative, got %f", t.Position)
	}
	return nil
}

// PID is a discrete setpoint-tracking controller. It works in a fixed angle
// unit; measurements in any unit are converted before the error is computed.
//
// Calculate mutates accumulated state and must be called at most once per
// control cycle. The integral term accumulates without bound; callers that
// saturate for long periods should bound the output with a Clamp.
//
// PID is not safe for concurrent use.
type PID struct {
	gains    Gains
	tol      Tolerance
	unit     units.AngleUnit
	setpoint units.Angle

	integral  float64
	prevError float64
}

// NewPID returns a controller with the given gains and tolerance, working in
// the given unit, with its setpoint seeded to start.
func NewPID(gains Gains, tol Tolerance, unit units.AngleUnit, start units.Angle) *PID {
	return &PID{
		gains:    gains,
		tol:      tol,
		unit:     unit,
		setpoint: start.Convert(unit),
	}
}

// SetSetpoint replaces the target position. Accumulated error state is left
// untouched; the next Calculate sees the new target.
func (p *PID) SetSetpoint(target units.Angle) {
	p.setpoint = target.Convert(p.unit)
}

// Setpoint returns the current target position.
func (p *PID) Setpoint() units.Angle {
	return p.setpoint
}

// SetGains replaces the controller coefficients.
func (p *PID) SetGains(kP, kI, kD float64) error {
	gains := Gains{P: kP, I: kI, D: kD}
	if err := gains.Validate(); err != nil {
		return err
	}
	p.gains = gains
	return nil
}

// Gains returns the current controller coefficients.
func (p *PID) Gains() Gains {
	return p.gains
}

// SetTolerance replaces the settling thresholds.
func (p *PID) SetTolerance(tol Tolerance) error {
	if err := tol.Validate(); err != nil {
		return err
	}
	p.tol = tol
	return nil
}

// Tolerance returns the current settling thresholds.
func (p *PID) Tolerance() Tolerance {
	return p.tol
}

// Calculate runs one discrete controller step against the given measurement
// and returns the raw (unclamped) correction.
func (p *PID) Calculate(measurement units.Angle) float64 {
	errVal := p.setpoint.In(p.unit) - measurement.In(p.unit)
	p.integral += errVal
	derivative := errVal - p.prevError
	p.prevError = errVal
	return p.gains.P*errVal + p.gains.I*p.integral + p.gains.D*derivative
}

// AtSetpoint reports whether the given live measurement is within the
// position tolerance of the setpoint and, if a velocity tolerance is
// configured, whether the measured speed is within it too.
func (p *PID) AtSetpoint(measurement units.Angle, velocity units.AngularVelocity) bool {
	errVal := p.setpoint.In(p.unit) - measurement.In(p.unit)
	if math.Abs(errVal) > p.tol.Position {
		return false
	}
	if p.tol.Velocity > 0 && math.Abs(velocity.In(p.unit.PerSecond())) > p.tol.Velocity {
		return false
	}
	return true
}

// Reset clears the accumulated integral and derivative state.
func (p *PID) Reset() {
	p.integral = 0
	p.prevError = 0
}
