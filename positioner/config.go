package positioner

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"go.viam.com/actuator/components/encoder"
	"go.viam.com/actuator/components/motor"
	"go.viam.com/actuator/control"
	"go.viam.com/actuator/telemetry"
	"go.viam.com/actuator/units"
)

// Config assembles a Positioner. Motor and Encoder are required; everything
// else has a usable default. A Config is consumed once by New and never
// mutated afterward.
type Config struct {
	Motor   motor.Motor
	Encoder encoder.Encoder

	// OutputMode is the control mode used for PID-driven writes. It must
	// not be a positional mode. Defaults to duty cycle.
	OutputMode motor.ControlMode

	Gains control.Gains

	// Tolerance defines the at-position thresholds in Unit. The zero
	// value selects control.DefaultTolerance.
	Tolerance control.Tolerance

	// StartingPosition seeds the controller's setpoint. Defaults to zero
	// in Unit.
	StartingPosition units.Angle

	// Unit is the working unit errors are computed in. Defaults to
	// rotations.
	Unit units.AngleUnit

	// Clamp bounds PID output before it reaches the motor. Defaults to
	// the identity. Direct Set calls are never clamped.
	Clamp control.Clamp

	// Sink, when non-nil, receives a snapshot on every Tick.
	Sink telemetry.Sink

	Logger golog.Logger
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	if cfg.Motor == nil {
		return goutils.NewConfigValidationFieldRequiredError(path, "motor")
	}
	if cfg.Encoder == nil {
		return goutils.NewConfigValidationFieldRequiredError(path, "encoder")
	}
	if cfg.OutputMode.IsPositionalControl() {
		return goutils.NewConfigValidationError(path,
			errors.Errorf("output mode %q is positional; the positioner closes the position loop itself", cfg.OutputMode))
	}
	if err := cfg.Gains.Validate(); err != nil {
		return goutils.NewConfigValidationError(path, err)
	}
	if err := cfg.tolerance().Validate(); err != nil {
		return goutils.NewConfigValidationError(path, err)
	}
	return nil
}

func (cfg *Config) tolerance() control.Tolerance {
	if cfg.Tolerance == (control.Tolerance{}) {
		return control.DefaultTolerance
	}
	return cfg.Tolerance
}

func (cfg *Config) clamp() control.Clamp {
	if cfg.Clamp == nil {
		return control.Identity
	}
	return cfg.Clamp
}

func (cfg *Config) logger() golog.Logger {
	if cfg.Logger == nil {
		return golog.Global()
	}
	return cfg.Logger
}
