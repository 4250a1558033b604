// Package positioner implements a closed-loop position-controlled subsystem
// on top of a raw motor and encoder pair. It arbitrates, on every tick,
// between PID setpoint tracking and direct passthrough demands.
package positioner

import (
	"context"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"go.viam.com/actuator/components/encoder"
	"go.viam.com/actuator/components/motor"
	"go.viam.com/actuator/control"
	"go.viam.com/actuator/telemetry"
	"go.viam.com/actuator/units"
)

// Telemetry snapshot names published on every tick.
const (
	TelemetryPosition   = "position"
	TelemetrySetpoint   = "setpoint"
	TelemetryAtPosition = "at_position"
	TelemetryCurrent    = "current"
	TelemetryEnabled    = "enabled"
)

// A Positioner owns its motor on every tick. While enabled, Tick drives the
// motor from the PID controller's clamped output; while disabled, Tick does
// not actuate and the motor holds whatever demand was last Set.
//
// A Positioner has no internal locking: all calls must come from the same
// logical thread as the host's periodic driver.
type Positioner struct {
	logger golog.Logger

	motor   motor.Motor
	encoder encoder.Encoder
	pid     *control.PID
	clamp   control.Clamp
	sink    telemetry.Sink

	outputMode motor.ControlMode
	enabled    bool
}

// New validates the config and returns a disabled Positioner with its
// setpoint seeded from the configured starting position.
func New(cfg Config) (*Positioner, error) {
	if err := cfg.Validate(""); err != nil {
		return nil, err
	}
	start := cfg.StartingPosition
	if start == (units.Angle{}) {
		start = units.NewAngle(0, cfg.Unit)
	}
	return &Positioner{
		logger:     cfg.logger(),
		motor:      cfg.Motor,
		encoder:    cfg.Encoder,
		pid:        control.NewPID(cfg.Gains, cfg.tolerance(), cfg.Unit, start),
		clamp:      cfg.clamp(),
		sink:       cfg.Sink,
		outputMode: cfg.OutputMode,
	}, nil
}

// Enable switches to closed-loop control. The next Tick drives the motor
// toward the current setpoint.
func (p *Positioner) Enable() {
	p.enabled = true
}

// IsEnabled reports whether closed-loop control is active.
func (p *Positioner) IsEnabled() bool {
	return p.enabled
}

// SetSetpoint replaces the target position and enables closed-loop control.
func (p *Positioner) SetSetpoint(target units.Angle) {
	p.pid.SetSetpoint(target)
	p.enabled = true
}

// Setpoint returns the current target position.
func (p *Positioner) Setpoint() units.Angle {
	return p.pid.Setpoint()
}

// SetGains replaces the PID coefficients.
func (p *Positioner) SetGains(kP, kI, kD float64) error {
	return p.pid.SetGains(kP, kI, kD)
}

// SetTolerance replaces the at-position thresholds.
func (p *Positioner) SetTolerance(tol control.Tolerance) error {
	return p.pid.SetTolerance(tol)
}

// AtPosition reports whether the live measurement is within tolerance of the
// setpoint. It answers the same whether or not closed-loop control is
// active.
func (p *Positioner) AtPosition(ctx context.Context) (bool, error) {
	pos, err := p.encoder.Position(ctx)
	if err != nil {
		return false, errors.Wrap(err, "reading position")
	}
	vel, err := p.encoder.Velocity(ctx)
	if err != nil {
		return false, errors.Wrap(err, "reading velocity")
	}
	return p.pid.AtSetpoint(pos, vel), nil
}

// Set forwards a raw demand straight to the motor and disables closed-loop
// control. The demand is not clamped; the caller owns its bounds.
func (p *Positioner) Set(ctx context.Context, mode motor.ControlMode, demand float64) error {
	p.enabled = false
	return p.motor.Set(ctx, mode, demand)
}

// SetWithFeedforward is Set with an additive feedforward term.
func (p *Positioner) SetWithFeedforward(ctx context.Context, mode motor.ControlMode, demand, feedforward float64) error {
	p.enabled = false
	return p.motor.SetWithFeedforward(ctx, mode, demand, feedforward)
}

// Stop disables closed-loop control and puts the motor in its safe mode.
func (p *Positioner) Stop(ctx context.Context) error {
	p.enabled = false
	return p.motor.Stop(ctx)
}

// Tick runs one control cycle. While enabled it reads the encoder, steps the
// PID controller, clamps the output, and issues exactly one motor write.
// While disabled it does not actuate. In both states it publishes a
// telemetry snapshot if a sink is configured; telemetry never affects
// control.
func (p *Positioner) Tick(ctx context.Context) error {
	var tickErr error
	if p.enabled {
		pos, err := p.encoder.Position(ctx)
		if err != nil {
			tickErr = errors.Wrap(err, "reading position")
		} else {
			output := p.clamp(p.pid.Calculate(pos))
			if err := p.motor.Set(ctx, p.outputMode, output); err != nil {
				tickErr = errors.Wrap(err, "writing demand")
			}
		}
	}
	if p.sink != nil {
		p.publishSnapshot(ctx)
	}
	return tickErr
}

func (p *Positioner) publishSnapshot(ctx context.Context) {
	if pos, err := p.encoder.Position(ctx); err == nil {
		p.sink.PublishDouble(TelemetryPosition, pos.Value())
		if vel, err := p.encoder.Velocity(ctx); err == nil {
			p.sink.PublishBoolean(TelemetryAtPosition, p.pid.AtSetpoint(pos, vel))
		}
	} else {
		p.logger.Debugw("telemetry position read failed", "error", err)
	}
	p.sink.PublishDouble(TelemetrySetpoint, p.pid.Setpoint().Value())
	if amps, err := p.motor.AppliedCurrent(ctx); err == nil {
		p.sink.PublishDouble(TelemetryCurrent, amps)
	} else {
		p.logger.Debugw("telemetry current read failed", "error", err)
	}
	p.sink.PublishBoolean(TelemetryEnabled, p.enabled)
}

// Close stops the motor and releases any owned telemetry resources.
func (p *Positioner) Close(ctx context.Context) error {
	err := p.Stop(ctx)
	if p.sink != nil {
		err = multierr.Combine(err, goutils.TryClose(ctx, p.sink))
	}
	return err
}
