package motor

import "fmt"

// ControlMode is the actuation strategy used when writing a demand to a
// motor.
type ControlMode uint8

// The closed set of control modes.
const (
	// ControlModeDutyCycle drives the motor with a fraction of the bus
	// voltage in [-1, 1].
	ControlModeDutyCycle ControlMode = iota
	// ControlModeVoltage drives the motor with an absolute voltage.
	ControlModeVoltage
	// ControlModeVelocity drives the motor's onboard velocity loop.
	ControlModeVelocity
	// ControlModeCurrent drives the motor with a torque current.
	ControlModeCurrent
	// ControlModePosition drives the motor's onboard position loop.
	ControlModePosition
	// ControlModeMotionProfile drives the motor's onboard profiled
	// position loop.
	ControlModeMotionProfile
)

// positional marks the modes whose demand is a position target. Such modes
// close the position loop inside the motor controller and therefore cannot
// serve as a positioner's output mode.
var positional = map[ControlMode]bool{
	ControlModePosition:      true,
	ControlModeMotionProfile: true,
}

// IsPositionalControl reports whether the mode's demand is a position target.
func (m ControlMode) IsPositionalControl() bool {
	return positional[m]
}

func (m ControlMode) String() string {
	switch m {
	case ControlModeDutyCycle:
		return "duty_cycle"
	case ControlModeVoltage:
		return "voltage"
	case ControlModeVelocity:
		return "velocity"
	case ControlModeCurrent:
		return "current"
	case ControlModePosition:
		return "position"
	case ControlModeMotionProfile:
		return "motion_profile"
	default:
		return fmt.Sprintf("ControlMode(%d)", int(m))
	}
}
