// Package units provides unit-carrying angular measures for the actuator
// control layer. A measure remembers the unit it was created with and
// converts losslessly between units.
package units

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// AngleUnit enumerates the supported angular position units.
type AngleUnit int

// The supported angle units.
const (
	Rotations AngleUnit = iota
	Degrees
	Radians
)

// anglePerRotation maps each unit to its magnitude per full rotation.
var anglePerRotation = [...]float64{
	Rotations: 1,
	Degrees:   360,
	Radians:   2 * math.Pi,
}

func (u AngleUnit) String() string {
	switch u {
	case Rotations:
		return "rotations"
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return fmt.Sprintf("AngleUnit(%d)", int(u))
	}
}

// PerSecond returns the velocity unit corresponding to this position unit.
func (u AngleUnit) PerSecond() AngularVelocityUnit {
	switch u {
	case Degrees:
		return DegreesPerSecond
	case Radians:
		return RadiansPerSecond
	default:
		return RotationsPerSecond
	}
}

// ParseAngleUnit converts a config-file unit name into an AngleUnit.
func ParseAngleUnit(name string) (AngleUnit, error) {
	switch name {
	case "rotations", "":
		return Rotations, nil
	case "degrees":
		return Degrees, nil
	case "radians":
		return Radians, nil
	default:
		return Rotations, errors.Errorf("unknown angle unit %q", name)
	}
}

// An Angle is a magnitude tagged with the unit it is expressed in.
type Angle struct {
	value float64
	unit  AngleUnit
}

// NewAngle returns an Angle of the given magnitude in the given unit.
func NewAngle(value float64, unit AngleUnit) Angle {
	return Angle{value: value, unit: unit}
}

// Value returns the magnitude in the angle's own unit.
func (a Angle) Value() float64 {
	return a.value
}

// Unit returns the unit the angle was created with.
func (a Angle) Unit() AngleUnit {
	return a.unit
}

// In returns the magnitude expressed in the given unit.
func (a Angle) In(unit AngleUnit) float64 {
	if unit == a.unit {
		return a.value
	}
	return a.value * anglePerRotation[unit] / anglePerRotation[a.unit]
}

// Convert returns the same angle re-expressed in the given unit.
func (a Angle) Convert(unit AngleUnit) Angle {
	return Angle{value: a.In(unit), unit: unit}
}

// Rotations returns the magnitude in rotations.
func (a Angle) Rotations() float64 {
	return a.In(Rotations)
}

// Degrees returns the magnitude in degrees.
func (a Angle) Degrees() float64 {
	return a.In(Degrees)
}

// Radians returns the magnitude in radians.
func (a Angle) Radians() float64 {
	return a.In(Radians)
}

func (a Angle) String() string {
	return fmt.Sprintf("%v %s", a.value, a.unit)
}
