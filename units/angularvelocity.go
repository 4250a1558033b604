package units

import "fmt"

// AngularVelocityUnit enumerates the supported angular velocity units.
type AngularVelocityUnit int

// The supported angular velocity units.
const (
	RotationsPerSecond AngularVelocityUnit = iota
	RPM
	DegreesPerSecond
	RadiansPerSecond
)

// velocityPerRotationPerSecond maps each unit to its magnitude per one
// rotation per second.
var velocityPerRotationPerSecond = [...]float64{
	RotationsPerSecond: 1,
	RPM:                60,
	DegreesPerSecond:   anglePerRotation[Degrees],
	RadiansPerSecond:   anglePerRotation[Radians],
}

func (u AngularVelocityUnit) String() string {
	switch u {
	case RotationsPerSecond:
		return "rotations/sec"
	case RPM:
		return "rpm"
	case DegreesPerSecond:
		return "degrees/sec"
	case RadiansPerSecond:
		return "radians/sec"
	default:
		return fmt.Sprintf("AngularVelocityUnit(%d)", int(u))
	}
}

// An AngularVelocity is a magnitude tagged with the unit it is expressed in.
type AngularVelocity struct {
	value float64
	unit  AngularVelocityUnit
}

// NewAngularVelocity returns an AngularVelocity of the given magnitude in the
// given unit.
func NewAngularVelocity(value float64, unit AngularVelocityUnit) AngularVelocity {
	return AngularVelocity{value: value, unit: unit}
}

// Value returns the magnitude in the velocity's own unit.
func (v AngularVelocity) Value() float64 {
	return v.value
}

// Unit returns the unit the velocity was created with.
func (v AngularVelocity) Unit() AngularVelocityUnit {
	return v.unit
}

// In returns the magnitude expressed in the given unit.
func (v AngularVelocity) In(unit AngularVelocityUnit) float64 {
	if unit == v.unit {
		return v.value
	}
	return v.value * velocityPerRotationPerSecond[unit] / velocityPerRotationPerSecond[v.unit]
}

// Convert returns the same velocity re-expressed in the given unit.
func (v AngularVelocity) Convert(unit AngularVelocityUnit) AngularVelocity {
	return AngularVelocity{value: v.In(unit), unit: unit}
}

func (v AngularVelocity) String() string {
	return fmt.Sprintf("%v %s", v.value, v.unit)
}
