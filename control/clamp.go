package control

import "math"

// A Clamp bounds a computed correction before it is written to the motor.
// Clamps must be pure and stateless.
type Clamp func(output float64) float64

// Identity returns its input unchanged. It is the default clamp.
func Identity(output float64) float64 {
	return output
}

// ClampToRange returns a Clamp bounding outputs to [min, max].
func ClampToRange(min, max float64) Clamp {
	return func(output float64) float64 {
		return math.Min(math.Max(output, min), max)
	}
}

// ClampPower bounds a duty-cycle demand to [-1, 1].
func ClampPower(output float64) float64 {
	return math.Min(math.Max(output, -1), 1)
}
