package kinematic

// This package includes the explicit-Euler helpers used by the frame integrator.
// Velocities are expressed in units per frame and accelerations in units per frame squared,
// so a time step of 1 is one whole frame and 1/n is one of n sub-steps.

type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Displacement returns the distance covered over time at a constant velocity.
func Displacement(velocity float64, time float64) float64 {
	return velocity * time
}

// FinalVelocity returns the final velocity of an object given its initial velocity, time, and acceleration.
func FinalVelocity(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity + acceleration*time
}

// Step advances a position and velocity by one explicit-Euler step.
// The position moves with the velocity held at the start of the step.
func Step(position, velocity, acceleration, time float64) (float64, float64) {
	return position + Displacement(velocity, time), FinalVelocity(velocity, time, acceleration)
}
