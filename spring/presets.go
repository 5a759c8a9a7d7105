package spring

import "math"

// Presets are named parameter tuples, not separate algorithms
// Values follow the common react-spring conventions

// Gentle settles smoothly with a slight overshoot
func Gentle() Config {
	return Config{Mass: 1, Stiffness: 120, Damping: 14}
}

// Wobbly overshoots visibly before settling
func Wobbly() Config {
	return Config{Mass: 1, Stiffness: 180, Damping: 12}
}

// Stiff snaps quickly to the target
func Stiff() Config {
	return Config{Mass: 1, Stiffness: 210, Damping: 20}
}

// Slow takes its time with minimal oscillation
func Slow() Config {
	return Config{Mass: 1, Stiffness: 280, Damping: 60}
}

// Bouncy rings several times before settling
func Bouncy() Config {
	return Config{Mass: 1, Stiffness: 600, Damping: 15}
}

// NoOvershoot is critically damped: monotonic approach, no ringing
func NoOvershoot() Config {
	return Config{Mass: 1, Stiffness: 170, Damping: 2 * math.Sqrt(170)}
}
