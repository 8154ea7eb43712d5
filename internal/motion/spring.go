package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring tuning. A critically damped spring at this frequency brings a unit
// step within DefaultEpsilon in roughly half a second at 60 FPS.
const (
	DefaultFPS       = 60
	DefaultFrequency = 18.0
	DefaultEpsilon   = 1e-3

	// criticalDamping is the damping ratio at which the spring never oscillates
	criticalDamping = 1.0
)

// Smoother chases a moving target with a critically damped spring.
// It never moves past the target and snaps onto it once close enough.
type Smoother struct {
	spring   harmonica.Spring
	epsilon  float64
	disabled bool

	pos    float64
	vel    float64
	target float64
}

// NewSmoother creates a smoother starting at rest on start
func NewSmoother(fps int, frequency, epsilon float64, start float64) Smoother {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	return Smoother{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), frequency, criticalDamping),
		epsilon: epsilon,
		pos:     start,
		target:  start,
	}
}

// Disable turns the smoother into a pass-through (reduced motion)
func (s *Smoother) Disable() {
	s.disabled = true
	s.pos = s.target
	s.vel = 0
}

// Step advances one frame toward target and returns the new value
func (s *Smoother) Step(target float64) float64 {
	s.target = target

	if s.disabled {
		s.pos, s.vel = target, 0
		return s.pos
	}
	if s.pos == target {
		// Already there; any residual velocity would carry it past
		s.vel = 0
		return s.pos
	}

	before := target - s.pos
	pos, vel := s.spring.Update(s.pos, s.vel, target)
	after := target - pos

	switch {
	case math.Signbit(before) != math.Signbit(after):
		// Would cross the target: land on it instead
		pos, vel = target, 0
	case math.Abs(after) < s.epsilon:
		pos, vel = target, 0
	}

	s.pos, s.vel = pos, vel
	return s.pos
}

// Value returns the current smoothed value
func (s Smoother) Value() float64 {
	return s.pos
}

// Target returns the last target passed to Step
func (s Smoother) Target() float64 {
	return s.target
}

// Settled reports whether the value sits exactly on the target at rest
func (s Smoother) Settled() bool {
	return s.pos == s.target && s.vel == 0
}

// Reset places the smoother at rest on value
func (s *Smoother) Reset(value float64) {
	s.pos, s.vel, s.target = value, 0, value
}
