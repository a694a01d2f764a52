package tracker

import (
	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

// A damped spring tracker. Frequency controls how fast the camera
// reacts and Damping how much it oscillates around the target
// (1.0 is critically damped, lower values overshoot).
//
// The spring velocity is taken from the previous update velocity
// the rig provides, so the only state kept is the cached spring
// coefficients for the last seen dt.
type Spring struct {
	Frequency float64
	Damping   float64

	spring   harmonica.Spring
	springDt float64
	springFq float64
	springDp float64
}

// Creates a spring tracker with the given parameters.
func NewSpring(frequency, damping float64) *Spring {
	return &Spring{Frequency: frequency, Damping: damping}
}

func (self *Spring) Update(current, target, prevVelocity mgl64.Vec3, dt float64) mgl64.Vec3 {
	if dt != self.springDt || self.Frequency != self.springFq || self.Damping != self.springDp {
		self.spring = harmonica.NewSpring(dt, self.Frequency, self.Damping)
		self.springDt, self.springFq, self.springDp = dt, self.Frequency, self.Damping
	}

	var change mgl64.Vec3
	for i := 0; i < 3; i++ {
		pos, _ := self.spring.Update(current[i], prevVelocity[i], target[i])
		change[i] = pos - current[i]
	}
	return change
}
