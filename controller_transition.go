package mirig

import (
	"github.com/edwinsyarief/mirig/spline"
	"github.com/go-gl/mathgl/mgl64"
)

type transition struct {
	from           string
	to             string
	positionSpline spline.ControlPoints
	targetSpline   spline.ControlPoints
	progress       float64
	velocity       float64
	elapsed        float64 // seconds
	active         bool
}

// Starts a transition from the given position and look-at point.
// Any previous state is discarded: the caller is expected to pass
// the current interpolated camera state, not the last target.
func (self *transition) Start(from, to string, position, lookAt mgl64.Vec3, target CameraState, lift float64) {
	self.from, self.to = from, to
	self.positionSpline = spline.ArcControlPoints(position, target.Position, lift)
	self.targetSpline = spline.ArcControlPoints(lookAt, target.LookAt, lift)
	self.progress = 0
	self.velocity = 0
	self.elapsed = 0
	self.active = true
}

// Stops the transition without touching the camera.
func (self *transition) Stop() {
	self.active = false
	self.velocity = 0
}

func (self *transition) IsActive() bool {
	return self.active
}

// Advances the damped progress. Returns the end reason when the
// transition finishes on this step, or ReasonNone otherwise. The
// caller guarantees dt > 0.
func (self *transition) Advance(dt float64, params *Params) EndReason {
	if !self.active {
		return ReasonNone
	}

	err := 1.0 - self.progress
	acceleration := err*params.Stiffness - self.velocity*params.Damping
	self.velocity += acceleration * dt
	self.velocity = mgl64.Clamp(self.velocity, -params.MaxVelocity, params.MaxVelocity)
	self.progress += self.velocity * dt
	self.elapsed += dt

	if self.progress >= params.CompletionThreshold {
		self.finish()
		return ReasonConverged
	}
	if params.MaxDuration > 0 && self.elapsed >= params.MaxDuration.Seconds() {
		self.finish()
		return ReasonWatchdog
	}
	return ReasonNone
}

func (self *transition) finish() {
	self.progress = 1
	self.velocity = 0
	self.active = false
}

// Samples position and look-at on the splines at the smoothed progress.
func (self *transition) Sample(curve spline.Curve) (position, lookAt mgl64.Vec3) {
	t := spline.Smoothstep(self.progress)
	return curve.Eval(t, self.positionSpline), curve.Eval(t, self.targetSpline)
}
