package mirig

import (
	"time"

	"github.com/edwinsyarief/mirig/spline"
	"github.com/edwinsyarief/mirig/tracker"
)

// Tuning constants for a [Rig]. See [DefaultParams]() for the
// values used when no explicit parameters are given.
type Params struct {
	// Spring constants for the transition progress. The progress
	// acceleration is (1 - progress)*Stiffness - velocity*Damping.
	Stiffness float64
	Damping   float64

	// Bound for the progress velocity magnitude.
	MaxVelocity float64

	// Progress at which a transition snaps to completion.
	CompletionThreshold float64

	// Height added along the up axis to the interior control points.
	ArcHeight float64

	// Exponential smoothing rates (per second) for the idle position
	// tracking and the field of view.
	FollowRate float64
	FOVRate    float64

	// Ceiling for a single transition, measured in accumulated frame
	// time. Zero or negative disables the watchdog.
	MaxDuration time.Duration

	// Projection parameters for the render camera.
	Aspect float64
	Near   float64
	Far    float64
}

func DefaultParams() Params {
	return Params{
		Stiffness:           3.0,
		Damping:             2.0,
		MaxVelocity:         2.0,
		CompletionThreshold: 0.98,
		ArcHeight:           2.0,
		FollowRate:          2.0,
		FOVRate:             2.0,
		MaxDuration:         4 * time.Second,
		Aspect:              16.0 / 9.0,
		Near:                0.1,
		Far:                 1000.0,
	}
}

// Configures a rig on creation. See [NewRig]().
type Option func(*Rig)

// Replaces the rig parameters.
func WithParams(params Params) Option {
	return func(rig *Rig) { rig.params = params }
}

// Sets the idle tracker. See [Rig.SetTracker]().
func WithTracker(t tracker.Tracker) Option {
	return func(rig *Rig) { rig.tracker = t }
}

// Sets the transition curve. See [Rig.SetCurve]().
func WithCurve(curve spline.Curve) Option {
	return func(rig *Rig) { rig.curve = curve }
}

// Registers a transition observer. See [Rig.OnTransition]().
func WithObserver(observer func(TransitionEvent)) Option {
	return func(rig *Rig) { rig.observers = append(rig.observers, observer) }
}

// Starts the rig at the given location instead of the default one.
func WithStartLocation(id string) Option {
	return func(rig *Rig) { rig.location = id }
}
