package tracker

import (
	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/go-gl/mathgl/mgl64"
)

type tracker = Tracker

// A few stateless built-in trackers.
var (
	// Update(...) always returns the zero vector.
	Frozen tracker = frozenTracker{}

	// Update(...) always returns (target - current).
	Instant tracker = instantTracker{}
)

type frozenTracker struct{}

func (frozenTracker) Update(current, target, prevVelocity mgl64.Vec3, dt float64) mgl64.Vec3 {
	return mgl64.Vec3{}
}

type instantTracker struct{}

func (instantTracker) Update(current, target, prevVelocity mgl64.Vec3, dt float64) mgl64.Vec3 {
	return target.Sub(current)
}

// Exponential smoothing towards the target. Each update closes
// Rate * dt of the remaining distance, capped to the full distance
// on long frames so the camera never overshoots.
//
// This is the default tracker used by the rig, with Rate = 2.0.
type Exponential struct {
	Rate float64
}

func (self Exponential) Update(current, target, prevVelocity mgl64.Vec3, dt float64) mgl64.Vec3 {
	diff := target.Sub(current)

	// stabilization
	if ebimath.Abs(diff[0]) < 1e-6 && ebimath.Abs(diff[1]) < 1e-6 && ebimath.Abs(diff[2]) < 1e-6 {
		return diff
	}

	factor := mgl64.Clamp(self.Rate*dt, 0, 1)
	return diff.Mul(factor)
}
