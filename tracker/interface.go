// This package defines a [Tracker] interface that the mirig
// camera rig uses to follow its target while no transition is
// active, and provides a few default implementations.
//
// Trackers only move the camera position. The look-at point and
// the field of view are handled by the rig itself.
package tracker

import "github.com/go-gl/mathgl/mgl64"

// The interface for mirig idle trackers.
//
// Given the current camera position, the target position, the
// velocity observed on the previous update and the elapsed time
// in seconds, Update() returns the change to apply to the current
// position.
//
// The rig never calls Update() with dt <= 0.
type Tracker interface {
	Update(current, target, prevVelocity mgl64.Vec3, dt float64) mgl64.Vec3
}
