package mirig

import (
	"math"
	"testing"

	"github.com/edwinsyarief/mirig/spline"
	"github.com/edwinsyarief/mirig/tracker"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameDt = 1.0 / 60.0

func runUntilIdle(t *testing.T, rig *Rig, maxFrames int) int {
	t.Helper()
	for i := 1; i <= maxFrames; i++ {
		rig.Update(frameDt)
		if !rig.IsTransitioning() {
			return i
		}
	}
	t.Fatalf("transition still active after %d frames (progress %.4f)", maxFrames, rig.Progress())
	return -1
}

func TestNewRigStartsOnDefault(t *testing.T) {
	rig := NewRig(DefaultLocations())
	home := DefaultLocations().Resolve("/")

	cam := rig.Camera()
	assert.Equal(t, home.Position, cam.Position)
	assert.Equal(t, home.LookAt, cam.LookAt)
	assert.Equal(t, home.FOV, cam.FOV)
	assert.Equal(t, "/", rig.Location())
	assert.False(t, rig.IsTransitioning())
}

func TestNewRigStartLocation(t *testing.T) {
	rig := NewRig(DefaultLocations(), WithStartLocation("/contact"))
	assert.Equal(t, mgl64.Vec3{-6, 2, 10}, rig.Camera().Position)
	assert.Equal(t, 48.0, rig.Camera().FOV)
}

func TestNewRigPanicsWithoutLocations(t *testing.T) {
	assert.Panics(t, func() { NewRig(nil) })
}

func TestTransitionConverges(t *testing.T) {
	var ended []TransitionEvent
	rig := NewRig(DefaultLocations(), WithObserver(func(ev TransitionEvent) {
		if ev.Phase == TransitionEnded {
			ended = append(ended, ev)
		}
	}))

	rig.NotifyLocation("/about")
	frames := runUntilIdle(t, rig, 240)
	assert.Less(t, frames, 240)
	require.Len(t, ended, 1)
	assert.Equal(t, ReasonConverged, ended[0].Reason)
	assert.Equal(t, 1.0, rig.Progress())
	assert.Equal(t, 0.0, rig.Velocity())
}

func TestExampleScenario(t *testing.T) {
	rig := NewRig(DefaultLocations())
	rig.NotifyLocation("/about")
	for i := 0; i < 600; i++ {
		rig.Update(frameDt)
	}

	cam := rig.Camera()
	assert.True(t, cam.Position.ApproxEqualThreshold(mgl64.Vec3{6, 3, 12}, 1e-3), "position %v", cam.Position)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, cam.LookAt)
	assert.InDelta(t, 50.0, cam.FOV, 1e-3)
}

func TestTransitionEndpointsAreExact(t *testing.T) {
	rig := NewRig(DefaultLocations())
	start := rig.Camera().Position

	rig.NotifyLocation("/projects")
	rig.Update(1e-9)
	require.True(t, rig.IsTransitioning())
	assert.True(t, rig.Camera().Position.ApproxEqualThreshold(start, 1e-9), "first frame moved to %v", rig.Camera().Position)

	runUntilIdle(t, rig, 600)
	assert.Equal(t, mgl64.Vec3{0, 5, 18}, rig.Camera().Position)
	assert.Equal(t, mgl64.Vec3{0, 0, -2}, rig.Camera().LookAt)
}

func TestVelocityNeverExceedsClamp(t *testing.T) {
	params := DefaultParams()
	params.Stiffness = 200
	params.Damping = 0
	rig := NewRig(DefaultLocations(), WithParams(params))

	for _, id := range []string{"/about", "/projects", "/contact", "/"} {
		rig.NotifyLocation(id)
		for i := 0; i < 120 && (i == 0 || rig.IsTransitioning()); i++ {
			rig.Update(frameDt)
			assert.LessOrEqual(t, math.Abs(rig.Velocity()), params.MaxVelocity)
		}
	}
}

func TestVelocityClampWithDefaults(t *testing.T) {
	rig := NewRig(DefaultLocations())
	rig.NotifyLocation("/contact")
	for i := 0; i < 300; i++ {
		rig.Update(0.1)
		assert.LessOrEqual(t, math.Abs(rig.Velocity()), 2.0)
		assert.False(t, math.IsNaN(rig.Progress()))
	}
}

func TestRestartUsesInterpolatedState(t *testing.T) {
	var events []TransitionEvent
	rig := NewRig(DefaultLocations())
	rig.OnTransition(func(ev TransitionEvent) { events = append(events, ev) })

	rig.NotifyLocation("/about")
	for i := 0; i < 600 && rig.Progress() < 0.5; i++ {
		rig.Update(frameDt)
	}
	require.True(t, rig.IsTransitioning())
	midway := rig.Camera().Position

	// far from both the original anchor and the target
	assert.Greater(t, midway.Sub(mgl64.Vec3{0, 2, 10}).Len(), 0.5)
	assert.Greater(t, midway.Sub(mgl64.Vec3{6, 3, 12}).Len(), 0.5)

	rig.NotifyLocation("/projects")
	rig.Update(1e-4)
	assert.Less(t, rig.Camera().Position.Sub(midway).Len(), 1e-3)
	assert.Equal(t, "/projects", rig.Location())

	require.Len(t, events, 3)
	assert.Equal(t, TransitionStarted, events[0].Phase)
	assert.Equal(t, TransitionEnded, events[1].Phase)
	assert.Equal(t, ReasonInterrupted, events[1].Reason)
	assert.Equal(t, TransitionStarted, events[2].Phase)
	assert.Equal(t, "/about", events[2].From)
	assert.Equal(t, "/projects", events[2].To)

	runUntilIdle(t, rig, 600)
	assert.Equal(t, mgl64.Vec3{0, 5, 18}, rig.Camera().Position)
}

func TestNonPositiveDtSkipsIntegration(t *testing.T) {
	rig := NewRig(DefaultLocations())
	rig.NotifyLocation("/about")
	before := *rig.Camera()

	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		rig.Update(dt)
		assert.Equal(t, before.Position, rig.Camera().Position)
		assert.Equal(t, before.FOV, rig.Camera().FOV)
		assert.Equal(t, 0.0, rig.Progress())
		assert.Equal(t, 0.0, rig.Velocity())
	}
	assert.Equal(t, uint64(0), rig.Frame())
	// the location change itself is still picked up
	assert.True(t, rig.IsTransitioning())
	assert.Equal(t, "/about", rig.Location())
}

func TestWatchdogForcesCompletion(t *testing.T) {
	params := DefaultParams()
	params.Stiffness = 0 // progress never moves
	var reason EndReason
	rig := NewRig(DefaultLocations(), WithParams(params), WithObserver(func(ev TransitionEvent) {
		if ev.Phase == TransitionEnded {
			reason = ev.Reason
		}
	}))

	rig.NotifyLocation("/contact")
	frames := runUntilIdle(t, rig, 1000)
	assert.InDelta(t, params.MaxDuration.Seconds()/frameDt, float64(frames), 2)
	assert.Equal(t, ReasonWatchdog, reason)
	assert.Equal(t, mgl64.Vec3{-6, 2, 10}, rig.Camera().Position)
}

func TestSameLocationDoesNotTransition(t *testing.T) {
	calls := 0
	rig := NewRig(DefaultLocations(), WithObserver(func(TransitionEvent) { calls++ }))
	rig.NotifyLocation("/")
	rig.Update(frameDt)
	assert.False(t, rig.IsTransitioning())
	assert.Equal(t, 0, calls)
}

func TestUnknownLocationFromDefaultStaysStill(t *testing.T) {
	calls := 0
	rig := NewRig(DefaultLocations(), WithObserver(func(TransitionEvent) { calls++ }))
	start := *rig.Camera()

	rig.NotifyLocation("/nope")
	for i := 0; i < 30; i++ {
		rig.Update(frameDt)
		assert.False(t, rig.IsTransitioning())
		assert.Equal(t, start.Position, rig.Camera().Position)
		assert.Equal(t, start.LookAt, rig.Camera().LookAt)
	}
	assert.Equal(t, "/nope", rig.Location())
	assert.Equal(t, 0, calls)

	// leaving the alias is a regular transition
	rig.NotifyLocation("/about")
	rig.Update(frameDt)
	assert.True(t, rig.IsTransitioning())
	assert.Equal(t, 1, calls)
}

func TestAliasedStatesDoNotTransition(t *testing.T) {
	state := CameraState{Position: mgl64.Vec3{0, 1, 5}, LookAt: mgl64.Vec3{0, 0, 0}, FOV: 50}
	other := CameraState{Position: mgl64.Vec3{4, 1, 5}, LookAt: mgl64.Vec3{0, 0, 0}, FOV: 50}
	locations, err := NewLocations("/a", map[string]CameraState{"/a": state, "/b": state, "/c": other})
	require.NoError(t, err)

	var events []TransitionEvent
	rig := NewRig(locations, WithObserver(func(event TransitionEvent) { events = append(events, event) }))
	rig.NotifyLocation("/b")
	rig.Update(frameDt)
	assert.False(t, rig.IsTransitioning())
	assert.Empty(t, events)

	rig.NotifyLocation("/c")
	rig.Update(frameDt)
	require.True(t, rig.IsTransitioning())
	rig.NotifyLocation("/c") // re-notifying keeps it running
	rig.Update(frameDt)
	assert.True(t, rig.IsTransitioning())
	require.Len(t, events, 1)
	assert.Equal(t, "/b", events[0].From)
	assert.Equal(t, "/c", events[0].To)
}

func TestLatestNotificationWins(t *testing.T) {
	rig := NewRig(DefaultLocations())
	rig.NotifyLocation("/about")
	rig.NotifyLocation("/contact")
	rig.Update(frameDt)
	assert.Equal(t, "/contact", rig.Location())
	assert.Equal(t, 48.0, rig.Target().FOV)
}

func TestResetLocation(t *testing.T) {
	var events []TransitionEvent
	rig := NewRig(DefaultLocations(), WithObserver(func(ev TransitionEvent) { events = append(events, ev) }))
	rig.NotifyLocation("/about")
	rig.Update(frameDt)
	rig.Update(frameDt)

	rig.ResetLocation("/projects")
	assert.False(t, rig.IsTransitioning())
	assert.Equal(t, mgl64.Vec3{0, 5, 18}, rig.Camera().Position)
	assert.Equal(t, 60.0, rig.Camera().FOV)
	require.Len(t, events, 2)
	assert.Equal(t, ReasonReset, events[1].Reason)
}

func TestObserverCannotReenterUpdate(t *testing.T) {
	rig := NewRig(DefaultLocations())
	rig.OnTransition(func(TransitionEvent) { rig.Update(frameDt) })
	rig.NotifyLocation("/about")
	assert.Panics(t, func() { rig.Update(frameDt) })
}

func TestObserverMayNotifyLocation(t *testing.T) {
	rig := NewRig(DefaultLocations())
	rig.OnTransition(func(ev TransitionEvent) {
		if ev.Phase == TransitionEnded && ev.To == "/about" {
			rig.NotifyLocation("/contact")
		}
	})
	rig.NotifyLocation("/about")
	runUntilIdle(t, rig, 600)
	rig.Update(frameDt)
	assert.Equal(t, "/contact", rig.Location())
	assert.True(t, rig.IsTransitioning())
}

func TestIdleTrackingFollowsTarget(t *testing.T) {
	rig := NewRig(DefaultLocations())
	rig.Camera().Position = mgl64.Vec3{3, 3, 3}

	rig.Update(frameDt)
	moved := rig.Camera().Position
	assert.Less(t, moved.Sub(mgl64.Vec3{0, 2, 10}).Len(), mgl64.Vec3{3, 3, 3}.Sub(mgl64.Vec3{0, 2, 10}).Len())
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, rig.Camera().LookAt)

	rig.SetTracker(tracker.Instant)
	rig.Update(frameDt)
	assert.True(t, rig.Camera().Position.ApproxEqualThreshold(mgl64.Vec3{0, 2, 10}, 1e-12))

	rig.SetTracker(tracker.Frozen)
	rig.Camera().Position = mgl64.Vec3{1, 1, 1}
	rig.Update(frameDt)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, rig.Camera().Position)
}

func TestFOVIsDampedNotInterpolated(t *testing.T) {
	rig := NewRig(DefaultLocations())
	rig.NotifyLocation("/projects")
	rig.Update(0.1)
	// 55 + (60 - 55) * 0.2
	assert.InDelta(t, 56.0, rig.Camera().FOV, 1e-9)
}

func TestBezierCurveOption(t *testing.T) {
	rig := NewRig(DefaultLocations(), WithCurve(spline.Bezier))
	rig.NotifyLocation("/about")
	runUntilIdle(t, rig, 600)
	assert.Equal(t, mgl64.Vec3{6, 3, 12}, rig.Camera().Position)
	assert.Equal(t, spline.Bezier, rig.GetCurve())
}

func TestTransitionArcs(t *testing.T) {
	rig := NewRig(DefaultLocations())
	rig.NotifyLocation("/about")
	maxY := math.Inf(-1)
	for i := 0; i < 600 && (i == 0 || rig.IsTransitioning()); i++ {
		rig.Update(frameDt)
		maxY = math.Max(maxY, rig.Camera().Position.Y())
	}
	assert.Greater(t, maxY, 4.0)
}
