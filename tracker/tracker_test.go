package tracker

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestStatelessTrackers(t *testing.T) {
	current := mgl64.Vec3{1, 2, 3}
	target := mgl64.Vec3{4, 6, 3}

	assert.Equal(t, mgl64.Vec3{}, Frozen.Update(current, target, mgl64.Vec3{}, 1.0/60.0))
	assert.Equal(t, mgl64.Vec3{3, 4, 0}, Instant.Update(current, target, mgl64.Vec3{}, 1.0/60.0))
}

func TestExponentialClosesFraction(t *testing.T) {
	exp := Exponential{Rate: 2.0}
	change := exp.Update(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 0, 0}, mgl64.Vec3{}, 0.1)
	assert.InDelta(t, 2.0, change[0], 1e-9)

	// long frames never overshoot
	change = exp.Update(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 0, 0}, mgl64.Vec3{}, 5.0)
	assert.InDelta(t, 10.0, change[0], 1e-9)
}

func TestExponentialConverges(t *testing.T) {
	exp := Exponential{Rate: 2.0}
	pos := mgl64.Vec3{0, 2, 10}
	target := mgl64.Vec3{6, 3, 12}
	for i := 0; i < 600; i++ {
		pos = pos.Add(exp.Update(pos, target, mgl64.Vec3{}, 1.0/60.0))
	}
	assert.True(t, pos.ApproxEqualThreshold(target, 1e-3), "got %v", pos)
}

func TestSpringConverges(t *testing.T) {
	spring := NewSpring(6.0, 1.0)
	pos := mgl64.Vec3{0, 0, 0}
	target := mgl64.Vec3{-6, 2, 10}
	var vel mgl64.Vec3
	dt := 1.0 / 60.0
	for i := 0; i < 600; i++ {
		change := spring.Update(pos, target, vel, dt)
		pos = pos.Add(change)
		vel = change.Mul(1.0 / dt)
	}
	assert.True(t, pos.ApproxEqualThreshold(target, 1e-2), "got %v", pos)
}
