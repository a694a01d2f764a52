// Package field converts pointer input into a world-space ray and
// derives distance-based force fields from it, for driving reactive
// decorations around the pointer.
//
// A [Pointer] is owned by a single input callback. It is not safe
// for concurrent use; hosts update it from the same loop that later
// reads it.
package field

import (
	"image"
	"math"
	"time"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/go-gl/mathgl/mgl64"
)

// Anything that can turn normalized device coordinates into world
// rays. *mirig.Camera implements it.
type Projector interface {
	Eye() mgl64.Vec3
	ViewProjection() mgl64.Mat4
}

// Pointer state in screen and world space.
type Pointer struct {
	// Ray origin and normalized direction in world space.
	WorldPosition  mgl64.Vec3
	WorldDirection mgl64.Vec3

	// Normalized device coordinates in [-1, 1], y pointing up.
	ScreenPosition ebimath.Vector

	// Screen velocity in normalized units per second.
	Velocity ebimath.Vector

	Pressed   bool
	Timestamp time.Time

	projector Projector
	params    Params
	clock     func() time.Time
	sampled   bool
}

// Configures a pointer on creation.
type Option func(*Pointer)

// Replaces the force field parameters.
func WithParams(params Params) Option {
	return func(p *Pointer) { p.params = params }
}

// Replaces the clock used for velocity timestamps. Defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(p *Pointer) { p.clock = clock }
}

// Creates a pointer casting rays through the given projector.
func NewPointer(projector Projector, opts ...Option) *Pointer {
	if projector == nil {
		panic("can't create a pointer without a projector")
	}
	pointer := &Pointer{projector: projector, params: DefaultParams(), clock: time.Now}
	for _, opt := range opts {
		opt(pointer)
	}
	return pointer
}

func (self *Pointer) Params() Params {
	return self.params
}

// Updates the pointer from raw client coordinates relative to the
// given viewport. This is the only method that mutates the pointer.
// Calls with an empty viewport are ignored.
//
// Velocity is the finite difference from the previous sample over
// the elapsed clock time; if no time elapsed the previous velocity
// is kept. The first sample always has zero velocity.
func (self *Pointer) Update(clientX, clientY float64, pressed bool, viewport image.Rectangle) {
	if viewport.Empty() {
		return
	}
	now := self.clock()

	width, height := float64(viewport.Dx()), float64(viewport.Dy())
	ndc := ebimath.V(
		((clientX-float64(viewport.Min.X))/width)*2-1,
		-((clientY-float64(viewport.Min.Y))/height)*2+1,
	)

	if self.sampled {
		elapsed := now.Sub(self.Timestamp).Seconds()
		if elapsed > 0 {
			self.Velocity = ebimath.V(
				(ndc.X-self.ScreenPosition.X)/elapsed,
				(ndc.Y-self.ScreenPosition.Y)/elapsed,
			)
		}
	} else {
		self.Velocity = ebimath.V(0, 0)
	}

	self.ScreenPosition = ndc
	self.castRay()
	self.Pressed = pressed
	self.Timestamp = now
	self.sampled = true
}

// Recomputes the world ray through the current screen position,
// for use after the camera has moved. Does nothing before the
// first [Pointer.Update]().
func (self *Pointer) Recast() {
	if self.sampled {
		self.castRay()
	}
}

// Recomputes the ray through the current screen position. Degenerate
// projections leave the previous ray untouched.
func (self *Pointer) castRay() {
	viewProj := self.projector.ViewProjection()
	if math.Abs(viewProj.Det()) < 1e-12 {
		return
	}
	far := viewProj.Inv().Mul4x1(mgl64.Vec4{self.ScreenPosition.X, self.ScreenPosition.Y, 0.5, 1})
	if far[3] == 0 {
		return
	}
	eye := self.projector.Eye()
	direction := far.Vec3().Mul(1.0 / far[3]).Sub(eye)
	length := direction.Len()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return
	}
	self.WorldPosition = eye
	self.WorldDirection = direction.Mul(1.0 / length)
}

// Returns the world point at the given distance along the ray.
func (self *Pointer) At(distance float64) mgl64.Vec3 {
	return self.WorldPosition.Add(self.WorldDirection.Mul(distance))
}

// Euclidean distance between two screen positions.
func ScreenDistance(a, b ebimath.Vector) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
