// Package scene implements the decorative background driven by the
// camera rig and the pointer field: a spinning torus knot core that
// glitches when hovered, a scrolling wave terrain and a particle
// cloud pushed around by the pointer.
package scene

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/mirig/field"
	"github.com/edwinsyarief/mirig/utils"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	knotRadius   = 6.0
	knotTube     = 1.8
	knotSegments = 150

	terrainSize     = 200.0
	terrainDivs     = 40
	terrainY        = -15.0
	terrainSpeed    = 10.0
	terrainWrap     = 20.0
	terrainAmp      = 2.0
	terrainWaveTime = 2.0
	terrainWaveX    = 0.5

	particleCount  = 1000
	particleSpread = 100.0
	particleSpin   = 0.05

	coreSpinY      = 0.005 // per reference frame
	coreSpinX      = 0.002
	coreEase       = 0.05
	pointerTilt    = 0.0005 // radians per pixel of pointer offset
	jitterAmount   = 0.1
	referenceFPS   = 60.0
	hoverRadiusNDC = 0.35
)

// Scene colors.
type Palette struct {
	Primary    color.RGBA // wireframe and particles
	Secondary  color.RGBA // terrain and core glow
	Glitch     color.RGBA // wireframe while hovered
	Background color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Primary:    utils.Hex(0x00f2ff),
		Secondary:  utils.Hex(0x7000ff),
		Glitch:     utils.Hex(0xff0055),
		Background: utils.Hex(0x050505),
	}
}

// The background scene state, advanced once per frame by [Background.Update]().
type Background struct {
	Palette Palette

	// Core group transform.
	CoreRotation mgl64.Vec2 // x and y euler angles
	CoreScale    float64
	CoreOffset   mgl64.Vec3
	Hovering     bool

	// Proximity of the pointer to the projected core center, in [0, 1].
	Proximity float64

	TerrainOffset    float64
	ParticleRotation float64

	elapsed   float64
	knot      []mgl64.Vec3
	terrain   []mgl64.Vec3 // (divs+1)² vertices, row major
	particles []mgl64.Vec3 // base positions
	displaced []mgl64.Vec3 // positions after rotation and field
	hittables []field.Hittable
	rand      *rand.Rand
	onHover   []func(bool)
}

// Creates a background with particle positions and hover jitter
// derived from the given seed.
func NewBackground(seed uint64) *Background {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	bg := &Background{
		Palette:   DefaultPalette(),
		CoreScale: 1.0,
		knot:      torusKnot(knotRadius, knotSegments, 2, 3),
		terrain:   make([]mgl64.Vec3, (terrainDivs+1)*(terrainDivs+1)),
		particles: make([]mgl64.Vec3, particleCount),
		displaced: make([]mgl64.Vec3, particleCount),
		rand:      rng,
	}
	for i := range bg.particles {
		bg.particles[i] = mgl64.Vec3{
			(rng.Float64() - 0.5) * particleSpread,
			(rng.Float64() - 0.5) * particleSpread,
			(rng.Float64() - 0.5) * particleSpread,
		}
	}
	copy(bg.displaced, bg.particles)
	bg.updateTerrain(nil)
	return bg
}

// Registers a callback invoked when the pointer starts or stops
// hovering the core.
func (self *Background) OnHover(callback func(hovering bool)) {
	self.onHover = append(self.onHover, callback)
}

// Returns the hover geometry of the core: one tube-sized sphere per
// knot segment, without the hover jitter applied.
func (self *Background) CoreHittables() []field.Hittable {
	if len(self.hittables) != len(self.knot) {
		self.hittables = make([]field.Hittable, len(self.knot))
	}
	rotation := self.coreRotation()
	for i, p := range self.knot {
		self.hittables[i] = field.Sphere{Center: rotation.Mul3x1(p).Add(self.CoreOffset), Radius: knotTube}
	}
	return self.hittables
}

// Advances the scene by dt seconds. The pointer may be nil when no
// input is available; cam is used to project the core center for
// proximity and may be nil too.
func (self *Background) Update(dt float64, pointer *field.Pointer, cam utils.Projector, viewport image.Rectangle) {
	if !(dt > 0) {
		return
	}
	self.elapsed += dt
	frames := dt * referenceFPS

	self.updateCore(frames, pointer, viewport)
	self.updateHover(pointer)
	self.updateProximity(pointer, cam)
	self.updateTerrain(pointer)
	self.updateParticles(pointer)
}

func (self *Background) updateCore(frames float64, pointer *field.Pointer, viewport image.Rectangle) {
	self.CoreRotation[1] += coreSpinY * frames
	self.CoreRotation[0] += coreSpinX * frames

	var targetX, targetY float64
	if pointer != nil && !viewport.Empty() {
		// pointer offset from the viewport center, in pixels, y down
		offsetX := pointer.ScreenPosition.X * float64(viewport.Dx()) / 2
		offsetY := -pointer.ScreenPosition.Y * float64(viewport.Dy()) / 2
		targetX, targetY = offsetX*pointerTilt, offsetY*pointerTilt
	}
	ease := 1 - math.Pow(1-coreEase, frames)
	self.CoreRotation[1] += ease * (targetX - self.CoreRotation[1])
	self.CoreRotation[0] += ease * (targetY - self.CoreRotation[0])

	self.CoreOffset = mgl64.Vec3{}
	if pointer != nil {
		ff := pointer.CalculateForceField(mgl64.Vec3{}, field.CodeLattice)
		self.CoreOffset = ff.Displacement().Mul(0.1)
	}
}

func (self *Background) updateHover(pointer *field.Pointer) {
	hovering := false
	if pointer != nil {
		_, hovering = pointer.Intersect(self.CoreHittables())
	}

	if hovering {
		self.CoreScale = 1 + self.rand.Float64()*jitterAmount
	} else if self.Hovering {
		self.CoreScale = 1
	}
	if hovering != self.Hovering {
		self.Hovering = hovering
		for _, callback := range self.onHover {
			callback(hovering)
		}
	}
}

func (self *Background) updateProximity(pointer *field.Pointer, cam utils.Projector) {
	self.Proximity = 0
	if pointer == nil || cam == nil {
		return
	}
	center, visible := cam.Project(self.CoreOffset)
	if !visible {
		return
	}
	distance := field.ScreenDistance(pointer.ScreenPosition, vec2(center))
	self.Proximity = mgl64.Clamp(1-distance/hoverRadiusNDC, 0, 1)
}

func (self *Background) updateTerrain(pointer *field.Pointer) {
	self.TerrainOffset = math.Mod(self.elapsed*terrainSpeed, terrainWrap)
	step := terrainSize / terrainDivs
	for row := 0; row <= terrainDivs; row++ {
		for col := 0; col <= terrainDivs; col++ {
			x := -terrainSize/2 + float64(col)*step
			y := terrainSize/2 - float64(row)*step // plane local y
			wave := math.Sin(self.elapsed*terrainWaveTime+x*terrainWaveX) * terrainAmp
			// plane rotated -90° around x: local (x, y, z) -> world (x, z, -y)
			vertex := mgl64.Vec3{x, terrainY + wave, -y + self.TerrainOffset}
			if pointer != nil {
				ff := pointer.CalculateForceField(vertex, field.PacketRails)
				if ff.Strength != 0 {
					ff.Kind = field.Shear // rails only bend sideways
					vertex = vertex.Add(ff.Displacement())
				}
			}
			self.terrain[row*(terrainDivs+1)+col] = vertex
		}
	}
}

func (self *Background) updateParticles(pointer *field.Pointer) {
	self.ParticleRotation = self.elapsed * particleSpin
	rotation := mgl64.Rotate3DY(self.ParticleRotation)
	for i, base := range self.particles {
		pos := rotation.Mul3x1(base)
		if pointer != nil {
			ff := pointer.CalculateForceField(pos, field.NeuralStream)
			pos = pos.Add(ff.Displacement())
		}
		self.displaced[i] = pos
	}
}

// Returns the knot path in world space with the core transform applied.
func (self *Background) CorePath() []mgl64.Vec3 {
	rotation := self.coreRotation()
	path := make([]mgl64.Vec3, len(self.knot))
	for i, p := range self.knot {
		path[i] = rotation.Mul3x1(p.Mul(self.CoreScale)).Add(self.CoreOffset)
	}
	return path
}

func (self *Background) coreRotation() mgl64.Mat3 {
	return mgl64.Rotate3DX(self.CoreRotation[0]).Mul3(mgl64.Rotate3DY(self.CoreRotation[1]))
}

// Returns the terrain vertex at the given grid coordinates.
func (self *Background) TerrainVertex(row, col int) mgl64.Vec3 {
	return self.terrain[row*(terrainDivs+1)+col]
}

// Returns the current particle positions. The slice is reused
// between updates.
func (self *Background) Particles() []mgl64.Vec3 {
	return self.displaced
}

func (self *Background) Elapsed() float64 {
	return self.elapsed
}

// A (p, q) torus knot centerline.
func torusKnot(radius float64, segments, p, q int) []mgl64.Vec3 {
	points := make([]mgl64.Vec3, segments)
	for i := range points {
		u := float64(i) / float64(segments) * float64(p) * math.Pi * 2
		quOverP := float64(q) / float64(p) * u
		cs := math.Cos(quOverP)
		points[i] = mgl64.Vec3{
			radius * (2 + cs) * 0.5 * math.Cos(u),
			radius * (2 + cs) * 0.5 * math.Sin(u),
			radius * math.Sin(quOverP) * 0.5,
		}
	}
	return points
}

func vec2(v mgl64.Vec3) ebimath.Vector {
	return ebimath.V(v[0], v[1])
}
