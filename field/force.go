package field

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Kind uint8

const (
	Attract Kind = iota
	Repel
	Shear
)

func (self Kind) String() string {
	switch self {
	case Attract:
		return "attract"
	case Repel:
		return "repel"
	case Shear:
		return "shear"
	default:
		return "unknown"
	}
}

// Interaction coefficients for the decorative systems. Lower values
// resist the pointer, higher values react fluidly.
const (
	CodeLattice  = 0.2 // resists motion
	PacketRails  = 0.5 // flow bias only
	NeuralStream = 1.0 // fluid response
)

var coefficients = map[string]float64{
	"code-lattice":  CodeLattice,
	"packet-rails":  PacketRails,
	"neural-stream": NeuralStream,
}

// Returns the named interaction coefficient.
func Coefficient(name string) (float64, bool) {
	value, found := coefficients[name]
	return value, found
}

// Tuning constants for force field queries.
type Params struct {
	MaxInfluence    float64 // distance beyond which the field is zero
	Epsilon         float64 // added to distance² to avoid the singularity at 0
	MaxStrength     float64 // bound for the field strength magnitude
	VelocityDamping float64 // scale for the pointer velocity bias
}

func DefaultParams() Params {
	return Params{
		MaxInfluence:    10.0,
		Epsilon:         0.1,
		MaxStrength:     5.0,
		VelocityDamping: 0.1,
	}
}

// A force field evaluated at a single point. Ephemeral; computed on
// demand and never stored by the pointer.
type ForceField struct {
	Direction mgl64.Vec3
	Strength  float64
	Radius    float64
	Kind      Kind
}

// Returns the displacement the field applies to the queried point:
// towards the pointer for [Attract], away for [Repel], and sideways
// around the world up axis for [Shear].
func (self ForceField) Displacement() mgl64.Vec3 {
	switch self.Kind {
	case Repel:
		return self.Direction.Mul(self.Strength)
	case Shear:
		return self.Direction.Cross(mgl64.Vec3{0, 1, 0}).Mul(self.Strength)
	default:
		return self.Direction.Mul(-self.Strength)
	}
}

// Computes the force field at the given world point. Points beyond
// the maximum influence radius get a zero field. Otherwise strength
// is coefficient / (d² + epsilon), bounded by the maximum strength,
// and the direction is the unit vector from the ray origin to the
// point biased by the pointer velocity. The field repels while the
// pointer is pressed and attracts otherwise.
func (self *Pointer) CalculateForceField(point mgl64.Vec3, coefficient float64) ForceField {
	offset := point.Sub(self.WorldPosition)
	distance := offset.Len()
	if !(distance <= self.params.MaxInfluence) {
		return ForceField{Kind: Attract}
	}

	strength := coefficient / (distance*distance + self.params.Epsilon)
	strength = mgl64.Clamp(strength, -self.params.MaxStrength, self.params.MaxStrength)

	var direction mgl64.Vec3
	if distance > 0 {
		direction = offset.Mul(1.0 / distance)
	}
	speed := math.Hypot(self.Velocity.X, self.Velocity.Y)
	influence := speed * self.params.VelocityDamping
	direction = direction.Add(mgl64.Vec3{self.Velocity.X * influence, self.Velocity.Y * influence, 0})

	kind := Attract
	if self.Pressed {
		kind = Repel
	}
	return ForceField{
		Direction: direction,
		Strength:  strength,
		Radius:    math.Max(1.0, distance),
		Kind:      kind,
	}
}
