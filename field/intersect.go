package field

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Anything that can be struck by the pointer ray. IntersectRay
// returns the distance along the (normalized) direction to the
// nearest hit in front of the origin.
type Hittable interface {
	IntersectRay(origin, direction mgl64.Vec3) (float64, bool)
}

type Intersection struct {
	Distance float64
	Point    mgl64.Vec3
	Index    int // position in the candidate slice
	Object   Hittable
}

// Returns the nearest intersection between the pointer ray and the
// given candidates, or false if none is struck.
func (self *Pointer) Intersect(candidates []Hittable) (Intersection, bool) {
	if self.WorldDirection.Len() == 0 {
		return Intersection{}, false
	}

	best := Intersection{Distance: math.Inf(1), Index: -1}
	for i, candidate := range candidates {
		if candidate == nil {
			continue
		}
		distance, hit := candidate.IntersectRay(self.WorldPosition, self.WorldDirection)
		if hit && distance < best.Distance {
			best = Intersection{Distance: distance, Index: i, Object: candidate}
		}
	}
	if best.Index < 0 {
		return Intersection{}, false
	}
	best.Point = self.At(best.Distance)
	return best, true
}

type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

func (self Sphere) IntersectRay(origin, direction mgl64.Vec3) (float64, bool) {
	oc := origin.Sub(self.Center)
	a := direction.Dot(direction)
	halfB := oc.Dot(direction)
	c := oc.Dot(oc) - self.Radius*self.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	// nearest root in front of the origin
	root := (-halfB - sqrtD) / a
	if root < 0 {
		root = (-halfB + sqrtD) / a
		if root < 0 {
			return 0, false
		}
	}
	return root, true
}

// An axis aligned box.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

func (self Box) IntersectRay(origin, direction mgl64.Vec3) (float64, bool) {
	tMin, tMax := math.Inf(-1), math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		if direction[axis] == 0 {
			if origin[axis] < self.Min[axis] || origin[axis] > self.Max[axis] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / direction[axis]
		t0 := (self.Min[axis] - origin[axis]) * inv
		t1 := (self.Max[axis] - origin[axis]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax < tMin {
			return 0, false
		}
	}
	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return tMax, true // origin inside the box
	}
	return tMin, true
}
