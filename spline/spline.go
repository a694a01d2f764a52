// Package spline provides the control point generation and curve
// sampling used by the rig to move the camera between locations.
//
// Every curve takes four control points: the two endpoints and two
// interior points shaping the arc. All provided curves are endpoint
// exact, meaning Eval(0) returns the first point and Eval(1) the last.
package spline

import "github.com/go-gl/mathgl/mgl64"

// Up is the axis used to lift interior control points.
var Up = mgl64.Vec3{0, 1, 0}

// Control points for a single cubic segment.
type ControlPoints = [4]mgl64.Vec3

// The interface for curves sampled by the rig.
type Curve interface {
	Eval(t float64, points ControlPoints) mgl64.Vec3
}

// Built-in curves.
var (
	// A Catmull-Rom chain passing through all four control points,
	// with phantom endpoints mirrored from the neighbouring points.
	// This is the default curve used by the rig.
	CatmullRom Curve = catmullRomCurve{}

	// A cubic Bezier curve. Passes through the endpoints and is only
	// pulled towards the interior points, giving a flatter arc.
	Bezier Curve = bezierCurve{}
)

// Returns the control points for an arcing move from start to end.
// The interior points are the start and end points blended halfway
// towards the midpoint, lifted by the given height along [Up].
func ArcControlPoints(start, end mgl64.Vec3, lift float64) ControlPoints {
	mid := start.Add(end).Mul(0.5)
	offset := Up.Mul(lift)
	p1 := start.Add(mid).Mul(0.5).Add(offset)
	p2 := end.Add(mid).Mul(0.5).Add(offset)
	return ControlPoints{start, p1, p2, end}
}

// The cubic ease 3t² - 2t³. Input is clamped to [0, 1].
func Smoothstep(t float64) float64 {
	t = mgl64.Clamp(t, 0, 1)
	return t * t * (3.0 - 2.0*t)
}

type catmullRomCurve struct{}

func (catmullRomCurve) Eval(t float64, points ControlPoints) mgl64.Vec3 {
	if t <= 0 {
		return points[0]
	}
	if t >= 1 {
		return points[3]
	}

	ext := [6]mgl64.Vec3{
		points[0].Mul(2).Sub(points[1]),
		points[0], points[1], points[2], points[3],
		points[3].Mul(2).Sub(points[2]),
	}

	const segments = 3
	scaled := t * segments
	segment := int(scaled)
	if segment > segments-1 {
		segment = segments - 1
	}
	local := scaled - float64(segment)
	return catmullRomSegment(local, ext[segment], ext[segment+1], ext[segment+2], ext[segment+3])
}

// Uniform Catmull-Rom between p1 (t = 0) and p2 (t = 1).
func catmullRomSegment(t float64, p0, p1, p2, p3 mgl64.Vec3) mgl64.Vec3 {
	t2 := t * t
	t3 := t2 * t
	var out mgl64.Vec3
	for i := 0; i < 3; i++ {
		out[i] = 0.5 * ((2 * p1[i]) +
			(-p0[i]+p2[i])*t +
			(2*p0[i]-5*p1[i]+4*p2[i]-p3[i])*t2 +
			(-p0[i]+3*p1[i]-3*p2[i]+p3[i])*t3)
	}
	return out
}

type bezierCurve struct{}

func (bezierCurve) Eval(t float64, points ControlPoints) mgl64.Vec3 {
	if t <= 0 {
		return points[0]
	}
	if t >= 1 {
		return points[3]
	}
	return mgl64.CubicBezierCurve3D(t, points[0], points[1], points[2], points[3])
}
