package mirig

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// --- helpers ---

// Exponential smoothing of a scalar: closes rate*dt of the remaining
// distance, never more than all of it.
func damp(current, target, rate, dt float64) float64 {
	factor := mgl64.Clamp(rate*dt, 0, 1)
	return current + (target-current)*factor
}

func isFiniteVec(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
