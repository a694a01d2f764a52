package utils

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Anything that can project world points to normalized device
// coordinates. *mirig.Camera implements it.
type Projector interface {
	Project(point mgl64.Vec3) (mgl64.Vec3, bool)
}

// Converts normalized device coordinates to pixel coordinates
// inside the given bounds (y pointing down).
func NDCToScreen(ndc mgl64.Vec3, bounds image.Rectangle) (float32, float32) {
	x := float64(bounds.Min.X) + (ndc[0]+1)*0.5*float64(bounds.Dx())
	y := float64(bounds.Min.Y) + (1-ndc[1])*0.5*float64(bounds.Dy())
	return float32(x), float32(y)
}

// Projects a world point to pixel coordinates inside the given
// bounds. Returns false if the point is not in front of the camera.
func WorldToScreen(cam Projector, point mgl64.Vec3, bounds image.Rectangle) (float32, float32, bool) {
	ndc, visible := cam.Project(point)
	if !visible {
		return 0, 0, false
	}
	x, y := NDCToScreen(ndc, bounds)
	return x, y, true
}

// Strokes the world segment (a, b) on the target. Segments with an
// endpoint behind the camera are skipped.
func StrokeSegment(target *ebiten.Image, cam Projector, a, b mgl64.Vec3, width float32, clr color.Color) {
	bounds := target.Bounds()
	x0, y0, ok0 := WorldToScreen(cam, a, bounds)
	x1, y1, ok1 := WorldToScreen(cam, b, bounds)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(target, x0, y0, x1, y1, width, clr, true)
}

// Strokes a polyline through the given world points. If closed, the
// last point is joined back to the first one.
func StrokePath(target *ebiten.Image, cam Projector, points []mgl64.Vec3, width float32, clr color.Color, closed bool) {
	for i := 1; i < len(points); i++ {
		StrokeSegment(target, cam, points[i-1], points[i], width, clr)
	}
	if closed && len(points) > 2 {
		StrokeSegment(target, cam, points[len(points)-1], points[0], width, clr)
	}
}

// Draws a square dot of the given pixel size centered on the
// projected world point.
func DrawPoint(target *ebiten.Image, cam Projector, point mgl64.Vec3, size float32, clr color.Color) {
	x, y, ok := WorldToScreen(cam, point, target.Bounds())
	if !ok {
		return
	}
	vector.DrawFilledRect(target, x-size/2, y-size/2, size, size, clr, false)
}

// Returns [color.RGBA]{r, g, b, 255}.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Returns the opaque color for a 0xRRGGBB value.
func Hex(rgb uint32) color.RGBA {
	return RGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

// Returns the color scaled to the given opacity, keeping the
// premultiplied-alpha invariant (a >= r,g,b).
func Fade(clr color.RGBA, opacity float64) color.RGBA {
	opacity = mgl64.Clamp(opacity, 0, 1)
	return color.RGBA{
		uint8(float64(clr.R) * opacity),
		uint8(float64(clr.G) * opacity),
		uint8(float64(clr.B) * opacity),
		uint8(float64(clr.A) * opacity),
	}
}
