package host

import "github.com/hajimehoshi/ebiten/v2"

// Reads the cursor and the left mouse button through Ebitengine.
// The first active touch takes precedence over the mouse.
type EbitenInput struct{}

func (EbitenInput) CursorPosition() (int, int) {
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		return ebiten.TouchPosition(touches[0])
	}
	return ebiten.CursorPosition()
}

func (EbitenInput) Pressed() bool {
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
