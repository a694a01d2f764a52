package host

import (
	"github.com/edwinsyarief/mirig"
	"github.com/edwinsyarief/mirig/field"
	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

type Host struct {
	game        Game
	rig         *mirig.Rig
	pointer     *field.Pointer
	pointerOpts []field.Option
	input       Input
	tps         func() int

	width  int
	height int
	tick   uint64
}

// --- ebiten.Game implementation ---

func (self *Host) Update() error {
	self.tick += 1
	viewport := self.Viewport()
	x, y := self.input.CursorPosition()
	self.pointer.Update(float64(x), float64(y), self.input.Pressed(), viewport)

	dt := self.tickDuration()
	err := self.game.Update(Frame{
		Tick:     self.tick,
		Dt:       dt,
		Viewport: viewport,
		Pointer:  self.pointer,
		Rig:      self.rig,
	})
	if err != nil {
		return err
	}
	self.rig.Update(dt)
	self.pointer.Recast()
	return nil
}

func (self *Host) Draw(screen *ebiten.Image) {
	self.game.Draw(screen, self.rig.Camera())
}

func (self *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != self.width || outsideHeight != self.height {
		self.width, self.height = outsideWidth, outsideHeight
		if outsideWidth > 0 && outsideHeight > 0 {
			self.rig.Camera().Aspect = float64(outsideWidth) / float64(outsideHeight)
		}
	}
	return self.width, self.height
}

// --- helpers ---

// Seconds per tick. Non-positive rates (e.g. [ebiten.SyncWithFPS])
// produce a zero dt, which the rig treats as a skipped frame.
func (self *Host) tickDuration() float64 {
	tps := self.tps()
	if tps <= 0 {
		return 0
	}
	return 1.0 / float64(tps)
}
