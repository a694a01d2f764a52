package scene

import (
	"github.com/edwinsyarief/mirig/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Draws the scene as seen from the given camera.
func (self *Background) Draw(screen *ebiten.Image, cam utils.Projector) {
	screen.Fill(self.Palette.Background)
	self.drawTerrain(screen, cam)
	self.drawParticles(screen, cam)
	self.drawCore(screen, cam)
}

func (self *Background) drawTerrain(screen *ebiten.Image, cam utils.Projector) {
	clr := utils.Fade(self.Palette.Secondary, 0.1)
	for row := 0; row <= terrainDivs; row++ {
		for col := 0; col <= terrainDivs; col++ {
			vertex := self.TerrainVertex(row, col)
			if col < terrainDivs {
				utils.StrokeSegment(screen, cam, vertex, self.TerrainVertex(row, col+1), 1, clr)
			}
			if row < terrainDivs {
				utils.StrokeSegment(screen, cam, vertex, self.TerrainVertex(row+1, col), 1, clr)
			}
		}
	}
}

func (self *Background) drawParticles(screen *ebiten.Image, cam utils.Projector) {
	clr := utils.Fade(self.Palette.Primary, 0.8)
	for _, p := range self.displaced {
		utils.DrawPoint(screen, cam, p, 2, clr)
	}
}

func (self *Background) drawCore(screen *ebiten.Image, cam utils.Projector) {
	path := self.CorePath()

	// dark glass interior glow, brighter when the pointer is close
	glow := utils.Fade(self.Palette.Secondary, 0.2+0.4*self.Proximity)
	utils.StrokePath(screen, cam, path, 6, glow, true)

	wire := utils.Fade(self.Palette.Primary, 0.6)
	if self.Hovering {
		wire = self.Palette.Glitch
	}
	utils.StrokePath(screen, cam, path, 1.5, wire, true)
}
