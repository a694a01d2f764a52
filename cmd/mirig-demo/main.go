// Command mirig-demo shows the camera rig flying between locations
// over the animated background scene.
//
// Configuration is read from the environment:
//
//	MIRIG_WIDTH, MIRIG_HEIGHT   Window size (default 1280x720)
//	MIRIG_START                 Start location id (default "/")
//	MIRIG_LOCATIONS             Optional locations YAML file
//	MIRIG_SEED                  Particle seed (default 1)
//	MIRIG_CURVE                 "catmull-rom" or "bezier"
//	MIRIG_SPRING                Use a spring tracker while idle
//	MIRIG_VERBOSE               Log transition events
//
// Controls:
//
//	1-9      Navigate to the n-th location (sorted by id)
//	R        Reset to the default location without transition
//	Escape   Quit
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/edwinsyarief/mirig"
	"github.com/edwinsyarief/mirig/host"
	"github.com/edwinsyarief/mirig/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var locationKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

type demo struct {
	background *scene.Background
	ids        []string
}

func (self *demo) Update(frame host.Frame) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, key := range locationKeys {
		if i < len(self.ids) && inpututil.IsKeyJustPressed(key) {
			frame.Rig.NotifyLocation(self.ids[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Rig.ResetLocation(frame.Rig.Locations().Default())
	}
	self.background.Update(frame.Dt, frame.Pointer, frame.Rig.Camera(), frame.Viewport)
	return nil
}

func (self *demo) Draw(screen *ebiten.Image, cam *mirig.Camera) {
	self.background.Draw(screen, cam)
	status := fmt.Sprintf("TPS %.0f  FPS %.0f\nkeys 1-%d: %v\n",
		ebiten.ActualTPS(), ebiten.ActualFPS(), min(len(self.ids), len(locationKeys)), self.ids)
	if self.background.Hovering {
		status += "core: hovered\n"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	locations, err := cfg.locations()
	if err != nil {
		return err
	}
	opts, err := cfg.rigOptions()
	if err != nil {
		return err
	}
	if cfg.Verbose {
		opts = append(opts, mirig.WithObserver(func(event mirig.TransitionEvent) {
			log.Printf("frame %d: %s %q -> %q (%s)", event.Frame, event.Phase, event.From, event.To, event.Reason)
		}))
	}
	rig := mirig.NewRig(locations, opts...)

	game := &demo{background: scene.NewBackground(cfg.Seed), ids: locations.IDs()}
	game.background.OnHover(func(hovering bool) {
		if cfg.Verbose {
			log.Printf("core hover: %v", hovering)
		}
	})

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("mirig")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return host.Run(game, rig)
}

func main() {
	if err := run(); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
