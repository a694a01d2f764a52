// Package host runs a camera rig and a pointer inside an Ebitengine
// game loop. The [Host] implements [ebiten.Game] and, once per tick,
// samples the pointer, calls the user [Game] and advances the rig.
package host

import (
	"image"

	"github.com/edwinsyarief/mirig"
	"github.com/edwinsyarief/mirig/field"
	"github.com/hajimehoshi/ebiten/v2"
)

// --- game ---

// The game interface for hosted scenes, which is the equivalent to
// [ebiten.Game] on Ebitengine but without the Layout() method.
type Game interface {
	// Updates the game logic. The frame pointer has already been
	// sampled for this tick, while the rig is advanced right after
	// this call returns, so location changes notified here are
	// applied on the same tick.
	Update(frame Frame) error

	// Draws the game contents as seen from the given camera.
	Draw(screen *ebiten.Image, cam *mirig.Camera)
}

// Per-tick data handed to [Game].Update().
type Frame struct {
	Tick     uint64
	Dt       float64 // seconds
	Viewport image.Rectangle

	// Sampled for this tick, with its ray cast through the camera as
	// last drawn. The host recasts the ray once the rig has advanced,
	// so hit tests made from Draw match the rendered camera.
	Pointer *field.Pointer
	Rig     *mirig.Rig
}

// Equivalent to [ebiten.RunGame](), but expecting a [Game] and the
// rig that drives its camera.
func Run(game Game, rig *mirig.Rig, opts ...Option) error {
	return New(game, rig, opts...).Run()
}

// --- input ---

// Pointer input source. See [EbitenInput] for the default one.
type Input interface {
	CursorPosition() (x, y int)
	Pressed() bool
}

// --- options ---

// Configures a host on creation. See [New]().
type Option func(*Host)

// Replaces the default [EbitenInput].
func WithInput(input Input) Option {
	return func(host *Host) { host.input = input }
}

// Replaces the tick rate source, [ebiten.TPS] by default.
func WithTPS(tps func() int) Option {
	return func(host *Host) { host.tps = tps }
}

// Options passed to [field.NewPointer]() when creating the pointer.
func WithPointerOptions(opts ...field.Option) Option {
	return func(host *Host) { host.pointerOpts = append(host.pointerOpts, opts...) }
}

// --- host ---

// Creates a host for the given game and rig. Panics if either is nil.
func New(game Game, rig *mirig.Rig, opts ...Option) *Host {
	if game == nil {
		panic("can't host a nil game")
	}
	if rig == nil {
		panic("can't host a game without a rig")
	}
	host := &Host{game: game, rig: rig, input: EbitenInput{}, tps: ebiten.TPS}
	for _, opt := range opts {
		opt(host)
	}
	host.pointer = field.NewPointer(rig.Camera(), host.pointerOpts...)
	return host
}

// Runs the host through [ebiten.RunGame]().
func (self *Host) Run() error {
	return ebiten.RunGame(self)
}

func (self *Host) Pointer() *field.Pointer {
	return self.pointer
}

func (self *Host) Rig() *mirig.Rig {
	return self.rig
}

// Returns the number of ticks processed so far.
func (self *Host) Tick() uint64 {
	return self.tick
}

// Returns the current layout size, as last reported by Ebitengine.
func (self *Host) Viewport() image.Rectangle {
	return image.Rect(0, 0, self.width, self.height)
}
