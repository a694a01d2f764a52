package mirig

import (
	"github.com/edwinsyarief/mirig/spline"
	"github.com/edwinsyarief/mirig/tracker"
	"github.com/go-gl/mathgl/mgl64"
)

// A camera rig that moves a render [Camera] between the states of
// a [Locations] table. Typical usage from a render loop:
//
//	rig := mirig.NewRig(mirig.DefaultLocations())
//	// on navigation
//	rig.NotifyLocation("/about")
//	// once per frame
//	rig.Update(dt)
//	cam := rig.Camera()
//
// A rig is owned by a single render loop and must not be used
// concurrently.
type Rig struct {
	locations *Locations
	params    Params
	camera    Camera
	tracker   tracker.Tracker
	curve     spline.Curve

	location        string
	target          CameraState
	pendingLocation string
	hasPending      bool

	transition   transition
	prevVelocity mgl64.Vec3
	observers    []func(TransitionEvent)
	inUpdate     bool
	frame        uint64
}

// Creates a rig placed exactly on the start location (the default
// location of the table unless [WithStartLocation]() is given).
// Panics if locations is nil.
func NewRig(locations *Locations, opts ...Option) *Rig {
	if locations == nil {
		panic("can't create a rig without locations")
	}
	rig := &Rig{locations: locations, params: DefaultParams()}
	for _, opt := range opts {
		opt(rig)
	}
	if rig.location == "" {
		rig.location = locations.Default()
	}
	rig.place(rig.location)
	return rig
}

// --- locations ---

// Feeds the rig the newest logical location. The change is applied
// on the next [Rig.Update](), which starts a transition from the
// current interpolated camera state. Notifying several times before
// an update keeps only the most recent id.
func (self *Rig) NotifyLocation(id string) {
	self.pendingLocation = id
	self.hasPending = true
}

// Immediately places the camera on the given location, stopping any
// transition in progress. Commonly used on first load.
func (self *Rig) ResetLocation(id string) {
	if self.inUpdate {
		panic("can't reset location during rig update")
	}
	self.hasPending = false
	if self.transition.IsActive() {
		self.transition.Stop()
		self.emit(TransitionEvent{Phase: TransitionEnded, From: self.transition.from, To: self.transition.to, Reason: ReasonReset})
	}
	self.place(id)
}

// Returns the id of the active target location. Unknown ids are
// kept as given even though they resolve to the default state.
func (self *Rig) Location() string {
	return self.location
}

// Returns the camera state currently being approached.
func (self *Rig) Target() CameraState {
	return self.target
}

func (self *Rig) Locations() *Locations {
	return self.locations
}

// --- per-frame ---

// Advances the rig by dt seconds. This is the only place where the
// camera is mutated. Frames with dt <= 0 apply pending location
// changes but skip all integration.
//
// Panics if called from within a transition observer.
func (self *Rig) Update(dt float64) {
	self.update(dt)
}

// Returns the render camera. The pointer remains valid for the
// lifetime of the rig; hosts may change Aspect, Near, Far and Up.
func (self *Rig) Camera() *Camera {
	return &self.camera
}

// Returns whether a transition is in progress.
func (self *Rig) IsTransitioning() bool {
	return self.transition.IsActive()
}

// Returns the raw damped progress of the current or last transition,
// in [0, 1] except for brief damped overshoots.
func (self *Rig) Progress() float64 {
	return self.transition.progress
}

// Returns the progress velocity of the current transition.
func (self *Rig) Velocity() float64 {
	return self.transition.velocity
}

// Returns the number of updates that advanced the rig.
func (self *Rig) Frame() uint64 {
	return self.frame
}

// --- configuration ---

func (self *Rig) Params() Params {
	return self.params
}

// Returns the current tracker. See [Rig.SetTracker]() for details.
func (self *Rig) GetTracker() tracker.Tracker {
	return self.tracker
}

// Sets the tracker in charge of updating the camera position while
// no transition is active. By default the tracker is nil, and tracking
// is handled by a fallback [tracker.Exponential] using Params.FollowRate.
func (self *Rig) SetTracker(t tracker.Tracker) {
	if self.inUpdate {
		panic("can't set tracker during rig update")
	}
	self.tracker = t
}

// Returns the current transition curve.
func (self *Rig) GetCurve() spline.Curve {
	return self.curve
}

// Sets the curve used to sample transitions. By default the curve is
// nil and [spline.CatmullRom] is used. Changing the curve mid-transition
// is allowed and takes effect on the next update.
func (self *Rig) SetCurve(curve spline.Curve) {
	self.curve = curve
}

// --- observers ---

// Registers a callback invoked whenever a transition starts or ends.
// Observers run synchronously inside [Rig.Update]() and may call
// [Rig.NotifyLocation](), but not Update() or ResetLocation().
func (self *Rig) OnTransition(observer func(TransitionEvent)) {
	self.observers = append(self.observers, observer)
}

type TransitionPhase uint8

const (
	TransitionStarted TransitionPhase = iota
	TransitionEnded
)

func (self TransitionPhase) String() string {
	switch self {
	case TransitionStarted:
		return "started"
	case TransitionEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Why a transition ended.
type EndReason uint8

const (
	ReasonNone        EndReason = iota
	ReasonConverged             // progress crossed the completion threshold
	ReasonWatchdog              // MaxDuration elapsed
	ReasonInterrupted           // a new location was notified
	ReasonReset                 // ResetLocation() was called
)

func (self EndReason) String() string {
	switch self {
	case ReasonNone:
		return "none"
	case ReasonConverged:
		return "converged"
	case ReasonWatchdog:
		return "watchdog"
	case ReasonInterrupted:
		return "interrupted"
	case ReasonReset:
		return "reset"
	default:
		return "unknown"
	}
}

type TransitionEvent struct {
	Phase  TransitionPhase
	From   string
	To     string
	Reason EndReason // only set for TransitionEnded
	Frame  uint64
}
