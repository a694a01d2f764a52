package mirig

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func (self *Rig) update(dt float64) {
	if self.inUpdate {
		panic("can't update the rig from within a transition observer")
	}
	self.inUpdate = true
	defer func() { self.inUpdate = false }()

	self.applyPendingLocation()
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	self.frame += 1

	prevPosition := self.camera.Position
	if self.transition.IsActive() {
		self.updateTransition(dt)
	} else {
		self.updateTracking(dt)
	}
	self.prevVelocity = self.camera.Position.Sub(prevPosition).Mul(1.0 / dt)
	self.updateFOV(dt)
}

func (self *Rig) place(id string) {
	self.location = id
	self.target = self.locations.Resolve(id)
	self.camera.Position = self.target.Position
	self.camera.LookAt = self.target.LookAt
	self.camera.FOV = self.target.FOV
	self.camera.Up = mgl64.Vec3{0, 1, 0}
	if self.camera.Aspect == 0 {
		self.camera.Aspect = self.params.Aspect
	}
	if self.camera.Near == 0 && self.camera.Far == 0 {
		self.camera.Near, self.camera.Far = self.params.Near, self.params.Far
	}
	self.prevVelocity = mgl64.Vec3{}
}

func (self *Rig) applyPendingLocation() {
	if !self.hasPending {
		return
	}
	id := self.pendingLocation
	self.hasPending = false
	if id == self.location {
		return
	}

	from := self.location
	self.location = id
	target := self.locations.Resolve(id)
	if target == self.target { // same state under another id
		return
	}

	if self.transition.IsActive() {
		self.transition.Stop()
		self.emit(TransitionEvent{Phase: TransitionEnded, From: self.transition.from, To: self.transition.to, Reason: ReasonInterrupted})
	}

	// the current interpolated state becomes the new starting point
	self.target = target
	self.transition.Start(from, id, self.camera.Position, self.camera.LookAt, self.target, self.params.ArcHeight)
	self.emit(TransitionEvent{Phase: TransitionStarted, From: from, To: id})
}

func (self *Rig) updateTransition(dt float64) {
	reason := self.transition.Advance(dt, &self.params)
	self.camera.Position, self.camera.LookAt = self.transition.Sample(self.internalCurve())
	if reason != ReasonNone {
		self.emit(TransitionEvent{Phase: TransitionEnded, From: self.transition.from, To: self.transition.to, Reason: reason})
	}
}

func (self *Rig) updateTracking(dt float64) {
	camTracker := self.internalTracker()
	change := camTracker.Update(self.camera.Position, self.target.Position, self.prevVelocity, dt)
	if isFiniteVec(change) {
		self.camera.Position = self.camera.Position.Add(change)
	}
	self.camera.LookAt = self.target.LookAt
}

func (self *Rig) updateFOV(dt float64) {
	self.camera.FOV = damp(self.camera.FOV, self.target.FOV, self.params.FOVRate, dt)
}

func (self *Rig) emit(event TransitionEvent) {
	event.Frame = self.frame
	for _, observer := range self.observers {
		observer(event)
	}
}
