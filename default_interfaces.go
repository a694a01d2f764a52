package mirig

import (
	"github.com/edwinsyarief/mirig/spline"
	"github.com/edwinsyarief/mirig/tracker"
)

var defaultCurve spline.Curve = spline.CatmullRom

func (self *Rig) internalTracker() tracker.Tracker {
	if self.tracker != nil {
		return self.tracker
	}
	return tracker.Exponential{Rate: self.params.FollowRate}
}

func (self *Rig) internalCurve() spline.Curve {
	if self.curve != nil {
		return self.curve
	}
	return defaultCurve
}
