package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/edwinsyarief/mirig"
	"github.com/edwinsyarief/mirig/spline"
	"github.com/edwinsyarief/mirig/tracker"
)

type config struct {
	Width         int     `env:"MIRIG_WIDTH"           envDefault:"1280"`
	Height        int     `env:"MIRIG_HEIGHT"          envDefault:"720"`
	Start         string  `env:"MIRIG_START"           envDefault:"/"`
	LocationsPath string  `env:"MIRIG_LOCATIONS"`
	Seed          uint64  `env:"MIRIG_SEED"            envDefault:"1"`
	Curve         string  `env:"MIRIG_CURVE"           envDefault:"catmull-rom"`
	Spring        bool    `env:"MIRIG_SPRING"`
	SpringFreq    float64 `env:"MIRIG_SPRING_FREQ"     envDefault:"4"`
	SpringDamping float64 `env:"MIRIG_SPRING_DAMPING"  envDefault:"1"`
	Verbose       bool    `env:"MIRIG_VERBOSE"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return config{}, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

func (self config) locations() (*mirig.Locations, error) {
	if self.LocationsPath == "" {
		return mirig.DefaultLocations(), nil
	}
	return mirig.LoadLocations(self.LocationsPath)
}

func (self config) curve() (spline.Curve, error) {
	switch self.Curve {
	case "catmull-rom":
		return spline.CatmullRom, nil
	case "bezier":
		return spline.Bezier, nil
	default:
		return nil, fmt.Errorf("unknown curve %q", self.Curve)
	}
}

// Returns nil when the rig default tracker should be used.
func (self config) tracker() tracker.Tracker {
	if !self.Spring {
		return nil
	}
	return tracker.NewSpring(self.SpringFreq, self.SpringDamping)
}

func (self config) rigOptions() ([]mirig.Option, error) {
	curve, err := self.curve()
	if err != nil {
		return nil, err
	}
	opts := []mirig.Option{mirig.WithCurve(curve), mirig.WithStartLocation(self.Start)}
	if t := self.tracker(); t != nil {
		opts = append(opts, mirig.WithTracker(t))
	}
	return opts, nil
}
