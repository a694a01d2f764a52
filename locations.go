package mirig

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// The location used as fallback by [DefaultLocations]().
const DefaultLocation = "/"

var (
	// Returned when the fallback id is missing from the table.
	ErrNoDefault = errors.New("default location is not defined")

	// Returned for a field of view outside (0, 180) degrees.
	ErrInvalidFOV = errors.New("field of view must be in (0, 180) degrees")

	// Returned when a YAML table repeats a location id.
	ErrDuplicateLocation = errors.New("duplicate location id")

	// Returned when a state looks at its own position.
	ErrDegenerateState = errors.New("camera position and look-at point coincide")
)

// The camera configuration associated to a logical location.
type CameraState struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	FOV      float64
}

// A static mapping from logical location ids to camera states.
// Read-only once created.
type Locations struct {
	states   map[string]CameraState
	fallback string
}

// Creates a location table. The fallback id must be present in
// states, and all states must be valid.
func NewLocations(fallback string, states map[string]CameraState) (*Locations, error) {
	if _, found := states[fallback]; !found {
		return nil, fmt.Errorf("location %q: %w", fallback, ErrNoDefault)
	}
	copied := make(map[string]CameraState, len(states))
	for id, state := range states {
		if err := state.validate(); err != nil {
			return nil, fmt.Errorf("location %q: %w", id, err)
		}
		copied[id] = state
	}
	return &Locations{states: copied, fallback: fallback}, nil
}

// Returns the four locations of the portfolio site, with "/" as
// the default.
func DefaultLocations() *Locations {
	return &Locations{
		fallback: DefaultLocation,
		states: map[string]CameraState{
			"/":         {Position: mgl64.Vec3{0, 2, 10}, LookAt: mgl64.Vec3{0, 0, 0}, FOV: 55},
			"/about":    {Position: mgl64.Vec3{6, 3, 12}, LookAt: mgl64.Vec3{0, 1, 0}, FOV: 50},
			"/projects": {Position: mgl64.Vec3{0, 5, 18}, LookAt: mgl64.Vec3{0, 0, -2}, FOV: 60},
			"/contact":  {Position: mgl64.Vec3{-6, 2, 10}, LookAt: mgl64.Vec3{0, 0, 0}, FOV: 48},
		},
	}
}

// Returns the camera state for the given id, or the default state
// if the id is unknown. Never fails.
func (self *Locations) Resolve(id string) CameraState {
	if state, found := self.states[id]; found {
		return state
	}
	return self.states[self.fallback]
}

// Like [Locations.Resolve](), but reporting whether the id is known.
func (self *Locations) Lookup(id string) (CameraState, bool) {
	state, found := self.states[id]
	return state, found
}

// Returns the id of the fallback location.
func (self *Locations) Default() string {
	return self.fallback
}

// Returns the known location ids in lexical order.
func (self *Locations) IDs() []string {
	ids := make([]string, 0, len(self.states))
	for id := range self.states {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (self CameraState) validate() error {
	if !(self.FOV > 0 && self.FOV < 180) {
		return ErrInvalidFOV
	}
	if self.Position.ApproxEqual(self.LookAt) {
		return ErrDegenerateState
	}
	return nil
}

// --- yaml ---

type locationsFile struct {
	Default   string         `yaml:"default"`
	Locations []locationYAML `yaml:"locations"`
}

type locationYAML struct {
	ID       string     `yaml:"id"`
	Position [3]float64 `yaml:"position"`
	LookAt   [3]float64 `yaml:"look_at"`
	FOV      float64    `yaml:"fov"`
}

// Parses a YAML location table:
//
//	default: /
//	locations:
//	  - id: /
//	    position: [0, 2, 10]
//	    look_at: [0, 0, 0]
//	    fov: 55
//
// If default is omitted, [DefaultLocation] is assumed.
func ParseLocations(data []byte) (*Locations, error) {
	var file locationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse locations: %w", err)
	}
	if file.Default == "" {
		file.Default = DefaultLocation
	}

	states := make(map[string]CameraState, len(file.Locations))
	for _, loc := range file.Locations {
		if _, found := states[loc.ID]; found {
			return nil, fmt.Errorf("location %q: %w", loc.ID, ErrDuplicateLocation)
		}
		states[loc.ID] = CameraState{
			Position: mgl64.Vec3(loc.Position),
			LookAt:   mgl64.Vec3(loc.LookAt),
			FOV:      loc.FOV,
		}
	}
	return NewLocations(file.Default, states)
}

// Reads and parses a YAML location table from the given path.
// See [ParseLocations]() for the format.
func LoadLocations(path string) (*Locations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locations file: %w", err)
	}
	locations, err := ParseLocations(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return locations, nil
}
