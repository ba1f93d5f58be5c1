package models

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Kind distinguishes the two classes of tracked entities.
type Kind string

const (
	KindVehicle    Kind = "vehicle"
	KindPedestrian Kind = "pedestrian"
)

// Fix is a single timestamped position report for an entity, as delivered
// by the localization subsystem.
type Fix struct {
	EntityID  string    `json:"entityId"`
	Kind      Kind      `json:"kind"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Timestamp time.Time `json:"timestamp"`
}

// Position returns the fix position as a vector in the warehouse frame.
func (f Fix) Position() r2.Vec {
	return r2.Vec{X: f.X, Y: f.Y}
}

// Entity is the latest known state of one tracked vehicle or pedestrian.
// Velocity is estimated from the two most recent fixes; with a single fix
// it is zero.
type Entity struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	Position   r2.Vec    `json:"position"`
	Velocity   r2.Vec    `json:"velocity"`
	LastUpdate time.Time `json:"last_update"`
	Zones      []string  `json:"zones,omitempty"`
}

// Speed returns the magnitude of the velocity estimate in m/s.
func (e Entity) Speed() float64 {
	return r2.Norm(e.Velocity)
}

// HasHeading reports whether the entity moves fast enough for its velocity
// vector to define a usable heading. Below this floor the direction is
// dominated by localization noise.
func (e Entity) HasHeading() bool {
	return e.Speed() >= MinHeadingSpeed
}

// InZone reports whether the entity's current zone membership includes zoneID.
func (e Entity) InZone(zoneID string) bool {
	for _, z := range e.Zones {
		if z == zoneID {
			return true
		}
	}
	return false
}

// MinHeadingSpeed is the speed floor (m/s) below which a velocity estimate
// is considered directionless.
const MinHeadingSpeed = 0.05

// Snapshot is an immutable view of the registry at one instant. Live holds
// entities whose last fix is within the liveness window; Stale holds the
// rest so callers can force de-escalation for them.
type Snapshot struct {
	Live    []Entity  `json:"live"`
	Stale   []Entity  `json:"stale"`
	TakenAt time.Time `json:"taken_at"`
}

// Vehicles returns the live vehicles in the snapshot.
func (s Snapshot) Vehicles() []Entity {
	var out []Entity
	for _, e := range s.Live {
		if e.Kind == KindVehicle {
			out = append(out, e)
		}
	}
	return out
}
