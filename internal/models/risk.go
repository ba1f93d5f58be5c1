package models

import (
	"math"
	"time"
)

// AlertLevel is the discrete severity assigned to a vehicle. Levels are
// ordered: comparing with < and > follows severity.
type AlertLevel int

const (
	LevelNone AlertLevel = iota
	LevelProximity
	LevelWarning
	LevelBraking
)

func (l AlertLevel) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelProximity:
		return "PROXIMITY"
	case LevelWarning:
		return "WARNING"
	case LevelBraking:
		return "BRAKING"
	}
	return "UNKNOWN"
}

// Bands are the three distance thresholds separating alert severities,
// in metres, ordered Braking <= Warning <= Proximity.
type Bands struct {
	Proximity float64 `json:"proximity"`
	Warning   float64 `json:"warning"`
	Braking   float64 `json:"braking"`
}

// Scale returns the bands widened by the given multiplier. Used for
// pedestrian encounters inside a shared zone, where every band is
// effectively tightened by widening the trigger distances.
func (b Bands) Scale(mult float64) Bands {
	if mult <= 0 {
		return b
	}
	return Bands{
		Proximity: b.Proximity * mult,
		Warning:   b.Warning * mult,
		Braking:   b.Braking * mult,
	}
}

// Classify maps a distance to the severity band it falls in. A band
// triggers only strictly inside its threshold: a pair sitting exactly on
// a boundary takes the less severe class. Non-finite distances classify
// as NONE: an unresolvable pair never aborts a cycle, it is scored as
// the lowest risk class.
func (b Bands) Classify(distance float64) AlertLevel {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return LevelNone
	}
	switch {
	case distance < b.Braking:
		return LevelBraking
	case distance < b.Warning:
		return LevelWarning
	case distance < b.Proximity:
		return LevelProximity
	}
	return LevelNone
}

// RiskAssessment is the per-(vehicle, other-entity) result of one
// evaluation cycle. ClosingSpeed is signed: positive means the pair is
// approaching, negative means separating.
type RiskAssessment struct {
	VehicleID    string     `json:"vehicle_id"`
	OtherID      string     `json:"other_id"`
	OtherKind    Kind       `json:"other_kind"`
	Distance     float64    `json:"distance"`
	ClosingSpeed float64    `json:"closing_speed"`
	BearingRad   float64    `json:"bearing_rad"`
	HeadingKnown bool       `json:"heading_known"`
	Band         AlertLevel `json:"band"`
}

// TimeToCollision returns distance divided by closing speed. Non-closing
// pairs have infinite time-to-collision.
func (r RiskAssessment) TimeToCollision() float64 {
	if r.ClosingSpeed <= 0 {
		return math.Inf(1)
	}
	return r.Distance / r.ClosingSpeed
}

// AlertState is the persistent per-vehicle output of the decision engine.
// Debounce counts consecutive ticks the computed band has been below the
// current level; it is an explicit field so tests can advance ticks
// deterministically.
type AlertState struct {
	VehicleID   string     `json:"vehicle_id"`
	Level       AlertLevel `json:"level"`
	GoverningID string     `json:"governing_id,omitempty"`
	EnteredAt   time.Time  `json:"entered_at"`
	Debounce    int        `json:"debounce"`
}
