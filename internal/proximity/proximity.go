// Package proximity computes pairwise risk between a vehicle and every
// other live entity: Euclidean distance, signed closing speed, bearing
// relative to the vehicle heading, and the severity band implied by the
// vehicle's configured distance bands.
package proximity

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pathguard/collision-engine/internal/models"
)

// Assess produces the risk assessment for one ordered (vehicle, other)
// pair. Pedestrian encounters inside a zone the vehicle also occupies
// use bands widened by zoneMultiplier, so alerts trigger farther out.
func Assess(vehicle, other models.Entity, bands models.Bands, zoneMultiplier float64) models.RiskAssessment {
	sep := r2.Sub(other.Position, vehicle.Position)
	distance := r2.Norm(sep)

	effective := bands
	if other.Kind == models.KindPedestrian && sharesZone(vehicle, other) {
		effective = bands.Scale(zoneMultiplier)
	}

	closing := closingSpeed(sep, distance, r2.Sub(other.Velocity, vehicle.Velocity))
	bearing, headingKnown := bearingTo(vehicle, sep)

	return models.RiskAssessment{
		VehicleID:    vehicle.ID,
		OtherID:      other.ID,
		OtherKind:    other.Kind,
		Distance:     distance,
		ClosingSpeed: closing,
		BearingRad:   bearing,
		HeadingKnown: headingKnown,
		Band:         effective.Classify(distance),
	}
}

// AssessAll evaluates the vehicle against every other live entity in the
// snapshot and returns the assessments plus the governing one, if any.
func AssessAll(vehicle models.Entity, live []models.Entity, bands models.Bands, zoneMultiplier float64) ([]models.RiskAssessment, models.RiskAssessment, bool) {
	var out []models.RiskAssessment
	for _, other := range live {
		if other.ID == vehicle.ID {
			continue
		}
		out = append(out, Assess(vehicle, other, bands, zoneMultiplier))
	}
	governing, ok := Governing(out)
	return out, governing, ok
}

// Governing selects the candidate that drives the vehicle's risk
// classification: closest distance wins, ties broken by smaller
// time-to-collision.
func Governing(candidates []models.RiskAssessment) (models.RiskAssessment, bool) {
	if len(candidates) == 0 {
		return models.RiskAssessment{}, false
	}
	governing := candidates[0]
	for _, c := range candidates[1:] {
		if Less(c, governing) {
			governing = c
		}
	}
	return governing, true
}

// Less is the governing-entity comparator: a orders before b when a is
// strictly closer, or equally close with a smaller time-to-collision.
// Kept as an explicit function so the tie-break rule is testable in
// isolation.
func Less(a, b models.RiskAssessment) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.TimeToCollision() < b.TimeToCollision()
}

// closingSpeed is the rate at which the pair's separation shrinks, in
// m/s. Positive means approaching. A zero separation has no defined
// direction; the pair is already in contact and the distance alone
// classifies it.
func closingSpeed(sep r2.Vec, distance float64, relVel r2.Vec) float64 {
	if distance == 0 {
		return 0
	}
	return -r2.Dot(sep, relVel) / distance
}

// bearingTo returns the angle of the separation vector relative to the
// vehicle's heading, normalized to (-pi, pi]. A vehicle without a usable
// heading reports the bearing in the warehouse frame instead, flagged
// false, so the display can still point somewhere rather than the pair
// being dropped.
func bearingTo(vehicle models.Entity, sep r2.Vec) (float64, bool) {
	if sep.X == 0 && sep.Y == 0 {
		return 0, vehicle.HasHeading()
	}
	absolute := math.Atan2(sep.Y, sep.X)
	if !vehicle.HasHeading() {
		return absolute, false
	}
	heading := math.Atan2(vehicle.Velocity.Y, vehicle.Velocity.X)
	return normalizeAngle(absolute - heading), true
}

// normalizeAngle wraps an angle to (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func sharesZone(vehicle, other models.Entity) bool {
	for _, z := range other.Zones {
		if vehicle.InZone(z) {
			return true
		}
	}
	return false
}
