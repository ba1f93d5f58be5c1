package v1

import (
	"time"

	"github.com/pathguard/collision-engine/internal/models"
)

// FixRequest is one inbound position report.
// @Description One timestamped position fix for a tracked entity
type FixRequest struct {
	EntityID  string    `json:"entityId" validate:"required"`
	Kind      string    `json:"kind" validate:"required,oneof=vehicle pedestrian"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// ThresholdRequest sets a vehicle's alerting bands.
// @Description Per-vehicle distance bands and pedestrian-zone multiplier
type ThresholdRequest struct {
	VehicleID                    string  `json:"vehicleId" validate:"required"`
	ProximityDistance            float64 `json:"proximityDistance" validate:"required,gt=0"`
	WarningDistance              float64 `json:"warningDistance" validate:"required,gt=0"`
	BrakingDistance              float64 `json:"brakingDistance" validate:"required,gt=0"`
	PedestrianZoneBandMultiplier float64 `json:"pedestrianZoneBandMultiplier" validate:"required,gte=1"`
}

// ThresholdResponse mirrors a stored threshold config.
type ThresholdResponse struct {
	VehicleID                    string    `json:"vehicleId"`
	ProximityDistance            float64   `json:"proximityDistance"`
	WarningDistance              float64   `json:"warningDistance"`
	BrakingDistance              float64   `json:"brakingDistance"`
	PedestrianZoneBandMultiplier float64   `json:"pedestrianZoneBandMultiplier"`
	UpdatedAt                    time.Time `json:"updatedAt"`
}

// ZoneRequest defines a pedestrian-pathway rectangle.
// @Description Axis-aligned pedestrian zone in the warehouse frame
type ZoneRequest struct {
	Name string  `json:"name" validate:"required,min=2,max=255"`
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// ZoneResponse mirrors a stored zone.
type ZoneResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	MinX      float64   `json:"minX"`
	MinY      float64   `json:"minY"`
	MaxX      float64   `json:"maxX"`
	MaxY      float64   `json:"maxY"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityResponse is one registry entry in a snapshot.
type EntityResponse struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	VX         float64   `json:"vx"`
	VY         float64   `json:"vy"`
	LastUpdate time.Time `json:"lastUpdate"`
	Zones      []string  `json:"zones,omitempty"`
	Stale      bool      `json:"stale"`
}

// SnapshotResponse is the full registry view.
type SnapshotResponse struct {
	TakenAt  time.Time        `json:"takenAt"`
	Entities []EntityResponse `json:"entities"`
}

// AlertStateResponse is one vehicle's current alert state.
type AlertStateResponse struct {
	VehicleID   string    `json:"vehicleId"`
	Level       string    `json:"level"`
	GoverningID string    `json:"governingId,omitempty"`
	EnteredAt   time.Time `json:"enteredAt"`
}

func kindFromString(s string) models.Kind {
	if s == string(models.KindPedestrian) {
		return models.KindPedestrian
	}
	return models.KindVehicle
}
