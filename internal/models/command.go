package models

import (
	"time"

	"github.com/google/uuid"
)

// CommandType discriminates messages on the outbound bus.
type CommandType string

const (
	CommandAlert     CommandType = "alert"
	CommandBrake     CommandType = "brake"
	CommandZoneAlert CommandType = "zone_alert"
	CommandStatus    CommandType = "status"
)

// BrakeAction is the level-set instruction carried by a brake command.
// Engage and release are states to hold, not edges: duplicate delivery
// must be idempotent at the receiver.
type BrakeAction string

const (
	BrakeEngage  BrakeAction = "engage"
	BrakeRelease BrakeAction = "release"
)

// Reason codes attached to brake commands.
const (
	ReasonBrakingBand    = "braking_band"
	ReasonDeescalated    = "deescalated"
	ReasonGoverningStale = "governing_stale"
)

// AlertCommand is a directional alert for operator display: where the
// governing entity is relative to the vehicle's heading and how far away.
type AlertCommand struct {
	VehicleID         string     `json:"vehicleId"`
	Level             AlertLevel `json:"level"`
	BearingRad        float64    `json:"bearing"`
	Distance          float64    `json:"distance"`
	GoverningEntityID string     `json:"governingEntityId,omitempty"`
}

// BrakeCommand instructs a vehicle's brake controller to engage or
// release. Always published as its own message, never coalesced.
type BrakeCommand struct {
	VehicleID  string      `json:"vehicleId"`
	Action     BrakeAction `json:"action"`
	ReasonCode string      `json:"reasonCode"`
}

// ZoneAlertCommand warns that a vehicle occupies, or is projected to
// enter, a pedestrian zone. Addressed to both the vehicle and the light
// controller. Cleared marks the matching zone-exit message.
type ZoneAlertCommand struct {
	VehicleID             string `json:"vehicleId"`
	ZoneID                string `json:"zoneId"`
	LightControllerTarget string `json:"lightControllerTarget"`
	Cleared               bool   `json:"cleared,omitempty"`
}

// StatusCommand is the per-tick heartbeat sent to every live vehicle.
// The vehicle-side watchdog measures link liveness by message arrival,
// so the server must produce traffic even when nothing transitions. The
// carried level is the server's current view; a controller sitting in
// fail-safe uses it to release once the link is proven live again.
type StatusCommand struct {
	VehicleID string     `json:"vehicleId"`
	Level     AlertLevel `json:"level"`
}

// Envelope is the wire format for all outbound commands. Exactly one of
// the payload pointers is set, matching Type.
type Envelope struct {
	ID        uuid.UUID         `json:"id"`
	Type      CommandType       `json:"type"`
	IssuedAt  time.Time         `json:"issued_at"`
	Alert     *AlertCommand     `json:"alert,omitempty"`
	Brake     *BrakeCommand     `json:"brake,omitempty"`
	ZoneAlert *ZoneAlertCommand `json:"zone_alert,omitempty"`
	Status    *StatusCommand    `json:"status,omitempty"`
}
