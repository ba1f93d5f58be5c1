package models

import "time"

// ThresholdConfig is the externally supplied per-vehicle alerting
// configuration. Immutable within one evaluation cycle, hot-reloadable
// between cycles.
type ThresholdConfig struct {
	VehicleID                    string    `json:"vehicle_id"`
	ProximityDistance            float64   `json:"proximity_distance"`
	WarningDistance              float64   `json:"warning_distance"`
	BrakingDistance              float64   `json:"braking_distance"`
	PedestrianZoneBandMultiplier float64   `json:"pedestrian_zone_band_multiplier"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

// Bands returns the base distance bands of this config.
func (t ThresholdConfig) Bands() Bands {
	return Bands{
		Proximity: t.ProximityDistance,
		Warning:   t.WarningDistance,
		Braking:   t.BrakingDistance,
	}
}
