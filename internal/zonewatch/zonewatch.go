// Package zonewatch flags vehicles that occupy, or are about to enter, a
// designated pedestrian zone. It is an environmental warning orthogonal
// to proximity alerting: it never touches a vehicle's AlertState.
package zonewatch

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pathguard/collision-engine/internal/models"
)

// LightControllerTarget is the bus destination for the warehouse light
// controller.
const LightControllerTarget = "light-controller"

// Monitor watches vehicle positions against the pedestrian zone set.
// Zone-alerts are emitted on zone entry and cleared on exit rather than
// every tick, so the light-controller channel is not flooded while a
// vehicle crosses a long pathway.
type Monitor struct {
	mu        sync.Mutex
	active    map[string]map[string]bool // vehicle ID -> zone IDs alerted last tick
	lookahead time.Duration
	logger    *logrus.Logger
}

// New creates a Monitor with the given lookahead horizon for projected
// zone entry.
func New(lookahead time.Duration, logger *logrus.Logger) *Monitor {
	return &Monitor{
		active:    make(map[string]map[string]bool),
		lookahead: lookahead,
		logger:    logger,
	}
}

// Evaluate returns the zone-alert commands for one vehicle this tick. A
// zone triggers when the vehicle is inside it now or when its projected
// position (current position + velocity x lookahead) enters it.
func (m *Monitor) Evaluate(vehicle models.Entity, zones []models.Zone) []models.ZoneAlertCommand {
	projected := r2.Add(vehicle.Position, r2.Scale(m.lookahead.Seconds(), vehicle.Velocity))

	current := make(map[string]bool)
	for _, z := range zones {
		if z.Contains(vehicle.Position) || z.Contains(projected) {
			current[z.ID] = true
		}
	}

	m.mu.Lock()
	previous := m.active[vehicle.ID]
	m.active[vehicle.ID] = current
	m.mu.Unlock()

	var out []models.ZoneAlertCommand
	for zoneID := range current {
		if !previous[zoneID] {
			out = append(out, models.ZoneAlertCommand{
				VehicleID:             vehicle.ID,
				ZoneID:                zoneID,
				LightControllerTarget: LightControllerTarget,
			})
		}
	}
	for zoneID := range previous {
		if !current[zoneID] {
			out = append(out, models.ZoneAlertCommand{
				VehicleID:             vehicle.ID,
				ZoneID:                zoneID,
				LightControllerTarget: LightControllerTarget,
				Cleared:               true,
			})
		}
	}

	if len(out) > 0 && m.logger != nil {
		m.logger.WithFields(logrus.Fields{
			"component":  "zonewatch",
			"vehicle_id": vehicle.ID,
			"commands":   len(out),
		}).Debug("Zone occupancy changed")
	}
	return out
}

// Forget drops the tracked zone set for a vehicle, e.g. after it was
// deregistered.
func (m *Monitor) Forget(vehicleID string) {
	m.mu.Lock()
	delete(m.active, vehicleID)
	m.mu.Unlock()
}
