// Package engine runs the fixed-cadence evaluation loop. Each tick takes
// one registry snapshot, evaluates every vehicle in parallel against it
// (vehicles are computationally independent; the snapshot is read-only
// shared state), then publishes the resulting commands.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pathguard/collision-engine/internal/decision"
	"github.com/pathguard/collision-engine/internal/models"
	"github.com/pathguard/collision-engine/internal/proximity"
	"github.com/pathguard/collision-engine/internal/publisher"
	"github.com/pathguard/collision-engine/internal/registry"
	"github.com/pathguard/collision-engine/internal/service"
	"github.com/pathguard/collision-engine/internal/zonewatch"
)

// statsEvery is the tick modulus for the periodic loop-stats log entry.
const statsEvery = 100

// Engine wires the registry, proximity calculator, decision engine,
// pedestrian-way monitor, and command publisher into one tick loop.
type Engine struct {
	registry  *registry.Registry
	configSvc service.ConfigService
	decisions *decision.Engine
	zones     *zonewatch.Monitor
	publisher publisher.CommandPublisher
	logger    *logrus.Logger

	tickInterval time.Duration
	tickCount    uint64
}

// New creates an Engine.
func New(
	reg *registry.Registry,
	configSvc service.ConfigService,
	decisions *decision.Engine,
	zones *zonewatch.Monitor,
	pub publisher.CommandPublisher,
	tickInterval time.Duration,
	logger *logrus.Logger,
) *Engine {
	return &Engine{
		registry:     reg,
		configSvc:    configSvc,
		decisions:    decisions,
		zones:        zones,
		publisher:    pub,
		logger:       logger,
		tickInterval: tickInterval,
	}
}

// vehicleResult collects everything one vehicle's evaluation produced.
// status is always set: every live vehicle gets a heartbeat each tick.
type vehicleResult struct {
	brakes     []models.BrakeCommand
	alerts     []models.AlertCommand
	zoneAlerts []models.ZoneAlertCommand
	status     models.StatusCommand
}

// Run executes the tick loop until the context is cancelled. A tick that
// overruns its period is logged and the next tick proceeds with whatever
// snapshot is current; ticks are never queued or batched.
func (e *Engine) Run(ctx context.Context) {
	log := e.logger.WithField("component", "engine")
	log.WithField("tick_interval", e.tickInterval.String()).Info("Starting evaluation loop")

	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping evaluation loop")
			return
		case <-ticker.C:
			start := time.Now()
			e.Tick(ctx, start)
			if elapsed := time.Since(start); elapsed > e.tickInterval {
				log.WithFields(logrus.Fields{
					"elapsed": elapsed.String(),
					"period":  e.tickInterval.String(),
				}).Warn("Evaluation tick overran its period")
			}
		}
	}
}

/// Tick runs one full evaluation cycle. It always runs to completion:
// partial evaluation would leave some vehicles without a fresh decision,
// which is worse than a short delay.
func (e *Engine) Tick(ctx context.Context, now time.Time) {
	e.tickCount++
	snap := e.registry.Snapshot(now)
	zones := e.configSvc.Zones()
	vehicles := snap.Vehicles()

	results := make([]vehicleResult, len(vehicles))
	var wg sync.WaitGroup
	for i, vehicle := range vehicles {
		wg.Add(1)
		go func(i int, vehicle models.Entity) {
			defer wg.Done()
			results[i] = e.evaluateVehicle(vehicle, snap.Live, zones, now)
		}(i, vehicle)
	}
	wg.Wait()

	e.publish(ctx, results)

	if e.tickCount%statsEvery == 0 {
		e.logger.WithFields(logrus.Fields{
			"component": "engine",
			"ticks":     e.tickCount,
			"live":      len(snap.Live),
			"stale":     len(snap.Stale),
			"vehicles":  len(vehicles),
		}).Debug("Evaluation loop stats")
	}
}

// evaluateVehicle computes proximity risk, advances the alert state
// machine, and checks pedestrian-way occupancy for one vehicle.
func (e *Engine) evaluateVehicle(vehicle models.Entity, live []models.Entity, zones []models.Zone, now time.Time) vehicleResult {
	bands, zoneMult := e.configSvc.BandsFor(vehicle.ID)
	_, governing, hasGoverning := proximity.AssessAll(vehicle, live, bands, zoneMult)

	outcome := e.decisions.Evaluate(vehicle.ID, governing, hasGoverning, now)

	return vehicleResult{
		brakes:     outcome.Brakes,
		alerts:     outcome.Alerts,
		zoneAlerts: e.zones.Evaluate(vehicle, zones),
		status:     models.StatusCommand{VehicleID: vehicle.ID, Level: outcome.State.Level},
	}
}

// publish sends the tick's commands: all brake commands first (highest
// send priority, each its own message), then directional alerts, then
// zone alerts, then the per-vehicle heartbeats. The heartbeat goes to
// every live vehicle every tick, transition or not; the vehicle-side
// watchdog measures link liveness by message arrival, so silence from
// the server would otherwise read as a dead link. For a single vehicle
// the engage-before-release order of an escalation episode is preserved
// because its commands are emitted in state machine order and published
// on one channel.
func (e *Engine) publish(ctx context.Context, results []vehicleResult) {
	log := e.logger.WithField("component", "engine")

	for _, r := range results {
		for _, cmd := range r.brakes {
			if err := e.publisher.PublishBrake(ctx, cmd); err != nil {
				log.WithError(err).WithField("vehicle_id", cmd.VehicleID).Error("Failed to publish brake command")
			}
		}
	}
	for _, r := range results {
		for _, cmd := range r.alerts {
			if err := e.publisher.PublishAlert(ctx, cmd); err != nil {
				log.WithError(err).WithField("vehicle_id", cmd.VehicleID).Error("Failed to publish alert command")
			}
		}
	}
	for _, r := range results {
		for _, cmd := range r.zoneAlerts {
			if err := e.publisher.PublishZoneAlert(ctx, cmd); err != nil {
				log.WithError(err).WithField("vehicle_id", cmd.VehicleID).Error("Failed to publish zone alert")
			}
		}
	}
	for _, r := range results {
		if err := e.publisher.PublishStatus(ctx, r.status); err != nil {
			log.WithError(err).WithField("vehicle_id", r.status.VehicleID).Error("Failed to publish status heartbeat")
		}
	}
}

// AlertStates exposes the current per-vehicle alert states for the
// operator-facing API.
func (e *Engine) AlertStates() []models.AlertState {
	return e.decisions.States()
}
