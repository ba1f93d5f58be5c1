// Package decision runs the per-vehicle alert state machine. Escalation
// is instantaneous; de-escalation is debounced over consecutive ticks so
// noisy fixes near a band boundary cannot make the alert level chatter.
package decision

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pathguard/collision-engine/internal/models"
)

// Outcome is what one tick of the state machine produced for a vehicle.
// Commands are in emission order; brake commands always precede alerts
// for the same transition.
type Outcome struct {
	State  models.AlertState
	Brakes []models.BrakeCommand
	Alerts []models.AlertCommand
}

// Changed reports whether the tick transitioned the alert level.
func (o Outcome) Changed() bool {
	return len(o.Brakes) > 0 || len(o.Alerts) > 0
}

// Engine owns the AlertState records, exactly one per vehicle. Nothing
// else mutates them; consumers only ever see the outcome.
type Engine struct {
	mu     sync.Mutex
	states map[string]*models.AlertState

	debounceTicks int
	logger        *logrus.Logger
}

// New creates an Engine. debounceTicks is the number of consecutive
// ticks a lower-severity classification must hold before de-escalating.
func New(debounceTicks int, logger *logrus.Logger) *Engine {
	if debounceTicks < 1 {
		debounceTicks = 1
	}
	return &Engine{
		states:        make(map[string]*models.AlertState),
		debounceTicks: debounceTicks,
		logger:        logger,
	}
}

// Evaluate advances the vehicle's state machine by one tick given the
// governing risk assessment, if any. A vehicle with no governing entity
// (nothing nearby, or its governing entity went stale and dropped out of
// the snapshot) is evaluated as if risk dropped to NONE, subject to the
// same debounce.
func (e *Engine) Evaluate(vehicleID string, governing models.RiskAssessment, hasGoverning bool, now time.Time) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.states[vehicleID]
	if !ok {
		state = &models.AlertState{VehicleID: vehicleID, Level: models.LevelNone, EnteredAt: now}
		e.states[vehicleID] = state
	}

	target := models.LevelNone
	if hasGoverning {
		target = governing.Band
	}

	switch {
	case target > state.Level:
		// Escalation is immediate: safety favors fast reaction.
		return e.transition(state, target, governing, hasGoverning, now)

	case target < state.Level:
		state.Debounce++
		if state.Debounce < e.debounceTicks {
			return Outcome{State: *state}
		}
		return e.transition(state, target, governing, hasGoverning, now)

	default:
		// Holding level: refresh the governing entity and reset debounce.
		state.Debounce = 0
		if hasGoverning {
			state.GoverningID = governing.OtherID
		}
		return Outcome{State: *state}
	}
}

// States returns a copy of every vehicle's current alert state.
func (e *Engine) States() []models.AlertState {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.AlertState, 0, len(e.states))
	for _, s := range e.states {
		out = append(out, *s)
	}
	return out
}

// transition moves the state to the target level and collects the
// commands the transition emits. Caller holds e.mu.
func (e *Engine) transition(state *models.AlertState, target models.AlertLevel, governing models.RiskAssessment, hasGoverning bool, now time.Time) Outcome {
	from := state.Level

	state.Level = target
	state.EnteredAt = now
	state.Debounce = 0
	if hasGoverning {
		state.GoverningID = governing.OtherID
	} else {
		state.GoverningID = ""
	}

	out := Outcome{}

	if target == models.LevelBraking {
		out.Brakes = append(out.Brakes, models.BrakeCommand{
			VehicleID:  state.VehicleID,
			Action:     models.BrakeEngage,
			ReasonCode: models.ReasonBrakingBand,
		})
	}
	if from == models.LevelBraking && target < models.LevelBraking {
		reason := models.ReasonDeescalated
		if !hasGoverning {
			reason = models.ReasonGoverningStale
		}
		out.Brakes = append(out.Brakes, models.BrakeCommand{
			VehicleID:  state.VehicleID,
			Action:     models.BrakeRelease,
			ReasonCode: reason,
		})
	}

	switch target {
	case models.LevelProximity, models.LevelWarning:
		out.Alerts = append(out.Alerts, models.AlertCommand{
			VehicleID:         state.VehicleID,
			Level:             target,
			BearingRad:        governing.BearingRad,
			Distance:          governing.Distance,
			GoverningEntityID: governing.OtherID,
		})
	case models.LevelNone:
		// Clearing alert so operator displays can blank the indicator.
		out.Alerts = append(out.Alerts, models.AlertCommand{
			VehicleID: state.VehicleID,
			Level:     models.LevelNone,
		})
	}

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"component":  "decision",
			"vehicle_id": state.VehicleID,
			"from":       from.String(),
			"to":         target.String(),
			"governing":  state.GoverningID,
		}).Info("Alert level transition")
	}

	out.State = *state
	return out
}
