package decision

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathguard/collision-engine/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func risk(otherID string, band models.AlertLevel) models.RiskAssessment {
	return models.RiskAssessment{OtherID: otherID, Distance: 4, ClosingSpeed: 1, Band: band}
}

func TestEscalationIsImmediate(t *testing.T) {
	eng := New(3, testLogger())
	now := time.Now()

	out := eng.Evaluate("forklift-1", risk("worker-1", models.LevelBraking), true, now)

	assert.Equal(t, models.LevelBraking, out.State.Level)
	assert.Equal(t, "worker-1", out.State.GoverningID)
	require.Len(t, out.Brakes, 1)
	assert.Equal(t, models.BrakeEngage, out.Brakes[0].Action)
	assert.Equal(t, models.ReasonBrakingBand, out.Brakes[0].ReasonCode)
	// Brake commands stand alone; no alert accompanies the engage.
	assert.Empty(t, out.Alerts)
}

func TestEscalationEmitsDirectionalAlert(t *testing.T) {
	eng := New(3, testLogger())
	now := time.Now()

	governing := models.RiskAssessment{OtherID: "worker-1", Distance: 4.2, BearingRad: 0.5, Band: models.LevelWarning}
	out := eng.Evaluate("forklift-1", governing, true, now)

	require.Len(t, out.Alerts, 1)
	assert.Equal(t, models.LevelWarning, out.Alerts[0].Level)
	assert.Equal(t, "worker-1", out.Alerts[0].GoverningEntityID)
	assert.InDelta(t, 4.2, out.Alerts[0].Distance, 1e-9)
	assert.InDelta(t, 0.5, out.Alerts[0].BearingRad, 1e-9)
	assert.Empty(t, out.Brakes)
}

func TestDeescalationIsDebounced(t *testing.T) {
	eng := New(3, testLogger())
	now := time.Now()

	eng.Evaluate("forklift-1", risk("worker-1", models.LevelWarning), true, now)

	// Two consecutive lower-severity ticks: level holds, nothing emitted.
	for i := 0; i < 2; i++ {
		out := eng.Evaluate("forklift-1", risk("worker-1", models.LevelNone), true, now)
		assert.Equal(t, models.LevelWarning, out.State.Level)
		assert.False(t, out.Changed())
	}

	// Third consecutive tick crosses the debounce and de-escalates.
	out := eng.Evaluate("forklift-1", risk("worker-1", models.LevelNone), true, now)
	assert.Equal(t, models.LevelNone, out.State.Level)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, models.LevelNone, out.Alerts[0].Level, "clearing alert")
}

func TestDebounceResetsOnBlip(t *testing.T) {
	eng := New(3, testLogger())
	now := time.Now()

	eng.Evaluate("forklift-1", risk("worker-1", models.LevelWarning), true, now)

	// Two low ticks, then the risk comes back: the counter must restart.
	eng.Evaluate("forklift-1", risk("worker-1", models.LevelNone), true, now)
	eng.Evaluate("forklift-1", risk("worker-1", models.LevelNone), true, now)
	out := eng.Evaluate("forklift-1", risk("worker-1", models.LevelWarning), true, now)
	assert.Equal(t, models.LevelWarning, out.State.Level)
	assert.Zero(t, out.State.Debounce)

	eng.Evaluate("forklift-1", risk("worker-1", models.LevelNone), true, now)
	out = eng.Evaluate("forklift-1", risk("worker-1", models.LevelNone), true, now)
	assert.Equal(t, models.LevelWarning, out.State.Level, "still inside a fresh debounce window")
}

func TestBrakingPersistsUntilDebouncedRelease(t *testing.T) {
	eng := New(2, testLogger())
	now := time.Now()

	out := eng.Evaluate("forklift-1", risk("worker-1", models.LevelBraking), true, now)
	require.Len(t, out.Brakes, 1)

	// Holding BRAKING emits nothing further; the command is level-set.
	out = eng.Evaluate("forklift-1", risk("worker-1", models.LevelBraking), true, now)
	assert.Empty(t, out.Brakes)

	// One lower tick is not enough.
	out = eng.Evaluate("forklift-1", risk("worker-1", models.LevelWarning), true, now)
	assert.Equal(t, models.LevelBraking, out.State.Level)
	assert.Empty(t, out.Brakes)

	// The second lower tick releases and re-alerts at the new level.
	out = eng.Evaluate("forklift-1", risk("worker-1", models.LevelWarning), true, now)
	assert.Equal(t, models.LevelWarning, out.State.Level)
	require.Len(t, out.Brakes, 1)
	assert.Equal(t, models.BrakeRelease, out.Brakes[0].Action)
	assert.Equal(t, models.ReasonDeescalated, out.Brakes[0].ReasonCode)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, models.LevelWarning, out.Alerts[0].Level)
}

func TestGoverningGoneStaleDropsToNone(t *testing.T) {
	eng := New(2, testLogger())
	now := time.Now()

	eng.Evaluate("forklift-1", risk("worker-1", models.LevelBraking), true, now)

	// The governing entity dropped out of the live snapshot; risk is
	// evaluated as NONE under the same debounce.
	out := eng.Evaluate("forklift-1", models.RiskAssessment{}, false, now)
	assert.Equal(t, models.LevelBraking, out.State.Level)

	out = eng.Evaluate("forklift-1", models.RiskAssessment{}, false, now)
	assert.Equal(t, models.LevelNone, out.State.Level)
	assert.Empty(t, out.State.GoverningID)
	require.Len(t, out.Brakes, 1)
	assert.Equal(t, models.BrakeRelease, out.Brakes[0].Action)
	assert.Equal(t, models.ReasonGoverningStale, out.Brakes[0].ReasonCode)
}

func TestSkipLevelEscalationAndDeescalation(t *testing.T) {
	eng := New(1, testLogger())
	now := time.Now()

	// NONE -> BRAKING in one tick.
	out := eng.Evaluate("forklift-1", risk("worker-1", models.LevelBraking), true, now)
	assert.Equal(t, models.LevelBraking, out.State.Level)

	// With debounceTicks=1 a single lower tick de-escalates straight to
	// PROXIMITY, releasing the brake and alerting at the new level.
	out = eng.Evaluate("forklift-1", risk("worker-1", models.LevelProximity), true, now)
	assert.Equal(t, models.LevelProximity, out.State.Level)
	require.Len(t, out.Brakes, 1)
	assert.Equal(t, models.BrakeRelease, out.Brakes[0].Action)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, models.LevelProximity, out.Alerts[0].Level)
}

func TestHoldingLevelRefreshesGoverningEntity(t *testing.T) {
	eng := New(3, testLogger())
	now := time.Now()

	eng.Evaluate("forklift-1", risk("worker-1", models.LevelWarning), true, now)
	out := eng.Evaluate("forklift-1", risk("worker-2", models.LevelWarning), true, now)

	assert.Equal(t, models.LevelWarning, out.State.Level)
	assert.Equal(t, "worker-2", out.State.GoverningID)
	assert.False(t, out.Changed())
}

func TestStatesAreIndependentPerVehicle(t *testing.T) {
	eng := New(3, testLogger())
	now := time.Now()

	eng.Evaluate("forklift-1", risk("worker-1", models.LevelBraking), true, now)
	eng.Evaluate("forklift-2", risk("worker-1", models.LevelProximity), true, now)

	states := eng.States()
	require.Len(t, states, 2)
	byID := map[string]models.AlertLevel{}
	for _, s := range states {
		byID[s.VehicleID] = s.Level
	}
	assert.Equal(t, models.LevelBraking, byID["forklift-1"])
	assert.Equal(t, models.LevelProximity, byID["forklift-2"])
}
