package vehicle

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathguard/collision-engine/internal/models"
)

func envelope(t *testing.T, env models.Envelope) string {
	t.Helper()
	b, err := json.Marshal(env)
	require.NoError(t, err)
	return string(b)
}

func TestAgentHandleBrakeCommand(t *testing.T) {
	log := testLogger()
	act := &fakeActuator{}
	t0 := time.Now()
	controller := NewController(act, 3*time.Second, t0, log)
	agent := NewAgent("forklift-1", nil, controller, 100*time.Millisecond, log)
	entry := log.WithField("component", "vehicle-agent")

	agent.handle(envelope(t, models.Envelope{
		ID:       uuid.New(),
		Type:     models.CommandBrake,
		IssuedAt: t0,
		Brake:    &models.BrakeCommand{VehicleID: "forklift-1", Action: models.BrakeEngage, ReasonCode: models.ReasonBrakingBand},
	}), entry)

	assert.Equal(t, StateEngaged, controller.State())
}

func TestAgentAnyMessageRefreshesLiveness(t *testing.T) {
	log := testLogger()
	act := &fakeActuator{}
	t0 := time.Now()
	controller := NewController(act, time.Second, t0.Add(-time.Hour), log)
	agent := NewAgent("forklift-1", nil, controller, 100*time.Millisecond, log)
	entry := log.WithField("component", "vehicle-agent")

	// An alert message is not a brake command, but it proves the link.
	agent.handle(envelope(t, models.Envelope{
		ID:       uuid.New(),
		Type:     models.CommandAlert,
		IssuedAt: t0,
		Alert:    &models.AlertCommand{VehicleID: "forklift-1", Level: models.LevelProximity},
	}), entry)

	controller.CheckWatchdog(time.Now())
	assert.Equal(t, StateReleased, controller.State())
}

func TestAgentStatusFeedsController(t *testing.T) {
	log := testLogger()
	act := &fakeActuator{}
	t0 := time.Now()
	controller := NewController(act, time.Second, t0.Add(-time.Hour), log)
	agent := NewAgent("forklift-1", nil, controller, 100*time.Millisecond, log)
	entry := log.WithField("component", "vehicle-agent")

	controller.CheckWatchdog(t0)
	require.Equal(t, StateFailsafeEngaged, controller.State())

	env := envelope(t, models.Envelope{
		ID:       uuid.New(),
		Type:     models.CommandStatus,
		IssuedAt: t0,
		Status:   &models.StatusCommand{VehicleID: "forklift-1", Level: models.LevelNone},
	})

	// First heartbeat restores liveness, the second releases.
	agent.handle(env, entry)
	assert.Equal(t, StateFailsafeEngaged, controller.State())
	agent.handle(env, entry)
	assert.Equal(t, StateReleased, controller.State())
}

func TestAgentGarbledMessageStillCountsAsTraffic(t *testing.T) {
	log := testLogger()
	act := &fakeActuator{}
	controller := NewController(act, time.Second, time.Now().Add(-time.Hour), log)
	agent := NewAgent("forklift-1", nil, controller, 100*time.Millisecond, log)

	agent.handle("{not json", log.WithField("component", "vehicle-agent"))

	controller.CheckWatchdog(time.Now())
	assert.Equal(t, StateReleased, controller.State())
}
