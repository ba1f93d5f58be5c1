package zonewatch

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pathguard/collision-engine/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var walkway = models.Zone{ID: "walkway-7", Name: "Walkway 7", MinX: 10, MinY: 0, MaxX: 20, MaxY: 4}

func forkliftAt(x, y, vx, vy float64) models.Entity {
	return models.Entity{
		ID:       "forklift-1",
		Kind:     models.KindVehicle,
		Position: r2.Vec{X: x, Y: y},
		Velocity: r2.Vec{X: vx, Y: vy},
	}
}

func TestZoneEntryEmitsOnce(t *testing.T) {
	m := New(2*time.Second, testLogger())

	cmds := m.Evaluate(forkliftAt(15, 2, 0, 0), []models.Zone{walkway})
	require.Len(t, cmds, 1)
	assert.Equal(t, "forklift-1", cmds[0].VehicleID)
	assert.Equal(t, "walkway-7", cmds[0].ZoneID)
	assert.Equal(t, LightControllerTarget, cmds[0].LightControllerTarget)
	assert.False(t, cmds[0].Cleared)

	// Staying inside does not re-emit every tick.
	cmds = m.Evaluate(forkliftAt(16, 2, 0, 0), []models.Zone{walkway})
	assert.Empty(t, cmds)
}

func TestProjectedEntryTriggersAhead(t *testing.T) {
	m := New(2*time.Second, testLogger())

	// 5 m short of the zone but moving toward it at 3 m/s: the 2 s
	// projection lands inside.
	cmds := m.Evaluate(forkliftAt(5, 2, 3, 0), []models.Zone{walkway})
	require.Len(t, cmds, 1)
	assert.Equal(t, "walkway-7", cmds[0].ZoneID)

	// Same position moving away: no alert.
	m2 := New(2*time.Second, testLogger())
	cmds = m2.Evaluate(forkliftAt(5, 2, -3, 0), []models.Zone{walkway})
	assert.Empty(t, cmds)
}

func TestZoneExitEmitsCleared(t *testing.T) {
	m := New(2*time.Second, testLogger())

	m.Evaluate(forkliftAt(15, 2, 0, 0), []models.Zone{walkway})
	cmds := m.Evaluate(forkliftAt(30, 2, 0, 0), []models.Zone{walkway})

	require.Len(t, cmds, 1)
	assert.True(t, cmds[0].Cleared)
	assert.Equal(t, "walkway-7", cmds[0].ZoneID)
}

func TestOverlappingZonesAlertIndependently(t *testing.T) {
	second := models.Zone{ID: "dock-2", MinX: 14, MinY: 0, MaxX: 25, MaxY: 4}
	m := New(2*time.Second, testLogger())

	cmds := m.Evaluate(forkliftAt(15, 2, 0, 0), []models.Zone{walkway, second})
	assert.Len(t, cmds, 2)

	// Leaving only one of them clears only that one.
	cmds = m.Evaluate(forkliftAt(22, 2, 0, 0), []models.Zone{walkway, second})
	require.Len(t, cmds, 1)
	assert.True(t, cmds[0].Cleared)
	assert.Equal(t, "walkway-7", cmds[0].ZoneID)
}

func TestForgetDropsTrackedState(t *testing.T) {
	m := New(2*time.Second, testLogger())

	m.Evaluate(forkliftAt(15, 2, 0, 0), []models.Zone{walkway})
	m.Forget("forklift-1")

	// After a Forget the next tick inside the zone alerts again.
	cmds := m.Evaluate(forkliftAt(15, 2, 0, 0), []models.Zone{walkway})
	assert.Len(t, cmds, 1)
}
