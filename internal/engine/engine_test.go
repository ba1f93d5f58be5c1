package engine

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pathguard/collision-engine/internal/decision"
	"github.com/pathguard/collision-engine/internal/models"
	pubmocks "github.com/pathguard/collision-engine/internal/publisher/mocks"
	"github.com/pathguard/collision-engine/internal/registry"
	svcmocks "github.com/pathguard/collision-engine/internal/service/mocks"
	"github.com/pathguard/collision-engine/internal/zonewatch"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fixture struct {
	reg       *registry.Registry
	configSvc *svcmocks.MockConfigService
	pub       *pubmocks.MockCommandPublisher
	engine    *Engine
}

func newFixture(t *testing.T, debounceTicks int) *fixture {
	ctrl := gomock.NewController(t)
	log := testLogger()

	f := &fixture{
		reg:       registry.New(2*time.Second, 0, nil, log),
		configSvc: svcmocks.NewMockConfigService(ctrl),
		pub:       pubmocks.NewMockCommandPublisher(ctrl),
	}
	f.engine = New(
		f.reg,
		f.configSvc,
		decision.New(debounceTicks, log),
		zonewatch.New(2*time.Second, log),
		f.pub,
		200*time.Millisecond,
		log,
	)
	return f
}

func (f *fixture) upsert(t *testing.T, id string, kind models.Kind, x, y float64, ts time.Time) {
	t.Helper()
	require.NoError(t, f.reg.Upsert(models.Fix{EntityID: id, Kind: kind, X: x, Y: y, Timestamp: ts}))
}

func TestTickPublishesBrakeForBrakingBand(t *testing.T) {
	f := newFixture(t, 3)
	now := time.Now()

	f.upsert(t, "forklift-1", models.KindVehicle, 0, 0, now)
	f.upsert(t, "worker-1", models.KindPedestrian, 1, 0, now)

	f.configSvc.EXPECT().Zones().Return(nil)
	f.configSvc.EXPECT().BandsFor("forklift-1").Return(models.Bands{Proximity: 10, Warning: 5, Braking: 2}, 1.5)
	f.pub.EXPECT().PublishBrake(gomock.Any(), models.BrakeCommand{
		VehicleID:  "forklift-1",
		Action:     models.BrakeEngage,
		ReasonCode: models.ReasonBrakingBand,
	}).Return(nil)
	f.pub.EXPECT().PublishStatus(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.engine.Tick(context.Background(), now)

	states := f.engine.AlertStates()
	require.Len(t, states, 1)
	assert.Equal(t, models.LevelBraking, states[0].Level)
	assert.Equal(t, "worker-1", states[0].GoverningID)
}

func TestTickPublishesDirectionalAlert(t *testing.T) {
	f := newFixture(t, 3)
	now := time.Now()

	f.upsert(t, "forklift-1", models.KindVehicle, 0, 0, now)
	f.upsert(t, "worker-1", models.KindPedestrian, 7, 0, now)

	f.configSvc.EXPECT().Zones().Return(nil)
	f.configSvc.EXPECT().BandsFor("forklift-1").Return(models.Bands{Proximity: 10, Warning: 5, Braking: 2}, 1.5)
	f.pub.EXPECT().PublishAlert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd models.AlertCommand) error {
			assert.Equal(t, "forklift-1", cmd.VehicleID)
			assert.Equal(t, models.LevelProximity, cmd.Level)
			assert.Equal(t, "worker-1", cmd.GoverningEntityID)
			assert.InDelta(t, 7.0, cmd.Distance, 1e-9)
			return nil
		})
	f.pub.EXPECT().PublishStatus(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.engine.Tick(context.Background(), now)
}

func TestBrakeReleasePrecedesAlertOnDeescalation(t *testing.T) {
	f := newFixture(t, 1)
	now := time.Now()

	f.upsert(t, "forklift-1", models.KindVehicle, 0, 0, now)
	f.upsert(t, "worker-1", models.KindPedestrian, 1, 0, now)

	bands := models.Bands{Proximity: 10, Warning: 5, Braking: 2}
	f.configSvc.EXPECT().Zones().Return(nil).Times(2)
	f.configSvc.EXPECT().BandsFor("forklift-1").Return(bands, 1.5).Times(2)
	f.pub.EXPECT().PublishStatus(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.pub.EXPECT().PublishBrake(gomock.Any(), models.BrakeCommand{
		VehicleID:  "forklift-1",
		Action:     models.BrakeEngage,
		ReasonCode: models.ReasonBrakingBand,
	}).Return(nil)
	f.engine.Tick(context.Background(), now)

	// The worker steps back into the warning band; with a one-tick
	// debounce the next tick releases and re-alerts, brake first.
	next := now.Add(200 * time.Millisecond)
	f.upsert(t, "worker-1", models.KindPedestrian, 4, 0, next)

	gomock.InOrder(
		f.pub.EXPECT().PublishBrake(gomock.Any(), models.BrakeCommand{
			VehicleID:  "forklift-1",
			Action:     models.BrakeRelease,
			ReasonCode: models.ReasonDeescalated,
		}).Return(nil),
		f.pub.EXPECT().PublishAlert(gomock.Any(), gomock.Any()).Return(nil),
	)
	f.engine.Tick(context.Background(), next)
}

func TestStaleEntitiesAreNotEvaluatedAsThreats(t *testing.T) {
	f := newFixture(t, 3)
	now := time.Now()

	f.upsert(t, "forklift-1", models.KindVehicle, 0, 0, now)
	// The worker's last fix is outside the liveness window: it must not
	// drive any alert even though it sits inside the braking band.
	f.upsert(t, "worker-1", models.KindPedestrian, 1, 0, now.Add(-5*time.Second))

	f.configSvc.EXPECT().Zones().Return(nil)
	f.configSvc.EXPECT().BandsFor("forklift-1").Return(models.Bands{Proximity: 10, Warning: 5, Braking: 2}, 1.5)
	f.pub.EXPECT().PublishStatus(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.engine.Tick(context.Background(), now)

	states := f.engine.AlertStates()
	require.Len(t, states, 1)
	assert.Equal(t, models.LevelNone, states[0].Level)
}

func TestStaleVehiclesAreNotEvaluated(t *testing.T) {
	f := newFixture(t, 3)
	now := time.Now()

	f.upsert(t, "forklift-1", models.KindVehicle, 0, 0, now.Add(-5*time.Second))
	f.configSvc.EXPECT().Zones().Return(nil)

	f.engine.Tick(context.Background(), now)
	assert.Empty(t, f.engine.AlertStates())
}

func TestTickPublishesZoneAlerts(t *testing.T) {
	f := newFixture(t, 3)
	now := time.Now()

	f.upsert(t, "forklift-1", models.KindVehicle, 15, 2, now)

	f.configSvc.EXPECT().Zones().Return([]models.Zone{
		{ID: "walkway-7", MinX: 10, MinY: 0, MaxX: 20, MaxY: 4},
	})
	f.configSvc.EXPECT().BandsFor("forklift-1").Return(models.Bands{Proximity: 10, Warning: 5, Braking: 2}, 1.5)
	f.pub.EXPECT().PublishZoneAlert(gomock.Any(), models.ZoneAlertCommand{
		VehicleID:             "forklift-1",
		ZoneID:                "walkway-7",
		LightControllerTarget: zonewatch.LightControllerTarget,
	}).Return(nil)
	f.pub.EXPECT().PublishStatus(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.engine.Tick(context.Background(), now)
}

func TestTickPublishesHeartbeatForIdleVehicle(t *testing.T) {
	f := newFixture(t, 3)
	t0 := time.Now()

	// A lone vehicle with nothing anywhere near it still hears from the
	// engine every tick, so its watchdog never trips.
	f.upsert(t, "forklift-1", models.KindVehicle, 0, 0, t0)

	f.configSvc.EXPECT().Zones().Return(nil).Times(3)
	f.configSvc.EXPECT().BandsFor("forklift-1").Return(models.Bands{Proximity: 10, Warning: 5, Braking: 2}, 1.5).Times(3)
	f.pub.EXPECT().PublishStatus(gomock.Any(), models.StatusCommand{
		VehicleID: "forklift-1",
		Level:     models.LevelNone,
	}).Return(nil).Times(3)

	for i := 0; i < 3; i++ {
		now := t0.Add(time.Duration(i) * 200 * time.Millisecond)
		f.upsert(t, "forklift-1", models.KindVehicle, 0, 0, now.Add(time.Millisecond))
		f.engine.Tick(context.Background(), now.Add(2*time.Millisecond))
	}
}

func TestTickLogsLoopStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	configSvc := svcmocks.NewMockConfigService(ctrl)
	configSvc.EXPECT().Zones().Return(nil).AnyTimes()

	eng := New(
		registry.New(2*time.Second, 0, nil, log),
		configSvc,
		decision.New(3, log),
		zonewatch.New(2*time.Second, log),
		pubmocks.NewMockCommandPublisher(ctrl),
		200*time.Millisecond,
		log,
	)

	now := time.Now()
	for i := 0; i < statsEvery; i++ {
		eng.Tick(context.Background(), now.Add(time.Duration(i)*200*time.Millisecond))
	}

	var found bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Evaluation loop stats" {
			found = true
		}
	}
	assert.True(t, found, "expected a stats entry after %d ticks", statsEvery)
}

func TestPedestriansDoNotGetAlertStates(t *testing.T) {
	f := newFixture(t, 3)
	now := time.Now()

	// Two pedestrians close together: pedestrians are never evaluated as
	// the protected party.
	f.upsert(t, "worker-1", models.KindPedestrian, 0, 0, now)
	f.upsert(t, "worker-2", models.KindPedestrian, 1, 0, now)

	f.configSvc.EXPECT().Zones().Return(nil)

	f.engine.Tick(context.Background(), now)
	assert.Empty(t, f.engine.AlertStates())
}
