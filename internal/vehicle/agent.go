package vehicle

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pathguard/collision-engine/internal/models"
	"github.com/pathguard/collision-engine/internal/publisher"
)

// Agent is the vehicle-side process: it subscribes to the vehicle's
// command channel, feeds the brake controller, and runs the watchdog
// tick. Alert and zone-alert messages are handed to the external
// display/speech collaborators; here they only refresh liveness and get
// logged.
type Agent struct {
	vehicleID    string
	redisClient  *redis.Client
	controller   *Controller
	watchdogTick time.Duration
	logger       *logrus.Logger
}

// NewAgent creates an Agent around an existing controller.
func NewAgent(vehicleID string, redisClient *redis.Client, controller *Controller, watchdogTick time.Duration, logger *logrus.Logger) *Agent {
	return &Agent{
		vehicleID:    vehicleID,
		redisClient:  redisClient,
		controller:   controller,
		watchdogTick: watchdogTick,
		logger:       logger,
	}
}

// Run blocks until the context is cancelled. The watchdog timer is
// independent of engine-side ticking: it fires locally even when no
// message ever arrives.
func (a *Agent) Run(ctx context.Context) error {
	log := a.logger.WithFields(logrus.Fields{
		"component":  "vehicle-agent",
		"vehicle_id": a.vehicleID,
	})

	channel := publisher.VehicleChannel(a.vehicleID)
	sub := a.redisClient.Subscribe(ctx, channel)
	defer sub.Close()
	log.WithField("channel", channel).Info("Vehicle agent started")

	msgs := sub.Channel()
	watchdog := time.NewTicker(a.watchdogTick)
	defer watchdog.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Vehicle agent stopping")
			return ctx.Err()
		case <-watchdog.C:
			a.controller.CheckWatchdog(time.Now())
		case msg, ok := <-msgs:
			if !ok {
				log.Warn("Command subscription closed, holding watchdog only")
				msgs = nil
				continue
			}
			a.handle(msg.Payload, log)
		}
	}
}

func (a *Agent) handle(payload string, log *logrus.Entry) {
	now := time.Now()

	var env models.Envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		// Even a garbled message proves the link is up.
		a.controller.Touch(now)
		log.WithError(err).Error("Failed to unmarshal command envelope")
		return
	}

	switch env.Type {
	case models.CommandBrake:
		if env.Brake == nil {
			a.controller.Touch(now)
			log.Warn("Brake envelope without payload")
			return
		}
		if err := a.controller.HandleBrake(*env.Brake, now); err != nil {
			log.WithError(err).WithField("action", string(env.Brake.Action)).Error("Brake actuation failed")
		}
	case models.CommandAlert:
		a.controller.Touch(now)
		if env.Alert != nil {
			log.WithFields(logrus.Fields{
				"level":    env.Alert.Level.String(),
				"bearing":  env.Alert.BearingRad,
				"distance": env.Alert.Distance,
			}).Info("Alert received")
		}
	case models.CommandZoneAlert:
		a.controller.Touch(now)
		if env.ZoneAlert != nil {
			log.WithField("zone_id", env.ZoneAlert.ZoneID).Info("Zone alert received")
		}
	case models.CommandStatus:
		if env.Status == nil {
			a.controller.Touch(now)
			return
		}
		if err := a.controller.HandleStatus(*env.Status, now); err != nil {
			log.WithError(err).Error("Fail-safe release failed")
		}
	default:
		a.controller.Touch(now)
		log.WithField("type", string(env.Type)).Warn("Unknown command type")
	}
}
