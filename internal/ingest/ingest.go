// Package ingest consumes the inbound position feed from the bus and
// writes fixes into the entity registry.
package ingest

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pathguard/collision-engine/internal/models"
	"github.com/pathguard/collision-engine/internal/publisher"
	"github.com/pathguard/collision-engine/internal/registry"
)

// Consumer subscribes to the position channel and upserts every fix.
type Consumer struct {
	redisClient *redis.Client
	registry    *registry.Registry
	logger      *logrus.Logger
}

// NewConsumer creates a Consumer.
func NewConsumer(redisClient *redis.Client, reg *registry.Registry, logger *logrus.Logger) *Consumer {
	return &Consumer{
		redisClient: redisClient,
		registry:    reg,
		logger:      logger,
	}
}

// Start launches the consume loop in a goroutine. It runs until the
// context is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log := c.logger.WithField("component", "ingest")
	sub := c.redisClient.Subscribe(ctx, publisher.PositionsChannel)
	log.WithField("channel", publisher.PositionsChannel).Info("Starting position feed consumer")

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				log.Info("Stopping position feed consumer")
				return
			case msg, ok := <-ch:
				if !ok {
					log.Warn("Position feed subscription closed")
					return
				}
				c.handle(msg.Payload, log)
			}
		}
	}()
}

func (c *Consumer) handle(payload string, log *logrus.Entry) {
	var fix models.Fix
	if err := json.Unmarshal([]byte(payload), &fix); err != nil {
		log.WithError(err).Error("Failed to unmarshal position fix")
		return
	}

	switch fix.Kind {
	case models.KindVehicle, models.KindPedestrian:
	default:
		// Fail toward caution: an unclassifiable entity gets pedestrian
		// treatment rather than falling outside both evaluations.
		log.WithFields(logrus.Fields{
			"entity_id": fix.EntityID,
			"kind":      string(fix.Kind),
		}).Warn("Unknown entity kind in fix, treating as pedestrian")
		fix.Kind = models.KindPedestrian
	}

	if err := c.registry.Upsert(fix); err != nil {
		if errors.Is(err, registry.ErrStaleTimestamp) {
			// Expected under a lossy link: out-of-order fixes are
			// rejected without touching state.
			log.WithField("entity_id", fix.EntityID).Debug("Dropped out-of-order fix")
			return
		}
		log.WithError(err).WithField("entity_id", fix.EntityID).Error("Failed to upsert fix")
	}
}
