// Package publisher serializes engine decisions into outbound bus
// messages, each scoped to a single destination: one vehicle's command
// channel or the light controller's.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pathguard/collision-engine/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// Channel layout on the bus. Per-destination ordering is the single
// Redis channel's publish order.
const (
	PositionsChannel     = "pathguard:positions"
	vehicleChannelPrefix = "pathguard:commands:vehicle:"
	lightsChannel        = "pathguard:commands:lights"
)

// VehicleChannel returns the command channel for one vehicle.
func VehicleChannel(vehicleID string) string {
	return vehicleChannelPrefix + vehicleID
}

// CommandPublisher is the outbound contract of the engine. It promises
// at-least-once delivery intent to the transport; retries are the
// transport's concern, not performed here.
type CommandPublisher interface {
	PublishBrake(ctx context.Context, cmd models.BrakeCommand) error
	PublishAlert(ctx context.Context, cmd models.AlertCommand) error
	PublishZoneAlert(ctx context.Context, cmd models.ZoneAlertCommand) error
	PublishStatus(ctx context.Context, cmd models.StatusCommand) error
}

// RedisCommandPublisher publishes command envelopes over Redis pub/sub.
type RedisCommandPublisher struct {
	redisClient *redis.Client
}

// NewRedisCommandPublisher creates a RedisCommandPublisher.
func NewRedisCommandPublisher(client *redis.Client) *RedisCommandPublisher {
	return &RedisCommandPublisher{redisClient: client}
}

// PublishBrake sends a brake command to the vehicle's channel. Brake
// commands are always their own message, never coalesced with anything
// else; the engine publishes them before any other command of the tick.
func (p *RedisCommandPublisher) PublishBrake(ctx context.Context, cmd models.BrakeCommand) error {
	env := models.Envelope{
		ID:       uuid.New(),
		Type:     models.CommandBrake,
		IssuedAt: time.Now().UTC(),
		Brake:    &cmd,
	}
	return p.publish(ctx, VehicleChannel(cmd.VehicleID), env)
}

// PublishAlert sends a directional alert to the vehicle's channel.
func (p *RedisCommandPublisher) PublishAlert(ctx context.Context, cmd models.AlertCommand) error {
	env := models.Envelope{
		ID:       uuid.New(),
		Type:     models.CommandAlert,
		IssuedAt: time.Now().UTC(),
		Alert:    &cmd,
	}
	return p.publish(ctx, VehicleChannel(cmd.VehicleID), env)
}

// PublishZoneAlert sends a zone alert to both the vehicle and the light
// controller.
func (p *RedisCommandPublisher) PublishZoneAlert(ctx context.Context, cmd models.ZoneAlertCommand) error {
	env := models.Envelope{
		ID:        uuid.New(),
		Type:      models.CommandZoneAlert,
		IssuedAt:  time.Now().UTC(),
		ZoneAlert: &cmd,
	}
	if err := p.publish(ctx, VehicleChannel(cmd.VehicleID), env); err != nil {
		return err
	}
	return p.publish(ctx, lightsChannel, env)
}

// PublishStatus sends the per-tick heartbeat to the vehicle's channel.
func (p *RedisCommandPublisher) PublishStatus(ctx context.Context, cmd models.StatusCommand) error {
	env := models.Envelope{
		ID:       uuid.New(),
		Type:     models.CommandStatus,
		IssuedAt: time.Now().UTC(),
		Status:   &cmd,
	}
	return p.publish(ctx, VehicleChannel(cmd.VehicleID), env)
}

func (p *RedisCommandPublisher) publish(ctx context.Context, channel string, env models.Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal %s envelope: %w", env.Type, err)
	}
	if err := p.redisClient.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish %s command to %s: %w", env.Type, channel, err)
	}
	return nil
}
