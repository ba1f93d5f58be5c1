// Package vehicle implements the client-side brake controller: the
// component on each vehicle that consumes commands and a link-liveness
// signal and owns the final fail-safe decision to apply the brake.
package vehicle

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pathguard/collision-engine/internal/models"
)

// BrakeState is the controller's state machine.
type BrakeState string

const (
	StateReleased        BrakeState = "RELEASED"
	StateEngaged         BrakeState = "ENGAGED"
	StateFailsafeEngaged BrakeState = "FAILSAFE_ENGAGED"
)

// Actuator abstracts the physical brake driver. Implementations must
// tolerate repeated Engage/Release calls in the same state.
type Actuator interface {
	Engage(reason string) error
	Release() error
}

// Controller holds the brake state machine and the liveness watchdog.
// Commands are level-set, not edge-triggered: duplicate delivery of the
// same engage or release leaves the controller where a single delivery
// would. The watchdog is independent of command handling; loss of
// communication fails toward stopping, never toward trusting a stale
// "all clear".
type Controller struct {
	mu    sync.Mutex
	state BrakeState

	// lastSeen is updated on every message of any kind from the server,
	// command or not.
	lastSeen time.Time

	failsafeTimeout time.Duration
	actuator        Actuator
	logger          *logrus.Logger
}

// NewController creates a Controller in the RELEASED state. The watchdog
// counts from now: a vehicle that never hears from the server at all
// still reaches FAILSAFE_ENGAGED after the timeout.
func NewController(actuator Actuator, failsafeTimeout time.Duration, now time.Time, logger *logrus.Logger) *Controller {
	return &Controller{
		state:           StateReleased,
		lastSeen:        now,
		failsafeTimeout: failsafeTimeout,
		actuator:        actuator,
		logger:          logger,
	}
}

// State returns the current brake state.
func (c *Controller) State() BrakeState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Touch records that a message of any kind arrived at the given time.
func (c *Controller) Touch(now time.Time) {
	c.mu.Lock()
	if now.After(c.lastSeen) {
		c.lastSeen = now
	}
	c.mu.Unlock()
}

// HandleBrake applies a brake command. Engage actuates and holds; the
// brake stays applied until an explicit release. Release out of
// FAILSAFE_ENGAGED only succeeds when the link was already alive when
// the release arrived: a lone release after a long silence proves
// nothing about the link, so fail-safe overrides it.
func (c *Controller) HandleBrake(cmd models.BrakeCommand, now time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	aliveBefore := c.alive(now)
	if now.After(c.lastSeen) {
		c.lastSeen = now
	}

	switch cmd.Action {
	case models.BrakeEngage:
		if c.state == StateEngaged || c.state == StateFailsafeEngaged {
			return nil // idempotent
		}
		if err := c.actuator.Engage(cmd.ReasonCode); err != nil {
			return err
		}
		c.setState(StateEngaged, cmd.ReasonCode)

	case models.BrakeRelease:
		if c.state == StateReleased {
			return nil // idempotent
		}
		if c.state == StateFailsafeEngaged && !aliveBefore {
			return nil
		}
		if err := c.actuator.Release(); err != nil {
			return err
		}
		c.setState(StateReleased, cmd.ReasonCode)
	}
	return nil
}

// HandleStatus processes a server heartbeat. Every status refreshes
// liveness. A status showing the server no longer demands braking also
// releases a fail-safe brake, but only when the link was already alive
// when it arrived; as with HandleBrake, one message after a long silence
// proves nothing. A commanded ENGAGED brake is never released here, that
// takes an explicit release command.
func (c *Controller) HandleStatus(status models.StatusCommand, now time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	aliveBefore := c.alive(now)
	if now.After(c.lastSeen) {
		c.lastSeen = now
	}

	if c.state != StateFailsafeEngaged || !aliveBefore || status.Level >= models.LevelBraking {
		return nil
	}
	if err := c.actuator.Release(); err != nil {
		return err
	}
	c.setState(StateReleased, "failsafe_recovered")
	return nil
}

// CheckWatchdog is called every controller tick. If the link has been
// silent longer than the fail-safe timeout, the brake is actuated
// regardless of the last received command.
func (c *Controller) CheckWatchdog(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.alive(now) || c.state == StateFailsafeEngaged {
		return
	}
	if err := c.actuator.Engage("liveness_lost"); err != nil {
		if c.logger != nil {
			c.logger.WithError(err).Error("Fail-safe brake actuation failed")
		}
		// Fall through: the state still reflects the fail-safe decision
		// so a recovered link cannot silently resume as released.
	}
	c.setState(StateFailsafeEngaged, "liveness_lost")
}

func (c *Controller) alive(now time.Time) bool {
	return now.Sub(c.lastSeen) <= c.failsafeTimeout
}

// setState transitions and logs. Caller holds c.mu.
func (c *Controller) setState(next BrakeState, reason string) {
	if c.state == next {
		return
	}
	prev := c.state
	c.state = next
	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"component": "brake-controller",
			"from":      string(prev),
			"to":        string(next),
			"reason":    reason,
		}).Info("Brake state transition")
	}
}
