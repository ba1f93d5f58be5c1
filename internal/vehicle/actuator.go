package vehicle

import (
	"github.com/sirupsen/logrus"
)

// LogActuator stands in for the physical brake driver, which is an
// external collaborator. It records actuation decisions so the hardware
// integration can be dropped in behind the same interface.
type LogActuator struct {
	VehicleID string
	Logger    *logrus.Logger
}

// Engage logs the brake-apply decision.
func (a *LogActuator) Engage(reason string) error {
	a.Logger.WithFields(logrus.Fields{
		"component":  "actuator",
		"vehicle_id": a.VehicleID,
		"reason":     reason,
	}).Warn("BRAKE ENGAGED")
	return nil
}

// Release logs the brake-release decision.
func (a *LogActuator) Release() error {
	a.Logger.WithFields(logrus.Fields{
		"component":  "actuator",
		"vehicle_id": a.VehicleID,
	}).Info("Brake released")
	return nil
}
