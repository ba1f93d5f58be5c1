package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/pathguard/collision-engine/internal/config"
	"github.com/pathguard/collision-engine/internal/models"
	"github.com/pathguard/collision-engine/internal/registry"
	"github.com/pathguard/collision-engine/internal/service"
)

// EntityRegistry is the registry surface the API needs.
type EntityRegistry interface {
	Upsert(fix models.Fix) error
	Snapshot(now time.Time) models.Snapshot
	Deregister(entityID string) error
}

// AlertReader exposes the engine's current per-vehicle alert states.
type AlertReader interface {
	AlertStates() []models.AlertState
}

// ZoneMonitor clears per-vehicle zone-occupancy tracking.
type ZoneMonitor interface {
	Forget(vehicleID string)
}

// Handler serves the operator/config API.
type Handler struct {
	configService service.ConfigService
	registry      EntityRegistry
	alerts        AlertReader
	zones         ZoneMonitor
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

// NewHandler creates the v1 API handler.
func NewHandler(configService service.ConfigService, reg EntityRegistry, alerts AlertReader, zones ZoneMonitor, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		configService: configService,
		registry:      reg,
		alerts:        alerts,
		zones:         zones,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Ingest a position fix
// @Description Record one position fix for a tracked entity. Out-of-order fixes are rejected. Requires API key.
// @Tags Fixes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param fix body FixRequest true "Position fix"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Fix older than entity's last update"
// @Router /fixes [post]
func (h *Handler) ingestFix(c *gin.Context) {
	var input FixRequest
	log := h.logger.WithField("method", "ingestFix")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.registry.Upsert(DTOToFix(input)); err != nil {
		if errors.Is(err, registry.ErrStaleTimestamp) {
			c.JSON(http.StatusConflict, gin.H{"error": "fix older than last update"})
			return
		}
		log.WithError(err).Error("Failed to upsert fix")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Get the registry snapshot
// @Description Latest known state of all tracked entities, stale ones flagged.
// @Tags Entities
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SnapshotResponse
// @Router /entities [get]
func (h *Handler) getEntities(c *gin.Context) {
	snap := h.registry.Snapshot(time.Now())
	c.JSON(http.StatusOK, SnapshotToResponse(snap))
}

// @Summary Deregister an entity
// @Description Remove an entity from the registry after the physical device is decommissioned. Requires API key.
// @Tags Entities
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Entity ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entity not found"
// @Router /entities/{id} [delete]
func (h *Handler) deregisterEntity(c *gin.Context) {
	id := c.Param("id")
	if err := h.registry.Deregister(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "entity not found"})
		return
	}
	// Drop the zone-occupancy tracking too, so a re-registered vehicle
	// standing in the same zone alerts again.
	h.zones.Forget(id)
	c.Status(http.StatusNoContent)
}

// @Summary Current alert states
// @Description Per-vehicle alert level, governing entity, and level entry time.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertStateResponse
// @Router /alerts [get]
func (h *Handler) getAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, AlertStatesToResponses(h.alerts.AlertStates()))
}

// @Summary Set a vehicle's thresholds
// @Description Create or replace the alerting bands for one vehicle. Hot-reloaded into the engine. Requires API key.
// @Tags Thresholds
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param threshold body ThresholdRequest true "Threshold config"
// @Success 200 {object} ThresholdResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /thresholds [put]
func (h *Handler) setThreshold(c *gin.Context) {
	var input ThresholdRequest
	log := h.logger.WithField("method", "setThreshold")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.BrakingDistance > input.WarningDistance || input.WarningDistance > input.ProximityDistance {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bands must be ordered braking <= warning <= proximity"})
		return
	}

	model := DTOToThreshold(input)
	if err := h.configService.SetThreshold(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to set threshold in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ThresholdToResponse(model))
}

// @Summary List thresholds
// @Tags Thresholds
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ThresholdResponse
// @Router /thresholds [get]
func (h *Handler) listThresholds(c *gin.Context) {
	log := h.logger.WithField("method", "listThresholds")
	configs, err := h.configService.ListThresholds(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list thresholds from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ThresholdsToResponses(configs))
}

// @Summary Get one vehicle's thresholds
// @Tags Thresholds
// @Produce json
// @Security ApiKeyAuth
// @Param vehicleId path string true "Vehicle ID"
// @Success 200 {object} ThresholdResponse
// @Failure 404 {object} map[string]string "No threshold config for vehicle"
// @Router /thresholds/{vehicleId} [get]
func (h *Handler) getThreshold(c *gin.Context) {
	vehicleID := c.Param("vehicleId")
	log := h.logger.WithField("method", "getThreshold").WithField("vehicle_id", vehicleID)

	cfg, err := h.configService.GetThreshold(c.Request.Context(), vehicleID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "threshold not found"})
			return
		}
		log.WithError(err).Error("Failed to get threshold from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ThresholdToResponse(cfg))
}

// @Summary Delete a vehicle's thresholds
// @Description Removes the per-vehicle config; the vehicle falls back to engine-wide default bands. Requires API key.
// @Tags Thresholds
// @Produce json
// @Security ApiKeyAuth
// @Param vehicleId path string true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "No threshold config for vehicle"
// @Router /thresholds/{vehicleId} [delete]
func (h *Handler) deleteThreshold(c *gin.Context) {
	vehicleID := c.Param("vehicleId")
	log := h.logger.WithField("method", "deleteThreshold").WithField("vehicle_id", vehicleID)

	if err := h.configService.DeleteThreshold(c.Request.Context(), vehicleID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "threshold not found"})
			return
		}
		log.WithError(err).Error("Failed to delete threshold in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create a pedestrian zone
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zone body ZoneRequest true "Zone definition"
// @Success 201 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	var input ZoneRequest
	log := h.logger.WithField("method", "createZone")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.MinX > input.MaxX || input.MinY > input.MaxY {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zone bounds must satisfy min <= max"})
		return
	}

	model := DTOToZone(input)
	if err := h.configService.CreateZone(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create zone in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ZoneToResponse(model))
}

// @Summary List pedestrian zones
// @Tags Zones
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ZoneResponse
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	log := h.logger.WithField("method", "listZones")
	zones, err := h.configService.ListZones(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list zones from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ZonesToResponses(zones))
}

// @Summary Delete a pedestrian zone
// @Tags Zones
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Zone not found"
// @Router /zones/{id} [delete]
func (h *Handler) deleteZone(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteZone").WithField("zone_id", id)

	if err := h.configService.DeleteZone(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
			return
		}
		log.WithError(err).Error("Failed to delete zone in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
