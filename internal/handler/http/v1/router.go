package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes. Mutating routes sit behind
// the API-key middleware; read-only snapshots and health do not.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	authed := api.Group("")
	authed.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		authed.POST("/fixes", h.ingestFix)
		authed.DELETE("/entities/:id", h.deregisterEntity)

		authed.PUT("/thresholds", h.setThreshold)
		authed.DELETE("/thresholds/:vehicleId", h.deleteThreshold)

		authed.POST("/zones", h.createZone)
		authed.DELETE("/zones/:id", h.deleteZone)
	}

	api.GET("/entities", h.getEntities)
	api.GET("/alerts", h.getAlerts)
	api.GET("/thresholds", h.listThresholds)
	api.GET("/thresholds/:vehicleId", h.getThreshold)
	api.GET("/zones", h.listZones)

	api.GET("/system/health", h.healthCheck)
}
