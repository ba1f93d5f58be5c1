package v1

import (
	"github.com/pathguard/collision-engine/internal/models"
)

// DTOToFix converts an inbound fix request to the domain model.
func DTOToFix(dto FixRequest) models.Fix {
	return models.Fix{
		EntityID:  dto.EntityID,
		Kind:      kindFromString(dto.Kind),
		X:         dto.X,
		Y:         dto.Y,
		Timestamp: dto.Timestamp,
	}
}

// DTOToThreshold converts a threshold request to the domain model.
func DTOToThreshold(dto ThresholdRequest) *models.ThresholdConfig {
	return &models.ThresholdConfig{
		VehicleID:                    dto.VehicleID,
		ProximityDistance:            dto.ProximityDistance,
		WarningDistance:              dto.WarningDistance,
		BrakingDistance:              dto.BrakingDistance,
		PedestrianZoneBandMultiplier: dto.PedestrianZoneBandMultiplier,
	}
}

// ThresholdToResponse converts a threshold model to its response DTO.
func ThresholdToResponse(model *models.ThresholdConfig) *ThresholdResponse {
	return &ThresholdResponse{
		VehicleID:                    model.VehicleID,
		ProximityDistance:            model.ProximityDistance,
		WarningDistance:              model.WarningDistance,
		BrakingDistance:              model.BrakingDistance,
		PedestrianZoneBandMultiplier: model.PedestrianZoneBandMultiplier,
		UpdatedAt:                    model.UpdatedAt,
	}
}

// ThresholdsToResponses converts a slice of threshold models.
func ThresholdsToResponses(ms []*models.ThresholdConfig) []*ThresholdResponse {
	responses := make([]*ThresholdResponse, len(ms))
	for i, m := range ms {
		responses[i] = ThresholdToResponse(m)
	}
	return responses
}

// DTOToZone converts a zone request to the domain model.
func DTOToZone(dto ZoneRequest) *models.Zone {
	return &models.Zone{
		Name: dto.Name,
		MinX: dto.MinX,
		MinY: dto.MinY,
		MaxX: dto.MaxX,
		MaxY: dto.MaxY,
	}
}

// ZoneToResponse converts a zone model to its response DTO.
func ZoneToResponse(model *models.Zone) *ZoneResponse {
	return &ZoneResponse{
		ID:        model.ID,
		Name:      model.Name,
		MinX:      model.MinX,
		MinY:      model.MinY,
		MaxX:      model.MaxX,
		MaxY:      model.MaxY,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// ZonesToResponses converts a slice of zone models.
func ZonesToResponses(ms []*models.Zone) []*ZoneResponse {
	responses := make([]*ZoneResponse, len(ms))
	for i, m := range ms {
		responses[i] = ZoneToResponse(m)
	}
	return responses
}

// SnapshotToResponse flattens a registry snapshot, marking stale entries.
func SnapshotToResponse(snap models.Snapshot) SnapshotResponse {
	resp := SnapshotResponse{TakenAt: snap.TakenAt}
	for _, e := range snap.Live {
		resp.Entities = append(resp.Entities, entityToResponse(e, false))
	}
	for _, e := range snap.Stale {
		resp.Entities = append(resp.Entities, entityToResponse(e, true))
	}
	return resp
}

func entityToResponse(e models.Entity, stale bool) EntityResponse {
	return EntityResponse{
		ID:         e.ID,
		Kind:       string(e.Kind),
		X:          e.Position.X,
		Y:          e.Position.Y,
		VX:         e.Velocity.X,
		VY:         e.Velocity.Y,
		LastUpdate: e.LastUpdate,
		Zones:      e.Zones,
		Stale:      stale,
	}
}

// AlertStatesToResponses converts the decision engine's states.
func AlertStatesToResponses(states []models.AlertState) []AlertStateResponse {
	responses := make([]AlertStateResponse, len(states))
	for i, s := range states {
		responses[i] = AlertStateResponse{
			VehicleID:   s.VehicleID,
			Level:       s.Level.String(),
			GoverningID: s.GoverningID,
			EnteredAt:   s.EnteredAt,
		}
	}
	return responses
}
