package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathguard/collision-engine/internal/models"
	"github.com/pathguard/collision-engine/internal/service"
)

// ConfigStore is the Postgres-backed store for per-vehicle thresholds
// and pedestrian zone definitions.
type ConfigStore struct {
	db *pgxpool.Pool
}

// NewConfigStore creates a ConfigStore over the given pool.
func NewConfigStore(db *pgxpool.Pool) service.ConfigStore {
	return &ConfigStore{db: db}
}

// UpsertThreshold writes or replaces the threshold row for a vehicle.
func (s *ConfigStore) UpsertThreshold(ctx context.Context, cfg *models.ThresholdConfig) error {
	query := `
		INSERT INTO vehicle_thresholds (vehicle_id, proximity_m, warning_m, braking_m, zone_multiplier)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (vehicle_id) DO UPDATE SET
			proximity_m = EXCLUDED.proximity_m,
			warning_m = EXCLUDED.warning_m,
			braking_m = EXCLUDED.braking_m,
			zone_multiplier = EXCLUDED.zone_multiplier,
			updated_at = NOW()
		RETURNING updated_at;
	`
	err := s.db.QueryRow(ctx, query,
		cfg.VehicleID,
		cfg.ProximityDistance,
		cfg.WarningDistance,
		cfg.BrakingDistance,
		cfg.PedestrianZoneBandMultiplier,
	).Scan(&cfg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert threshold for %s: %w", cfg.VehicleID, err)
	}
	return nil
}

// GetThreshold returns the threshold row for one vehicle.
func (s *ConfigStore) GetThreshold(ctx context.Context, vehicleID string) (*models.ThresholdConfig, error) {
	cfg := &models.ThresholdConfig{}
	query := `
		SELECT vehicle_id, proximity_m, warning_m, braking_m, zone_multiplier, updated_at
		FROM vehicle_thresholds
		WHERE vehicle_id = $1;
	`
	err := s.db.QueryRow(ctx, query, vehicleID).Scan(
		&cfg.VehicleID,
		&cfg.ProximityDistance,
		&cfg.WarningDistance,
		&cfg.BrakingDistance,
		&cfg.PedestrianZoneBandMultiplier,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("threshold for vehicle %s: %w", vehicleID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get threshold for %s: %w", vehicleID, err)
	}
	return cfg, nil
}

// ListThresholds returns all threshold rows.
func (s *ConfigStore) ListThresholds(ctx context.Context) ([]*models.ThresholdConfig, error) {
	query := `
		SELECT vehicle_id, proximity_m, warning_m, braking_m, zone_multiplier, updated_at
		FROM vehicle_thresholds
		ORDER BY vehicle_id;
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list thresholds: %w", err)
	}
	defer rows.Close()

	configs := make([]*models.ThresholdConfig, 0)
	for rows.Next() {
		cfg := &models.ThresholdConfig{}
		err := rows.Scan(
			&cfg.VehicleID,
			&cfg.ProximityDistance,
			&cfg.WarningDistance,
			&cfg.BrakingDistance,
			&cfg.PedestrianZoneBandMultiplier,
			&cfg.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan threshold row: %w", err)
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating thresholds: %w", err)
	}
	return configs, nil
}

// DeleteThreshold removes a vehicle's threshold row.
func (s *ConfigStore) DeleteThreshold(ctx context.Context, vehicleID string) error {
	cmdTag, err := s.db.Exec(ctx, `DELETE FROM vehicle_thresholds WHERE vehicle_id = $1;`, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to delete threshold for %s: %w", vehicleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("threshold for vehicle %s: %w", vehicleID, service.ErrNotFound)
	}
	return nil
}

// CreateZone inserts a pedestrian zone.
func (s *ConfigStore) CreateZone(ctx context.Context, zone *models.Zone) error {
	query := `
		INSERT INTO pedestrian_zones (name, min_x, min_y, max_x, max_y)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;
	`
	err := s.db.QueryRow(ctx, query,
		zone.Name,
		zone.MinX,
		zone.MinY,
		zone.MaxX,
		zone.MaxY,
	).Scan(&zone.ID, &zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create zone: %w", err)
	}
	return nil
}

// ListZones returns all pedestrian zones.
func (s *ConfigStore) ListZones(ctx context.Context) ([]*models.Zone, error) {
	query := `
		SELECT id, name, min_x, min_y, max_x, max_y, created_at, updated_at
		FROM pedestrian_zones
		ORDER BY name;
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.Zone, 0)
	for rows.Next() {
		zone := &models.Zone{}
		err := rows.Scan(
			&zone.ID,
			&zone.Name,
			&zone.MinX,
			&zone.MinY,
			&zone.MaxX,
			&zone.MaxY,
			&zone.CreatedAt,
			&zone.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating zones: %w", err)
	}
	return zones, nil
}

// DeleteZone removes a zone by ID.
func (s *ConfigStore) DeleteZone(ctx context.Context, id string) error {
	cmdTag, err := s.db.Exec(ctx, `DELETE FROM pedestrian_zones WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete zone %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("zone %s: %w", id, service.ErrNotFound)
	}
	return nil
}
