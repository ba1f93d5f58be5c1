// Package service holds the configuration service sitting between the
// HTTP API, the Postgres store, and the evaluation engine. Thresholds
// and zones are cached in memory so the engine reads them lock-cheap on
// every tick; the cache is hot-reloaded between cycles, never within one.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pathguard/collision-engine/internal/config"
	"github.com/pathguard/collision-engine/internal/models"
)

//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks

// ErrNotFound marks a lookup for a threshold or zone that does not exist.
var ErrNotFound = errors.New("not found")

// ConfigStore is the persistence contract the service needs. Implemented
// by the Postgres store.
type ConfigStore interface {
	UpsertThreshold(ctx context.Context, cfg *models.ThresholdConfig) error
	GetThreshold(ctx context.Context, vehicleID string) (*models.ThresholdConfig, error)
	ListThresholds(ctx context.Context) ([]*models.ThresholdConfig, error)
	DeleteThreshold(ctx context.Context, vehicleID string) error
	CreateZone(ctx context.Context, zone *models.Zone) error
	ListZones(ctx context.Context) ([]*models.Zone, error)
	DeleteZone(ctx context.Context, id string) error
}

// VehicleDirectory answers whether a vehicle has ever registered a fix.
// Implemented by the entity registry.
type VehicleDirectory interface {
	Known(entityID string) bool
}

// ConfigService is the contract consumed by the HTTP handler and the
// evaluation engine.
type ConfigService interface {
	SetThreshold(ctx context.Context, cfg *models.ThresholdConfig) error
	GetThreshold(ctx context.Context, vehicleID string) (*models.ThresholdConfig, error)
	ListThresholds(ctx context.Context) ([]*models.ThresholdConfig, error)
	DeleteThreshold(ctx context.Context, vehicleID string) error

	CreateZone(ctx context.Context, zone *models.Zone) error
	ListZones(ctx context.Context) ([]*models.Zone, error)
	DeleteZone(ctx context.Context, id string) error

	// Engine-facing reads served from the cache.
	BandsFor(vehicleID string) (models.Bands, float64)
	Zones() []models.Zone
	ZonesAt(p r2.Vec) []string

	Reload(ctx context.Context) error
	Start(ctx context.Context)
}

type configService struct {
	store     ConfigStore
	directory VehicleDirectory
	logger    *logrus.Logger
	cfg       *config.Config

	mu         sync.RWMutex
	thresholds map[string]models.ThresholdConfig
	zones      []models.Zone
	warned     map[string]bool // unknown vehicles already logged
}

// NewConfigService creates the service. directory may be nil, in which
// case unknown-vehicle filtering is disabled (useful in tests).
func NewConfigService(store ConfigStore, directory VehicleDirectory, logger *logrus.Logger, cfg *config.Config) ConfigService {
	return &configService{
		store:      store,
		directory:  directory,
		logger:     logger,
		cfg:        cfg,
		thresholds: make(map[string]models.ThresholdConfig),
		warned:     make(map[string]bool),
	}
}

// SetThreshold validates band ordering, persists the row, and refreshes
// the cache so the next tick sees it.
func (s *configService) SetThreshold(ctx context.Context, cfg *models.ThresholdConfig) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "config",
		"method":     "SetThreshold",
		"vehicle_id": cfg.VehicleID,
	})

	if cfg.BrakingDistance > cfg.WarningDistance || cfg.WarningDistance > cfg.ProximityDistance {
		return fmt.Errorf("service: bands must be ordered braking <= warning <= proximity")
	}
	if err := s.store.UpsertThreshold(ctx, cfg); err != nil {
		log.WithError(err).Error("Failed to upsert threshold in store")
		return fmt.Errorf("service: could not set threshold: %w", err)
	}

	if err := s.Reload(ctx); err != nil {
		log.WithError(err).Warn("Threshold saved but cache reload failed")
	}
	log.Info("Threshold config updated")
	return nil
}

func (s *configService) GetThreshold(ctx context.Context, vehicleID string) (*models.ThresholdConfig, error) {
	cfg, err := s.store.GetThreshold(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get threshold: %w", err)
	}
	return cfg, nil
}

func (s *configService) ListThresholds(ctx context.Context) ([]*models.ThresholdConfig, error) {
	configs, err := s.store.ListThresholds(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list thresholds: %w", err)
	}
	return configs, nil
}

func (s *configService) DeleteThreshold(ctx context.Context, vehicleID string) error {
	if err := s.store.DeleteThreshold(ctx, vehicleID); err != nil {
		return fmt.Errorf("service: could not delete threshold: %w", err)
	}
	if err := s.Reload(ctx); err != nil {
		s.logger.WithError(err).Warn("Threshold deleted but cache reload failed")
	}
	return nil
}

func (s *configService) CreateZone(ctx context.Context, zone *models.Zone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "config",
		"method":  "CreateZone",
		"name":    zone.Name,
	})
	if zone.MinX > zone.MaxX || zone.MinY > zone.MaxY {
		return fmt.Errorf("service: zone bounds must satisfy min <= max")
	}
	if err := s.store.CreateZone(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to create zone in store")
		return fmt.Errorf("service: could not create zone: %w", err)
	}
	if err := s.Reload(ctx); err != nil {
		log.WithError(err).Warn("Zone saved but cache reload failed")
	}
	log.WithField("zone_id", zone.ID).Info("Pedestrian zone created")
	return nil
}

func (s *configService) ListZones(ctx context.Context) ([]*models.Zone, error) {
	zones, err := s.store.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list zones: %w", err)
	}
	return zones, nil
}

func (s *configService) DeleteZone(ctx context.Context, id string) error {
	if err := s.store.DeleteZone(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete zone: %w", err)
	}
	if err := s.Reload(ctx); err != nil {
		s.logger.WithError(err).Warn("Zone deleted but cache reload failed")
	}
	return nil
}

// BandsFor returns the cached bands and pedestrian-zone multiplier for a
// vehicle, falling back to the engine-wide defaults when no row exists.
// A tracked vehicle must never be left without bands.
func (s *configService) BandsFor(vehicleID string) (models.Bands, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.thresholds[vehicleID]; ok {
		return t.Bands(), t.PedestrianZoneBandMultiplier
	}
	return models.Bands{
		Proximity: s.cfg.DefaultProximityMeters,
		Warning:   s.cfg.DefaultWarningMeters,
		Braking:   s.cfg.DefaultBrakingMeters,
	}, s.cfg.DefaultZoneMultiplier
}

// Zones returns a copy of the cached zone set.
func (s *configService) Zones() []models.Zone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Zone(nil), s.zones...)
}

// ZonesAt returns the IDs of the cached zones containing p.
func (s *configService) ZonesAt(p r2.Vec) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []string
	for _, z := range s.zones {
		if z.Contains(p) {
			ids = append(ids, z.ID)
		}
	}
	return ids
}

// Reload replaces the cache from the store. A threshold row for a
// vehicle never seen by the registry is logged once and excluded until
// the vehicle registers.
func (s *configService) Reload(ctx context.Context) error {
	configs, err := s.store.ListThresholds(ctx)
	if err != nil {
		return fmt.Errorf("service: could not reload thresholds: %w", err)
	}
	zones, err := s.store.ListZones(ctx)
	if err != nil {
		return fmt.Errorf("service: could not reload zones: %w", err)
	}

	thresholds := make(map[string]models.ThresholdConfig, len(configs))
	for _, cfg := range configs {
		if s.directory != nil && !s.directory.Known(cfg.VehicleID) {
			s.mu.Lock()
			seen := s.warned[cfg.VehicleID]
			s.warned[cfg.VehicleID] = true
			s.mu.Unlock()
			if !seen {
				s.logger.WithFields(logrus.Fields{
					"service":    "config",
					"vehicle_id": cfg.VehicleID,
				}).Warn("Threshold config references unknown vehicle, ignored until it registers")
			}
			continue
		}
		thresholds[cfg.VehicleID] = *cfg
	}

	zoneVals := make([]models.Zone, 0, len(zones))
	for _, z := range zones {
		zoneVals = append(zoneVals, *z)
	}

	s.mu.Lock()
	s.thresholds = thresholds
	s.zones = zoneVals
	s.mu.Unlock()
	return nil
}

// Start runs the hot-reload loop until the context is cancelled.
func (s *configService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.cfg.ConfigReloadInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping config reload loop")
				return
			case <-ticker.C:
				if err := s.Reload(ctx); err != nil {
					s.logger.WithError(err).Error("Config hot reload failed")
				}
			}
		}
	}()
}
