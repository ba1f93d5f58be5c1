// Package registry holds the latest known state for every tracked
// vehicle and pedestrian. It does no cross-entity computation: it
// records fixes, estimates velocity, and hands out snapshots split into
// live and stale entities.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pathguard/collision-engine/internal/models"
)

// ErrStaleTimestamp rejects an out-of-order fix. A lossy link may deliver
// fixes out of order; an older fix must never regress entity state.
var ErrStaleTimestamp = errors.New("fix timestamp not newer than last update")

// ErrUnknownEntity is returned by Deregister for an entity never seen.
var ErrUnknownEntity = errors.New("unknown entity")

// ZoneResolver maps a position to the IDs of the pedestrian zones
// containing it. Supplied by the config service so the registry stays
// free of zone storage.
type ZoneResolver func(p r2.Vec) []string

// record is the mutable per-entity state. Its mutex serializes upserts
// for one entity while upserts for distinct entities run concurrently.
// The anchor is the last position accepted as real movement; fixes that
// stay within the jitter filter of it are treated as localization noise.
type record struct {
	mu        sync.Mutex
	entity    models.Entity
	anchorPos r2.Vec
	anchorAt  time.Time
}

// Registry is the entity store. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]*record

	livenessWindow time.Duration
	jitterFilter   float64
	zonesAt        ZoneResolver
	logger         *logrus.Logger
}

// New creates a Registry. jitterFilter is the minimum displacement in
// metres a fix must show before position and velocity update; zero
// disables the filter. resolver may be nil, in which case entities carry
// no zone membership.
func New(livenessWindow time.Duration, jitterFilter float64, resolver ZoneResolver, logger *logrus.Logger) *Registry {
	if resolver == nil {
		resolver = func(r2.Vec) []string { return nil }
	}
	return &Registry{
		entities:       make(map[string]*record),
		livenessWindow: livenessWindow,
		jitterFilter:   jitterFilter,
		zonesAt:        resolver,
		logger:         logger,
	}
}

// Upsert records a fix. The first fix for an entity creates it with zero
// velocity; later fixes update position and re-estimate velocity from
// the displacement since the last accepted movement. A fix that moved
// less than the jitter filter from the anchor refreshes liveness, kind,
// and zones but holds position and velocity: localization jitter between
// closely spaced fixes would otherwise show up as large spurious
// velocities. Fixes not strictly newer than the stored last-update fail
// with ErrStaleTimestamp and change nothing.
func (r *Registry) Upsert(fix models.Fix) error {
	if fix.EntityID == "" {
		return fmt.Errorf("fix has empty entity id")
	}

	rec := r.getOrCreate(fix.EntityID)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if !rec.entity.LastUpdate.IsZero() && !fix.Timestamp.After(rec.entity.LastUpdate) {
		return fmt.Errorf("entity %s: %w", fix.EntityID, ErrStaleTimestamp)
	}

	pos := fix.Position()
	if rec.entity.LastUpdate.IsZero() {
		rec.entity = models.Entity{
			ID:       fix.EntityID,
			Kind:     fix.Kind,
			Position: pos,
			Velocity: r2.Vec{},
		}
		rec.anchorPos = pos
		rec.anchorAt = fix.Timestamp
	} else if disp := r2.Sub(pos, rec.anchorPos); r2.Norm(disp) >= r.jitterFilter {
		dt := fix.Timestamp.Sub(rec.anchorAt).Seconds()
		rec.entity.Position = pos
		rec.entity.Velocity = r2.Scale(1/dt, disp)
		rec.anchorPos = pos
		rec.anchorAt = fix.Timestamp
	}
	rec.entity.Kind = fix.Kind
	rec.entity.LastUpdate = fix.Timestamp
	rec.entity.Zones = r.zonesAt(rec.entity.Position)
	return nil
}

// Deregister removes an entity for good. The registry otherwise never
// deletes: stale entities are kept for audit while the physical device
// may still be active.
func (r *Registry) Deregister(entityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entities[entityID]; !ok {
		return fmt.Errorf("entity %s: %w", entityID, ErrUnknownEntity)
	}
	delete(r.entities, entityID)
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{
			"component": "registry",
			"entity_id": entityID,
		}).Info("Entity deregistered")
	}
	return nil
}

// Snapshot returns an immutable view of all entities as of now, split
// into live (last fix within the liveness window) and stale. Entities in
// both lists are copies; mutating them does not affect the registry.
func (r *Registry) Snapshot(now time.Time) models.Snapshot {
	r.mu.RLock()
	recs := make([]*record, 0, len(r.entities))
	for _, rec := range r.entities {
		recs = append(recs, rec)
	}
	r.mu.RUnlock()

	snap := models.Snapshot{TakenAt: now}
	for _, rec := range recs {
		rec.mu.Lock()
		e := rec.entity
		e.Zones = append([]string(nil), rec.entity.Zones...)
		rec.mu.Unlock()

		if now.Sub(e.LastUpdate) <= r.livenessWindow {
			snap.Live = append(snap.Live, e)
		} else {
			snap.Stale = append(snap.Stale, e)
		}
	}

	// Deterministic ordering keeps tick evaluation and tests stable.
	sort.Slice(snap.Live, func(i, j int) bool { return snap.Live[i].ID < snap.Live[j].ID })
	sort.Slice(snap.Stale, func(i, j int) bool { return snap.Stale[i].ID < snap.Stale[j].ID })
	return snap
}

// Known reports whether an entity has ever been seen.
func (r *Registry) Known(entityID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entities[entityID]
	return ok
}

func (r *Registry) getOrCreate(entityID string) *record {
	r.mu.RLock()
	rec, ok := r.entities[entityID]
	r.mu.RUnlock()
	if ok {
		return rec
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok = r.entities[entityID]; ok {
		return rec
	}
	rec = &record{}
	r.entities[entityID] = rec
	return rec
}
