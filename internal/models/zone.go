package models

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Zone is a designated pedestrian-pathway region, an axis-aligned
// rectangle in the warehouse frame.
type Zone struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	MinX      float64   `json:"min_x"`
	MinY      float64   `json:"min_y"`
	MaxX      float64   `json:"max_x"`
	MaxY      float64   `json:"max_y"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contains reports whether p lies inside the zone, boundary included.
func (z Zone) Contains(p r2.Vec) bool {
	return p.X >= z.MinX && p.X <= z.MaxX && p.Y >= z.MinY && p.Y <= z.MaxY
}
