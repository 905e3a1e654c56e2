package geo

import (
	"errors"
	"fmt"
)

// Geometry is the subset of a GeoJSON geometry produced by the map drawing
// widget. Coordinates are rings of [lon, lat] pairs; only the first ring
// (the outer boundary) is used.
type Geometry struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// ErrNotPolygon is returned when a geometry is not of type Polygon.
var ErrNotPolygon = errors.New("geometry is not a Polygon")

// OuterRing extracts the first coordinate ring of a Polygon geometry.
func (g *Geometry) OuterRing() ([]Point, error) {
	if g.Type != "Polygon" {
		return nil, fmt.Errorf("%w: got %q", ErrNotPolygon, g.Type)
	}
	if len(g.Coordinates) == 0 {
		return nil, nil
	}

	raw := g.Coordinates[0]
	ring := make([]Point, 0, len(raw))
	for i, pair := range raw {
		if len(pair) < 2 {
			return nil, fmt.Errorf("ring vertex %d: expected [lon, lat] pair", i)
		}
		ring = append(ring, Point{Lon: pair[0], Lat: pair[1]})
	}
	return ring, nil
}

// PolygonArea computes the area of a GeoJSON Polygon geometry's outer ring.
func PolygonArea(g *Geometry) (float64, error) {
	ring, err := g.OuterRing()
	if err != nil {
		return 0, err
	}
	return RingArea(ring), nil
}
