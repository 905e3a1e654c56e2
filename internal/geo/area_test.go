package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingAreaDegenerateInputs(t *testing.T) {
	p1 := Point{Lon: 30.60, Lat: -22.86}
	p2 := Point{Lon: 30.61, Lat: -22.86}

	tests := []struct {
		name string
		ring []Point
	}{
		{"nil", nil},
		{"empty", []Point{}},
		{"one vertex", []Point{p1}},
		{"two vertices", []Point{p1, p2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, RingArea(tt.ring))
		})
	}
}

func TestRingAreaEquatorSquare(t *testing.T) {
	// 0.01° x 0.01° square at the equator: one side is ~1113.2m, so the area
	// should be near 1.239e6 m² (spherical approximation, a few percent).
	ring := []Point{
		{Lon: 0, Lat: 0},
		{Lon: 0, Lat: 0.01},
		{Lon: 0.01, Lat: 0.01},
		{Lon: 0.01, Lat: 0},
	}

	area := RingArea(ring)
	assert.InEpsilon(t, 1.239e6, area, 0.03)
}

func TestRingAreaWindingInvariant(t *testing.T) {
	ring := []Point{
		{Lon: 30.60, Lat: -22.86},
		{Lon: 30.60, Lat: -22.85},
		{Lon: 30.62, Lat: -22.85},
		{Lon: 30.62, Lat: -22.86},
	}

	reversed := make([]Point, len(ring))
	for i := range ring {
		reversed[i] = ring[len(ring)-1-i]
	}

	assert.InDelta(t, RingArea(ring), RingArea(reversed), 1e-6)
}

func TestRingAreaCyclicShiftInvariant(t *testing.T) {
	ring := []Point{
		{Lon: 30.60, Lat: -22.86},
		{Lon: 30.60, Lat: -22.85},
		{Lon: 30.62, Lat: -22.85},
		{Lon: 30.62, Lat: -22.86},
	}
	want := RingArea(ring)

	for shift := 1; shift < len(ring); shift++ {
		shifted := append(append([]Point{}, ring[shift:]...), ring[:shift]...)
		assert.InDelta(t, want, RingArea(shifted), 1e-6, "shift %d", shift)
	}
}

func TestRingAreaExplicitlyClosedRing(t *testing.T) {
	// Map widgets often emit the first vertex again as the last. The closing
	// segment contributes zero, so the result matches the open form.
	open := []Point{
		{Lon: 30.60, Lat: -22.86},
		{Lon: 30.60, Lat: -22.85},
		{Lon: 30.62, Lat: -22.85},
		{Lon: 30.62, Lat: -22.86},
	}
	closed := append(append([]Point{}, open...), open[0])

	assert.InDelta(t, RingArea(open), RingArea(closed), 1e-6)
}

func TestRingAreaSelfIntersectingDoesNotPanic(t *testing.T) {
	// Bowtie: the formula still yields a finite non-negative number.
	ring := []Point{
		{Lon: 0, Lat: 0},
		{Lon: 0.01, Lat: 0.01},
		{Lon: 0.01, Lat: 0},
		{Lon: 0, Lat: 0.01},
	}

	area := RingArea(ring)
	assert.GreaterOrEqual(t, area, 0.0)
}

func TestPolygonAreaFromGeoJSON(t *testing.T) {
	payload := `{
		"type": "Polygon",
		"coordinates": [[[0,0],[0,0.01],[0.01,0.01],[0.01,0],[0,0]]]
	}`

	var g Geometry
	require.NoError(t, json.Unmarshal([]byte(payload), &g))

	area, err := PolygonArea(&g)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.239e6, area, 0.03)
}

func TestPolygonAreaRejectsNonPolygon(t *testing.T) {
	g := Geometry{Type: "LineString"}

	_, err := PolygonArea(&g)
	assert.ErrorIs(t, err, ErrNotPolygon)
}

func TestPolygonAreaEmptyCoordinates(t *testing.T) {
	g := Geometry{Type: "Polygon"}

	area, err := PolygonArea(&g)
	require.NoError(t, err)
	assert.Zero(t, area)
}

func TestPolygonAreaMalformedVertex(t *testing.T) {
	g := Geometry{
		Type:        "Polygon",
		Coordinates: [][][]float64{{{0, 0}, {1}, {1, 1}}},
	}

	_, err := PolygonArea(&g)
	assert.Error(t, err)
}
