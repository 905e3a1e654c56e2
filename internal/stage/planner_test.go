package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmos/crop-service/internal/catalog"
)

func TestPlantBySchedule(t *testing.T) {
	e := NewEngine(catalog.Default())

	entries := e.PlantBySchedule(mustDate(t, "2026-03-01"))
	require.Len(t, entries, 5)

	byName := map[string]string{}
	for _, en := range entries {
		byName[en.Species] = en.PlantBy
	}

	assert.Equal(t, "2025-12-31", byName["Beetroot"])   // -60
	assert.Equal(t, "2025-12-06", byName["Sweet Corn"]) // -85
	assert.Equal(t, "2025-12-01", byName["Cabbages"])   // -90
	assert.Equal(t, "2025-10-02", byName["Onions"])     // -150
	assert.Equal(t, "2025-12-26", byName["Okra"])       // -65
}

func TestPlantByScheduleSortedBySpecies(t *testing.T) {
	e := NewEngine(catalog.Default())

	entries := e.PlantBySchedule(mustDate(t, "2026-03-01"))
	names := make([]string, len(entries))
	for i, en := range entries {
		names[i] = en.Species
	}
	assert.Equal(t, []string{"Beetroot", "Cabbages", "Okra", "Onions", "Sweet Corn"}, names)
}
