package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmos/crop-service/internal/catalog"
)

func TestSortForDisplay(t *testing.T) {
	e := NewEngine(catalog.Default())
	ref := mustDate(t, "2025-12-05")

	records := []CropRecord{
		{Name: "Onions", Planted: "2025-06-28"},     // ready 2025-11-25, harvested
		{Name: "Sweet Corn", Planted: "2025-11-15"}, // ready 2026-02-08, growing
		{Name: "Cabbages", Planted: "2025-08-05"},   // ready 2025-11-03, harvested
		{Name: "Beetroot", Planted: "2025-11-30"},   // ready 2026-01-29, growing
	}
	out := e.Enrich(records, ref)
	SortForDisplay(out)

	got := make([]string, len(out))
	for i := range out {
		got[i] = out[i].Name
	}

	// Growing first by soonest ready date, then harvested by most recently
	// ready.
	assert.Equal(t, []string{"Beetroot", "Sweet Corn", "Onions", "Cabbages"}, got)
}

func TestSortForDisplayInvalidRecordsLast(t *testing.T) {
	e := NewEngine(catalog.Default())
	ref := mustDate(t, "2025-12-05")

	records := []CropRecord{
		{Name: "Cabbages", Planted: "garbage"},
		{Name: "Beetroot", Planted: "2025-11-30"},
	}
	out := e.Enrich(records, ref)
	SortForDisplay(out)

	require.Len(t, out, 2)
	assert.Equal(t, "Beetroot", out[0].Name)
	assert.False(t, out[1].Valid())
}

func TestSortForDisplayStable(t *testing.T) {
	e := NewEngine(catalog.Default())
	ref := mustDate(t, "2025-12-05")

	// Two growing crops with identical ready dates keep input order.
	records := []CropRecord{
		{Name: "Beetroot", Planted: "2025-11-30", Quantity: "first"},
		{Name: "Beetroot", Planted: "2025-11-30", Quantity: "second"},
	}
	out := e.Enrich(records, ref)
	SortForDisplay(out)

	assert.Equal(t, "first", out[0].Quantity)
	assert.Equal(t, "second", out[1].Quantity)
}

func TestSummarize(t *testing.T) {
	e := NewEngine(catalog.Default())
	ref := mustDate(t, "2025-12-05")

	records := []CropRecord{
		{Name: "Sweet Corn", Planted: "2025-11-15"},
		{Name: "Beetroot", Planted: "2025-11-30"},
		{Name: "Cabbages", Planted: "2025-08-05"},
		{Name: "Onions", Planted: "bad-date"},
	}
	s := Summarize(e.Enrich(records, ref))

	assert.Equal(t, Summary{Active: 2, Harvested: 1, Invalid: 1}, s)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
