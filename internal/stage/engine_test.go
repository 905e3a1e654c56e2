package stage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmos/crop-service/internal/catalog"
)

func testEngine() *Engine {
	return NewEngine(catalog.Default())
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestEnrichBeetrootGermination(t *testing.T) {
	// Beetroot: total 60, stages Germination 10d, Leaf Growth 25d, Bulbing 25d.
	e := testEngine()

	records := []CropRecord{{Name: "Beetroot", Planted: "2025-11-30"}}
	out := e.Enrich(records, mustDate(t, "2025-12-05"))
	require.Len(t, out, 1)

	r := out[0]
	assert.Equal(t, 5, r.DaysPassed)
	assert.Equal(t, "Germination", r.CurrentStageName)
	assert.Equal(t, "🌱", r.CurrentStageIcon)
	assert.Equal(t, []string{"Thin seedlings to 5cm", "Consistent moisture"}, r.CareSteps)
	assert.Equal(t, 55, r.DaysLeft)
	assert.False(t, r.IsHarvested)
	assert.Equal(t, 8, r.ProgressPercent) // floor(5/60*100)
	assert.Equal(t, "🌱 Germination", r.Status)
	assert.Equal(t, "55 days left", r.OverdueLabel)
	assert.Equal(t, "2025-11-30", r.PlantedStr)
}

func TestEnrichBeetrootOverdue(t *testing.T) {
	e := testEngine()

	records := []CropRecord{{Name: "Beetroot", Planted: "2025-11-30"}}
	out := e.Enrich(records, mustDate(t, "2026-02-15"))
	require.Len(t, out, 1)

	r := out[0]
	assert.Equal(t, 77, r.DaysPassed)
	assert.True(t, r.IsHarvested)
	assert.Equal(t, 100, r.ProgressPercent)
	assert.Equal(t, -17, r.DaysLeft)
	assert.Equal(t, "Harvested", r.Status)
	assert.Equal(t, "Overdue by 17", r.OverdueLabel)
}

func TestEnrichStageBoundaries(t *testing.T) {
	// Beetroot stage windows: Germination [0,10), Leaf Growth [10,35),
	// Bulbing [35,60), then Ready.
	e := testEngine()

	tests := []struct {
		refDate   string
		wantStage string
	}{
		{"2025-11-30", "Germination"}, // day 0
		{"2025-12-09", "Germination"}, // day 9
		{"2025-12-10", "Leaf Growth"}, // day 10
		{"2026-01-03", "Leaf Growth"}, // day 34
		{"2026-01-04", "Bulbing"},     // day 35
		{"2026-01-28", "Bulbing"},     // day 59
		{"2026-01-29", "Ready"},       // day 60
	}

	for _, tt := range tests {
		t.Run(tt.refDate, func(t *testing.T) {
			out := e.Enrich([]CropRecord{{Name: "Beetroot", Planted: "2025-11-30"}}, mustDate(t, tt.refDate))
			assert.Equal(t, tt.wantStage, out[0].CurrentStageName)
		})
	}
}

func TestEnrichExactTotalDurationBoundary(t *testing.T) {
	// daysPassed == totalDuration: daysLeft is 0 and the crop is NOT yet
	// harvested (strict < 0 boundary).
	e := testEngine()

	out := e.Enrich([]CropRecord{{Name: "Beetroot", Planted: "2025-11-30"}}, mustDate(t, "2026-01-29"))
	r := out[0]

	assert.Equal(t, 60, r.DaysPassed)
	assert.Equal(t, 0, r.DaysLeft)
	assert.False(t, r.IsHarvested)
	assert.Equal(t, 100, r.ProgressPercent)
	assert.Equal(t, "0 days left", r.OverdueLabel)

	// One day later it flips.
	r = e.Enrich([]CropRecord{{Name: "Beetroot", Planted: "2025-11-30"}}, mustDate(t, "2026-01-30"))[0]
	assert.True(t, r.IsHarvested)
	assert.Equal(t, "Overdue by 1", r.OverdueLabel)
}

func TestEnrichReadyStageFallback(t *testing.T) {
	e := testEngine()

	out := e.Enrich([]CropRecord{{Name: "Beetroot", Planted: "2025-01-01"}}, mustDate(t, "2025-06-01"))
	r := out[0]

	assert.Equal(t, "Ready", r.CurrentStageName)
	assert.Equal(t, "✅", r.CurrentStageIcon)
	assert.Equal(t, []string{"Harvest and cure."}, r.CareSteps)
}

func TestEnrichUnknownSpeciesFallsBack(t *testing.T) {
	// Unknown species use the 90-day no-stage fallback silently.
	e := testEngine()

	out := e.Enrich([]CropRecord{{Name: "Dragonfruit", Planted: "2025-11-01"}}, mustDate(t, "2025-12-01"))
	r := out[0]

	require.True(t, r.Valid())
	assert.Equal(t, 30, r.DaysPassed)
	assert.Equal(t, 60, r.DaysLeft)
	assert.Equal(t, "Growing", r.CurrentStageName)
	assert.Equal(t, 33, r.ProgressPercent) // floor(30/90*100)
}

func TestEnrichZeroStageSpecies(t *testing.T) {
	// Okra has a total duration but no stage breakdown.
	e := testEngine()

	t.Run("still growing", func(t *testing.T) {
		out := e.Enrich([]CropRecord{{Name: "Okra", Planted: "2025-11-01"}}, mustDate(t, "2025-12-01"))
		assert.Equal(t, "Growing", out[0].CurrentStageName)
		assert.Empty(t, out[0].CareSteps)
		assert.False(t, out[0].IsHarvested)
	})

	t.Run("past total duration", func(t *testing.T) {
		out := e.Enrich([]CropRecord{{Name: "Okra", Planted: "2025-08-01"}}, mustDate(t, "2025-12-01"))
		assert.Equal(t, "Ready", out[0].CurrentStageName)
		assert.True(t, out[0].IsHarvested)
	})
}

func TestEnrichFuturePlanting(t *testing.T) {
	e := testEngine()

	out := e.Enrich([]CropRecord{{Name: "Beetroot", Planted: "2026-01-10"}}, mustDate(t, "2025-12-31"))
	r := out[0]

	assert.Equal(t, -10, r.DaysPassed)
	assert.Equal(t, 70, r.DaysLeft)
	assert.False(t, r.IsHarvested)
	assert.Equal(t, 0, r.ProgressPercent)
}

func TestEnrichUnparseableDateDoesNotAbortBatch(t *testing.T) {
	e := testEngine()

	records := []CropRecord{
		{Name: "Beetroot", Planted: "2025-11-30"},
		{Name: "Cabbages", Planted: "not-a-date"},
		{Name: "Onions", Planted: "2025-06-28"},
	}
	out := e.Enrich(records, mustDate(t, "2025-12-05"))
	require.Len(t, out, 3)

	assert.True(t, out[0].Valid())
	assert.False(t, out[1].Valid())
	assert.Contains(t, out[1].ParseError, "not-a-date")
	assert.Equal(t, "Cabbages", out[1].Name)
	assert.True(t, out[2].Valid())
}

func TestEnrichEmptyInput(t *testing.T) {
	e := testEngine()

	out := e.Enrich(nil, mustDate(t, "2025-12-05"))
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestEnrichPreservesInputOrder(t *testing.T) {
	e := testEngine()

	records := []CropRecord{
		{Name: "Onions", Planted: "2025-06-28"},
		{Name: "Sweet Corn", Planted: "2025-11-15"},
		{Name: "Beetroot", Planted: "2025-11-30"},
	}
	out := e.Enrich(records, mustDate(t, "2025-12-05"))
	require.Len(t, out, 3)

	for i := range records {
		assert.Equal(t, records[i].Name, out[i].Name)
	}
}

func TestEnrichIdempotent(t *testing.T) {
	e := testEngine()
	ref := mustDate(t, "2025-12-05")

	records := []CropRecord{
		{Name: "Sweet Corn", Planted: "2025-11-15", Quantity: "600 seedlings", Area: "4150 m²", RainfallMm: 45},
		{Name: "Beetroot", Planted: "2025-11-30"},
	}

	first := e.Enrich(records, ref)
	second := e.Enrich(records, ref)
	assert.Equal(t, first, second)
}

func TestEnrichProgressMonotonic(t *testing.T) {
	// Progress never decreases as the reference date advances, saturating
	// at 100.
	e := testEngine()

	planted := "2025-11-30"
	start := mustDate(t, "2025-11-25")

	prev := -1
	for day := 0; day < 90; day++ {
		ref := start.AddDate(0, 0, day)
		out := e.Enrich([]CropRecord{{Name: "Beetroot", Planted: planted}}, ref)
		p := out[0].ProgressPercent

		assert.GreaterOrEqual(t, p, prev, "progress regressed at %s", ref.Format(DateFormat))
		assert.LessOrEqual(t, p, 100)
		prev = p
	}
	assert.Equal(t, 100, prev)
}

func TestEnrichNormalizesReferenceTime(t *testing.T) {
	// A reference instant with a time-of-day component yields the same
	// result as its civil date.
	e := testEngine()

	withTime := time.Date(2025, 12, 5, 17, 42, 9, 0, time.UTC)
	records := []CropRecord{{Name: "Beetroot", Planted: "2025-11-30"}}

	assert.Equal(t,
		e.Enrich(records, mustDate(t, "2025-12-05")),
		e.Enrich(records, withTime),
	)
}

func TestEnrichCarriesInputFieldsThrough(t *testing.T) {
	e := testEngine()

	rec := CropRecord{
		Name:       "Sweet Corn",
		Planted:    "2025-11-15",
		Quantity:   "600 seedlings",
		Area:       "4150 m²",
		RainfallMm: 45,
	}
	out := e.Enrich([]CropRecord{rec}, mustDate(t, "2025-12-05"))
	require.Len(t, out, 1)

	assert.Equal(t, rec, out[0].CropRecord)
}
