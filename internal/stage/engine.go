package stage

import (
	"fmt"
	"time"

	"github.com/farmos/crop-service/internal/catalog"
)

// Labels used when no configured stage applies.
const (
	readyStageName = "Ready"
	readyStageIcon = "✅"
	readyCareStep  = "Harvest and cure."

	growingStageName = "Growing"
	growingStageIcon = "🌿"
)

// Engine derives growth state from the species catalog. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an engine over the given species catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Catalog returns the engine's species catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Enrich computes derived fields for each record against refDate, preserving
// input order. refDate is normalized to a civil date before any arithmetic.
// A record whose planting date fails to parse is returned with ParseError set
// and zeroed derived fields; it never aborts the batch.
func (e *Engine) Enrich(records []CropRecord, refDate time.Time) []EnrichedCropRecord {
	ref := DateOf(refDate)

	enriched := make([]EnrichedCropRecord, 0, len(records))
	for _, rec := range records {
		enriched = append(enriched, e.enrichOne(rec, ref))
	}

	observeEnrichBatch(enriched)
	return enriched
}

func (e *Engine) enrichOne(rec CropRecord, ref time.Time) EnrichedCropRecord {
	out := EnrichedCropRecord{CropRecord: rec}

	planted, err := ParseDate(rec.Planted)
	if err != nil {
		out.ParseError = fmt.Sprintf("invalid planting date %q: expected YYYY-MM-DD", rec.Planted)
		return out
	}

	cfg, _ := e.catalog.Lookup(rec.Name)
	totalDays := cfg.TotalDurationDays

	// Both dates are UTC midnights, so the difference is a whole number of
	// days. Negative when planting lies in the future.
	daysPassed := int(ref.Sub(planted).Hours() / 24)

	out.PlantedStr = planted.Format(DateFormat)
	out.ReadyDate = planted.AddDate(0, 0, totalDays)
	out.DaysPassed = daysPassed
	out.DaysLeft = totalDays - daysPassed
	out.IsHarvested = out.DaysLeft < 0

	out.CurrentStageName, out.CurrentStageIcon, out.CareSteps =
		resolveStage(cfg, daysPassed, totalDays)

	if out.IsHarvested {
		out.ProgressPercent = 100
	} else {
		out.ProgressPercent = clampPercent(daysPassed * 100 / totalDays)
	}

	if out.IsHarvested {
		out.Status = "Harvested"
		out.OverdueLabel = fmt.Sprintf("Overdue by %d", -out.DaysLeft)
	} else {
		out.Status = fmt.Sprintf("%s %s", out.CurrentStageIcon, out.CurrentStageName)
		out.OverdueLabel = fmt.Sprintf("%d days left", out.DaysLeft)
	}

	return out
}

// resolveStage walks the staged schedule with a running day offset and picks
// the first stage covering daysPassed. Stage durations need not sum to the
// total duration; when nothing matches the crop is either still "Growing"
// (no stage data covers it and the total has not elapsed) or "Ready".
func resolveStage(cfg catalog.SpeciesConfig, daysPassed, totalDays int) (name, icon string, care []string) {
	accumulated := 0
	for _, s := range cfg.Stages {
		if accumulated <= daysPassed && daysPassed < accumulated+s.DurationDays {
			return s.Name, s.Icon, s.CareActions
		}
		accumulated += s.DurationDays
	}

	if len(cfg.Stages) == 0 && daysPassed < totalDays {
		return growingStageName, growingStageIcon, nil
	}
	return readyStageName, readyStageIcon, []string{readyCareStep}
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
