package stage

import "time"

// PlantByEntry is one row of the harvest planner: the latest planting date
// that still reaches harvest readiness by the target date.
type PlantByEntry struct {
	Species string `json:"species"`
	PlantBy string `json:"plantBy"`
}

// PlantBySchedule computes, for every cataloged species, the plant-by date
// for the given target harvest date. Entries are sorted by species name.
func (e *Engine) PlantBySchedule(target time.Time) []PlantByEntry {
	day := DateOf(target)

	names := e.catalog.Species()
	entries := make([]PlantByEntry, 0, len(names))
	for _, name := range names {
		cfg, _ := e.catalog.Lookup(name)
		entries = append(entries, PlantByEntry{
			Species: name,
			PlantBy: day.AddDate(0, 0, -cfg.TotalDurationDays).Format(DateFormat),
		})
	}
	return entries
}
