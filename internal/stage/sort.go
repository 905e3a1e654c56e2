package stage

import "sort"

// SortForDisplay orders enriched records the way the dashboard presents them:
// growing crops before harvested ones; growing crops by soonest ready date;
// harvested crops by most recently ready. Records with a parse error sort
// after everything else, in their original relative order.
func SortForDisplay(records []EnrichedCropRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := &records[i], &records[j]

		if a.Valid() != b.Valid() {
			return a.Valid()
		}
		if !a.Valid() {
			return false
		}

		if a.IsHarvested != b.IsHarvested {
			return !a.IsHarvested
		}
		if a.IsHarvested {
			return a.ReadyDate.After(b.ReadyDate)
		}
		return a.ReadyDate.Before(b.ReadyDate)
	})
}

// Summary aggregates headline counts over an enriched batch.
type Summary struct {
	Active    int `json:"active"`
	Harvested int `json:"harvested"`
	Invalid   int `json:"invalid"`
}

// Summarize counts growing, harvested, and unparseable records.
func Summarize(records []EnrichedCropRecord) Summary {
	var s Summary
	for i := range records {
		switch {
		case !records[i].Valid():
			s.Invalid++
		case records[i].IsHarvested:
			s.Harvested++
		default:
			s.Active++
		}
	}
	return s
}
