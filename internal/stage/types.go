// Package stage derives growth stage, progress, and harvest readiness for
// planted crops from their species schedule and a reference date.
package stage

import "time"

// DateFormat is the canonical wire format for planting dates.
const DateFormat = "2006-01-02"

// CropRecord is one planted crop as entered by the farmer. Quantity and Area
// are free-text labels and are never parsed. RainfallMm defaults to 0 when
// absent from the input payload.
type CropRecord struct {
	Name       string  `json:"name"`
	Planted    string  `json:"planted"`
	Quantity   string  `json:"qty"`
	Area       string  `json:"area"`
	RainfallMm float64 `json:"rainfallMm"`
}

// EnrichedCropRecord is a CropRecord plus derived display fields. It is
// recomputed on every call and never stored.
type EnrichedCropRecord struct {
	CropRecord

	PlantedStr       string    `json:"plantedStr"`
	ReadyDate        time.Time `json:"readyDate"`
	DaysPassed       int       `json:"daysPassed"`
	ProgressPercent  int       `json:"progress"`
	CurrentStageName string    `json:"currentStage"`
	CurrentStageIcon string    `json:"currentStageIcon"`
	CareSteps        []string  `json:"careSteps"`
	DaysLeft         int       `json:"daysLeft"`
	IsHarvested      bool      `json:"isHarvested"`
	Status           string    `json:"status"`
	OverdueLabel     string    `json:"overdueLabel"`

	// ParseError is set when the planting date could not be parsed. The
	// record is still returned (with zeroed derived fields) so that one bad
	// row never aborts a batch; callers surface it as a non-fatal row error.
	ParseError string `json:"parseError,omitempty"`
}

// Valid reports whether the record's derived fields are usable.
func (r *EnrichedCropRecord) Valid() bool {
	return r.ParseError == ""
}
