package catalog

// builtinSpecies returns a fresh copy of the default knowledge base so that
// callers can layer overrides without touching shared state.
//
// Okra carries only a total duration. That is deliberate: it exercises the
// degenerate no-stage schema that stage derivation must handle.
func builtinSpecies() map[string]SpeciesConfig {
	return map[string]SpeciesConfig{
		"Sweet Corn": {
			TotalDurationDays: 85,
			Stages: []StageDef{
				{Name: "Emergence", DurationDays: 10, Icon: "🌱", CareActions: []string{"Protect from birds", "Keep soil surface moist"}},
				{Name: "Vegetative", DurationDays: 35, Icon: "🌿", CareActions: []string{"High nitrogen fertilizer", "Check for stalk borers"}},
				{Name: "Tasseling", DurationDays: 20, Icon: "🌽", CareActions: []string{"Critical water stage", "Ensure pollination humidity"}},
				{Name: "Ripening", DurationDays: 20, Icon: "✨", CareActions: []string{"Check kernel milkiness", "Prepare for harvest"}},
			},
		},
		"Beetroot": {
			TotalDurationDays: 60,
			Stages: []StageDef{
				{Name: "Germination", DurationDays: 10, Icon: "🌱", CareActions: []string{"Thin seedlings to 5cm", "Consistent moisture"}},
				{Name: "Leaf Growth", DurationDays: 25, Icon: "🍃", CareActions: []string{"Nitrogen liquid feed", "Keep weed-free"}},
				{Name: "Bulbing", DurationDays: 25, Icon: "🟣", CareActions: []string{"Deep watering twice weekly", "Avoid high nitrogen now"}},
			},
		},
		"Cabbages": {
			TotalDurationDays: 90,
			Stages: []StageDef{
				{Name: "Establishment", DurationDays: 20, Icon: "🌱", CareActions: []string{"Damping-off prevention", "Cutworm check"}},
				{Name: "Cupping", DurationDays: 35, Icon: "🥬", CareActions: []string{"Regular irrigation", "Caterpillar monitoring"}},
				{Name: "Heading", DurationDays: 35, Icon: "🟢", CareActions: []string{"Maintain moisture to prevent splitting", "Final feed"}},
			},
		},
		"Onions": {
			TotalDurationDays: 150,
			Stages: []StageDef{
				{Name: "Vegetative", DurationDays: 50, Icon: "🌱", CareActions: []string{"Weed control is vital", "Nitrogen side-dressing"}},
				{Name: "Bulbing", DurationDays: 70, Icon: "🧅", CareActions: []string{"Reduce water as leaves yellow", "Stop feeding"}},
				{Name: "Drying", DurationDays: 30, Icon: "☀️", CareActions: []string{"Stop all irrigation", "Wait for neck collapse"}},
			},
		},
		"Okra": {
			TotalDurationDays: 65,
		},
	}
}
