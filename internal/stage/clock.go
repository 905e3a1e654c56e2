package stage

import "time"

// The farm operates on a fixed UTC+2 civil time with no daylight-saving
// adjustment. A fixed zone is used instead of the IANA Africa/Johannesburg
// lookup so the offset can never drift with tzdata changes.
var farmZone = time.FixedZone("SAST", 2*60*60)

// Clock supplies the reference instant for enrichment. Injected so tests can
// pin time.
type Clock interface {
	Now() time.Time
}

type farmClock struct{}

func (farmClock) Now() time.Time {
	return time.Now().In(farmZone)
}

// NewClock returns the production clock, reporting farm-zone civil time.
func NewClock() Clock {
	return farmClock{}
}

// DateOf strips the time-of-day from t, returning the civil date as a UTC
// midnight. All day arithmetic in this package happens on such normalized
// dates, so differences are exact multiples of 24h.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current farm-zone civil date from clk, normalized via
// DateOf.
func Today(clk Clock) time.Time {
	return DateOf(clk.Now())
}

// ParseDate parses a YYYY-MM-DD planting date into a normalized civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}
