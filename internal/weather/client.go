package weather

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/farmos/crop-service/internal/fetch"
)

// DefaultBaseURL is the public wttr.in endpoint.
const DefaultBaseURL = "https://wttr.in"

// ErrEmptyPlace is returned when the place name normalizes to nothing.
var ErrEmptyPlace = errors.New("place name is empty")

// Service fetches weather reports. Concurrent requests for the same place
// are deduplicated through a singleflight group so a dashboard full of
// sessions cannot stampede the upstream API.
type Service struct {
	client  *fetch.Client
	baseURL string
	sf      singleflight.Group
}

// NewService creates a weather service over the given fetch client.
// baseURL is overridable for tests; pass "" for the public endpoint.
func NewService(client *fetch.Client, baseURL string) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Service{client: client, baseURL: baseURL}
}

// Report fetches current conditions and the multi-day forecast for a town.
func (s *Service) Report(ctx context.Context, place string) (*Report, error) {
	place = NormalizePlace(place)
	if place == "" {
		return nil, ErrEmptyPlace
	}

	start := time.Now()
	v, err, _ := s.sf.Do(place, func() (any, error) {
		return s.fetchReport(ctx, place)
	})
	observeFetch(time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return v.(*Report), nil
}

func (s *Service) fetchReport(ctx context.Context, place string) (*Report, error) {
	u := fmt.Sprintf("%s/%s?format=j1", s.baseURL, url.PathEscape(place))

	var raw wttrResponse
	if err := s.client.GetJSON(ctx, u, &raw); err != nil {
		return nil, fmt.Errorf("weather service unavailable: %w", err)
	}
	if len(raw.CurrentCondition) == 0 {
		return nil, fmt.Errorf("weather service returned no conditions for %q", place)
	}

	curr := raw.CurrentCondition[0]
	report := &Report{
		Place:    place,
		TempC:    atoiLenient(curr.TempC),
		Humidity: atoiLenient(curr.Humidity),
		WindKmph: atoiLenient(curr.WindspeedKmph),
	}
	if len(curr.WeatherDesc) > 0 {
		report.Condition = curr.WeatherDesc[0].Value
	}

	for _, day := range raw.Weather {
		fd := ForecastDay{
			Date:     day.Date,
			MaxTempC: atoiLenient(day.MaxTempC),
			MinTempC: atoiLenient(day.MinTempC),
		}
		if len(day.Hourly) > 0 {
			fd.ChanceOfRain = atoiLenient(day.Hourly[0].ChanceOfRain)
		}
		report.Forecast = append(report.Forecast, fd)
	}

	return report, nil
}

// atoiLenient parses wttr.in's string-encoded numbers, treating anything
// unparseable as zero rather than failing the whole report.
func atoiLenient(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
