// Package weather fetches local conditions and a short agricultural forecast
// from the wttr.in JSON API. It is a presentation collaborator: failures
// degrade to an error the caller renders inline, never a crash.
package weather

// wttrResponse mirrors the subset of wttr.in's ?format=j1 payload we use.
// The API encodes all numbers as strings.
type wttrResponse struct {
	CurrentCondition []wttrCurrent  `json:"current_condition"`
	Weather          []wttrForecast `json:"weather"`
}

type wttrCurrent struct {
	TempC         string      `json:"temp_C"`
	Humidity      string      `json:"humidity"`
	WindspeedKmph string      `json:"windspeedKmph"`
	WeatherDesc   []wttrValue `json:"weatherDesc"`
}

type wttrValue struct {
	Value string `json:"value"`
}

type wttrForecast struct {
	Date     string       `json:"date"`
	MaxTempC string       `json:"maxtempC"`
	MinTempC string       `json:"mintempC"`
	Hourly   []wttrHourly `json:"hourly"`
}

type wttrHourly struct {
	ChanceOfRain string `json:"chanceofrain"`
}

// Report is the normalized weather view returned to callers.
type Report struct {
	Place     string        `json:"place"`
	TempC     int           `json:"tempC"`
	Humidity  int           `json:"humidity"`
	WindKmph  int           `json:"windKmph"`
	Condition string        `json:"condition"`
	Forecast  []ForecastDay `json:"forecast"`
}

// ForecastDay is one day of the agricultural forecast.
type ForecastDay struct {
	Date         string `json:"date"`
	MaxTempC     int    `json:"maxTempC"`
	MinTempC     int    `json:"minTempC"`
	ChanceOfRain int    `json:"chanceOfRain"`
}
