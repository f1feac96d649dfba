// Package weather normalizes two upstream weather sources into one canonical
// schema: the NWS (United States only, no credential, two-step forecast
// lookup) and OpenWeatherMap (worldwide, credential required). All
// normalizers are total over partial input; missing source fields become
// documented defaults.
package weather

import "github.com/tranducthai/mcp-protocol-for-llm/internal/geo"

// Place identifies the location a weather answer refers to.
type Place struct {
	Name        string          `json:"name"`
	Country     string          `json:"country"`
	Coordinates geo.Coordinates `json:"coordinates"`
}

// Wind is a formatted wind reading with the raw bearing and its compass
// label.
type Wind struct {
	Speed     string  `json:"speed"`
	Direction float64 `json:"direction"`
	Compass   string  `json:"compass"`
}

// ConditionInfo describes the weather condition reported by the source.
type ConditionInfo struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Precipitation is a one-hour accumulation, attached only when the source
// payload carries it.
type Precipitation struct {
	OneHour string `json:"1h"`
}

// CurrentConditions is the formatted current-weather block.
type CurrentConditions struct {
	Temperature string         `json:"temperature"`
	FeelsLike   string         `json:"feels_like"`
	Humidity    string         `json:"humidity"`
	Pressure    string         `json:"pressure"`
	Wind        Wind           `json:"wind"`
	Weather     ConditionInfo  `json:"weather"`
	Visibility  string         `json:"visibility"`
	Cloudiness  string         `json:"cloudiness"`
	Sunrise     int64          `json:"sunrise"`
	Sunset      int64          `json:"sunset"`
	Rain        *Precipitation `json:"rain,omitempty"`
	Snow        *Precipitation `json:"snow,omitempty"`
}

// Snapshot is a normalized current-weather answer.
type Snapshot struct {
	Location Place             `json:"location"`
	Current  CurrentConditions `json:"current"`
}

// ForecastSample is one timestamped forecast entry within a day.
type ForecastSample struct {
	Time        string         `json:"time"`
	Temperature string         `json:"temperature"`
	FeelsLike   string         `json:"feels_like"`
	MinTemp     string         `json:"min_temp"`
	MaxTemp     string         `json:"max_temp"`
	Humidity    string         `json:"humidity"`
	Pressure    string         `json:"pressure"`
	Weather     ConditionInfo  `json:"weather"`
	Wind        Wind           `json:"wind"`
	Visibility  string         `json:"visibility"`
	Cloudiness  string         `json:"cloudiness"`
	Rain        *Precipitation `json:"rain,omitempty"`
	Snow        *Precipitation `json:"snow,omitempty"`
}

// ForecastDay groups the samples of one calendar date. Days and samples keep
// the source's chronological order.
type ForecastDay struct {
	Date    string           `json:"date"`
	Samples []ForecastSample `json:"samples"`
}

// ForecastResult is a normalized multi-day forecast answer.
type ForecastResult struct {
	Location Place         `json:"location"`
	Forecast []ForecastDay `json:"forecast"`
}

// Alert is a normalized severe-weather alert.
type Alert struct {
	Event        string `json:"event"`
	Area         string `json:"area"`
	Severity     string `json:"severity"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
}

// ForecastPeriod is one named period of the NWS point forecast.
type ForecastPeriod struct {
	Name        string `json:"name"`
	Temperature string `json:"temperature"`
	Wind        string `json:"wind"`
	Forecast    string `json:"forecast"`
}
