package weather

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tranducthai/mcp-protocol-for-llm/internal/geo"
	"github.com/tranducthai/mcp-protocol-for-llm/internal/upstream"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherClient is the global provider: current conditions and a 5-day
// forecast for arbitrary locations, gated by an API key.
type OpenWeatherClient struct {
	apiKey  string
	baseURL string
	caller  *upstream.Client
}

// NewOpenWeatherClient creates an OpenWeatherMap client sharing the given
// http.Client.
func NewOpenWeatherClient(httpClient *http.Client, userAgent, apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:  apiKey,
		baseURL: openWeatherBaseURL,
		caller:  upstream.New("openweathermap", userAgent, httpClient),
	}
}

// CurrentByCity fetches current conditions for a city name.
func (c *OpenWeatherClient) CurrentByCity(ctx context.Context, city string, units Units) (Snapshot, error) {
	params := url.Values{
		"q":     {city},
		"units": {string(units)},
	}
	return c.fetchCurrent(ctx, params, units)
}

// CurrentByCoords fetches current conditions for a coordinate pair.
func (c *OpenWeatherClient) CurrentByCoords(ctx context.Context, lat, lon float64, units Units) (Snapshot, error) {
	params := url.Values{
		"lat":   {formatNumber(lat)},
		"lon":   {formatNumber(lon)},
		"units": {string(units)},
	}
	return c.fetchCurrent(ctx, params, units)
}

// Forecast fetches the 3-hourly forecast for a city and buckets it into at
// most days calendar dates.
func (c *OpenWeatherClient) Forecast(ctx context.Context, city string, days int, units Units) (ForecastResult, error) {
	params := url.Values{
		"q":     {city},
		"units": {string(units)},
	}
	params.Set("appid", c.apiKey)

	var payload owmForecast
	if err := c.caller.GetJSON(ctx, c.baseURL+"/forecast?"+params.Encode(), "application/json", &payload); err != nil {
		return ForecastResult{}, err
	}
	return normalizeForecast(payload, days, units), nil
}

func (c *OpenWeatherClient) fetchCurrent(ctx context.Context, params url.Values, u Units) (Snapshot, error) {
	params.Set("appid", c.apiKey)

	var payload owmCurrent
	if err := c.caller.GetJSON(ctx, c.baseURL+"/weather?"+params.Encode(), "application/json", &payload); err != nil {
		return Snapshot{}, err
	}
	return normalizeCurrent(payload, u), nil
}

// Raw OpenWeatherMap payload shapes. Rain and snow arrive only when there is
// precipitation, hence the pointers.

type owmPrecip struct {
	OneHour float64 `json:"1h"`
}

type owmConditions []struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmWind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

type owmCurrent struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind       owmWind       `json:"wind"`
	Weather    owmConditions `json:"weather"`
	Visibility float64       `json:"visibility"`
	Clouds     struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Rain *owmPrecip `json:"rain"`
	Snow *owmPrecip `json:"snow"`
}

type owmForecast struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
		Coord   struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
	} `json:"city"`
	List []owmForecastItem `json:"list"`
}

type owmForecastItem struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Weather    owmConditions `json:"weather"`
	Wind       owmWind       `json:"wind"`
	Visibility float64       `json:"visibility"`
	Clouds     struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Rain *owmPrecip `json:"rain"`
	Snow *owmPrecip `json:"snow"`
}

func normalizeCondition(items owmConditions) ConditionInfo {
	if len(items) == 0 {
		return ConditionInfo{Main: "Unknown", Description: "Unknown", Icon: "Unknown"}
	}
	first := items[0]
	return ConditionInfo{
		Main:        defaultString(first.Main, "Unknown"),
		Description: defaultString(first.Description, "Unknown"),
		Icon:        defaultString(first.Icon, "Unknown"),
	}
}

func normalizeWind(w owmWind, u Units) Wind {
	return Wind{
		Speed:     u.FormatSpeed(w.Speed),
		Direction: w.Deg,
		Compass:   CompassDirection(w.Deg),
	}
}

func normalizePrecip(p *owmPrecip) *Precipitation {
	if p == nil {
		return nil
	}
	return &Precipitation{OneHour: FormatMillimeters(p.OneHour)}
}

func normalizeCurrent(data owmCurrent, u Units) Snapshot {
	return Snapshot{
		Location: Place{
			Name:    defaultString(data.Name, "Unknown"),
			Country: defaultString(data.Sys.Country, "Unknown"),
			Coordinates: geo.Coordinates{
				Latitude:  data.Coord.Lat,
				Longitude: data.Coord.Lon,
			},
		},
		Current: CurrentConditions{
			Temperature: u.FormatTemp(data.Main.Temp),
			FeelsLike:   u.FormatTemp(data.Main.FeelsLike),
			Humidity:    FormatPercent(data.Main.Humidity),
			Pressure:    FormatPressure(data.Main.Pressure),
			Wind:        normalizeWind(data.Wind, u),
			Weather:     normalizeCondition(data.Weather),
			Visibility:  FormatVisibility(data.Visibility),
			Cloudiness:  FormatPercent(data.Clouds.All),
			Sunrise:     data.Sys.Sunrise,
			Sunset:      data.Sys.Sunset,
			Rain:        normalizePrecip(data.Rain),
			Snow:        normalizePrecip(data.Snow),
		},
	}
}

func normalizeForecast(data owmForecast, days int, u Units) ForecastResult {
	entries := make([]ForecastEntry, 0, len(data.List))
	for _, item := range data.List {
		entries = append(entries, ForecastEntry{
			Timestamp: item.DtTxt,
			Sample: ForecastSample{
				Temperature: u.FormatTemp(item.Main.Temp),
				FeelsLike:   u.FormatTemp(item.Main.FeelsLike),
				MinTemp:     u.FormatTemp(item.Main.TempMin),
				MaxTemp:     u.FormatTemp(item.Main.TempMax),
				Humidity:    FormatPercent(item.Main.Humidity),
				Pressure:    FormatPressure(item.Main.Pressure),
				Weather:     normalizeCondition(item.Weather),
				Wind:        normalizeWind(item.Wind, u),
				Visibility:  FormatVisibility(item.Visibility),
				Cloudiness:  FormatPercent(item.Clouds.All),
				Rain:        normalizePrecip(item.Rain),
				Snow:        normalizePrecip(item.Snow),
			},
		})
	}

	return ForecastResult{
		Location: Place{
			Name:    defaultString(data.City.Name, "Unknown"),
			Country: defaultString(data.City.Country, "Unknown"),
			Coordinates: geo.Coordinates{
				Latitude:  data.City.Coord.Lat,
				Longitude: data.City.Coord.Lon,
			},
		},
		Forecast: BucketForecast(entries, days),
	}
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
