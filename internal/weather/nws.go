package weather

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tranducthai/mcp-protocol-for-llm/internal/upstream"
)

const (
	nwsBaseURL = "https://api.weather.gov"

	// The NWS point forecast covers roughly a week of half-day periods;
	// only the next few are returned to keep tool output short.
	maxForecastPeriods = 5

	nwsAccept = "application/geo+json"
)

// NWSClient is the region-restricted provider: alerts and forecasts for US
// locations only, no credential needed. Forecasts use the NWS two-step
// protocol, where a points lookup yields the grid endpoint the actual
// forecast must be fetched from.
type NWSClient struct {
	baseURL string
	caller  *upstream.Client
}

// NewNWSClient creates an NWS client sharing the given http.Client.
func NewNWSClient(httpClient *http.Client, userAgent string) *NWSClient {
	return &NWSClient{
		baseURL: nwsBaseURL,
		caller:  upstream.New("nws", userAgent, httpClient),
	}
}

// ActiveAlerts fetches active alerts for a two-letter state code. An empty
// slice means the state currently has no alerts.
func (c *NWSClient) ActiveAlerts(ctx context.Context, state string) ([]Alert, error) {
	u := fmt.Sprintf("%s/alerts/active/area/%s", c.baseURL, state)

	// Features is a pointer so a payload missing the array entirely can be
	// told apart from a state with zero alerts.
	var payload struct {
		Features *[]alertFeature `json:"features"`
	}
	if err := c.caller.GetJSON(ctx, u, nwsAccept, &payload); err != nil {
		return nil, err
	}
	if payload.Features == nil {
		return nil, fmt.Errorf("%w: nws: alerts payload has no features field", upstream.ErrMalformed)
	}

	alerts := make([]Alert, 0, len(*payload.Features))
	for _, f := range *payload.Features {
		alerts = append(alerts, normalizeAlert(f))
	}
	return alerts, nil
}

// PointForecast resolves the coordinate pair to its grid endpoint, then
// fetches that endpoint and returns the first maxForecastPeriods periods.
// The second request depends on the first response, so a failed or
// incomplete points lookup fails the whole operation.
func (c *NWSClient) PointForecast(ctx context.Context, lat, lon float64) ([]ForecastPeriod, error) {
	forecastURL, err := c.resolveForecastURL(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Properties struct {
			Periods []nwsPeriod `json:"periods"`
		} `json:"properties"`
	}
	if err := c.caller.GetJSON(ctx, forecastURL, nwsAccept, &payload); err != nil {
		return nil, err
	}
	if len(payload.Properties.Periods) == 0 {
		return nil, fmt.Errorf("%w: nws: forecast payload has no periods", upstream.ErrMalformed)
	}

	periods := payload.Properties.Periods
	if len(periods) > maxForecastPeriods {
		periods = periods[:maxForecastPeriods]
	}

	out := make([]ForecastPeriod, 0, len(periods))
	for _, p := range periods {
		out = append(out, normalizePeriod(p))
	}
	return out, nil
}

// resolveForecastURL is stage one of the dependent lookup.
func (c *NWSClient) resolveForecastURL(ctx context.Context, lat, lon float64) (string, error) {
	u := fmt.Sprintf("%s/points/%s,%s", c.baseURL, formatNumber(lat), formatNumber(lon))

	var payload struct {
		Properties struct {
			Forecast string `json:"forecast"`
		} `json:"properties"`
	}
	if err := c.caller.GetJSON(ctx, u, nwsAccept, &payload); err != nil {
		return "", err
	}
	if payload.Properties.Forecast == "" {
		return "", fmt.Errorf("%w: nws: points payload has no forecast endpoint", upstream.ErrMalformed)
	}
	return payload.Properties.Forecast, nil
}

// Raw NWS payload shapes.

type alertFeature struct {
	Properties struct {
		Event       string `json:"event"`
		AreaDesc    string `json:"areaDesc"`
		Severity    string `json:"severity"`
		Description string `json:"description"`
		Instruction string `json:"instruction"`
	} `json:"properties"`
}

type nwsPeriod struct {
	Name            string `json:"name"`
	Temperature     int    `json:"temperature"`
	TemperatureUnit string `json:"temperatureUnit"`
	WindSpeed       string `json:"windSpeed"`
	WindDirection   string `json:"windDirection"`
	DetailedForecast string `json:"detailedForecast"`
}

func normalizeAlert(f alertFeature) Alert {
	p := f.Properties
	return Alert{
		Event:        defaultString(p.Event, "Unknown"),
		Area:         defaultString(p.AreaDesc, "Unknown"),
		Severity:     defaultString(p.Severity, "Unknown"),
		Description:  defaultString(p.Description, "No description available"),
		Instructions: defaultString(p.Instruction, "No specific instructions provided"),
	}
}

func normalizePeriod(p nwsPeriod) ForecastPeriod {
	return ForecastPeriod{
		Name:        p.Name,
		Temperature: fmt.Sprintf("%d°%s", p.Temperature, p.TemperatureUnit),
		Wind:        fmt.Sprintf("%s %s", p.WindSpeed, p.WindDirection),
		Forecast:    p.DetailedForecast,
	}
}
