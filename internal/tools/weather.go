package tools

import (
	"context"
	"errors"
	"strings"

	"github.com/tranducthai/mcp-protocol-for-llm/internal/upstream"
	"github.com/tranducthai/mcp-protocol-for-llm/internal/weather"
)

type alertsArgs struct {
	State string `validate:"required,len=2,alpha"`
}

func (f *Facade) handleAlerts(ctx context.Context, args map[string]any) (string, error) {
	req := alertsArgs{
		State: strings.ToUpper(stringArg(args, "state", "")),
	}
	if err := validate.Struct(req); err != nil {
		return "", invalidArgs(err)
	}

	alerts, err := f.selector.Regional().ActiveAlerts(ctx, req.State)
	if err != nil {
		if errors.Is(err, upstream.ErrUnavailable) || errors.Is(err, upstream.ErrMalformed) {
			return "", errors.New("Unable to fetch alerts.")
		}
		return "", err
	}

	if len(alerts) == 0 {
		return "No active alerts for this state.", nil
	}

	return marshalResult(map[string]any{
		"state":         req.State,
		"results_count": len(alerts),
		"alerts":        alerts,
	})
}

type nwsForecastArgs struct {
	Latitude  float64 `validate:"min=-90,max=90"`
	Longitude float64 `validate:"min=-180,max=180"`
}

func (f *Facade) handleNWSForecast(ctx context.Context, args map[string]any) (string, error) {
	req := nwsForecastArgs{
		Latitude:  floatArg(args, "latitude", 0),
		Longitude: floatArg(args, "longitude", 0),
	}
	if err := validate.Struct(req); err != nil {
		return "", invalidArgs(err)
	}

	periods, err := f.selector.Regional().PointForecast(ctx, req.Latitude, req.Longitude)
	if err != nil {
		if errors.Is(err, upstream.ErrUnavailable) || errors.Is(err, upstream.ErrMalformed) {
			return "", errors.New("Unable to fetch forecast data for this location.")
		}
		return "", err
	}

	return marshalResult(map[string]any{
		"latitude":  req.Latitude,
		"longitude": req.Longitude,
		"periods":   periods,
	})
}

type currentWeatherArgs struct {
	City  string `validate:"required"`
	Units string `validate:"oneof=metric imperial"`
}

func (f *Facade) handleCurrentWeather(ctx context.Context, args map[string]any) (string, error) {
	req := currentWeatherArgs{
		City:  stringArg(args, "city", ""),
		Units: stringArg(args, "units", "metric"),
	}
	if err := validate.Struct(req); err != nil {
		return "", invalidArgs(err)
	}

	owm, err := f.selector.Global()
	if err != nil {
		return "", err
	}

	snapshot, err := owm.CurrentByCity(ctx, req.City, weather.Units(req.Units))
	if err != nil {
		if errors.Is(err, upstream.ErrUnavailable) || errors.Is(err, upstream.ErrMalformed) {
			return "", errors.New("Unable to fetch current weather data.")
		}
		return "", err
	}

	return marshalResult(map[string]any{
		"city":    req.City,
		"units":   req.Units,
		"weather": snapshot,
	})
}

type weatherByCoordinatesArgs struct {
	Latitude  float64 `validate:"min=-90,max=90"`
	Longitude float64 `validate:"min=-180,max=180"`
	Units     string  `validate:"oneof=metric imperial"`
}

func (f *Facade) handleWeatherByCoordinates(ctx context.Context, args map[string]any) (string, error) {
	req := weatherByCoordinatesArgs{
		Latitude:  floatArg(args, "latitude", 0),
		Longitude: floatArg(args, "longitude", 0),
		Units:     stringArg(args, "units", "metric"),
	}
	if err := validate.Struct(req); err != nil {
		return "", invalidArgs(err)
	}

	owm, err := f.selector.Global()
	if err != nil {
		return "", err
	}

	snapshot, err := owm.CurrentByCoords(ctx, req.Latitude, req.Longitude, weather.Units(req.Units))
	if err != nil {
		if errors.Is(err, upstream.ErrUnavailable) || errors.Is(err, upstream.ErrMalformed) {
			return "", errors.New("Unable to fetch weather data by coordinates.")
		}
		return "", err
	}

	return marshalResult(map[string]any{
		"coordinates": map[string]float64{
			"latitude":  req.Latitude,
			"longitude": req.Longitude,
		},
		"units":   req.Units,
		"weather": snapshot,
	})
}

type weatherForecastArgs struct {
	City  string `validate:"required"`
	Days  int
	Units string `validate:"oneof=metric imperial"`
}

func (f *Facade) handleWeatherForecast(ctx context.Context, args map[string]any) (string, error) {
	req := weatherForecastArgs{
		City:  stringArg(args, "city", ""),
		Days:  intArg(args, "days", 3),
		Units: stringArg(args, "units", "metric"),
	}
	if err := validate.Struct(req); err != nil {
		return "", invalidArgs(err)
	}

	// The upstream only supplies a 5-day horizon; reject before dispatch.
	if req.Days < 1 || req.Days > 5 {
		return "", errors.New("Days must be between 1 and 5.")
	}

	owm, err := f.selector.Global()
	if err != nil {
		return "", err
	}

	forecast, err := owm.Forecast(ctx, req.City, req.Days, weather.Units(req.Units))
	if err != nil {
		if errors.Is(err, upstream.ErrUnavailable) || errors.Is(err, upstream.ErrMalformed) {
			return "", errors.New("Unable to fetch forecast data.")
		}
		return "", err
	}

	return marshalResult(map[string]any{
		"city":     req.City,
		"days":     req.Days,
		"units":    req.Units,
		"forecast": forecast,
	})
}
