package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/tranducthai/mcp-protocol-for-llm/internal/geo"
	"github.com/tranducthai/mcp-protocol-for-llm/internal/upstream"
)

type searchLocationArgs struct {
	Query string `validate:"required"`
	Limit int
}

func (f *Facade) handleSearchLocation(ctx context.Context, args map[string]any) (string, error) {
	req := searchLocationArgs{
		Query: stringArg(args, "query", ""),
		Limit: intArg(args, "limit", 5),
	}
	if err := validate.Struct(req); err != nil {
		return "", invalidArgs(err)
	}

	locations, err := f.nominatim.Search(ctx, req.Query, req.Limit)
	if err != nil {
		if errors.Is(err, upstream.ErrUnavailable) || errors.Is(err, upstream.ErrMalformed) {
			return "", errors.New("Unable to fetch location data.")
		}
		return "", err
	}

	if len(locations) == 0 {
		return "No locations found for the given query.", nil
	}

	return marshalResult(map[string]any{
		"query":         req.Query,
		"results_count": len(locations),
		"locations":     locations,
	})
}

type searchServicesArgs struct {
	ServiceType string  `validate:"required"`
	Latitude    float64 `validate:"min=-90,max=90"`
	Longitude   float64 `validate:"min=-180,max=180"`
	Radius      int     `validate:"min=1"`
}

func (f *Facade) handleSearchServices(ctx context.Context, args map[string]any) (string, error) {
	req := searchServicesArgs{
		ServiceType: stringArg(args, "service_type", ""),
		Latitude:    floatArg(args, "latitude", 0),
		Longitude:   floatArg(args, "longitude", 0),
		Radius:      intArg(args, "radius", 1000),
	}
	if err := validate.Struct(req); err != nil {
		return "", invalidArgs(err)
	}

	services, err := f.overpass.SearchNearby(ctx, req.ServiceType, req.Latitude, req.Longitude, req.Radius)
	if err != nil {
		if errors.Is(err, upstream.ErrUnavailable) || errors.Is(err, upstream.ErrMalformed) {
			return "", errors.New("Unable to fetch service data.")
		}
		return "", err
	}

	if len(services) == 0 {
		return fmt.Sprintf("No %s services found within %dm of the specified location.", req.ServiceType, req.Radius), nil
	}

	return marshalResult(map[string]any{
		"service_type": req.ServiceType,
		"search_center": map[string]float64{
			"latitude":  req.Latitude,
			"longitude": req.Longitude,
		},
		"search_radius": fmt.Sprintf("%dm", req.Radius),
		"results_count": len(services),
		"services":      services,
	})
}

type directionsArgs struct {
	StartLat float64 `validate:"min=-90,max=90"`
	StartLon float64 `validate:"min=-180,max=180"`
	EndLat   float64 `validate:"min=-90,max=90"`
	EndLon   float64 `validate:"min=-180,max=180"`
	Profile  string
}

func (f *Facade) handleDirections(ctx context.Context, args map[string]any) (string, error) {
	req := directionsArgs{
		StartLat: floatArg(args, "start_lat", 0),
		StartLon: floatArg(args, "start_lon", 0),
		EndLat:   floatArg(args, "end_lat", 0),
		EndLon:   floatArg(args, "end_lon", 0),
		Profile:  stringArg(args, "profile", "driving"),
	}
	if err := validate.Struct(req); err != nil {
		return "", invalidArgs(err)
	}

	// Profile is checked before anything is sent upstream.
	if !geo.IsValidProfile(req.Profile) {
		return "", geo.ErrInvalidProfile
	}

	route, err := f.osrm.Route(ctx, req.Profile, req.StartLat, req.StartLon, req.EndLat, req.EndLon)
	if err != nil {
		switch {
		case errors.Is(err, geo.ErrRouting):
			return "", fmt.Errorf("Routing error: %v", routingMessage(err))
		case errors.Is(err, upstream.ErrUnavailable), errors.Is(err, upstream.ErrMalformed):
			return "", errors.New("Unable to fetch routing data.")
		default:
			return "", err
		}
	}

	return marshalResult(map[string]any{
		"start_coordinates": map[string]float64{
			"latitude":  req.StartLat,
			"longitude": req.StartLon,
		},
		"end_coordinates": map[string]float64{
			"latitude":  req.EndLat,
			"longitude": req.EndLon,
		},
		"profile": req.Profile,
		"route":   route,
	})
}

// routingMessage strips the sentinel prefix from a routing error.
func routingMessage(err error) string {
	msg := err.Error()
	prefix := geo.ErrRouting.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
