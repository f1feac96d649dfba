package weather

import "errors"

// ErrMissingCredential is reported when an operation needs the global
// provider but no API key was configured. It is detected before any network
// call.
var ErrMissingCredential = errors.New("OpenWeatherMap API key not configured. Please set OPENWEATHER_API_KEY environment variable")

// Selector decides which provider serves a weather request. The regional
// provider (NWS) needs no credential but only answers for US locations; the
// global provider (OpenWeatherMap) answers anywhere but requires the key.
type Selector struct {
	regional      *NWSClient
	global        *OpenWeatherClient
	hasCredential bool
}

// NewSelector creates a Selector. hasCredential reflects whether the global
// provider's API key was configured at startup; it never changes afterwards.
func NewSelector(regional *NWSClient, global *OpenWeatherClient, hasCredential bool) *Selector {
	return &Selector{
		regional:      regional,
		global:        global,
		hasCredential: hasCredential,
	}
}

// Regional returns the region-restricted provider; always available.
func (s *Selector) Regional() *NWSClient {
	return s.regional
}

// Global returns the worldwide provider, or ErrMissingCredential when its
// API key is unset.
func (s *Selector) Global() (*OpenWeatherClient, error) {
	if !s.hasCredential {
		return nil, ErrMissingCredential
	}
	return s.global, nil
}

// GlobalEnabled reports whether the global provider can serve requests.
func (s *Selector) GlobalEnabled() bool {
	return s.hasCredential
}
