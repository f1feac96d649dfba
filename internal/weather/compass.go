package weather

import "math"

var compassLabels = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassDirection maps a bearing in degrees to one of 16 compass labels.
// Bearings wrap, so 360 maps back to "N".
func CompassDirection(degrees float64) string {
	n := len(compassLabels)
	sector := 360.0 / float64(n)
	idx := int(math.Round(degrees/sector)) % n
	if idx < 0 {
		idx += n
	}
	return compassLabels[idx]
}
