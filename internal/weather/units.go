package weather

import "strconv"

// Units selects the measurement system for formatted output. All temperature
// and speed fields within one response share the suffixes of a single Units
// value.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// TempSuffix returns the temperature suffix for the unit system.
func (u Units) TempSuffix() string {
	if u == UnitsImperial {
		return "°F"
	}
	return "°C"
}

// SpeedSuffix returns the wind-speed suffix for the unit system.
func (u Units) SpeedSuffix() string {
	if u == UnitsImperial {
		return "mph"
	}
	return "m/s"
}

// FormatTemp renders a temperature with the system's suffix, e.g. "21.5°C".
func (u Units) FormatTemp(v float64) string {
	return formatNumber(v) + u.TempSuffix()
}

// FormatSpeed renders a wind speed with the system's suffix, e.g. "3.6 m/s".
func (u Units) FormatSpeed(v float64) string {
	return formatNumber(v) + " " + u.SpeedSuffix()
}

// FormatPercent renders a percentage value, e.g. "82%".
func FormatPercent(v float64) string {
	return formatNumber(v) + "%"
}

// FormatPressure renders a pressure in hectopascals, e.g. "1013 hPa".
func FormatPressure(v float64) string {
	return formatNumber(v) + " hPa"
}

// FormatVisibility converts meters to kilometers, e.g. "10 km".
func FormatVisibility(meters float64) string {
	return formatNumber(meters/1000) + " km"
}

// FormatMillimeters renders a precipitation accumulation, e.g. "0.3 mm".
func FormatMillimeters(v float64) string {
	return formatNumber(v) + " mm"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
