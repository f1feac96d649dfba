package weather

import "testing"

func TestUnitsSuffixes(t *testing.T) {
	cases := []struct {
		units     Units
		wantTemp  string
		wantSpeed string
	}{
		{UnitsMetric, "°C", "m/s"},
		{UnitsImperial, "°F", "mph"},
	}
	for _, c := range cases {
		if got := c.units.TempSuffix(); got != c.wantTemp {
			t.Fatalf("%s: expected temp suffix %q, got %q", c.units, c.wantTemp, got)
		}
		if got := c.units.SpeedSuffix(); got != c.wantSpeed {
			t.Fatalf("%s: expected speed suffix %q, got %q", c.units, c.wantSpeed, got)
		}
	}
}

func TestFormatters(t *testing.T) {
	if got := UnitsMetric.FormatTemp(21.5); got != "21.5°C" {
		t.Fatalf("expected 21.5°C, got %q", got)
	}
	if got := UnitsImperial.FormatTemp(70); got != "70°F" {
		t.Fatalf("expected 70°F, got %q", got)
	}
	if got := UnitsMetric.FormatSpeed(3.6); got != "3.6 m/s" {
		t.Fatalf("expected 3.6 m/s, got %q", got)
	}
	if got := FormatPercent(82); got != "82%" {
		t.Fatalf("expected 82%%, got %q", got)
	}
	if got := FormatPressure(1013); got != "1013 hPa" {
		t.Fatalf("expected 1013 hPa, got %q", got)
	}
	if got := FormatVisibility(10000); got != "10 km" {
		t.Fatalf("expected 10 km, got %q", got)
	}
	if got := FormatVisibility(8500); got != "8.5 km" {
		t.Fatalf("expected 8.5 km, got %q", got)
	}
	if got := FormatMillimeters(0.3); got != "0.3 mm" {
		t.Fatalf("expected 0.3 mm, got %q", got)
	}
}
