package weather

import "testing"

func TestCompassDirection(t *testing.T) {
	cases := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{22.5, "NNE"},
		{45, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{348.75, "N"},
		{360, "N"},
		{450, "E"},
	}
	for _, c := range cases {
		if got := CompassDirection(c.degrees); got != c.want {
			t.Fatalf("CompassDirection(%v): expected %q, got %q", c.degrees, c.want, got)
		}
	}
}
