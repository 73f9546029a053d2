package model

import (
	"math"
	"testing"
)

func TestSqMetersToSqFeet(t *testing.T) {
	if got := SqMetersToSqFeet(1); math.Abs(got-10.764) > 1e-9 {
		t.Errorf("expected 10.764, got %v", got)
	}
	if got := SqMetersToSqFeet(92.9); math.Abs(got-999.98) > 0.01 {
		t.Errorf("expected ~999.98, got %v", got)
	}
}

func TestMetersToFeet(t *testing.T) {
	if got := MetersToFeet(1); math.Abs(got-3.28084) > 1e-9 {
		t.Errorf("expected 3.28084, got %v", got)
	}
}

func TestSqFeetToSquares(t *testing.T) {
	cases := []struct {
		sqft float64
		want int
	}{
		{0, 0},
		{1, 1},
		{100, 1},
		{101, 2},
		{1000, 10},
		{1050, 11},
	}
	for _, c := range cases {
		if got := SqFeetToSquares(c.sqft); got != c.want {
			t.Errorf("SqFeetToSquares(%v) = %d, want %d", c.sqft, got, c.want)
		}
	}
}

func TestPitchMultiplierKnownValues(t *testing.T) {
	if got := PitchMultiplier("flat"); math.Abs(got-1.000) > 1e-9 {
		t.Errorf("flat multiplier = %v, want 1.000", got)
	}
	if got := PitchMultiplier("6/12"); math.Abs(got-1.118) > 1e-3 {
		t.Errorf("6/12 multiplier = %v, want 1.118", got)
	}
	if got := PitchMultiplier("12/12"); math.Abs(got-1.414) > 1e-3 {
		t.Errorf("12/12 multiplier = %v, want 1.414", got)
	}
}

func TestPitchMultiplierUnknownFallsBack(t *testing.T) {
	if got := PitchMultiplier("14/12"); got != PitchMultiplier(DefaultPitchLabel) {
		t.Errorf("unknown label should fall back to default, got %v", got)
	}
	if got := PitchMultiplier(""); got != PitchMultiplier("6/12") {
		t.Errorf("empty label should fall back to 6/12, got %v", got)
	}
}

func TestPitchMultiplierMonotonic(t *testing.T) {
	prev := PitchMultiplier("flat")
	for rise := 1; rise <= 12; rise++ {
		m := PitchMultiplier(PitchRiseLabel(rise))
		if m <= prev {
			t.Errorf("multiplier for rise %d (%v) not greater than previous (%v)", rise, m, prev)
		}
		prev = m
	}
}

func TestPitchMultiplierMatchesFormula(t *testing.T) {
	// The table is precomputed to three decimals; check it against
	// sqrt(1 + (rise/12)^2).
	for rise := 0; rise <= 12; rise++ {
		want := math.Sqrt(1 + math.Pow(float64(rise)/12, 2))
		got := PitchMultiplier(PitchRiseLabel(rise))
		if math.Abs(got-want) > 5e-4 {
			t.Errorf("rise %d: table %v, formula %v", rise, got, want)
		}
	}
}

func TestDegreesToPitchRise(t *testing.T) {
	cases := []struct {
		degrees float64
		want    int
	}{
		{0, 0},
		{4.76, 1},  // tan(4.76°)*12 ≈ 1.0
		{26.6, 6},  // standard 6/12
		{45, 12},   // 12/12
		{18.43, 4}, // 4/12
		{33.69, 8}, // 8/12
	}
	for _, c := range cases {
		if got := DegreesToPitchRise(c.degrees); got != c.want {
			t.Errorf("DegreesToPitchRise(%v) = %d, want %d", c.degrees, got, c.want)
		}
	}
}

func TestPitchRiseLabel(t *testing.T) {
	if got := PitchRiseLabel(0); got != "flat" {
		t.Errorf("rise 0 = %q, want flat", got)
	}
	if got := PitchRiseLabel(-3); got != "flat" {
		t.Errorf("negative rise = %q, want flat", got)
	}
	if got := PitchRiseLabel(6); got != "6/12" {
		t.Errorf("rise 6 = %q, want 6/12", got)
	}
	if got := PitchRiseLabel(20); got != "12/12" {
		t.Errorf("rise above table = %q, want 12/12", got)
	}
}

func TestPitchRiseFromLabel(t *testing.T) {
	for rise := 0; rise <= 12; rise++ {
		label := PitchRiseLabel(rise)
		if got := PitchRiseFromLabel(label); got != rise {
			t.Errorf("round trip rise %d via %q = %d", rise, label, got)
		}
	}
	if got := PitchRiseFromLabel("bogus"); got != 6 {
		t.Errorf("unknown label rise = %d, want 6", got)
	}
}

func TestRoofSurfaceArea(t *testing.T) {
	if got := RoofSurfaceArea(1000, "6/12"); math.Abs(got-1118) > 1 {
		t.Errorf("expected ~1118, got %v", got)
	}
	if got := RoofSurfaceArea(1000, "flat"); got != 1000 {
		t.Errorf("flat surface area should equal footprint, got %v", got)
	}
}
