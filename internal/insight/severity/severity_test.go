package severity

import "testing"

func TestClassifyProfiles(t *testing.T) {
	cases := []struct {
		name       string
		value      int
		thresholds Thresholds
		band       Band
		color      Color
	}{
		{name: "issue_low_boundary", value: 39, thresholds: IssueThresholds, band: BandLow, color: ColorGreen},
		{name: "issue_medium_lower_edge", value: 40, thresholds: IssueThresholds, band: BandMedium, color: ColorYellow},
		{name: "issue_medium_upper_edge", value: 59, thresholds: IssueThresholds, band: BandMedium, color: ColorYellow},
		{name: "issue_high_edge", value: 60, thresholds: IssueThresholds, band: BandHigh, color: ColorRed},
		{name: "system_low_boundary", value: 29, thresholds: SystemThresholds, band: BandLow, color: ColorGreen},
		{name: "system_medium", value: 60, thresholds: SystemThresholds, band: BandMedium, color: ColorYellow},
		{name: "system_high_edge", value: 70, thresholds: SystemThresholds, band: BandHigh, color: ColorRed},
		{name: "negative_value_is_low", value: -5, thresholds: IssueThresholds, band: BandLow, color: ColorGreen},
		{name: "above_hundred_is_high", value: 140, thresholds: IssueThresholds, band: BandHigh, color: ColorRed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.value, tc.thresholds)
			if got.Band != tc.band || got.Color != tc.color {
				t.Fatalf("Classify(%d, %+v) = %+v, want band=%s color=%s", tc.value, tc.thresholds, got, tc.band, tc.color)
			}
		})
	}
}

func TestClassifyMonotonic(t *testing.T) {
	for _, profile := range []Thresholds{IssueThresholds, SystemThresholds} {
		prev := 0
		for v := 0; v <= 100; v++ {
			w := Classify(v, profile).Band.Weight()
			if w < prev {
				t.Fatalf("band weight dropped from %d to %d at value %d (profile %+v)", prev, w, v, profile)
			}
			prev = w
		}
	}
}

func TestBandWeightOrdering(t *testing.T) {
	if !(BandHigh.Weight() > BandMedium.Weight() && BandMedium.Weight() > BandLow.Weight()) {
		t.Fatalf("band weights not strictly ordered: high=%d medium=%d low=%d",
			BandHigh.Weight(), BandMedium.Weight(), BandLow.Weight())
	}
	if Band("unknown").Weight() != 0 {
		t.Fatalf("unknown band should weigh 0")
	}
}
