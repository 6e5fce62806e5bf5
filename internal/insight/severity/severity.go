// Package severity maps 0-100 load values onto traffic-light severity bands.
package severity

// Band is a three-tier severity classification.
type Band string

const (
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// Color is the traffic-light color associated with a band.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
)

// Thresholds holds the two cut points of a classification profile.
// Values below Low are green, values at or above High are red.
type Thresholds struct {
	Low  int
	High int
}

// The application historically uses different cut points for individual
// issue badges and for aggregated system-load bars. Both profiles are kept
// distinct on purpose; callers pass the one their screen always used.
var (
	IssueThresholds  = Thresholds{Low: 40, High: 60}
	SystemThresholds = Thresholds{Low: 30, High: 70}
)

// Level pairs a band with its display color.
type Level struct {
	Band  Band  `json:"band"`
	Color Color `json:"color"`
}

// Classify buckets value against the given thresholds. Values outside
// [0,100] are not rejected; they fall through the same comparisons.
func Classify(value int, t Thresholds) Level {
	switch {
	case value < t.Low:
		return Level{Band: BandLow, Color: ColorGreen}
	case value < t.High:
		return Level{Band: BandMedium, Color: ColorYellow}
	default:
		return Level{Band: BandHigh, Color: ColorRed}
	}
}

// Weight returns a numeric rank for sorting, higher meaning more severe.
func (b Band) Weight() int {
	switch b {
	case BandHigh:
		return 3
	case BandMedium:
		return 2
	case BandLow:
		return 1
	default:
		return 0
	}
}
