package fitness

import "math"

// Weights distributes the composite score across the four sub-scores. The
// values must sum to 1.
type Weights struct {
	Placement  float64 // consistency getting into the placings
	Stability  float64 // win/place balance and beaten-length spread
	Adaptation float64 // draw and venue advantage
	RecentForm float64 // recent vs overall trend
}

// DefaultWeights returns the 30/25/25/20 split.
func DefaultWeights() Weights {
	return Weights{Placement: 0.30, Stability: 0.25, Adaptation: 0.25, RecentForm: 0.20}
}

// Grade buckets a composite score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
)

// SubScores are the four dimension scores, each 0-1.
type SubScores struct {
	Placement  float64 `json:"placement"`
	Stability  float64 `json:"stability"`
	Adaptation float64 `json:"adaptation"`
	RecentForm float64 `json:"recentForm"`
}

// Score is the stage-2 output: composite 0-100 with its components.
type Score struct {
	Composite  float64   `json:"composite"` // 0-100
	Grade      Grade     `json:"grade"`
	Components SubScores `json:"components"`
}

// DrawRecord is the group draw statistic used by the adaptation sub-score
// and the stage-4 barrier blend.
type DrawRecord struct {
	Draw      int     `json:"draw"`
	RacesRun  int     `json:"racesRun"`
	WinRate   float64 `json:"winRate"`   // fraction, not percent
	PlaceRate float64 `json:"placeRate"` // top-2
	Top3Rate  float64 `json:"top3Rate"`
}

// fieldAvgWinRate is the long-run win rate of an average runner, used to
// scale draw advantage.
const fieldAvgWinRate = 0.12

// Calculate produces the weighted composite score from a horse's metrics.
// The draw statistic is optional; without it the adaptation dimension leans
// on venue advantage alone.
func Calculate(m Metrics, draw *DrawRecord, w Weights) Score {
	sub := SubScores{
		Placement:  placementScore(m),
		Stability:  stabilityScore(m),
		Adaptation: adaptationScore(m, draw),
		RecentForm: recentFormScore(m),
	}
	composite := sub.Placement*w.Placement +
		sub.Stability*w.Stability +
		sub.Adaptation*w.Adaptation +
		sub.RecentForm*w.RecentForm

	return Score{
		Composite:  math.Round(composite*1000) / 10, // 0-100, one decimal
		Grade:      gradeOf(composite),
		Components: sub,
	}
}

// placementScore blends overall, recent and same-distance placement rates.
// The 1.5 factor stretches the practical ceiling (about 0.67) to 1.
func placementScore(m Metrics) float64 {
	overall := m.OverallPlacementRate
	recent := m.RecentPlacementRate
	sameDistance := overall
	score := overall*0.4 + recent*0.4 + sameDistance*0.2
	return clamp01(score * 1.5)
}

// stabilityScore rewards a balanced win/place ratio (0.4 is the healthy
// middle) and small beaten margins. Margins of 5+ lengths score zero on the
// margin component.
func stabilityScore(m Metrics) float64 {
	ratioScore := 0.5
	if m.WinPlaceRatio > 0 {
		ratioScore = 1 - math.Abs(m.WinPlaceRatio-0.4)/0.4
	}
	marginScore := math.Max(0, 1-m.AvgMargin/5)
	return clamp01(ratioScore*0.7 + marginScore*0.3)
}

// adaptationScore combines draw advantage against the field average with the
// horse's best-venue edge over its overall rate. Both advantages cap at 1.5x.
func adaptationScore(m Metrics, draw *DrawRecord) float64 {
	drawAdvantage := 1.0
	if draw != nil && draw.WinRate > 0 {
		drawAdvantage = math.Min(1.5, draw.WinRate/fieldAvgWinRate)
	}

	venueAdvantage := 1.0
	if len(m.VenueStats) > 0 && m.OverallPlacementRate > 0 {
		best := 0.0
		for _, rate := range m.VenueStats {
			if rate > best {
				best = rate
			}
		}
		venueAdvantage = math.Min(1.5, best/m.OverallPlacementRate)
	}

	return clamp01((drawAdvantage*0.6 + venueAdvantage*0.4) / 1.5)
}

// recentFormScore maps the recent-vs-overall trend ratio onto a stepped
// score: clearly improving horses near the top, clearly declining near the
// bottom.
func recentFormScore(m Metrics) float64 {
	if m.OverallPlacementRate <= 0 {
		return 0.5
	}
	trend := m.RecentPlacementRate / m.OverallPlacementRate
	switch {
	case trend >= 1.2:
		return 0.9
	case trend >= 1.0:
		return 0.8
	case trend >= 0.8:
		return 0.7
	case trend >= 0.5:
		return 0.5
	default:
		return 0.2
	}
}

func gradeOf(composite float64) Grade {
	switch {
	case composite >= 0.80:
		return GradeA
	case composite >= 0.65:
		return GradeB
	case composite >= 0.50:
		return GradeC
	case composite >= 0.35:
		return GradeD
	default:
		return GradeE
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
