// Package runstyle infers a horse's positional tendency (front, mid or back
// of the field) from its past runs, weighting recent starts more heavily.
package runstyle

import (
	"math"
)

// Style is the categorical running-style prediction. Unknown means no
// opinion could be formed; downstream scoring treats it differently from
// Mid, so it is never silently defaulted.
type Style string

const (
	Front   Style = "FRONT"
	Mid     Style = "MID"
	Back    Style = "BACK"
	Unknown Style = "UNKNOWN"
)

// PastRun is one prior start, as needed for style inference. History is
// expected newest-first; the weighting depends on that order.
type PastRun struct {
	Date      string `json:"date,omitempty"`
	Distance  int    `json:"distance,omitempty"`
	Position  int    `json:"position"`  // finishing position, 1-based
	FieldSize int    `json:"fieldSize"` // runners in that race; 0 if unknown
}

// Config holds the tuning parameters. The decay factor and thresholds are
// conventions carried over from seasons of back-testing, not derived values;
// keep them configurable.
type Config struct {
	// DecayFactor weights the k-th most recent run by DecayFactor^k.
	DecayFactor float64
	// FrontThreshold and BackThreshold split the weighted positional ratio:
	// above Front is FRONT, below Back is BACK, in between is MID.
	FrontThreshold float64
	BackThreshold  float64
	// FallbackFieldSize stands in when a past run's field size is unknown.
	FallbackFieldSize int
	// DistanceTolerance prefers past runs within this many metres of the
	// target distance when enough of them exist.
	DistanceTolerance int
	// MinSimilarRuns is how many similar-distance runs are needed before
	// the distance filter applies.
	MinSimilarRuns int
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		DecayFactor:       0.8,
		FrontThreshold:    0.6,
		BackThreshold:     0.4,
		FallbackFieldSize: 12,
		DistanceTolerance: 200,
		MinSimilarRuns:    3,
	}
}

// Prediction is the inference result for one horse.
type Prediction struct {
	Style      Style   `json:"style"`
	Ratio      float64 `json:"ratio"`      // weighted positional ratio, 0-1
	Confidence float64 `json:"confidence"` // 0-100
	SampleSize int     `json:"sampleSize"` // runs that contributed
}

// Predict infers the running style from a newest-first history. An empty or
// wholly unusable history yields the Unknown sentinel, never an error and
// never a silent Mid.
func Predict(history []PastRun, targetDistance int, cfg Config) Prediction {
	usable := filterByDistance(validRuns(history), targetDistance, cfg)
	if len(usable) == 0 {
		return Prediction{Style: Unknown}
	}

	var weightedSum, weightSum float64
	positions := make([]float64, 0, len(usable))
	for k, run := range usable {
		field := run.FieldSize
		if field < 2 {
			field = cfg.FallbackFieldSize
		}
		pos := run.Position
		if pos > field {
			pos = field
		}
		ratio := 1 - float64(pos-1)/float64(field-1)
		w := math.Pow(cfg.DecayFactor, float64(k))
		weightedSum += ratio * w
		weightSum += w
		positions = append(positions, float64(pos))
	}

	ratio := weightedSum / weightSum

	var style Style
	switch {
	case ratio > cfg.FrontThreshold:
		style = Front
	case ratio < cfg.BackThreshold:
		style = Back
	default:
		style = Mid
	}

	return Prediction{
		Style:      style,
		Ratio:      math.Round(ratio*1000) / 1000,
		Confidence: confidence(len(usable), positions),
		SampleSize: len(usable),
	}
}

// validRuns drops records with no finishing position (withdrawn, refused to
// race, unparsed markers end up as 0 or 99 upstream).
func validRuns(history []PastRun) []PastRun {
	out := make([]PastRun, 0, len(history))
	for _, r := range history {
		if r.Position >= 1 && r.Position < 90 {
			out = append(out, r)
		}
	}
	return out
}

// filterByDistance narrows history to runs near the target distance when
// enough exist: first within the configured tolerance, then double it, then
// all runs.
func filterByDistance(history []PastRun, target int, cfg Config) []PastRun {
	if target <= 0 || cfg.DistanceTolerance <= 0 {
		return history
	}
	for _, tol := range []int{cfg.DistanceTolerance, cfg.DistanceTolerance * 2} {
		var filtered []PastRun
		for _, r := range history {
			if r.Distance > 0 && abs(r.Distance-target) <= tol {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) >= cfg.MinSimilarRuns {
			return filtered
		}
	}
	return history
}

// confidence grades the prediction by sample size, penalized when the
// positions swing widely between runs.
func confidence(samples int, positions []float64) float64 {
	var base float64
	switch {
	case samples >= 6:
		base = 85
	case samples >= 4:
		base = 75
	case samples >= 3:
		base = 65
	default:
		base = 50
	}

	penalty := 10.0 // single-run histories stay uncertain
	if len(positions) > 1 {
		sd := stddev(positions)
		switch {
		case sd > 3.0:
			penalty = 15
		case sd > 2.0:
			penalty = 10
		case sd > 1.5:
			penalty = 5
		default:
			penalty = 0
		}
	}

	return math.Max(0, math.Min(100, base-penalty))
}

func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(values)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Distribution counts predicted styles across a field. Unknown predictions
// are excluded from the counts and reported separately so pace-scenario
// logic can weigh them as "no opinion" rather than mid-pack.
type Distribution struct {
	Front   int `json:"front"`
	Mid     int `json:"mid"`
	Back    int `json:"back"`
	Unknown int `json:"unknown"`
}

// Known is the number of horses with an actual style opinion.
func (d Distribution) Known() int {
	return d.Front + d.Mid + d.Back
}

// CountStyles tallies a field's predictions.
func CountStyles(styles []Style) Distribution {
	var d Distribution
	for _, s := range styles {
		switch s {
		case Front:
			d.Front++
		case Mid:
			d.Mid++
		case Back:
			d.Back++
		default:
			d.Unknown++
		}
	}
	return d
}
