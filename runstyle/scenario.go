package runstyle

import (
	"math"
	"sort"
)

// Scenario is the expected early-pace shape of a race, derived from how many
// of the field's runners want to lead.
type Scenario string

const (
	PaceFast           Scenario = "FAST"
	PaceModeratelyFast Scenario = "MODERATELY_FAST"
	PaceNormal         Scenario = "NORMAL"
	PaceModeratelySlow Scenario = "MODERATELY_SLOW"
	PaceSlow           Scenario = "SLOW"
)

// scenarioTemplate is the expected style distribution for a standard 12-horse
// field. Actual distributions are scaled to 12 before matching.
type scenarioTemplate struct {
	front, mid, back float64
}

var scenarioTemplates = map[Scenario]scenarioTemplate{
	PaceFast:           {front: 6.5, mid: 3.5, back: 1.5},
	PaceModeratelyFast: {front: 4.5, mid: 4.5, back: 2.5},
	PaceNormal:         {front: 3.5, mid: 5.5, back: 2.5},
	PaceModeratelySlow: {front: 2.5, mid: 4.5, back: 4.5},
	PaceSlow:           {front: 1.5, mid: 3.5, back: 6.5},
}

// ScenarioResult carries the matched scenario with its match confidence.
type ScenarioResult struct {
	Scenario   Scenario `json:"scenario"`
	Confidence float64  `json:"confidence"` // 0-100
	Known      int      `json:"known"`      // horses with a style opinion
}

// PredictScenario matches a field's style distribution against the scenario
// templates by Euclidean distance. Horses with Unknown style contribute
// nothing; a field with no opinions at all yields NORMAL at zero confidence.
func PredictScenario(d Distribution) ScenarioResult {
	known := d.Known()
	if known == 0 {
		return ScenarioResult{Scenario: PaceNormal, Confidence: 0}
	}

	scale := 12.0 / float64(known)
	front := float64(d.Front) * scale
	mid := float64(d.Mid) * scale
	back := float64(d.Back) * scale

	distances := make([]float64, 0, len(scenarioTemplates))
	best := PaceNormal
	bestDist := math.MaxFloat64
	for sc, tpl := range scenarioTemplates {
		dist := math.Sqrt(
			(front-tpl.front)*(front-tpl.front) +
				(mid-tpl.mid)*(mid-tpl.mid) +
				(back-tpl.back)*(back-tpl.back))
		distances = append(distances, dist)
		if dist < bestDist {
			bestDist = dist
			best = sc
		}
	}

	// Distance 0 is full confidence, 6+ is none.
	conf := math.Max(0, math.Min(100, 100-(bestDist/6)*100))

	// A close runner-up makes the call less certain.
	sort.Float64s(distances)
	if len(distances) >= 2 && distances[1]-distances[0] < 0.5 {
		conf *= 0.8
	}

	return ScenarioResult{
		Scenario:   best,
		Confidence: math.Round(conf*10) / 10,
		Known:      known,
	}
}

// DrawAdjustment is the positional shift implied by the barrier draw relative
// to the field midpoint. Negative favours racing forward (inside draws),
// positive pushes the horse back (wide draws).
func DrawAdjustment(draw, fieldSize int) float64 {
	if draw < 1 || fieldSize < 2 {
		return 0
	}
	midpoint := float64(fieldSize+1) / 2
	d := float64(draw)
	switch {
	case d <= midpoint-2:
		return -0.3
	case d >= midpoint+2:
		return 0.5
	case d >= midpoint-1 && d <= midpoint+1:
		return 0
	case d > midpoint+1:
		return 0.3
	default:
		return -0.1
	}
}

// AdjustForDraw applies the draw shift to a prediction and re-buckets it. The
// positional shift is mapped into ratio space over the field, so a wide draw
// can demote a marginal FRONT call to MID. Unknown predictions pass through.
func AdjustForDraw(p Prediction, draw, fieldSize int, cfg Config) Prediction {
	if p.Style == Unknown {
		return p
	}
	if fieldSize < 2 {
		fieldSize = cfg.FallbackFieldSize
	}
	shift := DrawAdjustment(draw, fieldSize)
	if shift == 0 {
		return p
	}

	ratio := p.Ratio - shift/float64(fieldSize-1)
	ratio = math.Max(0, math.Min(1, ratio))

	out := p
	out.Ratio = math.Round(ratio*1000) / 1000
	switch {
	case ratio > cfg.FrontThreshold:
		out.Style = Front
	case ratio < cfg.BackThreshold:
		out.Style = Back
	default:
		out.Style = Mid
	}
	return out
}
