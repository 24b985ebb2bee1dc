package fitness

import (
	"fmt"

	"github.com/hkracing/racesignal/runstyle"
)

// maxAdjustment bounds the stage-4 correction in composite points either way.
const maxAdjustment = 10.0

// RaceContext is the race-day snapshot stage 4 runs against. DrawStats and
// Pace describe the whole field, so the caller must have finished stages 1-3
// for every runner before building one.
type RaceContext struct {
	RaceNo    int                    `json:"raceNo"`
	Draw      int                    `json:"draw"`
	FieldSize int                    `json:"fieldSize"`
	Style     runstyle.Style         `json:"style"`
	Pace      runstyle.ScenarioResult `json:"pace"`

	// DrawStats is the group statistic per barrier. StatsRaceNo guards
	// against mixing in another race's snapshot; 0 skips the check.
	DrawStats   map[int]DrawRecord `json:"drawStats,omitempty"`
	StatsRaceNo int                `json:"statsRaceNo,omitempty"`
}

// Adjusted is the stage-4 output. Final stays within maxAdjustment points of
// the stage-2 composite.
type Adjusted struct {
	Base          Score   `json:"base"`
	DrawComponent float64 `json:"drawComponent"` // points
	PaceComponent float64 `json:"paceComponent"` // points
	Adjustment    float64 `json:"adjustment"`    // bounded sum
	Final         float64 `json:"final"`         // 0-100
	Grade         Grade   `json:"grade"`
}

// Adjust applies the bounded realtime correction. It is a pure function of
// the stage outputs and the context, so it can be re-run alone when the draw
// statistics or the field's style predictions refresh.
func Adjust(score Score, records []Record, ctx RaceContext) (Adjusted, error) {
	if ctx.StatsRaceNo != 0 && ctx.RaceNo != 0 && ctx.StatsRaceNo != ctx.RaceNo {
		return Adjusted{}, fmt.Errorf("draw statistics are for race %d, not race %d",
			ctx.StatsRaceNo, ctx.RaceNo)
	}

	drawPts := (barrierScore(records, ctx) - 0.5) * 12
	pacePts := paceFit(ctx.Style, ctx.Pace.Scenario) * ctx.Pace.Confidence / 100 * 8

	adj := drawPts + pacePts
	if adj > maxAdjustment {
		adj = maxAdjustment
	} else if adj < -maxAdjustment {
		adj = -maxAdjustment
	}

	final := score.Composite + adj
	if final > 100 {
		final = 100
	} else if final < 0 {
		final = 0
	}

	return Adjusted{
		Base:          score,
		DrawComponent: round3(drawPts),
		PaceComponent: round3(pacePts),
		Adjustment:    round3(adj),
		Final:         round3(final),
		Grade:         gradeOf(final / 100),
	}, nil
}

// barrierScore blends the horse's own record from this barrier with the
// group statistic. Personal weight scales with sample size: 80% at 8+ runs,
// 30-70% between 3 and 7, statistic-only below 3.
func barrierScore(records []Record, ctx RaceContext) float64 {
	if ctx.Draw < 1 {
		return 0.5
	}

	var wins, places, n int
	for _, r := range records {
		if r.Draw != ctx.Draw {
			continue
		}
		n++
		if r.Position == 1 {
			wins++
		}
		if r.Placed {
			places++
		}
	}

	personalWeight := 0.0
	personalScore := 0.0
	if n >= 3 {
		winRate := float64(wins) / float64(n)
		placeRate := float64(places) / float64(n)
		personalScore = winRate*0.6 + placeRate*0.4
		if n >= 8 {
			personalWeight = 0.8
		} else {
			personalWeight = 0.3 + float64(n-3)*0.1
		}
	}

	statScore := 0.5
	if stat, ok := ctx.DrawStats[ctx.Draw]; ok {
		// Baseline keeps a thin barrier record from swinging the score to
		// an extreme.
		statScore = stat.Top3Rate*0.6 + 0.35
		if stat.RacesRun < 20 {
			reliability := float64(stat.RacesRun) / 20
			statScore = statScore*reliability + 0.5*(1-reliability)
		}
	}

	return clamp01(personalWeight*personalScore + (1-personalWeight)*statScore)
}

// paceFit scores how the horse's style suits the expected early pace: a
// fast pace burns out the leaders and sets up the closers, a slow pace
// hands the race to whatever gets to the front. Unknown styles never move
// the score.
func paceFit(style runstyle.Style, scenario runstyle.Scenario) float64 {
	if style == runstyle.Unknown {
		return 0
	}
	var frontFit float64
	switch scenario {
	case runstyle.PaceFast:
		frontFit = -1
	case runstyle.PaceModeratelyFast:
		frontFit = -0.5
	case runstyle.PaceModeratelySlow:
		frontFit = 0.5
	case runstyle.PaceSlow:
		frontFit = 1
	default:
		return 0
	}
	switch style {
	case runstyle.Front:
		return frontFit
	case runstyle.Back:
		return -frontFit
	default:
		return 0
	}
}
