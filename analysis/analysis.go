// Package analysis orchestrates the scoring pipeline over a race card:
// pace classification for each race, runstyle predictions and fitness stages
// 1-3 for every runner, and only then the field-aware stage-4 correction.
package analysis

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hkracing/racesignal/fitness"
	"github.com/hkracing/racesignal/pace"
	"github.com/hkracing/racesignal/runstyle"
	"github.com/hkracing/racesignal/stdtimes"
)

// Options bundles the tuning for all pipeline stages.
type Options struct {
	Thresholds pace.Thresholds
	BandCuts   pace.BandCuts
	Runstyle   runstyle.Config
	Weights    fitness.Weights
	// Workers bounds concurrent race processing in AnalyzeCard.
	Workers int
}

// DefaultOptions returns the tuned defaults with 4 workers.
func DefaultOptions() Options {
	return Options{
		Thresholds: pace.DefaultThresholds(),
		BandCuts:   pace.DefaultBandCuts(),
		Runstyle:   runstyle.DefaultConfig(),
		Weights:    fitness.DefaultWeights(),
		Workers:    4,
	}
}

// Entry is one runner on the card with its scraped history.
type Entry struct {
	HorseNo   int                 `json:"horseNo"`
	HorseName string              `json:"horseName"`
	Draw      int                 `json:"draw"`
	Rating    int                 `json:"rating"`
	History   []fitness.RawRecord `json:"history"` // newest-first
}

// Race is one race's input: card details plus, when the race has been run,
// the observed times for pace classification.
type Race struct {
	Date      string             `json:"date"`
	RaceNo    int                `json:"raceNo"`
	Track     string             `json:"track"`
	Distance  int                `json:"distance"`
	ClassTier string             `json:"classTier"`
	Going     string             `json:"going,omitempty"`
	Entries   []Entry            `json:"entries"`
	DrawStats map[int]fitness.DrawRecord `json:"drawStats,omitempty"`

	FinishTime string             `json:"finishTime,omitempty"`
	Sectionals map[string]float64 `json:"sectionals,omitempty"`
}

// HorseResult is the full pipeline output for one runner.
type HorseResult struct {
	HorseNo   int                 `json:"horseNo"`
	HorseName string              `json:"horseName"`
	Draw      int                 `json:"draw"`
	Runstyle  runstyle.Prediction `json:"runstyle"`
	Score     fitness.Score       `json:"score"`
	Adjusted  fitness.Adjusted    `json:"adjusted"`
	Tags      []fitness.Tag       `json:"tags,omitempty"`
}

// RaceResult is the per-race output. Pace is only set when the race carried
// an observed finish time and the catalog covers its conditions.
type RaceResult struct {
	Date     string                  `json:"date"`
	RaceNo   int                     `json:"raceNo"`
	Pace     *pace.Result            `json:"pace,omitempty"`
	Scenario runstyle.ScenarioResult `json:"scenario"`
	Horses   []HorseResult           `json:"horses"`
}

// RecordError ties a failure to one race so card analysis can report
// partial results.
type RecordError struct {
	Date   string `json:"date"`
	RaceNo int    `json:"raceNo"`
	Err    string `json:"error"`
}

// CardResult is the outcome over a whole card: every race that analyzed,
// plus one error per race that did not.
type CardResult struct {
	Races  []RaceResult  `json:"races"`
	Errors []RecordError `json:"errors,omitempty"`
}

// Analyzer runs the pipeline against a reference catalog.
type Analyzer struct {
	cat  *stdtimes.Catalog
	opts Options
	log  *zap.Logger
}

// New returns an analyzer over the given catalog. A nil logger falls back to
// the global one.
func New(cat *stdtimes.Catalog, opts Options, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.L()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Analyzer{cat: cat, opts: opts, log: log}
}

// Thresholds returns the absolute pace cut-points in use.
func (a *Analyzer) Thresholds() pace.Thresholds { return a.opts.Thresholds }

// BandCuts returns the relative banding cut-points in use.
func (a *Analyzer) BandCuts() pace.BandCuts { return a.opts.BandCuts }

// RunstyleConfig returns the style-prediction tuning in use.
func (a *Analyzer) RunstyleConfig() runstyle.Config { return a.opts.Runstyle }

// AnalyzeRace runs the whole pipeline for one race. Runstyle predictions and
// fitness stages 1-3 complete for every runner before any stage-4 correction
// runs, so each correction sees the full field's predictions.
func (a *Analyzer) AnalyzeRace(ctx context.Context, race Race) (RaceResult, error) {
	if err := ctx.Err(); err != nil {
		return RaceResult{}, err
	}

	out := RaceResult{Date: race.Date, RaceNo: race.RaceNo}

	if race.FinishTime != "" {
		res, err := pace.Analyze(a.cat, pace.Observation{
			Date: race.Date, RaceNo: race.RaceNo,
			Track: race.Track, Distance: race.Distance, ClassTier: race.ClassTier,
			FinishTime: race.FinishTime, Sectionals: race.Sectionals,
		}, a.opts.Thresholds)
		if err != nil {
			return RaceResult{}, err
		}
		out.Pace = &res
		if !res.Available {
			a.log.Warn("no reference time for race",
				zap.String("track", race.Track),
				zap.Int("distance", race.Distance),
				zap.String("class", race.ClassTier))
		}
	}

	// Stages 1-3 for the whole field.
	type staged struct {
		entry      Entry
		prediction runstyle.Prediction
		assessment fitness.Assessment
	}
	stagedResults := make([]staged, 0, len(race.Entries))
	styles := make([]runstyle.Style, 0, len(race.Entries))

	for _, entry := range race.Entries {
		assessment := fitness.Assess(entry.HorseName, entry.History, drawRecord(race.DrawStats, entry.Draw),
			fitness.TagContext{RaceDate: race.Date, CurrentRating: entry.Rating}, a.opts.Weights)

		prediction := runstyle.Predict(pastRuns(assessment.Profile.Records), race.Distance, a.opts.Runstyle)
		prediction = runstyle.AdjustForDraw(prediction, entry.Draw, len(race.Entries), a.opts.Runstyle)

		stagedResults = append(stagedResults, staged{entry: entry, prediction: prediction, assessment: assessment})
		styles = append(styles, prediction.Style)
	}

	// Stage 4 only starts once every runner's prediction is in.
	out.Scenario = runstyle.PredictScenario(runstyle.CountStyles(styles))

	for _, s := range stagedResults {
		adjusted, err := fitness.Finalize(s.assessment, fitness.RaceContext{
			RaceNo:    race.RaceNo,
			Draw:      s.entry.Draw,
			FieldSize: len(race.Entries),
			Style:     s.prediction.Style,
			Pace:      out.Scenario,
			DrawStats: race.DrawStats,
		})
		if err != nil {
			return RaceResult{}, err
		}
		out.Horses = append(out.Horses, HorseResult{
			HorseNo:   s.entry.HorseNo,
			HorseName: s.entry.HorseName,
			Draw:      s.entry.Draw,
			Runstyle:  s.prediction,
			Score:     s.assessment.Score,
			Adjusted:  adjusted,
			Tags:      s.assessment.Tags,
		})
	}

	sort.Slice(out.Horses, func(i, j int) bool {
		return out.Horses[i].Adjusted.Final > out.Horses[j].Adjusted.Final
	})
	return out, nil
}

// AnalyzeCard analyzes every race concurrently with a bounded worker pool.
// One race failing never aborts the card; cancellation does.
func (a *Analyzer) AnalyzeCard(ctx context.Context, races []Race) CardResult {
	results := make([]*RaceResult, len(races))
	var mu sync.Mutex
	var errs []RecordError

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Workers)

	for i, race := range races {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := a.AnalyzeRace(gctx, race)
			if err != nil {
				if gctx.Err() != nil {
					return err
				}
				mu.Lock()
				errs = append(errs, RecordError{Date: race.Date, RaceNo: race.RaceNo, Err: err.Error()})
				mu.Unlock()
				a.log.Warn("race analysis failed",
					zap.String("date", race.Date), zap.Int("race", race.RaceNo), zap.Error(err))
				return nil
			}
			results[i] = &res
			return nil
		})
	}
	// The only group errors are cancellations; partial results still count.
	_ = g.Wait()

	out := CardResult{Errors: errs}
	for _, r := range results {
		if r != nil {
			out.Races = append(out.Races, *r)
		}
	}
	sort.Slice(out.Races, func(i, j int) bool { return out.Races[i].RaceNo < out.Races[j].RaceNo })
	sort.Slice(out.Errors, func(i, j int) bool { return out.Errors[i].RaceNo < out.Errors[j].RaceNo })
	return out
}

func pastRuns(records []fitness.Record) []runstyle.PastRun {
	runs := make([]runstyle.PastRun, 0, len(records))
	for _, r := range records {
		runs = append(runs, runstyle.PastRun{
			Date:     r.Date,
			Distance: r.Distance,
			Position: r.Position,
		})
	}
	return runs
}

func drawRecord(stats map[int]fitness.DrawRecord, draw int) *fitness.DrawRecord {
	if rec, ok := stats[draw]; ok {
		return &rec
	}
	return nil
}
