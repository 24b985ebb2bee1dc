package pace

import (
	"fmt"

	"github.com/hkracing/racesignal/stdtimes"
	"github.com/hkracing/racesignal/timecode"
)

// Observation is one race's observed times as ingested from a result record.
type Observation struct {
	Date      string             `json:"date"`
	RaceNo    int                `json:"raceNo"`
	RaceName  string             `json:"raceName,omitempty"`
	Track     string             `json:"track"`
	Distance  int                `json:"distance"`
	ClassTier string             `json:"classTier"`
	// Winner's finish time in "M:SS.hh" notation.
	FinishTime string `json:"finishTime"`
	// Leader sectional durations keyed by segment label; optional.
	Sectionals map[string]float64 `json:"sectionals,omitempty"`
}

// Result is the pace classification for one race. Available is false on a
// catalog miss, in which case only the identity fields are set.
type Result struct {
	Date      string `json:"date"`
	RaceNo    int    `json:"raceNo"`
	Track     string `json:"track"`
	Distance  int    `json:"distance"`
	ClassTier string `json:"classTier"`

	Available bool `json:"available"`

	FinishSeconds    float64  `json:"finishSeconds,omitempty"`
	ReferenceSeconds float64  `json:"referenceSeconds,omitempty"`
	FinishDelta      float64  `json:"finishDelta"`
	FinishCategory   Category `json:"finishCategory,omitempty"`

	// Sectional-sum comparison, present when the observation carried
	// sectional durations.
	HasSections        bool     `json:"hasSections"`
	SectionSum         float64  `json:"sectionSum,omitempty"`
	ReferenceSectional float64  `json:"referenceSectionSum,omitempty"`
	SectionDelta       float64  `json:"sectionDelta,omitempty"`
	SectionCategory    Category `json:"sectionCategory,omitempty"`

	// Relative band over the batch's finish deltas; set by AnalyzeBatch.
	Band Band `json:"band,omitempty"`
}

// Analyze classifies one race against the reference catalog. A catalog miss
// yields Available=false and a nil error; a malformed time string is an
// error the caller should record against this single race.
func Analyze(cat *stdtimes.Catalog, obs Observation, th Thresholds) (Result, error) {
	res := Result{
		Date:      obs.Date,
		RaceNo:    obs.RaceNo,
		Track:     stdtimes.NormalizeTrack(obs.Track),
		Distance:  obs.Distance,
		ClassTier: stdtimes.NormalizeClass(obs.ClassTier),
	}

	entry, ok := cat.Lookup(obs.Track, obs.Distance, obs.ClassTier)
	if !ok {
		return res, nil
	}

	finish, err := timecode.Parse(obs.FinishTime)
	if err != nil {
		return res, fmt.Errorf("race %s #%d: %w", obs.Date, obs.RaceNo, err)
	}

	res.Available = true
	res.FinishSeconds = finish
	res.ReferenceSeconds = entry.FinishTime
	res.FinishDelta = round2(finish - entry.FinishTime)
	res.FinishCategory = th.Classify(res.FinishDelta)

	if labels, ok := stdtimes.SegmentLabels(obs.Distance); ok && len(obs.Sectionals) > 0 {
		var actual, ref float64
		for _, label := range labels {
			actual += obs.Sectionals[label]
			ref += entry.Segments[label]
		}
		res.HasSections = true
		res.SectionSum = round2(actual)
		res.ReferenceSectional = round2(ref)
		res.SectionDelta = round2(actual - ref)
		res.SectionCategory = th.Classify(res.SectionDelta)
	}

	return res, nil
}

// RecordError ties a per-record failure to its race so a batch can report
// partial results.
type RecordError struct {
	Date   string `json:"date"`
	RaceNo int    `json:"raceNo"`
	Err    string `json:"error"`
}

// BatchResult is the outcome of classifying a card of races: every race that
// could be classified, plus one error entry per race that could not.
type BatchResult struct {
	Results []Result      `json:"results"`
	Errors  []RecordError `json:"errors,omitempty"`
}

// AnalyzeBatch classifies a batch of races and assigns relative A-E bands
// from the batch's own finish-delta distribution. A single malformed record
// never aborts the batch. Batches below MinBandSample use the absolute
// fallback banding.
func AnalyzeBatch(cat *stdtimes.Catalog, batch []Observation, th Thresholds, cuts BandCuts) BatchResult {
	out := BatchResult{Results: make([]Result, 0, len(batch))}

	var deltas []float64
	for _, obs := range batch {
		res, err := Analyze(cat, obs, th)
		if err != nil {
			out.Errors = append(out.Errors, RecordError{Date: obs.Date, RaceNo: obs.RaceNo, Err: err.Error()})
			continue
		}
		if res.Available {
			deltas = append(deltas, res.FinishDelta)
		}
		out.Results = append(out.Results, res)
	}

	scheme, ok := NewBandScheme(deltas, cuts)
	for i := range out.Results {
		if !out.Results[i].Available {
			continue
		}
		if ok {
			out.Results[i].Band = scheme.Classify(out.Results[i].FinishDelta)
		} else {
			out.Results[i].Band = FallbackBand(out.Results[i].FinishDelta, th)
		}
	}

	return out
}
