// Package pace classifies race times against the reference catalog. A signed
// delta (observed minus reference, seconds) is bucketed two ways: an absolute
// fast/normal/slow split with tunable thresholds, and a relative A-E banding
// driven by the delta distribution of the batch under analysis.
package pace

import (
	"math"
	"sort"
)

// Category is the absolute 3-bucket classification.
type Category string

const (
	Fast   Category = "FAST"
	Normal Category = "NORMAL"
	Slow   Category = "SLOW"
)

// Band is the relative 5-bucket classification, A fastest through E slowest.
type Band string

const (
	BandA Band = "A"
	BandB Band = "B"
	BandC Band = "C"
	BandD Band = "D"
	BandE Band = "E"
)

// Thresholds are the absolute classification cut-points in signed seconds.
// A delta at or below Fast classifies FAST; at or above Slow classifies SLOW.
type Thresholds struct {
	Fast float64
	Slow float64
}

// DefaultThresholds matches the published season convention of half a second
// either side of the reference time.
func DefaultThresholds() Thresholds {
	return Thresholds{Fast: -0.5, Slow: 0.5}
}

// Classify buckets a signed delta. The mapping is monotonic: a larger delta
// never yields a faster category.
func (t Thresholds) Classify(delta float64) Category {
	d := round2(delta)
	switch {
	case d <= t.Fast:
		return Fast
	case d >= t.Slow:
		return Slow
	default:
		return Normal
	}
}

// BandCuts are the percentile cut-points, as fractions of the batch, used to
// derive the A-E band boundaries. Defaults follow a 1/24/50/24/1 split.
type BandCuts struct {
	A float64 // fastest fraction classified A
	B float64 // next fraction classified B
	D float64 // next-to-slowest fraction classified D
	E float64 // slowest fraction classified E
}

// DefaultBandCuts returns the standard 1% / 24% / 50% / 24% / 1% split.
func DefaultBandCuts() BandCuts {
	return BandCuts{A: 0.01, B: 0.24, D: 0.24, E: 0.01}
}

// MinBandSample is the smallest batch for which the relative banding is
// meaningful. Smaller batches fall back to the absolute scheme, collapsed
// onto A/C/E.
const MinBandSample = 5

// BandScheme holds band boundaries computed from one batch's deltas. The
// zero value is not usable; build one with NewBandScheme.
type BandScheme struct {
	boundAB float64
	boundBC float64
	boundCD float64
	boundDE float64
	valid   bool
}

// NewBandScheme derives band boundaries from the signed deltas of the batch
// being analyzed. ok is false when the batch is below MinBandSample; callers
// should then use FallbackBand instead of dividing the batch five ways.
func NewBandScheme(deltas []float64, cuts BandCuts) (BandScheme, bool) {
	if len(deltas) < MinBandSample {
		return BandScheme{}, false
	}
	sorted := make([]float64, len(deltas))
	copy(sorted, deltas)
	sort.Float64s(sorted)

	return BandScheme{
		boundAB: quantile(sorted, cuts.A),
		boundBC: quantile(sorted, cuts.A+cuts.B),
		boundCD: quantile(sorted, 1-cuts.D-cuts.E),
		boundDE: quantile(sorted, 1-cuts.E),
		valid:   true,
	}, true
}

// Classify places a delta from the same batch into its band.
func (s BandScheme) Classify(delta float64) Band {
	switch {
	case delta <= s.boundAB:
		return BandA
	case delta <= s.boundBC:
		return BandB
	case delta <= s.boundCD:
		return BandC
	case delta <= s.boundDE:
		return BandD
	default:
		return BandE
	}
}

// FallbackBand collapses the absolute classification onto the band scale for
// batches too small to carry their own distribution: FAST maps to A, NORMAL
// to C, SLOW to E.
func FallbackBand(delta float64, t Thresholds) Band {
	switch t.Classify(delta) {
	case Fast:
		return BandA
	case Slow:
		return BandE
	default:
		return BandC
	}
}

// quantile returns the q-th quantile of pre-sorted values using linear
// interpolation between closest ranks.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	idx := q * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper {
		return sorted[lower]
	}
	w := idx - float64(lower)
	return sorted[lower]*(1-w) + sorted[upper]*w
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
