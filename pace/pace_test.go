package pace

import (
	"math"
	"testing"

	"github.com/hkracing/racesignal/stdtimes"
)

func TestClassifyThresholds(t *testing.T) {
	th := DefaultThresholds()
	cases := []struct {
		delta float64
		want  Category
	}{
		{-1.00, Fast},
		{-0.50, Fast},
		{-0.49, Normal},
		{-0.40, Normal},
		{0.00, Normal},
		{0.49, Normal},
		{0.50, Slow},
		{1.50, Slow},
	}
	for _, c := range cases {
		if got := th.Classify(c.delta); got != c.want {
			t.Errorf("Classify(%v) = %v, want %v", c.delta, got, c.want)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	th := DefaultThresholds()
	rank := map[Category]int{Fast: 0, Normal: 1, Slow: 2}
	prev := -1
	for d := -3.0; d <= 3.0; d += 0.01 {
		r := rank[th.Classify(d)]
		if r < prev {
			t.Fatalf("classification regressed at delta %v", d)
		}
		prev = r
	}
}

func TestClassifyCustomThresholds(t *testing.T) {
	th := Thresholds{Fast: -1.0, Slow: 1.0}
	if got := th.Classify(-0.6); got != Normal {
		t.Errorf("wider thresholds: Classify(-0.6) = %v, want NORMAL", got)
	}
}

func TestAnalyzeHappyValleyClass4(t *testing.T) {
	cat := stdtimes.Current()
	th := DefaultThresholds()

	// Reference finish time 69.90s.
	res, err := Analyze(cat, Observation{
		Track: "Happy Valley", Distance: 1200, ClassTier: "Class 4",
		FinishTime: "1:09.50",
	}, th)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Available {
		t.Fatal("expected classification to be available")
	}
	if math.Abs(res.FinishDelta-(-0.40)) > 0.005 {
		t.Errorf("delta = %v, want -0.40", res.FinishDelta)
	}
	if res.FinishCategory != Normal {
		t.Errorf("category = %v, want NORMAL", res.FinishCategory)
	}

	res, err = Analyze(cat, Observation{
		Track: "Happy Valley", Distance: 1200, ClassTier: "Class 4",
		FinishTime: "1:08.90",
	}, th)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.FinishDelta-(-1.00)) > 0.005 {
		t.Errorf("delta = %v, want -1.00", res.FinishDelta)
	}
	if res.FinishCategory != Fast {
		t.Errorf("category = %v, want FAST", res.FinishCategory)
	}
}

func TestAnalyzeSectionals(t *testing.T) {
	res, err := Analyze(stdtimes.Current(), Observation{
		Track: "Happy Valley", Distance: 1200, ClassTier: "Class 4",
		FinishTime: "1:09.90",
		Sectionals: map[string]float64{"start-800": 23.65, "800-400": 22.70, "400-finish": 23.55},
	}, DefaultThresholds())
	if err != nil {
		t.Fatal(err)
	}
	if !res.HasSections {
		t.Fatal("expected sectional analysis")
	}
	if math.Abs(res.SectionDelta) > 0.005 {
		t.Errorf("section delta = %v, want 0.00", res.SectionDelta)
	}
	if res.SectionCategory != Normal {
		t.Errorf("section category = %v, want NORMAL", res.SectionCategory)
	}
}

func TestAnalyzeLookupMiss(t *testing.T) {
	res, err := Analyze(stdtimes.Current(), Observation{
		Track: "Happy Valley", Distance: 1050, ClassTier: "Class 4",
		FinishTime: "1:02.00",
	}, DefaultThresholds())
	if err != nil {
		t.Fatalf("lookup miss should not be an error: %v", err)
	}
	if res.Available {
		t.Error("uncatalogued distance should report unavailable")
	}
}

func TestAnalyzeBadTimeString(t *testing.T) {
	_, err := Analyze(stdtimes.Current(), Observation{
		Track: "Happy Valley", Distance: 1200, ClassTier: "Class 4",
		FinishTime: "bogus",
	}, DefaultThresholds())
	if err == nil {
		t.Error("malformed time should error")
	}
}

func TestAnalyzeBatchPartialResults(t *testing.T) {
	batch := []Observation{
		{RaceNo: 1, Track: "Happy Valley", Distance: 1200, ClassTier: "Class 4", FinishTime: "1:09.50"},
		{RaceNo: 2, Track: "Happy Valley", Distance: 1200, ClassTier: "Class 5", FinishTime: "bad"},
		{RaceNo: 3, Track: "Happy Valley", Distance: 1050, ClassTier: "Class 4", FinishTime: "1:02.00"},
		{RaceNo: 4, Track: "Happy Valley", Distance: 1650, ClassTier: "Class 3", FinishTime: "1:39.90"},
	}
	out := AnalyzeBatch(stdtimes.Current(), batch, DefaultThresholds(), DefaultBandCuts())
	if len(out.Errors) != 1 || out.Errors[0].RaceNo != 2 {
		t.Fatalf("errors = %+v, want one for race 2", out.Errors)
	}
	if len(out.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(out.Results))
	}
	for _, r := range out.Results {
		if r.RaceNo == 3 && r.Available {
			t.Error("race 3 should be unavailable (lookup miss)")
		}
	}
}

func TestBandSchemeSplitsBatch(t *testing.T) {
	deltas := make([]float64, 0, 100)
	for i := 0; i < 100; i++ {
		deltas = append(deltas, -2.0+float64(i)*0.04) // -2.0 .. +1.96
	}
	scheme, ok := NewBandScheme(deltas, DefaultBandCuts())
	if !ok {
		t.Fatal("100 deltas should be enough for banding")
	}

	if got := scheme.Classify(-2.0); got != BandA {
		t.Errorf("fastest delta band = %v, want A", got)
	}
	if got := scheme.Classify(0.0); got != BandC {
		t.Errorf("median delta band = %v, want C", got)
	}
	if got := scheme.Classify(1.96); got != BandE {
		t.Errorf("slowest delta band = %v, want E", got)
	}

	// Bands must be ordered along the delta axis.
	rank := map[Band]int{BandA: 0, BandB: 1, BandC: 2, BandD: 3, BandE: 4}
	prev := -1
	for _, d := range deltas {
		r := rank[scheme.Classify(d)]
		if r < prev {
			t.Fatalf("band regressed at delta %v", d)
		}
		prev = r
	}
}

func TestBandSchemeSmallBatchFallsBack(t *testing.T) {
	if _, ok := NewBandScheme([]float64{-0.6, 0.1, 0.7}, DefaultBandCuts()); ok {
		t.Fatal("3 deltas should not produce a 5-band scheme")
	}
	th := DefaultThresholds()
	if got := FallbackBand(-0.6, th); got != BandA {
		t.Errorf("FallbackBand(-0.6) = %v, want A", got)
	}
	if got := FallbackBand(0.1, th); got != BandC {
		t.Errorf("FallbackBand(0.1) = %v, want C", got)
	}
	if got := FallbackBand(0.7, th); got != BandE {
		t.Errorf("FallbackBand(0.7) = %v, want E", got)
	}
}
