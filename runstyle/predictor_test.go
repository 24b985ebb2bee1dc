package runstyle

import (
	"testing"
)

func TestPredictEmptyHistoryIsUnknown(t *testing.T) {
	p := Predict(nil, 1200, DefaultConfig())
	if p.Style != Unknown {
		t.Fatalf("Predict(nil) = %v, want UNKNOWN", p.Style)
	}
	p = Predict([]PastRun{}, 1200, DefaultConfig())
	if p.Style != Unknown {
		t.Fatalf("Predict(empty) = %v, want UNKNOWN", p.Style)
	}
}

func TestPredictUnusableHistoryIsUnknown(t *testing.T) {
	// Withdrawn / refused-to-race markers arrive as 0 or 99.
	history := []PastRun{
		{Position: 0, FieldSize: 12, Distance: 1200},
		{Position: 99, FieldSize: 12, Distance: 1200},
	}
	if p := Predict(history, 1200, DefaultConfig()); p.Style != Unknown {
		t.Fatalf("unusable history = %v, want UNKNOWN", p.Style)
	}
}

func TestPredictFrontRunner(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DecayFactor = 1.0 // no decay
	history := []PastRun{
		{Position: 2, FieldSize: 12, Distance: 1200},
		{Position: 3, FieldSize: 12, Distance: 1200},
		{Position: 1, FieldSize: 12, Distance: 1200},
	}
	p := Predict(history, 1200, cfg)
	if p.Style != Front {
		t.Errorf("style = %v, want FRONT", p.Style)
	}
	if p.Ratio < 0.8 {
		t.Errorf("ratio = %v, want >= 0.8", p.Ratio)
	}
	if p.SampleSize != 3 {
		t.Errorf("sample size = %d, want 3", p.SampleSize)
	}
}

func TestPredictBackMarker(t *testing.T) {
	history := []PastRun{
		{Position: 11, FieldSize: 12, Distance: 1200},
		{Position: 10, FieldSize: 12, Distance: 1200},
		{Position: 12, FieldSize: 12, Distance: 1200},
	}
	if p := Predict(history, 1200, DefaultConfig()); p.Style != Back {
		t.Errorf("style = %v, want BACK", p.Style)
	}
}

func TestPredictMidPack(t *testing.T) {
	history := []PastRun{
		{Position: 6, FieldSize: 12, Distance: 1200},
		{Position: 7, FieldSize: 12, Distance: 1200},
		{Position: 6, FieldSize: 12, Distance: 1200},
	}
	if p := Predict(history, 1200, DefaultConfig()); p.Style != Mid {
		t.Errorf("style = %v, want MID", p.Style)
	}
}

func TestPredictRecencyWeighting(t *testing.T) {
	// Most recent runs on the pace, older runs at the rear. With decay the
	// recent form dominates.
	history := []PastRun{
		{Position: 1, FieldSize: 12, Distance: 1200},
		{Position: 2, FieldSize: 12, Distance: 1200},
		{Position: 11, FieldSize: 12, Distance: 1200},
		{Position: 12, FieldSize: 12, Distance: 1200},
		{Position: 12, FieldSize: 12, Distance: 1200},
	}
	cfg := DefaultConfig()
	cfg.DecayFactor = 0.5
	recent := Predict(history, 1200, cfg)

	reversed := make([]PastRun, len(history))
	for i, r := range history {
		reversed[len(history)-1-i] = r
	}
	older := Predict(reversed, 1200, cfg)

	if recent.Ratio <= older.Ratio {
		t.Errorf("recency weighting: recent-front ratio %v should exceed recent-back ratio %v",
			recent.Ratio, older.Ratio)
	}
}

func TestPredictUnknownFieldSizeFallback(t *testing.T) {
	history := []PastRun{
		{Position: 1, Distance: 1200}, // field size unknown
		{Position: 2, Distance: 1200},
		{Position: 1, Distance: 1200},
	}
	if p := Predict(history, 1200, DefaultConfig()); p.Style != Front {
		t.Errorf("style with fallback field size = %v, want FRONT", p.Style)
	}
}

func TestPredictDistanceFilter(t *testing.T) {
	// Three sprint runs on the pace, three staying runs at the rear. For a
	// 1200m target only the sprint form should count.
	history := []PastRun{
		{Position: 1, FieldSize: 12, Distance: 1200},
		{Position: 2, FieldSize: 12, Distance: 1000},
		{Position: 1, FieldSize: 12, Distance: 1200},
		{Position: 12, FieldSize: 12, Distance: 2000},
		{Position: 11, FieldSize: 12, Distance: 2200},
		{Position: 12, FieldSize: 12, Distance: 2000},
	}
	p := Predict(history, 1200, DefaultConfig())
	if p.Style != Front {
		t.Errorf("style = %v, want FRONT (staying runs filtered out)", p.Style)
	}
	if p.SampleSize != 3 {
		t.Errorf("sample size = %d, want 3", p.SampleSize)
	}
}

func TestConfidenceGrowsWithSample(t *testing.T) {
	mk := func(n int) []PastRun {
		runs := make([]PastRun, n)
		for i := range runs {
			runs[i] = PastRun{Position: 3, FieldSize: 12, Distance: 1200}
		}
		return runs
	}
	small := Predict(mk(2), 1200, DefaultConfig())
	large := Predict(mk(8), 1200, DefaultConfig())
	if large.Confidence <= small.Confidence {
		t.Errorf("confidence: %v (n=8) should exceed %v (n=2)", large.Confidence, small.Confidence)
	}
}

func TestCountStyles(t *testing.T) {
	d := CountStyles([]Style{Front, Front, Mid, Back, Unknown, Mid})
	if d.Front != 2 || d.Mid != 2 || d.Back != 1 || d.Unknown != 1 {
		t.Errorf("distribution = %+v", d)
	}
	if d.Known() != 5 {
		t.Errorf("Known() = %d, want 5", d.Known())
	}
}
