package runstyle

import "testing"

func TestPredictScenario(t *testing.T) {
	cases := []struct {
		name string
		dist Distribution
		want Scenario
	}{
		{"speed duel", Distribution{Front: 7, Mid: 3, Back: 2}, PaceFast},
		{"balanced field", Distribution{Front: 3, Mid: 6, Back: 3}, PaceNormal},
		{"no pace", Distribution{Front: 1, Mid: 4, Back: 7}, PaceSlow},
	}
	for _, c := range cases {
		got := PredictScenario(c.dist)
		if got.Scenario != c.want {
			t.Errorf("%s: scenario = %v, want %v", c.name, got.Scenario, c.want)
		}
		if got.Confidence <= 0 {
			t.Errorf("%s: confidence = %v, want > 0", c.name, got.Confidence)
		}
	}
}

func TestPredictScenarioAllUnknown(t *testing.T) {
	got := PredictScenario(Distribution{Unknown: 12})
	if got.Scenario != PaceNormal || got.Confidence != 0 {
		t.Errorf("empty field = %v @ %v, want NORMAL @ 0", got.Scenario, got.Confidence)
	}
}

func TestDrawAdjustment(t *testing.T) {
	// Field of 12, midpoint 6.5.
	cases := []struct {
		draw int
		want float64
	}{
		{1, -0.3},  // well inside
		{4, -0.3},
		{5, -0.1},  // slightly inside
		{6, 0},     // middle
		{7, 0},
		{9, 0.5},   // wide
		{12, 0.5},
	}
	for _, c := range cases {
		if got := DrawAdjustment(c.draw, 12); got != c.want {
			t.Errorf("DrawAdjustment(%d, 12) = %v, want %v", c.draw, got, c.want)
		}
	}
	if got := DrawAdjustment(0, 12); got != 0 {
		t.Errorf("unknown draw adjustment = %v, want 0", got)
	}
}

func TestAdjustForDraw(t *testing.T) {
	cfg := DefaultConfig()
	borderline := Prediction{Style: Front, Ratio: 0.62, Confidence: 65, SampleSize: 3}

	wide := AdjustForDraw(borderline, 12, 12, cfg)
	if wide.Style != Mid {
		t.Errorf("wide draw should demote borderline FRONT, got %v (ratio %v)", wide.Style, wide.Ratio)
	}

	inside := AdjustForDraw(borderline, 1, 12, cfg)
	if inside.Style != Front {
		t.Errorf("inside draw should keep FRONT, got %v", inside.Style)
	}
	if inside.Ratio <= borderline.Ratio {
		t.Errorf("inside draw ratio %v should exceed %v", inside.Ratio, borderline.Ratio)
	}

	unknown := AdjustForDraw(Prediction{Style: Unknown}, 12, 12, cfg)
	if unknown.Style != Unknown {
		t.Errorf("Unknown must pass through, got %v", unknown.Style)
	}
}
