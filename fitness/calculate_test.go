package fitness

import (
	"math"
	"testing"
)

func TestCalculateComposite(t *testing.T) {
	m := Metrics{
		TotalRaces:           10,
		OverallPlacementRate: 0.5,
		RecentPlacementRate:  0.5,
		WinPlaceRatio:        0.4,
	}
	got := Calculate(m, nil, DefaultWeights())

	// placement (0.5*0.4+0.5*0.4+0.5*0.2)*1.5 = 0.75
	// stability 1.0, adaptation 2/3, recent form 0.8
	// composite 0.75*0.30 + 1.0*0.25 + (2/3)*0.25 + 0.8*0.20 = 0.8017
	if math.Abs(got.Composite-80.2) > 0.05 {
		t.Errorf("composite = %v, want 80.2", got.Composite)
	}
	if got.Grade != GradeA {
		t.Errorf("grade = %v, want A", got.Grade)
	}
}

func TestCalculateStabilityPrefersBalancedRatio(t *testing.T) {
	balanced := Metrics{TotalRaces: 10, WinPlaceRatio: 0.4}
	lopsided := Metrics{TotalRaces: 10, WinPlaceRatio: 0.9}
	w := DefaultWeights()
	if Calculate(balanced, nil, w).Components.Stability <= Calculate(lopsided, nil, w).Components.Stability {
		t.Error("a 0.4 win/place ratio should out-score 0.9 on stability")
	}
}

func TestCalculateDrawAdvantage(t *testing.T) {
	m := Metrics{TotalRaces: 10, OverallPlacementRate: 0.4, RecentPlacementRate: 0.4}
	good := &DrawRecord{Draw: 2, RacesRun: 100, WinRate: 0.18}
	bad := &DrawRecord{Draw: 14, RacesRun: 100, WinRate: 0.04}
	w := DefaultWeights()
	if Calculate(m, good, w).Components.Adaptation <= Calculate(m, bad, w).Components.Adaptation {
		t.Error("a high-win-rate draw should out-score a low one on adaptation")
	}
}

func TestCalculateRecentFormSteps(t *testing.T) {
	cases := []struct {
		recent, overall float64
		want            float64
	}{
		{0.6, 0.4, 0.9}, // improving
		{0.4, 0.4, 0.8}, // steady
		{0.3, 0.4, 0.5}, // fading
		{0.1, 0.4, 0.2}, // declining
	}
	for _, c := range cases {
		m := Metrics{TotalRaces: 10, OverallPlacementRate: c.overall, RecentPlacementRate: c.recent}
		got := Calculate(m, nil, DefaultWeights()).Components.RecentForm
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("recent form (%v/%v) = %v, want %v", c.recent, c.overall, got, c.want)
		}
	}
}

func TestGradeBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Grade
	}{
		{0.85, GradeA}, {0.80, GradeA},
		{0.79, GradeB}, {0.65, GradeB},
		{0.64, GradeC}, {0.50, GradeC},
		{0.49, GradeD}, {0.35, GradeD},
		{0.34, GradeE}, {0.0, GradeE},
	}
	for _, c := range cases {
		if got := gradeOf(c.score); got != c.want {
			t.Errorf("gradeOf(%v) = %v, want %v", c.score, got, c.want)
		}
	}
}
