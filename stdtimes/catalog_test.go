package stdtimes

import (
	"math"
	"testing"
)

func TestSegmentSumsMatchFinishTimes(t *testing.T) {
	for track, byDist := range defaultEntries {
		for dist, byClass := range byDist {
			for tier, e := range byClass {
				var sum float64
				for _, v := range e.Segments {
					sum += v
				}
				if math.Abs(sum-e.FinishTime) > 0.01 {
					t.Errorf("%s %dm %s: segments sum to %.2f, finish time %.2f",
						track, dist, tier, sum, e.FinishTime)
				}
			}
		}
	}
}

func TestLookupKnownEntry(t *testing.T) {
	e, ok := Current().Lookup("Happy Valley", 1200, "Class 4")
	if !ok {
		t.Fatal("expected entry for Happy Valley 1200m Class 4")
	}
	if e.FinishTime != 69.90 {
		t.Errorf("finish time = %v, want 69.90", e.FinishTime)
	}
}

func TestLookupNormalizesAliases(t *testing.T) {
	cases := []struct {
		track, tier string
	}{
		{"跑馬地", "第四班"},
		{"Happy Valley Turf", "4班"},
		{"跑馬地草地", "Class 4"},
	}
	for _, c := range cases {
		e, ok := Current().Lookup(c.track, 1200, c.tier)
		if !ok {
			t.Errorf("Lookup(%q, 1200, %q) missed", c.track, c.tier)
			continue
		}
		if e.FinishTime != 69.90 {
			t.Errorf("Lookup(%q, 1200, %q) = %v, want 69.90", c.track, c.tier, e.FinishTime)
		}
	}
}

func TestLookupMissIsNormal(t *testing.T) {
	if _, ok := Current().Lookup("Happy Valley", 1050, "Class 4"); ok {
		t.Error("1050m should not be catalogued")
	}
	if _, ok := Current().Lookup("Conghua", 1200, "Class 4"); ok {
		t.Error("unknown track should miss")
	}
	if _, ok := Current().Lookup("Sha Tin", 1200, "Class 99"); ok {
		t.Error("unknown tier should miss")
	}
}

func TestSegmentSum(t *testing.T) {
	sum, ok := Current().SegmentSum("Happy Valley", 1200, "Class 4")
	if !ok {
		t.Fatal("expected segment sum")
	}
	// 23.65 + 22.70 + 23.55
	if math.Abs(sum-69.90) > 0.01 {
		t.Errorf("segment sum = %v, want 69.90", sum)
	}
}

func TestSegmentLabelsByDistance(t *testing.T) {
	cases := []struct {
		dist int
		want int
		ok   bool
	}{
		{1000, 3, true},
		{1200, 3, true},
		{1400, 4, true},
		{1650, 4, true},
		{1800, 5, true},
		{2000, 5, true},
		{2200, 6, true},
		{2400, 6, true},
		{900, 0, false},
		{2600, 0, false},
	}
	for _, c := range cases {
		labels, ok := SegmentLabels(c.dist)
		if ok != c.ok || len(labels) != c.want {
			t.Errorf("SegmentLabels(%d) = %d labels, ok=%v; want %d, ok=%v",
				c.dist, len(labels), ok, c.want, c.ok)
		}
	}
}

func TestTracksAndDistances(t *testing.T) {
	tracks := Current().Tracks()
	want := []string{"Happy Valley", "Sha Tin", "Sha Tin AW"}
	if len(tracks) != len(want) {
		t.Fatalf("Tracks() = %v, want %v", tracks, want)
	}
	for i := range want {
		if tracks[i] != want[i] {
			t.Fatalf("Tracks() = %v, want %v", tracks, want)
		}
	}

	dists := Current().Distances("跑馬地")
	wantDists := []int{1000, 1200, 1650, 1800, 2200}
	if len(dists) != len(wantDists) {
		t.Fatalf("Distances(跑馬地) = %v, want %v", dists, wantDists)
	}
	for i := range wantDists {
		if dists[i] != wantDists[i] {
			t.Fatalf("Distances(跑馬地) = %v, want %v", dists, wantDists)
		}
	}

	if got := Current().Distances("Ascot"); got != nil {
		t.Errorf("Distances(Ascot) = %v, want nil", got)
	}
}

func TestNewCatalogRejectsInconsistentEntry(t *testing.T) {
	bad := map[string]map[int]map[string]Entry{
		"Sha Tin": {1200: {"Class 4": {
			FinishTime: 69.00,
			Segments:   map[string]float64{"start-800": 23.00, "800-400": 22.00, "400-finish": 23.50},
		}}},
	}
	if _, err := NewCatalog(bad); err == nil {
		t.Error("expected validation error for inconsistent segments")
	}
}

func TestReplaceSwapsWholeCatalog(t *testing.T) {
	old := Current()
	defer Replace(old)

	repl, err := NewCatalog(map[string]map[int]map[string]Entry{
		"Sha Tin": {1200: {"Class 4": {
			FinishTime: 70.00,
			Segments:   map[string]float64{"start-800": 24.00, "800-400": 22.50, "400-finish": 23.50},
		}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	Replace(repl)

	e, ok := Current().Lookup("Sha Tin", 1200, "Class 4")
	if !ok || e.FinishTime != 70.00 {
		t.Errorf("after Replace, lookup = (%v, %v)", e.FinishTime, ok)
	}
	if _, ok := Current().Lookup("Happy Valley", 1200, "Class 4"); ok {
		t.Error("old entries should not survive a Replace")
	}
}
