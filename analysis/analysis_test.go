package analysis

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/hkracing/racesignal/fitness"
	"github.com/hkracing/racesignal/runstyle"
	"github.com/hkracing/racesignal/stdtimes"
)

func newTestAnalyzer() *Analyzer {
	return New(stdtimes.Current(), DefaultOptions(), zap.NewNop())
}

func history(positions ...string) []fitness.RawRecord {
	recs := make([]fitness.RawRecord, 0, len(positions))
	for _, p := range positions {
		recs = append(recs, fitness.RawRecord{
			Date: "2026/05/01", Venue: "跑馬地", Distance: "1200",
			Position: p, Rating: "60", Draw: "4",
		})
	}
	return recs
}

func testRace() Race {
	return Race{
		Date: "2026/06/10", RaceNo: 1,
		Track: "Happy Valley", Distance: 1200, ClassTier: "Class 4",
		Entries: []Entry{
			{HorseNo: 1, HorseName: "快馬", Draw: 2, Rating: 60, History: history("1", "2", "1", "3")},
			{HorseNo: 2, HorseName: "慢馬", Draw: 6, Rating: 55, History: history("9", "10", "8", "11")},
			{HorseNo: 3, HorseName: "新馬", Draw: 9, Rating: 0, History: nil},
		},
	}
}

func TestAnalyzeRace(t *testing.T) {
	a := newTestAnalyzer()
	res, err := a.AnalyzeRace(context.Background(), testRace())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Horses) != 3 {
		t.Fatalf("horses = %d, want 3", len(res.Horses))
	}

	byNo := map[int]HorseResult{}
	for _, h := range res.Horses {
		byNo[h.HorseNo] = h
	}
	if byNo[3].Runstyle.Style != runstyle.Unknown {
		t.Errorf("first starter style = %v, want UNKNOWN", byNo[3].Runstyle.Style)
	}
	if byNo[1].Runstyle.Style == runstyle.Unknown {
		t.Error("horse with full history should have a style opinion")
	}
	if res.Scenario.Scenario == "" {
		t.Error("scenario should be set from the field's predictions")
	}

	// Output ranked by adjusted score, best first.
	for i := 1; i < len(res.Horses); i++ {
		if res.Horses[i-1].Adjusted.Final < res.Horses[i].Adjusted.Final {
			t.Fatal("horses must be sorted by final score descending")
		}
	}
	if res.Horses[0].HorseNo != 1 {
		t.Errorf("top-ranked = horse %d, want the in-form horse 1", res.Horses[0].HorseNo)
	}
}

func TestAnalyzeRaceWithObservedTime(t *testing.T) {
	a := newTestAnalyzer()
	race := testRace()
	race.FinishTime = "1:09.50"
	res, err := a.AnalyzeRace(context.Background(), race)
	if err != nil {
		t.Fatal(err)
	}
	if res.Pace == nil || !res.Pace.Available {
		t.Fatal("expected an available pace classification")
	}
	if res.Pace.FinishDelta > -0.39 || res.Pace.FinishDelta < -0.41 {
		t.Errorf("finish delta = %v, want -0.40", res.Pace.FinishDelta)
	}
}

func TestAnalyzeRaceLookupMissIsNotFatal(t *testing.T) {
	a := newTestAnalyzer()
	race := testRace()
	race.Distance = 1050
	race.FinishTime = "1:02.00"
	res, err := a.AnalyzeRace(context.Background(), race)
	if err != nil {
		t.Fatalf("uncatalogued conditions should not fail the race: %v", err)
	}
	if res.Pace == nil || res.Pace.Available {
		t.Error("pace should be present but unavailable")
	}
	if len(res.Horses) != 3 {
		t.Errorf("horse scoring must still run, got %d results", len(res.Horses))
	}
}

func TestAnalyzeCardPartialResults(t *testing.T) {
	a := newTestAnalyzer()

	good := testRace()
	bad := testRace()
	bad.RaceNo = 2
	bad.FinishTime = "bogus"
	alsoGood := testRace()
	alsoGood.RaceNo = 3

	out := a.AnalyzeCard(context.Background(), []Race{good, bad, alsoGood})
	if len(out.Races) != 2 {
		t.Fatalf("races = %d, want 2", len(out.Races))
	}
	if len(out.Errors) != 1 || out.Errors[0].RaceNo != 2 {
		t.Fatalf("errors = %+v, want one for race 2", out.Errors)
	}
	if out.Races[0].RaceNo != 1 || out.Races[1].RaceNo != 3 {
		t.Errorf("races out of order: %d, %d", out.Races[0].RaceNo, out.Races[1].RaceNo)
	}
}

func TestAnalyzeCardCancellation(t *testing.T) {
	a := newTestAnalyzer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := a.AnalyzeCard(ctx, []Race{testRace()})
	if len(out.Races) != 0 {
		t.Errorf("cancelled card should produce no results, got %d", len(out.Races))
	}
}
