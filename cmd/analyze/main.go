// cmd/analyze/main.go
// Runs the full analysis pipeline over a stored meeting and prints the
// results as JSON.
//
// Usage:
//
//	DB_PASS="pgpass" go run ./cmd/analyze -date 2026-01-07
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hkracing/racesignal/analysis"
	"github.com/hkracing/racesignal/config"
	bundb "github.com/hkracing/racesignal/db"
	"github.com/hkracing/racesignal/fitness"
	applog "github.com/hkracing/racesignal/logger"
	"github.com/hkracing/racesignal/models"
	"github.com/hkracing/racesignal/pace"
	"github.com/hkracing/racesignal/stdtimes"
	"github.com/hkracing/racesignal/store"
)

func main() {
	date := flag.String("date", "", "meeting date, YYYY-MM-DD (required)")
	raceNo := flag.Int("race", 0, "analyze a single race instead of the whole card")
	flag.Parse()

	if *date == "" {
		log.Fatal("-date is required")
	}

	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		log.Fatal("logger:", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := bundb.Setup(cfg)
	defer db.Close()
	st := store.New(db)

	opts := analysis.DefaultOptions()
	opts.Thresholds = pace.Thresholds{Fast: cfg.PaceFastDelta, Slow: cfg.PaceSlowDelta}
	opts.Runstyle.DecayFactor = cfg.RunstyleDecay
	opts.Workers = cfg.AnalysisWorkers
	analyzer := analysis.New(stdtimes.Current(), opts, logger)

	stored, err := st.GetRaceCard(ctx, *date)
	if err != nil {
		logger.Fatal("load card", zap.Error(err))
	}
	if len(stored) == 0 {
		logger.Fatal("no races stored for date", zap.String("date", *date))
	}

	var races []analysis.Race
	for _, r := range stored {
		if *raceNo > 0 && r.RaceNo != *raceNo {
			continue
		}
		race, err := buildRace(ctx, st, r)
		if err != nil {
			logger.Fatal("assemble race", zap.Int("race", r.RaceNo), zap.Error(err))
		}
		races = append(races, race)
	}
	if len(races) == 0 {
		logger.Fatal("race not on card", zap.Int("race", *raceNo))
	}

	result := analyzer.AnalyzeCard(ctx, races)
	if err := ctx.Err(); err != nil {
		logger.Fatal("interrupted", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Fatal("encode result", zap.Error(err))
	}
	logger.Info("card analyzed",
		zap.Int("races", len(result.Races)), zap.Int("errors", len(result.Errors)))
}

// buildRace assembles the pipeline input for one stored race: its entries,
// each runner's history and the draw statistics for its conditions.
func buildRace(ctx context.Context, st *store.Store, r models.Race) (analysis.Race, error) {
	out := analysis.Race{
		Date:      r.Date,
		RaceNo:    r.RaceNo,
		Track:     r.Track,
		Distance:  r.Distance,
		ClassTier: r.ClassTier,
	}
	if r.Going != nil {
		out.Going = *r.Going
	}
	if r.FinishTime != nil {
		out.FinishTime = *r.FinishTime
	}

	for _, e := range r.Entries {
		records, err := st.GetHorseHistory(ctx, e.HorseName)
		if err != nil {
			return analysis.Race{}, err
		}
		entry := analysis.Entry{
			HorseNo:   e.HorseNo,
			HorseName: e.HorseName,
			Draw:      e.Draw,
			History:   rawRecords(records),
		}
		if e.Rating != nil {
			entry.Rating = *e.Rating
		}
		out.Entries = append(out.Entries, entry)
	}

	stats, err := st.GetDrawStats(ctx, r.Track, r.Distance, out.Going)
	if err != nil {
		return analysis.Race{}, err
	}
	out.DrawStats = stats
	return out, nil
}

func rawRecords(records []models.HistoryRecord) []fitness.RawRecord {
	out := make([]fitness.RawRecord, 0, len(records))
	for _, r := range records {
		out = append(out, fitness.RawRecord{
			Date:     r.Date,
			Venue:    r.Venue,
			Going:    r.Going,
			Distance: r.Distance,
			Draw:     r.Draw,
			Position: r.Position,
			Margin:   r.Margin,
			Rating:   r.Rating,
			Weight:   r.Weight,
			Jockey:   r.Jockey,
		})
	}
	return out
}
