// Package store is the persistence adapter over bun. All writes against a
// natural key go through single-statement upserts, so re-ingesting the same
// scrape is idempotent and readers never see a half-applied row. The store
// does not retry; callers own retry policy.
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/hkracing/racesignal/fitness"
	"github.com/hkracing/racesignal/models"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("store: not found")

// Store wraps the database handle.
type Store struct {
	db *bun.DB
}

// New returns a Store over the given connection.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}

// UpsertRace inserts or refreshes a race by (date, race_no) and fills in
// RaceID on the way out.
func (s *Store) UpsertRace(ctx context.Context, race *models.Race) error {
	_, err := s.db.NewInsert().Model(race).
		On("CONFLICT (date, race_no) DO UPDATE").
		Set("race_name = EXCLUDED.race_name").
		Set("track = EXCLUDED.track").
		Set("distance = EXCLUDED.distance").
		Set("class_tier = EXCLUDED.class_tier").
		Set("going = EXCLUDED.going").
		Set("finish_time = EXCLUDED.finish_time").
		Returning("race_id").
		Exec(ctx)
	return err
}

// UpsertHorseEntry inserts or refreshes a runner by (race_id, horse_no).
func (s *Store) UpsertHorseEntry(ctx context.Context, entry *models.HorseEntry) error {
	_, err := s.db.NewInsert().Model(entry).
		On("CONFLICT (race_id, horse_no) DO UPDATE").
		Set("horse_name = EXCLUDED.horse_name").
		Set("draw = EXCLUDED.draw").
		Set("rating = EXCLUDED.rating").
		Set("weight = EXCLUDED.weight").
		Set("jockey = EXCLUDED.jockey").
		Set("position = EXCLUDED.position").
		Set("margin = EXCLUDED.margin").
		Set("finish_sec = EXCLUDED.finish_sec").
		Returning("entry_id").
		Exec(ctx)
	return err
}

// UpsertHistoryRecords saves a horse's scraped past runs. Each row upserts
// on its own natural key so a partial batch failure leaves the earlier rows
// committed and visible.
func (s *Store) UpsertHistoryRecords(ctx context.Context, records []models.HistoryRecord) error {
	for i := range records {
		_, err := s.db.NewInsert().Model(&records[i]).
			On("CONFLICT (horse_name, date, venue, distance) DO UPDATE").
			Set("going = EXCLUDED.going").
			Set("draw = EXCLUDED.draw").
			Set("position = EXCLUDED.position").
			Set("margin = EXCLUDED.margin").
			Set("rating = EXCLUDED.rating").
			Set("weight = EXCLUDED.weight").
			Set("jockey = EXCLUDED.jockey").
			Exec(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

// UpsertPrediction saves a pipeline result by (race_id, horse_no). The
// stored created_at always reflects the latest refresh.
func (s *Store) UpsertPrediction(ctx context.Context, p *models.Prediction) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	_, err := s.db.NewInsert().Model(p).
		On("CONFLICT (race_id, horse_no) DO UPDATE").
		Set("horse_name = EXCLUDED.horse_name").
		Set("style = EXCLUDED.style").
		Set("style_ratio = EXCLUDED.style_ratio").
		Set("confidence = EXCLUDED.confidence").
		Set("composite = EXCLUDED.composite").
		Set("final = EXCLUDED.final").
		Set("grade = EXCLUDED.grade").
		Set("scenario = EXCLUDED.scenario").
		Set("tags = EXCLUDED.tags").
		Set("created_at = EXCLUDED.created_at").
		Exec(ctx)
	return err
}

// GetRace fetches one race with its entries.
func (s *Store) GetRace(ctx context.Context, date string, raceNo int) (*models.Race, error) {
	race := new(models.Race)
	err := s.db.NewSelect().Model(race).
		Relation("Entries").
		Where("rc.date = ?", date).
		Where("rc.race_no = ?", raceNo).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return race, err
}

// GetRaceCard fetches every race on a date, entries included, in race order.
func (s *Store) GetRaceCard(ctx context.Context, date string) ([]models.Race, error) {
	var races []models.Race
	err := s.db.NewSelect().Model(&races).
		Relation("Entries").
		Where("rc.date = ?", date).
		Order("rc.race_no ASC").
		Scan(ctx)
	return races, err
}

// Dates lists the distinct meeting dates, newest first.
func (s *Store) Dates(ctx context.Context) ([]string, error) {
	var dates []string
	err := s.db.NewSelect().Model((*models.Race)(nil)).
		ColumnExpr("DISTINCT date").
		Order("date DESC").
		Scan(ctx, &dates)
	return dates, err
}

// GetHorseHistory returns a horse's past runs newest-first.
func (s *Store) GetHorseHistory(ctx context.Context, horseName string) ([]models.HistoryRecord, error) {
	var records []models.HistoryRecord
	err := s.db.NewSelect().Model(&records).
		Where("horse_name = ?", horseName).
		Order("date DESC").
		Scan(ctx)
	return records, err
}

// SaveDrawStats replaces the snapshot for each (track, distance, going, draw)
// in one transaction, so readers see either the old snapshot or the new one.
func (s *Store) SaveDrawStats(ctx context.Context, stats []models.DrawStat) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for i := range stats {
			_, err := tx.NewInsert().Model(&stats[i]).
				On("CONFLICT (track, distance, going, draw) DO UPDATE").
				Set("races_run = EXCLUDED.races_run").
				Set("win_rate = EXCLUDED.win_rate").
				Set("place_rate = EXCLUDED.place_rate").
				Set("top3_rate = EXCLUDED.top3_rate").
				Set("scraped_at = EXCLUDED.scraped_at").
				Exec(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// GetDrawStats fetches the snapshot for the given conditions, keyed by draw.
func (s *Store) GetDrawStats(ctx context.Context, track string, distance int, going string) (map[int]fitness.DrawRecord, error) {
	var rows []models.DrawStat
	q := s.db.NewSelect().Model(&rows).
		Where("track = ?", track).
		Where("distance = ?", distance)
	if going != "" {
		q = q.Where("going = ?", going)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}

	out := make(map[int]fitness.DrawRecord, len(rows))
	for _, row := range rows {
		out[row.Draw] = fitness.DrawRecord{
			Draw:      row.Draw,
			RacesRun:  row.RacesRun,
			WinRate:   row.WinRate,
			PlaceRate: row.PlaceRate,
			Top3Rate:  row.Top3Rate,
		}
	}
	return out, nil
}
