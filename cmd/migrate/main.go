// cmd/migrate/main.go
// Migrates data from the legacy SQLite crawler database into the local
// PostgreSQL database.
//
// Usage:
//
//	LEGACY_SQLITE="/path/to/racing.db" \
//	DB_PASS="pgpass" \
//	go run ./cmd/migrate
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hkracing/racesignal/config"
	bundb "github.com/hkracing/racesignal/db"
	"github.com/hkracing/racesignal/models"
	"github.com/hkracing/racesignal/stdtimes"
	"github.com/hkracing/racesignal/store"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// --- SQLite ---
	if cfg.SQLitePath == "" {
		log.Fatal("LEGACY_SQLITE required, e.g.: /data/racing.db")
	}
	liteDB, err := sql.Open("sqlite3", cfg.SQLitePath)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer liteDB.Close()
	if err := liteDB.PingContext(ctx); err != nil {
		log.Fatalf("ping sqlite: %v", err)
	}
	log.Println("connected to SQLite")

	// --- PostgreSQL ---
	pgDB := bundb.Setup(cfg)
	defer pgDB.Close()
	log.Println("connected to PostgreSQL")

	// Create tables (idempotent)
	if err := bundb.CreateTables(ctx, pgDB); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	st := store.New(pgDB)

	steps := []struct {
		name string
		fn   func() (int, error)
	}{
		{"racecards", func() (int, error) { return migrateRacecards(ctx, liteDB, st) }},
		{"histories", func() (int, error) { return migrateHistories(ctx, liteDB, st) }},
		{"draw_stats", func() (int, error) { return migrateDrawStats(ctx, liteDB, st) }},
	}

	for _, s := range steps {
		n, err := s.fn()
		if err != nil {
			log.Fatalf("migrate %s: %v", s.name, err)
		}
		log.Printf("%-12s  %d rows migrated", s.name, n)
	}

	log.Println("migration complete")
}

// --- helpers ---

// legacyHorse is one runner as the crawler stored it inside data_json.
// Every value is the cell's text; "position" is the horse number column.
type legacyHorse struct {
	Position  string `json:"position"`
	HorseName string `json:"horse_name"`
	Weight    string `json:"weight"`
	Jockey    string `json:"jockey"`
	Barrier   string `json:"barrier"`
	Rating    string `json:"rating"`
}

// legacyRun is one past run as stored inside history_json. "going" there is
// the running-position string; the ground condition is "condition".
type legacyRun struct {
	Position  string `json:"position"`
	Date      string `json:"date"`
	Venue     string `json:"venue"`
	Distance  string `json:"distance"`
	Condition string `json:"condition"`
	Barrier   string `json:"barrier"`
	Rating    string `json:"rating"`
	Jockey    string `json:"jockey"`
	WinDist   string `json:"winning_distance"`
	Weight    string `json:"actual_weight"`
}

var legacyDateLayouts = []string{"2006/01/02", "02/01/06", "02/01/2006", "2006-01-02"}

// legacyDate normalizes the crawler's date strings ("2026/01/07", "03/12/25")
// to ISO, passing anything unparsable through unchanged.
func legacyDate(s string) string {
	for _, layout := range legacyDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intPtr(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

// --- per-table migrations ---

// migrateRacecards upserts each legacy racecard as a race plus its entries.
// The legacy store never recorded distance or class; a fresh card ingest
// fills those in later.
func migrateRacecards(ctx context.Context, liteDB *sql.DB, st *store.Store) (int, error) {
	rows, err := liteDB.QueryContext(ctx,
		"SELECT race_id, date, racecourse, race_no, data_json FROM racecards ORDER BY date")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		var (
			raceID     string
			date       string
			racecourse string
			raceNo     int
			dataJSON   []byte
		)
		if err := rows.Scan(&raceID, &date, &racecourse, &raceNo, &dataJSON); err != nil {
			return total, err
		}

		var horses []legacyHorse
		if err := json.Unmarshal(dataJSON, &horses); err != nil {
			log.Printf("skip racecard %s: bad data_json: %v", raceID, err)
			continue
		}

		race := &models.Race{
			Date:   legacyDate(date),
			RaceNo: raceNo,
			Track:  stdtimes.NormalizeTrack(racecourse),
		}
		if err := st.UpsertRace(ctx, race); err != nil {
			return total, err
		}

		for _, h := range horses {
			horseNo := atoi(h.Position)
			if horseNo < 1 || h.HorseName == "" {
				continue
			}
			entry := &models.HorseEntry{
				RaceID:    race.RaceID,
				HorseNo:   horseNo,
				HorseName: h.HorseName,
				Draw:      atoi(h.Barrier),
				Rating:    intPtr(atoi(h.Rating)),
				Weight:    intPtr(atoi(h.Weight)),
				Jockey:    strPtr(h.Jockey),
			}
			if err := st.UpsertHorseEntry(ctx, entry); err != nil {
				return total, err
			}
		}
		total++
	}
	return total, rows.Err()
}

// migrateHistories flattens each history_json blob into history records.
// A horse scraped for several races carries the same runs more than once;
// the natural-key upsert collapses the duplicates.
func migrateHistories(ctx context.Context, liteDB *sql.DB, st *store.Store) (int, error) {
	rows, err := liteDB.QueryContext(ctx,
		"SELECT horse_name, history_json FROM horse_histories")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		var (
			horseName   string
			historyJSON []byte
		)
		if err := rows.Scan(&horseName, &historyJSON); err != nil {
			return total, err
		}

		var runs []legacyRun
		if err := json.Unmarshal(historyJSON, &runs); err != nil {
			log.Printf("skip history for %s: bad history_json: %v", horseName, err)
			continue
		}

		records := make([]models.HistoryRecord, 0, len(runs))
		for _, r := range runs {
			if r.Date == "" || r.Venue == "" {
				continue
			}
			records = append(records, models.HistoryRecord{
				HorseName: horseName,
				Date:      legacyDate(r.Date),
				Venue:     r.Venue,
				Going:     r.Condition,
				Distance:  r.Distance,
				Draw:      r.Barrier,
				Position:  r.Position,
				Margin:    r.WinDist,
				Rating:    r.Rating,
				Weight:    r.Weight,
				Jockey:    r.Jockey,
			})
		}
		if err := st.UpsertHistoryRecords(ctx, records); err != nil {
			return total, err
		}
		total += len(records)
	}
	return total, rows.Err()
}

// migrateDrawStats converts the legacy percentage rates to fractions. Rows
// come out oldest first so the newest snapshot for each condition wins the
// upsert.
func migrateDrawStats(ctx context.Context, liteDB *sql.DB, st *store.Store) (int, error) {
	rows, err := liteDB.QueryContext(ctx,
		`SELECT date, distance, going, track, draw, races_run, win_rate, place_rate, top3_rate
		 FROM draw_statistics ORDER BY date`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var stats []models.DrawStat
	for rows.Next() {
		var (
			date      string
			distance  int
			going     string
			track     string
			draw      int
			racesRun  int
			winRate   float64
			placeRate float64
			top3Rate  float64
		)
		if err := rows.Scan(&date, &distance, &going, &track, &draw,
			&racesRun, &winRate, &placeRate, &top3Rate); err != nil {
			return 0, err
		}
		stats = append(stats, models.DrawStat{
			Track:     stdtimes.NormalizeTrack(track),
			Distance:  distance,
			Going:     going,
			Draw:      draw,
			RacesRun:  racesRun,
			WinRate:   winRate / 100,
			PlaceRate: placeRate / 100,
			Top3Rate:  top3Rate / 100,
			ScrapedAt: legacyDate(date),
		})
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if err := st.SaveDrawStats(ctx, stats); err != nil {
		return 0, err
	}
	return len(stats), nil
}
