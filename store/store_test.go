package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/hkracing/racesignal/models"
)

// newTestStore opens an in-memory SQLite database with just the predictions
// table. The upsert statements are portable, so the refresh semantics can be
// exercised without a PostgreSQL instance.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	sqldb, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE predictions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		race_id INTEGER NOT NULL,
		horse_no INTEGER NOT NULL,
		horse_name TEXT NOT NULL,
		style TEXT NOT NULL,
		style_ratio REAL NOT NULL DEFAULT 0,
		confidence REAL NOT NULL DEFAULT 0,
		composite REAL NOT NULL DEFAULT 0,
		final REAL NOT NULL DEFAULT 0,
		grade TEXT NOT NULL DEFAULT '',
		scenario TEXT NOT NULL DEFAULT '',
		tags TEXT,
		created_at TIMESTAMP NOT NULL,
		UNIQUE (race_id, horse_no)
	)`)
	if err != nil {
		t.Fatal(err)
	}
	return New(db)
}

func TestUpsertPredictionRefreshes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	stale := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	first := &models.Prediction{
		RaceID: 1, HorseNo: 3, HorseName: "快馬",
		Style: "FRONT", Final: 72.5, Grade: "B",
		CreatedAt: stale,
	}
	if err := st.UpsertPrediction(ctx, first); err != nil {
		t.Fatal(err)
	}

	// Re-running analysis for the same runner updates in place.
	second := &models.Prediction{
		RaceID: 1, HorseNo: 3, HorseName: "快馬",
		Style: "MID", Final: 68.0, Grade: "C",
	}
	if err := st.UpsertPrediction(ctx, second); err != nil {
		t.Fatal(err)
	}

	var rows []models.Prediction
	if err := st.db.NewSelect().Model(&rows).Scan(ctx); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	got := rows[0]
	if got.Style != "MID" || got.Final != 68.0 {
		t.Errorf("row not refreshed: style=%q final=%v", got.Style, got.Final)
	}
	if !got.CreatedAt.After(stale) {
		t.Errorf("created_at = %v, want later than %v", got.CreatedAt, stale)
	}
}
