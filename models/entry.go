package models

import "github.com/uptrace/bun"

// HorseEntry is one runner in a race. Result fields stay NULL until the race
// has been run and the card re-ingested.
type HorseEntry struct {
	bun.BaseModel `bun:"table:horse_entries,alias:he"`

	EntryID   int      `bun:"entry_id,pk,autoincrement" json:"entryID"`
	RaceID    int      `bun:"race_id,notnull" json:"raceID"`
	HorseNo   int      `bun:"horse_no,notnull" json:"horseNo"`
	HorseName string   `bun:"horse_name,notnull" json:"horseName"`
	Draw      int      `bun:"draw,notnull,default:0" json:"draw"`
	Rating    *int     `bun:"rating" json:"rating,omitempty"`
	Weight    *int     `bun:"weight" json:"weight,omitempty"`
	Jockey    *string  `bun:"jockey" json:"jockey,omitempty"`
	Position  *string  `bun:"position" json:"position,omitempty"` // raw, may be "WV" or "DH1"
	Margin    *string  `bun:"margin" json:"margin,omitempty"`
	FinishSec *float64 `bun:"finish_sec" json:"finishSec,omitempty"`

	Race *Race `bun:"rel:belongs-to,join:race_id=race_id" json:"-"`
}
