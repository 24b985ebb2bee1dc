package models

import "github.com/uptrace/bun"

// Race is one race on a meeting's card. (date, race_no) is the natural key
// ingestion upserts against.
type Race struct {
	bun.BaseModel `bun:"table:races,alias:rc"`

	RaceID     int     `bun:"race_id,pk,autoincrement" json:"raceID"`
	Date       string  `bun:"date,notnull,type:date" json:"date"`
	RaceNo     int     `bun:"race_no,notnull" json:"raceNo"`
	RaceName   *string `bun:"race_name" json:"raceName,omitempty"`
	Track      string  `bun:"track,notnull" json:"track"`
	Distance   int     `bun:"distance,notnull" json:"distance"`
	ClassTier  string  `bun:"class_tier,notnull" json:"classTier"`
	Going      *string `bun:"going" json:"going,omitempty"`
	FinishTime *string `bun:"finish_time" json:"finishTime,omitempty"`

	Entries []*HorseEntry `bun:"rel:has-many,join:race_id=race_id" json:"entries,omitempty"`
}
