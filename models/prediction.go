package models

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

// Prediction is the stored pipeline output for one runner in one race.
// Upserted on (race_id, horse_no) so re-running analysis refreshes in place;
// CreatedAt moves with each refresh and dates the stored numbers.
type Prediction struct {
	bun.BaseModel `bun:"table:predictions,alias:p"`

	ID         int             `bun:"id,pk,autoincrement" json:"id"`
	RaceID     int             `bun:"race_id,notnull" json:"raceID"`
	HorseNo    int             `bun:"horse_no,notnull" json:"horseNo"`
	HorseName  string          `bun:"horse_name,notnull" json:"horseName"`
	Style      string          `bun:"style,notnull" json:"style"`
	StyleRatio float64         `bun:"style_ratio,notnull,default:0" json:"styleRatio"`
	Confidence float64         `bun:"confidence,notnull,default:0" json:"confidence"`
	Composite  float64         `bun:"composite,notnull,default:0" json:"composite"`
	Final      float64         `bun:"final,notnull,default:0" json:"final"`
	Grade      string          `bun:"grade,notnull,default:''" json:"grade"`
	Scenario   string          `bun:"scenario,notnull,default:''" json:"scenario"`
	Tags       json.RawMessage `bun:"tags,type:jsonb" json:"tags,omitempty"`
	CreatedAt  time.Time       `bun:"created_at,notnull,nullzero,default:current_timestamp" json:"createdAt"`

	Race *Race `bun:"rel:belongs-to,join:race_id=race_id" json:"-"`
}
