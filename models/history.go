package models

import "github.com/uptrace/bun"

// HistoryRecord is one past run of a horse as scraped. Fields keep their raw
// string form; the fitness pipeline owns the cleaning. Natural key is
// (horse_name, date, venue, distance) since a horse runs a given trip at most
// once per day.
type HistoryRecord struct {
	bun.BaseModel `bun:"table:history_records,alias:hr"`

	ID        int    `bun:"id,pk,autoincrement" json:"id"`
	HorseName string `bun:"horse_name,notnull" json:"horseName"`
	Date      string `bun:"date,notnull" json:"date"`
	Venue     string `bun:"venue,notnull" json:"venue"`
	Going     string `bun:"going,notnull,default:''" json:"going"`
	Distance  string `bun:"distance,notnull,default:''" json:"distance"`
	Draw      string `bun:"draw,notnull,default:''" json:"draw"`
	Position  string `bun:"position,notnull,default:''" json:"position"`
	Margin    string `bun:"margin,notnull,default:''" json:"margin"`
	Rating    string `bun:"rating,notnull,default:''" json:"rating"`
	Weight    string `bun:"weight,notnull,default:''" json:"weight"`
	Jockey    string `bun:"jockey,notnull,default:''" json:"jockey"`
}
