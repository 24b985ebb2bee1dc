package models

import "github.com/uptrace/bun"

// DrawStat is a scraped group statistic for one barrier under given
// conditions. Rates are fractions. A fresh scrape upserts over the previous
// snapshot for the same conditions.
type DrawStat struct {
	bun.BaseModel `bun:"table:draw_stats,alias:ds"`

	ID        int     `bun:"id,pk,autoincrement" json:"id"`
	Track     string  `bun:"track,notnull" json:"track"`
	Distance  int     `bun:"distance,notnull" json:"distance"`
	Going     string  `bun:"going,notnull,default:''" json:"going"`
	Draw      int     `bun:"draw,notnull" json:"draw"`
	RacesRun  int     `bun:"races_run,notnull,default:0" json:"racesRun"`
	WinRate   float64 `bun:"win_rate,notnull,default:0" json:"winRate"`
	PlaceRate float64 `bun:"place_rate,notnull,default:0" json:"placeRate"`
	Top3Rate  float64 `bun:"top3_rate,notnull,default:0" json:"top3Rate"`
	ScrapedAt string  `bun:"scraped_at,notnull,default:''" json:"scrapedAt"`
}
