// Package fitness scores a horse's suitability for a race in four stages:
// prepare the raw history into metrics, calculate weighted sub-scores, attach
// qualitative tags, then apply a bounded realtime adjustment from the race
// context. Stages 1-3 depend only on the horse's own history; stage 4 also
// needs the rest of the field.
package fitness

import (
	"math"
	"strconv"
	"strings"
)

// invalidPosition is the sentinel for unusable finishing positions. Scraped
// records carry markers like WV (withdrawn), RR (refused to race) or "--".
const invalidPosition = 99

// marginNames maps the named beaten-length margins to horse lengths.
var marginNames = map[string]float64{
	"頭位": 0.08,
	"短頭": 0.04,
	"馬身": 1.00,
}

var invalidMarkers = map[string]bool{
	"n/a": true, "na": true, "-": true, "--": true, "null": true,
	"wv": true, "wr": true, "rr": true, "pu": true, "ur": true,
	"fe": true, "dsq": true,
}

// RawRecord is one past run as it arrives from ingestion or the legacy
// store, fields still in scraped string form.
type RawRecord struct {
	Date     string `json:"date"`
	Venue    string `json:"venue"`
	Going    string `json:"going"`
	Distance string `json:"distance"`
	Draw     string `json:"draw"`
	Position string `json:"position"`
	Margin   string `json:"margin"` // beaten lengths behind the winner
	Rating   string `json:"rating"`
	Weight   string `json:"weight"`
	Jockey   string `json:"jockey"`
}

// Record is a cleaned past run. History is newest-first throughout the
// package.
type Record struct {
	Date     string  `json:"date"`
	Venue    string  `json:"venue"`
	Going    string  `json:"going"`
	Distance int     `json:"distance"`
	Draw     int     `json:"draw"`
	Position int     `json:"position"`
	Margin   float64 `json:"margin"`
	Rating   int     `json:"rating"`
	Weight   int     `json:"weight"`
	Jockey   string  `json:"jockey"`
	Placed   bool    `json:"placed"` // finished 1-3
}

// Metrics are the per-horse aggregates the scoring stages consume.
type Metrics struct {
	TotalRaces           int                `json:"totalRaces"`
	Wins                 int                `json:"wins"`
	Seconds              int                `json:"seconds"`
	Placings             int                `json:"placings"` // top-3 finishes
	OverallPlacementRate float64            `json:"overallPlacementRate"`
	OverallWinRate       float64            `json:"overallWinRate"`
	RecentPlacementRate  float64            `json:"recentPlacementRate"` // last 10 runs
	WinPlaceRatio        float64            `json:"winPlaceRatio"`       // wins / (wins + seconds)
	AvgRating            float64            `json:"avgRating"`
	RatingStd            float64            `json:"ratingStd"`
	AvgMargin            float64            `json:"avgMargin"` // mean beaten lengths when placed
	DistanceStats        map[int]float64    `json:"distanceStats"`
	VenueStats           map[string]float64 `json:"venueStats"`
}

// Profile is the stage-1 output for one horse.
type Profile struct {
	HorseName string   `json:"horseName"`
	Records   []Record `json:"records"`
	Skipped   int      `json:"skipped"` // raw records dropped as unusable
	Metrics   Metrics  `json:"metrics"`
}

// Prepare cleans a newest-first raw history and derives the horse's metrics.
// Individual bad records are skipped, never fatal; a wholly empty history
// yields a zero-metrics profile.
func Prepare(horseName string, raws []RawRecord) Profile {
	p := Profile{HorseName: horseName}

	for _, raw := range raws {
		pos := CleanPosition(raw.Position)
		if pos == invalidPosition || pos == 0 {
			p.Skipped++
			continue
		}
		rec := Record{
			Date:     strings.TrimSpace(raw.Date),
			Venue:    strings.TrimSpace(raw.Venue),
			Going:    strings.TrimSpace(raw.Going),
			Distance: parseInt(raw.Distance),
			Draw:     parseInt(raw.Draw),
			Position: pos,
			Margin:   ParseMargin(raw.Margin),
			Rating:   parseInt(raw.Rating),
			Weight:   parseInt(raw.Weight),
			Jockey:   strings.TrimSpace(raw.Jockey),
		}
		rec.Placed = pos >= 1 && pos <= 3
		p.Records = append(p.Records, rec)
	}

	p.Metrics = calculateMetrics(p.Records)
	return p
}

func calculateMetrics(records []Record) Metrics {
	m := Metrics{
		DistanceStats: map[int]float64{},
		VenueStats:    map[string]float64{},
	}
	if len(records) == 0 {
		return m
	}
	m.TotalRaces = len(records)

	for _, r := range records {
		switch {
		case r.Position == 1:
			m.Wins++
		case r.Position == 2:
			m.Seconds++
		}
		if r.Placed {
			m.Placings++
		}
	}
	m.OverallPlacementRate = round3(float64(m.Placings) / float64(m.TotalRaces))
	m.OverallWinRate = round3(float64(m.Wins) / float64(m.TotalRaces))
	if m.Wins+m.Seconds > 0 {
		m.WinPlaceRatio = round3(float64(m.Wins) / float64(m.Wins+m.Seconds))
	}

	recent := records
	if len(recent) > 10 {
		recent = recent[:10]
	}
	recentPlaced := 0
	for _, r := range recent {
		if r.Placed {
			recentPlaced++
		}
	}
	m.RecentPlacementRate = round3(float64(recentPlaced) / float64(len(recent)))

	var ratings []float64
	for _, r := range records {
		if r.Rating > 0 {
			ratings = append(ratings, float64(r.Rating))
		}
	}
	if len(ratings) > 0 {
		var sum float64
		for _, v := range ratings {
			sum += v
		}
		m.AvgRating = math.Round(sum/float64(len(ratings))*10) / 10
		m.RatingStd = math.Round(popStddev(ratings)*10) / 10
	}

	var marginSum float64
	placedCount := 0
	for _, r := range records {
		if r.Placed {
			marginSum += r.Margin
			placedCount++
		}
	}
	if placedCount > 0 {
		m.AvgMargin = math.Round(marginSum/float64(placedCount)*100) / 100
	}

	m.DistanceStats = groupRate(records, func(r Record) int { return r.Distance })
	byVenue := map[string]struct{ runs, placed int }{}
	for _, r := range records {
		v := byVenue[r.Venue]
		v.runs++
		if r.Placed {
			v.placed++
		}
		byVenue[r.Venue] = v
	}
	for venue, v := range byVenue {
		m.VenueStats[venue] = round3(float64(v.placed) / float64(v.runs))
	}

	return m
}

func groupRate(records []Record, key func(Record) int) map[int]float64 {
	type tally struct{ runs, placed int }
	groups := map[int]tally{}
	for _, r := range records {
		k := key(r)
		g := groups[k]
		g.runs++
		if r.Placed {
			g.placed++
		}
		groups[k] = g
	}
	out := make(map[int]float64, len(groups))
	for k, g := range groups {
		out[k] = round3(float64(g.placed) / float64(g.runs))
	}
	return out
}

// CleanPosition parses a scraped finishing position. Dead-heat markers like
// "DH1" resolve to the shared position; withdrawal and non-finish markers
// resolve to the invalid sentinel.
func CleanPosition(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || invalidMarkers[strings.ToLower(s)] {
		return invalidPosition
	}
	if rest, ok := strings.CutPrefix(strings.ToUpper(s), "DH"); ok {
		if n, err := strconv.Atoi(rest); err == nil {
			return n
		}
		return invalidPosition
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return invalidPosition
	}
	return n
}

// ParseMargin converts a beaten-lengths string to horse lengths. Named
// margins use the lookup table; fractional notation like "1-1/4" and "3/4"
// is computed. Unknown forms yield 0.
func ParseMargin(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, ok := marginNames[s]; ok {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}

	whole := 0.0
	frac := s
	if before, after, found := strings.Cut(s, "-"); found {
		w, err := strconv.ParseFloat(before, 64)
		if err != nil {
			return 0
		}
		whole = w
		frac = after
	}
	if num, den, found := strings.Cut(frac, "/"); found {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(den, 64)
		if errN == nil && errD == nil && d != 0 {
			return whole + n/d
		}
	}
	return 0
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func popStddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(values)))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
