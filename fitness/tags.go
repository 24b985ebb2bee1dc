package fitness

import (
	"strings"
	"time"
)

// Tag is a qualitative label attached to a horse's profile.
type Tag string

const (
	// TagConsistentPlacer marks a very reliable top-3 finisher.
	TagConsistentPlacer Tag = "CONSISTENT_PLACER"
	// TagEachWay marks a horse that rarely wins but keeps hitting the
	// placings.
	TagEachWay Tag = "EACH_WAY"
	// TagCourseSpecialist marks a clear edge at one venue over the horse's
	// overall record.
	TagCourseSpecialist Tag = "COURSE_SPECIALIST"
	TagImproving        Tag = "IMPROVING"
	TagDeclining        Tag = "DECLINING"
	// TagLongLayoff marks more than 90 days since the last start.
	TagLongLayoff Tag = "LONG_LAYOFF"
	// TagClassDrop marks a current rating well below the horse's historical
	// mean, so it now meets easier fields.
	TagClassDrop Tag = "CLASS_DROP"
)

const (
	layoffDays    = 90
	classDropGap  = 5.0
	specialistGap = 0.15
)

// TagContext is the race-day information the history alone cannot provide.
type TagContext struct {
	RaceDate      string
	CurrentRating int
}

// IdentifyTags returns every tag the metrics support, order fixed for stable
// output. Records are newest-first.
func IdentifyTags(m Metrics, records []Record, ctx TagContext) []Tag {
	var tags []Tag

	if m.OverallPlacementRate >= 0.5 && m.RatingStd < 6 && m.RatingStd > 0 {
		tags = append(tags, TagConsistentPlacer)
	}
	if m.WinPlaceRatio < 0.1 && m.OverallPlacementRate > 0.5 && m.RatingStd < 8 {
		tags = append(tags, TagEachWay)
	}
	if isCourseSpecialist(m) {
		tags = append(tags, TagCourseSpecialist)
	}

	if m.OverallPlacementRate > 0 {
		trend := m.RecentPlacementRate / m.OverallPlacementRate
		if trend >= 1.2 {
			tags = append(tags, TagImproving)
		} else if trend < 0.8 {
			tags = append(tags, TagDeclining)
		}
	}

	if isLongLayoff(records, ctx.RaceDate) {
		tags = append(tags, TagLongLayoff)
	}
	if ctx.CurrentRating > 0 && m.AvgRating > 0 &&
		float64(ctx.CurrentRating) <= m.AvgRating-classDropGap {
		tags = append(tags, TagClassDrop)
	}

	return tags
}

func isCourseSpecialist(m Metrics) bool {
	if len(m.VenueStats) == 0 || m.OverallPlacementRate <= 0 {
		return false
	}
	best := 0.0
	for _, rate := range m.VenueStats {
		if rate > best {
			best = rate
		}
	}
	return best-m.OverallPlacementRate >= specialistGap
}

func isLongLayoff(records []Record, raceDate string) bool {
	if len(records) == 0 {
		return false
	}
	race, ok := parseDate(raceDate)
	if !ok {
		return false
	}
	last, ok := parseDate(records[0].Date)
	if !ok {
		return false
	}
	return race.Sub(last) > layoffDays*24*time.Hour
}

var dateLayouts = []string{"2006/01/02", "02/01/2006", "2006-01-02"}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
