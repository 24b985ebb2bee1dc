// Package stdtimes holds the reference (standard) finishing and sectional
// times for the Hong Kong circuit and answers lookups by track, distance and
// class tier. The catalog is loaded once and swapped whole on refresh, so
// concurrent readers never see a partial table.
package stdtimes

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync/atomic"
)

// Entry is the reference data for one (track, distance, class tier) key.
type Entry struct {
	FinishTime float64            `json:"finishTime"`
	Segments   map[string]float64 `json:"segments"`
}

// segmentTolerance is how far an entry's segment sum may drift from its
// finish time before the catalog is rejected as inconsistent.
const segmentTolerance = 0.01

// trackAliases maps the names that appear on bilingual result pages to one
// canonical track token. Unmapped names pass through unchanged.
var trackAliases = map[string]string{
	"沙田":                   "Sha Tin",
	"沙田草地":                 "Sha Tin",
	"Sha Tin":              "Sha Tin",
	"Sha Tin Turf":         "Sha Tin",
	"跑馬地":                  "Happy Valley",
	"跑馬地草地":                "Happy Valley",
	"Happy Valley":         "Happy Valley",
	"Happy Valley Turf":    "Happy Valley",
	"沙田全天候":                "Sha Tin AW",
	"沙田AW":                 "Sha Tin AW",
	"Sha Tin AW":           "Sha Tin AW",
	"Sha Tin All-Weather":  "Sha Tin AW",
}

// classAliases maps class tier spellings to canonical tier tokens.
var classAliases = map[string]string{
	"分級賽":     "Group",
	"Group":   "Group",
	"第一班":     "Class 1",
	"1班":      "Class 1",
	"Class 1": "Class 1",
	"第二班":     "Class 2",
	"2班":      "Class 2",
	"Class 2": "Class 2",
	"第三班":     "Class 3",
	"3班":      "Class 3",
	"Class 3": "Class 3",
	"第四班":     "Class 4",
	"4班":      "Class 4",
	"Class 4": "Class 4",
	"第五班":     "Class 5",
	"5班":      "Class 5",
	"Class 5": "Class 5",
	"新馬賽":     "Griffin",
	"Griffin": "Griffin",
}

// NormalizeTrack maps a track name (English or Chinese variant) to its
// canonical token. Unknown names are returned unchanged; the later lookup
// then reports a miss.
func NormalizeTrack(track string) string {
	if canon, ok := trackAliases[strings.TrimSpace(track)]; ok {
		return canon
	}
	return strings.TrimSpace(track)
}

// NormalizeClass maps a class tier string to its canonical token, passing
// unknown tiers through unchanged.
func NormalizeClass(tier string) string {
	if canon, ok := classAliases[strings.TrimSpace(tier)]; ok {
		return canon
	}
	return strings.TrimSpace(tier)
}

// Distance bands determining how many sectional checkpoints a race records.
var segmentLabelsByBand = []struct {
	minDist, maxDist int
	labels           []string
}{
	{1000, 1200, []string{"start-800", "800-400", "400-finish"}},
	{1400, 1650, []string{"start-1200", "1200-800", "800-400", "400-finish"}},
	{1800, 2000, []string{"start-1600", "1600-1200", "1200-800", "800-400", "400-finish"}},
	{2200, 2400, []string{"start-2000", "2000-1600", "1600-1200", "1200-800", "800-400", "400-finish"}},
}

// SegmentLabels returns the sectional labels recorded for a race distance,
// in running order, or false for distances outside the catalogued range.
func SegmentLabels(distance int) ([]string, bool) {
	for _, band := range segmentLabelsByBand {
		if distance >= band.minDist && distance <= band.maxDist {
			return band.labels, true
		}
	}
	return nil, false
}

// Catalog is an immutable reference-time table. Build one with NewCatalog
// and publish it with Replace; readers go through Current.
type Catalog struct {
	entries map[string]map[int]map[string]Entry
}

// NewCatalog validates the given table and wraps it in a Catalog. Every
// entry's segment durations must sum to its finish time within 0.01s.
func NewCatalog(entries map[string]map[int]map[string]Entry) (*Catalog, error) {
	for track, byDist := range entries {
		for dist, byClass := range byDist {
			for tier, e := range byClass {
				var sum float64
				for _, v := range e.Segments {
					sum += v
				}
				if math.Abs(sum-e.FinishTime) > segmentTolerance+1e-9 {
					return nil, fmt.Errorf(
						"stdtimes: %s %dm %s: segment sum %.2f != finish time %.2f",
						track, dist, tier, sum, e.FinishTime)
				}
			}
		}
	}
	return &Catalog{entries: entries}, nil
}

// Lookup returns the reference entry for the given track, distance and class
// tier. Track and tier are alias-normalized first. A miss is a normal outcome
// for combinations not yet catalogued.
func (c *Catalog) Lookup(track string, distance int, classTier string) (Entry, bool) {
	byDist, ok := c.entries[NormalizeTrack(track)]
	if !ok {
		return Entry{}, false
	}
	byClass, ok := byDist[distance]
	if !ok {
		return Entry{}, false
	}
	e, ok := byClass[NormalizeClass(classTier)]
	return e, ok
}

// SegmentSum returns the sum of the entry's reference segment durations over
// the labels that apply at the given distance. By the catalog invariant this
// equals the entry's finish time.
func (c *Catalog) SegmentSum(track string, distance int, classTier string) (float64, bool) {
	e, ok := c.Lookup(track, distance, classTier)
	if !ok {
		return 0, false
	}
	labels, ok := SegmentLabels(distance)
	if !ok {
		return 0, false
	}
	var sum float64
	for _, label := range labels {
		sum += e.Segments[label]
	}
	return math.Round(sum*100) / 100, true
}

// Tracks lists the catalogued canonical track names.
func (c *Catalog) Tracks() []string {
	out := make([]string, 0, len(c.entries))
	for t := range c.entries {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Distances lists the catalogued distances for a track.
func (c *Catalog) Distances(track string) []int {
	byDist, ok := c.entries[NormalizeTrack(track)]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(byDist))
	for d := range byDist {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

var current atomic.Pointer[Catalog]

func init() {
	cat, err := NewCatalog(defaultEntries)
	if err != nil {
		// The built-in table is static data; an inconsistency here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	current.Store(cat)
}

// Current returns the active catalog snapshot.
func Current() *Catalog {
	return current.Load()
}

// Replace atomically swaps in a new catalog. In-flight readers keep the
// snapshot they already hold.
func Replace(c *Catalog) {
	current.Store(c)
}
