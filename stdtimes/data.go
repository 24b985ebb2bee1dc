package stdtimes

// Reference times for the 2024-2025 HKJC season, keyed by track, distance
// and canonical class tier. Segment durations sum to the finish time for
// every entry; NewCatalog checks this at load.
var defaultEntries = map[string]map[int]map[string]Entry{
	"Sha Tin": {
		1000: {
			"Group": {FinishTime: 55.90, Segments: map[string]float64{"start-800": 13.05, "800-400": 20.60, "400-finish": 22.25}},
			"Class 2": {FinishTime: 56.05, Segments: map[string]float64{"start-800": 13.10, "800-400": 20.60, "400-finish": 22.35}},
			"Class 3": {FinishTime: 56.45, Segments: map[string]float64{"start-800": 13.05, "800-400": 20.65, "400-finish": 22.75}},
			"Class 4": {FinishTime: 56.65, Segments: map[string]float64{"start-800": 13.00, "800-400": 20.75, "400-finish": 22.90}},
			"Class 5": {FinishTime: 57.00, Segments: map[string]float64{"start-800": 13.15, "800-400": 20.95, "400-finish": 22.90}},
			"Griffin": {FinishTime: 56.65, Segments: map[string]float64{"start-800": 13.25, "800-400": 20.80, "400-finish": 22.60}},
		},
		1200: {
			"Group": {FinishTime: 68.15, Segments: map[string]float64{"start-800": 23.55, "800-400": 22.20, "400-finish": 22.40}},
			"Class 1": {FinishTime: 68.45, Segments: map[string]float64{"start-800": 23.60, "800-400": 22.25, "400-finish": 22.60}},
			"Class 2": {FinishTime: 68.65, Segments: map[string]float64{"start-800": 23.75, "800-400": 22.25, "400-finish": 22.65}},
			"Class 3": {FinishTime: 69.00, Segments: map[string]float64{"start-800": 23.70, "800-400": 22.35, "400-finish": 22.95}},
			"Class 4": {FinishTime: 69.35, Segments: map[string]float64{"start-800": 23.75, "800-400": 22.45, "400-finish": 23.15}},
			"Class 5": {FinishTime: 69.55, Segments: map[string]float64{"start-800": 23.85, "800-400": 22.40, "400-finish": 23.30}},
			"Griffin": {FinishTime: 69.90, Segments: map[string]float64{"start-800": 23.95, "800-400": 22.95, "400-finish": 23.00}},
		},
		1400: {
			"Group": {FinishTime: 81.10, Segments: map[string]float64{"start-1200": 13.50, "1200-800": 22.35, "800-400": 22.85, "400-finish": 22.40}},
			"Class 1": {FinishTime: 81.25, Segments: map[string]float64{"start-1200": 13.65, "1200-800": 22.00, "800-400": 22.90, "400-finish": 22.70}},
			"Class 2": {FinishTime: 81.45, Segments: map[string]float64{"start-1200": 13.45, "1200-800": 21.90, "800-400": 23.10, "400-finish": 23.00}},
			"Class 3": {FinishTime: 81.65, Segments: map[string]float64{"start-1200": 13.45, "1200-800": 21.80, "800-400": 23.15, "400-finish": 23.25}},
			"Class 4": {FinishTime: 82.00, Segments: map[string]float64{"start-1200": 13.45, "1200-800": 21.75, "800-400": 23.40, "400-finish": 23.40}},
			"Class 5": {FinishTime: 82.30, Segments: map[string]float64{"start-1200": 13.40, "1200-800": 21.90, "800-400": 23.35, "400-finish": 23.65}},
		},
		1600: {
			"Group": {FinishTime: 93.90, Segments: map[string]float64{"start-1200": 24.85, "1200-800": 23.05, "800-400": 23.25, "400-finish": 22.75}},
			"Class 1": {FinishTime: 94.05, Segments: map[string]float64{"start-1200": 24.75, "1200-800": 23.15, "800-400": 23.15, "400-finish": 23.00}},
			"Class 2": {FinishTime: 94.25, Segments: map[string]float64{"start-1200": 24.55, "1200-800": 23.15, "800-400": 23.45, "400-finish": 23.10}},
			"Class 3": {FinishTime: 94.70, Segments: map[string]float64{"start-1200": 24.50, "1200-800": 22.90, "800-400": 23.80, "400-finish": 23.50}},
			"Class 4": {FinishTime: 94.90, Segments: map[string]float64{"start-1200": 24.50, "1200-800": 22.90, "800-400": 23.80, "400-finish": 23.70}},
			"Class 5": {FinishTime: 95.45, Segments: map[string]float64{"start-1200": 24.55, "1200-800": 23.15, "800-400": 23.85, "400-finish": 23.90}},
		},
		1800: {
			"Group": {FinishTime: 107.10, Segments: map[string]float64{"start-1600": 14.05, "1600-1200": 22.80, "1200-800": 24.00, "800-400": 23.50, "400-finish": 22.75}},
			"Class 2": {FinishTime: 107.30, Segments: map[string]float64{"start-1600": 14.00, "1600-1200": 22.60, "1200-800": 23.95, "800-400": 23.35, "400-finish": 23.40}},
			"Class 3": {FinishTime: 107.50, Segments: map[string]float64{"start-1600": 13.85, "1600-1200": 22.30, "1200-800": 23.80, "800-400": 24.00, "400-finish": 23.55}},
			"Class 4": {FinishTime: 107.85, Segments: map[string]float64{"start-1600": 13.85, "1600-1200": 22.20, "1200-800": 23.85, "800-400": 24.20, "400-finish": 23.75}},
			"Class 5": {FinishTime: 108.45, Segments: map[string]float64{"start-1600": 13.95, "1600-1200": 22.25, "1200-800": 23.85, "800-400": 24.20, "400-finish": 24.20}},
		},
		2000: {
			"Group": {FinishTime: 120.50, Segments: map[string]float64{"start-1600": 25.95, "1600-1200": 23.90, "1200-800": 23.90, "800-400": 23.55, "400-finish": 23.20}},
			"Class 1": {FinishTime: 121.20, Segments: map[string]float64{"start-1600": 26.10, "1600-1200": 24.35, "1200-800": 23.95, "800-400": 23.60, "400-finish": 23.20}},
			"Class 2": {FinishTime: 121.70, Segments: map[string]float64{"start-1600": 26.05, "1600-1200": 24.65, "1200-800": 24.20, "800-400": 23.40, "400-finish": 23.40}},
			"Class 3": {FinishTime: 121.90, Segments: map[string]float64{"start-1600": 26.05, "1600-1200": 24.70, "1200-800": 24.05, "800-400": 23.55, "400-finish": 23.55}},
			"Class 4": {FinishTime: 122.35, Segments: map[string]float64{"start-1600": 25.85, "1600-1200": 24.40, "1200-800": 24.40, "800-400": 23.95, "400-finish": 23.75}},
			"Class 5": {FinishTime: 122.65, Segments: map[string]float64{"start-1600": 25.75, "1600-1200": 24.40, "1200-800": 24.35, "800-400": 23.95, "400-finish": 24.20}},
		},
		2400: {
			"Group": {FinishTime: 147.00, Segments: map[string]float64{"start-2000": 25.60, "2000-1600": 24.50, "1600-1200": 25.35, "1200-800": 23.85, "800-400": 23.75, "400-finish": 23.95}},
		},
	},
	"Happy Valley": {
		1000: {
			"Group": {FinishTime: 56.00, Segments: map[string]float64{"start-800": 12.80, "800-400": 21.00, "400-finish": 22.20}},
			"Class 2": {FinishTime: 56.40, Segments: map[string]float64{"start-800": 12.45, "800-400": 21.00, "400-finish": 22.95}},
			"Class 3": {FinishTime: 56.65, Segments: map[string]float64{"start-800": 12.50, "800-400": 21.00, "400-finish": 23.15}},
			"Class 4": {FinishTime: 57.20, Segments: map[string]float64{"start-800": 12.55, "800-400": 21.30, "400-finish": 23.35}},
			"Class 5": {FinishTime: 57.35, Segments: map[string]float64{"start-800": 12.60, "800-400": 21.40, "400-finish": 23.35}},
		},
		1200: {
			"Class 1": {FinishTime: 69.10, Segments: map[string]float64{"start-800": 23.55, "800-400": 22.30, "400-finish": 23.25}},
			"Class 2": {FinishTime: 69.30, Segments: map[string]float64{"start-800": 23.45, "800-400": 22.35, "400-finish": 23.50}},
			"Class 3": {FinishTime: 69.60, Segments: map[string]float64{"start-800": 23.50, "800-400": 22.55, "400-finish": 23.55}},
			"Class 4": {FinishTime: 69.90, Segments: map[string]float64{"start-800": 23.65, "800-400": 22.70, "400-finish": 23.55}},
			"Class 5": {FinishTime: 70.10, Segments: map[string]float64{"start-800": 23.70, "800-400": 22.75, "400-finish": 23.65}},
		},
		1650: {
			"Class 1": {FinishTime: 99.10, Segments: map[string]float64{"start-1200": 28.45, "1200-800": 23.90, "800-400": 23.35, "400-finish": 23.40}},
			"Class 2": {FinishTime: 99.30, Segments: map[string]float64{"start-1200": 28.00, "1200-800": 23.85, "800-400": 23.80, "400-finish": 23.65}},
			"Class 3": {FinishTime: 99.90, Segments: map[string]float64{"start-1200": 27.95, "1200-800": 23.85, "800-400": 24.25, "400-finish": 23.85}},
			"Class 4": {FinishTime: 100.10, Segments: map[string]float64{"start-1200": 28.00, "1200-800": 23.80, "800-400": 24.25, "400-finish": 24.05}},
			"Class 5": {FinishTime: 100.30, Segments: map[string]float64{"start-1200": 27.95, "1200-800": 23.90, "800-400": 24.25, "400-finish": 24.20}},
		},
		1800: {
			"Group": {FinishTime: 108.95, Segments: map[string]float64{"start-1600": 13.65, "1600-1200": 22.90, "1200-800": 24.35, "800-400": 24.15, "400-finish": 23.90}},
			"Class 2": {FinishTime: 109.15, Segments: map[string]float64{"start-1600": 13.65, "1600-1200": 22.80, "1200-800": 24.55, "800-400": 24.20, "400-finish": 23.95}},
			"Class 3": {FinishTime: 109.45, Segments: map[string]float64{"start-1600": 13.75, "1600-1200": 23.00, "1200-800": 24.30, "800-400": 24.45, "400-finish": 23.95}},
			"Class 4": {FinishTime: 109.65, Segments: map[string]float64{"start-1600": 13.75, "1600-1200": 22.90, "1200-800": 24.35, "800-400": 24.35, "400-finish": 24.30}},
			"Class 5": {FinishTime: 109.95, Segments: map[string]float64{"start-1600": 13.70, "1600-1200": 22.80, "1200-800": 24.50, "800-400": 24.40, "400-finish": 24.55}},
		},
		2200: {
			"Class 3": {FinishTime: 136.60, Segments: map[string]float64{"start-2000": 14.35, "2000-1600": 23.70, "1600-1200": 24.95, "1200-800": 24.85, "800-400": 24.45, "400-finish": 24.30}},
			"Class 4": {FinishTime: 137.05, Segments: map[string]float64{"start-2000": 14.40, "2000-1600": 23.60, "1600-1200": 25.25, "1200-800": 25.15, "800-400": 24.30, "400-finish": 24.35}},
			"Class 5": {FinishTime: 137.35, Segments: map[string]float64{"start-2000": 14.35, "2000-1600": 23.70, "1600-1200": 25.40, "1200-800": 25.15, "800-400": 24.15, "400-finish": 24.60}},
		},
	},
	"Sha Tin AW": {
		1200: {
			"Class 2": {FinishTime: 68.35, Segments: map[string]float64{"start-800": 23.35, "800-400": 21.95, "400-finish": 23.05}},
			"Class 3": {FinishTime: 68.55, Segments: map[string]float64{"start-800": 23.30, "800-400": 22.05, "400-finish": 23.20}},
			"Class 4": {FinishTime: 68.95, Segments: map[string]float64{"start-800": 23.30, "800-400": 22.10, "400-finish": 23.55}},
			"Class 5": {FinishTime: 69.35, Segments: map[string]float64{"start-800": 23.35, "800-400": 22.35, "400-finish": 23.65}},
		},
		1650: {
			"Class 1": {FinishTime: 97.80, Segments: map[string]float64{"start-1200": 27.80, "1200-800": 22.85, "800-400": 23.25, "400-finish": 23.90}},
			"Class 2": {FinishTime: 98.40, Segments: map[string]float64{"start-1200": 27.90, "1200-800": 23.55, "800-400": 23.05, "400-finish": 23.90}},
			"Class 3": {FinishTime: 98.60, Segments: map[string]float64{"start-1200": 27.90, "1200-800": 23.00, "800-400": 23.75, "400-finish": 23.95}},
			"Class 4": {FinishTime: 99.05, Segments: map[string]float64{"start-1200": 27.95, "1200-800": 23.15, "800-400": 23.80, "400-finish": 24.15}},
			"Class 5": {FinishTime: 99.45, Segments: map[string]float64{"start-1200": 27.95, "1200-800": 23.20, "800-400": 24.00, "400-finish": 24.30}},
		},
		1800: {
			"Class 3": {FinishTime: 108.05, Segments: map[string]float64{"start-1600": 13.75, "1600-1200": 22.80, "1200-800": 23.70, "800-400": 23.85, "400-finish": 23.95}},
			"Class 4": {FinishTime: 108.55, Segments: map[string]float64{"start-1600": 13.60, "1600-1200": 23.10, "1200-800": 24.05, "800-400": 23.65, "400-finish": 24.15}},
			"Class 5": {FinishTime: 109.45, Segments: map[string]float64{"start-1600": 13.75, "1600-1200": 23.20, "1200-800": 23.95, "800-400": 24.25, "400-finish": 24.30}},
		},
	},
}
