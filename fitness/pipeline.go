package fitness

// Assessment is the stage-3 output for one horse: profile, composite score
// and tags. It carries everything stage 4 needs besides the race context.
type Assessment struct {
	Profile Profile `json:"profile"`
	Score   Score   `json:"score"`
	Tags    []Tag   `json:"tags"`
}

// Assess runs stages 1-3 for one horse. The draw statistic is optional and
// only feeds the adaptation sub-score; the full field-aware correction is
// stage 4 via Adjust.
func Assess(horseName string, history []RawRecord, draw *DrawRecord, ctx TagContext, w Weights) Assessment {
	profile := Prepare(horseName, history)
	score := Calculate(profile.Metrics, draw, w)
	return Assessment{
		Profile: profile,
		Score:   score,
		Tags:    IdentifyTags(profile.Metrics, profile.Records, ctx),
	}
}

// Finalize runs stage 4 on an assessment.
func Finalize(a Assessment, ctx RaceContext) (Adjusted, error) {
	return Adjust(a.Score, a.Profile.Records, ctx)
}
