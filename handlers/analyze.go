package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hkracing/racesignal/analysis"
	"github.com/hkracing/racesignal/fitness"
	"github.com/hkracing/racesignal/models"
	"github.com/hkracing/racesignal/pace"
	"github.com/hkracing/racesignal/runstyle"
	"github.com/hkracing/racesignal/stdtimes"
)

// Pace classifies every run race on a date against the reference catalog,
// both the absolute and the relative scheme. Races without a finish time are
// skipped; malformed ones are reported per-record.
func (h *Handler) Pace(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing date param")
	}

	races, err := h.store.GetRaceCard(c.Request().Context(), date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	batch := make([]pace.Observation, 0, len(races))
	for _, r := range races {
		if r.FinishTime == nil || *r.FinishTime == "" {
			continue
		}
		obs := pace.Observation{
			Date: r.Date, RaceNo: r.RaceNo,
			Track: r.Track, Distance: r.Distance, ClassTier: r.ClassTier,
			FinishTime: *r.FinishTime,
		}
		if r.RaceName != nil {
			obs.RaceName = *r.RaceName
		}
		batch = append(batch, obs)
	}
	if len(batch) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no run races for date")
	}

	out := pace.AnalyzeBatch(stdtimes.Current(), batch, h.analyzer.Thresholds(), h.analyzer.BandCuts())
	return c.JSON(http.StatusOK, out)
}

type runstyleResponse struct {
	Date     string                  `json:"date"`
	RaceNo   int                     `json:"raceNo"`
	Scenario runstyle.ScenarioResult `json:"scenario"`
	Horses   []runstyleHorse         `json:"horses"`
}

type runstyleHorse struct {
	HorseNo    int                 `json:"horseNo"`
	HorseName  string              `json:"horseName"`
	Draw       int                 `json:"draw"`
	Prediction runstyle.Prediction `json:"prediction"`
}

// Runstyle predicts each runner's style for one race and the resulting field
// pace scenario.
func (h *Handler) Runstyle(c echo.Context) error {
	date, raceNo, err := raceParams(c)
	if err != nil {
		return err
	}
	race, err := h.loadAnalysisRace(c, date, raceNo)
	if err != nil {
		return err
	}

	cfg := h.analyzer.RunstyleConfig()
	resp := runstyleResponse{Date: race.Date, RaceNo: race.RaceNo}
	styles := make([]runstyle.Style, 0, len(race.Entries))

	for _, e := range race.Entries {
		p := fitnessRuns(e)
		pred := runstyle.Predict(p, race.Distance, cfg)
		pred = runstyle.AdjustForDraw(pred, e.Draw, len(race.Entries), cfg)
		styles = append(styles, pred.Style)
		resp.Horses = append(resp.Horses, runstyleHorse{
			HorseNo: e.HorseNo, HorseName: e.HorseName, Draw: e.Draw, Prediction: pred,
		})
	}
	resp.Scenario = runstyle.PredictScenario(runstyle.CountStyles(styles))

	return c.JSON(http.StatusOK, resp)
}

// Fitness runs the full four-stage pipeline for one race and persists the
// predictions before returning them.
func (h *Handler) Fitness(c echo.Context) error {
	date, raceNo, err := raceParams(c)
	if err != nil {
		return err
	}
	race, err := h.loadAnalysisRace(c, date, raceNo)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	res, err := h.analyzer.AnalyzeRace(ctx, race)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	stored, err := h.store.GetRace(ctx, date, raceNo)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	for _, horse := range res.Horses {
		tags, err := json.Marshal(horse.Tags)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		p := &models.Prediction{
			RaceID:     stored.RaceID,
			HorseNo:    horse.HorseNo,
			HorseName:  horse.HorseName,
			Style:      string(horse.Runstyle.Style),
			StyleRatio: horse.Runstyle.Ratio,
			Confidence: horse.Runstyle.Confidence,
			Composite:  horse.Score.Composite,
			Final:      horse.Adjusted.Final,
			Grade:      string(horse.Adjusted.Grade),
			Scenario:   string(res.Scenario.Scenario),
			Tags:       tags,
		}
		if err := h.store.UpsertPrediction(ctx, p); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, res)
}

func fitnessRuns(e analysis.Entry) []runstyle.PastRun {
	profile := fitness.Prepare(e.HorseName, e.History)
	runs := make([]runstyle.PastRun, 0, len(profile.Records))
	for _, r := range profile.Records {
		runs = append(runs, runstyle.PastRun{
			Date:     r.Date,
			Distance: r.Distance,
			Position: r.Position,
		})
	}
	return runs
}
