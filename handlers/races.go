package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hkracing/racesignal/analysis"
	"github.com/hkracing/racesignal/fitness"
	"github.com/hkracing/racesignal/models"
	"github.com/hkracing/racesignal/store"
)

// Dates lists the meeting dates with stored races, newest first.
func (h *Handler) Dates(c echo.Context) error {
	dates, err := h.store.Dates(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dates)
}

// RaceCard returns every race on a date with its entries.
func (h *Handler) RaceCard(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing date param")
	}
	races, err := h.store.GetRaceCard(c.Request().Context(), date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, races)
}

// HorseHistory returns a horse's stored past runs, newest first.
func (h *Handler) HorseHistory(c echo.Context) error {
	horse := c.QueryParam("horse")
	if horse == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing horse param")
	}
	records, err := h.store.GetHorseHistory(c.Request().Context(), horse)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, records)
}

// raceParams pulls the date and race number params shared by the analysis
// endpoints.
func raceParams(c echo.Context) (string, int, error) {
	date := c.QueryParam("date")
	if date == "" {
		return "", 0, echo.NewHTTPError(http.StatusBadRequest, "missing date param")
	}
	raceNo, err := strconv.Atoi(c.QueryParam("race"))
	if err != nil || raceNo < 1 {
		return "", 0, echo.NewHTTPError(http.StatusBadRequest, "invalid race param")
	}
	return date, raceNo, nil
}

// loadAnalysisRace assembles the pipeline input for a stored race: entries,
// each runner's history and the draw statistics for the race's conditions.
func (h *Handler) loadAnalysisRace(c echo.Context, date string, raceNo int) (analysis.Race, error) {
	ctx := c.Request().Context()

	race, err := h.store.GetRace(ctx, date, raceNo)
	if errors.Is(err, store.ErrNotFound) {
		return analysis.Race{}, echo.NewHTTPError(http.StatusNotFound, "race not found")
	}
	if err != nil {
		return analysis.Race{}, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	out := analysis.Race{
		Date:      race.Date,
		RaceNo:    race.RaceNo,
		Track:     race.Track,
		Distance:  race.Distance,
		ClassTier: race.ClassTier,
	}
	if race.Going != nil {
		out.Going = *race.Going
	}
	if race.FinishTime != nil {
		out.FinishTime = *race.FinishTime
	}

	for _, e := range race.Entries {
		records, err := h.store.GetHorseHistory(ctx, e.HorseName)
		if err != nil {
			return analysis.Race{}, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		entry := analysis.Entry{
			HorseNo:   e.HorseNo,
			HorseName: e.HorseName,
			Draw:      e.Draw,
			History:   rawRecords(records),
		}
		if e.Rating != nil {
			entry.Rating = *e.Rating
		}
		out.Entries = append(out.Entries, entry)
	}

	stats, err := h.store.GetDrawStats(ctx, race.Track, race.Distance, out.Going)
	if err != nil {
		return analysis.Race{}, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	out.DrawStats = stats

	return out, nil
}

func rawRecords(records []models.HistoryRecord) []fitness.RawRecord {
	out := make([]fitness.RawRecord, 0, len(records))
	for _, r := range records {
		out = append(out, fitness.RawRecord{
			Date:     r.Date,
			Venue:    r.Venue,
			Going:    r.Going,
			Distance: r.Distance,
			Draw:     r.Draw,
			Position: r.Position,
			Margin:   r.Margin,
			Rating:   r.Rating,
			Weight:   r.Weight,
			Jockey:   r.Jockey,
		})
	}
	return out
}
