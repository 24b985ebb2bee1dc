package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hkracing/racesignal/models"
	"github.com/hkracing/racesignal/stdtimes"
)

// DrawStats returns the stored barrier statistics for the given conditions,
// keyed by draw.
func (h *Handler) DrawStats(c echo.Context) error {
	track := c.QueryParam("track")
	if track == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing track param")
	}
	distance, err := strconv.Atoi(c.QueryParam("distance"))
	if err != nil || distance < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid distance param")
	}

	stats, err := h.store.GetDrawStats(c.Request().Context(),
		stdtimes.NormalizeTrack(track), distance, c.QueryParam("going"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

type drawStatIn struct {
	Track     string  `json:"track"`
	Distance  int     `json:"distance"`
	Going     string  `json:"going"`
	Draw      int     `json:"draw"`
	RacesRun  int     `json:"racesRun"`
	WinRate   float64 `json:"winRate"`
	PlaceRate float64 `json:"placeRate"`
	Top3Rate  float64 `json:"top3Rate"`
}

// SaveDrawStats replaces the barrier-statistics snapshot for the posted
// conditions with the scraper's latest numbers.
func (h *Handler) SaveDrawStats(c echo.Context) error {
	var in []drawStatIn
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(in) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty snapshot")
	}

	now := time.Now().Format("2006-01-02")
	stats := make([]models.DrawStat, 0, len(in))
	for _, s := range in {
		if s.Track == "" || s.Distance < 1 || s.Draw < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "track, distance and draw are required")
		}
		stats = append(stats, models.DrawStat{
			Track:     stdtimes.NormalizeTrack(s.Track),
			Distance:  s.Distance,
			Going:     s.Going,
			Draw:      s.Draw,
			RacesRun:  s.RacesRun,
			WinRate:   s.WinRate,
			PlaceRate: s.PlaceRate,
			Top3Rate:  s.Top3Rate,
			ScrapedAt: now,
		})
	}

	if err := h.store.SaveDrawStats(c.Request().Context(), stats); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusAccepted)
}
