package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hkracing/racesignal/fitness"
	"github.com/hkracing/racesignal/models"
)

type ingestEntry struct {
	HorseNo   int                 `json:"horseNo"`
	HorseName string              `json:"horseName"`
	Draw      int                 `json:"draw"`
	Rating    *int                `json:"rating,omitempty"`
	Weight    *int                `json:"weight,omitempty"`
	Jockey    *string             `json:"jockey,omitempty"`
	Position  *string             `json:"position,omitempty"`
	Margin    *string             `json:"margin,omitempty"`
	History   []fitness.RawRecord `json:"history,omitempty"` // newest-first
}

type ingestRace struct {
	Date       string        `json:"date"`
	RaceNo     int           `json:"raceNo"`
	RaceName   *string       `json:"raceName,omitempty"`
	Track      string        `json:"track"`
	Distance   int           `json:"distance"`
	ClassTier  string        `json:"classTier"`
	Going      *string       `json:"going,omitempty"`
	FinishTime *string       `json:"finishTime,omitempty"`
	Entries    []ingestEntry `json:"entries"`
}

type ingestError struct {
	RaceNo  int    `json:"raceNo"`
	HorseNo int    `json:"horseNo,omitempty"`
	Err     string `json:"error"`
}

type ingestResponse struct {
	Saved  int           `json:"saved"`
	Errors []ingestError `json:"errors,omitempty"`
}

// IngestRaces upserts a batch of races with their entries and histories.
// Re-posting the same card is a no-op thanks to the natural-key upserts. A
// bad record is reported against its race and never aborts the batch.
func (h *Handler) IngestRaces(c echo.Context) error {
	var races []ingestRace
	if err := c.Bind(&races); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(races) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty batch")
	}

	ctx := c.Request().Context()
	resp := ingestResponse{}

	for _, in := range races {
		if in.Date == "" || in.RaceNo < 1 || in.Track == "" {
			resp.Errors = append(resp.Errors, ingestError{
				RaceNo: in.RaceNo, Err: "date, raceNo and track are required",
			})
			continue
		}

		race := &models.Race{
			Date: in.Date, RaceNo: in.RaceNo, RaceName: in.RaceName,
			Track: in.Track, Distance: in.Distance, ClassTier: in.ClassTier,
			Going: in.Going, FinishTime: in.FinishTime,
		}
		if err := h.store.UpsertRace(ctx, race); err != nil {
			resp.Errors = append(resp.Errors, ingestError{RaceNo: in.RaceNo, Err: err.Error()})
			continue
		}

		for _, e := range in.Entries {
			if e.HorseNo < 1 || e.HorseName == "" {
				resp.Errors = append(resp.Errors, ingestError{
					RaceNo: in.RaceNo, HorseNo: e.HorseNo,
					Err: "horseNo and horseName are required",
				})
				continue
			}
			entry := &models.HorseEntry{
				RaceID: race.RaceID, HorseNo: e.HorseNo, HorseName: e.HorseName,
				Draw: e.Draw, Rating: e.Rating, Weight: e.Weight, Jockey: e.Jockey,
				Position: e.Position, Margin: e.Margin,
			}
			if err := h.store.UpsertHorseEntry(ctx, entry); err != nil {
				resp.Errors = append(resp.Errors, ingestError{
					RaceNo: in.RaceNo, HorseNo: e.HorseNo, Err: err.Error(),
				})
				continue
			}
			if len(e.History) > 0 {
				if err := h.store.UpsertHistoryRecords(ctx, historyModels(e.HorseName, e.History)); err != nil {
					resp.Errors = append(resp.Errors, ingestError{
						RaceNo: in.RaceNo, HorseNo: e.HorseNo,
						Err: fmt.Sprintf("history: %v", err),
					})
					continue
				}
			}
			resp.Saved++
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func historyModels(horseName string, raws []fitness.RawRecord) []models.HistoryRecord {
	out := make([]models.HistoryRecord, 0, len(raws))
	for _, r := range raws {
		out = append(out, models.HistoryRecord{
			HorseName: horseName,
			Date:      r.Date,
			Venue:     r.Venue,
			Going:     r.Going,
			Distance:  r.Distance,
			Draw:      r.Draw,
			Position:  r.Position,
			Margin:    r.Margin,
			Rating:    r.Rating,
			Weight:    r.Weight,
			Jockey:    r.Jockey,
		})
	}
	return out
}
