package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hkracing/racesignal/stdtimes"
)

// Catalog lists the reference-time coverage: every catalogued track with its
// distances. Consumers use it to know which conditions pace classification
// can serve before posting a card.
func (h *Handler) Catalog(c echo.Context) error {
	cat := stdtimes.Current()
	out := make(map[string][]int)
	for _, track := range cat.Tracks() {
		out[track] = cat.Distances(track)
	}
	return c.JSON(http.StatusOK, out)
}
