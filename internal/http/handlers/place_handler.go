// README: Place catalog handler (listing, lookup, spreadsheet import).
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"daytrip/internal/modules/place"
)

type PlaceHandler struct {
	places *place.Service
}

func NewPlaceHandler(placeSvc *place.Service) *PlaceHandler {
	return &PlaceHandler{places: placeSvc}
}

// ListAttractions handles GET /api/places/attractions.
func (h *PlaceHandler) ListAttractions(c *gin.Context) {
	attractions, err := h.places.ListAttractions(c.Request.Context())
	if err != nil {
		writePlaceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"attractions": attractions})
}

// GetAttraction handles GET /api/places/attractions/:id.
func (h *PlaceHandler) GetAttraction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid id")
		return
	}
	attraction, err := h.places.GetAttraction(c.Request.Context(), id)
	if err != nil {
		writePlaceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, attraction)
}

// ListEateries handles GET /api/places/eateries.
func (h *PlaceHandler) ListEateries(c *gin.Context) {
	eateries, err := h.places.ListEateries(c.Request.Context())
	if err != nil {
		writePlaceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"eateries": eateries})
}

// GetEatery handles GET /api/places/eateries/:id.
func (h *PlaceHandler) GetEatery(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid id")
		return
	}
	eatery, err := h.places.GetEatery(c.Request.Context(), id)
	if err != nil {
		writePlaceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, eatery)
}

// ImportAttractions handles POST /api/places/attractions/import.
// Accepts an xlsx upload in the "file" form field and replaces the catalog.
func (h *PlaceHandler) ImportAttractions(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		writeError(c, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	count, err := h.places.ImportAttractions(c.Request.Context(), file)
	if err != nil {
		writeError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"imported": count})
}

// ImportEateries handles POST /api/places/eateries/import.
func (h *PlaceHandler) ImportEateries(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		writeError(c, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	count, err := h.places.ImportEateries(c.Request.Context(), file)
	if err != nil {
		writeError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"imported": count})
}
