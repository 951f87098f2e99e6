// README: Weather handler (current Seosan conditions with weekly outlook).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"daytrip/internal/modules/weather"
)

type WeatherHandler struct {
	weather *weather.Service
}

func NewWeatherHandler(weatherSvc *weather.Service) *WeatherHandler {
	return &WeatherHandler{weather: weatherSvc}
}

// Report handles GET /api/weather.
func (h *WeatherHandler) Report(c *gin.Context) {
	report, err := h.weather.GetReport(c.Request.Context())
	if err != nil {
		if errors.Is(err, weather.ErrUnavailable) {
			writeError(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, report)
}
