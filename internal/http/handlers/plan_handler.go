// README: Travel plan handler (free-text conditions to recommended courses).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"daytrip/internal/modules/plan"
)

// Plan generation holds one model round trip plus catalog sampling, so it
// gets a wider timeout than a normal request.
const planTimeout = 60 * time.Second

type PlanHandler struct {
	plans *plan.Service
}

func NewPlanHandler(planSvc *plan.Service) *PlanHandler {
	return &PlanHandler{plans: planSvc}
}

type travelPlansResp struct {
	Plans []plan.ItineraryPlan `json:"plans"`
}

// TravelPlans handles GET /api/ai/travel-plans.
func (h *PlanHandler) TravelPlans(c *gin.Context) {
	text := strings.TrimSpace(c.Query("text"))
	area := strings.TrimSpace(c.Query("area"))
	category := strings.TrimSpace(c.Query("category"))

	if text == "" {
		writeError(c, http.StatusBadRequest, "missing text")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	plans := h.plans.GeneratePlans(ctx, text, area, category)
	if plans == nil {
		plans = []plan.ItineraryPlan{}
	}
	writeJSON(c, http.StatusOK, travelPlansResp{Plans: plans})
}
