// README: Tests for the travel plan handler.
package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"daytrip/internal/http/handlers"
	"daytrip/internal/modules/place"
	"daytrip/internal/modules/plan"
)

type stubCatalog struct{}

func (stubCatalog) SampleAttractions(_ context.Context, area, category string, limit int) ([]place.Attraction, error) {
	out := make([]place.Attraction, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, place.Attraction{
			ID:       int64(i + 1),
			Name:     fmt.Sprintf("명소%d", i+1),
			Area:     area,
			Category: category,
		})
	}
	return out, nil
}

func (stubCatalog) SampleEateries(_ context.Context, limit int) ([]place.Eatery, error) {
	out := make([]place.Eatery, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, place.Eatery{
			ID:   int64(i + 1),
			Name: fmt.Sprintf("식당%d", i+1),
			Type: "한식당",
		})
	}
	return out, nil
}

type stubProvider struct {
	out string
	err error
}

func (s stubProvider) Complete(_ context.Context, _, _ string) (string, error) {
	return s.out, s.err
}

func buildTestRouter(provider stubProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop().Sugar()
	extractor := plan.NewExtractor(plan.DefaultVocabulary(), nil, log)
	svc := plan.NewService(stubCatalog{}, provider, extractor, plan.DefaultLimits, log)

	r := gin.New()
	h := handlers.NewPlanHandler(svc)
	r.GET("/api/ai/travel-plans", h.TravelPlans)
	return r
}

func escape(s string) string {
	return url.QueryEscape(s)
}

func completionJSON() string {
	return `{"plans":[
		{"summary":"바다 감성 코스","course":[
			{"order":1,"type":"관광지","name":"명소1"},
			{"order":2,"type":"가게","name":"식당1"},
			{"order":3,"type":"관광지","name":"명소2"},
			{"order":4,"type":"관광지","name":"명소3"},
			{"order":5,"type":"가게","name":"식당2"}
		]}
	]}`
}

func TestTravelPlans_MissingText(t *testing.T) {
	r := buildTestRouter(stubProvider{out: completionJSON()})
	req := httptest.NewRequest(http.MethodGet, "/api/ai/travel-plans", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestTravelPlans_OK(t *testing.T) {
	r := buildTestRouter(stubProvider{out: completionJSON()})
	req := httptest.NewRequest(http.MethodGet,
		"/api/ai/travel-plans?text="+escape("가족과 당일치기로 바다 여행"), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Plans []plan.ItineraryPlan `json:"plans"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Plans) != 1 {
		t.Fatalf("got %d plans, want 1", len(resp.Plans))
	}
	if len(resp.Plans[0].Course) != plan.CourseLength {
		t.Errorf("course length = %d, want %d", len(resp.Plans[0].Course), plan.CourseLength)
	}
}

func TestTravelPlans_ProviderFailureDegradesToEmpty(t *testing.T) {
	r := buildTestRouter(stubProvider{err: fmt.Errorf("model unavailable")})
	req := httptest.NewRequest(http.MethodGet,
		"/api/ai/travel-plans?text="+escape("바다 여행"), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Plans []plan.ItineraryPlan `json:"plans"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Plans == nil || len(resp.Plans) != 0 {
		t.Errorf("expected empty plan list, got %v", resp.Plans)
	}
}
