// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"daytrip/internal/http/handlers"
	"daytrip/internal/http/middleware"
	"daytrip/internal/modules/member"
	"daytrip/internal/modules/place"
	"daytrip/internal/modules/plan"
	"daytrip/internal/modules/weather"
)

type RouterDeps struct {
	Plan      *plan.Service
	Place     *place.Service
	Member    *member.Service
	Weather   *weather.Service
	JWTSecret string
	Log       *zap.SugaredLogger
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(deps.Log), middleware.Recovery(deps.Log))

	planHandler := handlers.NewPlanHandler(deps.Plan)
	r.GET("/api/ai/travel-plans", planHandler.TravelPlans)

	placeHandler := handlers.NewPlaceHandler(deps.Place)
	r.GET("/api/places/attractions", placeHandler.ListAttractions)
	r.GET("/api/places/attractions/:id", placeHandler.GetAttraction)
	r.GET("/api/places/eateries", placeHandler.ListEateries)
	r.GET("/api/places/eateries/:id", placeHandler.GetEatery)

	memberHandler := handlers.NewMemberHandler(deps.Member)
	r.POST("/api/members/join", memberHandler.Join)
	r.POST("/api/members/login", memberHandler.Login)
	r.POST("/api/members/refresh", memberHandler.Refresh)

	weatherHandler := handlers.NewWeatherHandler(deps.Weather)
	r.GET("/api/weather", weatherHandler.Report)

	auth := r.Group("/", middleware.Auth(deps.JWTSecret))
	auth.POST("/api/members/logout", memberHandler.Logout)
	auth.DELETE("/api/members/me", memberHandler.Delete)
	auth.POST("/api/places/attractions/import", placeHandler.ImportAttractions)
	auth.POST("/api/places/eateries/import", placeHandler.ImportEateries)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
