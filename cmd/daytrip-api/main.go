// README: Entry point; loads config, wires services, starts HTTP server and background schedulers.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"daytrip/internal/ai"
	"daytrip/internal/config"
	httptransport "daytrip/internal/http"
	"daytrip/internal/infra"
	"daytrip/internal/maps"
	"daytrip/internal/modules/member"
	"daytrip/internal/modules/place"
	"daytrip/internal/modules/plan"
	"daytrip/internal/modules/weather"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := infra.NewLogger(os.Getenv("DAYTRIP_ENV") != "production")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	var geocoder place.Geocoder
	if cfg.Maps.APIKey != "" {
		geocoder, err = maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	}

	placeStore := place.NewStore(dbPool)
	placeSvc := place.NewService(placeStore, geocoder, sugar)

	extractor := plan.NewExtractor(plan.DefaultVocabulary(), provider, sugar)
	planSvc := plan.NewService(placeSvc, provider, extractor, plan.Limits{
		Attractions: cfg.Plan.AttractionSample,
		Eateries:    cfg.Plan.EaterySample,
	}, sugar)

	memberStore := member.NewStore(dbPool, redisClient)
	memberSvc := member.NewService(memberStore, cfg.Auth)

	weatherClient := weather.NewClient(&http.Client{Timeout: 10 * time.Second}, cfg.Weather)
	weatherStore := weather.NewStore(redisClient)
	weatherSvc, err := weather.NewService(weatherClient, weatherStore, sugar)
	if err != nil {
		log.Fatal(err)
	}

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Plan:      planSvc,
		Place:     placeSvc,
		Member:    memberSvc,
		Weather:   weatherSvc,
		JWTSecret: cfg.Auth.JWTSecret,
		Log:       sugar,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go weatherSvc.RunCacheRefresher(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	sugar.Infow("server starting", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
