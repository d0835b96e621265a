// README: Entry point; loads config, wires services, starts the HTTP server and feed refresher.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"evconnect/internal/config"
	"evconnect/internal/feed"
	httptransport "evconnect/internal/http"
	"evconnect/internal/infra"
	"evconnect/internal/logging"
	"evconnect/internal/maps"
	"evconnect/internal/modules/assist"
	"evconnect/internal/modules/booking"
	"evconnect/internal/modules/catalog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache *feed.Cache
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		cache = feed.NewCache(redisClient, time.Duration(cfg.Feed.CacheTTLSeconds)*time.Second)
	}
	source := feed.NewCachedSource(feed.NewClient(cfg.Feed), cache)

	catalogSvc := catalog.NewService(source, catalog.NewNormalizer(cfg.Feed), logger)
	catalogSvc.Load(ctx)

	bookingSvc := booking.NewService(catalogSvc)

	var assistSvc *assist.Service
	if cfg.AI.GeminiKey != "" {
		assistSvc, err = assist.NewService(ctx, cfg.AI.GeminiKey)
		if err != nil {
			logger.Fatal("assist init", zap.Error(err))
		}
		defer assistSvc.Close()
	} else {
		logger.Warn("GEMINI_API_KEY not set, assistant disabled")
	}

	var distanceSvc *maps.DistanceService
	if cfg.Maps.APIKey != "" {
		distanceSvc, err = maps.NewDistanceService(cfg.Maps.APIKey)
		if err != nil {
			logger.Fatal("maps init", zap.Error(err))
		}
	} else {
		logger.Warn("MAPS_API_KEY not set, distance lookup disabled")
	}

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Catalog:  catalogSvc,
		Booking:  bookingSvc,
		Assist:   assistSvc,
		Distance: distanceSvc,
		Logger:   logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go catalogSvc.RunRefresher(ctx, time.Duration(cfg.Feed.RefreshMinutes)*time.Minute)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("starting http server", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server", zap.Error(err))
	}
}
