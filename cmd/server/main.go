package main

import (
	"context"
	"flag"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"valuedeck/internal/app"
	"valuedeck/internal/config"
	"valuedeck/internal/content"
	httpport "valuedeck/internal/ports/http"
	"valuedeck/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		log.Fatalf("loading config: %v", err)
	}
	cfg := config.Get()
	if cfg.MaxCardCount > content.DeckSize {
		// The content module caps how many distinct cards exist.
		cfg.MaxCardCount = content.DeckSize
	}

	var logger *zap.Logger
	var err error
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("redis unreachable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	logger.Info("redis connected", zap.String("addr", cfg.RedisAddr))

	rooms := store.New(rdb, logger, cfg.TxRetries)
	svc := app.NewService(rooms, content.Cards, app.Limits{
		MinCardCount: cfg.MinCardCount,
		MaxCardCount: cfg.MaxCardCount,
	}, nil, logger)

	hub := httpport.NewHub(logger)
	svc.SetNotifier(hub)

	h := httpport.NewHandler(svc, logger)
	r := httpport.NewRouter(h, hub, cfg.AllowedOrigins)

	logger.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
