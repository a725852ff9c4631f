package main

import (
	"context"
	"time"

	"github.com/chole-mining/pipeline/internal/config"
	"github.com/chole-mining/pipeline/internal/docstore"
	"github.com/chole-mining/pipeline/internal/logger"
	"github.com/chole-mining/pipeline/internal/prices"
)

func main() {
	cfg := config.Load()

	logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stdout",
		Pretty: cfg.Env == "development",
	})
	log := logger.Get()
	log.Info().Time("started_at", time.Now()).Msg("Starting price collector")

	store, err := docstore.NewRedisStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to document store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing document store")
		}
	}()

	market := prices.NewYahooClient(cfg.HTTPTimeout)
	collector := prices.NewCollector(market, store, func() string {
		return time.Now().Format("2006-01-02")
	})

	if err := collector.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Price collection failed")
	}

	log.Info().Time("completed_at", time.Now()).Msg("Price collector finished")
}
