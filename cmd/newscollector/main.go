package main

import (
	"context"
	"time"

	"github.com/chole-mining/pipeline/internal/ai"
	"github.com/chole-mining/pipeline/internal/config"
	"github.com/chole-mining/pipeline/internal/docstore"
	"github.com/chole-mining/pipeline/internal/feed"
	"github.com/chole-mining/pipeline/internal/logger"
	"github.com/chole-mining/pipeline/internal/news"
)

func main() {
	cfg := config.Load()

	logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stdout",
		Pretty: cfg.Env == "development",
	})
	log := logger.Get()
	log.Info().Time("started_at", time.Now()).Msg("Starting news collector")

	if cfg.OpenAIAPIKey == "" {
		log.Fatal().Msg("OPENAI_API_KEY is not set")
	}

	store, err := docstore.NewRedisStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to document store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing document store")
		}
	}()

	fetcher := feed.NewFetcher(feed.DefaultSources, cfg.FreshnessLimit, cfg.HTTPTimeout)
	completer := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.AITimeout)
	collector := news.NewCollector(fetcher, completer, store, cfg.CurationModel, func() string {
		return time.Now().Format("2006-01-02")
	})

	if err := collector.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("News collection failed")
	}

	log.Info().Time("completed_at", time.Now()).Msg("News collector finished")
}
