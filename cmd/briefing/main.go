package main

import (
	"context"
	"time"

	"github.com/chole-mining/pipeline/internal/ai"
	"github.com/chole-mining/pipeline/internal/briefing"
	"github.com/chole-mining/pipeline/internal/config"
	"github.com/chole-mining/pipeline/internal/docstore"
	"github.com/chole-mining/pipeline/internal/logger"
	"github.com/chole-mining/pipeline/internal/objectstore"
)

func main() {
	cfg := config.Load()

	logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stdout",
		Pretty: cfg.Env == "development",
	})
	log := logger.Get()
	log.Info().Time("started_at", time.Now()).Msg("Starting briefing generator")

	if cfg.OpenAIAPIKey == "" {
		log.Fatal().Msg("OPENAI_API_KEY is not set")
	}

	ctx := context.Background()

	store, err := docstore.NewRedisStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to document store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing document store")
		}
	}()

	uploader, err := objectstore.NewS3Client(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize object storage")
	}

	client := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.AITimeout)
	tts := ai.NewSpeechClient(client, ai.SpeechOptions{
		Model: cfg.TTSModel,
		Voice: cfg.TTSVoice,
		Speed: cfg.TTSSpeed,
	})

	gen := briefing.NewGenerator(store, client, tts, uploader, cfg.ScriptModel, cfg.ScratchDir)
	if err := gen.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Briefing generation failed")
	}

	log.Info().Time("completed_at", time.Now()).Msg("Briefing published")
}
