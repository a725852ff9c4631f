package briefing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chole-mining/pipeline/internal/ai"
	"github.com/chole-mining/pipeline/internal/docstore"
	"github.com/chole-mining/pipeline/internal/logger"
	"github.com/chole-mining/pipeline/internal/models"
	"github.com/chole-mining/pipeline/internal/objectstore"
)

// nominalDuration is the assumed briefing length; the audio is not
// measured after synthesis.
const nominalDuration = 180

const maxScriptArticles = 5

// ErrNoNews signals that no news document exists for the briefing to read.
var ErrNoNews = errors.New("briefing: no news data found")

// Generator runs the daily briefing job: script, audio, upload, metadata.
type Generator struct {
	store      docstore.Store
	ai         ai.Completer
	tts        ai.Synthesizer
	uploader   objectstore.Uploader
	model      string
	scratchDir string
	now        func() time.Time
}

func NewGenerator(store docstore.Store, completer ai.Completer, tts ai.Synthesizer, uploader objectstore.Uploader, model, scratchDir string) *Generator {
	return &Generator{
		store:      store,
		ai:         completer,
		tts:        tts,
		uploader:   uploader,
		model:      model,
		scratchDir: scratchDir,
		now:        time.Now,
	}
}

// TodaysNews reads the latest daily news document. A missing document
// returns ErrNoNews.
func (g *Generator) TodaysNews(ctx context.Context) (*models.DailyNews, error) {
	var doc models.DailyNews
	err := g.store.Get(ctx, docstore.CollectionDailyNews, docstore.LatestDocID, &doc)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNoNews
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	return &doc, nil
}

// GenerateScript drafts the spoken briefing script from the day's top
// articles. A failure here is fatal for the run; no partial script is
// ever published.
func (g *Generator) GenerateScript(ctx context.Context, news *models.DailyNews) (string, error) {
	articles := news.Today
	if len(articles) > maxScriptArticles {
		articles = articles[:maxScriptArticles]
	}

	script, err := g.ai.Complete(ctx, ai.CompletionRequest{
		Model:       g.model,
		Prompt:      ai.BuildScriptPrompt(articles, g.now()),
		Temperature: 0.7,
		MaxTokens:   800,
	})
	if err != nil {
		return "", fmt.Errorf("script generation failed: %w", err)
	}
	return script, nil
}

// Run executes the full briefing publish path. Every failure before the
// metadata write aborts the publish; the scratch audio file is removed on
// all paths where it was created.
func (g *Generator) Run(ctx context.Context) error {
	log := logger.Get()
	today := g.now().Format("2006-01-02")

	log.Info().Msg("Fetching today's news...")
	news, err := g.TodaysNews(ctx)
	if err != nil {
		return err
	}

	log.Info().Msg("Generating briefing script...")
	script, err := g.GenerateScript(ctx, news)
	if err != nil {
		return err
	}

	log.Info().Str("script", script).Msg("Briefing script generated")

	audioPath := filepath.Join(g.scratchDir, fmt.Sprintf("briefing_%s.mp3", today))
	defer func() {
		if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
			log.Error().Err(err).Str("path", audioPath).Msg("Failed to remove scratch audio")
		}
	}()

	log.Info().Msg("Generating audio...")
	if err := g.tts.Synthesize(ctx, script, audioPath); err != nil {
		return fmt.Errorf("audio generation failed: %w", err)
	}

	log.Info().Msg("Uploading audio...")
	remotePath := fmt.Sprintf("podcasts/%s/briefing.mp3", today)
	audioURL, err := g.uploader.Upload(ctx, audioPath, remotePath)
	if err != nil {
		return fmt.Errorf("audio upload failed: %w", err)
	}
	log.Info().Str("url", audioURL).Msg("Audio uploaded")

	doc := &models.Briefing{
		Date:              today,
		Title:             "Mining Daily Briefing - " + g.now().Format("January 2, 2006"),
		Script:            script,
		AudioURL:          audioURL,
		Duration:          nominalDuration,
		DurationFormatted: fmt.Sprintf("%d:%02d", nominalDuration/60, nominalDuration%60),
	}

	for _, docID := range []string{today, docstore.LatestDocID} {
		if err := g.store.Put(ctx, docstore.CollectionDailyMedia, docID, doc); err != nil {
			log.Error().Err(err).Str("doc_id", docID).Msg("Failed to save briefing metadata")
		} else {
			log.Info().Str("doc_id", docID).Msg("Saved briefing metadata")
		}
	}

	return nil
}
