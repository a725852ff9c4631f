package news

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chole-mining/pipeline/internal/ai"
	"github.com/chole-mining/pipeline/internal/docstore"
	"github.com/chole-mining/pipeline/internal/feed"
	"github.com/chole-mining/pipeline/internal/logger"
	"github.com/chole-mining/pipeline/internal/models"
	"github.com/chole-mining/pipeline/internal/utils"
)

const (
	topCount      = 5
	maxCandidates = 30
)

// Fallback bullet texts used when bullet generation fails.
const (
	fallbackBulletPending  = "Additional details pending..."
	fallbackBulletAnalysis = "Full analysis available in source article."
)

// Fetcher supplies the raw articles for a run.
type Fetcher interface {
	FetchAll(ctx context.Context) []models.RawArticle
}

// Collector runs the daily news collection job: fetch, filter, curate,
// enrich, persist.
type Collector struct {
	fetcher Fetcher
	ai      ai.Completer
	store   docstore.Store
	model   string
	today   func() string
}

func NewCollector(fetcher Fetcher, completer ai.Completer, store docstore.Store, model string, today func() string) *Collector {
	return &Collector{
		fetcher: fetcher,
		ai:      completer,
		store:   store,
		model:   model,
		today:   today,
	}
}

var _ Fetcher = (*feed.Fetcher)(nil)

// CurateTop asks the AI service to pick the count most newsworthy articles
// for a category. An empty input returns empty without an AI call. Any
// failure falls back to the first count articles in input order.
func (c *Collector) CurateTop(ctx context.Context, articles []models.RawArticle, count int, category string) []models.RawArticle {
	if len(articles) == 0 {
		return []models.RawArticle{}
	}

	log := logger.Get()

	candidates := articles
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	resp, err := c.ai.Complete(ctx, ai.CompletionRequest{
		Model:       c.model,
		Prompt:      ai.BuildCurationPrompt(candidates, count, category),
		Temperature: 0.3,
		MaxTokens:   100,
	})
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("AI curation error")
		return firstN(articles, count)
	}

	var indices []int
	if err := json.Unmarshal([]byte(ai.CleanJSONResponse(resp)), &indices); err != nil {
		log.Error().Err(err).Str("category", category).Msg("AI curation returned unparsable selection")
		return firstN(articles, count)
	}

	var selected []models.RawArticle
	for _, i := range indices {
		if i > 0 && i <= len(articles) {
			selected = append(selected, articles[i-1])
		}
	}
	// A model that over-selects must not grow the list past count.
	return firstN(selected, count)
}

// Summarize produces a short AI summary for an article, falling back to a
// truncation of the raw summary.
func (c *Collector) Summarize(ctx context.Context, a models.RawArticle) string {
	resp, err := c.ai.Complete(ctx, ai.CompletionRequest{
		Model:       c.model,
		Prompt:      ai.BuildSummaryPrompt(a),
		Temperature: 0.3,
		MaxTokens:   100,
	})
	if err != nil {
		logger.Get().Error().Err(err).Str("title", a.Title).Msg("Summary generation error")
		return utils.Truncate(a.Summary, 150)
	}
	return resp
}

// ExpertBullets produces exactly three attributed analyst bullets for an
// article. Any failure yields a deterministic three-item fallback.
func (c *Collector) ExpertBullets(ctx context.Context, a models.RawArticle) []models.Bullet {
	log := logger.Get()

	fallback := []models.Bullet{
		{Text: utils.Truncate(a.Summary, 200), Source: a.Source},
		{Text: fallbackBulletPending, Source: a.Source},
		{Text: fallbackBulletAnalysis, Source: a.Source},
	}

	resp, err := c.ai.Complete(ctx, ai.CompletionRequest{
		Model:       c.model,
		Prompt:      ai.BuildBulletsPrompt(a),
		Temperature: 0.5,
		MaxTokens:   500,
	})
	if err != nil {
		log.Error().Err(err).Str("title", a.Title).Msg("Bullet generation error")
		return fallback
	}

	var bullets []models.Bullet
	if err := json.Unmarshal([]byte(ai.CleanJSONResponse(resp)), &bullets); err != nil || len(bullets) == 0 {
		log.Error().Err(err).Str("title", a.Title).Msg("Bullet generation returned unparsable response")
		return fallback
	}
	return bullets
}

// Process assembles the processed record for each curated article.
func (c *Collector) Process(ctx context.Context, articles []models.RawArticle) []models.Article {
	log := logger.Get()
	processed := make([]models.Article, 0, len(articles))

	for _, a := range articles {
		processed = append(processed, models.Article{
			ID:          utils.ArticleID(a.Link),
			Headline:    a.Title,
			Link:        a.Link,
			Source:      a.Source,
			SourceCount: 1,
			Image:       a.Image,
			Published:   a.Published,
			Category:    Categorize(a),
			Summary:     c.Summarize(ctx, a),
			Bullets:     c.ExpertBullets(ctx, a),
		})
		log.Info().Str("title", utils.Truncate(a.Title, 50)).Msg("Processed article")
	}

	return processed
}

// Run executes the full collection job and writes the daily document under
// the date key and the "latest" alias. Persistence failures are logged and
// do not fail the run.
func (c *Collector) Run(ctx context.Context) error {
	log := logger.Get()
	today := c.today()

	log.Info().Msg("Fetching RSS feeds...")
	all := c.fetcher.FetchAll(ctx)
	log.Info().Int("count", len(all)).Msg("Fetched articles")

	doc := &models.DailyNews{Date: today}

	log.Info().Msg("Processing today's top news...")
	doc.Today = c.Process(ctx, c.CurateTop(ctx, all, topCount, "mining industry today"))

	for _, commodity := range CommodityKeys {
		log.Info().Str("commodity", commodity).Msg("Processing commodity news...")
		filtered := FilterByCommodity(all, commodity)
		curated := c.CurateTop(ctx, filtered, topCount, fmt.Sprintf("%s mining", commodity))
		*doc.CommodityList(commodity) = c.Process(ctx, curated)
	}

	for _, region := range RegionKeys {
		log.Info().Str("region", region).Msg("Processing region news...")
		filtered := FilterByRegion(all, region)
		curated := c.CurateTop(ctx, filtered, topCount, fmt.Sprintf("%s mining", region))
		*doc.RegionList(region) = c.Process(ctx, curated)
	}

	log.Info().Msg("Processing junior mining news...")
	junior := FilterByKeywords(all, JuniorKeywords)
	doc.Junior = c.Process(ctx, c.CurateTop(ctx, junior, topCount, "junior mining exploration"))

	for _, docID := range []string{today, docstore.LatestDocID} {
		if err := c.store.Put(ctx, docstore.CollectionDailyNews, docID, doc); err != nil {
			log.Error().Err(err).Str("doc_id", docID).Msg("Failed to save daily news")
		} else {
			log.Info().Str("doc_id", docID).Msg("Saved daily news")
		}
	}

	log.Info().
		Int("today", len(doc.Today)).
		Int("junior", len(doc.Junior)).
		Msg("Collection run complete")
	return nil
}

func firstN(articles []models.RawArticle, n int) []models.RawArticle {
	if len(articles) > n {
		return articles[:n]
	}
	return articles
}

