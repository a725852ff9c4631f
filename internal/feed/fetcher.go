package feed

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"

	"github.com/chole-mining/pipeline/internal/logger"
	"github.com/chole-mining/pipeline/internal/models"
	"github.com/chole-mining/pipeline/internal/utils"
)

const (
	// maxEntriesPerFeed caps how many entries are taken from each source.
	maxEntriesPerFeed = 20

	// maxSummaryLength truncates raw summaries at ingestion.
	maxSummaryLength = 500

	// placeholderImage is used when no image can be extracted from an entry.
	placeholderImage = "https://images.unsplash.com/photo-1578319439584-104c94d37305?w=800"
)

var imgTagRegex = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["']`)

// Fetcher retrieves and normalizes entries from the configured feed sources.
type Fetcher struct {
	client  *resty.Client
	parser  *gofeed.Parser
	sources []Source
	maxAge  time.Duration
	now     func() time.Time
}

func NewFetcher(sources []Source, maxAge time.Duration, timeout time.Duration) *Fetcher {
	return &Fetcher{
		// A failed source is skipped for the day rather than retried.
		client:  resty.New().SetTimeout(timeout),
		parser:  gofeed.NewParser(),
		sources: sources,
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// FetchAll retrieves entries from every configured source. A failing source
// is logged and skipped; it never aborts collection of the remaining feeds.
func (f *Fetcher) FetchAll(ctx context.Context) []models.RawArticle {
	log := logger.Get()
	var all []models.RawArticle

	for _, src := range f.sources {
		articles, err := f.fetchSource(ctx, src)
		if err != nil {
			log.Error().Err(err).Str("source", src.Name).Msg("Error fetching feed")
			continue
		}
		all = append(all, articles...)
	}

	return all
}

func (f *Fetcher) fetchSource(ctx context.Context, src Source) ([]models.RawArticle, error) {
	resp, err := f.client.R().SetContext(ctx).Get(src.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed from %s: %w", src.URL, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode(), src.URL)
	}

	parsed, err := f.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed from %s: %w", src.URL, err)
	}

	now := f.now()
	items := parsed.Items
	if len(items) > maxEntriesPerFeed {
		items = items[:maxEntriesPerFeed]
	}

	var articles []models.RawArticle
	for _, item := range items {
		published := resolvePublished(item, now)

		// Entries strictly older than the freshness window are dropped;
		// an entry exactly at the boundary is kept.
		if now.Sub(published) > f.maxAge {
			continue
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}
		summary = utils.Truncate(summary, maxSummaryLength)

		articles = append(articles, models.RawArticle{
			Title:     item.Title,
			Link:      item.Link,
			Summary:   summary,
			Source:    src.Name,
			Published: published,
			Image:     extractImage(item),
		})
	}

	return articles, nil
}

// resolvePublished prefers the entry's published time, falls back to its
// updated time, and treats a dateless entry as published now.
func resolvePublished(item *gofeed.Item, now time.Time) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return now
}

// extractImage resolves an entry image with a fixed priority: embedded
// media attachment, image-typed enclosure, first <img src> in the summary
// HTML, then the placeholder.
func extractImage(item *gofeed.Item) string {
	if exts, ok := item.Extensions["media"]; ok {
		if contents, ok := exts["content"]; ok && len(contents) > 0 {
			if url := contents[0].Attrs["url"]; url != "" {
				return url
			}
		}
	}

	for _, enc := range item.Enclosures {
		if strings.Contains(enc.Type, "image") && enc.URL != "" {
			return enc.URL
		}
	}

	if m := imgTagRegex.FindStringSubmatch(item.Description); m != nil {
		return m[1]
	}

	return placeholderImage
}
