package ai

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chole-mining/pipeline/internal/models"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `[1, 2, 3]`, `[1, 2, 3]`},
		{"fenced", "```json\n[1, 2, 3]\n```", `[1, 2, 3]`},
		{"fenced no language", "```\n[1, 2, 3]\n```", `[1, 2, 3]`},
		{"surrounding whitespace", "  [1, 2, 3]\n", `[1, 2, 3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONResponse(tt.in))
		})
	}
}

func TestBuildCurationPrompt(t *testing.T) {
	articles := []models.RawArticle{
		{Title: "Gold rallies", Source: "Mining.com", Summary: strings.Repeat("x", 300)},
		{Title: "Copper slides", Source: "Kitco News", Summary: "short"},
	}

	prompt := BuildCurationPrompt(articles, 5, "mining industry professionals")

	assert.Contains(t, prompt, "1. Gold rallies (Mining.com)")
	assert.Contains(t, prompt, "2. Copper slides (Kitco News)")
	assert.Contains(t, prompt, "Select exactly 5 articles.")
	// Long summaries are cut to their first 200 characters.
	assert.Contains(t, prompt, strings.Repeat("x", 200)+"...")
	assert.NotContains(t, prompt, strings.Repeat("x", 201))
}

func TestBuildScriptPrompt(t *testing.T) {
	articles := []models.Article{
		{Headline: "Gold hits record", Source: "Reuters", Summary: "Spot gold reached $2,800."},
	}
	date := time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC)

	prompt := BuildScriptPrompt(articles, date)

	assert.Contains(t, prompt, "August 31, 2026")
	assert.Contains(t, prompt, "- Gold hits record (Reuters): Spot gold reached $2,800.")
}

func TestBuildBulletsPromptRepeatsSource(t *testing.T) {
	prompt := BuildBulletsPrompt(models.RawArticle{
		Title:   "Drill results at depth",
		Source:  "Junior Mining Network",
		Summary: "Assays pending.",
	})

	assert.Equal(t, 4, strings.Count(prompt, "Junior Mining Network"))
}
