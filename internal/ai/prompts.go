package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/chole-mining/pipeline/internal/models"
	"github.com/chole-mining/pipeline/internal/utils"
)

const curationPromptTemplate = `You are a mining industry expert editor. Select the %d most important and newsworthy articles for %s.

Prioritize:
- Major price movements or market events
- Significant M&A activity
- Important drill results or discoveries
- Policy/regulatory changes affecting mining
- Production updates from major miners

Articles:
%s

Return ONLY a JSON array of the article numbers (1-indexed) you selected, e.g., [1, 5, 12, 18, 23]
Select exactly %d articles.`

// BuildCurationPrompt numbers the candidate articles and asks for a JSON
// array of 1-based selections. Summaries are cut to their first 200
// characters to keep the prompt small.
func BuildCurationPrompt(articles []models.RawArticle, count int, category string) string {
	var sb strings.Builder
	for i, a := range articles {
		summary := utils.Truncate(a.Summary, 200)
		fmt.Fprintf(&sb, "%d. %s (%s)\n   Summary: %s...\n", i+1, a.Title, a.Source, summary)
	}
	return fmt.Sprintf(curationPromptTemplate, count, category, sb.String(), count)
}

const summaryPromptTemplate = `Summarize this mining news article in 1-2 sentences for industry professionals:

Title: %s
Content: %s

Be specific and include key numbers or details. Max 150 characters.`

func BuildSummaryPrompt(a models.RawArticle) string {
	return fmt.Sprintf(summaryPromptTemplate, a.Title, a.Summary)
}

const bulletsPromptTemplate = `You are a senior mining industry analyst. Generate exactly 3 expert-level bullet points for this mining news article.

Title: %s
Source: %s
Summary: %s

Requirements:
- Each bullet should be 2-3 sentences with specific details
- Include numbers, percentages, or specific data when available
- Write for sophisticated investors/industry professionals
- Reference specific companies, projects, or technical details
- Provide context on why this matters to the industry

Return as JSON array of 3 objects with "text" and "source" fields:
[
  {"text": "First expert bullet point...", "source": "%s"},
  {"text": "Second expert bullet point...", "source": "%s"},
  {"text": "Third expert bullet point...", "source": "%s"}
]`

func BuildBulletsPrompt(a models.RawArticle) string {
	return fmt.Sprintf(bulletsPromptTemplate, a.Title, a.Source, a.Summary, a.Source, a.Source, a.Source)
}

const scriptPromptTemplate = `You are the host of "Chole Mining Briefing", a daily 3-minute podcast for mining industry professionals and investors.

Today's date: %s

Today's top mining news:
%s

Write a podcast script that:
1. Opens with a brief, professional greeting (5 seconds)
2. Covers the top 3-4 most important stories with expert analysis (2.5 minutes)
3. Closes with a brief sign-off (10 seconds)

Style guidelines:
- Professional but engaging tone
- Include specific numbers, percentages, and company names
- Provide context on why each story matters
- Natural speaking rhythm with occasional pauses marked as "..."
- Target 450-500 words (approximately 3 minutes when spoken)
- Do NOT include sound effects, music cues, or production notes
- Write in natural spoken English, not overly formal

Begin the script directly with the greeting, no titles or headers.`

// BuildScriptPrompt formats the day's top stories for the briefing script.
func BuildScriptPrompt(articles []models.Article, date time.Time) string {
	var sb strings.Builder
	for _, a := range articles {
		fmt.Fprintf(&sb, "- %s (%s): %s\n", a.Headline, a.Source, a.Summary)
	}
	return fmt.Sprintf(scriptPromptTemplate, date.Format("January 2, 2006"), sb.String())
}
