package news

import (
	"github.com/chole-mining/pipeline/internal/models"
)

// categoryRule pairs a label with its trigger keywords. Rules are checked
// in order and the first match wins, so the order is the tie-break when an
// article matches several keyword sets.
type categoryRule struct {
	label    string
	keywords []string
}

var categoryRules = []categoryRule{
	{"Drill Results", []string{"drill", "intercept", "assay", "metres", "meters", "grade"}},
	{"M&A", []string{"acquire", "merger", "takeover", "bid", "deal", "m&a"}},
	{"Markets", []string{"price", "spot", "futures", "trading", "market"}},
	{"Production", []string{"production", "output", "guidance", "quarterly"}},
	{"Policy", []string{"policy", "regulation", "government", "permit", "approval"}},
	{"Exploration", []string{"exploration", "discovery", "target", "prospective"}},
}

// CategoryIndustry is the catch-all category.
const CategoryIndustry = "Industry"

// Categorize assigns a category label from the article's title and summary.
func Categorize(a models.RawArticle) string {
	text := a.Title + " " + a.Summary
	for _, rule := range categoryRules {
		if matchesAny(text, rule.keywords) {
			return rule.label
		}
	}
	return CategoryIndustry
}
