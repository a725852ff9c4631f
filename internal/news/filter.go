package news

import (
	"strings"

	"github.com/chole-mining/pipeline/internal/models"
)

// matchesAny reports whether any keyword appears in text as a
// case-insensitive substring.
func matchesAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// FilterByKeywords returns the subset of articles whose title or summary
// contains any of the keywords, preserving input order.
func FilterByKeywords(articles []models.RawArticle, keywords []string) []models.RawArticle {
	var filtered []models.RawArticle
	for _, a := range articles {
		if matchesAny(a.Title+" "+a.Summary, keywords) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// FilterByCommodity filters articles by the keyword table for a commodity.
func FilterByCommodity(articles []models.RawArticle, commodity string) []models.RawArticle {
	return FilterByKeywords(articles, CommodityKeywords[commodity])
}

// FilterByRegion filters articles by the keyword table for a region.
func FilterByRegion(articles []models.RawArticle, region string) []models.RawArticle {
	return FilterByKeywords(articles, RegionKeywords[region])
}
