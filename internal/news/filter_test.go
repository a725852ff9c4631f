package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chole-mining/pipeline/internal/models"
)

func TestFilterByCommodityCaseInsensitive(t *testing.T) {
	articles := []models.RawArticle{
		{Title: "GOLD hits record high", Summary: ""},
		{Title: "Iron ore shipments rise", Summary: ""},
		{Title: "Producer expands", Summary: "New BULLION refinery planned"},
	}

	filtered := FilterByCommodity(articles, "gold")

	require.Len(t, filtered, 2)
	assert.Equal(t, "GOLD hits record high", filtered[0].Title)
	assert.Equal(t, "Producer expands", filtered[1].Title)
}

func TestFilterByRegionPreservesOrder(t *testing.T) {
	articles := []models.RawArticle{
		{Title: "Nevada project update"},
		{Title: "Chile strike continues"},
		{Title: "Arizona permit granted"},
	}

	filtered := FilterByRegion(articles, "usa")

	require.Len(t, filtered, 2)
	assert.Equal(t, "Nevada project update", filtered[0].Title)
	assert.Equal(t, "Arizona permit granted", filtered[1].Title)
}

func TestFilterByKeywordsMatchesSummary(t *testing.T) {
	articles := []models.RawArticle{
		{Title: "Quarterly update", Summary: "TSX-V listed explorer reports progress"},
		{Title: "Major produces record output"},
	}

	filtered := FilterByKeywords(articles, JuniorKeywords)

	require.Len(t, filtered, 1)
	assert.Equal(t, "Quarterly update", filtered[0].Title)
}

func TestFilterNoMatches(t *testing.T) {
	articles := []models.RawArticle{{Title: "Steel demand outlook"}}

	assert.Empty(t, FilterByCommodity(articles, "uranium"))
}
