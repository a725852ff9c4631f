package news

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chole-mining/pipeline/internal/models"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		summary string
		want    string
	}{
		{"drill results", "Company reports drill intercepts", "high grade over 12 metres", "Drill Results"},
		{"m&a", "Major to acquire junior in all-stock deal", "", "M&A"},
		{"markets", "Spot uranium climbs again", "trading volumes surge", "Markets"},
		{"production", "Quarterly output beats guidance", "", "Production"},
		{"policy", "New permit regulation announced", "government review", "Policy"},
		{"exploration", "New discovery at prospective belt", "", "Exploration"},
		{"catch-all", "Conference highlights sector sentiment", "attendance higher this year", "Industry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(models.RawArticle{Title: tt.title, Summary: tt.summary})
			assert.Equal(t, tt.want, got)
		})
	}
}

// An article matching both drill-result and M&A terms must land in Drill
// Results; the rule order is the tie-break.
func TestCategorizePriorityOrder(t *testing.T) {
	a := models.RawArticle{
		Title:   "Miner to acquire explorer after strong drill results",
		Summary: "takeover bid follows high-grade assay",
	}

	assert.Equal(t, "Drill Results", Categorize(a))
}
