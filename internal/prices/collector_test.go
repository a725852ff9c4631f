package prices

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chole-mining/pipeline/internal/docstore"
	"github.com/chole-mining/pipeline/internal/models"
)

// stubMarket serves canned close series per symbol; unknown symbols fail.
type stubMarket struct {
	closes map[string][]float64
}

func (m *stubMarket) Closes(ctx context.Context, symbol string) ([]float64, error) {
	if closes, ok := m.closes[symbol]; ok {
		return closes, nil
	}
	return nil, errors.New("symbol unavailable")
}

func fixedToday() string { return "2026-08-31" }

func TestFetchPriceChange(t *testing.T) {
	c := NewCollector(&stubMarket{closes: map[string][]float64{
		"GC=F": {2500.0, 2550.0},
	}}, docstore.NewMemoryStore(), fixedToday)

	data, err := c.fetchPrice(context.Background(), "GC=F")
	require.NoError(t, err)

	assert.Equal(t, 2550.0, data.Price)
	assert.Equal(t, 50.0, data.Change)
	assert.Equal(t, 2.0, data.ChangePct)
	assert.True(t, data.Up)
}

func TestFetchPriceSingleDayIsZeroChange(t *testing.T) {
	c := NewCollector(&stubMarket{closes: map[string][]float64{
		"SI=F": {30.5},
	}}, docstore.NewMemoryStore(), fixedToday)

	data, err := c.fetchPrice(context.Background(), "SI=F")
	require.NoError(t, err)

	assert.Equal(t, 30.5, data.Price)
	assert.Equal(t, 0.0, data.ChangePct)
	assert.True(t, data.Up)
}

func TestFetchPriceZeroChangeCountsAsUp(t *testing.T) {
	c := NewCollector(&stubMarket{closes: map[string][]float64{
		"HG=F": {4.5, 4.5},
	}}, docstore.NewMemoryStore(), fixedToday)

	data, err := c.fetchPrice(context.Background(), "HG=F")
	require.NoError(t, err)

	assert.Equal(t, 0.0, data.ChangePct)
	assert.True(t, data.Up)
}

func TestFetchPriceDown(t *testing.T) {
	c := NewCollector(&stubMarket{closes: map[string][]float64{
		"PA=F": {1000.0, 990.0},
	}}, docstore.NewMemoryStore(), fixedToday)

	data, err := c.fetchPrice(context.Background(), "PA=F")
	require.NoError(t, err)

	assert.Equal(t, -1.0, data.ChangePct)
	assert.False(t, data.Up)
}

func TestFetchAllPricesAlwaysEightEntries(t *testing.T) {
	// Every fetch fails; the output must still hold a placeholder per
	// commodity instead of omitting entries.
	c := NewCollector(&stubMarket{}, docstore.NewMemoryStore(), fixedToday)

	quotes := c.FetchAllPrices(context.Background())

	require.Len(t, quotes, len(Commodities))
	for _, q := range quotes {
		assert.Equal(t, "N/A", q.Value)
		assert.Equal(t, 0.0, q.RawPrice)
		assert.Equal(t, "0.0%", q.Change)
		assert.Equal(t, 0.0, q.ChangePct)
		assert.True(t, q.Up)
	}
}

func TestFetchAllPricesMixed(t *testing.T) {
	c := NewCollector(&stubMarket{closes: map[string][]float64{
		"GC=F": {2500.0, 2550.0},
	}}, docstore.NewMemoryStore(), fixedToday)

	quotes := c.FetchAllPrices(context.Background())

	require.Len(t, quotes, len(Commodities))
	assert.Equal(t, "Gold", quotes[0].Symbol)
	assert.Equal(t, "$2,550/oz", quotes[0].Value)
	assert.Equal(t, "+2.0%", quotes[0].Change)
	assert.Equal(t, "N/A", quotes[1].Value)
}

func TestFetchETFPricesOmitsFailures(t *testing.T) {
	c := NewCollector(&stubMarket{closes: map[string][]float64{
		"GDX": {38.0, 39.9},
		"URA": {30.0, 28.5},
	}}, docstore.NewMemoryStore(), fixedToday)

	quotes := c.FetchETFPrices(context.Background())

	require.Len(t, quotes, 2)
	assert.Equal(t, "GDX", quotes[0].Symbol)
	assert.Equal(t, "$39.90", quotes[0].Value)
	assert.Equal(t, "+5.0%", quotes[0].Change)
	assert.Equal(t, "URA", quotes[1].Symbol)
	assert.False(t, quotes[1].Up)
}

func TestUraniumSpotPlaceholder(t *testing.T) {
	spot := UraniumSpot()

	assert.Equal(t, "Uranium", spot.Symbol)
	assert.Equal(t, "$95/lb", spot.Value)
	assert.Equal(t, 95.0, spot.RawPrice)
	assert.Equal(t, "+0.0%", spot.Change)
	assert.True(t, spot.Up)
}

func TestRunWritesSnapshotUnderDateAndLatest(t *testing.T) {
	store := docstore.NewMemoryStore()
	c := NewCollector(&stubMarket{closes: map[string][]float64{
		"GC=F": {2500.0, 2550.0},
		"GDX":  {38.0, 39.9},
	}}, store, fixedToday)

	require.NoError(t, c.Run(context.Background()))

	for _, docID := range []string{"2026-08-31", docstore.LatestDocID} {
		var snap models.PriceSnapshot
		require.NoError(t, store.Get(context.Background(), docstore.CollectionPrices, docID, &snap))

		assert.Equal(t, "2026-08-31", snap.Date)
		assert.Equal(t, "Previous close prices", snap.Note)
		assert.Len(t, snap.Commodities, len(Commodities))
		assert.Len(t, snap.ETFs, 1)
		assert.False(t, snap.UpdatedAt.IsZero())
	}
}
