package prices

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/chole-mining/pipeline/internal/docstore"
	"github.com/chole-mining/pipeline/internal/logger"
	"github.com/chole-mining/pipeline/internal/models"
)

// snapshotNote accompanies every written snapshot document.
const snapshotNote = "Previous close prices"

// priceData is the raw result of one symbol fetch before display formatting.
type priceData struct {
	Price     float64
	Change    float64
	ChangePct float64
	Up        bool
}

// Collector runs the price collection job.
type Collector struct {
	market MarketData
	store  docstore.Store
	today  func() string
}

func NewCollector(market MarketData, store docstore.Store, today func() string) *Collector {
	return &Collector{market: market, store: store, today: today}
}

// fetchPrice resolves the latest close and day-over-day change for a
// symbol. A single trading day of data yields a zero change. A change of
// exactly zero percent counts as up.
func (c *Collector) fetchPrice(ctx context.Context, symbol string) (*priceData, error) {
	closes, err := c.market.Closes(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("no close data for %s", symbol)
	}

	current := closes[len(closes)-1]

	var change, changePct float64
	if len(closes) >= 2 {
		prev := closes[len(closes)-2]
		change = current - prev
		changePct = (change / prev) * 100
	}

	return &priceData{
		Price:     round2(current),
		Change:    round2(change),
		ChangePct: round2(changePct),
		Up:        changePct >= 0,
	}, nil
}

// FetchAllPrices returns one quote per tracked commodity. A failed fetch
// becomes a deterministic "N/A" placeholder so the list length is always
// exactly len(Commodities).
func (c *Collector) FetchAllPrices(ctx context.Context) []models.Quote {
	log := logger.Get()
	quotes := make([]models.Quote, 0, len(Commodities))

	for _, inst := range Commodities {
		log.Info().Str("name", inst.Name).Msg("Fetching commodity price")

		data, err := c.fetchPrice(ctx, inst.Symbol)
		if err != nil {
			log.Error().Err(err).Str("symbol", inst.Symbol).Msg("Price fetch failed, using placeholder")
			quotes = append(quotes, models.Quote{
				Symbol:    inst.Display,
				Name:      inst.Name,
				Value:     "N/A",
				RawPrice:  0,
				Change:    "0.0%",
				ChangePct: 0,
				Up:        true,
			})
			continue
		}

		quotes = append(quotes, models.Quote{
			Symbol:    inst.Display,
			Name:      inst.Name,
			Value:     FormatPrice(data.Price, inst.Unit),
			RawPrice:  data.Price,
			Change:    FormatChange(data.ChangePct),
			ChangePct: data.ChangePct,
			Up:        data.Up,
		})
	}

	return quotes
}

// FetchETFPrices returns quotes for the tracked mining ETFs. Unlike
// commodities, a failed fetch is simply omitted.
func (c *Collector) FetchETFPrices(ctx context.Context) []models.Quote {
	log := logger.Get()
	quotes := make([]models.Quote, 0, len(ETFs))

	for _, inst := range ETFs {
		log.Info().Str("name", inst.Name).Msg("Fetching ETF price")

		data, err := c.fetchPrice(ctx, inst.Symbol)
		if err != nil {
			log.Error().Err(err).Str("symbol", inst.Symbol).Msg("ETF fetch failed, skipping")
			continue
		}

		quotes = append(quotes, models.Quote{
			Symbol:    inst.Display,
			Name:      inst.Name,
			Value:     fmt.Sprintf("$%.2f", data.Price),
			RawPrice:  data.Price,
			Change:    FormatChange(data.ChangePct),
			ChangePct: data.ChangePct,
			Up:        data.Up,
		})
	}

	return quotes
}

// UraniumSpot returns a static uranium spot placeholder. Yahoo's uranium
// futures coverage is unreliable; a dedicated spot source (Numerco,
// Cameco) would replace this.
func UraniumSpot() models.Quote {
	return models.Quote{
		Symbol:    "Uranium",
		Name:      "Uranium U3O8",
		Value:     "$95/lb",
		RawPrice:  95.0,
		Change:    "+0.0%",
		ChangePct: 0.0,
		Up:        true,
	}
}

// Run fetches all prices and writes the snapshot under the date key and
// the "latest" alias. Persistence failures are logged and swallowed.
func (c *Collector) Run(ctx context.Context) error {
	log := logger.Get()
	today := c.today()

	log.Info().Msg("Fetching commodity prices...")
	commodities := c.FetchAllPrices(ctx)

	log.Info().Msg("Fetching ETF prices...")
	etfs := c.FetchETFPrices(ctx)

	logQuotes(log, "commodity", commodities)
	logQuotes(log, "etf", etfs)

	doc := &models.PriceSnapshot{
		Date:        today,
		Commodities: commodities,
		ETFs:        etfs,
		Note:        snapshotNote,
	}

	for _, docID := range []string{today, docstore.LatestDocID} {
		if err := c.store.Put(ctx, docstore.CollectionPrices, docID, doc); err != nil {
			log.Error().Err(err).Str("doc_id", docID).Msg("Failed to save price snapshot")
		} else {
			log.Info().Str("doc_id", docID).Msg("Saved price snapshot")
		}
	}

	return nil
}

// logQuotes prints the run summary table, one line per quote.
func logQuotes(log *zerolog.Logger, kind string, quotes []models.Quote) {
	for _, q := range quotes {
		arrow := "▲"
		if !q.Up {
			arrow = "▼"
		}
		log.Info().
			Str("kind", kind).
			Str("symbol", q.Symbol).
			Str("value", q.Value).
			Str("change", arrow+" "+q.Change).
			Msg("Quote")
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
