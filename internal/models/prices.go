package models

import "time"

// Quote is one display-ready price entry for a commodity or ETF.
type Quote struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Value     string  `json:"value"`
	RawPrice  float64 `json:"rawPrice"`
	Change    string  `json:"change"`
	ChangePct float64 `json:"changePct"`
	Up        bool    `json:"up"`
}

// PriceSnapshot is the aggregated price document written once per run,
// keyed by date and duplicated under "latest".
type PriceSnapshot struct {
	Date        string    `json:"date"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Commodities []Quote   `json:"commodities"`
	ETFs        []Quote   `json:"etfs"`
	Note        string    `json:"note"`
}

func (p *PriceSnapshot) StampWriteTime(t time.Time) { p.UpdatedAt = t }
