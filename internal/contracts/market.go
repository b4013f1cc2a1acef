package contracts

import "time"

// PricePoint is one observation of a price series
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// MarketSnapshot is the fully materialized market-side input for one ticker.
// The upstream collaborator resolves prices before the engine runs; the
// engine itself never fetches anything.
type MarketSnapshot struct {
	Ticker            string    `json:"ticker"`
	LastPrice         *float64  `json:"last_price"`
	Currency          string    `json:"currency"`
	SharesOutstanding *float64  `json:"shares_outstanding"`
	MarketCap         *float64  `json:"market_cap"`
	Timestamp         time.Time `json:"timestamp"`

	// Monthly close series for the stock and the benchmark, oldest first.
	// Benchmark dates are aligned by the CAPM model on intersection.
	PriceSeries          []PricePoint `json:"price_series"`
	BenchmarkPriceSeries []PricePoint `json:"benchmark_price_series"`
}
