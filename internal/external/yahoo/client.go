package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/minshik/forensiq/internal/contracts"
	"github.com/minshik/forensiq/internal/normalize"
	"github.com/minshik/forensiq/pkg/config"
	"github.com/minshik/forensiq/pkg/httputil"
	"github.com/minshik/forensiq/pkg/logger"
)

// SourceName labels this provider in audit metadata
const SourceName = "yahoo"

// priceHistoryRange is the chart window fetched for CAPM. Five years of
// monthly closes leaves ample overlap above the 12-return minimum.
const (
	priceHistoryRange    = "5y"
	priceHistoryInterval = "1mo"
)

// Client fetches statements, quotes and price history from the Yahoo
// Finance JSON endpoints.
type Client struct {
	http      *httputil.Client
	logger    *logger.Logger
	baseURL   string
	benchmark string
}

// CompanyProfile is the descriptive company record for the summary endpoint
type CompanyProfile struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"company_name"`
	Exchange string `json:"exchange"`
	Sector   string `json:"sector"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
}

// New creates a provider client from config
func New(log *logger.Logger, cfg config.ProviderConfig) *Client {
	return &Client{
		http:      httputil.New(log, cfg.Timeout).WithRateLimit(cfg.RatePerSec, cfg.RateBurst),
		logger:    log,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		benchmark: cfg.Benchmark,
	}
}

// FetchStatements returns the annual and quarterly reporting periods for a
// ticker in provider-shaped form, ready for the normalizer.
func (c *Client) FetchStatements(ctx context.Context, ticker string) ([]normalize.RawStatement, error) {
	modules := []string{
		"incomeStatementHistory", "incomeStatementHistoryQuarterly",
		"balanceSheetHistory", "balanceSheetHistoryQuarterly",
		"cashflowStatementHistory", "cashflowStatementHistoryQuarterly",
	}

	result, err := c.quoteSummary(ctx, ticker, modules)
	if err != nil {
		return nil, err
	}

	// Periods arrive split by statement type; merge the three statements of
	// each period-end date into one record per period.
	annual := newPeriodMerger(contracts.PeriodAnnual)
	quarterly := newPeriodMerger(contracts.PeriodQuarterly)

	if result.IncomeStatementHistory != nil {
		annual.addAll(result.IncomeStatementHistory.Statements)
	}
	if result.BalanceSheetHistory != nil {
		annual.addAll(result.BalanceSheetHistory.Statements)
	}
	if result.CashflowStatementHistory != nil {
		annual.addAll(result.CashflowStatementHistory.Statements)
	}
	if result.IncomeQuarterly != nil {
		quarterly.addAll(result.IncomeQuarterly.Statements)
	}
	if result.BalanceQuarterly != nil {
		quarterly.addAll(result.BalanceQuarterly.Statements)
	}
	if result.CashflowQuarterly != nil {
		quarterly.addAll(result.CashflowQuarterly.Statements)
	}

	records := append(annual.records(), quarterly.records()...)
	if len(records) == 0 {
		return nil, contracts.ErrNoStatements
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker":  ticker,
		"periods": len(records),
	}).Debug("Statements fetched")

	return records, nil
}

// FetchMarketSnapshot returns the quote, price history and benchmark history
// for a ticker. The three requests run concurrently.
func (c *Client) FetchMarketSnapshot(ctx context.Context, ticker string) (*contracts.MarketSnapshot, error) {
	snapshot := &contracts.MarketSnapshot{
		Ticker:    strings.ToUpper(ticker),
		Timestamp: time.Now().UTC(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := c.quoteSummary(gctx, ticker, []string{"price", "defaultKeyStatistics"})
		if err != nil {
			return fmt.Errorf("quote for %s: %w", ticker, err)
		}
		if result.Price != nil {
			snapshot.Currency = result.Price.Currency
			if result.Price.RegularMarketPrice != nil {
				snapshot.LastPrice = result.Price.RegularMarketPrice.Raw
			}
			if result.Price.MarketCap != nil {
				snapshot.MarketCap = result.Price.MarketCap.Raw
			}
		}
		if result.DefaultKeyStatistics != nil && result.DefaultKeyStatistics.SharesOutstanding != nil {
			snapshot.SharesOutstanding = result.DefaultKeyStatistics.SharesOutstanding.Raw
		}
		return nil
	})

	g.Go(func() error {
		series, err := c.FetchPriceHistory(gctx, ticker)
		if err != nil {
			return fmt.Errorf("price history for %s: %w", ticker, err)
		}
		snapshot.PriceSeries = series
		return nil
	})

	g.Go(func() error {
		series, err := c.FetchPriceHistory(gctx, c.benchmark)
		if err != nil {
			// CAPM degrades to null leaves without a benchmark; the rest of
			// the bundle must still compute
			c.logger.WithError(err).WithField("benchmark", c.benchmark).
				Warn("Benchmark history unavailable")
			return nil
		}
		snapshot.BenchmarkPriceSeries = series
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// FetchPriceHistory returns monthly adjusted closes for the CAPM window
func (c *Client) FetchPriceHistory(ctx context.Context, ticker string) ([]contracts.PricePoint, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		c.baseURL, url.PathEscape(strings.ToUpper(ticker)), priceHistoryInterval, priceHistoryRange)

	var decoded chartResponse
	if err := c.getJSON(ctx, endpoint, &decoded); err != nil {
		return nil, err
	}
	if decoded.Chart.Error != nil {
		return nil, fmt.Errorf("chart request failed: %s", decoded.Chart.Error.Description)
	}
	if len(decoded.Chart.Result) == 0 {
		return nil, fmt.Errorf("chart response empty for %s", ticker)
	}

	result := decoded.Chart.Result[0]
	closes := selectCloses(result)

	points := make([]contracts.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		points = append(points, contracts.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Price: *closes[i],
		})
	}
	return points, nil
}

// FetchCompanyProfile returns the descriptive company record
func (c *Client) FetchCompanyProfile(ctx context.Context, ticker string) (*CompanyProfile, error) {
	result, err := c.quoteSummary(ctx, ticker, []string{"price", "assetProfile"})
	if err != nil {
		return nil, err
	}

	profile := &CompanyProfile{Ticker: strings.ToUpper(ticker)}
	if result.Price != nil {
		profile.Name = result.Price.LongName
		if profile.Name == "" {
			profile.Name = result.Price.ShortName
		}
		profile.Exchange = result.Price.ExchangeName
		profile.Currency = result.Price.Currency
	}
	if result.AssetProfile != nil {
		profile.Sector = result.AssetProfile.Sector
		profile.Industry = result.AssetProfile.Industry
		profile.Website = result.AssetProfile.Website
		profile.Country = result.AssetProfile.Country
	}
	return profile, nil
}

// quoteSummary calls the v10 quoteSummary endpoint with the given modules
func (c *Client) quoteSummary(ctx context.Context, ticker string, modules []string) (*quoteSummaryResult, error) {
	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		c.baseURL, url.PathEscape(strings.ToUpper(ticker)), strings.Join(modules, ","))

	var decoded quoteSummaryResponse
	if err := c.getJSON(ctx, endpoint, &decoded); err != nil {
		return nil, err
	}
	if decoded.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("quoteSummary request failed: %s", decoded.QuoteSummary.Error.Description)
	}
	if len(decoded.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("quoteSummary response empty for %s", ticker)
	}
	return &decoded.QuoteSummary.Result[0], nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	resp, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}

// selectCloses prefers adjusted closes, falling back to raw closes
func selectCloses(result chartResult) []*float64 {
	if len(result.Indicators.AdjClose) > 0 && len(result.Indicators.AdjClose[0].AdjClose) > 0 {
		return result.Indicators.AdjClose[0].AdjClose
	}
	if len(result.Indicators.Quote) > 0 {
		return result.Indicators.Quote[0].Close
	}
	return nil
}

// periodMerger folds per-statement records sharing an endDate into one
// RawStatement per reporting period
type periodMerger struct {
	periodType contracts.PeriodType
	byDate     map[time.Time]map[string]interface{}
}

func newPeriodMerger(t contracts.PeriodType) *periodMerger {
	return &periodMerger{
		periodType: t,
		byDate:     make(map[time.Time]map[string]interface{}),
	}
}

func (m *periodMerger) addAll(stmts []rawStatementRecord) {
	for _, stmt := range stmts {
		m.add(stmt)
	}
}

func (m *periodMerger) add(stmt rawStatementRecord) {
	end, ok := periodEnd(stmt)
	if !ok {
		return
	}

	fields, exists := m.byDate[end]
	if !exists {
		fields = make(map[string]interface{}, len(stmt))
		m.byDate[end] = fields
	}

	for key, raw := range stmt {
		if key == "endDate" || key == "maxAge" {
			continue
		}
		var fv formattedValue
		if err := json.Unmarshal(raw, &fv); err != nil || fv.Raw == nil {
			continue
		}
		// Provider keys are lowerCamel; the normalizer's alias table is keyed
		// on the UpperCamel spelling
		fields[upperFirst(key)] = *fv.Raw
	}
}

func (m *periodMerger) records() []normalize.RawStatement {
	out := make([]normalize.RawStatement, 0, len(m.byDate))
	for end, fields := range m.byDate {
		out = append(out, normalize.RawStatement{
			PeriodEnd:  end,
			PeriodType: m.periodType,
			Scale:      1,
			Fields:     fields,
		})
	}
	return out
}

func periodEnd(stmt rawStatementRecord) (time.Time, bool) {
	raw, ok := stmt["endDate"]
	if !ok {
		return time.Time{}, false
	}
	var fv formattedValue
	if err := json.Unmarshal(raw, &fv); err != nil || fv.Raw == nil {
		return time.Time{}, false
	}
	return time.Unix(int64(*fv.Raw), 0).UTC(), true
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
