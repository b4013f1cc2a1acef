package yahoo

import "encoding/json"

// Wire shapes for the quoteSummary and chart endpoints. Only the fields the
// pipeline reads are declared; everything else is ignored on decode.

// formattedValue is the provider's {"raw": n, "fmt": "..."} number wrapper
type formattedValue struct {
	Raw *float64 `json:"raw"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *apiError            `json:"error"`
	} `json:"quoteSummary"`
}

type quoteSummaryResult struct {
	Price                   *priceModule        `json:"price"`
	AssetProfile            *assetProfileModule `json:"assetProfile"`
	DefaultKeyStatistics    *keyStatsModule     `json:"defaultKeyStatistics"`
	IncomeStatementHistory  *statementHistory   `json:"incomeStatementHistory"`
	IncomeQuarterly         *statementHistory   `json:"incomeStatementHistoryQuarterly"`
	BalanceSheetHistory     *balanceHistory     `json:"balanceSheetHistory"`
	BalanceQuarterly        *balanceHistory     `json:"balanceSheetHistoryQuarterly"`
	CashflowStatementHistory *cashflowHistory   `json:"cashflowStatementHistory"`
	CashflowQuarterly       *cashflowHistory    `json:"cashflowStatementHistoryQuarterly"`
}

type priceModule struct {
	ShortName          string          `json:"shortName"`
	LongName           string          `json:"longName"`
	Currency           string          `json:"currency"`
	RegularMarketPrice *formattedValue `json:"regularMarketPrice"`
	MarketCap          *formattedValue `json:"marketCap"`
	ExchangeName       string          `json:"exchangeName"`
}

type assetProfileModule struct {
	Sector   string `json:"sector"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Country  string `json:"country"`
}

type keyStatsModule struct {
	SharesOutstanding *formattedValue `json:"sharesOutstanding"`
}

// rawStatementRecord is one reporting period as a loose key/value map so the
// normalizer's alias table, not this package, decides what each field means
type rawStatementRecord map[string]json.RawMessage

type statementHistory struct {
	Statements []rawStatementRecord `json:"incomeStatementHistory"`
}

type balanceHistory struct {
	Statements []rawStatementRecord `json:"balanceSheetStatements"`
}

type cashflowHistory struct {
	Statements []rawStatementRecord `json:"cashflowStatements"`
}

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Currency           string  `json:"currency"`
		RegularMarketPrice float64 `json:"regularMarketPrice"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		AdjClose []struct {
			AdjClose []*float64 `json:"adjclose"`
		} `json:"adjclose"`
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
