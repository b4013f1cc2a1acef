package refdata

// companies is the built-in reference table of commonly requested tickers.
// It backs the search endpoint so the UI can autocomplete without an
// upstream round trip; anything not listed here can still be computed.
var companies = map[string]Company{
	// Technology
	"AAPL":  {Symbol: "AAPL", Name: "Apple Inc.", Exchange: "NASDAQ", Sector: "Technology"},
	"MSFT":  {Symbol: "MSFT", Name: "Microsoft Corporation", Exchange: "NASDAQ", Sector: "Technology"},
	"GOOGL": {Symbol: "GOOGL", Name: "Alphabet Inc. Class A", Exchange: "NASDAQ", Sector: "Technology"},
	"GOOG":  {Symbol: "GOOG", Name: "Alphabet Inc. Class C", Exchange: "NASDAQ", Sector: "Technology"},
	"META":  {Symbol: "META", Name: "Meta Platforms Inc.", Exchange: "NASDAQ", Sector: "Technology"},
	"NVDA":  {Symbol: "NVDA", Name: "NVIDIA Corporation", Exchange: "NASDAQ", Sector: "Technology"},
	"ADBE":  {Symbol: "ADBE", Name: "Adobe Inc.", Exchange: "NASDAQ", Sector: "Technology"},
	"CRM":   {Symbol: "CRM", Name: "Salesforce Inc.", Exchange: "NYSE", Sector: "Technology"},
	"INTC":  {Symbol: "INTC", Name: "Intel Corporation", Exchange: "NASDAQ", Sector: "Technology"},
	"AMD":   {Symbol: "AMD", Name: "Advanced Micro Devices Inc.", Exchange: "NASDAQ", Sector: "Technology"},
	"ORCL":  {Symbol: "ORCL", Name: "Oracle Corporation", Exchange: "NYSE", Sector: "Technology"},
	"IBM":   {Symbol: "IBM", Name: "International Business Machines Corporation", Exchange: "NYSE", Sector: "Technology"},
	"CSCO":  {Symbol: "CSCO", Name: "Cisco Systems Inc.", Exchange: "NASDAQ", Sector: "Technology"},
	"QCOM":  {Symbol: "QCOM", Name: "QUALCOMM Incorporated", Exchange: "NASDAQ", Sector: "Technology"},
	"AVGO":  {Symbol: "AVGO", Name: "Broadcom Inc.", Exchange: "NASDAQ", Sector: "Technology"},
	"TXN":   {Symbol: "TXN", Name: "Texas Instruments Incorporated", Exchange: "NASDAQ", Sector: "Technology"},
	"MU":    {Symbol: "MU", Name: "Micron Technology Inc.", Exchange: "NASDAQ", Sector: "Technology"},

	// Consumer
	"AMZN": {Symbol: "AMZN", Name: "Amazon.com Inc.", Exchange: "NASDAQ", Sector: "Consumer Discretionary"},
	"TSLA": {Symbol: "TSLA", Name: "Tesla Inc.", Exchange: "NASDAQ", Sector: "Consumer Discretionary"},
	"NFLX": {Symbol: "NFLX", Name: "Netflix Inc.", Exchange: "NASDAQ", Sector: "Communication Services"},
	"LOW":  {Symbol: "LOW", Name: "Lowe's Companies Inc.", Exchange: "NYSE", Sector: "Consumer Discretionary"},
	"TGT":  {Symbol: "TGT", Name: "Target Corporation", Exchange: "NYSE", Sector: "Consumer Discretionary"},
	"COST": {Symbol: "COST", Name: "Costco Wholesale Corporation", Exchange: "NASDAQ", Sector: "Consumer Staples"},

	// Financials
	"JPM":   {Symbol: "JPM", Name: "JPMorgan Chase & Co.", Exchange: "NYSE", Sector: "Financial Services"},
	"BAC":   {Symbol: "BAC", Name: "Bank of America Corporation", Exchange: "NYSE", Sector: "Financial Services"},
	"WFC":   {Symbol: "WFC", Name: "Wells Fargo & Company", Exchange: "NYSE", Sector: "Financial Services"},
	"GS":    {Symbol: "GS", Name: "Goldman Sachs Group Inc.", Exchange: "NYSE", Sector: "Financial Services"},
	"MS":    {Symbol: "MS", Name: "Morgan Stanley", Exchange: "NYSE", Sector: "Financial Services"},
	"C":     {Symbol: "C", Name: "Citigroup Inc.", Exchange: "NYSE", Sector: "Financial Services"},
	"AXP":   {Symbol: "AXP", Name: "American Express Company", Exchange: "NYSE", Sector: "Financial Services"},
	"BRK-B": {Symbol: "BRK-B", Name: "Berkshire Hathaway Inc. Class B", Exchange: "NYSE", Sector: "Financial Services"},
	"BRK-A": {Symbol: "BRK-A", Name: "Berkshire Hathaway Inc. Class A", Exchange: "NYSE", Sector: "Financial Services"},

	// Energy and utilities
	"XOM": {Symbol: "XOM", Name: "Exxon Mobil Corporation", Exchange: "NYSE", Sector: "Energy"},
	"CVX": {Symbol: "CVX", Name: "Chevron Corporation", Exchange: "NYSE", Sector: "Energy"},
	"COP": {Symbol: "COP", Name: "ConocoPhillips", Exchange: "NYSE", Sector: "Energy"},
	"EOG": {Symbol: "EOG", Name: "EOG Resources Inc.", Exchange: "NYSE", Sector: "Energy"},
	"SLB": {Symbol: "SLB", Name: "Schlumberger Limited", Exchange: "NYSE", Sector: "Energy"},
	"NEE": {Symbol: "NEE", Name: "NextEra Energy Inc.", Exchange: "NYSE", Sector: "Utilities"},
	"DUK": {Symbol: "DUK", Name: "Duke Energy Corporation", Exchange: "NYSE", Sector: "Utilities"},
	"SO":  {Symbol: "SO", Name: "The Southern Company", Exchange: "NYSE", Sector: "Utilities"},

	// Industrials and materials
	"BA":  {Symbol: "BA", Name: "The Boeing Company", Exchange: "NYSE", Sector: "Industrials"},
	"CAT": {Symbol: "CAT", Name: "Caterpillar Inc.", Exchange: "NYSE", Sector: "Industrials"},
	"GE":  {Symbol: "GE", Name: "General Electric Company", Exchange: "NYSE", Sector: "Industrials"},
	"HON": {Symbol: "HON", Name: "Honeywell International Inc.", Exchange: "NASDAQ", Sector: "Industrials"},
	"MMM": {Symbol: "MMM", Name: "3M Company", Exchange: "NYSE", Sector: "Industrials"},
	"UPS": {Symbol: "UPS", Name: "United Parcel Service Inc.", Exchange: "NYSE", Sector: "Industrials"},
	"FDX": {Symbol: "FDX", Name: "FedEx Corporation", Exchange: "NYSE", Sector: "Industrials"},

	// Communication services
	"DIS":   {Symbol: "DIS", Name: "The Walt Disney Company", Exchange: "NYSE", Sector: "Communication Services"},
	"CMCSA": {Symbol: "CMCSA", Name: "Comcast Corporation", Exchange: "NASDAQ", Sector: "Communication Services"},
	"VZ":    {Symbol: "VZ", Name: "Verizon Communications Inc.", Exchange: "NYSE", Sector: "Communication Services"},
	"T":     {Symbol: "T", Name: "AT&T Inc.", Exchange: "NYSE", Sector: "Communication Services"},
	"TMUS":  {Symbol: "TMUS", Name: "T-Mobile US Inc.", Exchange: "NASDAQ", Sector: "Communication Services"},

	// Real estate
	"AMT": {Symbol: "AMT", Name: "American Tower Corporation", Exchange: "NYSE", Sector: "Real Estate"},
	"PLD": {Symbol: "PLD", Name: "Prologis Inc.", Exchange: "NYSE", Sector: "Real Estate"},
	"CCI": {Symbol: "CCI", Name: "Crown Castle Inc.", Exchange: "NYSE", Sector: "Real Estate"},

	// ETFs have no income statement; they land in the insufficient tier
	"SPY": {Symbol: "SPY", Name: "SPDR S&P 500 ETF Trust", Exchange: "NYSE", Sector: "ETF"},
	"QQQ": {Symbol: "QQQ", Name: "Invesco QQQ Trust", Exchange: "NASDAQ", Sector: "ETF"},
	"VTI": {Symbol: "VTI", Name: "Vanguard Total Stock Market Index Fund", Exchange: "NYSE", Sector: "ETF"},
	"VOO": {Symbol: "VOO", Name: "Vanguard S&P 500 ETF", Exchange: "NYSE", Sector: "ETF"},
	"IWM": {Symbol: "IWM", Name: "iShares Russell 2000 ETF", Exchange: "NYSE", Sector: "ETF"},
}
