package normalize

import "github.com/minshik/forensiq/internal/contracts"

// MappingVersion identifies the provider field-mapping table. Bump it when
// entries change so normalized output stays reproducible per version.
const MappingVersion = "v1"

// fieldMappings maps provider-shaped field names onto the canonical schema.
// Unmapped fields are dropped, never guessed.
var fieldMappings = map[string]string{
	// Income statement
	"TotalRevenue":      contracts.FieldRevenue,
	"Total Revenue":     contracts.FieldRevenue,
	"Revenue":           contracts.FieldRevenue,
	"Operating Revenue": contracts.FieldRevenue,
	"Net Sales":         contracts.FieldRevenue,
	"Sales":             contracts.FieldRevenue,

	"CostOfRevenue":      contracts.FieldCostOfGoodsSold,
	"Cost Of Revenue":    contracts.FieldCostOfGoodsSold,
	"Cost of Goods Sold": contracts.FieldCostOfGoodsSold,
	"COGS":               contracts.FieldCostOfGoodsSold,

	"SellingGeneralAdministrative":       contracts.FieldSGAExpense,
	"Selling General Administrative":     contracts.FieldSGAExpense,
	"Selling General And Administration": contracts.FieldSGAExpense,
	"SG&A":                               contracts.FieldSGAExpense,

	"OperatingIncome":                      contracts.FieldEBIT,
	"Operating Income":                     contracts.FieldEBIT,
	"EBIT":                                 contracts.FieldEBIT,
	"Earnings Before Interest And Taxes":   contracts.FieldEBIT,

	"PretaxIncome":        contracts.FieldPretaxIncome,
	"IncomeBeforeTax":     contracts.FieldPretaxIncome,
	"Pretax Income":       contracts.FieldPretaxIncome,
	"Income Before Tax":   contracts.FieldPretaxIncome,
	"Earnings Before Tax": contracts.FieldPretaxIncome,

	"NetIncome":                    contracts.FieldNetIncome,
	"Net Income":                   contracts.FieldNetIncome,
	"Net Earnings":                 contracts.FieldNetIncome,
	"Net Income Common Stockholders": contracts.FieldNetIncome,

	"InterestExpense":  contracts.FieldInterestExpense,
	"Interest Expense": contracts.FieldInterestExpense,
	"Interest Paid":    contracts.FieldInterestExpense,

	// Balance sheet
	"TotalAssets":  contracts.FieldTotalAssets,
	"Total Assets": contracts.FieldTotalAssets,

	"TotalLiabilities": contracts.FieldTotalLiabilities,
	"TotalLiab":        contracts.FieldTotalLiabilities,
	"Total Liabilities": contracts.FieldTotalLiabilities,
	"Total Liab":        contracts.FieldTotalLiabilities,
	"Total Liabilities Net Minority Interest": contracts.FieldTotalLiabilities,

	"TotalStockholderEquity":  contracts.FieldTotalEquity,
	"Total Stockholder Equity": contracts.FieldTotalEquity,
	"Total Equity":             contracts.FieldTotalEquity,
	"Stockholders Equity":      contracts.FieldTotalEquity,

	"TotalCurrentAssets":   contracts.FieldCurrentAssets,
	"Total Current Assets": contracts.FieldCurrentAssets,
	"Current Assets":       contracts.FieldCurrentAssets,

	"TotalCurrentLiabilities":   contracts.FieldCurrentLiabilities,
	"Total Current Liabilities": contracts.FieldCurrentLiabilities,
	"Current Liabilities":       contracts.FieldCurrentLiabilities,

	"Inventory": contracts.FieldInventory,

	"NetPPE":                       contracts.FieldPPE,
	"PropertyPlantEquipment":       contracts.FieldPPE,
	"Net PPE":                      contracts.FieldPPE,
	"Property Plant Equipment":     contracts.FieldPPE,
	"Net Property Plant Equipment": contracts.FieldPPE,

	"MarketableSecurities":                       contracts.FieldMarketableSecurities,
	"ShortTermInvestments":                       contracts.FieldMarketableSecurities,
	"Other Short Term Investments":               contracts.FieldMarketableSecurities,
	"Available For Sale Securities":              contracts.FieldMarketableSecurities,
	"Investments And Advances":                   contracts.FieldMarketableSecurities,

	"RetainedEarnings":  contracts.FieldRetainedEarnings,
	"Retained Earnings": contracts.FieldRetainedEarnings,

	"NetReceivables":      contracts.FieldReceivables,
	"Net Receivables":     contracts.FieldReceivables,
	"Accounts Receivable": contracts.FieldReceivables,

	"LongTermDebt":   contracts.FieldLongTermDebt,
	"Long Term Debt": contracts.FieldLongTermDebt,

	"SharesOutstanding":      contracts.FieldSharesOutstanding,
	"Ordinary Shares Number": contracts.FieldSharesOutstanding,
	"Share Issued":           contracts.FieldSharesOutstanding,

	// Cash flow
	"TotalCashFromOperatingActivities":       contracts.FieldOperatingCashFlow,
	"Total Cash From Operating Activities":   contracts.FieldOperatingCashFlow,
	"Operating Cash Flow":                    contracts.FieldOperatingCashFlow,
	"Cash From Operations":                   contracts.FieldOperatingCashFlow,

	"Depreciation":                  contracts.FieldDepreciation,
	"Depreciation And Amortization": contracts.FieldDepreciation,

	"CashDividendsPaid":   contracts.FieldDividendsPaid,
	"DividendsPaid":       contracts.FieldDividendsPaid,
	"Cash Dividends Paid": contracts.FieldDividendsPaid,
	"Dividends Paid":      contracts.FieldDividendsPaid,
}
