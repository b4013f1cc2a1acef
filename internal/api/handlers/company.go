package handlers

import (
	"net/http"
	"strings"

	"github.com/minshik/forensiq/internal/external/yahoo"
	"github.com/minshik/forensiq/internal/refdata"
	"github.com/minshik/forensiq/pkg/logger"
)

// CompanyHandler handles company reference endpoints
type CompanyHandler struct {
	provider *yahoo.Client
	logger   *logger.Logger
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(provider *yahoo.Client, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{
		provider: provider,
		logger:   log,
	}
}

// GetSummary returns the descriptive company record for a ticker. The
// built-in reference table fills gaps when the provider has no profile.
// GET /api/company/summary?ticker=AAPL
func (h *CompanyHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ticker := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("ticker")))
	if ticker == "" {
		respondError(w, http.StatusBadRequest, "Missing required parameter: ticker")
		return
	}

	profile, err := h.provider.FetchCompanyProfile(ctx, ticker)
	if err != nil {
		h.logger.WithError(err).WithField("ticker", ticker).Warn("Provider profile unavailable")

		if c, ok := refdata.Lookup(ticker); ok {
			respondJSON(w, http.StatusOK, yahoo.CompanyProfile{
				Ticker:   c.Symbol,
				Name:     c.Name,
				Exchange: c.Exchange,
				Sector:   c.Sector,
			})
			return
		}

		respondError(w, http.StatusNotFound, "No company information available for "+ticker)
		return
	}

	// Fall back to the reference table for fields the provider omits
	if c, ok := refdata.Lookup(ticker); ok {
		if profile.Name == "" {
			profile.Name = c.Name
		}
		if profile.Sector == "" {
			profile.Sector = c.Sector
		}
		if profile.Exchange == "" {
			profile.Exchange = c.Exchange
		}
	}

	respondJSON(w, http.StatusOK, profile)
}

// Search matches tickers and company names against the reference table
// GET /api/search?query=apple
func (h *CompanyHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if strings.TrimSpace(query) == "" {
		respondError(w, http.StatusBadRequest, "Missing required parameter: query")
		return
	}

	respondJSON(w, http.StatusOK, refdata.Search(query))
}
