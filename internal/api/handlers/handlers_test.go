package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minshik/forensiq/internal/contracts"
	"github.com/minshik/forensiq/internal/external/yahoo"
	"github.com/minshik/forensiq/internal/refdata"
	"github.com/minshik/forensiq/pkg/config"
	"github.com/minshik/forensiq/pkg/logger"
)

func TestParseFamilies(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []contracts.MetricFamily
		wantErr string
	}{
		{name: "empty means all", input: "", want: nil},
		{name: "single", input: "beneish", want: []contracts.MetricFamily{contracts.FamilyBeneish}},
		{
			name:  "multiple with spaces and case",
			input: " Core, ALTMAN ,capm",
			want: []contracts.MetricFamily{
				contracts.FamilyCore, contracts.FamilyAltman, contracts.FamilyCAPM,
			},
		},
		{name: "trailing comma ignored", input: "dupont,", want: []contracts.MetricFamily{contracts.FamilyDuPont}},
		{name: "unknown", input: "core,sentiment", wantErr: "unknown metric family: sentiment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFamilies(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newCompanyHandler(providerURL string) *CompanyHandler {
	log := logger.NewNop()
	provider := yahoo.New(log, config.ProviderConfig{
		BaseURL:    providerURL,
		Benchmark:  "SPY",
		Timeout:    5 * time.Second,
		RatePerSec: 1000,
		RateBurst:  1000,
	})
	return NewCompanyHandler(provider, log)
}

func TestCompanyHandler_GetSummary(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
		  "quoteSummary": {
		    "result": [{
		      "price": {"longName": "Apple Inc.", "exchangeName": "NasdaqGS", "currency": "USD"},
		      "assetProfile": {"sector": "Technology", "industry": "Consumer Electronics"}
		    }],
		    "error": null
		  }
		}`)
	}))
	defer upstream.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/company/summary?ticker=aapl", nil)
	rec := httptest.NewRecorder()
	newCompanyHandler(upstream.URL).GetSummary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var profile yahoo.CompanyProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "AAPL", profile.Ticker)
	assert.Equal(t, "Apple Inc.", profile.Name)
	assert.Equal(t, "Technology", profile.Sector)
}

func TestCompanyHandler_GetSummary_FallsBackToReferenceTable(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	defer upstream.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/company/summary?ticker=MSFT", nil)
	rec := httptest.NewRecorder()
	newCompanyHandler(upstream.URL).GetSummary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var profile yahoo.CompanyProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "MSFT", profile.Ticker)
	assert.Equal(t, "Microsoft Corporation", profile.Name)
}

func TestCompanyHandler_GetSummary_UnknownTicker(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	defer upstream.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/company/summary?ticker=ZZZZ", nil)
	rec := httptest.NewRecorder()
	newCompanyHandler(upstream.URL).GetSummary(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompanyHandler_GetSummary_MissingTicker(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/company/summary", nil)
	rec := httptest.NewRecorder()
	newCompanyHandler("http://unused").GetSummary(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompanyHandler_Search(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/search?query=apple", nil)
	rec := httptest.NewRecorder()
	newCompanyHandler("http://unused").Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var results []refdata.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.NotEmpty(t, results)
	assert.Equal(t, "AAPL", results[0].Symbol)
}

func TestCompanyHandler_Search_MissingQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()
	newCompanyHandler("http://unused").Search(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
