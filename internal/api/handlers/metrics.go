package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/minshik/forensiq/internal/contracts"
	"github.com/minshik/forensiq/internal/pipeline"
	"github.com/minshik/forensiq/pkg/logger"
)

// MetricsHandler handles metric bundle endpoints
type MetricsHandler struct {
	pipeline *pipeline.Pipeline
	logger   *logger.Logger
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(p *pipeline.Pipeline, log *logger.Logger) *MetricsHandler {
	return &MetricsHandler{
		pipeline: p,
		logger:   log,
	}
}

// GetMetrics computes the metric bundle for a ticker
// GET /api/metrics/{ticker}?families=core,beneish&precision=4&force_refresh=false
func (h *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ticker := mux.Vars(r)["ticker"]

	families, err := ParseFamilies(r.URL.Query().Get("families"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	precision := 0
	if raw := r.URL.Query().Get("precision"); raw != "" {
		precision, err = strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid precision (expected integer)")
			return
		}
		switch precision {
		case 2, 4, 6, 8:
		default:
			respondError(w, http.StatusBadRequest, "Invalid precision (valid: 2, 4, 6, 8)")
			return
		}
	}

	forceRefresh, _ := strconv.ParseBool(r.URL.Query().Get("force_refresh"))

	response, err := h.pipeline.Metrics(ctx, ticker, families, precision, forceRefresh)
	if err != nil {
		if errors.Is(err, contracts.ErrNoStatements) {
			respondError(w, http.StatusNotFound, "No financial statements available for "+strings.ToUpper(ticker))
			return
		}
		h.logger.WithError(err).WithField("ticker", ticker).Error("Failed to compute metrics")
		respondError(w, http.StatusBadGateway, "Failed to compute metrics")
		return
	}

	respondJSON(w, http.StatusOK, response)
}

// ParseFamilies parses a comma-separated metric family list. An empty
// input means all families. Shared with the CLI compute command.
func ParseFamilies(raw string) ([]contracts.MetricFamily, error) {
	if raw == "" {
		return nil, nil
	}

	valid := make(map[contracts.MetricFamily]bool)
	for _, f := range contracts.AllFamilies() {
		valid[f] = true
	}

	var families []contracts.MetricFamily
	for _, part := range strings.Split(raw, ",") {
		fam := contracts.MetricFamily(strings.ToLower(strings.TrimSpace(part)))
		if fam == "" {
			continue
		}
		if !valid[fam] {
			return nil, errors.New("unknown metric family: " + string(fam))
		}
		families = append(families, fam)
	}
	return families, nil
}
