package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/minshik/forensiq/internal/contracts"
	"github.com/minshik/forensiq/internal/pipeline"
	"github.com/minshik/forensiq/internal/store"
	"github.com/minshik/forensiq/pkg/logger"
)

// FraudHandler handles fraud scoring endpoints
type FraudHandler struct {
	pipeline *pipeline.Pipeline
	history  *store.FraudHistoryRepository
	logger   *logger.Logger
}

// NewFraudHandler creates a new fraud handler. history may be nil when no
// database is configured; the history endpoint then reports unavailable.
func NewFraudHandler(p *pipeline.Pipeline, history *store.FraudHistoryRepository, log *logger.Logger) *FraudHandler {
	return &FraudHandler{
		pipeline: p,
		history:  history,
		logger:   log,
	}
}

// GetFraudScore computes the composite fraud score for a ticker
// GET /api/fraud/{ticker}?force_refresh=false
func (h *FraudHandler) GetFraudScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ticker := mux.Vars(r)["ticker"]

	forceRefresh, _ := strconv.ParseBool(r.URL.Query().Get("force_refresh"))

	response, err := h.pipeline.Fraud(ctx, ticker, forceRefresh)
	if err != nil {
		if errors.Is(err, contracts.ErrNoStatements) {
			respondError(w, http.StatusNotFound, "No financial statements available for "+strings.ToUpper(ticker))
			return
		}
		var alignErr *contracts.AlignmentError
		if errors.As(err, &alignErr) {
			respondError(w, http.StatusUnprocessableEntity, alignErr.Error())
			return
		}
		h.logger.WithError(err).WithField("ticker", ticker).Error("Failed to compute fraud score")
		respondError(w, http.StatusBadGateway, "Failed to compute fraud score")
		return
	}

	respondJSON(w, http.StatusOK, response)
}

// GetHistory returns persisted fraud-score snapshots, newest first
// GET /api/fraud/{ticker}/history?limit=30
func (h *FraudHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ticker := strings.ToUpper(mux.Vars(r)["ticker"])

	if h.history == nil {
		respondError(w, http.StatusServiceUnavailable, "Score history requires a database")
		return
	}

	limit := 30
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			respondError(w, http.StatusBadRequest, "Invalid limit (valid: 1-500)")
			return
		}
		limit = parsed
	}

	snapshots, err := h.history.History(ctx, ticker, limit)
	if err != nil {
		h.logger.WithError(err).WithField("ticker", ticker).Error("Failed to load fraud history")
		respondError(w, http.StatusInternalServerError, "Failed to load fraud history")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ticker":  ticker,
		"history": snapshots,
	})
}
