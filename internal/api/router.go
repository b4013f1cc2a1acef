package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/minshik/forensiq/internal/api/handlers"
	"github.com/minshik/forensiq/pkg/logger"
)

// RouterConfig carries the handlers the router wires up
type RouterConfig struct {
	Metrics *handlers.MetricsHandler
	Fraud   *handlers.FraudHandler
	Company *handlers.CompanyHandler

	// MetricsEndpoint exposes Prometheus metrics on /metrics when true
	MetricsEndpoint bool
}

// NewRouter creates and configures the HTTP router
func NewRouter(rc RouterConfig, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	if rc.MetricsEndpoint {
		r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}

	// API v1
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/metrics/{ticker}", rc.Metrics.GetMetrics).Methods("GET")
	api.HandleFunc("/fraud/{ticker}", rc.Fraud.GetFraudScore).Methods("GET")
	api.HandleFunc("/fraud/{ticker}/history", rc.Fraud.GetHistory).Methods("GET")
	api.HandleFunc("/company/summary", rc.Company.GetSummary).Methods("GET")
	api.HandleFunc("/search", rc.Company.Search).Methods("GET")

	// Apply middleware
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(instrumentMiddleware())

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "forensiq-api",
	})
}
