// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"visa-platform/internal/ads/library"
	"visa-platform/internal/ads/templates"
	"visa-platform/internal/common/errors"
	"visa-platform/internal/common/logger"
	"visa-platform/internal/common/metrics"
	"visa-platform/internal/common/observability"
	"visa-platform/internal/visa/application"
	"visa-platform/internal/visa/countries"
	"visa-platform/internal/visa/lookup"
	"visa-platform/internal/visa/photos"
	"visa-platform/internal/visa/pricing"
	"visa-platform/internal/visa/wizard"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OrderLookup resolves order identifiers to summaries. Satisfied by
// lookup.Adapter.
type OrderLookup interface {
	Lookup(ctx context.Context, p lookup.Params) (*application.Summary, error)
}

// Handler bundles the service dependencies for the HTTP API.
type Handler struct {
	applications application.Creator
	mailer       *application.Mailer
	orders       OrderLookup
	resolver     *countries.Resolver
	engine       *pricing.Engine
	ads          *templates.Selector
	library      *library.Store
	photos       photos.Sink
	alerter      *application.Alerter
	wizards      *wizard.Manager
	obs          *observability.Observability
	errs         *errors.Handler
	logger       logger.Logger
}

// WithObservability attaches OpenTelemetry request metrics.
func (h *Handler) WithObservability(obs *observability.Observability) *Handler {
	h.obs = obs
	return h
}

// WithAlerter attaches the urgent-order ops alerter.
func (h *Handler) WithAlerter(alerter *application.Alerter) *Handler {
	h.alerter = alerter
	return h
}

// WithWizards attaches the session-scoped application wizard manager.
func (h *Handler) WithWizards(wizards *wizard.Manager) *Handler {
	h.wizards = wizards
	return h
}

func NewHandler(
	applications application.Creator,
	mailer *application.Mailer,
	orders OrderLookup,
	resolver *countries.Resolver,
	engine *pricing.Engine,
	ads *templates.Selector,
	lib *library.Store,
	photoSink photos.Sink,
	log logger.Logger,
) *Handler {
	serverLog := log.WithFields(map[string]interface{}{"component": "http-server"})
	return &Handler{
		applications: applications,
		mailer:       mailer,
		orders:       orders,
		resolver:     resolver,
		engine:       engine,
		ads:          ads,
		library:      lib,
		photos:       photoSink,
		errs:         errors.NewHandler(serverLog),
		logger:       serverLog,
	}
}

// SetupRouter configures all API routes.
func SetupRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(h.metricsMiddleware)

	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/applications", h.CreateApplication).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/orders", h.LookupOrder).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/visa-check", h.CheckVisaRequirement).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/apply/params", h.ApplyParameters).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/pricing/speeds", h.ListSpeeds).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/pricing/quote", h.PriceQuote).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/upload", h.UploadPhoto).Methods(http.MethodPost, http.MethodOptions)

	api.HandleFunc("/wizard", h.StartWizard).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/wizard/{id}", h.WizardState).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/wizard/{id}/trip", h.SetWizardTrip).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/wizard/{id}/applicants/{index}", h.SetWizardApplicant).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/wizard/{id}/contact", h.SetWizardContact).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/wizard/{id}/consents", h.SetWizardConsents).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/wizard/{id}/photos", h.AttachWizardPhoto).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/wizard/{id}/submit", h.SubmitWizard).Methods(http.MethodPost, http.MethodOptions)

	api.HandleFunc("/ads/templates", h.GenerateAdCopy).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/ads/validate", h.ValidateAdCopy).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/ads/library", h.ListAssets).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/ads/drafts", h.ListDrafts).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/ads/drafts", h.CreateDraft).Methods(http.MethodPost)
	api.HandleFunc("/ads/drafts", h.DeleteDrafts).Methods(http.MethodDelete)
	api.HandleFunc("/ads/drafts/{id}", h.GetDraft).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/ads/drafts/{id}", h.UpdateDraft).Methods(http.MethodPut)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		elapsed := time.Since(start)
		metrics.RequestDuration.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())
		if h.obs != nil {
			h.obs.RecordRequest(r.Context(), route, r.Method)
			h.obs.RecordRequestDuration(r.Context(), elapsed, route)
		}
	})
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
