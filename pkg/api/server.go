// pkg/api/server.go exposes the monitor's query and
// administrative surface over HTTP.

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/voltradar/voltradar/pkg/httpx"
	"github.com/voltradar/voltradar/pkg/logger"
	"github.com/voltradar/voltradar/pkg/models"
)

const shutdownTimeout = 5 * time.Second

// Server serves the REST, websocket and metrics endpoints.
type Server struct {
	monitor    Monitor
	router     *mux.Router
	httpServer *http.Server
	log        zerolog.Logger
}

func NewServer(monitor Monitor) *Server {
	s := &Server{
		monitor: monitor,
		router:  mux.NewRouter(),
		log:     logger.WithComponent("api"),
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(httpx.CommonMiddleware)

	s.router.HandleFunc("/api/status", s.getSystemStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/api/vehicles", s.getVehicles).Methods(http.MethodGet)
	s.router.HandleFunc("/api/vehicles/{id}/health", s.getCurrentHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/vehicles/{id}/history", s.getHistory).Methods(http.MethodGet)
	s.router.HandleFunc("/api/vehicles/{id}/history", s.clearHistory).Methods(http.MethodDelete)
	s.router.HandleFunc("/api/vehicles/{id}/analytics", s.getAnalytics).Methods(http.MethodGet)

	s.router.HandleFunc("/api/alerts", s.getAlerts).Methods(http.MethodGet)
	s.router.HandleFunc("/api/alerts", s.clearAlerts).Methods(http.MethodDelete)
	s.router.HandleFunc("/api/alerts/unread-count", s.getUnreadCount).Methods(http.MethodGet)
	s.router.HandleFunc("/api/alerts/read-all", s.markAllRead).Methods(http.MethodPost)
	s.router.HandleFunc("/api/alerts/{id}/read", s.markRead).Methods(http.MethodPost)

	s.router.HandleFunc("/api/history", s.clearAllHistory).Methods(http.MethodDelete)
	s.router.HandleFunc("/api/history/reset", s.resetAnalyticsWindow).Methods(http.MethodPost)

	s.router.HandleFunc("/api/stream/vehicles/{id}", s.streamHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/stream/alerts", s.streamAlerts).Methods(http.MethodGet)

	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// Start runs the HTTP server on addr until it fails or Stop is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info().Str("addr", addr).Msg("api server listening")

	return s.httpServer.ListenAndServe()
}

// Stop shuts the HTTP server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) getSystemStatus(w http.ResponseWriter, _ *http.Request) {
	active := make(map[string]struct{})

	for _, alert := range s.monitor.Alerts("") {
		if !alert.IsRead && alert.Severity.AtLeast(models.SeverityCritical) {
			active[alert.VehicleID] = struct{}{}
		}
	}

	status := SystemStatus{
		TotalVehicles:       len(s.monitor.Vehicles()),
		ActiveAlertVehicles: len(active),
		UnreadAlerts:        s.monitor.UnreadCount(""),
		LastUpdate:          time.Now(),
	}

	s.writeJSON(w, status)
}

func (s *Server) getVehicles(w http.ResponseWriter, _ *http.Request) {
	vehicles := s.monitor.Vehicles()
	if vehicles == nil {
		vehicles = []string{}
	}

	s.writeJSON(w, vehicles)
}

func (s *Server) getCurrentHealth(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["id"]

	health, ok := s.monitor.CurrentHealth(vehicleID)
	if !ok {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	s.writeJSON(w, health)
}

func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["id"]

	limit := 0

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}

		limit = parsed
	}

	s.writeJSON(w, s.monitor.History(vehicleID, limit))
}

func (s *Server) clearHistory(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["id"]

	s.monitor.ClearHistory(vehicleID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getAnalytics(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["id"]

	var period time.Duration

	if raw := r.URL.Query().Get("period"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid period", http.StatusBadRequest)
			return
		}

		period = parsed
	}

	s.writeJSON(w, s.monitor.Analytics(vehicleID, period))
}

func (s *Server) getAlerts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.monitor.Alerts(r.URL.Query().Get("vehicle_id")))
}

func (s *Server) clearAlerts(w http.ResponseWriter, r *http.Request) {
	s.monitor.ClearAlerts(r.URL.Query().Get("vehicle_id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getUnreadCount(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.URL.Query().Get("vehicle_id")

	s.writeJSON(w, UnreadCountResponse{
		VehicleID: vehicleID,
		Count:     s.monitor.UnreadCount(vehicleID),
	})
}

func (s *Server) markRead(w http.ResponseWriter, r *http.Request) {
	s.monitor.MarkRead(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) markAllRead(w http.ResponseWriter, r *http.Request) {
	s.monitor.MarkAllRead(r.URL.Query().Get("vehicle_id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearAllHistory(w http.ResponseWriter, _ *http.Request) {
	s.monitor.ClearAllHistory()
	w.WriteHeader(http.StatusNoContent)
}

// resetAnalyticsWindow prunes every vehicle's history to the given keep
// duration; keep=0 (or absent) clears everything.
func (s *Server) resetAnalyticsWindow(w http.ResponseWriter, r *http.Request) {
	var keep time.Duration

	if raw := r.URL.Query().Get("keep"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid keep duration", http.StatusBadRequest)
			return
		}

		keep = parsed
	}

	s.monitor.ResetAnalyticsWindow(keep)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
