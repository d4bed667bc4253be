package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dayflower/todo-star-slack-bot/clients"
	"github.com/dayflower/todo-star-slack-bot/core/log"
)

type HealthHandler struct {
	source clients.EventSource
}

func NewHealthHandler(source clients.EventSource) *HealthHandler {
	return &HealthHandler{source: source}
}

type healthResponse struct {
	Status       string `json:"status"`
	Connected    bool   `json:"connected"`
	ActiveUserID string `json:"active_user_id,omitempty"`
}

// HandleHealth reports 200 while connected to Slack and 503 otherwise
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{
		Status:       "ok",
		Connected:    h.source.IsConnected(),
		ActiveUserID: h.source.ActiveUserID(),
	}

	status := http.StatusOK
	if !response.Connected {
		response.Status = "disconnected"
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("❌ Failed to write health response: %v", err)
	}
}

func (h *HealthHandler) SetupEndpoints(router *mux.Router) {
	log.Info("🚀 Registering health and metrics endpoints")

	router.HandleFunc("/healthz", h.HandleHealth).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	log.Info("✅ GET /healthz and GET /metrics endpoints registered")
}
