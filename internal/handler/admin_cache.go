package handler

import (
	"net/http"

	"github.com/osse101/BakeWatt_Go/internal/cookbook"
	"github.com/osse101/BakeWatt_Go/internal/logger"
)

// AdminCacheHandler handles admin cache operations
type AdminCacheHandler struct {
	service cookbook.Service
}

// NewAdminCacheHandler creates a new admin cache handler
func NewAdminCacheHandler(service cookbook.Service) *AdminCacheHandler {
	return &AdminCacheHandler{service: service}
}

// ClearCacheResponse reports how many cached templates were dropped
type ClearCacheResponse struct {
	Message string `json:"message"`
	Cleared int    `json:"cleared"`
}

// HandleClearCache drops every cached template; they are reloaded in the background
// @Summary Clear template cache
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ClearCacheResponse
// @Router /admin/cache/clear [post]
func (h *AdminCacheHandler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	cleared := h.service.ClearCache(r.Context())
	logger.FromContext(r.Context()).Info(MsgCacheCleared, "cleared", cleared)
	respondJSON(w, http.StatusOK, ClearCacheResponse{Message: MsgCacheCleared, Cleared: cleared})
}
