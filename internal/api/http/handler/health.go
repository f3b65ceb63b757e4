package handler

import (
	"context"
	"net/http"

	"github.com/njaumatilda/PRODIGY-BD-03/internal/logger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports service liveness and store reachability.
type Health struct {
	store  Pinger
	logger *logger.Logger
}

func NewHealth(store Pinger, logger *logger.Logger) *Health {
	return &Health{
		store:  store,
		logger: logger,
	}
}

func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Error("Health handler: store unreachable",
			"error", err.Error())
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Message: "store unreachable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
