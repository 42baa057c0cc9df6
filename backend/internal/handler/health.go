package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/openforum-dev/forumapi/shared/api"
	"github.com/openforum-dev/forumapi/shared/logger"
	"github.com/openforum-dev/forumapi/shared/utils"
)

// Health reports 200 when the database answers, 503 otherwise.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Component("http").Warn("health check failed", "error", err)
		utils.WriteJSON(w, http.StatusServiceUnavailable, api.Response{Status: api.StatusError, Message: "database unavailable"})
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
