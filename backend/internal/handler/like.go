package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/openforum-dev/forumapi/backend/internal/middleware"
	"github.com/openforum-dev/forumapi/shared/utils"
)

// ToggleLike likes the comment, or removes the caller's like if present.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	creds := middleware.GetCredentialsFromContext(r)
	if creds == nil {
		utils.WriteErrorAndStatusCode(w, errNoCredentials)
		return
	}

	_, err := h.like.Toggle(r.Context(), creds.Id, chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
