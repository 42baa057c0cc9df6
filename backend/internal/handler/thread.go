package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/openforum-dev/forumapi/backend/internal/middleware"
	"github.com/openforum-dev/forumapi/shared/api"
	"github.com/openforum-dev/forumapi/shared/domain"
	internal_errors "github.com/openforum-dev/forumapi/shared/errors"
	"github.com/openforum-dev/forumapi/shared/utils"
)

var errNoCredentials = internal_errors.Authentication("Missing authentication")

func (h *Handler) AddThread(w http.ResponseWriter, r *http.Request) {
	creds := middleware.GetCredentialsFromContext(r)
	if creds == nil {
		utils.WriteErrorAndStatusCode(w, errNoCredentials)
		return
	}

	var body api.AddThreadRequest
	if err := decode(r, &body, domain.ErrAddThreadDataType); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Add(r.Context(), creds.Id, body.Title, body.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedThreadResponse{AddedThread: thread})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	thread, err := h.thread.Get(r.Context(), chi.URLParam(r, "threadId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, api.ThreadResponse{Thread: thread})
}
