package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/openforum-dev/forumapi/backend/internal/middleware"
	"github.com/openforum-dev/forumapi/shared/api"
	"github.com/openforum-dev/forumapi/shared/domain"
	"github.com/openforum-dev/forumapi/shared/utils"
)

func (h *Handler) AddReply(w http.ResponseWriter, r *http.Request) {
	creds := middleware.GetCredentialsFromContext(r)
	if creds == nil {
		utils.WriteErrorAndStatusCode(w, errNoCredentials)
		return
	}

	var body api.AddReplyRequest
	if err := decode(r, &body, domain.ErrAddReplyDataType); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	reply, err := h.reply.Add(r.Context(), creds.Id, chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), body.Content)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedReplyResponse{AddedReply: reply})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	creds := middleware.GetCredentialsFromContext(r)
	if creds == nil {
		utils.WriteErrorAndStatusCode(w, errNoCredentials)
		return
	}

	err := h.reply.Delete(r.Context(), creds.Id,
		chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), chi.URLParam(r, "replyId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
