package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/openforum-dev/forumapi/backend/internal/middleware"
	"github.com/openforum-dev/forumapi/shared/api"
	"github.com/openforum-dev/forumapi/shared/domain"
	"github.com/openforum-dev/forumapi/shared/utils"
)

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	creds := middleware.GetCredentialsFromContext(r)
	if creds == nil {
		utils.WriteErrorAndStatusCode(w, errNoCredentials)
		return
	}

	var body api.AddCommentRequest
	if err := decode(r, &body, domain.ErrAddCommentDataType); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comment, err := h.comment.Add(r.Context(), creds.Id, chi.URLParam(r, "threadId"), body.Content)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedCommentResponse{AddedComment: comment})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	creds := middleware.GetCredentialsFromContext(r)
	if creds == nil {
		utils.WriteErrorAndStatusCode(w, errNoCredentials)
		return
	}

	err := h.comment.Delete(r.Context(), creds.Id, chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
