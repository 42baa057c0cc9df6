package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/openforum-dev/forumapi/shared/domain"
	"github.com/openforum-dev/forumapi/shared/utils"
)

type UserService interface {
	Register(ctx context.Context, username domain.Username, password domain.Password, fullname string) (domain.RegisteredUser, error)
}

type AuthService interface {
	Login(ctx context.Context, username domain.Username, password domain.Password) (domain.AuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type ThreadService interface {
	Add(ctx context.Context, owner domain.UserId, title, body string) (domain.AddedThread, error)
	Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

type CommentService interface {
	Add(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, content string) (domain.AddedComment, error)
	Delete(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) error
}

type ReplyService interface {
	Add(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, content string) (domain.AddedReply, error)
	Delete(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error
}

type LikeService interface {
	Toggle(ctx context.Context, userId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) (bool, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	users   UserService
	auth    AuthService
	thread  ThreadService
	comment CommentService
	reply   ReplyService
	like    LikeService
	health  HealthChecker
}

func New(users UserService, auth AuthService, thread ThreadService, comment CommentService, reply ReplyService, like LikeService, health HealthChecker) *Handler {
	return &Handler{users, auth, thread, comment, reply, like, health}
}

// decode reads the JSON body into v. A field of the wrong JSON type is
// reported with dataType, the payload's own code.
func decode(r *http.Request, v any, dataType *domain.CodeError) error {
	err := utils.Decode(r.Body, v)
	if errors.Is(err, utils.ErrBodyTypeMismatch) {
		return dataType
	}
	return err
}
