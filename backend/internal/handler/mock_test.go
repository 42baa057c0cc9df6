package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/openforum-dev/forumapi/backend/internal/middleware"
	"github.com/openforum-dev/forumapi/shared/domain"
)

type MockUserService struct {
	MockRegister func(username domain.Username, password domain.Password, fullname string) (domain.RegisteredUser, error)
}

func (m *MockUserService) Register(ctx context.Context, username domain.Username, password domain.Password, fullname string) (domain.RegisteredUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(username, password, fullname)
	}
	return domain.RegisteredUser{Id: "user-123", Username: username, Fullname: fullname}, nil
}

type MockAuthService struct {
	MockLogin   func(username domain.Username, password domain.Password) (domain.AuthTokens, error)
	MockRefresh func(refreshToken string) (string, error)
	MockLogout  func(refreshToken string) error
}

func (m *MockAuthService) Login(ctx context.Context, username domain.Username, password domain.Password) (domain.AuthTokens, error) {
	if m.MockLogin != nil {
		return m.MockLogin(username, password)
	}
	return domain.AuthTokens{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if m.MockRefresh != nil {
		return m.MockRefresh(refreshToken)
	}
	return "access", nil
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	if m.MockLogout != nil {
		return m.MockLogout(refreshToken)
	}
	return nil
}

type MockThreadService struct {
	MockAdd func(owner domain.UserId, title, body string) (domain.AddedThread, error)
	MockGet func(id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Add(ctx context.Context, owner domain.UserId, title, body string) (domain.AddedThread, error) {
	if m.MockAdd != nil {
		return m.MockAdd(owner, title, body)
	}
	return domain.AddedThread{Id: "thread-123", Title: title, Owner: owner}, nil
}

func (m *MockThreadService) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.ThreadDetail{Thread: domain.Thread{Id: id}, Comments: []domain.CommentDetail{}}, nil
}

type MockCommentService struct {
	MockAdd    func(owner domain.UserId, threadId domain.ThreadId, content string) (domain.AddedComment, error)
	MockDelete func(owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) error
}

func (m *MockCommentService) Add(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, content string) (domain.AddedComment, error) {
	if m.MockAdd != nil {
		return m.MockAdd(owner, threadId, content)
	}
	return domain.AddedComment{Id: "comment-123", Content: content, Owner: owner}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) error {
	if m.MockDelete != nil {
		return m.MockDelete(owner, threadId, commentId)
	}
	return nil
}

type MockReplyService struct {
	MockAdd    func(owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, content string) (domain.AddedReply, error)
	MockDelete func(owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error
}

func (m *MockReplyService) Add(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, content string) (domain.AddedReply, error) {
	if m.MockAdd != nil {
		return m.MockAdd(owner, threadId, commentId, content)
	}
	return domain.AddedReply{Id: "reply-123", Content: content, Owner: owner}, nil
}

func (m *MockReplyService) Delete(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error {
	if m.MockDelete != nil {
		return m.MockDelete(owner, threadId, commentId, replyId)
	}
	return nil
}

type MockLikeService struct {
	MockToggle func(userId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) (bool, error)
}

func (m *MockLikeService) Toggle(ctx context.Context, userId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) (bool, error) {
	if m.MockToggle != nil {
		return m.MockToggle(userId, threadId, commentId)
	}
	return true, nil
}

type MockHealthChecker struct {
	err error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error { return m.err }

type mocks struct {
	users   *MockUserService
	auth    *MockAuthService
	thread  *MockThreadService
	comment *MockCommentService
	reply   *MockReplyService
	like    *MockLikeService
	health  *MockHealthChecker
}

func newMocks() *mocks {
	return &mocks{
		users:   &MockUserService{},
		auth:    &MockAuthService{},
		thread:  &MockThreadService{},
		comment: &MockCommentService{},
		reply:   &MockReplyService{},
		like:    &MockLikeService{},
		health:  &MockHealthChecker{},
	}
}

var testCredentials = domain.Credentials{Id: "user-123", Username: "dicoding"}

// setupRouter mounts every handler. Routes under the authenticated group
// see testCredentials in their context.
func setupRouter(m *mocks) *chi.Mux {
	h := New(m.users, m.auth, m.thread, m.comment, m.reply, m.like, m.health)
	router := chi.NewRouter()

	router.Post("/users", h.Register)
	router.Post("/authentications", h.Login)
	router.Put("/authentications", h.Refresh)
	router.Delete("/authentications", h.Logout)
	router.Get("/threads/{threadId}", h.GetThread)
	router.Get("/health", h.Health)

	router.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(middleware.WithCredentials(r.Context(), testCredentials)))
			})
		})
		r.Post("/threads", h.AddThread)
		r.Post("/threads/{threadId}/comments", h.AddComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
		r.Post("/threads/{threadId}/comments/{commentId}/replies", h.AddReply)
		r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
		r.Put("/threads/{threadId}/comments/{commentId}/likes", h.ToggleLike)
	})

	// same handlers without credentials
	router.Post("/anonymous/threads", h.AddThread)

	return router
}

func createRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, url, bytes.NewBuffer(body))
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
