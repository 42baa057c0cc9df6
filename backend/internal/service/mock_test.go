package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/openforum-dev/forumapi/shared/domain"
	internal_errors "github.com/openforum-dev/forumapi/shared/errors"
)

// --- Mocks ---

// MockThreadRepository mocks the ThreadRepository interface.
type MockThreadRepository struct {
	addThreadFunc          func(owner domain.UserId, thread domain.AddThread) (domain.AddedThread, error)
	getThreadByIdFunc      func(id domain.ThreadId) (domain.Thread, error)
	verifyThreadExistsFunc func(id domain.ThreadId) error
}

func (m *MockThreadRepository) AddThread(ctx context.Context, owner domain.UserId, thread domain.AddThread) (domain.AddedThread, error) {
	if m.addThreadFunc != nil {
		return m.addThreadFunc(owner, thread)
	}
	return domain.AddedThread{Id: "thread-123", Title: thread.Title, Owner: owner}, nil
}

func (m *MockThreadRepository) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(id)
	}
	return domain.Thread{Id: id, Title: "sebuah thread", Body: "sebuah body thread", Date: testDate, Username: "dicoding"}, nil
}

func (m *MockThreadRepository) VerifyThreadExists(ctx context.Context, id domain.ThreadId) error {
	if m.verifyThreadExistsFunc != nil {
		return m.verifyThreadExistsFunc(id)
	}
	return nil
}

// MockCommentRepository mocks the CommentRepository interface.
type MockCommentRepository struct {
	addCommentFunc            func(owner domain.UserId, threadId domain.ThreadId, comment domain.AddComment) (domain.AddedComment, error)
	getCommentsByThreadIdFunc func(threadId domain.ThreadId) ([]domain.Comment, error)
	verifyCommentExistsFunc   func(threadId domain.ThreadId, id domain.CommentId) (domain.ExistingComment, error)
	deleteCommentFunc         func(id domain.CommentId) error

	mu                  sync.Mutex
	addCommentCalled    bool
	deleteCommentCalled bool
	deleteCommentIdArg  domain.CommentId
}

func (m *MockCommentRepository) AddComment(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, comment domain.AddComment) (domain.AddedComment, error) {
	m.mu.Lock()
	m.addCommentCalled = true
	m.mu.Unlock()

	if m.addCommentFunc != nil {
		return m.addCommentFunc(owner, threadId, comment)
	}
	return domain.AddedComment{Id: "comment-123", Content: comment.Content, Owner: owner}, nil
}

func (m *MockCommentRepository) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return []domain.Comment{}, nil
}

func (m *MockCommentRepository) VerifyCommentExists(ctx context.Context, threadId domain.ThreadId, id domain.CommentId) (domain.ExistingComment, error) {
	if m.verifyCommentExistsFunc != nil {
		return m.verifyCommentExistsFunc(threadId, id)
	}
	return domain.ExistingComment{Id: id, Owner: "user-123"}, nil
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, id domain.CommentId) error {
	m.mu.Lock()
	m.deleteCommentCalled = true
	m.deleteCommentIdArg = id
	m.mu.Unlock()

	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(id)
	}
	return nil
}

// MockReplyRepository mocks the ReplyRepository interface.
type MockReplyRepository struct {
	addReplyFunc              func(owner domain.UserId, commentId domain.CommentId, reply domain.AddReply) (domain.AddedReply, error)
	getRepliesByCommentIdFunc func(commentId domain.CommentId) ([]domain.Reply, error)
	verifyReplyExistsFunc     func(commentId domain.CommentId, id domain.ReplyId) (domain.ExistingReply, error)
	deleteReplyFunc           func(id domain.ReplyId) error

	mu                sync.Mutex
	getRepliesCalls   int
	addReplyCalled    bool
	deleteReplyCalled bool
}

func (m *MockReplyRepository) AddReply(ctx context.Context, owner domain.UserId, commentId domain.CommentId, reply domain.AddReply) (domain.AddedReply, error) {
	m.mu.Lock()
	m.addReplyCalled = true
	m.mu.Unlock()

	if m.addReplyFunc != nil {
		return m.addReplyFunc(owner, commentId, reply)
	}
	return domain.AddedReply{Id: "reply-123", Content: reply.Content, Owner: owner}, nil
}

func (m *MockReplyRepository) GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.Reply, error) {
	m.mu.Lock()
	m.getRepliesCalls++
	m.mu.Unlock()

	if m.getRepliesByCommentIdFunc != nil {
		return m.getRepliesByCommentIdFunc(commentId)
	}
	return []domain.Reply{}, nil
}

func (m *MockReplyRepository) VerifyReplyExists(ctx context.Context, commentId domain.CommentId, id domain.ReplyId) (domain.ExistingReply, error) {
	if m.verifyReplyExistsFunc != nil {
		return m.verifyReplyExistsFunc(commentId, id)
	}
	return domain.ExistingReply{Id: id, Owner: "user-123"}, nil
}

func (m *MockReplyRepository) DeleteReply(ctx context.Context, id domain.ReplyId) error {
	m.mu.Lock()
	m.deleteReplyCalled = true
	m.mu.Unlock()

	if m.deleteReplyFunc != nil {
		return m.deleteReplyFunc(id)
	}
	return nil
}

// MockCommentLikeRepository is an in-memory CommentLikeRepository.
// Function fields override the in-memory behaviour.
type MockCommentLikeRepository struct {
	getLikeCountFunc     func(commentId domain.CommentId) (domain.Like, error)
	verifyLikeExistsFunc func(userId domain.UserId, commentId domain.CommentId) (*domain.ExistingLike, error)

	mu          sync.Mutex
	likes       map[domain.LikeId]likeKey
	nextId      int
	countCalls  int
	addCalls    int
	deleteCalls int
}

type likeKey struct {
	userId    domain.UserId
	commentId domain.CommentId
}

func newMockCommentLikeRepository() *MockCommentLikeRepository {
	return &MockCommentLikeRepository{likes: make(map[domain.LikeId]likeKey)}
}

func (m *MockCommentLikeRepository) AddLike(ctx context.Context, userId domain.UserId, commentId domain.CommentId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addCalls++
	m.nextId++
	m.likes[fmt.Sprintf("comment-like-%d", m.nextId)] = likeKey{userId, commentId}
	return nil
}

func (m *MockCommentLikeRepository) GetLikeCount(ctx context.Context, commentId domain.CommentId) (domain.Like, error) {
	m.mu.Lock()
	m.countCalls++
	m.mu.Unlock()

	if m.getLikeCountFunc != nil {
		return m.getLikeCountFunc(commentId)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, k := range m.likes {
		if k.commentId == commentId {
			count++
		}
	}
	return domain.Like{Count: count}, nil
}

func (m *MockCommentLikeRepository) VerifyLikeExists(ctx context.Context, userId domain.UserId, commentId domain.CommentId) (*domain.ExistingLike, error) {
	if m.verifyLikeExistsFunc != nil {
		return m.verifyLikeExistsFunc(userId, commentId)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, k := range m.likes {
		if k == (likeKey{userId, commentId}) {
			return &domain.ExistingLike{Id: id}, nil
		}
	}
	return nil, nil
}

func (m *MockCommentLikeRepository) DeleteLike(ctx context.Context, id domain.LikeId) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	delete(m.likes, id)
	return nil
}

// MockTransactor runs fn directly and records how often it was used.
type MockTransactor struct {
	mu    sync.Mutex
	calls int
}

func (m *MockTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return fn(ctx)
}

// MockUserRepository mocks the UserRepository interface.
type MockUserRepository struct {
	verifyAvailableUsernameFunc func(username domain.Username) error
	addUserFunc                 func(user domain.RegisterUser) (domain.RegisteredUser, error)
	getPasswordByUsernameFunc   func(username domain.Username) (string, error)
	getIdByUsernameFunc         func(username domain.Username) (domain.UserId, error)

	addUserArg *domain.RegisterUser
}

func (m *MockUserRepository) VerifyAvailableUsername(ctx context.Context, username domain.Username) error {
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(username)
	}
	return nil
}

func (m *MockUserRepository) AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	m.addUserArg = &user
	if m.addUserFunc != nil {
		return m.addUserFunc(user)
	}
	return domain.RegisteredUser{Id: "user-123", Username: user.Username, Fullname: user.Fullname}, nil
}

func (m *MockUserRepository) GetPasswordByUsername(ctx context.Context, username domain.Username) (string, error) {
	if m.getPasswordByUsernameFunc != nil {
		return m.getPasswordByUsernameFunc(username)
	}
	return "hashed:secret", nil
}

func (m *MockUserRepository) GetIdByUsername(ctx context.Context, username domain.Username) (domain.UserId, error) {
	if m.getIdByUsernameFunc != nil {
		return m.getIdByUsernameFunc(username)
	}
	return "user-123", nil
}

// MockAuthenticationRepository keeps refresh tokens in a set.
type MockAuthenticationRepository struct {
	addTokenFunc func(token string) error

	tokens map[string]bool
}

func newMockAuthenticationRepository() *MockAuthenticationRepository {
	return &MockAuthenticationRepository{tokens: make(map[string]bool)}
}

func (m *MockAuthenticationRepository) AddToken(ctx context.Context, token string) error {
	if m.addTokenFunc != nil {
		return m.addTokenFunc(token)
	}
	m.tokens[token] = true
	return nil
}

func (m *MockAuthenticationRepository) CheckAvailabilityToken(ctx context.Context, token string) error {
	if !m.tokens[token] {
		return errRefreshTokenNotFound
	}
	return nil
}

func (m *MockAuthenticationRepository) DeleteToken(ctx context.Context, token string) error {
	delete(m.tokens, token)
	return nil
}

// MockTokenManager issues readable fake tokens: "access:<id>:<username>".
type MockTokenManager struct {
	verifyAccessTokenFunc func(token string) error
}

func (m *MockTokenManager) CreateAccessToken(payload domain.Credentials) (string, error) {
	return "access:" + payload.Id + ":" + payload.Username, nil
}

func (m *MockTokenManager) CreateRefreshToken(payload domain.Credentials) (string, error) {
	return "refresh:" + payload.Id + ":" + payload.Username, nil
}

func (m *MockTokenManager) VerifyAccessToken(token string) error {
	if m.verifyAccessTokenFunc != nil {
		return m.verifyAccessTokenFunc(token)
	}
	if !strings.HasPrefix(token, "access:") {
		return errInvalidAccessToken
	}
	return nil
}

func (m *MockTokenManager) VerifyRefreshToken(token string) error {
	if !strings.HasPrefix(token, "refresh:") {
		return errInvalidRefreshToken
	}
	return nil
}

func (m *MockTokenManager) DecodePayload(token string) (domain.Credentials, error) {
	parts := strings.SplitN(token, ":", 3)
	if len(parts) != 3 {
		return domain.Credentials{}, errInvalidAccessToken
	}
	return domain.Credentials{Id: parts[1], Username: parts[2]}, nil
}

// MockPasswordHash prefixes passwords with "hashed:".
type MockPasswordHash struct{}

func (MockPasswordHash) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (MockPasswordHash) ComparePassword(password, hashed string) error {
	if hashed != "hashed:"+password {
		return errWrongCredentials
	}
	return nil
}

// MockSanitizer strips a fixed "<b>" marker so tests can see it ran.
type MockSanitizer struct{}

func (MockSanitizer) Sanitize(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "<b>", ""))
}

// --- Helpers ---

var testDate = time.Date(2021, 8, 8, 7, 19, 9, 0, time.UTC)

var (
	errRefreshTokenNotFound = internal_errors.Invariant("refresh token tidak ditemukan di database")
	errInvalidAccessToken   = internal_errors.Authentication("access token tidak valid")
	errInvalidRefreshToken  = internal_errors.Invariant("refresh token tidak valid")
	errWrongCredentials     = internal_errors.Authentication("kredensial yang Anda masukkan salah")
	errThreadNotFound       = internal_errors.NotFound("thread tidak ditemukan")
	errCommentNotFound      = internal_errors.NotFound("comment tidak ditemukan")
)
