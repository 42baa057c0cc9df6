package service

import (
	"context"

	"github.com/openforum-dev/forumapi/shared/domain"
	"github.com/openforum-dev/forumapi/shared/middleware/metrics"
)

type CommentRepository interface {
	AddComment(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, comment domain.AddComment) (domain.AddedComment, error)
	GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error)
	// VerifyCommentExists fails with NotFound unless the comment belongs to threadId.
	VerifyCommentExists(ctx context.Context, threadId domain.ThreadId, id domain.CommentId) (domain.ExistingComment, error)
	DeleteComment(ctx context.Context, id domain.CommentId) error
}

type Comment struct {
	threads   ThreadRepository
	comments  CommentRepository
	sanitizer Sanitizer
}

func NewComment(threads ThreadRepository, comments CommentRepository, sanitizer Sanitizer) *Comment {
	return &Comment{threads, comments, sanitizer}
}

func (s *Comment) Add(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, content string) (domain.AddedComment, error) {
	comment, err := domain.NewAddComment(s.sanitizer.Sanitize(content))
	if err != nil {
		return domain.AddedComment{}, err
	}

	if err := s.threads.VerifyThreadExists(ctx, threadId); err != nil {
		return domain.AddedComment{}, err
	}

	added, err := s.comments.AddComment(ctx, owner, threadId, comment)
	if err != nil {
		return domain.AddedComment{}, err
	}
	metrics.EntitiesCreated.WithLabelValues("comment").Inc()
	return added, nil
}

// Delete soft deletes a comment owned by the caller.
func (s *Comment) Delete(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) error {
	if err := s.threads.VerifyThreadExists(ctx, threadId); err != nil {
		return err
	}

	existing, err := s.comments.VerifyCommentExists(ctx, threadId, commentId)
	if err != nil {
		return err
	}
	if existing.Owner != owner {
		return domain.ErrDeleteCommentNotAuthorized
	}

	return s.comments.DeleteComment(ctx, commentId)
}
