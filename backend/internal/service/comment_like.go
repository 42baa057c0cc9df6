package service

import (
	"context"

	"github.com/openforum-dev/forumapi/shared/domain"
	"github.com/openforum-dev/forumapi/shared/middleware/metrics"
)

type CommentLikeRepository interface {
	AddLike(ctx context.Context, userId domain.UserId, commentId domain.CommentId) error
	GetLikeCount(ctx context.Context, commentId domain.CommentId) (domain.Like, error)
	// VerifyLikeExists returns nil when the user has not liked the comment.
	VerifyLikeExists(ctx context.Context, userId domain.UserId, commentId domain.CommentId) (*domain.ExistingLike, error)
	DeleteLike(ctx context.Context, id domain.LikeId) error
}

// Transactor runs fn in one database transaction. Repository calls made
// with the ctx passed to fn join it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CommentLike struct {
	threads  ThreadRepository
	comments CommentRepository
	likes    CommentLikeRepository
	tx       Transactor
}

func NewCommentLike(threads ThreadRepository, comments CommentRepository, likes CommentLikeRepository, tx Transactor) *CommentLike {
	return &CommentLike{threads, comments, likes, tx}
}

// Toggle likes the comment if the user has not liked it yet and unlikes
// it otherwise. Returns whether the comment is liked afterwards.
func (s *CommentLike) Toggle(ctx context.Context, userId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) (bool, error) {
	if err := s.threads.VerifyThreadExists(ctx, threadId); err != nil {
		return false, err
	}
	if _, err := s.comments.VerifyCommentExists(ctx, threadId, commentId); err != nil {
		return false, err
	}

	var liked bool
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.likes.VerifyLikeExists(ctx, userId, commentId)
		if err != nil {
			return err
		}
		if existing != nil {
			liked = false
			return s.likes.DeleteLike(ctx, existing.Id)
		}
		liked = true
		return s.likes.AddLike(ctx, userId, commentId)
	})
	if err != nil {
		return false, err
	}

	state := "unliked"
	if liked {
		state = "liked"
	}
	metrics.LikeToggles.WithLabelValues(state).Inc()
	return liked, nil
}
