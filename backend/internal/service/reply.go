package service

import (
	"context"

	"github.com/openforum-dev/forumapi/shared/domain"
	"github.com/openforum-dev/forumapi/shared/middleware/metrics"
)

type ReplyRepository interface {
	AddReply(ctx context.Context, owner domain.UserId, commentId domain.CommentId, reply domain.AddReply) (domain.AddedReply, error)
	// GetRepliesByCommentId returns an empty slice when there are none.
	GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.Reply, error)
	VerifyReplyExists(ctx context.Context, commentId domain.CommentId, id domain.ReplyId) (domain.ExistingReply, error)
	DeleteReply(ctx context.Context, id domain.ReplyId) error
}

type Reply struct {
	threads   ThreadRepository
	comments  CommentRepository
	replies   ReplyRepository
	sanitizer Sanitizer
}

func NewReply(threads ThreadRepository, comments CommentRepository, replies ReplyRepository, sanitizer Sanitizer) *Reply {
	return &Reply{threads, comments, replies, sanitizer}
}

func (s *Reply) Add(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, content string) (domain.AddedReply, error) {
	reply, err := domain.NewAddReply(s.sanitizer.Sanitize(content))
	if err != nil {
		return domain.AddedReply{}, err
	}

	if err := s.threads.VerifyThreadExists(ctx, threadId); err != nil {
		return domain.AddedReply{}, err
	}
	if _, err := s.comments.VerifyCommentExists(ctx, threadId, commentId); err != nil {
		return domain.AddedReply{}, err
	}

	added, err := s.replies.AddReply(ctx, owner, commentId, reply)
	if err != nil {
		return domain.AddedReply{}, err
	}
	metrics.EntitiesCreated.WithLabelValues("reply").Inc()
	return added, nil
}

// Delete soft deletes a reply owned by the caller.
func (s *Reply) Delete(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId) error {
	if err := s.threads.VerifyThreadExists(ctx, threadId); err != nil {
		return err
	}
	if _, err := s.comments.VerifyCommentExists(ctx, threadId, commentId); err != nil {
		return err
	}

	existing, err := s.replies.VerifyReplyExists(ctx, commentId, replyId)
	if err != nil {
		return err
	}
	if existing.Owner != owner {
		return domain.ErrDeleteReplyNotAuthorized
	}

	return s.replies.DeleteReply(ctx, replyId)
}
