package service

import (
	"context"

	"github.com/openforum-dev/forumapi/shared/domain"
	"github.com/openforum-dev/forumapi/shared/middleware/metrics"
	"golang.org/x/sync/errgroup"
)

type ThreadRepository interface {
	AddThread(ctx context.Context, owner domain.UserId, thread domain.AddThread) (domain.AddedThread, error)
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	VerifyThreadExists(ctx context.Context, id domain.ThreadId) error
}

type Sanitizer interface {
	Sanitize(text string) string
}

type Thread struct {
	threads   ThreadRepository
	comments  CommentRepository
	replies   ReplyRepository
	likes     CommentLikeRepository
	sanitizer Sanitizer
	fanout    int
}

// NewThread wires the thread use cases. fanout bounds concurrent
// reply/like lookups while assembling a thread.
func NewThread(threads ThreadRepository, comments CommentRepository, replies ReplyRepository, likes CommentLikeRepository, sanitizer Sanitizer, fanout int) *Thread {
	if fanout <= 0 {
		fanout = 1
	}
	return &Thread{threads, comments, replies, likes, sanitizer, fanout}
}

func (s *Thread) Add(ctx context.Context, owner domain.UserId, title, body string) (domain.AddedThread, error) {
	thread, err := domain.NewAddThread(s.sanitizer.Sanitize(title), s.sanitizer.Sanitize(body))
	if err != nil {
		return domain.AddedThread{}, err
	}

	added, err := s.threads.AddThread(ctx, owner, thread)
	if err != nil {
		return domain.AddedThread{}, err
	}
	metrics.EntitiesCreated.WithLabelValues("thread").Inc()
	return added, nil
}

// Get assembles a thread with its comments in creation order, each with
// its replies and like count.
func (s *Thread) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	thread, err := s.threads.GetThreadById(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := s.comments.GetCommentsByThreadId(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	details := make([]domain.CommentDetail, len(comments))
	if len(comments) == 0 {
		return domain.ThreadDetail{Thread: thread, Comments: details}, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout)
	for i, comment := range comments {
		i, comment := i, comment
		details[i].Comment = comment

		g.Go(func() error {
			replies, err := s.replies.GetRepliesByCommentId(gctx, comment.Id)
			if err != nil {
				return err
			}
			if replies == nil {
				replies = []domain.Reply{}
			}
			details[i].Replies = replies
			return nil
		})
		g.Go(func() error {
			like, err := s.likes.GetLikeCount(gctx, comment.Id)
			if err != nil {
				return err
			}
			details[i].LikeCount = like.Count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ThreadDetail{}, err
	}

	return domain.ThreadDetail{Thread: thread, Comments: details}, nil
}
