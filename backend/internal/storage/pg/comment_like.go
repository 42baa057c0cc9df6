package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openforum-dev/forumapi/shared/domain"
	sharedpg "github.com/openforum-dev/forumapi/shared/storage/pg"
)

// =========================================================================
// Public Methods (satisfy the service.CommentLikeRepository interface)
// =========================================================================

// AddLike is idempotent: a second like by the same user is ignored.
func (s *Storage) AddLike(ctx context.Context, userId domain.UserId, commentId domain.CommentId) error {
	_, err := s.q(ctx).ExecContext(ctx, `
        INSERT INTO comment_likes (id, comment_id, user_id)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, comment_id) DO NOTHING
    `, s.ids.New("comment-like"), commentId, userId)
	if err != nil {
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Storage) GetLikeCount(ctx context.Context, commentId domain.CommentId) (domain.Like, error) {
	var count string
	err := s.q(ctx).QueryRowContext(ctx,
		"SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1", commentId,
	).Scan(&count)
	if err != nil {
		return domain.Like{}, fmt.Errorf("failed to count likes: %w", err)
	}
	return domain.NewLike(count)
}

// VerifyLikeExists returns nil when there is no like. Inside a transaction
// it first takes an advisory lock on the (user, comment) pair, serializing
// concurrent toggles until commit.
func (s *Storage) VerifyLikeExists(ctx context.Context, userId domain.UserId, commentId domain.CommentId) (*domain.ExistingLike, error) {
	if _, ok := sharedpg.TxFromContext(ctx); ok {
		_, err := s.q(ctx).ExecContext(ctx,
			"SELECT pg_advisory_xact_lock(hashtext($1::text || ':' || $2::text))", userId, commentId,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to lock like: %w", err)
		}
	}

	var id domain.LikeId
	err := s.q(ctx).QueryRowContext(ctx,
		"SELECT id FROM comment_likes WHERE user_id = $1 AND comment_id = $2", userId, commentId,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check like: %w", err)
	}

	like, err := domain.NewExistingLike(id)
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (s *Storage) DeleteLike(ctx context.Context, id domain.LikeId) error {
	return s.deleteRow(ctx, "comment_likes", id, domain.CommentLikeDeletion, errLikeNotFound)
}
