package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openforum-dev/forumapi/shared/domain"
)

// =========================================================================
// Public Methods (satisfy the service.ReplyRepository interface)
// =========================================================================

func (s *Storage) AddReply(ctx context.Context, owner domain.UserId, commentId domain.CommentId, reply domain.AddReply) (domain.AddedReply, error) {
	var id domain.ReplyId
	var content string
	var ownerId domain.UserId
	err := s.q(ctx).QueryRowContext(ctx, `
        INSERT INTO replies (id, comment_id, owner, content)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, s.ids.New("reply"), commentId, owner, reply.Content).Scan(&id, &content, &ownerId)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return domain.NewAddedReply(id, content, ownerId)
}

func (s *Storage) GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.Reply, error) {
	rows, err := s.q(ctx).QueryContext(ctx, `
        SELECT r.id, r.content, r.date, u.username, r.is_delete
        FROM replies r
        JOIN users u ON u.id = r.owner
        WHERE r.comment_id = $1
        ORDER BY r.date ASC, r.id ASC
    `, commentId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.Reply{}
	for rows.Next() {
		var r domain.Reply
		if err := rows.Scan(&r.Id, &r.Content, &r.Date, &r.Username, &r.IsDelete); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		r, err := domain.NewReply(r)
		if err != nil {
			return nil, err
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replies: %w", err)
	}
	return replies, nil
}

func (s *Storage) VerifyReplyExists(ctx context.Context, commentId domain.CommentId, id domain.ReplyId) (domain.ExistingReply, error) {
	var replyId domain.ReplyId
	var owner domain.UserId
	err := s.q(ctx).QueryRowContext(ctx,
		"SELECT id, owner FROM replies WHERE id = $1 AND comment_id = $2", id, commentId,
	).Scan(&replyId, &owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ExistingReply{}, errReplyNotFound
		}
		return domain.ExistingReply{}, fmt.Errorf("failed to check reply: %w", err)
	}
	return domain.NewExistingReply(replyId, owner)
}

func (s *Storage) DeleteReply(ctx context.Context, id domain.ReplyId) error {
	return s.deleteRow(ctx, "replies", id, domain.ReplyDeletion, errReplyNotFound)
}
