package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openforum-dev/forumapi/shared/domain"
)

// =========================================================================
// Public Methods (satisfy the service.CommentRepository interface)
// =========================================================================

func (s *Storage) AddComment(ctx context.Context, owner domain.UserId, threadId domain.ThreadId, comment domain.AddComment) (domain.AddedComment, error) {
	var id domain.CommentId
	var content string
	var ownerId domain.UserId
	err := s.q(ctx).QueryRowContext(ctx, `
        INSERT INTO comments (id, thread_id, owner, content)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, s.ids.New("comment"), threadId, owner, comment.Content).Scan(&id, &content, &ownerId)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.NewAddedComment(id, content, ownerId)
}

// GetCommentsByThreadId returns comments oldest first, deleted ones masked.
func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	rows, err := s.q(ctx).QueryContext(ctx, `
        SELECT c.id, u.username, c.date, c.content, c.is_delete
        FROM comments c
        JOIN users u ON u.id = c.owner
        WHERE c.thread_id = $1
        ORDER BY c.date ASC, c.id ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.Id, &c.Username, &c.Date, &c.Content, &c.IsDelete); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c, err := domain.NewComment(c)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}

func (s *Storage) VerifyCommentExists(ctx context.Context, threadId domain.ThreadId, id domain.CommentId) (domain.ExistingComment, error) {
	var commentId domain.CommentId
	var owner domain.UserId
	err := s.q(ctx).QueryRowContext(ctx,
		"SELECT id, owner FROM comments WHERE id = $1 AND thread_id = $2", id, threadId,
	).Scan(&commentId, &owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ExistingComment{}, errCommentNotFound
		}
		return domain.ExistingComment{}, fmt.Errorf("failed to check comment: %w", err)
	}
	return domain.NewExistingComment(commentId, owner)
}

func (s *Storage) DeleteComment(ctx context.Context, id domain.CommentId) error {
	return s.deleteRow(ctx, "comments", id, domain.CommentDeletion, errCommentNotFound)
}
