package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openforum-dev/forumapi/shared/domain"
)

// =========================================================================
// Public Methods (satisfy the service.ThreadRepository interface)
// =========================================================================

func (s *Storage) AddThread(ctx context.Context, owner domain.UserId, thread domain.AddThread) (domain.AddedThread, error) {
	var id domain.ThreadId
	var title string
	var ownerId domain.UserId
	err := s.q(ctx).QueryRowContext(ctx, `
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, s.ids.New("thread"), thread.Title, thread.Body, owner).Scan(&id, &title, &ownerId)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.NewAddedThread(id, title, ownerId)
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.q(ctx).QueryRowContext(ctx, `
        SELECT t.id, t.title, t.body, t.date, u.username
        FROM threads t
        JOIN users u ON u.id = t.owner
        WHERE t.id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, errThreadNotFound
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return domain.NewThread(thread)
}

func (s *Storage) VerifyThreadExists(ctx context.Context, id domain.ThreadId) error {
	var exists bool
	err := s.q(ctx).QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM threads WHERE id = $1)", id,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return errThreadNotFound
	}
	return nil
}
