package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/openforum-dev/forumapi/shared/config"
	"github.com/openforum-dev/forumapi/shared/domain"
	internal_errors "github.com/openforum-dev/forumapi/shared/errors"
	"github.com/openforum-dev/forumapi/shared/logger"
	sharedpg "github.com/openforum-dev/forumapi/shared/storage/pg"
)

type IdGenerator interface {
	New(prefix string) string
}

// Storage implements every repository of the service layer on one pool.
type Storage struct {
	db  *sql.DB
	ids IdGenerator
}

// New connects to Postgres and applies pending migrations.
func New(ctx context.Context, cfg *config.Config, ids IdGenerator) (*Storage, error) {
	log := logger.Component("storage")

	log.Info("connecting to db", "host", cfg.Public.Pg.Host, "dbname", cfg.Public.Pg.Dbname)
	db, err := sharedpg.Connect(ctx, cfg.PgDSN(), sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	log.Info("database is ready")

	return NewWithDB(db, ids), nil
}

// NewWithDB wraps an already opened pool.
func NewWithDB(db *sql.DB, ids IdGenerator) *Storage {
	return &Storage{db: db, ids: ids}
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping checks that the database answers.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithinTransaction runs fn in a transaction carried by its ctx.
// Nested calls join the outer transaction.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := sharedpg.TxFromContext(ctx); ok {
		return fn(ctx)
	}
	return sharedpg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return fn(sharedpg.ContextWithTx(ctx, tx))
	})
}

func (s *Storage) q(ctx context.Context) sharedpg.Querier {
	return sharedpg.QuerierFromContext(ctx, s.db)
}

// deleteRow removes or hides one row according to policy. notFound is
// returned when no row matched.
func (s *Storage) deleteRow(ctx context.Context, table, id string, policy domain.DeletionPolicy, notFound error) error {
	var query string
	switch policy {
	case domain.SoftDelete:
		query = fmt.Sprintf("UPDATE %s SET is_delete = TRUE WHERE id = $1", sharedpg.Identifier(table))
	case domain.HardDelete:
		query = fmt.Sprintf("DELETE FROM %s WHERE id = $1", sharedpg.Identifier(table))
	default:
		return fmt.Errorf("unknown deletion policy %d for %s", policy, table)
	}

	result, err := s.q(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to %s delete from %s: %w", policy, table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

var (
	errThreadNotFound  = internal_errors.NotFound("thread tidak ditemukan")
	errCommentNotFound = internal_errors.NotFound("comment tidak ditemukan")
	errReplyNotFound   = internal_errors.NotFound("balasan tidak ditemukan")
	errLikeNotFound    = internal_errors.NotFound("like tidak ditemukan")
)
