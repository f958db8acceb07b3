package repository

import (
	"context"
	"fmt"

	"film-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	db  database.PgxIface
	log *zap.Logger

	Film      FilmRepository
	Genre     GenreRepository
	FilmGenre FilmGenreRepository
	User      UserRepository
	Session   SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepository(db, log)
	repo.db = db
	return repo
}

func newRepository(q database.DBTX, log *zap.Logger) *Repository {
	return &Repository{
		log:       log,
		Film:      NewFilmRepository(q, log),
		Genre:     NewGenreRepository(q, log),
		FilmGenre: NewFilmGenreRepository(q, log),
		User:      NewUserRepository(q, log),
		Session:   NewSessionRepository(q, log),
	}
}

// WithTx runs fn with repositories bound to one transaction. The transaction
// commits when fn returns nil and rolls back otherwise. A Repository built
// without a pool (as in unit tests) runs fn against itself.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(newRepository(tx, r.log)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Ping checks the database connection.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.Ping(ctx)
}
