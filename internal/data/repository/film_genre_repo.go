package repository

import (
	"context"
	"fmt"

	"film-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FilmGenreRepository interface {
	// Attach links genreIDs to filmID. Pairs that already exist are skipped.
	Attach(ctx context.Context, filmID uuid.UUID, genreIDs []uuid.UUID) error
	DeleteByFilmID(ctx context.Context, filmID uuid.UUID) error
	// Replace makes genreIDs the exact genre set of filmID.
	Replace(ctx context.Context, filmID uuid.UUID, genreIDs []uuid.UUID) error
}

type filmGenreRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewFilmGenreRepository(db database.DBTX, log *zap.Logger) FilmGenreRepository {
	return &filmGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "film_genre")),
	}
}

func (r *filmGenreRepository) Attach(ctx context.Context, filmID uuid.UUID, genreIDs []uuid.UUID) error {
	query := `
		INSERT INTO film_genres (id, film_id, genre_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (film_id, genre_id) DO NOTHING
	`

	for _, genreID := range genreIDs {
		if _, err := r.db.Exec(ctx, query, uuid.New(), filmID, genreID); err != nil {
			r.log.Error("Failed to attach genre to film",
				zap.Error(err),
				zap.String("film_id", filmID.String()),
				zap.String("genre_id", genreID.String()),
			)
			return fmt.Errorf("attach genre %s to film %s: %w", genreID, filmID, err)
		}
	}

	return nil
}

func (r *filmGenreRepository) DeleteByFilmID(ctx context.Context, filmID uuid.UUID) error {
	query := `DELETE FROM film_genres WHERE film_id = $1`

	if _, err := r.db.Exec(ctx, query, filmID); err != nil {
		r.log.Error("Failed to delete film genres",
			zap.Error(err),
			zap.String("film_id", filmID.String()),
		)
		return fmt.Errorf("delete genres of film %s: %w", filmID, err)
	}

	return nil
}

func (r *filmGenreRepository) Replace(ctx context.Context, filmID uuid.UUID, genreIDs []uuid.UUID) error {
	if err := r.DeleteByFilmID(ctx, filmID); err != nil {
		return err
	}
	return r.Attach(ctx, filmID, genreIDs)
}
