package repository

import (
	"context"
	"errors"
	"fmt"

	"film-catalog/internal/data/entity"
	"film-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FilmRepository interface {
	Create(ctx context.Context, film *entity.Film) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Film, error)
	Update(ctx context.Context, film *entity.Film) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindAll(ctx context.Context, query FilmQuery) ([]*entity.Film, error)
	CountAll(ctx context.Context, filter FilmFilter) (int64, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Film, error)
}

type filmRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewFilmRepository(db database.DBTX, log *zap.Logger) FilmRepository {
	return &filmRepository{
		db:  db,
		log: log.With(zap.String("repository", "film")),
	}
}

func (r *filmRepository) Create(ctx context.Context, film *entity.Film) error {
	query := `
		INSERT INTO films (id, name, rating, description, poster_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		film.ID,
		film.Name,
		film.Rating,
		film.Description,
		film.PosterURL,
		film.CreatedAt,
		film.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create film",
			zap.Error(err),
			zap.String("name", film.Name),
		)
		return fmt.Errorf("create film: %w", err)
	}

	return nil
}

func (r *filmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Film, error) {
	query := `
		SELECT id, name, rating, description, poster_url, created_at, updated_at
		FROM films
		WHERE id = $1 AND deleted_at IS NULL
	`

	var film entity.Film
	err := r.db.QueryRow(ctx, query, id).Scan(
		&film.ID,
		&film.Name,
		&film.Rating,
		&film.Description,
		&film.PosterURL,
		&film.CreatedAt,
		&film.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find film by ID",
			zap.Error(err),
			zap.String("film_id", id.String()),
		)
		return nil, fmt.Errorf("find film by id: %w", err)
	}

	return &film, nil
}

// Update replaces the scalar fields. It reports false when no live film has the id.
func (r *filmRepository) Update(ctx context.Context, film *entity.Film) (bool, error) {
	query := `
		UPDATE films
		SET name = $2, rating = $3, description = $4, poster_url = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		film.ID,
		film.Name,
		film.Rating,
		film.Description,
		film.PosterURL,
		film.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update film",
			zap.Error(err),
			zap.String("film_id", film.ID.String()),
		)
		return false, fmt.Errorf("update film: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Delete soft deletes the film. It reports false when no live film has the id.
func (r *filmRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE films SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete film",
			zap.Error(err),
			zap.String("film_id", id.String()),
		)
		return false, fmt.Errorf("delete film: %w", err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Film soft deleted", zap.String("film_id", id.String()))
	return true, nil
}

func (r *filmRepository) FindAll(ctx context.Context, q FilmQuery) ([]*entity.Film, error) {
	sql, args := buildFilmSelectQuery(q)

	films, err := r.queryFilms(ctx, sql, args...)
	if err != nil {
		r.log.Error("Failed to find films",
			zap.Error(err),
			zap.String("search", q.Filter.Search),
			zap.Int("genre_ids", len(q.Filter.GenreIDs)),
			zap.Int("limit", q.Limit),
			zap.Int("offset", q.Offset),
		)
		return nil, fmt.Errorf("find films: %w", err)
	}

	r.log.Debug("Films found",
		zap.Int("count", len(films)),
		zap.Int("limit", q.Limit),
		zap.Int("offset", q.Offset),
	)
	return films, nil
}

func (r *filmRepository) CountAll(ctx context.Context, filter FilmFilter) (int64, error) {
	sql, args := buildFilmCountQuery(filter)

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count films",
			zap.Error(err),
			zap.String("search", filter.Search),
		)
		return 0, fmt.Errorf("count films: %w", err)
	}

	return total, nil
}

// SearchByName matches name case-insensitively as a substring.
func (r *filmRepository) SearchByName(ctx context.Context, name string) ([]*entity.Film, error) {
	query := `
		SELECT id, name, rating, description, poster_url, created_at, updated_at
		FROM films
		WHERE deleted_at IS NULL AND name ILIKE $1
		ORDER BY name
	`

	films, err := r.queryFilms(ctx, query, "%"+escapeLike(name)+"%")
	if err != nil {
		r.log.Error("Failed to search films by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("search films by name: %w", err)
	}

	return films, nil
}

func (r *filmRepository) queryFilms(ctx context.Context, sql string, args ...any) ([]*entity.Film, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var films []*entity.Film
	for rows.Next() {
		var film entity.Film
		if err := rows.Scan(
			&film.ID,
			&film.Name,
			&film.Rating,
			&film.Description,
			&film.PosterURL,
			&film.CreatedAt,
			&film.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan film row: %w", err)
		}
		films = append(films, &film)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate film rows: %w", err)
	}

	return films, nil
}
