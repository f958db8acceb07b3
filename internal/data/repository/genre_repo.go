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

type GenreRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error)
	FindByName(ctx context.Context, name string) (*entity.Genre, error)
	// Upsert returns the genre named name, creating it when absent. Concurrent
	// callers with the same name all get the same row.
	Upsert(ctx context.Context, name string) (*entity.Genre, error)
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	FindByFilmIDs(ctx context.Context, filmIDs []uuid.UUID) (map[uuid.UUID][]*entity.Genre, error)
}

type genreRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewGenreRepository(db database.DBTX, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	query := `SELECT id, name, created_at FROM genres WHERE id = $1`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(
		&genre.ID,
		&genre.Name,
		&genre.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return nil, fmt.Errorf("find genre by id: %w", err)
	}

	return &genre, nil
}

func (r *genreRepository) FindByName(ctx context.Context, name string) (*entity.Genre, error) {
	query := `SELECT id, name, created_at FROM genres WHERE name = $1`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, name).Scan(
		&genre.ID,
		&genre.Name,
		&genre.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find genre by name: %w", err)
	}

	return &genre, nil
}

func (r *genreRepository) Upsert(ctx context.Context, name string) (*entity.Genre, error) {
	// DO UPDATE (not DO NOTHING) so RETURNING yields the existing row too.
	query := `
		INSERT INTO genres (id, name, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at
	`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, uuid.New(), name).Scan(
		&genre.ID,
		&genre.Name,
		&genre.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to upsert genre",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("upsert genre %q: %w", name, err)
	}

	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	query := `SELECT id, name, created_at FROM genres ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all genres", zap.Error(err))
		return nil, fmt.Errorf("find all genres: %w", err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.CreatedAt); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return genres, nil
}

// FindByFilmIDs loads the genres of every film in filmIDs with one query,
// keyed by film id and ordered by genre name.
func (r *genreRepository) FindByFilmIDs(ctx context.Context, filmIDs []uuid.UUID) (map[uuid.UUID][]*entity.Genre, error) {
	result := make(map[uuid.UUID][]*entity.Genre, len(filmIDs))
	if len(filmIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT fg.film_id, g.id, g.name, g.created_at
		FROM film_genres fg
		INNER JOIN genres g ON g.id = fg.genre_id
		WHERE fg.film_id = ANY($1::uuid[])
		ORDER BY fg.film_id, g.name
	`

	rows, err := r.db.Query(ctx, query, uuidStrings(filmIDs))
	if err != nil {
		r.log.Error("Failed to find genres by film IDs",
			zap.Error(err),
			zap.Int("films", len(filmIDs)),
		)
		return nil, fmt.Errorf("find genres by film ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var filmID uuid.UUID
		var genre entity.Genre
		if err := rows.Scan(&filmID, &genre.ID, &genre.Name, &genre.CreatedAt); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		result[filmID] = append(result[filmID], &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return result, nil
}
