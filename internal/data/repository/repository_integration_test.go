package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"film-catalog/internal/data/entity"
	"film-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupIntegrationRepo connects to TEST_DATABASE_URL and applies migrations,
// skipping the test when no database is available.
func setupIntegrationRepo(t *testing.T) *Repository {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	db, err := database.Connect(context.Background(), dsn, 4)
	if err != nil {
		t.Skipf("Skipping integration test: cannot connect to test database: %v", err)
	}
	t.Cleanup(db.Close)

	require.NoError(t, database.RunMigrationsURL(dsn, database.MigrateUp, zap.NewNop()))

	return NewRepository(db, zap.NewNop())
}

func newTestFilm(name string) *entity.Film {
	now := time.Now().UTC()
	return &entity.Film{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:        name,
		Rating:      7,
		Description: "integration test film",
		PosterURL:   "https://posters.example/" + name,
	}
}

func TestIntegration_GenreUpsertIsIdempotent(t *testing.T) {
	repo := setupIntegrationRepo(t)
	ctx := context.Background()
	name := "Genre-" + uuid.NewString()

	first, err := repo.Genre.Upsert(ctx, name)
	require.NoError(t, err)
	second, err := repo.Genre.Upsert(ctx, name)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	found, err := repo.Genre.FindByName(ctx, name)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.ID, found.ID)
}

func TestIntegration_FilmListingAndGenres(t *testing.T) {
	repo := setupIntegrationRepo(t)
	ctx := context.Background()
	tag := uuid.NewString()[:8]

	genre, err := repo.Genre.Upsert(ctx, "Noir-"+tag)
	require.NoError(t, err)

	var withGenre *entity.Film
	for i := 0; i < 3; i++ {
		film := newTestFilm("listing-" + tag + "-" + string(rune('a'+i)))
		require.NoError(t, repo.Film.Create(ctx, film))
		if i == 0 {
			withGenre = film
		}
	}
	require.NoError(t, repo.FilmGenre.Attach(ctx, withGenre.ID, []uuid.UUID{genre.ID, genre.ID}))

	filter := FilmFilter{Search: "LISTING-" + tag}
	total, err := repo.Film.CountAll(ctx, filter)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	page, err := repo.Film.FindAll(ctx, FilmQuery{
		Filter: filter,
		Sort:   ResolveFilmSort("name", "desc"),
		Limit:  2,
	})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "listing-"+tag+"-c", page[0].Name)

	byGenre, err := repo.Film.FindAll(ctx, FilmQuery{Filter: FilmFilter{GenreIDs: []uuid.UUID{genre.ID}}})
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	assert.Equal(t, withGenre.ID, byGenre[0].ID)

	genres, err := repo.Genre.FindByFilmIDs(ctx, []uuid.UUID{withGenre.ID})
	require.NoError(t, err)
	assert.Len(t, genres[withGenre.ID], 1)

	deleted, err := repo.Film.Delete(ctx, withGenre.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Film.Delete(ctx, withGenre.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	stillThere, err := repo.Genre.FindByID(ctx, genre.ID)
	require.NoError(t, err)
	assert.NotNil(t, stillThere)
}

func TestIntegration_WithTxRollsBack(t *testing.T) {
	repo := setupIntegrationRepo(t)
	ctx := context.Background()
	film := newTestFilm("rollback-" + uuid.NewString())
	boom := errors.New("boom")

	err := repo.WithTx(ctx, func(tx *Repository) error {
		if err := tx.Film.Create(ctx, film); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	found, err := repo.Film.FindByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
