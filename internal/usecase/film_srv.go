package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"film-catalog/internal/data/entity"
	"film-catalog/internal/data/repository"
	"film-catalog/internal/dto/request"
	"film-catalog/internal/dto/response"
	"film-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FilmService interface {
	SearchFilms(ctx context.Context, name string) ([]response.FilmResponse, error)
	ListFilms(ctx context.Context, req *request.FilmListRequest) (*response.PaginatedResponse[response.FilmResponse], error)
	GetFilmsByGenreIDs(ctx context.Context, genreIDs []string) ([]response.FilmResponse, error)
	GetFilmByID(ctx context.Context, id string) (*response.FilmResponse, error)
	CreateFilm(ctx context.Context, req *request.FilmCreateRequest) (*response.FilmResponse, error)
	UpdateFilm(ctx context.Context, id string, req *request.FilmUpdateRequest) (*response.FilmResponse, error)
	DeleteFilm(ctx context.Context, id string) error
}

type filmService struct {
	repo       *repository.Repository
	pagination utils.PaginationConfig
	log        *zap.Logger
}

func NewFilmService(repo *repository.Repository, pagination utils.PaginationConfig, log *zap.Logger) FilmService {
	return &filmService{
		repo:       repo,
		pagination: pagination,
		log:        log.With(zap.String("service", "film")),
	}
}

func (s *filmService) SearchFilms(ctx context.Context, name string) ([]response.FilmResponse, error) {
	films, err := s.repo.Film.SearchByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("search films: %w", err)
	}
	if len(films) == 0 {
		return nil, ErrFilmNotFound
	}

	if err := s.loadGenres(ctx, s.repo, films); err != nil {
		return nil, err
	}
	return response.FilmsToResponse(films), nil
}

// ListFilms counts the filtered set first so the page window can be clamped
// before fetching.
func (s *filmService) ListFilms(ctx context.Context, req *request.FilmListRequest) (*response.PaginatedResponse[response.FilmResponse], error) {
	genreIDs, err := parseIDs(req.GenreIDs)
	if err != nil {
		return nil, err
	}

	filter := repository.FilmFilter{
		Search:   strings.TrimSpace(req.Search),
		GenreIDs: genreIDs,
	}

	total, err := s.repo.Film.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count films: %w", err)
	}

	page := utils.GeneratePagination(req.PageNumber, req.PageSize, total,
		s.pagination.DefaultPageSize, s.pagination.MaxPageSize)

	var films []*entity.Film
	if total > 0 {
		films, err = s.repo.Film.FindAll(ctx, repository.FilmQuery{
			Filter: filter,
			Sort:   repository.ResolveFilmSort(req.OrderBy, req.OrderDirection),
			Limit:  page.PageSize,
			Offset: page.Offset,
		})
		if err != nil {
			return nil, fmt.Errorf("list films: %w", err)
		}
		if err := s.loadGenres(ctx, s.repo, films); err != nil {
			return nil, err
		}
	}

	s.log.Debug("Films listed",
		zap.Int("page", page.CurrentPage),
		zap.Int("page_size", page.PageSize),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(response.FilmsToResponse(films), page), nil
}

func (s *filmService) GetFilmsByGenreIDs(ctx context.Context, genreIDs []string) ([]response.FilmResponse, error) {
	ids, err := parseIDs(genreIDs)
	if err != nil {
		return nil, err
	}

	films, err := s.repo.Film.FindAll(ctx, repository.FilmQuery{
		Filter: repository.FilmFilter{GenreIDs: ids},
		Sort:   repository.ResolveFilmSort("name", "asc"),
	})
	if err != nil {
		return nil, fmt.Errorf("find films by genre ids: %w", err)
	}

	if err := s.loadGenres(ctx, s.repo, films); err != nil {
		return nil, err
	}
	return response.FilmsToResponse(films), nil
}

func (s *filmService) GetFilmByID(ctx context.Context, id string) (*response.FilmResponse, error) {
	filmID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	film, err := s.repo.Film.FindByID(ctx, filmID)
	if err != nil {
		return nil, fmt.Errorf("get film: %w", err)
	}
	if film == nil {
		return nil, ErrFilmNotFound
	}

	if err := s.loadGenres(ctx, s.repo, []*entity.Film{film}); err != nil {
		return nil, err
	}

	resp := response.FilmToResponse(film)
	return &resp, nil
}

func (s *filmService) CreateFilm(ctx context.Context, req *request.FilmCreateRequest) (*response.FilmResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create film validation failed", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	film := &entity.Film{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Rating:      req.Rating,
		Description: req.Description,
		PosterURL:   req.PosterURL,
	}

	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		genres, err := s.resolveGenres(ctx, tx, req.Genres)
		if err != nil {
			return err
		}

		if err := tx.Film.Create(ctx, film); err != nil {
			return err
		}
		if err := tx.FilmGenre.Attach(ctx, film.ID, genreIDs(genres)); err != nil {
			return err
		}

		film.Genres = genres
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create film: %w", err)
	}

	s.log.Info("Film created",
		zap.String("film_id", film.ID.String()),
		zap.String("name", film.Name),
		zap.Int("genres", len(film.Genres)),
	)

	resp := response.FilmToResponse(film)
	return &resp, nil
}

func (s *filmService) UpdateFilm(ctx context.Context, id string, req *request.FilmUpdateRequest) (*response.FilmResponse, error) {
	filmID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		s.log.Warn("Update film validation failed", zap.Error(err))
		return nil, err
	}

	var film *entity.Film
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		existing, err := tx.Film.FindByID(ctx, filmID)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrFilmNotFound
		}

		existing.Name = req.Name
		existing.Rating = req.Rating
		existing.Description = req.Description
		existing.PosterURL = req.PosterURL
		existing.UpdatedAt = time.Now().UTC()

		updated, err := tx.Film.Update(ctx, existing)
		if err != nil {
			return err
		}
		if !updated {
			return ErrFilmNotFound
		}

		if req.Genres != nil {
			genres, err := s.resolveGenres(ctx, tx, *req.Genres)
			if err != nil {
				return err
			}
			if err := tx.FilmGenre.Replace(ctx, filmID, genreIDs(genres)); err != nil {
				return err
			}
			existing.Genres = genres
		} else if err := s.loadGenres(ctx, tx, []*entity.Film{existing}); err != nil {
			return err
		}

		film = existing
		return nil
	})
	if errors.Is(err, ErrFilmNotFound) {
		s.log.Warn("Update of missing film", zap.String("film_id", id))
		return nil, ErrFilmNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update film: %w", err)
	}

	s.log.Info("Film updated", zap.String("film_id", film.ID.String()))

	resp := response.FilmToResponse(film)
	return &resp, nil
}

// DeleteFilm detaches the film's genres and soft deletes it. Genres stay.
func (s *filmService) DeleteFilm(ctx context.Context, id string) error {
	filmID, err := parseID(id)
	if err != nil {
		return err
	}

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		existing, err := tx.Film.FindByID(ctx, filmID)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrFilmNotFound
		}

		if err := tx.FilmGenre.DeleteByFilmID(ctx, filmID); err != nil {
			return err
		}

		deleted, err := tx.Film.Delete(ctx, filmID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrFilmNotFound
		}
		return nil
	})
	if errors.Is(err, ErrFilmNotFound) {
		return ErrFilmNotFound
	}
	if err != nil {
		return fmt.Errorf("delete film: %w", err)
	}

	s.log.Info("Film deleted", zap.String("film_id", id))
	return nil
}

// resolveGenres maps requested names to genre rows, reusing an existing row
// with the exact same name and creating the rest. Duplicate names collapse.
func (s *filmService) resolveGenres(ctx context.Context, repo *repository.Repository, reqs []request.GenreRequest) ([]*entity.Genre, error) {
	names := uniqueGenreNames(reqs)
	genres := make([]*entity.Genre, 0, len(names))

	for _, name := range names {
		genre, err := repo.Genre.FindByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if genre == nil {
			genre, err = repo.Genre.Upsert(ctx, name)
			if err != nil {
				return nil, err
			}
			s.log.Info("Genre created", zap.String("genre_id", genre.ID.String()), zap.String("name", name))
		}
		genres = append(genres, genre)
	}

	sort.SliceStable(genres, func(i, j int) bool { return genres[i].Name < genres[j].Name })
	return genres, nil
}

func (s *filmService) loadGenres(ctx context.Context, repo *repository.Repository, films []*entity.Film) error {
	if len(films) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(films))
	for _, f := range films {
		ids = append(ids, f.ID)
	}

	byFilm, err := repo.Genre.FindByFilmIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load film genres: %w", err)
	}

	for _, f := range films {
		f.Genres = byFilm[f.ID]
	}
	return nil
}

func uniqueGenreNames(reqs []request.GenreRequest) []string {
	seen := make(map[string]struct{}, len(reqs))
	names := make([]string, 0, len(reqs))
	for _, g := range reqs {
		if _, ok := seen[g.Name]; ok {
			continue
		}
		seen[g.Name] = struct{}{}
		names = append(names, g.Name)
	}
	return names
}

func genreIDs(genres []*entity.Genre) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}
	return ids
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return parsed, nil
}

func parseIDs(ids []string) ([]uuid.UUID, error) {
	parsed, err := utils.ParseUUIDList(ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return parsed, nil
}
