package usecase

import (
	"context"
	"fmt"

	"film-catalog/internal/data/repository"
	"film-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type GenreService interface {
	ListGenres(ctx context.Context) ([]response.GenreResponse, error)
}

type genreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGenreService(repo *repository.Repository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) ListGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}

	out := make([]response.GenreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, response.GenreToResponse(g))
	}
	return out, nil
}
