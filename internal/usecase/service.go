package usecase

import (
	"film-catalog/internal/data/repository"
	"film-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Film  FilmService
	Genre GenreService
	Auth  AuthService
	User  UserService
	Seed  SeedService
}

func NewService(repo *repository.Repository, config *utils.Config, revoker TokenRevoker, log *zap.Logger) *Service {
	return &Service{
		Film:  NewFilmService(repo, config.Pagination, log),
		Genre: NewGenreService(repo, log),
		Auth:  NewAuthService(repo, config.JWT, revoker, log),
		User:  NewUserService(repo, config.Pagination, log),
		Seed:  NewSeedService(repo, config.Seed, log),
	}
}
