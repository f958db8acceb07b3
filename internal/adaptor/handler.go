package adaptor

import (
	"film-catalog/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Film  *FilmHandler
	Genre *GenreHandler
	Auth  *AuthHandler
	User  *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Film:  NewFilmHandler(service.Film, log),
		Genre: NewGenreHandler(service.Genre, log),
		Auth:  NewAuthHandler(service.Auth, log),
		User:  NewUserHandler(service.User, log),
	}
}
