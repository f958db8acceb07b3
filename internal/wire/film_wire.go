package wire

import (
	"net/http"

	"film-catalog/internal/adaptor"
	"film-catalog/pkg/middleware"
	"film-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFilm(
	r chi.Router,
	filmHandler *adaptor.FilmHandler,
	genreHandler *adaptor.GenreHandler,
	auth func(http.Handler) http.Handler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Get("/api/genres", genreHandler.ListGenres)

	r.Route("/api/films", func(r chi.Router) {
		r.Get("/search", filmHandler.SearchFilms)
		r.Get("/all", filmHandler.ListFilms)
		r.Get("/films/by-genre-ids", filmHandler.GetFilmsByGenreIDs)
		r.Get("/{filmId}", filmHandler.GetFilmByID)

		r.Group(func(r chi.Router) {
			if config.JWT.ProtectFilmWrites {
				r.Use(auth)
				r.Use(middleware.Admin(log))
			}

			r.Post("/", filmHandler.CreateFilm)
			r.Put("/update/{filmId}", filmHandler.UpdateFilm)
			r.Delete("/{filmId}", filmHandler.DeleteFilm)
		})
	})
}
