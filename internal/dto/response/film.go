package response

import (
	"time"

	"film-catalog/internal/data/entity"
)

type FilmResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Rating      int       `json:"rating"`
	Description string    `json:"description"`
	PosterURL   string    `json:"poster_url"`
	Genres      []string  `json:"genres"`
	Created     time.Time `json:"created"`
}

// FilmToResponse flattens the attached genres to their names.
func FilmToResponse(film *entity.Film) FilmResponse {
	return FilmResponse{
		ID:          film.ID.String(),
		Name:        film.Name,
		Rating:      film.Rating,
		Description: film.Description,
		PosterURL:   film.PosterURL,
		Genres:      film.GenreNames(),
		Created:     film.CreatedAt,
	}
}

func FilmsToResponse(films []*entity.Film) []FilmResponse {
	out := make([]FilmResponse, 0, len(films))
	for _, f := range films {
		out = append(out, FilmToResponse(f))
	}
	return out
}
