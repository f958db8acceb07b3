package response

import (
	"time"

	"film-catalog/internal/data/entity"
)

type GenreResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:      genre.ID.String(),
		Name:    genre.Name,
		Created: genre.CreatedAt,
	}
}
