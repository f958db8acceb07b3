package adaptor

import (
	"encoding/json"
	"net/http"

	"film-catalog/internal/dto/request"
	"film-catalog/internal/usecase"
	"film-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FilmHandler struct {
	service usecase.FilmService
	log     *zap.Logger
}

func NewFilmHandler(service usecase.FilmService, log *zap.Logger) *FilmHandler {
	return &FilmHandler{
		service: service,
		log:     log.With(zap.String("handler", "film")),
	}
}

// SearchFilms handles GET /api/films/search?filmName=
func (h *FilmHandler) SearchFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.service.SearchFilms(r.Context(), r.URL.Query().Get("filmName"))
	if err != nil {
		handleServiceError(h.log, w, err, "search films")
		return
	}

	utils.ResponseSuccess(w, "Films retrieved successfully", films)
}

// ListFilms handles GET /api/films/all
func (h *FilmHandler) ListFilms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.FilmListRequest{
		PageNumber:     utils.ParseInt(query.Get("pageNumber"), 1),
		PageSize:       utils.ParseInt(query.Get("pageSize"), 0),
		Search:         query.Get("search"),
		OrderBy:        query.Get("orderBy"),
		OrderDirection: query.Get("orderDirection"),
		GenreIDs:       query["genreIds"],
	}

	films, err := h.service.ListFilms(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list films")
		return
	}

	utils.ResponsePaginated(w, "Films retrieved successfully", films.Data, films.Pagination)
}

// GetFilmsByGenreIDs handles GET /api/films/films/by-genre-ids?genreIds=
func (h *FilmHandler) GetFilmsByGenreIDs(w http.ResponseWriter, r *http.Request) {
	films, err := h.service.GetFilmsByGenreIDs(r.Context(), r.URL.Query()["genreIds"])
	if err != nil {
		handleServiceError(h.log, w, err, "get films by genre ids")
		return
	}

	utils.ResponseSuccess(w, "Films retrieved successfully", films)
}

// GetFilmByID handles GET /api/films/{filmId}
func (h *FilmHandler) GetFilmByID(w http.ResponseWriter, r *http.Request) {
	film, err := h.service.GetFilmByID(r.Context(), chi.URLParam(r, "filmId"))
	if err != nil {
		handleServiceError(h.log, w, err, "get film by ID")
		return
	}

	utils.ResponseSuccess(w, "Film retrieved successfully", film)
}

// CreateFilm handles POST /api/films
func (h *FilmHandler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	film, err := h.service.CreateFilm(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create film")
		return
	}

	utils.ResponseSuccess(w, "Film created successfully", film)
}

// UpdateFilm handles PUT /api/films/update/{filmId}
func (h *FilmHandler) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	film, err := h.service.UpdateFilm(r.Context(), chi.URLParam(r, "filmId"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update film")
		return
	}

	utils.ResponseSuccess(w, "Film updated successfully", film)
}

// DeleteFilm handles DELETE /api/films/{filmId}
func (h *FilmHandler) DeleteFilm(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteFilm(r.Context(), chi.URLParam(r, "filmId")); err != nil {
		handleServiceError(h.log, w, err, "delete film")
		return
	}

	utils.ResponseSuccess(w, "Film deleted successfully", nil)
}
