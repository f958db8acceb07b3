package request

type GenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

type FilmCreateRequest struct {
	Name        string         `json:"name" validate:"required,min=1,max=200"`
	Rating      int            `json:"rating" validate:"gte=0"`
	Description string         `json:"description" validate:"max=5000"`
	PosterURL   string         `json:"poster_url" validate:"omitempty,url"`
	Genres      []GenreRequest `json:"genres" validate:"dive"`
}

// FilmUpdateRequest replaces every scalar field. A nil Genres keeps the
// current genre set; a non-nil one (even empty) replaces it.
type FilmUpdateRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Rating      int             `json:"rating" validate:"gte=0"`
	Description string          `json:"description" validate:"max=5000"`
	PosterURL   string          `json:"poster_url" validate:"omitempty,url"`
	Genres      *[]GenreRequest `json:"genres,omitempty" validate:"omitempty,dive"`
}

// FilmListRequest carries the raw listing parameters.
type FilmListRequest struct {
	PageNumber     int
	PageSize       int
	Search         string
	OrderBy        string
	OrderDirection string
	GenreIDs       []string
}
