package entity

type Film struct {
	Base
	Name        string   `db:"name"`
	Rating      int      `db:"rating"`
	Description string   `db:"description"`
	PosterURL   string   `db:"poster_url"`
	Genres      []*Genre `db:"-"`
}

// GenreNames returns the names of the attached genres in order.
func (f *Film) GenreNames() []string {
	names := make([]string, 0, len(f.Genres))
	for _, g := range f.Genres {
		names = append(names, g.Name)
	}
	return names
}
