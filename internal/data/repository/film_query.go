package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FilmFilter narrows the film set. Zero values mean no filter.
type FilmFilter struct {
	Search   string
	GenreIDs []uuid.UUID
}

// FilmSort names an allow-listed ORDER BY. An empty Column means unordered.
type FilmSort struct {
	Column string
	Desc   bool
}

// FilmQuery is one page of a filtered, optionally ordered film listing.
type FilmQuery struct {
	Filter FilmFilter
	Sort   FilmSort
	Limit  int
	Offset int
}

var filmSortColumns = map[string]string{
	"name":        "f.name",
	"rating":      "f.rating",
	"description": "f.description",
	"posterurl":   "f.poster_url",
	"poster_url":  "f.poster_url",
	"created":     "f.created_at",
	"created_at":  "f.created_at",
	"createdat":   "f.created_at",
	"id":          "f.id",
}

// ResolveFilmSort maps a client sort key to a column. Unknown keys give an
// unordered sort. Only "desc" (any case) sorts descending.
func ResolveFilmSort(orderBy, direction string) FilmSort {
	column, ok := filmSortColumns[strings.ToLower(strings.TrimSpace(orderBy))]
	if !ok {
		return FilmSort{}
	}
	return FilmSort{
		Column: column,
		Desc:   strings.EqualFold(strings.TrimSpace(direction), "desc"),
	}
}

// escapeLike escapes LIKE wildcards so the term matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// buildFilmWhere renders the WHERE clause for filter starting at placeholder
// $argStart and returns it with its arguments.
func buildFilmWhere(filter FilmFilter, argStart int) (string, []any) {
	conditions := []string{"f.deleted_at IS NULL"}
	var args []any
	n := argStart

	if search := strings.TrimSpace(filter.Search); search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(f.name ILIKE $%d OR f.description ILIKE $%d OR f.poster_url ILIKE $%d)", n, n, n))
		args = append(args, "%"+escapeLike(search)+"%")
		n++
	}

	if len(filter.GenreIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM film_genres fg WHERE fg.film_id = f.id AND fg.genre_id = ANY($%d::uuid[]))", n))
		args = append(args, uuidStrings(filter.GenreIDs))
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func buildFilmCountQuery(filter FilmFilter) (string, []any) {
	where, args := buildFilmWhere(filter, 1)
	return "SELECT COUNT(*) FROM films f" + where, args
}

func buildFilmSelectQuery(q FilmQuery) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT f.id, f.name, f.rating, f.description, f.poster_url, f.created_at, f.updated_at FROM films f`)

	where, args := buildFilmWhere(q.Filter, 1)
	sb.WriteString(where)

	if q.Sort.Column != "" {
		dir := "ASC"
		if q.Sort.Desc {
			dir = "DESC"
		}
		fmt.Fprintf(&sb, " ORDER BY %s %s", q.Sort.Column, dir)
	}

	if q.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT $%d", len(args)+1)
		args = append(args, q.Limit)
	}
	if q.Offset > 0 {
		fmt.Fprintf(&sb, " OFFSET $%d", len(args)+1)
		args = append(args, q.Offset)
	}

	return sb.String(), args
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
