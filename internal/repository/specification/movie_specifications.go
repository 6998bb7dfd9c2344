package specification

import (
	"gorm.io/gorm"
)

// TitleMatches performs a case-insensitive substring match on movie titles.
type TitleMatches struct {
	Substring string
}

func (s TitleMatches) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ILIKE ?", "%"+s.Substring+"%")
}

// HasAnyGenre keeps movies tagged with at least one of the given genres.
// Genres are stored as a JSON array of strings.
type HasAnyGenre struct {
	Genres []string
}

func (s HasAnyGenre) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Genres) == 0 {
		return db
	}

	// jsonb_exists instead of the ? operator, which collides with the
	// driver's placeholder syntax.
	values := make([]interface{}, 0, len(s.Genres))
	query := ""
	for i, g := range s.Genres {
		if i > 0 {
			query += " OR "
		}
		query += "jsonb_exists(genres::jsonb, ?)"
		values = append(values, g)
	}
	return db.Where(query, values...)
}
