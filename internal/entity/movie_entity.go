package entity

import (
	"time"

	"github.com/google/uuid"
)

// Movie is the read-only catalog projection the chat core consumes. The chat
// subsystem never mutates catalog entities.
type Movie struct {
	Id            uuid.UUID
	Title         string
	Slug          string
	Overview      string
	Poster        string
	ReleaseDate   time.Time
	Genres        []string
	RatingAverage float64
	RatingCount   int
	Views         int64
	CreatedAt     time.Time
}

// ReleaseYear returns the movie's release year for prompt fragments.
func (m *Movie) ReleaseYear() int {
	return m.ReleaseDate.Year()
}
