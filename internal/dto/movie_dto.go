package dto

import (
	"github.com/google/uuid"
)

// MovieCard is the compact catalog projection embedded in chat replies.
type MovieCard struct {
	Id            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Poster        string    `json:"poster"`
	ReleaseYear   int       `json:"release_year"`
	Genres        []string  `json:"genres"`
	RatingAverage float64   `json:"rating_average"`
}
