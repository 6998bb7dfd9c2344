package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id             uuid.UUID
	Username       string
	FullName       string
	Email          string
	Plan           string // free | basic | premium | vip
	FavoriteGenres []string
	CreatedAt      time.Time
}

// DisplayName prefers the full name, then the username.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// WatchRecord is a watch-history row joined with the movie it refers to.
type WatchRecord struct {
	MovieId   uuid.UUID
	Title     string
	Genres    []string
	WatchedAt time.Time
}

// FavoriteMovie is a favorites row joined with the movie's genre list.
type FavoriteMovie struct {
	MovieId uuid.UUID
	Title   string
	Genres  []string
}
