package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	Id             uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username       string                      `gorm:"type:text;uniqueIndex;not null"`
	FullName       string                      `gorm:"type:text"`
	Email          string                      `gorm:"type:text;uniqueIndex;not null"`
	Plan           string                      `gorm:"type:text;not null;default:free"`
	FavoriteGenres datatypes.JSONSlice[string] `gorm:"column:favorite_genres"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt      time.Time                   `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type WatchHistory struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	MovieId   uuid.UUID `gorm:"type:uuid;not null"`
	WatchedAt time.Time `gorm:"not null;index"`
}

func (WatchHistory) TableName() string {
	return "watch_histories"
}

type Favorite struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	MovieId   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Favorite) TableName() string {
	return "favorites"
}
