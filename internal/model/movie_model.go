package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Movie struct {
	Id            uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title         string                      `gorm:"type:text;not null;index"`
	Slug          string                      `gorm:"type:text;uniqueIndex"`
	Overview      string                      `gorm:"type:text"`
	Poster        string                      `gorm:"type:text"`
	ReleaseDate   time.Time                   `gorm:"not null"`
	Genres        datatypes.JSONSlice[string] `gorm:"column:genres"`
	RatingAverage float64                     `gorm:"index"`
	RatingCount   int
	Views         int64
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Movie) TableName() string {
	return "movies"
}
