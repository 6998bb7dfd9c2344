package model

import (
	"time"

	"github.com/google/uuid"
)

type Genre struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:text;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Genre) TableName() string {
	return "genres"
}
