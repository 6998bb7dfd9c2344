package entity

import (
	"time"

	"github.com/google/uuid"
)

type Genre struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
}
