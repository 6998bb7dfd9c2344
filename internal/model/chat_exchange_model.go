package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatExchange rows are immutable inserts; there is no soft delete here, the
// retention worker hard-deletes expired rows (the persisted layout's TTL).
type ChatExchange struct {
	Id                  uuid.UUID                  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId              uuid.UUID                  `gorm:"type:uuid;not null;index:idx_chat_exchanges_user_session_created,priority:1"`
	SessionId           string                     `gorm:"type:text;not null;index:idx_chat_exchanges_user_session_created,priority:2"`
	Role                string                     `gorm:"type:text;not null"`
	Content             string                     `gorm:"type:text;not null"`
	RecommendedMovieIds datatypes.JSONSlice[string] `gorm:"column:recommended_movie_ids"`
	SearchQuery         string                     `gorm:"type:text"`
	Intent              string                     `gorm:"type:text"`
	Confidence          float64
	PromptTokens        int
	CompletionTokens    int
	TotalTokens         int
	CreatedAt           time.Time `gorm:"autoCreateTime;index:idx_chat_exchanges_user_session_created,priority:3,sort:desc;index"`
}

func (ChatExchange) TableName() string {
	return "chat_exchanges"
}
