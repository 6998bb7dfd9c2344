package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id"`
}

type SendMessageResponse struct {
	Response  string      `json:"response"`
	Movies    []MovieCard `json:"movies"`
	Intent    string      `json:"intent"`
	SessionId string      `json:"session_id"`
	IsGuest   bool        `json:"is_guest"`
}

type ChatExchangeResponse struct {
	Id                  uuid.UUID   `json:"id"`
	SessionId           string      `json:"session_id"`
	Role                string      `json:"role"`
	Content             string      `json:"content"`
	RecommendedMovieIds []uuid.UUID `json:"recommended_movie_ids,omitempty"`
	Intent              string      `json:"intent,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
}

type ChatHistoryResponse struct {
	SessionId string                 `json:"session_id"`
	Exchanges []ChatExchangeResponse `json:"exchanges"`
}

type ChatSessionResponse struct {
	SessionId     string    `json:"session_id"`
	LastMessage   string    `json:"last_message"`
	LastMessageAt time.Time `json:"last_message_at"`
	MessageCount  int64     `json:"message_count"`
}

type ChatSuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type ChatStatsResponse struct {
	TotalMessages      int64                 `json:"total_messages"`
	TotalUsers         int64                 `json:"total_users"`
	TotalSessions      int64                 `json:"total_sessions"`
	AvgMessagesPerUser float64               `json:"avg_messages_per_user"`
	IntentDistribution []IntentCountResponse `json:"intent_distribution"`
	TotalTokens        int64                 `json:"total_tokens"`
	AvgTokensPerReply  float64               `json:"avg_tokens_per_reply"`
	ActiveUsers        []ActiveUserResponse  `json:"active_users"`
}

type IntentCountResponse struct {
	Intent string `json:"intent"`
	Count  int64  `json:"count"`
}

type ActiveUserResponse struct {
	UserId       uuid.UUID `json:"user_id"`
	MessageCount int64     `json:"message_count"`
}
