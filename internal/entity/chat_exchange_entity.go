package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenUsage mirrors the upstream model's usage metadata.
type TokenUsage struct {
	Prompt     int
	Completion int
	Total      int
}

// ChatExchange is one persisted user-or-assistant message within a session.
// Only authenticated turns are persisted; the orchestrator is the sole writer.
type ChatExchange struct {
	Id                  uuid.UUID
	UserId              uuid.UUID
	SessionId           string
	Role                string
	Content             string
	RecommendedMovieIds []uuid.UUID
	SearchQuery         string
	Intent              string
	Confidence          float64
	Tokens              TokenUsage
	CreatedAt           time.Time
}

// ChatSessionSummary is the grouped per-session projection for the session
// list endpoint.
type ChatSessionSummary struct {
	SessionId     string
	LastMessage   string
	LastMessageAt time.Time
	MessageCount  int64
}

// ChatStats aggregates usage numbers for the admin dashboard.
type ChatStats struct {
	TotalMessages      int64
	TotalUsers         int64
	TotalSessions      int64
	IntentDistribution []IntentCount
	TotalTokens        int64
	AvgTokens          float64
	ActiveUsers        []UserMessageCount
}

type IntentCount struct {
	Intent string
	Count  int64
}

type UserMessageCount struct {
	UserId       uuid.UUID
	MessageCount int64
}
