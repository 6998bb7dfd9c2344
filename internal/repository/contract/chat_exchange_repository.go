package contract

import (
	"context"
	"time"

	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatExchangeRepository interface {
	Create(ctx context.Context, exchange *entity.ChatExchange) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatExchange, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// DeleteBySession purges one session; DeleteAllByUser purges every session.
	DeleteBySession(ctx context.Context, userId uuid.UUID, sessionId string) error
	DeleteAllByUser(ctx context.Context, userId uuid.UUID) error

	// DeleteOlderThan hard-deletes expired exchanges, returning rows removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// SessionSummaries groups a user's exchanges per session, newest first.
	SessionSummaries(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.ChatSessionSummary, error)

	// Stats aggregates chat usage for the admin dashboard.
	Stats(ctx context.Context) (*entity.ChatStats, error)
}
