package contract

import (
	"context"

	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/repository/specification"
)

// MovieRepository is the chat core's read-only view of the catalog.
type MovieRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Movie, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Movie, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Create exists for seeding; the chat pipeline never writes.
	Create(ctx context.Context, movie *entity.Movie) error
}
