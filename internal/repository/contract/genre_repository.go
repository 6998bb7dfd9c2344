package contract

import (
	"context"

	"mozi-streaming-be/internal/entity"
)

type GenreRepository interface {
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	Count(ctx context.Context) (int64, error)
	CreateBulk(ctx context.Context, genres []*entity.Genre) error
}
