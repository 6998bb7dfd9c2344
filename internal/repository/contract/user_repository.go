package contract

import (
	"context"

	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)

	// FindRecentWatches returns watch-history rows joined with movie titles and
	// genres, most recent first.
	FindRecentWatches(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.WatchRecord, error)

	// FindFavoriteMovies returns the user's favorites joined with movie genres.
	FindFavoriteMovies(ctx context.Context, userId uuid.UUID) ([]*entity.FavoriteMovie, error)
}
