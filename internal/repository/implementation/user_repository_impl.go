package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/mapper"
	"mozi-streaming-be/internal/model"
	"mozi-streaming-be/internal/repository/contract"
	"mozi-streaming-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindRecentWatches(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.WatchRecord, error) {
	type row struct {
		MovieId   uuid.UUID
		Title     string
		Genres    []byte
		WatchedAt time.Time
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Table("watch_histories AS wh").
		Select("wh.movie_id, m.title, m.genres, wh.watched_at").
		Joins("JOIN movies m ON m.id = wh.movie_id").
		Where("wh.user_id = ?", userId).
		Order("wh.watched_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]*entity.WatchRecord, len(rows))
	for i, rw := range rows {
		records[i] = &entity.WatchRecord{
			MovieId:   rw.MovieId,
			Title:     rw.Title,
			Genres:    decodeGenres(rw.Genres),
			WatchedAt: rw.WatchedAt,
		}
	}
	return records, nil
}

func (r *UserRepositoryImpl) FindFavoriteMovies(ctx context.Context, userId uuid.UUID) ([]*entity.FavoriteMovie, error) {
	type row struct {
		MovieId uuid.UUID
		Title   string
		Genres  []byte
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Table("favorites AS f").
		Select("f.movie_id, m.title, m.genres").
		Joins("JOIN movies m ON m.id = f.movie_id").
		Where("f.user_id = ?", userId).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	favorites := make([]*entity.FavoriteMovie, len(rows))
	for i, rw := range rows {
		favorites[i] = &entity.FavoriteMovie{
			MovieId: rw.MovieId,
			Title:   rw.Title,
			Genres:  decodeGenres(rw.Genres),
		}
	}
	return favorites, nil
}

func decodeGenres(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var genres []string
	if err := json.Unmarshal(raw, &genres); err != nil {
		return nil
	}
	return genres
}
