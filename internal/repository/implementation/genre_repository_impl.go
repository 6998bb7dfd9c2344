package implementation

import (
	"context"

	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/model"
	"mozi-streaming-be/internal/repository/contract"

	"gorm.io/gorm"
)

type GenreRepositoryImpl struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) contract.GenreRepository {
	return &GenreRepositoryImpl{db: db}
}

func (r *GenreRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	var models []*model.Genre
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	genres := make([]*entity.Genre, len(models))
	for i, m := range models {
		genres[i] = &entity.Genre{Id: m.Id, Name: m.Name, CreatedAt: m.CreatedAt}
	}
	return genres, nil
}

func (r *GenreRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Genre{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GenreRepositoryImpl) CreateBulk(ctx context.Context, genres []*entity.Genre) error {
	if len(genres) == 0 {
		return nil
	}
	models := make([]*model.Genre, len(genres))
	for i, g := range genres {
		models[i] = &model.Genre{Id: g.Id, Name: g.Name, CreatedAt: g.CreatedAt}
	}
	return r.db.WithContext(ctx).Create(models).Error
}
