package implementation

import (
	"context"
	"errors"

	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/mapper"
	"mozi-streaming-be/internal/model"
	"mozi-streaming-be/internal/repository/contract"
	"mozi-streaming-be/internal/repository/specification"

	"gorm.io/gorm"
)

type MovieRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MovieMapper
}

func NewMovieRepository(db *gorm.DB) contract.MovieRepository {
	return &MovieRepositoryImpl{
		db:     db,
		mapper: mapper.NewMovieMapper(),
	}
}

func (r *MovieRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MovieRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Movie, error) {
	var m model.Movie
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MovieRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Movie, error) {
	var models []*model.Movie
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Movie, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *MovieRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Movie{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MovieRepositoryImpl) Create(ctx context.Context, movie *entity.Movie) error {
	m := r.mapper.ToModel(movie)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*movie = *r.mapper.ToEntity(m)
	return nil
}
