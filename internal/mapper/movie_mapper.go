package mapper

import (
	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/model"

	"gorm.io/datatypes"
)

type MovieMapper struct{}

func NewMovieMapper() *MovieMapper {
	return &MovieMapper{}
}

func (m *MovieMapper) ToEntity(mv *model.Movie) *entity.Movie {
	if mv == nil {
		return nil
	}

	return &entity.Movie{
		Id:            mv.Id,
		Title:         mv.Title,
		Slug:          mv.Slug,
		Overview:      mv.Overview,
		Poster:        mv.Poster,
		ReleaseDate:   mv.ReleaseDate,
		Genres:        []string(mv.Genres),
		RatingAverage: mv.RatingAverage,
		RatingCount:   mv.RatingCount,
		Views:         mv.Views,
		CreatedAt:     mv.CreatedAt,
	}
}

func (m *MovieMapper) ToModel(mv *entity.Movie) *model.Movie {
	if mv == nil {
		return nil
	}

	return &model.Movie{
		Id:            mv.Id,
		Title:         mv.Title,
		Slug:          mv.Slug,
		Overview:      mv.Overview,
		Poster:        mv.Poster,
		ReleaseDate:   mv.ReleaseDate,
		Genres:        datatypes.NewJSONSlice(mv.Genres),
		RatingAverage: mv.RatingAverage,
		RatingCount:   mv.RatingCount,
		Views:         mv.Views,
		CreatedAt:     mv.CreatedAt,
	}
}
