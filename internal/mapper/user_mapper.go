package mapper

import (
	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:             u.Id,
		Username:       u.Username,
		FullName:       u.FullName,
		Email:          u.Email,
		Plan:           u.Plan,
		FavoriteGenres: []string(u.FavoriteGenres),
		CreatedAt:      u.CreatedAt,
	}
}
