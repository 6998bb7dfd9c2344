package unitofwork

import (
	"context"

	"mozi-streaming-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	MovieRepository() contract.MovieRepository
	GenreRepository() contract.GenreRepository
	ChatExchangeRepository() contract.ChatExchangeRepository
}
