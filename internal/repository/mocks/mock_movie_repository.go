package mocks

import (
	"context"

	"movieapi/internal/model"
	"movieapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockMovieRepository struct {
	mock.Mock
}

var _ repository.MovieRepository = (*MockMovieRepository)(nil)

func (m *MockMovieRepository) Find(ctx context.Context, f repository.MovieFilter) ([]model.Movie, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Movie), args.Error(1)
}

func (m *MockMovieRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
