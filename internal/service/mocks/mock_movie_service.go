package mocks

import (
	"context"

	"movieapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) List(ctx context.Context) ([]model.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Movie), args.Error(1)
}

func (m *MockMovieService) ListByYear(ctx context.Context, year string) ([]model.Movie, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Movie), args.Error(1)
}

func (m *MockMovieService) GetWithSummary(ctx context.Context, title string) ([]model.Movie, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Movie), args.Error(1)
}
