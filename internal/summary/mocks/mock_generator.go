package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Summarize(ctx context.Context, title string) (string, error) {
	args := m.Called(ctx, title)
	return args.String(0), args.Error(1)
}
