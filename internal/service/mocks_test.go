package service

import (
	"context"

	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/query"
	"github.com/stretchr/testify/mock"
)

// MockPostStore mocks the store.PostStore interface
type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) List(
	ctx context.Context,
	filter query.PostFilter,
	sort query.Sort,
	limit, offset int,
) (domain.Page[domain.Post], error) {
	args := m.Called(ctx, filter, sort, limit, offset)
	return args.Get(0).(domain.Page[domain.Post]), args.Error(1)
}

func (m *MockPostStore) Random(ctx context.Context, limit int) ([]domain.Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *MockPostStore) FindByAuthorAndSlug(ctx context.Context, username, slug string) (*domain.Post, error) {
	args := m.Called(ctx, username, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

// MockTagStore mocks the store.TagStore interface
type MockTagStore struct {
	mock.Mock
}

func (m *MockTagStore) List(ctx context.Context, limit, offset int) (domain.Page[domain.Tag], error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).(domain.Page[domain.Tag]), args.Error(1)
}
