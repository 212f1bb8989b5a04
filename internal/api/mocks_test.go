package api

import (
	"context"

	"github.com/quillpress/quill-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockPostService mocks the service.PostService interface
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Post], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Page[domain.Post]), args.Error(1)
}

func (m *MockPostService) ListPostsByTag(
	ctx context.Context,
	tag string,
	req domain.PageRequest,
) (domain.Page[domain.Post], error) {
	args := m.Called(ctx, tag, req)
	return args.Get(0).(domain.Page[domain.Post]), args.Error(1)
}

func (m *MockPostService) RandomPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, username, slug string) (*domain.Post, error) {
	args := m.Called(ctx, username, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

// MockTagService mocks the service.TagService interface
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) ListTags(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Tag], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Page[domain.Tag]), args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}
