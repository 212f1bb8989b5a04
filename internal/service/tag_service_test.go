package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/quillpress/quill-api/internal/domain"
	"github.com/quillpress/quill-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTagService_ListTags(t *testing.T) {
	ctx := context.Background()

	t.Run("lists_page", func(t *testing.T) {
		tags := &MockTagStore{}
		svc, err := NewTagService(tags, nil)
		require.NoError(t, err)

		want := domain.NewPage([]domain.Tag{{ID: uuid.New(), Name: "go"}}, 1, domain.DefaultTagLimit, 0)
		tags.On("List", ctx, domain.DefaultTagLimit, 0).Return(want, nil)

		page, err := svc.ListTags(ctx, domain.PageRequest{Limit: domain.DefaultTagLimit})

		require.NoError(t, err)
		assert.Equal(t, want, page)
		tags.AssertExpectations(t)
	})

	t.Run("ignores_search_and_sort", func(t *testing.T) {
		tags := &MockTagStore{}
		svc, err := NewTagService(tags, nil)
		require.NoError(t, err)
		tags.On("List", ctx, 10, 20).Return(domain.NewPage[domain.Tag](nil, 0, 10, 20), nil)

		_, err = svc.ListTags(ctx, domain.PageRequest{Offset: 20, Limit: 10, Search: "x", OrderBy: "name"})

		require.NoError(t, err)
		tags.AssertExpectations(t)
	})

	t.Run("rejects_bad_bounds", func(t *testing.T) {
		tags := &MockTagStore{}
		svc, err := NewTagService(tags, nil)
		require.NoError(t, err)

		_, err = svc.ListTags(ctx, domain.PageRequest{Limit: 500})

		assert.ErrorIs(t, err, domain.ErrValidation)
		tags.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store_failure", func(t *testing.T) {
		tags := &MockTagStore{}
		svc, err := NewTagService(tags, nil)
		require.NoError(t, err)
		tags.On("List", ctx, 10, 0).Return(domain.Page[domain.Tag]{}, store.ErrUnavailable)

		_, err = svc.ListTags(ctx, domain.PageRequest{Limit: 10})

		assert.ErrorIs(t, err, store.ErrUnavailable)
	})
}

func TestNewTagService_NilStore(t *testing.T) {
	svc, err := NewTagService(nil, nil)

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewServiceError(t *testing.T) {
	assert.NoError(t, NewServiceError("op", "msg", nil))
	assert.Equal(t, ErrPostNotFound, NewServiceError("op", "msg", store.ErrPostNotFound))

	ve := domain.NewValidationError("limit", "must be between 1 and 100", domain.ErrOutOfRange)
	assert.Equal(t, ve, NewServiceError("op", "msg", ve))

	err := NewServiceError("list_tags", "failed to list tags", store.ErrUnavailable)
	assert.EqualError(t, err, "service list_tags failed: failed to list tags: backend unavailable")
}
