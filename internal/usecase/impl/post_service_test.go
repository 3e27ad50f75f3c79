package impl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostService(postRepo *fakePostRepo) *postService {
	return &postService{
		postRepo: postRepo,
		logger:   slog.Default(),
	}
}

func TestPostService_Create(t *testing.T) {
	postRepo := newFakePostRepo()
	srv := newTestPostService(postRepo)
	authorID := uuid.New()

	post, err := srv.Create(context.Background(), authorID, &usecase.PostInput{
		Title:   "First post",
		Content: "Hello world",
	})
	require.NoError(t, err)
	require.NotNil(t, post)

	assert.NotZero(t, post.ID)
	assert.Equal(t, "First post", post.Title)
	assert.Equal(t, "Hello world", post.Content)
	assert.Equal(t, authorID, post.AuthorID)
}

func TestPostService_Create_Validation(t *testing.T) {
	srv := newTestPostService(newFakePostRepo())

	tests := []struct {
		name  string
		input *usecase.PostInput
	}{
		{name: "nil input", input: nil},
		{name: "missing title", input: &usecase.PostInput{Content: "Hello"}},
		{name: "missing content", input: &usecase.PostInput{Title: "Hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := srv.Create(context.Background(), uuid.New(), tt.input)
			assert.Nil(t, post)
			assert.ErrorIs(t, err, domainerrors.ErrPostValidationFailed)
		})
	}
}

func TestPostService_Get(t *testing.T) {
	postRepo := newFakePostRepo()
	srv := newTestPostService(postRepo)

	created, err := srv.Create(context.Background(), uuid.New(), &usecase.PostInput{
		Title:   "Findable",
		Content: "Content",
	})
	require.NoError(t, err)

	post, err := srv.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, post.ID)

	_, err = srv.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_List_Pagination(t *testing.T) {
	postRepo := newFakePostRepo()
	srv := newTestPostService(postRepo)
	authorID := uuid.New()

	// Twelve posts across three pages of five.
	for i := 1; i <= 12; i++ {
		_, err := srv.Create(context.Background(), authorID, &usecase.PostInput{
			Title:   fmt.Sprintf("Post %d", i),
			Content: "Content",
		})
		require.NoError(t, err)
	}

	tests := []struct {
		name         string
		page         int
		expectedPage int
		expectedLen  int
		firstTitle   string
	}{
		{name: "first page newest first", page: 1, expectedPage: 1, expectedLen: 5, firstTitle: "Post 12"},
		{name: "middle page", page: 2, expectedPage: 2, expectedLen: 5, firstTitle: "Post 7"},
		{name: "last partial page", page: 3, expectedPage: 3, expectedLen: 2, firstTitle: "Post 2"},
		{name: "page beyond end is empty", page: 4, expectedPage: 4, expectedLen: 0},
		{name: "page below one falls back to first", page: 0, expectedPage: 1, expectedLen: 5, firstTitle: "Post 12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := srv.List(context.Background(), tt.page)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedPage, output.CurrentPage)
			assert.Equal(t, 3, output.TotalPages)
			assert.Equal(t, int64(12), output.TotalPosts)
			assert.Len(t, output.Posts, tt.expectedLen)
			if tt.expectedLen > 0 {
				assert.Equal(t, tt.firstTitle, output.Posts[0].Title)
			}
		})
	}
}

func TestPostService_List_Empty(t *testing.T) {
	srv := newTestPostService(newFakePostRepo())

	output, err := srv.List(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, output.CurrentPage)
	assert.Equal(t, 0, output.TotalPages)
	assert.Equal(t, int64(0), output.TotalPosts)
	assert.Empty(t, output.Posts)
}

func TestPostService_Update(t *testing.T) {
	postRepo := newFakePostRepo()
	srv := newTestPostService(postRepo)
	ownerID := uuid.New()

	created, err := srv.Create(context.Background(), ownerID, &usecase.PostInput{
		Title:   "Original",
		Content: "Original content",
	})
	require.NoError(t, err)

	updated, err := srv.Update(context.Background(), ownerID, created.ID, &usecase.PostInput{
		Title:   "Updated",
		Content: "Updated content",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, "Updated content", updated.Content)
	assert.Equal(t, ownerID, updated.AuthorID)
}

func TestPostService_Update_Ownership(t *testing.T) {
	postRepo := newFakePostRepo()
	srv := newTestPostService(postRepo)
	ownerID := uuid.New()

	created, err := srv.Create(context.Background(), ownerID, &usecase.PostInput{
		Title:   "Owned",
		Content: "Content",
	})
	require.NoError(t, err)

	input := &usecase.PostInput{Title: "Hijacked", Content: "Content"}

	// Someone else's post yields Forbidden.
	post, err := srv.Update(context.Background(), uuid.New(), created.ID, input)
	assert.Nil(t, post)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	// A missing post yields NotFound even for a stranger, existence is
	// checked before ownership.
	post, err = srv.Update(context.Background(), uuid.New(), uuid.New(), input)
	assert.Nil(t, post)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_Delete(t *testing.T) {
	postRepo := newFakePostRepo()
	srv := newTestPostService(postRepo)
	ownerID := uuid.New()

	created, err := srv.Create(context.Background(), ownerID, &usecase.PostInput{
		Title:   "Doomed",
		Content: "Content",
	})
	require.NoError(t, err)

	require.NoError(t, srv.Delete(context.Background(), ownerID, created.ID))

	_, err = srv.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_Delete_Ownership(t *testing.T) {
	postRepo := newFakePostRepo()
	srv := newTestPostService(postRepo)
	ownerID := uuid.New()

	created, err := srv.Create(context.Background(), ownerID, &usecase.PostInput{
		Title:   "Protected",
		Content: "Content",
	})
	require.NoError(t, err)

	err = srv.Delete(context.Background(), uuid.New(), created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = srv.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)

	// The post survives both failed attempts.
	post, err := srv.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, post.ID)
}
