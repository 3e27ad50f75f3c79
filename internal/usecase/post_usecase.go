package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// PostPageSize is the fixed number of posts per listing page.
const PostPageSize = 5

// PostInput carries the mutable fields of a post, for both create and update.
type PostInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// PostListOutput is one page of posts together with pagination metadata.
type PostListOutput struct {
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalPosts  int64          `json:"totalPosts"`
	Posts       []*entity.Post `json:"posts"`
}

// PostUsecase defines the interface for post business operations.
// Mutating operations take the authenticated user's ID and enforce ownership:
// a missing post fails with ErrPostNotFound before any ownership comparison,
// and a non-owner fails with ErrForbidden.
type PostUsecase interface {
	// Create stores a new post owned by authorID.
	Create(ctx context.Context, authorID uuid.UUID, input *PostInput) (*entity.Post, error)

	// List returns one page of posts, newest first. Pages start at 1 and
	// out-of-range values are clamped to the first page.
	List(ctx context.Context, page int) (*PostListOutput, error)

	// Get returns a single post by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// Update replaces the title and content of a post owned by userID.
	Update(ctx context.Context, userID, postID uuid.UUID, input *PostInput) (*entity.Post, error)

	// Delete removes a post owned by userID.
	Delete(ctx context.Context, userID, postID uuid.UUID) error
}
