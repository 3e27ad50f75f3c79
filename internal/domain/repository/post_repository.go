package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post by its unique ID, preloading the author.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// List retrieves a page of posts ordered by creation time, newest first,
	// with their authors preloaded.
	List(ctx context.Context, offset, limit int) ([]*entity.Post, error)

	// Count returns the total number of posts.
	Count(ctx context.Context) (int64, error)

	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// Update modifies the title and content of an existing post.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
