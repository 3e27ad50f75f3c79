package impl

import (
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	Logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new post owned by authorID.
func (srv *postService) Create(ctx context.Context, authorID uuid.UUID, input *usecase.PostInput) (*entity.Post, error) {
	if input == nil || input.Title == "" || input.Content == "" {
		return nil, errors.Wrap(domainerrors.ErrPostValidationFailed, "post creation rejected")
	}

	post := &entity.Post{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: authorID,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Any("authorID", authorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Debug("Post created", slog.Any("postID", post.ID), slog.Any("authorID", authorID))

	return post, nil
}

// List returns one page of posts, newest first, with pagination metadata.
func (srv *postService) List(ctx context.Context, page int) (*usecase.PostListOutput, error) {
	if page < 1 {
		page = 1
	}

	total, err := srv.postRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count posts")
	}

	posts, err := srv.postRepo.List(ctx, (page-1)*usecase.PostPageSize, usecase.PostPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	totalPages := int((total + usecase.PostPageSize - 1) / usecase.PostPageSize)

	return &usecase.PostListOutput{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalPosts:  total,
		Posts:       posts,
	}, nil
}

// Get returns a single post by ID.
func (srv *postService) Get(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "post lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// Update replaces the title and content of a post owned by userID.
func (srv *postService) Update(ctx context.Context, userID, postID uuid.UUID, input *usecase.PostInput) (*entity.Post, error) {
	if input == nil || input.Title == "" || input.Content == "" {
		return nil, errors.Wrap(domainerrors.ErrPostValidationFailed, "post update rejected")
	}

	post, err := srv.loadOwnedPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content

	if err := srv.postRepo.Update(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to update post", slog.Any("postID", postID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update post")
	}

	srv.log(ctx).Debug("Post updated", slog.Any("postID", postID), slog.Any("userID", userID))

	return post, nil
}

// Delete removes a post owned by userID.
func (srv *postService) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	if _, err := srv.loadOwnedPost(ctx, userID, postID); err != nil {
		return err
	}

	if err := srv.postRepo.Delete(ctx, postID); err != nil {
		srv.log(ctx).Error("Failed to delete post", slog.Any("postID", postID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).Debug("Post deleted", slog.Any("postID", postID), slog.Any("userID", userID))

	return nil
}

// loadOwnedPost fetches a post and enforces ownership. Existence is checked
// first: a missing post always yields ErrPostNotFound, and only an existing
// post owned by someone else yields ErrForbidden.
func (srv *postService) loadOwnedPost(ctx context.Context, userID, postID uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "post lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	if post.AuthorID != userID {
		srv.log(ctx).Warn("Ownership violation", slog.Any("postID", postID), slog.Any("userID", userID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "post does not belong to user")
	}

	return post, nil
}
