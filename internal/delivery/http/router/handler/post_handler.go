package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/delivery/http/response"
	"blog/internal/domain/entity"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// postResponse is the outward-facing shape of a post.
type postResponse struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	AuthorID  uuid.UUID     `json:"authorId"`
	Author    *userResponse `json:"author,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// postListResponse is one page of posts plus pagination metadata.
type postListResponse struct {
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalPosts  int64          `json:"totalPosts"`
	Posts       []postResponse `json:"posts"`
}

// PostHandler holds dependencies for post handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles post creation for the authenticated user.
func (h *PostHandler) Create(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c.Request().Context())
	if !ok {
		return response.Unauthorized(c, "TOKEN_MISSING", "Unauthorized: Token missing.")
	}

	var input usecase.PostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.Create(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPostResponse(post), "Post created successfully.")
}

// List handles the public, paginated post listing.
// A missing or unparseable page parameter falls back to the first page.
func (h *PostHandler) List(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	output, err := h.uc.List(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	posts := make([]postResponse, 0, len(output.Posts))
	for _, post := range output.Posts {
		posts = append(posts, toPostResponse(post))
	}

	return response.Success(c, http.StatusOK, postListResponse{
		CurrentPage: output.CurrentPage,
		TotalPages:  output.TotalPages,
		TotalPosts:  output.TotalPosts,
		Posts:       posts,
	}, "")
}

// Get handles the public single-post lookup.
func (h *PostHandler) Get(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "POST_NOT_FOUND", "Post not found.")
	}

	post, err := h.uc.Get(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post), "")
}

// Update handles post mutation by its owner.
func (h *PostHandler) Update(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c.Request().Context())
	if !ok {
		return response.Unauthorized(c, "TOKEN_MISSING", "Unauthorized: Token missing.")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "POST_NOT_FOUND", "Post not found.")
	}

	var input usecase.PostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.Update(c.Request().Context(), userID, postID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post), "Post updated successfully.")
}

// Delete handles post removal by its owner.
func (h *PostHandler) Delete(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c.Request().Context())
	if !ok {
		return response.Unauthorized(c, "TOKEN_MISSING", "Unauthorized: Token missing.")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "POST_NOT_FOUND", "Post not found.")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, postID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted successfully.")
}

func toPostResponse(post *entity.Post) postResponse {
	resp := postResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}

	if post.Author != nil {
		resp.Author = &userResponse{
			ID:    post.Author.ID,
			Email: post.Author.Email,
		}
	}

	return resp
}
