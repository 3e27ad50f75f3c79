package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog entry. AuthorID records the user who created it, is set once
// at creation and never changes; only the author may mutate the post.
type Post struct {
	ID        uuid.UUID // Unique identifier, assigned by the store on creation.
	Title     string    // Post title, required.
	Content   string    // Post body, required.
	AuthorID  uuid.UUID // Owner of the post, immutable after creation.
	Author    *User     // Preloaded author, nil unless the query asked for it.
	CreatedAt time.Time // Timestamp of when this post was created.
	UpdatedAt time.Time // Timestamp of the last modification to this post.
}
