package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. AuthorID references users.id and is
// immutable after creation; updates touch title and content only.
type PostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"index:idx_posts_created_at,sort:desc"`
	UpdatedAt time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
