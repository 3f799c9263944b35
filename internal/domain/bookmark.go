package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bookmark marks a post as saved by a user. At most one bookmark may exist
// per (user, post) pair; bookmarks are removed physically, not soft-deleted.
type Bookmark struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_bookmarks_user_post,priority:1;index:idx_bookmarks_user_id" json:"user_id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_bookmarks_user_post,priority:2" json:"post_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	Post      *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

// TableName specifies the table name for Bookmark
func (Bookmark) TableName() string {
	return "bookmarks"
}

// BeforeCreate assigns a UUID when none was provided
func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
