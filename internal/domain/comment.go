package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment represents a comment on a post. Nesting is limited to two levels:
// a comment whose parent is itself a reply must be rejected by the service.
type Comment struct {
	BaseModel
	PostID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_comments_post_id" json:"post_id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_comments_user_id" json:"user_id"`
	ParentID  *uuid.UUID     `gorm:"type:uuid;index:idx_comments_parent_id" json:"parent_id"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Author    *User          `gorm:"foreignKey:UserID" json:"author,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// IsReply reports whether the comment is itself a reply
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
