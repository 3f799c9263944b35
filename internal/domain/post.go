package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a post on a board
type Post struct {
	BaseModel
	BoardID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_posts_board_id" json:"board_id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_posts_user_id" json:"user_id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title"`
	Content   string         `gorm:"type:text" json:"content"`
	ViewCount int64          `gorm:"not null;default:0" json:"view_count"`
	IsPinned  bool           `gorm:"not null;default:false;index:idx_posts_is_pinned" json:"is_pinned"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Board     Board          `gorm:"foreignKey:BoardID" json:"board,omitempty"`
	Author    *User          `gorm:"foreignKey:UserID" json:"author,omitempty"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}
