package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a community member. The ID is the subject issued by the
// external identity provider, so no auto-generated UUID default here.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	Username  string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_users_username" json:"username"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
