package domain

import "gorm.io/gorm"

// AccessPolicy controls who may read from or write to a board
type AccessPolicy string

const (
	AccessAll    AccessPolicy = "all"
	AccessMember AccessPolicy = "member"
	AccessAdmin  AccessPolicy = "admin"
)

// IsValid reports whether the policy is one of the known values
func (p AccessPolicy) IsValid() bool {
	switch p {
	case AccessAll, AccessMember, AccessAdmin:
		return true
	default:
		return false
	}
}

// Board represents a topical forum with its own access policies
type Board struct {
	BaseModel
	Slug         string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_boards_slug" json:"slug"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	Icon         string         `gorm:"type:varchar(255)" json:"icon"`
	CanRead      AccessPolicy   `gorm:"type:varchar(20);not null;default:'all'" json:"can_read"`
	CanWrite     AccessPolicy   `gorm:"type:varchar(20);not null;default:'member'" json:"can_write"`
	DisplayOrder int            `gorm:"not null;default:0;index:idx_boards_display_order" json:"display_order"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}

// CanReadBy reports whether the user may read posts on this board.
// A nil user is an anonymous visitor. Unknown policies fail closed.
func (b *Board) CanReadBy(user *User) bool {
	switch b.CanRead {
	case AccessAll:
		return true
	case AccessMember:
		return user != nil
	case AccessAdmin:
		return user != nil && user.IsAdmin
	default:
		return false
	}
}

// CanWriteBy reports whether the user may create posts on this board.
// Writing always requires a logged-in user, even under the "all" policy.
func (b *Board) CanWriteBy(user *User) bool {
	if user == nil {
		return false
	}
	switch b.CanWrite {
	case AccessAll, AccessMember:
		return true
	case AccessAdmin:
		return user.IsAdmin
	default:
		return false
	}
}
