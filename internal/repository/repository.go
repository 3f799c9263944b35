package repository

import (
	"gorm.io/gorm"

	"community-board-api/internal/database"
)

// conn resolves the handle a repository should use. Repositories wired while
// the database was still unreachable hold a nil handle; once the background
// retry loop installs a connection they pick it up here instead of requiring
// a restart.
func conn(db *gorm.DB) *gorm.DB {
	if db != nil {
		return db
	}
	return database.GetDB()
}
