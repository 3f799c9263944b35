package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"community-board-api/internal/database"
)

func TestRepository_PicksUpLateConnection(t *testing.T) {
	db := setupPostTestDB(t)

	// Wired while the database was still unreachable
	repo := NewPostRepository(nil)

	database.SetDB(db)
	t.Cleanup(func() { database.SetDB(nil) })

	createPost(t, db, uuid.New(), "late arrival", "content", false, time.Now())

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected the repository to use the installed connection, got count %d", count)
	}
}
