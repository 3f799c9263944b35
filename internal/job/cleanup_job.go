package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"community-board-api/internal/repository"
)

// CleanupJob sweeps bookmarks whose post has been deleted. Listings already
// hide them; the sweep keeps the bookmarks table from accumulating dead rows.
type CleanupJob struct {
	bookmarkRepo repository.BookmarkRepository
	logger       *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(bookmarkRepo repository.BookmarkRepository, logger *zap.Logger) *CleanupJob {
	return &CleanupJob{
		bookmarkRepo: bookmarkRepo,
		logger:       logger,
	}
}

// Run executes one sweep. Implements cron.Job.
func (j *CleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	j.logger.Info("Starting orphaned bookmark cleanup")

	removed, err := j.bookmarkRepo.DeleteOrphaned(ctx)
	if err != nil {
		j.logger.Error("Failed to sweep orphaned bookmarks", zap.Error(err))
		return
	}

	if removed == 0 {
		j.logger.Info("No orphaned bookmarks found")
		return
	}
	j.logger.Info("Orphaned bookmarks removed", zap.Int64("count", removed))
}
