package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// EntityCounter reports the number of live rows for one entity
type EntityCounter interface {
	Count(ctx context.Context) (int64, error)
}

// BusinessMetricsCollector refreshes business gauges periodically
type BusinessMetricsCollector struct {
	boardRepo    EntityCounter
	postRepo     EntityCounter
	userRepo     EntityCounter
	bookmarkRepo EntityCounter
	metrics      *Metrics
	logger       *zap.Logger
	ticker       *time.Ticker
	done         chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(
	boardRepo EntityCounter,
	postRepo EntityCounter,
	userRepo EntityCounter,
	bookmarkRepo EntityCounter,
	metrics *Metrics,
	logger *zap.Logger,
) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		boardRepo:    boardRepo,
		postRepo:     postRepo,
		userRepo:     userRepo,
		bookmarkRepo: bookmarkRepo,
		metrics:      metrics,
		logger:       logger,
		ticker:       time.NewTicker(60 * time.Second),
		done:         make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	close(c.done)
}

func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if count, err := c.boardRepo.Count(ctx); err != nil {
		c.logger.Warn("Failed to collect board count", zap.Error(err))
	} else {
		c.metrics.SetBoardsTotal(count)
	}

	if count, err := c.postRepo.Count(ctx); err != nil {
		c.logger.Warn("Failed to collect post count", zap.Error(err))
	} else {
		c.metrics.SetPostsTotal(count)
	}

	if count, err := c.userRepo.Count(ctx); err != nil {
		c.logger.Warn("Failed to collect user count", zap.Error(err))
	} else {
		c.metrics.SetUsersTotal(count)
	}

	if count, err := c.bookmarkRepo.Count(ctx); err != nil {
		c.logger.Warn("Failed to collect bookmark count", zap.Error(err))
	} else {
		c.metrics.SetBookmarksTotal(count)
	}
}
