package metrics

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type stubCounter struct {
	count int64
	err   error
}

func (s stubCounter) Count(ctx context.Context) (int64, error) {
	return s.count, s.err
}

type crashingCounter struct{}

func (crashingCounter) Count(ctx context.Context) (int64, error) {
	panic("invalid memory address or nil pointer dereference")
}

func TestBusinessMetricsCollector_Collect(t *testing.T) {
	m := getTestMetrics()
	c := NewBusinessMetricsCollector(
		stubCounter{count: 3},
		stubCounter{count: 40},
		stubCounter{count: 7},
		stubCounter{count: 12},
		m, zap.NewNop(),
	)

	c.collect()

	if value := getGaugeValue(t, m.BoardsTotal); value != 3 {
		t.Errorf("Expected boards gauge 3, got %f", value)
	}
	if value := getGaugeValue(t, m.PostsTotal); value != 40 {
		t.Errorf("Expected posts gauge 40, got %f", value)
	}
	if value := getGaugeValue(t, m.UsersTotal); value != 7 {
		t.Errorf("Expected users gauge 7, got %f", value)
	}
	if value := getGaugeValue(t, m.BookmarksTotal); value != 12 {
		t.Errorf("Expected bookmarks gauge 12, got %f", value)
	}
}

func TestBusinessMetricsCollector_Collect_KeepsStaleValueOnError(t *testing.T) {
	m := getTestMetrics()
	m.SetPostsTotal(5)
	c := NewBusinessMetricsCollector(
		stubCounter{count: 3},
		stubCounter{err: errors.New("db down")},
		stubCounter{count: 7},
		stubCounter{count: 12},
		m, zap.NewNop(),
	)

	c.collect()

	if value := getGaugeValue(t, m.PostsTotal); value != 5 {
		t.Errorf("Expected the stale gauge value kept on error, got %f", value)
	}
}

func TestBusinessMetricsCollector_Collect_SurvivesPanic(t *testing.T) {
	m := getTestMetrics()
	c := NewBusinessMetricsCollector(
		crashingCounter{},
		crashingCounter{},
		crashingCounter{},
		crashingCounter{},
		m, zap.NewNop(),
	)

	// Counting over a handle that is not up yet must not kill the process
	c.collect()
}
