package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/smart-timetable-api/internal/dto"
)

type statsProvider interface {
	WeekStats(week int) dto.WeekStats
	SemesterStats() dto.SemesterStats
}

type revisionSource interface {
	Revision() int64
}

// DashboardService serves the stats views, optionally through the cache.
// Cache keys embed the store revision, so any mutation implicitly starts a
// fresh key space and stale entries just expire.
type DashboardService struct {
	stats    statsProvider
	revision revisionSource
	cache    *CacheService
	logger   *zap.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(stats statsProvider, revision revisionSource, cache *CacheService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{stats: stats, revision: revision, cache: cache, logger: logger}
}

// WeekStats returns the week view and whether it came from cache.
func (s *DashboardService) WeekStats(ctx context.Context, week int) (dto.WeekStats, bool, error) {
	key := fmt.Sprintf("dashboard:week:%d:rev:%d", week, s.revision.Revision())

	var cached dto.WeekStats
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	stats := s.stats.WeekStats(week)
	if err := s.cache.Set(ctx, key, stats, 0); err != nil {
		s.logger.Debug("dashboard cache write failed", zap.Error(err))
	}
	return stats, false, nil
}

// SemesterStats returns the semester view and whether it came from cache.
func (s *DashboardService) SemesterStats(ctx context.Context) (dto.SemesterStats, bool, error) {
	key := fmt.Sprintf("dashboard:semester:rev:%d", s.revision.Revision())

	var cached dto.SemesterStats
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	stats := s.stats.SemesterStats()
	if err := s.cache.Set(ctx, key, stats, 0); err != nil {
		s.logger.Debug("dashboard cache write failed", zap.Error(err))
	}
	return stats, false, nil
}
