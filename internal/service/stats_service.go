package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/models"
	"github.com/askiep/askiep-api/internal/stats"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
)

// StatsService computes the dashboard aggregates. Results are optionally
// cached in Redis; a cache failure always degrades to the store.
type StatsService struct {
	compliance complianceRepository
	progress   progressRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	metrics    *MetricsService
	logger     *zap.Logger
}

// NewStatsService constructs the service. cache may be nil.
func NewStatsService(compliance complianceRepository, progress progressRepository, cache *redis.Client, cacheTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &StatsService{
		compliance: compliance,
		progress:   progress,
		cache:      cache,
		cacheTTL:   cacheTTL,
		metrics:    metrics,
		logger:     logger,
	}
}

func statsCacheKey(childID string) string {
	return fmt.Sprintf("askiep:stats:%s", childID)
}

// Stats returns the compliance rate and mastery index for a profile.
func (s *StatsService) Stats(ctx context.Context, childID string) (*models.ChildStats, error) {
	if cached := s.fromCache(ctx, childID); cached != nil {
		return cached, nil
	}

	logs, err := s.compliance.ListByChild(ctx, childID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list compliance logs")
	}
	goals, err := s.progress.ListByChild(ctx, childID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list goal progress")
	}

	result := &models.ChildStats{
		ChildID:        childID,
		ComplianceRate: stats.ComplianceRate(logs),
		MasteryIndex:   stats.MasteryIndex(goals),
		TotalLogs:      len(logs),
		TotalGoals:     len(goals),
		GeneratedAt:    time.Now().UTC(),
	}
	for _, log := range logs {
		switch log.Status {
		case models.ComplianceReceived:
			result.Received++
		case models.CompliancePartial:
			result.Partial++
		case models.ComplianceMissed:
			result.Missed++
		}
	}
	for _, goal := range goals {
		switch goal.Status {
		case models.ProgressMastered:
			result.Mastered++
		case models.ProgressProgressing:
			result.Progressing++
		}
	}

	s.toCache(ctx, childID, result)
	return result, nil
}

// Invalidate drops the cached aggregate after a write.
func (s *StatsService) Invalidate(ctx context.Context, childID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, statsCacheKey(childID)).Err(); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.String("child_id", childID), zap.Error(err))
	}
}

func (s *StatsService) fromCache(ctx context.Context, childID string) *models.ChildStats {
	if s.cache == nil {
		return nil
	}
	start := time.Now()
	raw, err := s.cache.Get(ctx, statsCacheKey(childID)).Bytes()
	hit := err == nil
	s.metrics.RecordCacheOperation(hit, time.Since(start))
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("stats cache read failed", zap.Error(err))
		}
		return nil
	}
	var cached models.ChildStats
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil
	}
	return &cached
}

func (s *StatsService) toCache(ctx context.Context, childID string, result *models.ChildStats) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	start := time.Now()
	if err := s.cache.Set(ctx, statsCacheKey(childID), raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("stats cache write failed", zap.Error(err))
	}
	s.metrics.ObserveCacheWrite(time.Since(start))
}
