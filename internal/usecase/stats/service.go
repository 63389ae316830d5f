package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/metrics"
	ucerrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
)

// Service computes stats and caches them. Meetings are append-only, so the
// record count and the current day fully identify a result.
type Service struct {
	repo    repositories.MeetingRepository
	cache   cache.Cache
	ttl     time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService creates a stats service
func NewService(repo repositories.MeetingRepository, c cache.Cache, ttl time.Duration, logger *zap.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:    repo,
		cache:   c,
		ttl:     ttl,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// CacheKey identifies a stats result
func CacheKey(now time.Time, count int64) string {
	return fmt.Sprintf("stats:%s:%d", now.UTC().Format("2006-01-02"), count)
}

// Get returns the current stats. Cache failures are logged and bypassed.
func (s *Service) Get(ctx context.Context) (*Stats, error) {
	now := s.now()

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrPersistFailed, err)
	}
	key := CacheKey(now, count)

	if s.cache != nil {
		if cached, ok := s.lookup(ctx, key); ok {
			s.metrics.ObserveStatsCache(true)
			return cached, nil
		}
		s.metrics.ObserveStatsCache(false)
	}

	meetings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrPersistFailed, err)
	}
	result := Compute(meetings, now)

	if s.cache != nil {
		if b, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, string(b), s.ttl); err != nil {
				s.logger.Warn("stats.cache.set_failed", zap.String("key", key), zap.Error(err))
			}
		}
	}

	return &result, nil
}

func (s *Service) lookup(ctx context.Context, key string) (*Stats, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("stats.cache.get_failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var cached Stats
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, false
	}
	return &cached, true
}
