package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
)

type logisticsAggregator interface {
	CountByRecipient(ctx context.Context) ([]models.GroupCount, error)
	CountByModule(ctx context.Context) ([]models.GroupCount, error)
	CountByStatus(ctx context.Context) ([]models.GroupCount, error)
}

// DashboardService serves the chart aggregations. All projections are folds
// over the current module request snapshot, computed fresh per call unless a
// still-valid cached copy exists.
type DashboardService struct {
	repo   logisticsAggregator
	cache  *CacheService
	logger *zap.Logger
	ttl    time.Duration
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(repo logisticsAggregator, cache *CacheService, logger *zap.Logger, ttl time.Duration) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &DashboardService{repo: repo, cache: cache, logger: logger, ttl: ttl}
}

// LogisticsSummary counts module requests per recipient.
func (s *DashboardService) LogisticsSummary(ctx context.Context) ([]dto.ChartSlice, bool, error) {
	if slices, hit := s.tryCache(ctx, "charts:logistics-summary"); hit {
		return slices, true, nil
	}

	counts, err := s.repo.CountByRecipient(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to fetch logistics summary")
	}
	slices := toChartSlices(counts)
	s.persistCache(ctx, "charts:logistics-summary", slices)
	return slices, false, nil
}

// ModuleChart counts module requests per module code, descending by count.
func (s *DashboardService) ModuleChart(ctx context.Context) ([]dto.ChartSlice, bool, error) {
	if slices, hit := s.tryCache(ctx, "charts:module-chart"); hit {
		return slices, true, nil
	}

	counts, err := s.repo.CountByModule(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to fetch module chart data")
	}
	slices := toChartSlices(counts)
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value > slices[j].Value
	})
	s.persistCache(ctx, "charts:module-chart", slices)
	return slices, false, nil
}

// FulfillmentRate buckets module requests into exactly two slices: requests
// whose status is literally Pending, and everything else as Fulfilled. In
// Transit and Completed both land in the Fulfilled bucket; the split is
// intentionally no more granular than that.
func (s *DashboardService) FulfillmentRate(ctx context.Context) ([]dto.ChartSlice, bool, error) {
	if slices, hit := s.tryCache(ctx, "charts:fulfillment-rate"); hit {
		return slices, true, nil
	}

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to fetch fulfillment data")
	}

	total := 0
	pending := 0
	for _, c := range counts {
		total += c.Count
		if c.Key == models.StatusPending {
			pending = c.Count
		}
	}
	slices := []dto.ChartSlice{
		{Name: "Pending", Value: pending},
		{Name: "Fulfilled", Value: total - pending},
	}
	s.persistCache(ctx, "charts:fulfillment-rate", slices)
	return slices, false, nil
}

func (s *DashboardService) tryCache(ctx context.Context, key string) ([]dto.ChartSlice, bool) {
	if s.cache == nil {
		return nil, false
	}
	var cached []dto.ChartSlice
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil || !hit {
		return nil, false
	}
	return cached, true
}

func (s *DashboardService) persistCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("chart cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func toChartSlices(counts []models.GroupCount) []dto.ChartSlice {
	slices := make([]dto.ChartSlice, 0, len(counts))
	for _, c := range counts {
		slices = append(slices, dto.ChartSlice{Name: c.Key, Value: c.Count})
	}
	return slices
}
