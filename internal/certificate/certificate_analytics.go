package certificate

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const AnalyticsKeyPrefix = "certificates:analytics:"

func GetAnalyticsKey(companyID string) string {
	return AnalyticsKeyPrefix + companyID
}

type AnalyticsResponse struct {
	Aggregation
	EmployeeCount int64 `json:"employeeCount"`
	CompanyWide   bool  `json:"companyWide"`
}

type DashboardResponse struct {
	Totals         Totals                `json:"totals"`
	CompletionRate int                   `json:"completionRate"`
	Recent         []CertificateResponse `json:"recent"`
}

// AnalyticsCache stores company-wide analytics in Redis. Concurrent misses for
// the same company share one load. A nil client disables caching.
type AnalyticsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	sf     singleflight.Group
	logger *zap.Logger
}

func NewAnalyticsCache(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *AnalyticsCache {
	l := zap.L().Named("certificate.analytics_cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("certificate.analytics_cache")
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &AnalyticsCache{rdb: rdb, ttl: ttl, logger: l}
}

func (c *AnalyticsCache) Get(ctx context.Context, companyID string, load func(context.Context) (AnalyticsResponse, error)) (AnalyticsResponse, error) {
	if c == nil || c.rdb == nil {
		return load(ctx)
	}

	key := GetAnalyticsKey(companyID)
	if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var resp AnalyticsResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			return resp, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("analytics cache read failed", zap.String("key", key), zap.Error(err))
	}

	// the shared load must outlive any single caller's cancellation
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		resp, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(resp); err == nil {
			if err := c.rdb.Set(loadCtx, key, data, c.ttl).Err(); err != nil {
				c.logger.Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return resp, nil
	})
	if err != nil {
		return AnalyticsResponse{}, err
	}
	return v.(AnalyticsResponse), nil
}

func (c *AnalyticsCache) Invalidate(ctx context.Context, companyID string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, GetAnalyticsKey(companyID)).Err()
}
