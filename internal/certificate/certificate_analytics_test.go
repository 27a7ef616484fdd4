package certificate_test

import (
	"context"
	"testing"
	"time"

	"go-certtrack/internal/certificate"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsCache_LoadOutlivesCallerCancellation(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	cache := certificate.NewAnalyticsCache(rdb, time.Minute)
	companyID := "company-1"
	redisMock.ExpectGet(certificate.GetAnalyticsKey(companyID)).RedisNil()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := cache.Get(ctx, companyID, func(loadCtx context.Context) (certificate.AnalyticsResponse, error) {
		// other admins may be waiting on this load
		assert.NoError(t, loadCtx.Err())
		return certificate.AnalyticsResponse{EmployeeCount: 7, CompanyWide: true}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.EmployeeCount)
}

func TestAnalyticsCache_NilClientLoadsDirectly(t *testing.T) {
	var cache *certificate.AnalyticsCache
	calls := 0

	resp, err := cache.Get(context.Background(), "company-1", func(context.Context) (certificate.AnalyticsResponse, error) {
		calls++
		return certificate.AnalyticsResponse{EmployeeCount: 2}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, int64(2), resp.EmployeeCount)
	assert.NoError(t, cache.Invalidate(context.Background(), "company-1"))
}
