package activity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-certtrack/internal/activity"
	activityMock "go-certtrack/internal/activity/mock"
	"go-certtrack/internal/events"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestActivityService_HandleCertificateLifecycle(t *testing.T) {
	ctx := context.Background()
	event := events.NewCertificateLifecycleEvent(events.CertificateUpdated, "cert-1", "company-1", "owner-1", "admin-1")
	event.CourseName = "Go Fundamentals"
	event.Status = "completed"

	t.Run("records entry and invalidates analytics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := activityMock.NewMockRepository(ctrl)
		cache := activityMock.NewMockCacheInvalidator(ctrl)

		repo.EXPECT().Append(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *activity.CertificateActivity) error {
				assert.Equal(t, event.EventID, a.ID)
				assert.Equal(t, "admin-1", a.ActorID)
				assert.Equal(t, "owner-1", a.OwnerID)
				assert.Equal(t, `Updated "Go Fundamentals" (status completed)`, a.Summary)
				return nil
			})
		cache.EXPECT().Invalidate(ctx, "company-1").Return(nil)

		err := activity.NewService(repo, cache).HandleCertificateLifecycle(ctx, event)
		assert.NoError(t, err)
	})

	t.Run("cache failure does not fail the event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := activityMock.NewMockRepository(ctrl)
		cache := activityMock.NewMockCacheInvalidator(ctrl)

		repo.EXPECT().Append(ctx, gomock.Any()).Return(nil)
		cache.EXPECT().Invalidate(ctx, "company-1").Return(errors.New("redis down"))

		err := activity.NewService(repo, cache).HandleCertificateLifecycle(ctx, event)
		assert.NoError(t, err)
	})

	t.Run("store failure is returned for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := activityMock.NewMockRepository(ctrl)
		cache := activityMock.NewMockCacheInvalidator(ctrl)

		repo.EXPECT().Append(ctx, gomock.Any()).Return(errors.New("db down"))

		err := activity.NewService(repo, cache).HandleCertificateLifecycle(ctx, event)
		assert.Error(t, err)
	})

	t.Run("nil cache", func(t *testing.T) {
		repo := activityMock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().Append(ctx, gomock.Any()).Return(nil)

		assert.NoError(t, activity.NewService(repo, nil).HandleCertificateLifecycle(ctx, event))
	})
}

func TestActivityService_ListByCertificate(t *testing.T) {
	ctx := context.Background()
	repo := activityMock.NewMockRepository(gomock.NewController(t))
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	repo.EXPECT().ListByCertificate(ctx, "company-1", "cert-1").Return([]activity.CertificateActivity{
		{ID: "e1", EventType: events.CertificateCreated, ActorID: "admin-1", Summary: `Created "Go"`, OccurredAt: at},
		{ID: "e2", EventType: events.CertificateDeleted, ActorID: "admin-1", Summary: `Deleted "Go"`, OccurredAt: at.Add(time.Hour)},
	}, nil)

	resp, err := activity.NewService(repo, nil).ListByCertificate(ctx, "company-1", "cert-1")

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "e1", resp[0].ID)
	assert.Equal(t, events.CertificateDeleted, resp[1].EventType)
}
