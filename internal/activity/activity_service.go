package activity

import (
	"context"
	"fmt"

	"go-certtrack/internal/events"

	"go.uber.org/zap"
)

// CacheInvalidator drops derived per-company data after a certificate change.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, companyID string) error
}

//go:generate mockgen -source=activity_service.go -destination=mock/activity_service_mock.go -package=mock
type Service interface {
	HandleCertificateLifecycle(ctx context.Context, event events.CertificateLifecycleEvent) error
	ListByCertificate(ctx context.Context, companyID, certificateID string) ([]ActivityResponse, error)
}

type service struct {
	repo   Repository
	cache  CacheInvalidator
	logger *zap.Logger
}

func NewService(repo Repository, cache CacheInvalidator, logger ...*zap.Logger) Service {
	l := zap.L().Named("activity.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activity.service")
	}
	return &service{repo: repo, cache: cache, logger: l}
}

func summarize(e events.CertificateLifecycleEvent) string {
	switch e.EventType {
	case events.CertificateCreated:
		return fmt.Sprintf("Created %q", e.CourseName)
	case events.CertificateDeleted:
		return fmt.Sprintf("Deleted %q", e.CourseName)
	default:
		if e.Status != "" {
			return fmt.Sprintf("Updated %q (status %s)", e.CourseName, e.Status)
		}
		return fmt.Sprintf("Updated %q", e.CourseName)
	}
}

// HandleCertificateLifecycle records the event and invalidates the company's
// analytics. A cache failure is logged but does not fail the event.
func (s *service) HandleCertificateLifecycle(ctx context.Context, event events.CertificateLifecycleEvent) error {
	entry := &CertificateActivity{
		ID:            event.EventID,
		CertificateID: event.CertificateID,
		CompanyID:     event.CompanyID,
		ActorID:       event.ActorID,
		OwnerID:       event.OwnerID,
		EventType:     event.EventType,
		Summary:       summarize(event),
		OccurredAt:    event.OccurredAt,
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, event.CompanyID); err != nil {
			s.logger.Warn("analytics invalidation failed",
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *service) ListByCertificate(ctx context.Context, companyID, certificateID string) ([]ActivityResponse, error) {
	rows, err := s.repo.ListByCertificate(ctx, companyID, certificateID)
	if err != nil {
		return nil, err
	}

	resp := make([]ActivityResponse, len(rows))
	for i, r := range rows {
		resp[i] = ActivityResponse{
			ID:         r.ID,
			EventType:  r.EventType,
			ActorID:    r.ActorID,
			Summary:    r.Summary,
			OccurredAt: r.OccurredAt,
		}
	}
	return resp, nil
}
