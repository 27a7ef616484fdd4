package activity

import (
	"context"

	"go-certtrack/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=activity_repo.go -destination=mock/activity_repo_mock.go -package=mock
type Repository interface {
	Append(ctx context.Context, a *CertificateActivity) error
	ListByCertificate(ctx context.Context, companyID, certificateID string) ([]CertificateActivity, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Append ignores an entry whose id is already stored.
func (r *repository) Append(ctx context.Context, a *CertificateActivity) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(a).Error
}

func (r *repository) ListByCertificate(ctx context.Context, companyID, certificateID string) ([]CertificateActivity, error) {
	var rows []CertificateActivity
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("certificate_id = ?", certificateID).
		Order("occurred_at ASC").
		Find(&rows).Error
	return rows, err
}
