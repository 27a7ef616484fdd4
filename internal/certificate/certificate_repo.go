package certificate

import (
	"context"
	"database/sql"

	"go-certtrack/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=certificate_repo.go -destination=mock/certificate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAllByCompany(ctx context.Context, companyID string) ([]Certificate, error)
	FindByOwner(ctx context.Context, companyID, userID string) ([]Certificate, error)
	FindByID(ctx context.Context, companyID, id string) (*Certificate, error)
	Create(ctx context.Context, c *Certificate) error
	Update(ctx context.Context, c *Certificate) error
	Delete(ctx context.Context, companyID, id string) error
	SetProofKey(ctx context.Context, companyID, id, key string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Certificate, error) {
	var certs []Certificate
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		Find(&certs).Error
	return certs, err
}

// FindByOwner filters by owner in the query itself.
func (r *repository) FindByOwner(ctx context.Context, companyID, userID string) ([]Certificate, error) {
	var certs []Certificate
	err := r.conn(ctx).
		Scopes(tenant.OwnerScope(companyID, userID)).
		Order("created_at DESC").
		Find(&certs).Error
	return certs, err
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*Certificate, error) {
	var c Certificate
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, c *Certificate) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) Update(ctx context.Context, c *Certificate) error {
	return r.conn(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Certificate{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) SetProofKey(ctx context.Context, companyID, id, key string) error {
	res := r.conn(ctx).
		Model(&Certificate{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Update("proof_key", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
