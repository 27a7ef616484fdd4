package company

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	UpdateName(ctx context.Context, id, name string) error
	SetAdminUser(ctx context.Context, id string, userID uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, company *Company) error {
	return r.conn(ctx).Create(company).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Company, error) {
	var company Company
	if err := r.conn(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repository) UpdateName(ctx context.Context, id, name string) error {
	return r.updateColumn(ctx, id, "name", name)
}

func (r *repository) SetAdminUser(ctx context.Context, id string, userID uuid.UUID) error {
	return r.updateColumn(ctx, id, "admin_user_id", userID)
}

func (r *repository) updateColumn(ctx context.Context, id, column string, value any) error {
	res := r.conn(ctx).Model(&Company{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
