package user

import (
	"context"
	"database/sql"

	"go-certtrack/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, companyID, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindEmployees(ctx context.Context, companyID, excludeUserID string) ([]User, error)
	FindOptionsByCompany(ctx context.Context, companyID string) ([]User, error)
	CountEmployees(ctx context.Context, companyID string) (int64, error)
	Update(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, companyID, id, passwordHash string) error
	UpdateRole(ctx context.Context, companyID, id, roleID string) error
	Delete(ctx context.Context, companyID, id string) error
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

// conn returns a session bound to ctx that runs on the transaction when one is set.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.conn(ctx).Omit("Role").Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*User, error) {
	var u User
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Role").
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.conn(ctx).
		Preload("Role").
		First(&u, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindEmployees lists the company's users except excludeUserID and holders of the owner role.
func (r *repository) FindEmployees(ctx context.Context, companyID, excludeUserID string) ([]User, error) {
	var users []User
	err := r.conn(ctx).
		Joins("Role").
		Where("users.company_id = ?", companyID).
		Where("users.id <> ?", excludeUserID).
		Where(`"Role"."is_owner" = ?`, false).
		Order("users.name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindOptionsByCompany(ctx context.Context, companyID string) ([]User, error) {
	var users []User
	err := r.conn(ctx).
		Select("id", "name", "email", "company_id").
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) CountEmployees(ctx context.Context, companyID string) (int64, error) {
	var total int64
	err := r.conn(ctx).
		Model(&User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("users.company_id = ?", companyID).
		Where("roles.is_owner = ?", false).
		Count(&total).Error
	return total, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.conn(ctx).Omit("Role").Save(u).Error
}

func (r *repository) UpdatePassword(ctx context.Context, companyID, id, passwordHash string) error {
	res := r.conn(ctx).
		Model(&User{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Update("password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) UpdateRole(ctx context.Context, companyID, id, roleID string) error {
	res := r.conn(ctx).
		Model(&User{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Update("role_id", roleID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
