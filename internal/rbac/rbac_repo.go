package rbac

import (
	"context"
	"database/sql"

	"go-certtrack/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// Policy
	GetUserRoles(ctx context.Context, companyID string) ([]UserRoleRow, error)
	GetRolePermissions(ctx context.Context, companyID string) ([]RolePermissionRow, error)
	GetUserRole(ctx context.Context, companyID, userID string) (*UserRoleRow, error)

	// Management
	ListRoles(ctx context.Context, companyID string) ([]Role, error)
	GetRoleByID(ctx context.Context, companyID, id string) (*Role, error)
	GetDefaultRole(ctx context.Context, companyID string) (*Role, error)
	CreateRole(ctx context.Context, role *Role) error
	UpdateRole(ctx context.Context, role *Role) error
	ReplacePermissions(ctx context.Context, role *Role) error
	DeleteRole(ctx context.Context, companyID, id string) error
	CountUsers(ctx context.Context, companyID, roleID string) (int64, error)
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

func (r *repository) GetUserRoles(ctx context.Context, companyID string) ([]UserRoleRow, error) {
	var result []UserRoleRow
	err := r.conn(ctx).
		Table("users").
		Select("users.id AS user_id, users.role_id, roles.name AS role_name, roles.is_owner, users.is_active").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("users.company_id = ?", companyID).
		Where("roles.company_id = ?", companyID).
		Where("users.is_active = ?", true).
		Scan(&result).Error
	return result, err
}

func (r *repository) GetRolePermissions(ctx context.Context, companyID string) ([]RolePermissionRow, error) {
	var result []RolePermissionRow
	err := r.conn(ctx).
		Table("role_permissions").
		Select("role_permissions.role_id, role_permissions.permission").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Where("roles.company_id = ?", companyID).
		Scan(&result).Error
	return result, err
}

func (r *repository) GetUserRole(ctx context.Context, companyID, userID string) (*UserRoleRow, error) {
	var result UserRoleRow
	res := r.conn(ctx).
		Table("users").
		Select("users.id AS user_id, users.role_id, roles.name AS role_name, roles.is_owner, users.is_active").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("users.company_id = ?", companyID).
		Where("users.id = ?", userID).
		Limit(1).
		Scan(&result)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &result, nil
}

func (r *repository) ListRoles(ctx context.Context, companyID string) ([]Role, error) {
	var roles []Role
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Permissions").
		Order("is_owner DESC, name ASC").
		Find(&roles).Error
	return roles, err
}

func (r *repository) GetRoleByID(ctx context.Context, companyID, id string) (*Role, error) {
	var role Role
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Permissions").
		First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repository) GetDefaultRole(ctx context.Context, companyID string) (*Role, error) {
	var role Role
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Permissions").
		Where("is_default = ?", true).
		First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// CreateRole inserts the role together with its permission rows.
func (r *repository) CreateRole(ctx context.Context, role *Role) error {
	return r.conn(ctx).Create(role).Error
}

func (r *repository) UpdateRole(ctx context.Context, role *Role) error {
	return r.conn(ctx).
		Model(&Role{}).
		Where("id = ? AND company_id = ?", role.ID, role.CompanyID).
		Updates(map[string]any{
			"name":        role.Name,
			"description": role.Description,
		}).Error
}

func (r *repository) ReplacePermissions(ctx context.Context, role *Role) error {
	db := r.conn(ctx)
	if err := db.Where("role_id = ?", role.ID).Delete(&RolePermission{}).Error; err != nil {
		return err
	}
	if len(role.Permissions) == 0 {
		return nil
	}
	return db.Create(&role.Permissions).Error
}

func (r *repository) DeleteRole(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Role{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountUsers(ctx context.Context, companyID, roleID string) (int64, error) {
	var total int64
	err := r.conn(ctx).
		Table("users").
		Where("company_id = ? AND role_id = ?", companyID, roleID).
		Count(&total).Error
	return total, err
}
