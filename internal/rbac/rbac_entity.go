package rbac

import (
	"time"

	"go-certtrack/internal/domain"

	"github.com/google/uuid"
)

type Role struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_roles_company_name,priority:1"`
	Name        string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uq_roles_company_name,priority:2"`
	Description string    `gorm:"column:description;type:text"`
	IsDefault   bool      `gorm:"column:is_default;not null;default:false"`
	IsOwner     bool      `gorm:"column:is_owner;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Permissions []RolePermission `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

func (Role) TableName() string {
	return "roles"
}

type RolePermission struct {
	RoleID     uuid.UUID `gorm:"column:role_id;type:uuid;primaryKey"`
	Permission string    `gorm:"column:permission;type:varchar(50);primaryKey"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// PermissionSet drops stored values that are no longer known permissions.
func (r Role) PermissionSet() domain.PermissionSet {
	perms := make([]domain.Permission, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, domain.Permission(p.Permission))
	}
	return domain.NewPermissionSet(perms...)
}

func rolePermissions(roleID uuid.UUID, set domain.PermissionSet) []RolePermission {
	perms := set.Slice()
	rows := make([]RolePermission, len(perms))
	for i, p := range perms {
		rows[i] = RolePermission{RoleID: roleID, Permission: string(p)}
	}
	return rows
}

// UserRoleRow is the role assignment of one user.
type UserRoleRow struct {
	UserID   string
	RoleID   string
	RoleName string
	IsOwner  bool
	IsActive bool
}

type RolePermissionRow struct {
	RoleID     string
	Permission string
}

// NewRoleFromTemplate builds a seed role for a new company.
func NewRoleFromTemplate(companyID uuid.UUID, tpl domain.DefaultRoleTemplate) *Role {
	role := &Role{
		ID:          uuid.New(),
		CompanyID:   companyID,
		Name:        tpl.Name,
		Description: tpl.Description,
		IsDefault:   tpl.IsDefault,
		IsOwner:     tpl.IsOwner,
	}
	role.Permissions = rolePermissions(role.ID, domain.NewPermissionSet(tpl.Permissions...))
	return role
}
