package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a member of exactly one company. Employees are users with a
// department and a full name in Name.
type User struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`
	RoleID     uuid.UUID `gorm:"column:role_id;type:uuid;not null;index"`
	Name       string    `gorm:"column:name;type:varchar(255);not null"`
	Department string    `gorm:"column:department;type:varchar(150)"`
	Email      string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Password   string    `gorm:"column:password;type:text;not null"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Role *UserRole `gorm:"foreignKey:RoleID;references:ID"`
}

func (User) TableName() string {
	return "users"
}

// UserRole is the slice of the roles table users are joined with.
type UserRole struct {
	ID      uuid.UUID `gorm:"column:id;primaryKey"`
	Name    string    `gorm:"column:name"`
	IsOwner bool      `gorm:"column:is_owner"`
}

func (UserRole) TableName() string {
	return "roles"
}

func (u User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

func (u User) IsOwner() bool {
	return u.Role != nil && u.Role.IsOwner
}
