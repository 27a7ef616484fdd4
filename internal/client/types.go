package client

import "go-certtrack/internal/domain"

type Company struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
}

// Profile is the identity returned by /Auth/me.
type Profile struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Department  string   `json:"department,omitempty"`
	RoleID      string   `json:"roleId"`
	Role        string   `json:"role"`
	IsOwner     bool     `json:"isOwner"`
	Permissions []string `json:"permissions"`
	Company     Company  `json:"company"`
}

// PermissionSet rejects profiles carrying permissions this client does not know.
func (p Profile) PermissionSet() (domain.PermissionSet, error) {
	return domain.ParsePermissionSet(p.Permissions)
}

type Certificate struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	OwnerName       string `json:"ownerName,omitempty"`
	CompanyID       string `json:"companyId"`
	CourseName      string `json:"courseName"`
	CourseLink      string `json:"courseLink,omitempty"`
	Organization    string `json:"organization"`
	CertificateName string `json:"certificateName,omitempty"`
	Level           string `json:"level,omitempty"`
	Category        string `json:"category,omitempty"`
	Status          string `json:"status,omitempty"`
	StartDate       string `json:"startDate,omitempty"`
	EndDate         string `json:"endDate,omitempty"`
	Demo            string `json:"demo,omitempty"`
	HasProof        bool   `json:"hasProof"`
}

type CertificateInput struct {
	CourseName      string `json:"courseName,omitempty"`
	CourseLink      string `json:"courseLink,omitempty"`
	Organization    string `json:"organization,omitempty"`
	CertificateName string `json:"certificateName,omitempty"`
	Level           string `json:"level,omitempty"`
	Category        string `json:"category,omitempty"`
	Status          string `json:"status,omitempty"`
	StartDate       string `json:"startDate,omitempty"`
	EndDate         string `json:"endDate,omitempty"`
	Demo            string `json:"demo,omitempty"`
	UserID          string `json:"userId,omitempty"`
}

type Employee struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Department string `json:"department"`
	UserID     string `json:"userId"`
	User       struct {
		ID     string `json:"id"`
		Email  string `json:"email"`
		RoleID string `json:"roleId"`
		Role   string `json:"role"`
	} `json:"user"`
}

// EmployeeInput is used for create and update. An empty password on update
// keeps the current one.
type EmployeeInput struct {
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	FullName   string `json:"fullName"`
	Department string `json:"department,omitempty"`
	RoleID     string `json:"roleId,omitempty"`
}

type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
	IsDefault   bool     `json:"isDefault"`
	IsOwner     bool     `json:"isOwner"`
}

type SignupInput struct {
	CompanyName   string `json:"companyName"`
	OwnerName     string `json:"ownerName"`
	AdminEmail    string `json:"adminEmail"`
	AdminPassword string `json:"adminPassword"`
}
