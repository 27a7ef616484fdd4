package employee

import "go-certtrack/internal/user"

type CreateEmployeeRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	FullName   string `json:"fullName" binding:"required,max=255"`
	Department string `json:"department" binding:"max=150"`
	RoleID     string `json:"roleId" binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest leaves password and role unchanged when they are empty.
type UpdateEmployeeRequest struct {
	FullName   string `json:"fullName" binding:"required,max=255"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"max=150"`
	Password   string `json:"password" binding:"omitempty,min=6"`
	RoleID     string `json:"roleId" binding:"omitempty,uuid"`
}

type UpdateRoleRequest struct {
	RoleID string `json:"roleId" binding:"required,uuid"`
}

type EmployeeUser struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	RoleID string `json:"roleId"`
	Role   string `json:"role"`
}

// EmployeeResponse keeps the nested user block; an employee and its user share one id.
type EmployeeResponse struct {
	ID         string       `json:"id"`
	FullName   string       `json:"fullName"`
	Department string       `json:"department"`
	UserID     string       `json:"userId"`
	IsActive   bool         `json:"isActive"`
	User       EmployeeUser `json:"user"`
}

type OptionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func mapToResponse(u user.User) EmployeeResponse {
	id := u.ID.String()
	return EmployeeResponse{
		ID:         id,
		FullName:   u.Name,
		Department: u.Department,
		UserID:     id,
		IsActive:   u.IsActive,
		User: EmployeeUser{
			ID:     id,
			Email:  u.Email,
			RoleID: u.RoleID.String(),
			Role:   u.RoleName(),
		},
	}
}

func mapToListResponse(users []user.User) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp
}

func mapToOptions(users []user.User) []OptionResponse {
	resp := make([]OptionResponse, len(users))
	for i, u := range users {
		resp[i] = OptionResponse{ID: u.ID.String(), Name: u.Name, Email: u.Email}
	}
	return resp
}
