package rbac

import "go-certtrack/internal/domain"

type EnforceRequest = domain.EnforceRequest

type RoleResponse struct {
	ID          string   `json:"id"`
	CompanyID   string   `json:"companyId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
	IsDefault   bool     `json:"isDefault"`
	IsOwner     bool     `json:"isOwner"`
}

type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type UpdateRoleRequest struct {
	Name        string    `json:"name" binding:"omitempty,max=100"`
	Description *string   `json:"description"`
	Permissions *[]string `json:"permissions"`
}

func mapToResponse(r Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID.String(),
		CompanyID:   r.CompanyID.String(),
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.PermissionSet().Strings(),
		IsDefault:   r.IsDefault,
		IsOwner:     r.IsOwner,
	}
}

func mapToListResponse(roles []Role) []RoleResponse {
	res := make([]RoleResponse, len(roles))
	for i, r := range roles {
		res[i] = mapToResponse(r)
	}
	return res
}
