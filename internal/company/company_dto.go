package company

type SignupRequest struct {
	CompanyName   string `json:"companyName" binding:"required,max=150"`
	OwnerName     string `json:"ownerName" binding:"required,max=255"`
	AdminEmail    string `json:"adminEmail" binding:"required,email"`
	AdminPassword string `json:"adminPassword" binding:"required,min=6"`
}

type SignupResponse struct {
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	AdminUserID string `json:"adminUserId"`
	AdminEmail  string `json:"adminEmail"`
}

type CompanyResponse struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	AdminUserID string `json:"adminUserId,omitempty"`
	IsActive    bool   `json:"isActive"`
}

type UpdateCompanyRequest struct {
	CompanyName string `json:"companyName" binding:"required,max=150"`
}

func mapToResponse(c *Company) CompanyResponse {
	resp := CompanyResponse{
		ID:          c.ID.String(),
		CompanyName: c.Name,
		IsActive:    c.IsActive,
	}
	if c.AdminUserID != nil {
		resp.AdminUserID = c.AdminUserID.String()
	}
	return resp
}
