package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type CompanySummary struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
}

// ProfileResponse is what /Auth/me returns and what signin embeds as user.
type ProfileResponse struct {
	ID          string         `json:"id"`
	Email       string         `json:"email"`
	Name        string         `json:"name"`
	Department  string         `json:"department,omitempty"`
	RoleID      string         `json:"roleId"`
	Role        string         `json:"role"`
	IsOwner     bool           `json:"isOwner"`
	Permissions []string       `json:"permissions"`
	Company     CompanySummary `json:"company"`
}

type TokenResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refreshToken"`
	User         ProfileResponse `json:"user"`
}
