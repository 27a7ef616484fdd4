package domain

// Session is the resolved identity of the caller. It is built once per request
// and passed explicitly to every service operation.
type Session struct {
	UserID      string
	CompanyID   string
	RoleID      string
	RoleName    string
	IsOwner     bool
	Permissions PermissionSet
}

// Authenticated reports whether the session carries an identity.
func (s Session) Authenticated() bool {
	return s.UserID != "" && s.CompanyID != ""
}

func (s Session) HasPermission(p Permission) bool {
	return s.Permissions.Has(p)
}

// IsAdmin is granted by the manage-users permission, never by the role name.
func (s Session) IsAdmin() bool {
	return s.HasPermission(PermManageUsers)
}

// CanActOn reports whether the session may modify a record owned by ownerID.
func (s Session) CanActOn(ownerID string) bool {
	if !s.Authenticated() {
		return false
	}
	return s.IsAdmin() || s.UserID == ownerID
}
