package domain

// Names of the roles every company gets at signup.
const (
	RoleOwner    = "Owner"
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// DefaultRoleTemplate describes a role seeded for a new company.
type DefaultRoleTemplate struct {
	Name        string
	Description string
	Permissions []Permission
	IsDefault   bool
	IsOwner     bool
}

func DefaultRoleTemplates() []DefaultRoleTemplate {
	return []DefaultRoleTemplate{
		{
			Name:        RoleOwner,
			Description: "Company owner",
			Permissions: AllPermissions,
			IsOwner:     true,
		},
		{
			Name:        RoleAdmin,
			Description: "Company administrator",
			Permissions: AllPermissions,
		},
		{
			Name:        RoleEmployee,
			Description: "Tracks own certificates",
			Permissions: []Permission{PermManageCertificates},
			IsDefault:   true,
		},
	}
}
