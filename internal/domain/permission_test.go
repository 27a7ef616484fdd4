package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePermissionSet(t *testing.T) {
	set, err := ParsePermissionSet([]string{" manage-users", "view-reports", "view-reports"})
	assert.NoError(t, err)
	assert.Len(t, set, 2)
	assert.True(t, set.Has(PermManageUsers))
	assert.False(t, set.Has(PermManageRoles))

	_, err = ParsePermissionSet([]string{"manage-users", "Manage-Roles"})
	assert.Error(t, err)
}

func TestPermissionSet_SliceOrder(t *testing.T) {
	set := NewPermissionSet(PermViewReports, PermManageCertificates, Permission("bogus"))
	assert.Equal(t, []Permission{PermManageCertificates, PermViewReports}, set.Slice())
	assert.False(t, set.Full())
	assert.True(t, NewPermissionSet(AllPermissions...).Full())
}

func TestPermissionSet_SubsetOf(t *testing.T) {
	held := NewPermissionSet(PermManageRoles, PermViewReports)
	assert.True(t, NewPermissionSet().SubsetOf(held))
	assert.True(t, NewPermissionSet(PermViewReports).SubsetOf(held))
	assert.False(t, NewPermissionSet(PermManageRoles, PermManageUsers).SubsetOf(held))
	assert.False(t, NewPermissionSet(PermViewReports).SubsetOf(nil))
}

func TestPermissionFromPolicy(t *testing.T) {
	for _, p := range AllPermissions {
		got, ok := PermissionFromPolicy(p.Resource(), p.Action())
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}
	_, ok := PermissionFromPolicy("invoice", "manage")
	assert.False(t, ok)
}

func TestSession(t *testing.T) {
	admin := Session{UserID: "a", CompanyID: "c", Permissions: NewPermissionSet(PermManageUsers)}
	employee := Session{UserID: "e", CompanyID: "c", Permissions: NewPermissionSet(PermManageCertificates)}
	var nobody Session

	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.CanActOn("e"))

	assert.False(t, employee.IsAdmin())
	assert.True(t, employee.CanActOn("e"))
	assert.False(t, employee.CanActOn("f"))

	assert.False(t, nobody.Authenticated())
	assert.False(t, nobody.CanActOn(""))
	assert.False(t, nobody.HasPermission(PermManageCertificates))
}
