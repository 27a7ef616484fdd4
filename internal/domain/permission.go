package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Permission is one of the fixed capabilities a role can grant.
type Permission string

const (
	PermManageCertificates Permission = "manage-certificates"
	PermManageUsers        Permission = "manage-users"
	PermManageRoles        Permission = "manage-roles"
	PermViewReports        Permission = "view-reports"
)

// AllPermissions lists every permission in display order.
var AllPermissions = []Permission{
	PermManageCertificates,
	PermManageUsers,
	PermManageRoles,
	PermViewReports,
}

// casbin object/action pair for each permission.
var permissionPolicy = map[Permission][2]string{
	PermManageCertificates: {"certificate", "manage"},
	PermManageUsers:        {"user", "manage"},
	PermManageRoles:        {"role", "manage"},
	PermViewReports:        {"report", "view"},
}

func (p Permission) String() string { return string(p) }

func (p Permission) Valid() bool {
	_, ok := permissionPolicy[p]
	return ok
}

// Resource and Action give the casbin object/action the permission maps to.
func (p Permission) Resource() string { return permissionPolicy[p][0] }
func (p Permission) Action() string   { return permissionPolicy[p][1] }

func ParsePermission(s string) (Permission, error) {
	p := Permission(strings.TrimSpace(s))
	if !p.Valid() {
		return "", fmt.Errorf("unknown permission %q", s)
	}
	return p, nil
}

// PermissionFromPolicy is the inverse of Resource/Action.
func PermissionFromPolicy(resource, action string) (Permission, bool) {
	for p, pol := range permissionPolicy {
		if pol[0] == resource && pol[1] == action {
			return p, true
		}
	}
	return "", false
}

// PermissionSet is an immutable-by-convention set of permissions.
type PermissionSet map[Permission]struct{}

func NewPermissionSet(perms ...Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		if p.Valid() {
			set[p] = struct{}{}
		}
	}
	return set
}

// ParsePermissionSet rejects the whole input if any entry is unknown.
func ParsePermissionSet(values []string) (PermissionSet, error) {
	set := make(PermissionSet, len(values))
	for _, v := range values {
		p, err := ParsePermission(v)
		if err != nil {
			return nil, err
		}
		set[p] = struct{}{}
	}
	return set, nil
}

func (s PermissionSet) Has(p Permission) bool {
	if s == nil {
		return false
	}
	_, ok := s[p]
	return ok
}

func (s PermissionSet) Full() bool {
	for _, p := range AllPermissions {
		if !s.Has(p) {
			return false
		}
	}
	return true
}

// Slice returns the permissions sorted in AllPermissions order.
func (s PermissionSet) Slice() []Permission {
	out := make([]Permission, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	order := make(map[Permission]int, len(AllPermissions))
	for i, p := range AllPermissions {
		order[p] = i
	}
	sort.Slice(out, func(i, j int) bool { return order[out[i]] < order[out[j]] })
	return out
}

func (s PermissionSet) Strings() []string {
	perms := s.Slice()
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}

// SubsetOf reports whether every permission in s is also in other.
func (s PermissionSet) SubsetOf(other PermissionSet) bool {
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}
