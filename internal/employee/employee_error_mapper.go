package employee

import (
	"errors"

	employeeerrors "go-certtrack/internal/employee/errors"
	rbacerrors "go-certtrack/internal/rbac/errors"
	"go-certtrack/internal/user"
	usererrors "go-certtrack/internal/user/errors"
)

func mapRepositoryError(err error) error {
	err = user.MapRepositoryError(err)
	switch {
	case errors.Is(err, usererrors.ErrUserNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case errors.Is(err, usererrors.ErrUserAlreadyExists):
		return employeeerrors.ErrEmployeeAlreadyExists
	}
	return err
}

// mapRoleError reports a role outside the company as invalid input.
func mapRoleError(err error) error {
	if errors.Is(err, rbacerrors.ErrRoleNotFound) {
		return employeeerrors.ErrInvalidRole
	}
	return err
}
