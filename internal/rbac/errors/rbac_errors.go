package rbacerrors

import (
	"go-certtrack/internal/shared/apperror"
	"net/http"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)

	ErrRoleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A role with the same name already exists",
		http.StatusConflict,
	)

	ErrRoleProtected = apperror.New(
		apperror.CodeForbidden,
		"The owner role cannot be modified or deleted",
		http.StatusForbidden,
	)

	ErrDefaultRoleDelete = apperror.New(
		apperror.CodeInvalidState,
		"The default role cannot be deleted",
		http.StatusConflict,
	)

	ErrRoleInUse = apperror.New(
		apperror.CodeInvalidState,
		"Role is still assigned to users",
		http.StatusConflict,
	)

	ErrInvalidPermission = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown permission",
		http.StatusBadRequest,
	)

	ErrRoleNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Name is required",
		http.StatusBadRequest,
	)

	ErrOwnRoleEdit = apperror.New(
		apperror.CodeForbidden,
		"You cannot modify your own role",
		http.StatusForbidden,
	)

	ErrPermissionEscalation = apperror.New(
		apperror.CodeForbidden,
		"You cannot grant permissions you do not hold",
		http.StatusForbidden,
	)

	ErrSessionInvalid = apperror.New(
		apperror.CodeUnauthorized,
		"Session is no longer valid",
		http.StatusUnauthorized,
	)

	ErrUserInactive = apperror.New(
		apperror.CodeForbidden,
		"User is inactive",
		http.StatusForbidden,
	)
)
