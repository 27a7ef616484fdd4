package employeeerrors

import (
	"go-certtrack/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrFullNameRequired = apperror.RequiredField("Full Name")
	ErrInvalidEmail     = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid email format",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role does not belong to this company",
		http.StatusBadRequest,
	)
	ErrOwnerRoleAssignment = apperror.New(
		apperror.CodeForbidden,
		"The owner role cannot be assigned",
		http.StatusForbidden,
	)
	ErrOwnerProtected = apperror.New(
		apperror.CodeForbidden,
		"The company owner cannot be modified or deleted",
		http.StatusForbidden,
	)
	ErrCannotDeleteSelf = apperror.New(
		apperror.CodeForbidden,
		"You cannot delete your own account",
		http.StatusForbidden,
	)
	ErrCannotChangeOwnRole = apperror.New(
		apperror.CodeForbidden,
		"You cannot change your own role",
		http.StatusForbidden,
	)
	ErrCannotEditSelf = apperror.New(
		apperror.CodeForbidden,
		"Use your profile to change your own account",
		http.StatusForbidden,
	)
)
