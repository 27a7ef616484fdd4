package companyerrors

import (
	"go-certtrack/internal/shared/apperror"
	"net/http"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrCompanyNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Company name is required",
		http.StatusBadRequest,
	)

	ErrOwnerNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Owner name is required",
		http.StatusBadRequest,
	)

	ErrInvalidAdminEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Admin email is invalid",
		http.StatusBadRequest,
	)

	ErrAdminEmailTaken = apperror.New(
		apperror.CodeConflict,
		"An account with this email already exists",
		http.StatusConflict,
	)
)
