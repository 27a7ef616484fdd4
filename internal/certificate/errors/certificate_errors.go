package certerrors

import (
	"go-certtrack/internal/shared/apperror"
	"net/http"
)

var (
	ErrCertificateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Certificate not found",
		http.StatusNotFound,
	)

	ErrCertificateForbidden = apperror.New(
		apperror.CodeForbidden,
		"You can only manage your own certificates",
		http.StatusForbidden,
	)

	ErrCourseNameRequired = apperror.RequiredField("Course Name")

	ErrOrganizationRequired = apperror.RequiredField("Organization")

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of started, in-progress, completed or other",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date cannot be before start date",
		http.StatusBadRequest,
	)

	ErrInvalidTargetUser = apperror.New(
		apperror.CodeInvalidInput,
		"The selected user does not belong to this company",
		http.StatusBadRequest,
	)

	ErrUnsupportedProofType = apperror.New(
		apperror.CodeInvalidInput,
		"Proof must be a PDF, PNG or JPEG file",
		http.StatusBadRequest,
	)

	ErrProofNotFound = apperror.New(
		apperror.CodeNotFound,
		"No proof has been uploaded for this certificate",
		http.StatusNotFound,
	)

	ErrProofStorageUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Proof storage is not configured",
		http.StatusServiceUnavailable,
	)
)
