package company

import (
	"errors"

	companyerrors "go-certtrack/internal/company/errors"
	"go-certtrack/internal/user"
	usererrors "go-certtrack/internal/user/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}
	if errors.Is(user.MapRepositoryError(err), usererrors.ErrUserAlreadyExists) {
		return companyerrors.ErrAdminEmailTaken
	}
	return err
}
