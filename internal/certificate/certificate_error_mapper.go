package certificate

import (
	"errors"

	certerrors "go-certtrack/internal/certificate/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return certerrors.ErrCertificateNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02": // invalid uuid text
			return certerrors.ErrCertificateNotFound
		case "23503":
			return certerrors.ErrInvalidTargetUser
		}
	}

	return err
}
