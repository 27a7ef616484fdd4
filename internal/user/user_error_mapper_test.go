package user_test

import (
	"errors"
	"testing"

	"go-certtrack/internal/user"
	usererrors "go-certtrack/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	assert.Nil(t, user.MapRepositoryError(nil))
	assert.ErrorIs(t, user.MapRepositoryError(gorm.ErrRecordNotFound), usererrors.ErrUserNotFound)
	assert.ErrorIs(t,
		user.MapRepositoryError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}),
		usererrors.ErrUserAlreadyExists,
	)
	assert.ErrorIs(t,
		user.MapRepositoryError(errors.New(`ERROR: duplicate key value violates unique constraint "uq_users_email"`)),
		usererrors.ErrUserAlreadyExists,
	)

	other := errors.New("connection reset")
	assert.Equal(t, other, user.MapRepositoryError(other))
}
