package auth_test

import (
	"context"
	"testing"
	"time"

	"go-certtrack/internal/auth"
	autherrors "go-certtrack/internal/auth/errors"
	"go-certtrack/internal/company"
	companyMock "go-certtrack/internal/company/mock"
	"go-certtrack/internal/domain"
	rbacMock "go-certtrack/internal/rbac/mock"
	"go-certtrack/internal/shared/token"
	"go-certtrack/internal/user"
	usererrors "go-certtrack/internal/user/errors"
	userMock "go-certtrack/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type serviceDeps struct {
	users    *userMock.MockRepository
	company  *companyMock.MockRepository
	sessions *rbacMock.MockService
	tokens   *token.Manager
	service  auth.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	deps := &serviceDeps{
		users:    userMock.NewMockRepository(ctrl),
		company:  companyMock.NewMockRepository(ctrl),
		sessions: rbacMock.NewMockService(ctrl),
		tokens:   token.NewManager("test-secret", 15*time.Minute, 7*24*time.Hour),
	}
	deps.service = auth.NewService(deps.users, deps.company, deps.sessions, deps.tokens)
	return deps
}

func hash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	u := &user.User{
		ID:        uuid.New(),
		CompanyID: companyID,
		RoleID:    uuid.New(),
		Name:      "Ada",
		Email:     "ada@acme.io",
		IsActive:  true,
		Role:      &user.UserRole{Name: "Admin"},
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		active := *u
		active.Password = hash(t, "secret1")

		sess := domain.Session{
			UserID:      active.ID.String(),
			CompanyID:   companyID.String(),
			Permissions: domain.NewPermissionSet(domain.PermManageUsers, domain.PermManageCertificates),
		}

		deps.users.EXPECT().FindByEmail(ctx, "ada@acme.io").Return(&active, nil)
		deps.sessions.EXPECT().ResolveSession(ctx, companyID.String(), active.ID.String()).Return(sess, nil)
		deps.users.EXPECT().FindByID(ctx, companyID.String(), active.ID.String()).Return(&active, nil)
		deps.company.EXPECT().GetByID(ctx, companyID.String()).Return(&company.Company{ID: companyID, Name: "Acme"}, nil)

		resp, err := deps.service.Login(ctx, " ada@acme.io ", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "Admin", resp.User.Role)
		assert.Equal(t, "Acme", resp.User.Company.CompanyName)
		assert.Equal(t, []string{"manage-certificates", "manage-users"}, resp.User.Permissions)

		claims, err := deps.tokens.Parse(resp.Token, token.TypeAccess)
		require.NoError(t, err)
		assert.Equal(t, active.ID.String(), claims.UserID)
		assert.Equal(t, companyID.String(), claims.CompanyID)

		_, err = deps.tokens.Parse(resp.RefreshToken, token.TypeRefresh)
		assert.NoError(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByEmail(ctx, "who@acme.io").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Login(ctx, "who@acme.io", "secret1")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupServiceTest(t)
		active := *u
		active.Password = hash(t, "secret1")
		deps.users.EXPECT().FindByEmail(ctx, "ada@acme.io").Return(&active, nil)

		_, err := deps.service.Login(ctx, "ada@acme.io", "wrong!!")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive", func(t *testing.T) {
		deps := setupServiceTest(t)
		inactive := *u
		inactive.Password = hash(t, "secret1")
		inactive.IsActive = false
		deps.users.EXPECT().FindByEmail(ctx, "ada@acme.io").Return(&inactive, nil)

		_, err := deps.service.Login(ctx, "ada@acme.io", "secret1")
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("access token is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		access, _, err := deps.tokens.IssuePair(uuid.NewString(), uuid.NewString())
		require.NoError(t, err)

		_, err = deps.service.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("deleted user cannot refresh", func(t *testing.T) {
		deps := setupServiceTest(t)
		userID, companyID := uuid.NewString(), uuid.NewString()
		_, refresh, err := deps.tokens.IssuePair(userID, companyID)
		require.NoError(t, err)

		deps.users.EXPECT().FindByID(ctx, companyID, userID).Return(nil, gorm.ErrRecordNotFound)

		_, err = deps.service.RefreshToken(ctx, refresh)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	sess := domain.Session{UserID: uuid.NewString(), CompanyID: uuid.NewString()}

	t.Run("too short", func(t *testing.T) {
		deps := setupServiceTest(t)
		err := deps.service.ResetPassword(ctx, sess, "12345")
		assert.ErrorIs(t, err, usererrors.ErrPasswordTooShort)
	})

	t.Run("updates only the caller", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().UpdatePassword(ctx, sess.CompanyID, sess.UserID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, h string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("newsecret")))
				return nil
			})

		assert.NoError(t, deps.service.ResetPassword(ctx, sess, "newsecret"))
	})
}
