package auth

import (
	"context"
	"errors"
	"strings"

	autherrors "go-certtrack/internal/auth/errors"
	"go-certtrack/internal/company"
	"go-certtrack/internal/domain"
	"go-certtrack/internal/middleware"
	"go-certtrack/internal/shared/token"
	"go-certtrack/internal/user"
	usererrors "go-certtrack/internal/user/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)
	GetMe(ctx context.Context, sess domain.Session) (ProfileResponse, error)
	ResetPassword(ctx context.Context, sess domain.Session, newPassword string) error
}

type service struct {
	userRepo    user.Repository
	companyRepo company.Repository
	sessions    middleware.SessionResolver
	tokens      *token.Manager
	logger      *zap.Logger
}

func NewService(
	userRepo user.Repository,
	companyRepo company.Repository,
	sessions middleware.SessionResolver,
	tokens *token.Manager,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		sessions:    sessions,
		tokens:      tokens,
		logger:      l,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	u, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(user.MapRepositoryError(err), usererrors.ErrUserNotFound) {
			return TokenResponse{}, autherrors.ErrInvalidCredentials
		}
		return TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		s.logger.Info("login rejected", zap.String("user_id", u.ID.String()))
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}
	if !u.IsActive {
		return TokenResponse{}, autherrors.ErrUserInactive
	}

	return s.issue(ctx, u.CompanyID.String(), u.ID.String())
}

// RefreshToken accepts only refresh tokens and re-reads the user so that
// deactivated accounts cannot renew.
func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}

	u, err := s.userRepo.FindByID(ctx, claims.CompanyID, claims.UserID)
	if err != nil {
		if errors.Is(user.MapRepositoryError(err), usererrors.ErrUserNotFound) {
			return TokenResponse{}, autherrors.ErrInvalidRefreshToken
		}
		return TokenResponse{}, err
	}
	if !u.IsActive {
		return TokenResponse{}, autherrors.ErrUserInactive
	}

	return s.issue(ctx, claims.CompanyID, claims.UserID)
}

func (s *service) issue(ctx context.Context, companyID, userID string) (TokenResponse, error) {
	sess, err := s.sessions.ResolveSession(ctx, companyID, userID)
	if err != nil {
		return TokenResponse{}, err
	}

	profile, err := s.GetMe(ctx, sess)
	if err != nil {
		return TokenResponse{}, err
	}

	access, refresh, err := s.tokens.IssuePair(userID, companyID)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return TokenResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return TokenResponse{Token: access, RefreshToken: refresh, User: profile}, nil
}

func (s *service) GetMe(ctx context.Context, sess domain.Session) (ProfileResponse, error) {
	u, err := s.userRepo.FindByID(ctx, sess.CompanyID, sess.UserID)
	if err != nil {
		return ProfileResponse{}, user.MapRepositoryError(err)
	}

	comp, err := s.companyRepo.GetByID(ctx, sess.CompanyID)
	if err != nil {
		return ProfileResponse{}, err
	}

	return ProfileResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		Name:        u.Name,
		Department:  u.Department,
		RoleID:      u.RoleID.String(),
		Role:        u.RoleName(),
		IsOwner:     u.IsOwner(),
		Permissions: sess.Permissions.Strings(),
		Company: CompanySummary{
			ID:          comp.ID.String(),
			CompanyName: comp.Name,
		},
	}, nil
}

// ResetPassword only ever changes the caller's own password.
func (s *service) ResetPassword(ctx context.Context, sess domain.Session, newPassword string) error {
	if len(newPassword) < 6 {
		return usererrors.ErrPasswordTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, sess.CompanyID, sess.UserID, string(hashed)); err != nil {
		return user.MapRepositoryError(err)
	}

	s.logger.Info("password reset", zap.String("user_id", sess.UserID))
	return nil
}
