package company

import (
	"context"
	"database/sql"
	"net/mail"
	"strings"

	companyerrors "go-certtrack/internal/company/errors"
	"go-certtrack/internal/domain"
	"go-certtrack/internal/rbac"
	"go-certtrack/internal/shared/apperror"
	"go-certtrack/internal/shared/contextutil"
	"go-certtrack/internal/user"
	usererrors "go-certtrack/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (SignupResponse, error)
	GetMe(ctx context.Context, sess domain.Session) (CompanyResponse, error)
	UpdateMe(ctx context.Context, sess domain.Session, req UpdateCompanyRequest) (CompanyResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	roleRepo rbac.Repository
	userRepo user.Repository
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, roleRepo rbac.Repository, userRepo user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		roleRepo: roleRepo,
		userRepo: userRepo,
		logger:   l,
	}
}

func validateSignup(req SignupRequest) (SignupRequest, error) {
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.OwnerName = strings.TrimSpace(req.OwnerName)
	req.AdminEmail = strings.ToLower(strings.TrimSpace(req.AdminEmail))

	if req.CompanyName == "" {
		return req, companyerrors.ErrCompanyNameRequired
	}
	if req.OwnerName == "" {
		return req, companyerrors.ErrOwnerNameRequired
	}
	if _, err := mail.ParseAddress(req.AdminEmail); err != nil {
		return req, companyerrors.ErrInvalidAdminEmail
	}
	if len(req.AdminPassword) < 6 {
		return req, usererrors.ErrPasswordTooShort
	}
	return req, nil
}

// Signup creates the company, its three seed roles and the owner account in one transaction.
func (s *service) Signup(ctx context.Context, req SignupRequest) (SignupResponse, error) {
	req, err := validateSignup(req)
	if err != nil {
		return SignupResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return SignupResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("signup begin tx failed", zap.Error(err))
		return SignupResponse{}, err
	}
	defer tx.Rollback()

	companyRepo := s.repo.WithTx(tx)
	roleRepo := s.roleRepo.WithTx(tx)
	userRepo := s.userRepo.WithTx(tx)

	comp := &Company{
		ID:       uuid.New(),
		Name:     req.CompanyName,
		IsActive: true,
	}
	if err := companyRepo.Create(ctx, comp); err != nil {
		s.logger.Error("signup create company failed", zap.Error(err))
		return SignupResponse{}, mapRepositoryError(err)
	}

	var ownerRoleID uuid.UUID
	for _, tpl := range domain.DefaultRoleTemplates() {
		role := rbac.NewRoleFromTemplate(comp.ID, tpl)
		if err := roleRepo.CreateRole(ctx, role); err != nil {
			s.logger.Error("signup create role failed", zap.String("role", tpl.Name), zap.Error(err))
			return SignupResponse{}, err
		}
		if tpl.IsOwner {
			ownerRoleID = role.ID
		}
	}

	owner := &user.User{
		ID:        uuid.New(),
		CompanyID: comp.ID,
		RoleID:    ownerRoleID,
		Name:      req.OwnerName,
		Email:     req.AdminEmail,
		Password:  string(hashed),
		IsActive:  true,
	}
	if err := userRepo.Create(ctx, owner); err != nil {
		s.logger.Warn("signup create owner failed", zap.Error(err))
		return SignupResponse{}, mapRepositoryError(err)
	}

	if err := companyRepo.SetAdminUser(ctx, comp.ID.String(), owner.ID); err != nil {
		s.logger.Error("signup set admin user failed", zap.Error(err))
		return SignupResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("signup commit failed", zap.Error(err))
		return SignupResponse{}, err
	}

	s.logger.Info("company signed up",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("company_id", comp.ID.String()),
		zap.String("admin_user_id", owner.ID.String()),
	)

	return SignupResponse{
		CompanyID:   comp.ID.String(),
		CompanyName: comp.Name,
		AdminUserID: owner.ID.String(),
		AdminEmail:  owner.Email,
	}, nil
}

func (s *service) GetMe(ctx context.Context, sess domain.Session) (CompanyResponse, error) {
	comp, err := s.repo.GetByID(ctx, sess.CompanyID)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(comp), nil
}

func (s *service) UpdateMe(ctx context.Context, sess domain.Session, req UpdateCompanyRequest) (CompanyResponse, error) {
	if !sess.HasPermission(domain.PermManageRoles) {
		return CompanyResponse{}, apperror.ErrForbidden
	}
	name := strings.TrimSpace(req.CompanyName)
	if name == "" {
		return CompanyResponse{}, companyerrors.ErrCompanyNameRequired
	}

	if err := s.repo.UpdateName(ctx, sess.CompanyID, name); err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("company renamed", zap.String("company_id", sess.CompanyID))
	return s.GetMe(ctx, sess)
}
