package rbac

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"go-certtrack/internal/domain"
	rbacerrors "go-certtrack/internal/rbac/errors"
	"go-certtrack/internal/shared/apperror"
	"go-certtrack/internal/shared/contextutil"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const policyTTL = time.Minute

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadCompanyPolicy(companyID string) error
	InvalidateCompany(companyID string)
	Enforce(req EnforceRequest) (bool, error)
	ResolveSession(ctx context.Context, companyID, userID string) (domain.Session, error)

	ListRoles(ctx context.Context, sess domain.Session) ([]RoleResponse, error)
	GetRole(ctx context.Context, companyID, roleID string) (*Role, error)
	GetDefaultRole(ctx context.Context, companyID string) (*Role, error)
	CreateRole(ctx context.Context, sess domain.Session, req CreateRoleRequest) (RoleResponse, error)
	UpdateRole(ctx context.Context, sess domain.Session, id string, req UpdateRoleRequest) (RoleResponse, error)
	DeleteRole(ctx context.Context, sess domain.Session, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	enforcer *casbin.Enforcer
	loaded   *cache.Cache
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		enforcer: enforcer,
		loaded:   cache.New(policyTTL, 5*policyTTL),
		logger:   l,
	}
}

func (s *service) LoadCompanyPolicy(companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCompanyPolicyUnlocked(companyID)
}

// InvalidateCompany forces the next check for companyID to reload its policy.
func (s *service) InvalidateCompany(companyID string) {
	s.loaded.Delete(companyID)
}

func (s *service) ensureLoadedUnlocked(companyID string) error {
	if _, ok := s.loaded.Get(companyID); ok {
		return nil
	}
	return s.loadCompanyPolicyUnlocked(companyID)
}

// loadCompanyPolicyUnlocked replaces the company's grouping and permission
// policies without touching other companies.
func (s *service) loadCompanyPolicyUnlocked(companyID string) error {
	ctx := context.Background()

	if _, err := s.enforcer.RemoveFilteredGroupingPolicy(2, companyID); err != nil {
		return err
	}
	if _, err := s.enforcer.RemoveFilteredPolicy(1, companyID); err != nil {
		return err
	}

	userRoles, err := s.repo.GetUserRoles(ctx, companyID)
	if err != nil {
		return err
	}
	for _, ur := range userRoles {
		if _, err := s.enforcer.AddGroupingPolicy(ur.UserID, ur.RoleID, companyID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(ctx, companyID)
	if err != nil {
		return err
	}
	for _, rp := range rolePerms {
		perm, err := domain.ParsePermission(rp.Permission)
		if err != nil {
			s.logger.Warn("skipping unknown stored permission",
				zap.String("company_id", companyID),
				zap.String("role_id", rp.RoleID),
				zap.String("permission", rp.Permission),
			)
			continue
		}
		if _, err := s.enforcer.AddPolicy(rp.RoleID, companyID, perm.Resource(), perm.Action()); err != nil {
			return err
		}
	}

	s.loaded.Set(companyID, true, cache.DefaultExpiration)
	s.logger.Debug("rbac policy loaded",
		zap.String("company_id", companyID),
		zap.Int("user_roles", len(userRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedUnlocked(req.CompanyID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.UserID, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("company_id", req.CompanyID),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// ResolveSession loads the caller's role and the permissions casbin grants it.
func (s *service) ResolveSession(ctx context.Context, companyID, userID string) (domain.Session, error) {
	row, err := s.repo.GetUserRole(ctx, companyID, userID)
	if err != nil {
		if errors.Is(mapRepositoryError(err), rbacerrors.ErrRoleNotFound) {
			return domain.Session{}, rbacerrors.ErrSessionInvalid
		}
		return domain.Session{}, err
	}
	if !row.IsActive {
		return domain.Session{}, rbacerrors.ErrUserInactive
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedUnlocked(companyID); err != nil {
		return domain.Session{}, err
	}

	policies, err := s.enforcer.GetImplicitPermissionsForUser(userID, companyID)
	if err != nil {
		return domain.Session{}, err
	}

	perms := make([]domain.Permission, 0, len(policies))
	for _, p := range policies {
		// p = sub, dom, obj, act
		if len(p) < 4 || p[1] != companyID {
			continue
		}
		if perm, ok := domain.PermissionFromPolicy(p[2], p[3]); ok {
			perms = append(perms, perm)
		}
	}

	return domain.Session{
		UserID:      userID,
		CompanyID:   companyID,
		RoleID:      row.RoleID,
		RoleName:    row.RoleName,
		IsOwner:     row.IsOwner,
		Permissions: domain.NewPermissionSet(perms...),
	}, nil
}

func (s *service) ListRoles(ctx context.Context, sess domain.Session) ([]RoleResponse, error) {
	roles, err := s.repo.ListRoles(ctx, sess.CompanyID)
	if err != nil {
		s.logger.Error("list roles failed", zap.String("company_id", sess.CompanyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(roles), nil
}

func (s *service) GetRole(ctx context.Context, companyID, roleID string) (*Role, error) {
	if _, err := uuid.Parse(roleID); err != nil {
		return nil, rbacerrors.ErrRoleNotFound
	}
	role, err := s.repo.GetRoleByID(ctx, companyID, roleID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return role, nil
}

func (s *service) GetDefaultRole(ctx context.Context, companyID string) (*Role, error) {
	role, err := s.repo.GetDefaultRole(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return role, nil
}

func (s *service) CreateRole(ctx context.Context, sess domain.Session, req CreateRoleRequest) (RoleResponse, error) {
	if !sess.HasPermission(domain.PermManageRoles) {
		return RoleResponse{}, apperror.ErrForbidden
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return RoleResponse{}, rbacerrors.ErrRoleNameRequired
	}
	perms, err := domain.ParsePermissionSet(req.Permissions)
	if err != nil {
		return RoleResponse{}, rbacerrors.ErrInvalidPermission
	}
	if !perms.SubsetOf(sess.Permissions) {
		return RoleResponse{}, rbacerrors.ErrPermissionEscalation
	}

	role := &Role{
		ID:          uuid.New(),
		CompanyID:   uuid.MustParse(sess.CompanyID),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	role.Permissions = rolePermissions(role.ID, perms)

	if err := s.repo.CreateRole(ctx, role); err != nil {
		s.logger.Error("create role failed", zap.String("company_id", sess.CompanyID), zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}

	s.InvalidateCompany(sess.CompanyID)
	s.logger.Info("role created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("role_id", role.ID.String()),
	)
	return mapToResponse(*role), nil
}

func (s *service) UpdateRole(ctx context.Context, sess domain.Session, id string, req UpdateRoleRequest) (RoleResponse, error) {
	if !sess.HasPermission(domain.PermManageRoles) {
		return RoleResponse{}, apperror.ErrForbidden
	}
	if id == sess.RoleID {
		return RoleResponse{}, rbacerrors.ErrOwnRoleEdit
	}

	var perms domain.PermissionSet
	if req.Permissions != nil {
		parsed, err := domain.ParsePermissionSet(*req.Permissions)
		if err != nil {
			return RoleResponse{}, rbacerrors.ErrInvalidPermission
		}
		if !parsed.SubsetOf(sess.Permissions) {
			return RoleResponse{}, rbacerrors.ErrPermissionEscalation
		}
		perms = parsed
	}

	role, err := s.GetRole(ctx, sess.CompanyID, id)
	if err != nil {
		return RoleResponse{}, err
	}
	if role.IsOwner {
		return RoleResponse{}, rbacerrors.ErrRoleProtected
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		role.Name = name
	}
	if req.Description != nil {
		role.Description = strings.TrimSpace(*req.Description)
	}
	if perms != nil {
		role.Permissions = rolePermissions(role.ID, perms)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update role begin tx failed", zap.Error(err))
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.UpdateRole(ctx, role); err != nil {
		s.logger.Error("update role persist failed", zap.String("role_id", id), zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}
	if perms != nil {
		if err := qtx.ReplacePermissions(ctx, role); err != nil {
			s.logger.Error("update role permissions failed", zap.String("role_id", id), zap.Error(err))
			return RoleResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update role commit failed", zap.Error(err))
		return RoleResponse{}, err
	}

	s.InvalidateCompany(sess.CompanyID)
	s.logger.Info("role updated", zap.String("role_id", id))
	return mapToResponse(*role), nil
}

func (s *service) DeleteRole(ctx context.Context, sess domain.Session, id string) error {
	if !sess.HasPermission(domain.PermManageRoles) {
		return apperror.ErrForbidden
	}

	role, err := s.GetRole(ctx, sess.CompanyID, id)
	if err != nil {
		return err
	}
	if role.IsOwner {
		return rbacerrors.ErrRoleProtected
	}
	if role.IsDefault {
		return rbacerrors.ErrDefaultRoleDelete
	}

	inUse, err := s.repo.CountUsers(ctx, sess.CompanyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if inUse > 0 {
		return rbacerrors.ErrRoleInUse
	}

	if err := s.repo.DeleteRole(ctx, sess.CompanyID, id); err != nil {
		s.logger.Error("delete role failed", zap.String("role_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.InvalidateCompany(sess.CompanyID)
	s.logger.Info("role deleted", zap.String("role_id", id))
	return nil
}
