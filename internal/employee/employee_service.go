package employee

import (
	"context"
	"encoding/json"
	"net/mail"
	"strings"
	"time"

	"go-certtrack/internal/activity"
	"go-certtrack/internal/domain"
	employeeerrors "go-certtrack/internal/employee/errors"
	"go-certtrack/internal/rbac"
	"go-certtrack/internal/shared/apperror"
	"go-certtrack/internal/shared/contextutil"
	"go-certtrack/internal/user"
	usererrors "go-certtrack/internal/user/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKeyPrefix = "employees:options:"

const optionsTTL = time.Hour

func GetEmployeeOptionsKey(companyID string) string {
	return EmployeeOptionsKeyPrefix + companyID
}

// RoleDirectory resolves company roles and reloads authorization after
// assignments change. rbac.Service implements it.
type RoleDirectory interface {
	GetRole(ctx context.Context, companyID, roleID string) (*rbac.Role, error)
	GetDefaultRole(ctx context.Context, companyID string) (*rbac.Role, error)
	InvalidateCompany(companyID string)
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	ListEmployees(ctx context.Context, sess domain.Session) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, sess domain.Session) ([]OptionResponse, error)
	CreateEmployee(ctx context.Context, sess domain.Session, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, sess domain.Session, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateRole(ctx context.Context, sess domain.Session, id, roleID string) (EmployeeResponse, error)
	DeleteUser(ctx context.Context, sess domain.Session, id string) error
}

type service struct {
	users     user.Repository
	roles     RoleDirectory
	rdb       *redis.Client
	analytics activity.CacheInvalidator
	sf        *singleflight.Group
	logger    *zap.Logger
}

// NewService wires the employee service. analytics may be nil; when set it is
// dropped after every membership change so top-user names and headcounts
// follow deletions.
func NewService(users user.Repository, roles RoleDirectory, rdb *redis.Client, analytics activity.CacheInvalidator, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		users:     users,
		roles:     roles,
		rdb:       rdb,
		analytics: analytics,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func requireAdmin(sess domain.Session) error {
	if !sess.Authenticated() {
		return apperror.ErrUnauthorized
	}
	if !sess.IsAdmin() {
		return apperror.ErrForbidden
	}
	return nil
}

func (s *service) ListEmployees(ctx context.Context, sess domain.Session) ([]EmployeeResponse, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	users, err := s.users.FindEmployees(ctx, sess.CompanyID, sess.UserID)
	if err != nil {
		s.logger.Error("list employees failed", zap.String("company_id", sess.CompanyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(users), nil
}

func (s *service) GetOptions(ctx context.Context, sess domain.Session) ([]OptionResponse, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	cacheKey := GetEmployeeOptionsKey(sess.CompanyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []OptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		users, err := s.users.FindOptionsByCompany(ctx, sess.CompanyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToOptions(users)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, optionsTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]OptionResponse), nil
}

// assignableRole resolves roleID within the company, falling back to the
// default role when it is empty. The owner role is never assignable.
func (s *service) assignableRole(ctx context.Context, companyID, roleID string) (*rbac.Role, error) {
	var (
		role *rbac.Role
		err  error
	)
	if strings.TrimSpace(roleID) == "" {
		role, err = s.roles.GetDefaultRole(ctx, companyID)
	} else {
		role, err = s.roles.GetRole(ctx, companyID, strings.TrimSpace(roleID))
	}
	if err != nil {
		return nil, mapRoleError(err)
	}
	if role.IsOwner {
		return nil, employeeerrors.ErrOwnerRoleAssignment
	}
	return role, nil
}

func normalizeIdentity(fullName, email string) (string, string, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return "", "", employeeerrors.ErrFullNameRequired
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", "", employeeerrors.ErrInvalidEmail
	}
	return fullName, email, nil
}

func hashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", usererrors.ErrPasswordTooShort
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *service) CreateEmployee(ctx context.Context, sess domain.Session, req CreateEmployeeRequest) (EmployeeResponse, error) {
	if err := requireAdmin(sess); err != nil {
		return EmployeeResponse{}, err
	}
	rid := contextutil.GetRequestID(ctx)

	fullName, email, err := normalizeIdentity(req.FullName, req.Email)
	if err != nil {
		return EmployeeResponse{}, err
	}
	hashed, err := hashPassword(req.Password)
	if err != nil {
		return EmployeeResponse{}, err
	}

	role, err := s.assignableRole(ctx, sess.CompanyID, req.RoleID)
	if err != nil {
		s.logger.Warn("create employee role rejected",
			zap.String("request_id", rid),
			zap.String("role_id", req.RoleID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	u := &user.User{
		ID:         uuid.New(),
		CompanyID:  uuid.MustParse(sess.CompanyID),
		RoleID:     role.ID,
		Name:       fullName,
		Department: strings.TrimSpace(req.Department),
		Email:      email,
		Password:   hashed,
		IsActive:   true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	u.Role = &user.UserRole{ID: role.ID, Name: role.Name, IsOwner: role.IsOwner}

	s.afterWrite(ctx, sess.CompanyID)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", u.ID.String()),
	)
	return mapToResponse(*u), nil
}

// loadEditable loads another non-owner user of the company.
func (s *service) loadEditable(ctx context.Context, sess domain.Session, id string, self error) (*user.User, error) {
	if id == sess.UserID {
		return nil, self
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	target, err := s.users.FindByID(ctx, sess.CompanyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if target.IsOwner() {
		return nil, employeeerrors.ErrOwnerProtected
	}
	return target, nil
}

func (s *service) UpdateEmployee(ctx context.Context, sess domain.Session, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if err := requireAdmin(sess); err != nil {
		return EmployeeResponse{}, err
	}

	fullName, email, err := normalizeIdentity(req.FullName, req.Email)
	if err != nil {
		return EmployeeResponse{}, err
	}
	var hashed string
	if req.Password != "" {
		if hashed, err = hashPassword(req.Password); err != nil {
			return EmployeeResponse{}, err
		}
	}

	target, err := s.loadEditable(ctx, sess, id, employeeerrors.ErrCannotEditSelf)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if strings.TrimSpace(req.RoleID) != "" && req.RoleID != target.RoleID.String() {
		role, err := s.assignableRole(ctx, sess.CompanyID, req.RoleID)
		if err != nil {
			return EmployeeResponse{}, err
		}
		target.RoleID = role.ID
		target.Role = &user.UserRole{ID: role.ID, Name: role.Name, IsOwner: role.IsOwner}
	}

	target.Name = fullName
	target.Email = email
	target.Department = strings.TrimSpace(req.Department)
	if hashed != "" {
		target.Password = hashed
	}

	if err := s.users.Update(ctx, target); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.afterWrite(ctx, sess.CompanyID)
	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*target), nil
}

func (s *service) UpdateRole(ctx context.Context, sess domain.Session, id, roleID string) (EmployeeResponse, error) {
	if err := requireAdmin(sess); err != nil {
		return EmployeeResponse{}, err
	}
	if id == sess.UserID {
		return EmployeeResponse{}, employeeerrors.ErrCannotChangeOwnRole
	}
	if strings.TrimSpace(roleID) == "" {
		return EmployeeResponse{}, apperror.RequiredField("Role")
	}

	role, err := s.assignableRole(ctx, sess.CompanyID, roleID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	target, err := s.loadEditable(ctx, sess, id, employeeerrors.ErrCannotChangeOwnRole)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.users.UpdateRole(ctx, sess.CompanyID, id, role.ID.String()); err != nil {
		s.logger.Error("update employee role failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	target.RoleID = role.ID
	target.Role = &user.UserRole{ID: role.ID, Name: role.Name, IsOwner: role.IsOwner}

	s.afterWrite(ctx, sess.CompanyID)
	s.logger.Info("update employee role success",
		zap.String("employee_id", id),
		zap.String("role_id", role.ID.String()),
	)
	return mapToResponse(*target), nil
}

// DeleteUser keeps the user's certificates; they show as Unknown Employee afterwards.
func (s *service) DeleteUser(ctx context.Context, sess domain.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	if _, err := s.loadEditable(ctx, sess, id, employeeerrors.ErrCannotDeleteSelf); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, sess.CompanyID, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.afterWrite(ctx, sess.CompanyID)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

// afterWrite drops the options and analytics caches and the company's
// loaded policy.
func (s *service) afterWrite(ctx context.Context, companyID string) {
	s.roles.InvalidateCompany(companyID)

	if s.analytics != nil {
		if err := s.analytics.Invalidate(ctx, companyID); err != nil {
			s.logger.Error("failed to invalidate analytics cache",
				zap.Error(err),
				zap.String("company_id", companyID),
			)
		}
	}

	if s.rdb != nil {
		cacheKey := GetEmployeeOptionsKey(companyID)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate employee options cache",
				zap.Error(err),
				zap.String("key", cacheKey),
			)
		}
	}
}
