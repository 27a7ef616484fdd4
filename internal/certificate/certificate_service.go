package certificate

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	"go-certtrack/internal/activity"
	certerrors "go-certtrack/internal/certificate/errors"
	"go-certtrack/internal/domain"
	"go-certtrack/internal/events"
	"go-certtrack/internal/messaging/kafka"
	"go-certtrack/internal/shared/apperror"
	"go-certtrack/internal/shared/contextutil"
	"go-certtrack/internal/storage"
	"go-certtrack/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dashboardRecentLimit = 5

//go:generate mockgen -source=certificate_service.go -destination=mock/certificate_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, sess domain.Session) ([]CertificateResponse, error)
	ListMine(ctx context.Context, sess domain.Session) ([]CertificateResponse, error)
	GetByID(ctx context.Context, sess domain.Session, id string) (CertificateResponse, error)
	Create(ctx context.Context, sess domain.Session, req CreateCertificateRequest) (CertificateResponse, error)
	Update(ctx context.Context, sess domain.Session, id string, req UpdateCertificateRequest) (CertificateResponse, error)
	Delete(ctx context.Context, sess domain.Session, id string) error
	Analytics(ctx context.Context, sess domain.Session) (AnalyticsResponse, error)
	Dashboard(ctx context.Context, sess domain.Session) (DashboardResponse, error)
	RequestProofUpload(ctx context.Context, sess domain.Session, id string, req ProofUploadRequest) (ProofUploadResponse, error)
	ProofURL(ctx context.Context, sess domain.Session, id string) (ProofURLResponse, error)
	Activity(ctx context.Context, sess domain.Session, id string) ([]activity.ActivityResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	users      user.Repository
	outbox     kafka.OutboxRepository
	cache      *AnalyticsCache
	proofs     storage.ProofStorage
	activities activity.Service
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	users user.Repository,
	outbox kafka.OutboxRepository,
	cache *AnalyticsCache,
	proofs storage.ProofStorage,
	activities activity.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("certificate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("certificate.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		users:      users,
		outbox:     outbox,
		cache:      cache,
		proofs:     proofs,
		activities: activities,
		logger:     l,
	}
}

func (s *service) List(ctx context.Context, sess domain.Session) ([]CertificateResponse, error) {
	certs, err := s.scoped(ctx, sess)
	if err != nil {
		return nil, err
	}
	resp := mapToListResponse(certs)
	if !sess.IsAdmin() || len(resp) == 0 {
		return resp, nil
	}

	names, err := s.directory(ctx, sess.CompanyID)
	if err != nil {
		return nil, err
	}
	for i := range resp {
		resp[i].OwnerName = ownerName(names, resp[i].UserID)
	}
	return resp, nil
}

// directory maps user ids of the company to display names.
func (s *service) directory(ctx context.Context, companyID string) (map[string]string, error) {
	users, err := s.users.FindOptionsByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("load user directory failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, user.MapRepositoryError(err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID.String()] = u.Name
	}
	return names, nil
}

func ownerName(names map[string]string, userID string) string {
	if name, ok := names[userID]; ok {
		return name
	}
	return UnknownEmployee
}

// scoped returns the whole company for admins and the caller's own rows otherwise.
func (s *service) scoped(ctx context.Context, sess domain.Session) ([]Certificate, error) {
	if !sess.Authenticated() {
		return nil, apperror.ErrUnauthorized
	}

	var (
		certs []Certificate
		err   error
	)
	if sess.IsAdmin() {
		certs, err = s.repo.FindAllByCompany(ctx, sess.CompanyID)
	} else {
		certs, err = s.repo.FindByOwner(ctx, sess.CompanyID, sess.UserID)
	}
	if err != nil {
		s.logger.Error("list certificates failed",
			zap.String("company_id", sess.CompanyID),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}
	return certs, nil
}

func (s *service) ListMine(ctx context.Context, sess domain.Session) ([]CertificateResponse, error) {
	if !sess.Authenticated() {
		return nil, apperror.ErrUnauthorized
	}
	certs, err := s.repo.FindByOwner(ctx, sess.CompanyID, sess.UserID)
	if err != nil {
		s.logger.Error("list own certificates failed", zap.String("user_id", sess.UserID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(certs), nil
}

func (s *service) GetByID(ctx context.Context, sess domain.Session, id string) (CertificateResponse, error) {
	cert, err := s.loadOwned(ctx, sess, id)
	if err != nil {
		return CertificateResponse{}, err
	}
	return mapToResponse(*cert), nil
}

// loadOwned loads a company certificate and checks the caller may act on it.
func (s *service) loadOwned(ctx context.Context, sess domain.Session, id string) (*Certificate, error) {
	if !sess.Authenticated() {
		return nil, apperror.ErrUnauthorized
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, certerrors.ErrCertificateNotFound
	}

	cert, err := s.repo.FindByID(ctx, sess.CompanyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !sess.CanActOn(cert.UserID.String()) {
		s.logger.Warn("certificate access denied",
			zap.String("certificate_id", id),
			zap.String("user_id", sess.UserID),
		)
		return nil, certerrors.ErrCertificateForbidden
	}
	return cert, nil
}

// resolveTarget checks that userID names a user of the caller's company.
func (s *service) resolveTarget(ctx context.Context, sess domain.Session, userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(userID))
	if err != nil {
		return uuid.Nil, certerrors.ErrInvalidTargetUser
	}
	if _, err := s.users.FindByID(ctx, sess.CompanyID, id.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, certerrors.ErrInvalidTargetUser
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (s *service) Create(ctx context.Context, sess domain.Session, req CreateCertificateRequest) (CertificateResponse, error) {
	if !sess.Authenticated() {
		return CertificateResponse{}, apperror.ErrUnauthorized
	}
	rid := contextutil.GetRequestID(ctx)

	courseName := strings.TrimSpace(req.CourseName)
	if courseName == "" {
		courseName = strings.TrimSpace(req.CertificateName)
	}
	if courseName == "" {
		return CertificateResponse{}, certerrors.ErrCourseNameRequired
	}
	organization := strings.TrimSpace(req.Organization)
	if organization == "" {
		return CertificateResponse{}, certerrors.ErrOrganizationRequired
	}
	status, ok := NormalizeStatus(req.Status)
	if !ok {
		return CertificateResponse{}, certerrors.ErrInvalidStatus
	}
	if status == "" {
		status = StatusInProgress
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return CertificateResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return CertificateResponse{}, err
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return CertificateResponse{}, certerrors.ErrInvalidDateRange
	}

	ownerID := uuid.MustParse(sess.UserID)
	target := strings.TrimSpace(req.UserID)
	if target != "" && target != sess.UserID {
		if sess.IsAdmin() {
			ownerID, err = s.resolveTarget(ctx, sess, target)
			if err != nil {
				return CertificateResponse{}, err
			}
		} else {
			s.logger.Debug("ignoring target user from non-admin",
				zap.String("request_id", rid),
				zap.String("user_id", sess.UserID),
			)
		}
	}

	cert := &Certificate{
		ID:              uuid.New(),
		UserID:          ownerID,
		CompanyID:       uuid.MustParse(sess.CompanyID),
		CourseName:      courseName,
		CourseLink:      strings.TrimSpace(req.CourseLink),
		Organization:    organization,
		CertificateName: strings.TrimSpace(req.CertificateName),
		Level:           strings.TrimSpace(req.Level),
		Category:        strings.TrimSpace(req.Category),
		Status:          status,
		StartDate:       startDate,
		EndDate:         endDate,
		Demo:            strings.TrimSpace(req.Demo),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create certificate begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CertificateResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, cert); err != nil {
		s.logger.Error("create certificate persist failed", zap.String("request_id", rid), zap.Error(err))
		return CertificateResponse{}, mapRepositoryError(err)
	}
	if err := s.enqueue(ctx, tx, events.CertificateCreated, cert, sess.UserID); err != nil {
		return CertificateResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create certificate commit failed", zap.String("request_id", rid), zap.Error(err))
		return CertificateResponse{}, err
	}
	s.invalidate(ctx, sess.CompanyID)

	s.logger.Info("certificate created",
		zap.String("request_id", rid),
		zap.String("certificate_id", cert.ID.String()),
		zap.String("owner_id", cert.UserID.String()),
	)
	return mapToResponse(*cert), nil
}

func (s *service) Update(ctx context.Context, sess domain.Session, id string, req UpdateCertificateRequest) (CertificateResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	cert, err := s.loadOwned(ctx, sess, id)
	if err != nil {
		return CertificateResponse{}, err
	}

	if err := applyPatch(cert, req); err != nil {
		return CertificateResponse{}, err
	}

	if req.UserID != nil {
		target := strings.TrimSpace(*req.UserID)
		if target != "" && target != cert.UserID.String() {
			if !sess.IsAdmin() {
				return CertificateResponse{}, certerrors.ErrCertificateForbidden
			}
			cert.UserID, err = s.resolveTarget(ctx, sess, target)
			if err != nil {
				return CertificateResponse{}, err
			}
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update certificate begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CertificateResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Update(ctx, cert); err != nil {
		s.logger.Error("update certificate persist failed", zap.String("request_id", rid), zap.Error(err))
		return CertificateResponse{}, mapRepositoryError(err)
	}
	if err := s.enqueue(ctx, tx, events.CertificateUpdated, cert, sess.UserID); err != nil {
		return CertificateResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update certificate commit failed", zap.String("request_id", rid), zap.Error(err))
		return CertificateResponse{}, err
	}
	s.invalidate(ctx, sess.CompanyID)

	s.logger.Info("certificate updated", zap.String("request_id", rid), zap.String("certificate_id", id))
	return mapToResponse(*cert), nil
}

func applyPatch(cert *Certificate, req UpdateCertificateRequest) error {
	if req.CourseName != nil {
		v := strings.TrimSpace(*req.CourseName)
		if v == "" {
			return certerrors.ErrCourseNameRequired
		}
		cert.CourseName = v
	}
	if req.Organization != nil {
		v := strings.TrimSpace(*req.Organization)
		if v == "" {
			return certerrors.ErrOrganizationRequired
		}
		cert.Organization = v
	}
	if req.Status != nil {
		st, ok := NormalizeStatus(*req.Status)
		if !ok {
			return certerrors.ErrInvalidStatus
		}
		cert.Status = st
	}
	if req.StartDate != nil {
		d, err := parseDate(*req.StartDate)
		if err != nil {
			return err
		}
		cert.StartDate = d
	}
	if req.EndDate != nil {
		d, err := parseDate(*req.EndDate)
		if err != nil {
			return err
		}
		cert.EndDate = d
	}
	if cert.StartDate != nil && cert.EndDate != nil && cert.EndDate.Before(*cert.StartDate) {
		return certerrors.ErrInvalidDateRange
	}

	setTrimmed(&cert.CourseLink, req.CourseLink)
	setTrimmed(&cert.CertificateName, req.CertificateName)
	setTrimmed(&cert.Level, req.Level)
	setTrimmed(&cert.Category, req.Category)
	setTrimmed(&cert.Demo, req.Demo)
	return nil
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func (s *service) Delete(ctx context.Context, sess domain.Session, id string) error {
	rid := contextutil.GetRequestID(ctx)

	cert, err := s.loadOwned(ctx, sess, id)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete certificate begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, sess.CompanyID, id); err != nil {
		s.logger.Error("delete certificate failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := s.enqueue(ctx, tx, events.CertificateDeleted, cert, sess.UserID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete certificate commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	s.invalidate(ctx, sess.CompanyID)

	s.logger.Info("certificate deleted", zap.String("request_id", rid), zap.String("certificate_id", id))
	return nil
}

// enqueue writes the lifecycle event on the same transaction as the change.
func (s *service) enqueue(ctx context.Context, tx *sql.Tx, eventType string, cert *Certificate, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.NewCertificateLifecycleEvent(
		eventType,
		cert.ID.String(),
		cert.CompanyID.String(),
		cert.UserID.String(),
		actorID,
	)
	event.CourseName = cert.CourseName
	event.Status = string(cert.Status)

	row, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		events.AggregateCertificate,
		event.CertificateID,
		eventType,
		events.CertificateLifecycleTopic,
		event,
	)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("certificate outbox persist failed",
			zap.String("certificate_id", event.CertificateID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) invalidate(ctx context.Context, companyID string) {
	if err := s.cache.Invalidate(ctx, companyID); err != nil {
		s.logger.Error("failed to invalidate analytics cache",
			zap.String("key", GetAnalyticsKey(companyID)),
			zap.Error(err),
		)
	}
}

func (s *service) Analytics(ctx context.Context, sess domain.Session) (AnalyticsResponse, error) {
	if !sess.Authenticated() {
		return AnalyticsResponse{}, apperror.ErrUnauthorized
	}
	if !sess.IsAdmin() {
		return s.buildAnalytics(ctx, sess)
	}
	return s.cache.Get(ctx, sess.CompanyID, func(ctx context.Context) (AnalyticsResponse, error) {
		return s.buildAnalytics(ctx, sess)
	})
}

func (s *service) buildAnalytics(ctx context.Context, sess domain.Session) (AnalyticsResponse, error) {
	certs, err := s.scoped(ctx, sess)
	if err != nil {
		return AnalyticsResponse{}, err
	}
	agg := Aggregate(certs)

	names, err := s.directory(ctx, sess.CompanyID)
	if err != nil {
		return AnalyticsResponse{}, err
	}
	for i := range agg.TopUsers {
		agg.TopUsers[i].Name = ownerName(names, agg.TopUsers[i].UserID)
	}

	resp := AnalyticsResponse{Aggregation: agg, CompanyWide: sess.IsAdmin()}
	if sess.IsAdmin() {
		resp.EmployeeCount, err = s.users.CountEmployees(ctx, sess.CompanyID)
		if err != nil {
			s.logger.Error("analytics count employees failed", zap.Error(err))
			return AnalyticsResponse{}, err
		}
	}
	return resp, nil
}

func (s *service) Dashboard(ctx context.Context, sess domain.Session) (DashboardResponse, error) {
	if !sess.Authenticated() {
		return DashboardResponse{}, apperror.ErrUnauthorized
	}
	certs, err := s.repo.FindByOwner(ctx, sess.CompanyID, sess.UserID)
	if err != nil {
		return DashboardResponse{}, mapRepositoryError(err)
	}

	totals := Aggregate(certs).Totals

	recent := make([]Certificate, len(certs))
	copy(recent, certs)
	sort.SliceStable(recent, func(i, j int) bool {
		a, b := recent[i].StartDate, recent[j].StartDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	if len(recent) > dashboardRecentLimit {
		recent = recent[:dashboardRecentLimit]
	}

	return DashboardResponse{
		Totals:         totals,
		CompletionRate: totals.CompletionRate(),
		Recent:         mapToListResponse(recent),
	}, nil
}

func (s *service) RequestProofUpload(ctx context.Context, sess domain.Session, id string, req ProofUploadRequest) (ProofUploadResponse, error) {
	if s.proofs == nil {
		return ProofUploadResponse{}, certerrors.ErrProofStorageUnavailable
	}
	ext, ok := storage.ProofExtension(req.ContentType)
	if !ok {
		return ProofUploadResponse{}, certerrors.ErrUnsupportedProofType
	}

	cert, err := s.loadOwned(ctx, sess, id)
	if err != nil {
		return ProofUploadResponse{}, err
	}

	key := storage.ProofKey(sess.CompanyID, cert.ID.String(), ext)
	url, err := s.proofs.PresignUpload(ctx, key, req.ContentType)
	if err != nil {
		s.logger.Error("presign proof upload failed", zap.String("certificate_id", id), zap.Error(err))
		return ProofUploadResponse{}, err
	}
	if err := s.repo.SetProofKey(ctx, sess.CompanyID, id, key); err != nil {
		return ProofUploadResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("proof upload issued", zap.String("certificate_id", id), zap.String("key", key))
	return ProofUploadResponse{UploadURL: url, Key: key}, nil
}

func (s *service) ProofURL(ctx context.Context, sess domain.Session, id string) (ProofURLResponse, error) {
	if s.proofs == nil {
		return ProofURLResponse{}, certerrors.ErrProofStorageUnavailable
	}
	cert, err := s.loadOwned(ctx, sess, id)
	if err != nil {
		return ProofURLResponse{}, err
	}
	if cert.ProofKey == "" {
		return ProofURLResponse{}, certerrors.ErrProofNotFound
	}

	url, err := s.proofs.PresignDownload(ctx, cert.ProofKey)
	if err != nil {
		s.logger.Error("presign proof download failed", zap.String("certificate_id", id), zap.Error(err))
		return ProofURLResponse{}, err
	}
	return ProofURLResponse{URL: url}, nil
}

// Activity outlives the certificate. Once the row is gone only admins can read it.
func (s *service) Activity(ctx context.Context, sess domain.Session, id string) ([]activity.ActivityResponse, error) {
	_, err := s.loadOwned(ctx, sess, id)
	if err != nil {
		if !errors.Is(err, certerrors.ErrCertificateNotFound) || !sess.IsAdmin() {
			return nil, err
		}
		if _, perr := uuid.Parse(id); perr != nil {
			return nil, err
		}
	}
	return s.activities.ListByCertificate(ctx, sess.CompanyID, id)
}
