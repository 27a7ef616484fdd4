package certificate_test

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"

	"go-certtrack/internal/certificate"
	"go-certtrack/internal/user"
	userMock "go-certtrack/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// memoryRepo applies the same company and owner predicates as the SQL repository.
type memoryRepo struct {
	mu    sync.Mutex
	rows  []certificate.Certificate
	calls []string
}

func (r *memoryRepo) WithTx(*sql.Tx) certificate.Repository { return r }

func (r *memoryRepo) filter(keep func(certificate.Certificate) bool) []certificate.Certificate {
	var out []certificate.Certificate
	for _, c := range r.rows {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *memoryRepo) FindAllByCompany(_ context.Context, companyID string) ([]certificate.Certificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(c certificate.Certificate) bool { return c.CompanyID.String() == companyID }), nil
}

func (r *memoryRepo) FindByOwner(_ context.Context, companyID, userID string) ([]certificate.Certificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(c certificate.Certificate) bool {
		return c.CompanyID.String() == companyID && c.UserID.String() == userID
	}), nil
}

func (r *memoryRepo) FindByID(_ context.Context, companyID, id string) (*certificate.Certificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if c.CompanyID.String() == companyID && c.ID.String() == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepo) Create(_ context.Context, c *certificate.Certificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "create")
	r.rows = append(r.rows, *c)
	return nil
}

func (r *memoryRepo) Update(_ context.Context, c *certificate.Certificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "update")
	for i := range r.rows {
		if r.rows[i].ID == c.ID {
			r.rows[i] = *c
		}
	}
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, companyID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "delete")
	for i, c := range r.rows {
		if c.CompanyID.String() == companyID && c.ID.String() == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryRepo) SetProofKey(_ context.Context, companyID, id, key string) error {
	return nil
}

func newScenarioService(t *testing.T, repo certificate.Repository, users user.Repository) (certificate.Service, sqlmock.Sqlmock) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return certificate.NewService(db, repo, users, nil, nil, nil, nil), sqlMock
}

func TestScenario_AdminCreatesForEmployee(t *testing.T) {
	companyID := uuid.NewString()
	admin := adminSession(companyID)
	e := employeeSession(companyID)
	f := employeeSession(companyID)

	users := userMock.NewMockRepository(gomock.NewController(t))
	users.EXPECT().FindByID(gomock.Any(), companyID, e.UserID).Return(&user.User{ID: uuid.MustParse(e.UserID)}, nil)

	repo := &memoryRepo{}
	svc, sqlMock := newScenarioService(t, repo, users)
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	created, err := svc.Create(context.Background(), admin, certificate.CreateCertificateRequest{
		CourseName:   "Kubernetes Administrator",
		Organization: "CNCF",
		Status:       "started",
		UserID:       e.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, e.UserID, created.UserID)

	eList, err := svc.List(context.Background(), e)
	require.NoError(t, err)
	require.Len(t, eList, 1)
	assert.Equal(t, created.ID, eList[0].ID)
	assert.Equal(t, "started", eList[0].Status)

	fList, err := svc.List(context.Background(), f)
	require.NoError(t, err)
	assert.Empty(t, fList)

	// another company never sees it, even as admin
	otherAdmin, err := svc.List(context.Background(), adminSession(uuid.NewString()))
	require.NoError(t, err)
	assert.Empty(t, otherAdmin)
}

func TestScenario_EmployeeDeletesOthersCertificate(t *testing.T) {
	companyID := uuid.NewString()
	owner := employeeSession(companyID)
	intruder := employeeSession(companyID)

	repo := &memoryRepo{}
	svc, sqlMock := newScenarioService(t, repo, nil)
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	created, err := svc.Create(context.Background(), owner, certificate.CreateCertificateRequest{
		CourseName:   "Terraform",
		Organization: "HashiCorp",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), intruder, created.ID)

	assert.Error(t, err)
	assert.Equal(t, []string{"create"}, repo.calls)
	assert.NoError(t, sqlMock.ExpectationsWereMet())

	still, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, still, 1)
}
