package certificate_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-certtrack/internal/certificate"
	certerrors "go-certtrack/internal/certificate/errors"
	certMock "go-certtrack/internal/certificate/mock"
	"go-certtrack/internal/domain"
	"go-certtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestContext(method, path, body string, sess domain.Session) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	middleware.SetSession(c, sess)
	return c, w
}

func TestCertificateHandler_Create(t *testing.T) {
	sess := employeeSession("company-1")

	t.Run("success", func(t *testing.T) {
		svc := certMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Create(gomock.Any(), sess, certificate.CreateCertificateRequest{CourseName: "Go", Organization: "Acme"}).
			Return(certificate.CertificateResponse{ID: "c1", CourseName: "Go"}, nil)

		c, w := newTestContext(http.MethodPost, "/api/Certification/create", `{"courseName":"Go","organization":"Acme","companyId":"evil"}`, sess)
		certificate.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"c1"`)
	})

	t.Run("validation error from service", func(t *testing.T) {
		svc := certMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Create(gomock.Any(), sess, gomock.Any()).Return(certificate.CertificateResponse{}, certerrors.ErrCourseNameRequired)

		c, w := newTestContext(http.MethodPost, "/api/Certification/create", `{"organization":"Acme"}`, sess)
		certificate.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := certMock.NewMockService(gomock.NewController(t))

		c, w := newTestContext(http.MethodPost, "/api/Certification/create", `{"courseLink":"not a url"}`, sess)
		certificate.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCertificateHandler_Delete(t *testing.T) {
	sess := employeeSession("company-1")
	svc := certMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().Delete(gomock.Any(), sess, "c9").Return(certerrors.ErrCertificateForbidden)

	c, w := newTestContext(http.MethodDelete, "/api/Certification/c9", "", sess)
	c.Params = gin.Params{{Key: "id", Value: "c9"}}
	certificate.NewHandler(svc).Delete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

type denyAll struct{}

func (denyAll) Enforce(domain.EnforceRequest) (bool, error) { return false, nil }

func TestCertificateRoutes_RequirePermission(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := certMock.NewMockService(gomock.NewController(t))

	r := gin.New()
	api := r.Group("/api", func(c *gin.Context) {
		middleware.SetSession(c, employeeSession("company-1"))
		c.Next()
	})
	certificate.RegisterRoutes(api, certificate.NewHandler(svc), denyAll{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/Certification/all", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
