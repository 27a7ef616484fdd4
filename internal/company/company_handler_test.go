package company_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-certtrack/internal/company"
	companyerrors "go-certtrack/internal/company/errors"
	companyMock "go-certtrack/internal/company/mock"
	"go-certtrack/internal/domain"
	"go-certtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCompanyHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		svc := companyMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Signup(gomock.Any(), gomock.Any()).
			Return(company.SignupResponse{CompanyID: "c1", CompanyName: "Acme"}, nil)

		r := gin.New()
		r.POST("/signup", company.NewHandler(svc).Signup)

		w := httptest.NewRecorder()
		body := `{"companyName":"Acme","ownerName":"Ada","adminEmail":"ada@acme.io","adminPassword":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["ok"])
	})

	t.Run("conflict", func(t *testing.T) {
		svc := companyMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Signup(gomock.Any(), gomock.Any()).
			Return(company.SignupResponse{}, companyerrors.ErrAdminEmailTaken)

		r := gin.New()
		r.POST("/signup", company.NewHandler(svc).Signup)

		w := httptest.NewRecorder()
		body := `{"companyName":"Acme","ownerName":"Ada","adminEmail":"ada@acme.io","adminPassword":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("bad email", func(t *testing.T) {
		svc := companyMock.NewMockService(gomock.NewController(t))

		r := gin.New()
		r.POST("/signup", company.NewHandler(svc).Signup)

		w := httptest.NewRecorder()
		body := `{"companyName":"Acme","ownerName":"Ada","adminEmail":"nope","adminPassword":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCompanyHandler_GetMe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := companyMock.NewMockService(gomock.NewController(t))
	sess := domain.Session{UserID: "u1", CompanyID: "c1"}

	svc.EXPECT().GetMe(gomock.Any(), sess).Return(company.CompanyResponse{ID: "c1", CompanyName: "Acme"}, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetSession(c, sess)
		c.Next()
	})
	r.GET("/me", company.NewHandler(svc).GetMe)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"companyName":"Acme"`)
}
