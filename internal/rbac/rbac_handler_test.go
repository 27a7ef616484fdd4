package rbac_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-certtrack/internal/domain"
	"go-certtrack/internal/middleware"
	"go-certtrack/internal/rbac"
	rbacerrors "go-certtrack/internal/rbac/errors"
	rbacMock "go-certtrack/internal/rbac/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	middleware.SetSession(c, domain.Session{
		UserID:      "user-1",
		CompanyID:   "company-1",
		Permissions: domain.NewPermissionSet(domain.AllPermissions...),
	})
	return c, w
}

func TestRBACHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := rbacMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().CreateRole(gomock.Any(), gomock.Any(), rbac.CreateRoleRequest{Name: "Auditor"}).
			Return(rbac.RoleResponse{ID: "r1", Name: "Auditor"}, nil)

		c, w := newTestContext(http.MethodPost, "/api/Role", `{"name":"Auditor"}`)
		rbac.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
	})

	t.Run("missing name", func(t *testing.T) {
		svc := rbacMock.NewMockService(gomock.NewController(t))

		c, w := newTestContext(http.MethodPost, "/api/Role", `{}`)
		rbac.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRBACHandler_Delete(t *testing.T) {
	t.Run("domain error mapped", func(t *testing.T) {
		svc := rbacMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().DeleteRole(gomock.Any(), gomock.Any(), "r1").Return(rbacerrors.ErrRoleInUse)

		c, w := newTestContext(http.MethodDelete, "/api/Role/r1", "")
		c.Params = gin.Params{{Key: "id", Value: "r1"}}
		rbac.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unexpected error hides details", func(t *testing.T) {
		svc := rbacMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().DeleteRole(gomock.Any(), gomock.Any(), "r1").Return(errors.New("db down"))

		c, w := newTestContext(http.MethodDelete, "/api/Role/r1", "")
		c.Params = gin.Params{{Key: "id", Value: "r1"}}
		rbac.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db down")
	})
}

func TestRBACRoutes_RequirePermission(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := rbacMock.NewMockService(ctrl)

	svc.EXPECT().Enforce(domain.EnforceRequestFor("user-1", "company-1", domain.PermManageRoles)).Return(false, nil)

	r := gin.New()
	api := r.Group("/api", func(c *gin.Context) {
		middleware.SetSession(c, domain.Session{UserID: "user-1", CompanyID: "company-1"})
		c.Next()
	})
	rbac.RegisterRoutes(api, rbac.NewHandler(svc), svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/Role", strings.NewReader(`{"name":"x"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
