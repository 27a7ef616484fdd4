package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-certtrack/internal/auth"
	autherrors "go-certtrack/internal/auth/errors"
	authMock "go-certtrack/internal/auth/mock"
	"go-certtrack/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *authMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := authMock.NewMockService(gomock.NewController(t))
	h := auth.NewHandler(svc, token.NewManager("s", 15*time.Minute, time.Hour), false)

	r := gin.New()
	r.POST("/signin", h.Login)
	r.POST("/refresh", h.RefreshToken)
	r.POST("/logout", h.Logout)
	return r, svc
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("web client receives cookies", func(t *testing.T) {
		r, svc := newAuthRouter(t)
		svc.EXPECT().Login(gomock.Any(), "ada@acme.io", "secret1").
			Return(auth.TokenResponse{Token: "a", RefreshToken: "r"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(`{"email":"ada@acme.io","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "web")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"a"`)
		assert.Len(t, w.Result().Cookies(), 2)
	})

	t.Run("cli client gets no cookies", func(t *testing.T) {
		r, svc := newAuthRouter(t)
		svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(auth.TokenResponse{Token: "a", RefreshToken: "r"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(`{"email":"ada@acme.io","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "cli")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		r, svc := newAuthRouter(t)
		svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(auth.TokenResponse{}, autherrors.ErrInvalidCredentials)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(`{"email":"ada@acme.io","password":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/refresh", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("cookie fallback", func(t *testing.T) {
		r, svc := newAuthRouter(t)
		svc.EXPECT().RefreshToken(gomock.Any(), "from-cookie").
			Return(auth.TokenResponse{Token: "a2", RefreshToken: "r2"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "from-cookie"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.Equal(t, "", c.Value)
		assert.True(t, c.MaxAge < 0)
	}
}
