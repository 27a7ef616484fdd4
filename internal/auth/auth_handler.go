package auth

import (
	"net/http"
	"strings"

	autherrors "go-certtrack/internal/auth/errors"
	"go-certtrack/internal/middleware"
	"go-certtrack/internal/shared/apperror"
	"go-certtrack/internal/shared/contextutil"
	"go-certtrack/internal/shared/response"
	"go-certtrack/internal/shared/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const refreshCookie = "refresh_token"

type Handler struct {
	service Service
	tokens  *token.Manager
	secure  bool
	logger  *zap.Logger
}

// NewHandler sets Secure on auth cookies when secureCookies is true.
func NewHandler(service Service, tokens *token.Manager, secureCookies bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, tokens: tokens, secure: secureCookies, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// isWebClient decides whether tokens also travel as cookies.
// Non-browser clients send X-Client-Type explicitly.
func isWebClient(c *gin.Context) bool {
	switch strings.ToLower(c.GetHeader("X-Client-Type")) {
	case "web":
		return true
	case "":
		return strings.Contains(c.GetHeader("User-Agent"), "Mozilla")
	default:
		return false
	}
}

func (h *Handler) setAuthCookies(c *gin.Context, access, refresh string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessCookie,
		Value:    access,
		Path:     "/",
		MaxAge:   int(h.tokens.AccessTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     refreshCookie,
		Value:    refresh,
		Path:     "/",
		MaxAge:   int(h.tokens.RefreshTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearAuthCookies(c *gin.Context) {
	for _, name := range []string{middleware.AccessCookie, refreshCookie} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if isWebClient(c) {
		h.setAuthCookies(c, resp.Token, resp.RefreshToken)
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.GetMe(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), middleware.CurrentSession(c), req.NewPassword); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"}, nil)
}

// RefreshToken reads the token from the body, falling back to the cookie.
func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	_ = c.ShouldBindJSON(&req)

	raw := strings.TrimSpace(req.RefreshToken)
	if raw == "" {
		if cookie, err := c.Cookie(refreshCookie); err == nil {
			raw = cookie
		}
	}
	if raw == "" {
		h.writeServiceError(c, autherrors.ErrMissingRefreshToken)
		return
	}

	resp, err := h.service.RefreshToken(c.Request.Context(), raw)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if isWebClient(c) {
		h.setAuthCookies(c, resp.Token, resp.RefreshToken)
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	h.clearAuthCookies(c)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"}, nil)
}
