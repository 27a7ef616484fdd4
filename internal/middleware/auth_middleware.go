package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go-certtrack/internal/shared/apperror"
	"go-certtrack/internal/shared/response"
	"go-certtrack/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID    = "user_id"
	ctxCompanyID = "company_id"
	ctxSession   = "session"
)

// AccessCookie is read when no Authorization header is sent.
const AccessCookie = "access_token"

func bearerToken(c *gin.Context) string {
	raw, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if found && strings.TrimSpace(raw) != "" {
		return strings.TrimSpace(raw)
	}
	if cookie, err := c.Cookie(AccessCookie); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware verifies the access token and stores its user and company ids.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found")
			return
		}

		claims, err := tokens.Parse(raw, token.TypeAccess)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, token.ErrExpired) {
				msg = "Token expired"
			}
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, msg)
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxCompanyID, claims.CompanyID)
		c.Next()
	}
}
