package middleware

import (
	"context"

	"go-certtrack/internal/domain"
	"go-certtrack/internal/shared/apperror"
	"go-certtrack/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type SessionResolver interface {
	ResolveSession(ctx context.Context, companyID, userID string) (domain.Session, error)
}

// LoadSession turns the authenticated ids into a full session with the
// caller's role and permissions. It must run after AuthMiddleware.
func LoadSession(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ctxUserID)
		companyID := c.GetString(ctxCompanyID)
		if userID == "" || companyID == "" {
			response.Abort(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Code, apperror.ErrUnauthorized.Message)
			return
		}

		sess, err := resolver.ResolveSession(c.Request.Context(), companyID, userID)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Abort(c, httpErr.Status, httpErr.Code, httpErr.Message)
			return
		}

		c.Set(ctxSession, sess)
		c.Next()
	}
}

// CurrentSession returns the session set by LoadSession, or an empty one.
func CurrentSession(c *gin.Context) domain.Session {
	if v, ok := c.Get(ctxSession); ok {
		if sess, ok := v.(domain.Session); ok {
			return sess
		}
	}
	return domain.Session{}
}

// SetSession is used by tests and internal callers that already hold a session.
func SetSession(c *gin.Context, sess domain.Session) {
	c.Set(ctxSession, sess)
	c.Set(ctxUserID, sess.UserID)
	c.Set(ctxCompanyID, sess.CompanyID)
}
