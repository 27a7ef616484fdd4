package middleware

import (
	"go-certtrack/internal/domain"
	"go-certtrack/internal/shared/apperror"
	"go-certtrack/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Enforcer is satisfied by rbac.Service.
type Enforcer interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// RBACAuthorize lets the request through when the caller holds perm.
func RBACAuthorize(enforcer Enforcer, perm domain.Permission) gin.HandlerFunc {
	return RequireAny(enforcer, perm)
}

// RequireAny lets the request through when the caller holds at least one of perms.
func RequireAny(enforcer Enforcer, perms ...domain.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ctxUserID)
		companyID := c.GetString(ctxCompanyID)
		if userID == "" || companyID == "" {
			response.Abort(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Code, apperror.ErrUnauthorized.Message)
			return
		}

		for _, p := range perms {
			allowed, err := enforcer.Enforce(domain.EnforceRequestFor(userID, companyID, p))
			if err != nil {
				response.Abort(c, apperror.ErrInternal.HTTPStatus, apperror.ErrInternal.Code, apperror.ErrInternal.Message)
				return
			}
			if allowed {
				c.Next()
				return
			}
		}

		response.Abort(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message)
	}
}
