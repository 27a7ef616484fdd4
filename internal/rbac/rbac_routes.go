package rbac

import (
	"go-certtrack/internal/domain"
	"go-certtrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already run AuthMiddleware and LoadSession.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	roles := r.Group("/Role")
	{
		roles.GET("/all",
			middleware.RequireAny(enforcer, domain.PermManageUsers, domain.PermManageRoles),
			handler.List,
		)
		roles.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(enforcer, domain.PermManageRoles),
			handler.Create,
		)
		roles.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(enforcer, domain.PermManageRoles),
			handler.Update,
		)
		roles.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(enforcer, domain.PermManageRoles),
			handler.Delete,
		)
	}
}
