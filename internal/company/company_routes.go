package company

import (
	"go-certtrack/internal/domain"
	"go-certtrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts signup on the public group and the rest on the
// authenticated group.
func RegisterRoutes(public, protected *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	public.POST("/Company/signup",
		middleware.RateLimitByIP(0.05, 3),
		handler.Signup,
	)

	company := protected.Group("/Company")
	{
		company.GET("/me",
			middleware.RateLimitByUser(2, 10),
			handler.GetMe,
		)
		company.PUT("/me",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(enforcer, domain.PermManageRoles),
			handler.UpdateMe,
		)
	}
}
