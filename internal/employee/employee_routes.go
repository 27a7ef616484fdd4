package employee

import (
	"go-certtrack/internal/domain"
	"go-certtrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(protected *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	manage := middleware.RBACAuthorize(enforcer, domain.PermManageUsers)

	employees := protected.Group("/Employee")
	{
		employees.GET("/all",
			middleware.RateLimitByUser(3, 10),
			manage,
			handler.GetAll,
		)

		employees.GET("/options",
			middleware.RateLimitByUser(5, 20),
			manage,
			handler.GetOptions,
		)

		employees.POST("/create",
			middleware.RateLimitByUser(0.2, 2),
			manage,
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			manage,
			handler.Update,
		)

		employees.PUT("/:id/role",
			middleware.RateLimitByUser(0.5, 2),
			manage,
			handler.UpdateRole,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			manage,
			handler.Delete,
		)
	}
}
