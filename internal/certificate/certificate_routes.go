package certificate

import (
	"go-certtrack/internal/domain"
	"go-certtrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /Certification on an authenticated group. idempotency
// guards creation and may be nil when Redis is not available.
func RegisterRoutes(protected *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer, idempotency gin.HandlerFunc) {
	manage := middleware.RBACAuthorize(enforcer, domain.PermManageCertificates)

	certs := protected.Group("/Certification")
	{
		certs.GET("/all", manage, handler.List)
		certs.GET("/my", manage, handler.ListMine)
		certs.GET("/dashboard", manage, handler.Dashboard)
		certs.GET("/analytics",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(enforcer, domain.PermViewReports),
			handler.Analytics,
		)

		create := []gin.HandlerFunc{middleware.RateLimitByUser(0.5, 5), manage}
		if idempotency != nil {
			create = append(create, idempotency)
		}
		certs.POST("/create", append(create, handler.Create)...)

		certs.GET("/:id", manage, handler.GetByID)
		certs.PUT("/:id", middleware.RateLimitByUser(0.5, 5), manage, handler.Update)
		certs.DELETE("/:id", middleware.RateLimitByUser(0.5, 5), manage, handler.Delete)

		certs.POST("/:id/proof", middleware.RateLimitByUser(0.2, 3), manage, handler.RequestProofUpload)
		certs.GET("/:id/proof", manage, handler.ProofURL)
		certs.GET("/:id/activity", manage, handler.Activity)
	}
}
