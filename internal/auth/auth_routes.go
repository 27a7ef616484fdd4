package auth

import (
	"go-certtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// LoginLimit is the per-IP signin rate.
type LoginLimit struct {
	PerSecond float64
	Burst     int
}

func RegisterRoutes(public, protected *gin.RouterGroup, handler *Handler, limit LoginLimit) {
	auth := public.Group("/Auth")
	{
		auth.POST("/signin", middleware.RateLimitByIP(rate.Limit(limit.PerSecond), limit.Burst), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(0.2, 5), handler.RefreshToken)
		auth.POST("/logout", handler.Logout)
	}

	me := protected.Group("/Auth")
	{
		me.GET("/me", middleware.RateLimitByUser(2, 10), handler.Me)
		me.POST("/reset-password", middleware.RateLimitByUser(0.1, 3), handler.ResetPassword)
	}
}
