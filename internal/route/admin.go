package route

import (
	"github.com/SeakMengs/NorthwindSite/internal/controller"
	"github.com/SeakMengs/NorthwindSite/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_AdminAuth(r *gin.RouterGroup, ac *controller.AuthController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/admin/auth")
	{
		v1.POST("/login", middleware.RateLimiterMiddleware, ac.Login)
		v1.POST("/jwt/access/verify", ac.VerifyJwtAccessToken)
		v1.POST("/refresh", ac.RefreshAccessToken)
	}
}

func V1_Admin(r *gin.RouterGroup, ac *controller.AdminController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/admin")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("/me", ac.Me)
		v1.GET("/email-templates", ac.ListEmailTemplates)
		v1.PUT("/email-templates/:type", ac.UpsertEmailTemplate)
		v1.GET("/submissions/:form", ac.ListSubmissions)
		v1.POST("/announcements", ac.SendAnnouncement)
	}
}
