package route

import (
	"github.com/SeakMengs/NorthwindSite/internal/controller"
	"github.com/SeakMengs/NorthwindSite/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Forms(r *gin.RouterGroup, sc *controller.SubmissionController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimiterMiddleware)
	{
		v1.POST("/contact", sc.Contact)
		v1.POST("/consultations", sc.Consultation)
		v1.POST("/careers/applications", sc.JobApplication)
		v1.POST("/newsletter/subscribe", sc.Newsletter)
	}
}
