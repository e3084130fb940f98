package route

import (
	"github.com/SeakMengs/NorthwindSite/internal/controller"
	"github.com/gin-gonic/gin"
)

func V1_Careers(r *gin.RouterGroup, cc *controller.CareerController) {
	v1 := r.Group("/v1/careers")
	{
		v1.GET("", cc.ListCareers)
		v1.GET("/:id", cc.GetCareer)
	}
}

func V1_Site(r *gin.RouterGroup, sc *controller.SiteController) {
	v1 := r.Group("/v1/site")
	{
		v1.GET("/settings", sc.Settings)
	}
}
