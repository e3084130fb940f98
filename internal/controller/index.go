package controller

import (
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"message": "Welcome to the " + util.GetAppName() + " api",
	})
}

// Healthz reports liveness only, it does not touch the database.
func (ic IndexController) Healthz(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"status": "ok",
		"env":    ic.app.Config.ENV,
	})
}
