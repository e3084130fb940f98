package controller

import (
	"net/http"

	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/gin-gonic/gin"
)

type SiteController struct {
	*baseController
}

func (sc SiteController) Settings(ctx *gin.Context) {
	settings, err := sc.app.Repository.SiteSetting.GetAll(ctx, nil)
	if err != nil {
		sc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load site settings", util.GenerateErrorMessages(err, "settings"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"siteName": util.GetAppName(),
		"settings": settings,
	})
}
