package controller

import (
	"errors"
	"net/http"

	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CareerController struct {
	*baseController
}

func (cc CareerController) ListCareers(ctx *gin.Context) {
	listings, err := cc.app.Repository.CareerListing.ListActive(ctx, nil)
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load careers", util.GenerateErrorMessages(err, "careers"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"careers": listings,
	})
}

func (cc CareerController) GetCareer(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := uuid.Validate(id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Career not found", []util.ApiError{{Field: "id", Message: "Career not found"}}, nil)
		return
	}

	listing, err := cc.app.Repository.CareerListing.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Career not found", util.GenerateErrorMessages(err, "id"), nil)
			return
		}

		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load career", util.GenerateErrorMessages(err, "id"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"career": listing,
	})
}
