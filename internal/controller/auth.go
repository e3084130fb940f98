package controller

import (
	"errors"
	"net/http"

	"github.com/SeakMengs/NorthwindSite/internal/auth"
	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	*baseController
}

const ErrInvalidCredentials = "invalid email or password"

func (ac AuthController) Login(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" form:"email" binding:"required,email"`
		Password string `json:"password" form:"password" binding:"required,strNotEmpty"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	admin, err := ac.app.Repository.AdminUser.GetByEmail(ctx, nil, body.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err, "email"), nil)
		return
	}

	if admin == nil || !util.ComparePassword(admin.PasswordHash, body.Password) {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid credentials", util.GenerateErrorMessages(errors.New(ErrInvalidCredentials), "email"), nil)
		return
	}

	ac.respondTokens(ctx, admin)
}

func (ac AuthController) VerifyJwtAccessToken(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "token"), gin.H{
			"tokenValid": false,
		})
		return
	}

	// Keep in mind that verify jwt token does not check database.
	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "token"), gin.H{
			"tokenValid": false,
		})
		return
	}

	if jwtClaims.Type != constant.JWT_TYPE_ACCESS {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("invalid jwt token type"), "token"), gin.H{
			"tokenValid": false,
		})
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"tokenValid": true,
		"payload":    jwtClaims,
	})
}

func (ac AuthController) RefreshAccessToken(ctx *gin.Context) {
	refreshToken, err := util.ReadRefreshToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "token"), nil)
		return
	}

	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(refreshToken)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "token"), nil)
		return
	}

	if jwtClaims.Type != constant.JWT_TYPE_REFRESH {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("invalid jwt token type"), "token"), nil)
		return
	}

	// The admin may have been removed since the refresh token was issued.
	admin, err := ac.app.Repository.AdminUser.GetByID(ctx, nil, jwtClaims.User.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("failed to refresh token"), "token"), nil)
		return
	}

	ac.respondTokens(ctx, admin)
}

func (ac AuthController) respondTokens(ctx *gin.Context, admin *model.AdminUser) {
	refreshToken, accessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
	})
	if err != nil || refreshToken == nil || accessToken == nil {
		ac.app.Logger.Errorf("Failed to generate tokens: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(errors.New("failed to generate token"), "token"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"refreshToken": *refreshToken,
		"accessToken":  *accessToken,
	})
}
