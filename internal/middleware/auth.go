package middleware

import (
	"net/http"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/gin-gonic/gin"
)

func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	claim, err := m.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid token", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	if claim.Type != constant.JWT_TYPE_ACCESS {
		m.app.Logger.Debugf("Invalid token type: %s", claim.Type)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid access token type", []util.ApiError{{Field: "unauthorized", Message: "Expected an access token"}}, nil)
		return
	}

	ctx.Set("user", claim.User)
	ctx.Next()
}
