package util

import (
	"net/http"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func BuildResponseSuccess(message string, data any) Response {
	if message == "" {
		message = constant.REQUEST_SUCCESSFUL
	}

	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ResponseSuccess(ctx *gin.Context, data any) {
	ResponseSuccessWithMessage(ctx, http.StatusOK, "", data)
}

func ResponseSuccessWithMessage(ctx *gin.Context, code int, message string, data any) {
	if data == nil {
		data = gin.H{}
	}

	ctx.JSON(code, BuildResponseSuccess(message, data))
	ctx.Abort()
}

func BuildResponseFailed(message string, err any, data any) Response {
	if message == "" {
		message = constant.REQUEST_UNSUCCESSFUL
	}

	if e, ok := err.(error); ok {
		err = GenerateErrorMessages(e)
	}

	if err == nil {
		err = []ApiError{}
	}

	if data == nil {
		data = gin.H{}
	}

	return Response{
		Success: false,
		Message: message,
		Errors:  err,
		Data:    data,
	}
}

func ResponseFailed(ctx *gin.Context, code int, message string, err any, data any) {
	ctx.JSON(code, BuildResponseFailed(message, err, data))
	ctx.Abort()
}
