package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	appcontext "github.com/SeakMengs/NorthwindSite/internal/app_context"
	"github.com/SeakMengs/NorthwindSite/internal/auth"
	"github.com/SeakMengs/NorthwindSite/internal/submission"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/gin-gonic/gin"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index      *IndexController
	Auth       *AuthController
	Submission *SubmissionController
	Career     *CareerController
	Site       *SiteController
	Admin      *AdminController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:      &IndexController{baseController: bc},
		Auth:       &AuthController{baseController: bc},
		Submission: &SubmissionController{baseController: bc},
		Career:     &CareerController{baseController: bc},
		Site:       &SiteController{baseController: bc},
		Admin:      &AdminController{baseController: bc},
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}

// Maps a submission outcome onto the response envelope.
func (b *baseController) respondSubmission(ctx *gin.Context, result submission.Result, err error) {
	if err == nil {
		util.ResponseSuccessWithMessage(ctx, http.StatusCreated, result.Message, result)
		return
	}

	var validationErr *submission.ValidationError
	var duplicateErr *submission.DuplicateError
	var persistenceErr *submission.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		util.ResponseFailed(ctx, http.StatusBadRequest, validationErr.Message, []util.ApiError{{Field: validationErr.Field, Message: validationErr.Message}}, nil)
	case errors.As(err, &duplicateErr):
		util.ResponseFailed(ctx, http.StatusConflict, duplicateErr.Message, []util.ApiError{{Field: "email", Message: duplicateErr.Message}}, nil)
	case errors.As(err, &persistenceErr):
		b.app.Logger.Errorw("Submission failed", "path", ctx.FullPath(), "error", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, persistenceErr.Message, []util.ApiError{{Field: "submission", Message: persistenceErr.Message}}, nil)
	default:
		b.app.Logger.Errorw("Submission failed", "path", ctx.FullPath(), "error", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, submission.MessageSubmitFailed, []util.ApiError{{Field: "submission", Message: submission.MessageSubmitFailed}}, nil)
	}
}
