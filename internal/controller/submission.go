package controller

import (
	"errors"
	"net/http"

	filestorage "github.com/SeakMengs/NorthwindSite/internal/file_storage"
	"github.com/SeakMengs/NorthwindSite/internal/submission"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	*baseController
}

// Field validation happens in the submission service, binding only decodes
// json, urlencoded or multipart bodies into the form struct.
func (sc SubmissionController) bind(ctx *gin.Context, form any) bool {
	if err := ctx.ShouldBind(form); err != nil {
		sc.app.Logger.Debugf("Failed to bind form: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err, "body"), nil)
		return false
	}
	return true
}

func (sc SubmissionController) Contact(ctx *gin.Context) {
	var form submission.ContactForm
	if !sc.bind(ctx, &form) {
		return
	}

	result, err := sc.app.Submissions.SubmitContact(ctx.Request.Context(), form)
	sc.respondSubmission(ctx, result, err)
}

func (sc SubmissionController) Consultation(ctx *gin.Context) {
	var form submission.ConsultationForm
	if !sc.bind(ctx, &form) {
		return
	}

	result, err := sc.app.Submissions.SubmitConsultation(ctx.Request.Context(), form)
	sc.respondSubmission(ctx, result, err)
}

func (sc SubmissionController) JobApplication(ctx *gin.Context) {
	var form submission.JobApplicationForm
	if !sc.bind(ctx, &form) {
		return
	}

	fileHeader, err := ctx.FormFile("resume")
	switch {
	case err == nil:
		src, err := fileHeader.Open()
		if err != nil {
			sc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to read resume", util.GenerateErrorMessages(errors.New("failed to read resume"), "resume"), nil)
			return
		}
		defer src.Close()

		form.Resume = &filestorage.File{
			Name:        fileHeader.Filename,
			Size:        fileHeader.Size,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Reader:      src,
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// Left nil, the service reports the missing resume.
	default:
		sc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err, "resume"), nil)
		return
	}

	result, err := sc.app.Submissions.SubmitJobApplication(ctx.Request.Context(), form)
	sc.respondSubmission(ctx, result, err)
}

func (sc SubmissionController) Newsletter(ctx *gin.Context) {
	var form submission.NewsletterForm
	if !sc.bind(ctx, &form) {
		return
	}

	result, err := sc.app.Submissions.SubmitNewsletter(ctx.Request.Context(), form)
	sc.respondSubmission(ctx, result, err)
}
