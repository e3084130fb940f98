package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"github.com/SeakMengs/NorthwindSite/internal/notification"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	*baseController
}

const (
	ErrUnknownTemplateType = "unknown template type"
	ErrUnknownFormType     = "unknown form type"
)

func (ac AdminController) Me(ctx *gin.Context) {
	user, err := ac.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (ac AdminController) ListEmailTemplates(ctx *gin.Context) {
	templates, err := ac.app.Repository.EmailTemplate.List(ctx, nil)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load email templates", util.GenerateErrorMessages(err, "templates"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"templates": templates,
		"kinds":     notification.Kinds,
	})
}

func (ac AdminController) UpsertEmailTemplate(ctx *gin.Context) {
	type Request struct {
		Name        string `json:"name" form:"name" binding:"omitempty,max=120"`
		Description string `json:"description" form:"description" binding:"omitempty,max=500"`
		Subject     string `json:"subject" form:"subject" binding:"required,strNotEmpty,max=300"`
		HTMLContent string `json:"htmlContent" form:"htmlContent" binding:"required,strNotEmpty"`
		IsActive    bool   `json:"isActive" form:"isActive"`
	}
	var body Request

	kind := notification.Kind(ctx.Param("type"))
	if !kind.Valid() {
		util.ResponseFailed(ctx, http.StatusNotFound, "Template type not found", util.GenerateErrorMessages(errors.New(ErrUnknownTemplateType), "type"), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	// A template that does not parse would silently fall back to the default
	// on every send, so reject it up front.
	if _, err := notification.NewTextRenderer().Render(body.Subject, notification.RenderContext{}); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid subject template", util.GenerateErrorMessages(err, "subject"), nil)
		return
	}
	if _, err := notification.NewHTMLRenderer().Render(body.HTMLContent, notification.RenderContext{}); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid html template", util.GenerateErrorMessages(err, "htmlContent"), nil)
		return
	}

	saved, err := ac.app.Repository.EmailTemplate.Upsert(ctx, nil, &model.EmailTemplate{
		TemplateType: string(kind),
		Name:         body.Name,
		Description:  body.Description,
		Subject:      body.Subject,
		HTMLContent:  body.HTMLContent,
		IsActive:     body.IsActive,
	})
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save email template", util.GenerateErrorMessages(err, "template"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"template": saved,
	})
}

func (ac AdminController) ListSubmissions(ctx *gin.Context) {
	page, pageSize := util.ReadPagination(ctx)

	var (
		items any
		total int64
		err   error
	)

	switch constant.FormType(ctx.Param("form")) {
	case constant.FormContact:
		rows, n, e := ac.app.Repository.ContactSubmission.List(ctx, nil, page, pageSize)
		items, total, err = rows, n, e
	case constant.FormConsultation:
		rows, n, e := ac.app.Repository.ConsultationRequest.List(ctx, nil, page, pageSize)
		items, total, err = rows, n, e
	case constant.FormJobApplication:
		rows, n, e := ac.app.Repository.JobApplication.List(ctx, nil, page, pageSize)
		items, total, err = rows, n, e
	case constant.FormNewsletter:
		rows, n, e := ac.app.Repository.Newsletter.List(ctx, nil, page, pageSize)
		items, total, err = rows, n, e
	default:
		util.ResponseFailed(ctx, http.StatusNotFound, "Form not found", util.GenerateErrorMessages(fmt.Errorf("%s: %q", ErrUnknownFormType, ctx.Param("form")), "form"), nil)
		return
	}
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load submissions", util.GenerateErrorMessages(err, "form"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"items":     items,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	})
}

func (ac AdminController) SendAnnouncement(ctx *gin.Context) {
	type Request struct {
		Title    string `json:"title" form:"title" binding:"required,strNotEmpty,max=200"`
		Body     string `json:"body" form:"body" binding:"required,strNotEmpty,max=20000"`
		CTAURL   string `json:"ctaUrl" form:"ctaUrl" binding:"omitempty,url,max=300"`
		CTALabel string `json:"ctaLabel" form:"ctaLabel" binding:"omitempty,max=60"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	recipients, err := ac.app.Repository.Newsletter.ListActiveEmails(ctx, nil)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load subscribers", util.GenerateErrorMessages(err, "recipients"), nil)
		return
	}

	result, err := ac.app.Notifier.Broadcast(ctx.Request.Context(), notification.Announcement{
		Title:    body.Title,
		Body:     body.Body,
		CTAURL:   body.CTAURL,
		CTALabel: body.CTALabel,
	}, recipients)
	if err != nil {
		ac.app.Logger.Errorw("Announcement interrupted", "error", err, "sent", result.Sent, "failed", result.Failed)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Announcement interrupted", util.GenerateErrorMessages(err, "announcement"), result)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"recipients": len(recipients),
		"sent":       result.Sent,
		"failed":     result.Failed,
	})
}
