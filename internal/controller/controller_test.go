package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	appcontext "github.com/SeakMengs/NorthwindSite/internal/app_context"
	"github.com/SeakMengs/NorthwindSite/internal/auth"
	"github.com/SeakMengs/NorthwindSite/internal/config"
	"github.com/SeakMengs/NorthwindSite/internal/controller"
	filestorage "github.com/SeakMengs/NorthwindSite/internal/file_storage"
	"github.com/SeakMengs/NorthwindSite/internal/mailer"
	"github.com/SeakMengs/NorthwindSite/internal/middleware"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"github.com/SeakMengs/NorthwindSite/internal/notification"
	ratelimiter "github.com/SeakMengs/NorthwindSite/internal/rate_limiter"
	"github.com/SeakMengs/NorthwindSite/internal/route"
	"github.com/SeakMengs/NorthwindSite/internal/submission"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(util.JSONTagName)
		if err := util.RegisterCustomValidations(v); err != nil {
			panic(err)
		}
	}
	os.Exit(m.Run())
}

type store[T any] struct {
	mu   sync.Mutex
	err  error
	rows []*T
}

func (s *store[T]) Create(_ context.Context, _ *gorm.DB, row *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return row, s.err
	}
	s.rows = append(s.rows, row)
	return row, nil
}

type notifier struct {
	mu    sync.Mutex
	kinds []notification.Kind
}

func (n *notifier) Send(_ context.Context, kind notification.Kind, _ notification.Payload) (mailer.Result, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.kinds = append(n.kinds, kind)
	return mailer.Result{Success: true, MessageID: "msg_1"}, nil
}

type uploader struct {
	names []string
}

func (u *uploader) Upload(_ context.Context, f filestorage.File) (string, error) {
	u.names = append(u.names, f.Name)
	return "https://cdn.northwind.dev/resumes/" + f.Name, nil
}

type fixture struct {
	router     *gin.Engine
	app        *appcontext.Application
	contacts   *store[model.ContactSubmission]
	jobs       *store[model.JobApplication]
	newsletter *store[model.NewsletterSubscription]
	notifier   *notifier
	uploader   *uploader
}

func newFixture(t *testing.T, rl config.RateLimiterConfig) *fixture {
	t.Helper()

	cfg := config.Config{
		ENV:         "test",
		RateLimiter: rl,
		Auth: config.AuthConfig{
			JWT_SECRET:      "test-secret",
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	}
	logger := util.NewNopLogger()

	f := &fixture{
		contacts:   &store[model.ContactSubmission]{},
		jobs:       &store[model.JobApplication]{},
		newsletter: &store[model.NewsletterSubscription]{},
		notifier:   &notifier{},
		uploader:   &uploader{},
	}

	submissions := submission.NewService(submission.Stores{
		Contact:        f.contacts,
		Consultation:   &store[model.ConsultationRequest]{},
		JobApplication: f.jobs,
		Newsletter:     f.newsletter,
	}, f.notifier, f.uploader, logger)
	t.Cleanup(submissions.Wait)

	f.app = &appcontext.Application{
		Config:      &cfg,
		Logger:      logger,
		Submissions: submissions,
		JWTService:  auth.NewJwt(cfg.Auth, logger),
	}

	mw := middleware.NewMiddleware(f.app, ratelimiter.NewFixedWindowLimiter(rl, logger))
	c := controller.NewController(f.app)

	f.router = gin.New()
	f.router.GET("/healthz", c.Index.Healthz)
	api := f.router.Group("/api")
	route.V1_Forms(api, c.Submission, mw)
	route.V1_Admin(api, c.Admin, mw)

	return f
}

func (f *fixture) do(req *http.Request) (*httptest.ResponseRecorder, util.Response) {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var resp util.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func jsonRequest(method, path string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func firstError(t *testing.T, resp util.Response) map[string]any {
	t.Helper()

	errs, ok := resp.Errors.([]any)
	require.True(t, ok, "errors should be a list")
	require.NotEmpty(t, errs)
	return errs[0].(map[string]any)
}

func TestContactCreated(t *testing.T) {
	f := newFixture(t, config.RateLimiterConfig{})

	w, resp := f.do(jsonRequest(http.MethodPost, "/api/v1/contact", gin.H{
		"name":     "Jane Doe",
		"email":    "jane@x.com",
		"message":  "Hello",
		"services": []string{"AI & Machine Learning"},
		"budget":   "$50K - $100K",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	require.Len(t, f.contacts.rows, 1)
	assert.Equal(t, []string{"AI & Machine Learning"}, []string(f.contacts.rows[0].Services))

	data := resp.Data.(map[string]any)
	assert.EqualValues(t, submission.FormResetDelay.Milliseconds(), data["resetAfterMs"])

	f.app.Submissions.Wait()
	assert.ElementsMatch(t, []notification.Kind{notification.KindContactNotification, notification.KindContactAutoReply}, f.notifier.kinds)
}

func TestContactValidationError(t *testing.T) {
	f := newFixture(t, config.RateLimiterConfig{})

	w, resp := f.do(jsonRequest(http.MethodPost, "/api/v1/contact", gin.H{
		"name":    "Jane Doe",
		"email":   "not-an-email",
		"message": "Hello",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "email", firstError(t, resp)["field"])
	assert.Empty(t, f.contacts.rows)
	assert.Empty(t, f.notifier.kinds)
}

func TestContactMalformedBody(t *testing.T) {
	f := newFixture(t, config.RateLimiterConfig{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w, _ := f.do(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactPersistenceFailure(t *testing.T) {
	f := newFixture(t, config.RateLimiterConfig{})
	f.contacts.err = &pgconn.PgError{Code: "23502", Message: "null value in column \"name\""}

	w, resp := f.do(jsonRequest(http.MethodPost, "/api/v1/contact", gin.H{
		"name":    "Jane Doe",
		"email":   "jane@x.com",
		"message": "Hello",
	}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "null value in column \"name\"", resp.Message)
	assert.Empty(t, f.notifier.kinds)
}

func TestNewsletterDuplicate(t *testing.T) {
	f := newFixture(t, config.RateLimiterConfig{})
	f.newsletter.err = &pgconn.PgError{Code: "23505"}

	w, resp := f.do(jsonRequest(http.MethodPost, "/api/v1/newsletter/subscribe", gin.H{
		"email": "jane@x.com",
	}))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, submission.MessageAlreadySubscribed, resp.Message)

	f.app.Submissions.Wait()
	assert.Empty(t, f.notifier.kinds)
}

func TestJobApplicationMultipart(t *testing.T) {
	f := newFixture(t, config.RateLimiterConfig{})

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("position", "Backend Engineer"))
	require.NoError(t, mw.WriteField("fullName", "Jane Doe"))
	require.NoError(t, mw.WriteField("email", "jane@x.com"))
	require.NoError(t, mw.WriteField("yearsOfExperience", "5"))
	part, err := mw.CreateFormFile("resume", "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.7 resume"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/careers/applications", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w, resp := f.do(req)

	require.Equal(t, http.StatusCreated, w.Code, resp.Message)
	assert.Equal(t, []string{"cv.pdf"}, f.uploader.names)
	require.Len(t, f.jobs.rows, 1)
	assert.Equal(t, "https://cdn.northwind.dev/resumes/cv.pdf", f.jobs.rows[0].ResumeURL)
	assert.Equal(t, 5, f.jobs.rows[0].YearsOfExperience)
}

func TestJobApplicationMissingResume(t *testing.T) {
	f := newFixture(t, config.RateLimiterConfig{})

	w, resp := f.do(jsonRequest(http.MethodPost, "/api/v1/careers/applications", gin.H{
		"position": "Backend Engineer",
		"fullName": "Jane Doe",
		"email":    "jane@x.com",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "resume", firstError(t, resp)["field"])
	assert.Empty(t, f.uploader.names)
}

func TestFormsAreRateLimited(t *testing.T) {
	f := newFixture(t, config.RateLimiterConfig{
		Enabled:              true,
		RequestsPerTimeFrame: 1,
		TimeFrame:            time.Minute,
	})

	newRequest := func() *http.Request {
		return jsonRequest(http.MethodPost, "/api/v1/newsletter/subscribe", gin.H{"email": "jane@x.com"})
	}

	w, _ := f.do(newRequest())
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = f.do(newRequest())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestAdminRequiresAccessToken(t *testing.T) {
	f := newFixture(t, config.RateLimiterConfig{})

	refresh, access, err := f.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:    "6f1c1c52-4f43-4d7c-9d84-3e1d9a3b1f10",
		Email: "admin@northwind.dev",
		Name:  "Admin",
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{name: "no header", header: "", code: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", code: http.StatusUnauthorized},
		{name: "refresh token", header: "Bearer " + *refresh, code: http.StatusUnauthorized},
		{name: "access token", header: "Bearer " + *access, code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w, resp := f.do(req)

			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusOK {
				user := resp.Data.(map[string]any)["user"].(map[string]any)
				assert.Equal(t, "admin@northwind.dev", user["email"])
			}
		})
	}
}

func TestUpsertEmailTemplateRejectsBadInput(t *testing.T) {
	f := newFixture(t, config.RateLimiterConfig{})

	_, access, err := f.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{ID: "1", Email: "admin@northwind.dev"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		kind  string
		body  gin.H
		code  int
		field string
	}{
		{
			name: "unknown kind",
			kind: "birthday_greeting",
			body: gin.H{"subject": "Hi", "htmlContent": "<p>Hi</p>"},
			code: http.StatusNotFound,
		},
		{
			name:  "broken body template",
			kind:  string(notification.KindContactNotification),
			body:  gin.H{"subject": "Hi {{.name}}", "htmlContent": "<p>{{ .name </p>"},
			code:  http.StatusBadRequest,
			field: "htmlContent",
		},
		{
			name:  "blank subject",
			kind:  string(notification.KindContactNotification),
			body:  gin.H{"subject": "   ", "htmlContent": "<p>Hi</p>"},
			code:  http.StatusBadRequest,
			field: "subject",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := jsonRequest(http.MethodPut, "/api/v1/admin/email-templates/"+tt.kind, tt.body)
			req.Header.Set("Authorization", "Bearer "+*access)
			w, resp := f.do(req)

			assert.Equal(t, tt.code, w.Code)
			if tt.field != "" {
				assert.Equal(t, tt.field, firstError(t, resp)["field"])
			}
		})
	}
}

func TestListSubmissionsUnknownForm(t *testing.T) {
	f := newFixture(t, config.RateLimiterConfig{})

	_, access, err := f.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{ID: "1", Email: "admin@northwind.dev"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/submissions/guestbook", nil)
	req.Header.Set("Authorization", "Bearer "+*access)
	w, _ := f.do(req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, config.RateLimiterConfig{})

	w, resp := f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", resp.Data.(map[string]any)["status"])
}
