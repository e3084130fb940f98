package submission

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	filestorage "github.com/SeakMengs/NorthwindSite/internal/file_storage"
	"github.com/SeakMengs/NorthwindSite/internal/mailer"
	"github.com/SeakMengs/NorthwindSite/internal/metrics"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"github.com/SeakMengs/NorthwindSite/internal/notification"
	"github.com/SeakMengs/NorthwindSite/internal/repository"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// How long the site keeps a success state before resetting a form.
	FormResetDelay       = 3 * time.Second
	NewsletterResetDelay = 5 * time.Second

	DefaultNotifyTimeout = 30 * time.Second
)

type ContactStore interface {
	Create(ctx context.Context, tx *gorm.DB, cs *model.ContactSubmission) (*model.ContactSubmission, error)
}

type ConsultationStore interface {
	Create(ctx context.Context, tx *gorm.DB, req *model.ConsultationRequest) (*model.ConsultationRequest, error)
}

type JobApplicationStore interface {
	Create(ctx context.Context, tx *gorm.DB, ja *model.JobApplication) (*model.JobApplication, error)
}

type NewsletterStore interface {
	Create(ctx context.Context, tx *gorm.DB, ns *model.NewsletterSubscription) (*model.NewsletterSubscription, error)
}

type Stores struct {
	Contact        ContactStore
	Consultation   ConsultationStore
	JobApplication JobApplicationStore
	Newsletter     NewsletterStore
}

func StoresFromRepository(repo *repository.Repository) Stores {
	return Stores{
		Contact:        repo.ContactSubmission,
		Consultation:   repo.ConsultationRequest,
		JobApplication: repo.JobApplication,
		Newsletter:     repo.Newsletter,
	}
}

// Notifier is satisfied by *notification.Dispatcher.
type Notifier interface {
	Send(ctx context.Context, kind notification.Kind, p notification.Payload) (mailer.Result, error)
}

// Uploader stores a resume and returns a link to it.
type Uploader interface {
	Upload(ctx context.Context, f filestorage.File) (string, error)
}

type Result struct {
	ID           string `json:"id"`
	Message      string `json:"message"`
	ResetAfterMs int64  `json:"resetAfterMs"`
}

func newResult(id, message string, resetAfter time.Duration) Result {
	return Result{ID: id, Message: message, ResetAfterMs: resetAfter.Milliseconds()}
}

// Service validates, stores and then notifies. Notifications run in the
// background and never change the outcome of a submission.
type Service struct {
	stores        Stores
	notifier      Notifier
	uploader      Uploader
	logger        *zap.SugaredLogger
	notifyTimeout time.Duration

	wg sync.WaitGroup
}

func NewService(stores Stores, notifier Notifier, uploader Uploader, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = util.NewNopLogger()
	}

	return &Service{
		stores:        stores,
		notifier:      notifier,
		uploader:      uploader,
		logger:        logger,
		notifyTimeout: DefaultNotifyTimeout,
	}
}

// Wait blocks until every notification started so far has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) SubmitContact(ctx context.Context, form ContactForm) (Result, error) {
	if err := Validate(form); err != nil {
		return Result{}, s.rejected(constant.FormContact, err)
	}

	row := &model.ContactSubmission{
		Name:     cleanText(form.Name),
		Email:    cleanEmail(form.Email),
		Phone:    cleanText(form.Phone),
		Company:  cleanText(form.Company),
		Message:  cleanText(form.Message),
		Services: pq.StringArray(cleanList(form.Services)),
		Budget:   cleanText(form.Budget),
		Status:   constant.SubmissionStatusNew,
	}

	if _, err := s.stores.Contact.Create(ctx, nil, row); err != nil {
		return Result{}, s.insertFailed(constant.FormContact, err)
	}

	s.notify(ctx, notification.Payload{
		Name:     row.Name,
		Email:    row.Email,
		Phone:    row.Phone,
		Company:  row.Company,
		Message:  row.Message,
		Services: row.Services,
		Budget:   row.Budget,
	}, notification.KindContactNotification, notification.KindContactAutoReply)

	return s.accepted(constant.FormContact, newResult(row.ID, "Thank you! Your message has been sent.", FormResetDelay)), nil
}

func (s *Service) SubmitConsultation(ctx context.Context, form ConsultationForm) (Result, error) {
	if err := Validate(form); err != nil {
		return Result{}, s.rejected(constant.FormConsultation, err)
	}

	row := &model.ConsultationRequest{
		Name:           cleanText(form.Name),
		Email:          cleanEmail(form.Email),
		Phone:          cleanText(form.Phone),
		Company:        cleanText(form.Company),
		Services:       pq.StringArray(cleanList(form.Services)),
		Budget:         cleanText(form.Budget),
		Timeline:       cleanText(form.Timeline),
		ProjectDetails: cleanText(form.ProjectDetails),
		PreferredDate:  strings.TrimSpace(form.PreferredDate),
		PreferredTime:  cleanText(form.PreferredTime),
		Status:         constant.SubmissionStatusNew,
	}

	if _, err := s.stores.Consultation.Create(ctx, nil, row); err != nil {
		return Result{}, s.insertFailed(constant.FormConsultation, err)
	}

	s.notify(ctx, notification.Payload{
		Name:           row.Name,
		Email:          row.Email,
		Phone:          row.Phone,
		Company:        row.Company,
		Services:       row.Services,
		Budget:         row.Budget,
		Timeline:       row.Timeline,
		ProjectDetails: row.ProjectDetails,
		PreferredDate:  row.PreferredDate,
		PreferredTime:  row.PreferredTime,
	}, notification.KindConsultationNotification)

	return s.accepted(constant.FormConsultation, newResult(row.ID, "Thank you! We will be in touch to confirm your consultation.", FormResetDelay)), nil
}

// SubmitJobApplication uploads the resume before the row is inserted, so a
// stored application always points at a stored resume.
func (s *Service) SubmitJobApplication(ctx context.Context, form JobApplicationForm) (Result, error) {
	if err := Validate(form); err != nil {
		return Result{}, s.rejected(constant.FormJobApplication, err)
	}

	if s.uploader == nil {
		return Result{}, s.insertFailed(constant.FormJobApplication, &PersistenceError{Message: MessageUploadFailed})
	}

	resumeURL, err := s.uploader.Upload(ctx, *form.Resume)
	if err != nil {
		return Result{}, s.insertFailed(constant.FormJobApplication, &PersistenceError{Message: MessageUploadFailed, Err: err})
	}

	row := &model.JobApplication{
		Position:          cleanText(form.Position),
		FullName:          cleanText(form.FullName),
		Email:             cleanEmail(form.Email),
		Phone:             cleanText(form.Phone),
		ResumeURL:         resumeURL,
		CoverLetter:       cleanText(form.CoverLetter),
		LinkedInURL:       strings.TrimSpace(form.LinkedInURL),
		PortfolioURL:      strings.TrimSpace(form.PortfolioURL),
		YearsOfExperience: ParseYears(form.YearsOfExperience),
		Status:            constant.SubmissionStatusNew,
	}
	if id := strings.TrimSpace(form.CareerListingID); id != "" {
		row.CareerListingID = &id
	}

	if _, err := s.stores.JobApplication.Create(ctx, nil, row); err != nil {
		return Result{}, s.insertFailed(constant.FormJobApplication, err)
	}

	s.notify(ctx, notification.Payload{
		Name:              row.FullName,
		Email:             row.Email,
		Phone:             row.Phone,
		Position:          row.Position,
		CoverLetter:       row.CoverLetter,
		ResumeURL:         row.ResumeURL,
		LinkedInURL:       row.LinkedInURL,
		PortfolioURL:      row.PortfolioURL,
		YearsOfExperience: row.YearsOfExperience,
	}, notification.KindJobApplicationNotification, notification.KindJobApplicationAutoReply)

	return s.accepted(constant.FormJobApplication, newResult(row.ID, "Thank you! Your application has been received.", FormResetDelay)), nil
}

// SubmitNewsletter relies on the unique index on email. A duplicate is
// reported as *DuplicateError and no welcome email is sent.
func (s *Service) SubmitNewsletter(ctx context.Context, form NewsletterForm) (Result, error) {
	if err := Validate(form); err != nil {
		return Result{}, s.rejected(constant.FormNewsletter, err)
	}

	source := cleanText(form.Source)
	if source == "" {
		source = constant.NewsletterSourceWebsite
	}

	row := &model.NewsletterSubscription{
		Email:       cleanEmail(form.Email),
		Name:        cleanText(form.Name),
		Preferences: pq.StringArray(cleanList(form.Preferences)),
		Source:      source,
		IsActive:    true,
		Status:      constant.SubmissionStatusNew,
	}

	if _, err := s.stores.Newsletter.Create(ctx, nil, row); err != nil {
		return Result{}, s.insertFailed(constant.FormNewsletter, err)
	}

	s.notify(ctx, notification.Payload{
		Name:        row.Name,
		Email:       row.Email,
		Preferences: row.Preferences,
		Source:      row.Source,
	}, notification.KindNewsletterWelcome)

	return s.accepted(constant.FormNewsletter, newResult(row.ID, "Thank you for subscribing!", NewsletterResetDelay)), nil
}

// notify starts one goroutine per kind, in order. Each send is independent:
// a failure is logged and does not affect the others.
func (s *Service) notify(ctx context.Context, p notification.Payload, kinds ...notification.Kind) {
	if s.notifier == nil {
		return
	}

	// The request context ends with the response; notifications outlive it.
	base := context.WithoutCancel(ctx)

	for _, kind := range kinds {
		s.wg.Add(1)
		go func(kind notification.Kind) {
			defer s.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.logger.Errorw("Notification panicked", "kind", kind, "panic", r)
				}
			}()

			ctx, cancel := context.WithTimeout(base, s.notifyTimeout)
			defer cancel()

			res, err := s.notifier.Send(ctx, kind, p)
			if err != nil {
				s.logger.Errorw("Notification failed", "kind", kind, "email", p.Email, "error", err)
				return
			}

			s.logger.Infow("Notification sent", "kind", kind, "messageId", res.MessageID)
		}(kind)
	}
}

func (s *Service) rejected(form constant.FormType, err error) error {
	metrics.SubmissionsTotal.WithLabelValues(string(form), metrics.OutcomeInvalid).Inc()
	return err
}

func (s *Service) accepted(form constant.FormType, r Result) Result {
	metrics.SubmissionsTotal.WithLabelValues(string(form), metrics.OutcomeSuccess).Inc()
	s.logger.Infow("Form submitted", "form", form, "id", r.ID)
	return r
}

func (s *Service) insertFailed(form constant.FormType, err error) error {
	if repository.IsUniqueViolation(err) {
		metrics.SubmissionsTotal.WithLabelValues(string(form), metrics.OutcomeDuplicate).Inc()
		s.logger.Infow("Duplicate submission", "form", form)

		message := MessageAlreadyExists
		if form == constant.FormNewsletter {
			message = MessageAlreadySubscribed
		}
		return &DuplicateError{Message: message, Err: err}
	}

	metrics.SubmissionsTotal.WithLabelValues(string(form), metrics.OutcomeFailed).Inc()
	s.logger.Errorw("Failed to store submission", "form", form, "error", err)

	var pe *PersistenceError
	if errors.As(err, &pe) {
		return pe
	}
	return newPersistenceError(err)
}

// cleanText only trims. Visitor text is stored as typed, templates escape
// it when an email is rendered.
func cleanText(s string) string {
	return strings.TrimSpace(s)
}

func cleanEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// cleanList never returns nil. Blank entries are dropped, the rest keep
// their order, repeats included.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = cleanText(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ParseYears reads a years-of-experience value, 0 when it is not a
// non-negative whole number.
func ParseYears(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
