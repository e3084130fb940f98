package submission

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"github.com/go-playground/validator/v10"
)

// Display names used in messages, keyed by json field name.
var fieldLabels = map[string]string{
	"name":              "Name",
	"email":             "Email",
	"phone":             "Phone",
	"company":           "Company",
	"message":           "Message",
	"services":          "Services",
	"budget":            "Budget",
	"timeline":          "Timeline",
	"projectDetails":    "Project details",
	"preferredDate":     "Preferred date",
	"preferredTime":     "Preferred time",
	"careerListingId":   "Position",
	"position":          "Position",
	"fullName":          "Full name",
	"coverLetter":       "Cover letter",
	"linkedinUrl":       "LinkedIn URL",
	"portfolioUrl":      "Portfolio URL",
	"yearsOfExperience": "Years of experience",
	"preferences":       "Preferences",
	"source":            "Source",
}

var validate = NewValidator()

// NewValidator reports fields by their json name and knows the custom tags.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(util.JSONTagName)
	if err := util.RegisterCustomValidations(v); err != nil {
		panic(fmt.Sprintf("register custom validations: %v", err))
	}
	return v
}

// Validate checks a form and returns the first failing rule as a
// *ValidationError. It never touches the network.
func Validate(form any) error {
	if err := validate.Struct(form); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return toValidationError(ve[0])
		}
		return err
	}

	switch f := form.(type) {
	case JobApplicationForm:
		return validateResume(f)
	case *JobApplicationForm:
		return validateResume(*f)
	}

	return nil
}

func toValidationError(fe validator.FieldError) *ValidationError {
	field := fe.Field()
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		field = rest
	}

	// "services[2]" is labelled like "services".
	base, _, _ := strings.Cut(field, "[")
	labels := map[string]string{}
	if label, ok := fieldLabels[base]; ok {
		labels[fe.Field()] = label
	}

	return &ValidationError{
		Field:   field,
		Message: util.MessageForFieldError(fe, labels),
	}
}

func validateResume(f JobApplicationForm) error {
	if f.Resume == nil || f.Resume.Size <= 0 {
		return &ValidationError{Field: "resume", Message: "Please attach your resume"}
	}

	if f.Resume.Size > constant.MaxResumeSize {
		return &ValidationError{Field: "resume", Message: "Resume must be 5MB or smaller"}
	}

	ext := util.FileExtension(f.Resume.Name)
	for _, allowed := range constant.AllowedResumeExtensions {
		if ext == allowed {
			return nil
		}
	}

	return &ValidationError{Field: "resume", Message: "Resume must be a PDF, DOC or DOCX file"}
}
