package util

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sampleForm struct {
	Name     string   `json:"name" validate:"required,strNotEmpty,cmax=10"`
	Email    string   `json:"email" validate:"required,email"`
	Phone    string   `json:"phone" validate:"omitempty,phone"`
	Services []string `json:"services" validate:"max=2"`
}

func newTestValidator(t *testing.T) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(JSONTagName)
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestGenerateErrorMessages_Validator(t *testing.T) {
	v := newTestValidator(t)

	err := v.Struct(sampleForm{Name: "   ", Email: "nope", Phone: "12ab", Services: []string{"a", "b", "c"}})
	require.Error(t, err)

	msgs := GenerateErrorMessages(err)
	require.Len(t, msgs, 4)

	assert.Equal(t, ApiError{Field: "name", Message: "name must not be empty or contain only whitespace characters"}, msgs[0])
	assert.Equal(t, ApiError{Field: "email", Message: "Please enter a valid email address"}, msgs[1])
	assert.Equal(t, ApiError{Field: "phone", Message: "Please enter a valid phone number"}, msgs[2])
	assert.Equal(t, ApiError{Field: "services", Message: "Please select at most 2 services"}, msgs[3])
}

func TestGenerateErrorMessages_CustomField(t *testing.T) {
	v := newTestValidator(t)

	err := v.Struct(sampleForm{Email: "a@b.com"})
	require.Error(t, err)

	msgs := GenerateErrorMessages(err, map[string]string{"name": "Full name"})
	require.Len(t, msgs, 1)
	assert.Equal(t, "Full name is required", msgs[0].Message)
}

func TestGenerateErrorMessages_NonValidator(t *testing.T) {
	assert.Equal(t, []ApiError{{Field: "unknown", Message: "Record not found"}}, GenerateErrorMessages(gorm.ErrRecordNotFound))
	assert.Equal(t, []ApiError{{Field: "resume", Message: "boom"}}, GenerateErrorMessages(errors.New("boom"), "resume"))
	assert.Equal(t, []ApiError{{Field: "email", Message: "taken"}}, GenerateErrorMessages(ApiError{Field: "email", Message: "taken"}))
	assert.Empty(t, GenerateErrorMessages(nil))
}

func TestPhone(t *testing.T) {
	v := newTestValidator(t)

	valid := []string{"+1 (555) 010-9999", "0123456789", "+44 20 7946 0958"}
	for _, p := range valid {
		assert.NoError(t, v.Var(p, "phone"), p)
	}

	invalid := []string{"12345", "555-CALL-NOW", "1+2345678"}
	for _, p := range invalid {
		assert.Error(t, v.Var(p, "phone"), p)
	}
}
