package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/opeller/authgate/models"
)

// User-facing validation messages, one per field rule. Kept in one
// place so API responses stay consistent between signup and login.
const (
	msgUsernameLength   = "Please provide a username with at least 4 characters."
	msgUsernameTooLong  = "Please provide a username with at most 30 characters."
	msgUsernameNotEmail = "Username cannot be an email."
	msgEmailInvalid     = "Please provide a valid email."
	msgPasswordLength   = "Password must be 6 characters or more."
	msgCredentialNeeded = "Please provide a valid email or username."
	msgPasswordNeeded   = "Please provide a password."
	msgInvalidBody      = "Invalid request body."
)

// newValidator builds the request validator with the custom "not_email"
// rule: a username that parses as a syntactically valid email address
// is rejected, so usernames and emails stay distinguishable at login.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("not_email", func(fl validator.FieldLevel) bool {
		return v.Var(fl.Field().String(), "email") != nil
	})

	return v
}

// validateSignup checks req against its validation tags and converts
// every violation into a user-facing message. Returns nil when valid.
func (a *authService) validateSignup(req models.SignupRequest) *ValidationError {
	err := a.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return NewValidationError(msgInvalidBody)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		switch fe.Field() {
		case "Username":
			switch fe.Tag() {
			case "max":
				messages = append(messages, msgUsernameTooLong)
			case "not_email":
				messages = append(messages, msgUsernameNotEmail)
			default:
				messages = append(messages, msgUsernameLength)
			}
		case "Email":
			messages = append(messages, msgEmailInvalid)
		case "Password":
			messages = append(messages, msgPasswordLength)
		}
	}

	return NewValidationError(messages...)
}

// validateLogin checks that both login fields are present.
func (a *authService) validateLogin(req models.LoginRequest) *ValidationError {
	err := a.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return NewValidationError(msgInvalidBody)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		switch fe.Field() {
		case "Credential":
			messages = append(messages, msgCredentialNeeded)
		case "Password":
			messages = append(messages, msgPasswordNeeded)
		}
	}

	return NewValidationError(messages...)
}
