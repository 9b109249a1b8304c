package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lioapp/lio-api/internal/api/shared"
	"github.com/lioapp/lio-api/internal/domain"
	"github.com/lioapp/lio-api/internal/repository"
	"github.com/lioapp/lio-api/internal/service"
	"github.com/lioapp/lio-api/internal/service/auth"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes so that
// error types never leak to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrDuplicatePhrase):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrContentTooLong),
		errors.Is(err, repository.ErrUnknownRecord),
		errors.Is(err, repository.ErrCorruptRecord),
		errors.Is(err, repository.ErrInvalidUserID):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrStorageUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err that carries
// no internal detail.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, domain.ErrNotFound):
		return "Not found"
	case errors.Is(err, domain.ErrDuplicatePhrase):
		return "Phrase already exists"
	case errors.Is(err, domain.ErrContentTooLong):
		return fmt.Sprintf("Text must be at most %d characters", domain.MaxCustomPhraseLength)
	case errors.Is(err, domain.ErrEmptyContent):
		return "Text cannot be empty"
	case errors.Is(err, domain.ErrValidation):
		return domainValidationMessage(err)

	case errors.Is(err, repository.ErrUnknownRecord):
		return "Snapshot contains an unknown record"
	case errors.Is(err, repository.ErrCorruptRecord):
		return "Snapshot contains an invalid record"
	case errors.Is(err, repository.ErrInvalidUserID):
		return "Invalid user"

	case errors.Is(err, service.ErrStorageUnavailable):
		return "Storage temporarily unavailable, try again later"

	default:
		return "An unexpected error occurred"
	}
}

// domainValidationMessage keeps the field-level part of a domain validation
// error, e.g. "hour must be between 0 and 23". Those messages are written
// for users and contain no internal detail.
func domainValidationMessage(err error) string {
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return "Validation error: " + msg[i+len(prefix):]
	}
	return "Validation error"
}

// SanitizeValidationError turns validator errors into a short message naming
// the first failing field.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}
	first := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", first.Field(), getValidationTagMessage(first.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status and safe message for err. Server-side
// failures are logged with the redacted error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
