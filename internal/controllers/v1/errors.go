package v1

import (
	"errors"
	"net/http"

	"github.com/cashpilot/backend/internal/auth"
	"github.com/cashpilot/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no monthly allocation matching your query"` // The error, if any occurred
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrTokenInvalid) || errors.Is(err, auth.ErrGoogleTokenInvalid) || errors.Is(err, errCredentialsInvalid) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, errForbidden) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

// Auth errors
var (
	errCredentialsInvalid = errors.New("the email or password is incorrect")
	errForbidden          = errors.New("you are not allowed to perform this action")
)

// Plan errors
var (
	errMonthOutOfRange = errors.New("the month must be between 1 and 12")
	errYearOutOfRange  = errors.New("the year must be between 1970 and 9999")
)

// Member errors
var (
	errMembersBusinessOnly = errors.New("members can only be managed on business accounts")
)
