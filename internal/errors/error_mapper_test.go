package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapError_Nil(t *testing.T) {
	assert.Nil(t, MapError(nil))
}

func TestMapError_Sentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"duplicate user", ErrDuplicateUser, http.StatusConflict, MsgDuplicateUser},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, MsgInvalidCredentials},
		{"not owner", ErrNotOwner, http.StatusForbidden, MsgForbidden},
		{"house not found", ErrHouseNotFound, http.StatusNotFound, MsgHouseNotFound},
		{"booking limit", ErrBookingLimitExceeded, http.StatusConflict, MsgBookingLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := MapError(tt.err)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
			assert.Equal(t, tt.wantMsg, appErr.UserMessage)
			assert.True(t, errors.Is(appErr, tt.err))
		})
	}
}

func TestMapError_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("creating booking: %w", ErrBookingLimitExceeded)

	appErr := MapError(wrapped)

	assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
	assert.Equal(t, MsgBookingLimitExceeded, appErr.UserMessage)
}

func TestMapError_ValidationError(t *testing.T) {
	appErr := MapError(NewValidationError("email is required"))

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "email is required", appErr.UserMessage)

	appErr = MapError(NewValidationError("invalid house id"))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "invalid house id", appErr.UserMessage)
}

func TestMapError_WrappedValidationError(t *testing.T) {
	wrapped := fmt.Errorf("listing query: %w", NewValidationError("page and limit must be non-negative"))

	appErr := MapError(wrapped)

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "page and limit must be non-negative", appErr.UserMessage)
}

func TestMapError_UnknownError(t *testing.T) {
	appErr := MapError(errors.New("connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.Equal(t, MsgInternalError, appErr.UserMessage)
}

// Driver errors mentioning "invalid" or "required" stay internal failures;
// only explicit validation errors reach the client verbatim.
func TestMapError_StoreErrorNotEchoed(t *testing.T) {
	for _, msg := range []string{
		"invalid wire version: server is too old",
		"auth mechanism required by server",
	} {
		appErr := MapError(errors.New(msg))

		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
		assert.Equal(t, MsgInternalError, appErr.UserMessage)
		assert.NotContains(t, appErr.UserMessage, msg)
	}
}

func TestMapError_PassthroughAppError(t *testing.T) {
	orig := &AppError{
		TechnicalMessage: "boom",
		UserMessage:      "something broke",
		Code:             ErrCodeStoreFailure,
		HTTPStatus:       http.StatusInternalServerError,
	}

	assert.Same(t, orig, MapError(orig))
}
