package errors

import (
	"errors"
	"net/http"
)

// MapError converts a service error into a user-friendly AppError with the
// proper HTTP status.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      valErr.Message,
			Code:             ErrCodeInvalidParameters,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	}

	switch {
	case errors.Is(err, ErrDuplicateUser):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgDuplicateUser,
			Code:             ErrCodeDuplicateUser,
			HTTPStatus:       http.StatusConflict,
			OriginalError:    err,
		}
	case errors.Is(err, ErrInvalidCredentials):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInvalidCredentials,
			Code:             ErrCodeInvalidCredentials,
			HTTPStatus:       http.StatusUnauthorized,
			OriginalError:    err,
		}
	case errors.Is(err, ErrNotOwner):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgForbidden,
			Code:             ErrCodeForbidden,
			HTTPStatus:       http.StatusForbidden,
			OriginalError:    err,
		}
	case errors.Is(err, ErrHouseNotFound):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgHouseNotFound,
			Code:             ErrCodeNotFound,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	case errors.Is(err, ErrBookingLimitExceeded):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgBookingLimitExceeded,
			Code:             ErrCodeBookingLimitExceeded,
			HTTPStatus:       http.StatusConflict,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             ErrCodeStoreFailure,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
