package apperror

import (
	"errors"
	"net/http"
	"sync/atomic"
)

var developmentMode atomic.Bool

// SetDevelopmentMode toggles exposure of underlying error detail in
// responses for unclassified failures.
func SetDevelopmentMode(enabled bool) {
	developmentMode.Store(enabled)
}

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP converts any error returned by a service into the response shape
// written by handlers. Unclassified errors become a generic 500.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		out := HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
		if out.Status == 0 {
			out.Status = http.StatusInternalServerError
		}
		if out.Status >= http.StatusInternalServerError && appErr.Err != nil && developmentMode.Load() {
			out.Details = appErr.Err.Error()
		}
		return out
	}

	out := HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
	if err != nil && developmentMode.Load() {
		out.Details = err.Error()
	}
	return out
}
