package rest

import (
	"errors"
	"net/http"

	"github.com/ojlab/discussions/domain"
	"github.com/sirupsen/logrus"
)

// ResponseError represent the response error struct. Code is the stable
// machine-readable identifier callers switch on.
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newResponseError(err error) ResponseError {
	return ResponseError{
		Code:    getErrorCode(err),
		Message: err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbiddenAccess):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicatedEntry):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func getErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrForbiddenAccess):
		return "FORBIDDEN_ACCESS"
	case errors.Is(err, domain.ErrInvalidParameter):
		return "INVALID_PARAMETER"
	case errors.Is(err, domain.ErrDuplicatedEntry):
		return "DUPLICATED_ENTRY"
	case errors.Is(err, domain.ErrBadParamInput):
		return "BAD_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}
